package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names and
// string-friendly durations for the optional config file.
type StructuredJSONConfig struct {
	App struct {
		Version           string   `json:"version"`
		MaxNoteSize       int      `json:"max_note_size"`
		DefaultTTL        Duration `json:"default_ttl"`
		EncryptionEnabled bool     `json:"encryption_enabled"`
	} `json:"app,omitempty"`

	Chain struct {
		RPCURL         string   `json:"rpc_url"`
		ID             uint64   `json:"id"`
		Account        string   `json:"account"`
		BlockInterval  Duration `json:"block_interval"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"chain,omitempty"`

	Storage struct {
		LedgerPath    string `json:"ledger_path"`
		LedgerBackend string `json:"ledger_backend"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:           jsonCfg.App.Version,
			MaxNoteSize:       jsonCfg.App.MaxNoteSize,
			DefaultTTL:        time.Duration(jsonCfg.App.DefaultTTL),
			EncryptionEnabled: jsonCfg.App.EncryptionEnabled,
		},
		Chain: Chain{
			RPCURL:         jsonCfg.Chain.RPCURL,
			ID:             jsonCfg.Chain.ID,
			Account:        jsonCfg.Chain.Account,
			BlockInterval:  time.Duration(jsonCfg.Chain.BlockInterval),
			RequestTimeout: time.Duration(jsonCfg.Chain.RequestTimeout),
		},
		Storage: Storage{
			LedgerPath:    jsonCfg.Storage.LedgerPath,
			LedgerBackend: jsonCfg.Storage.LedgerBackend,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
