package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		rest     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-config", "/path/to/config.json",
				"-rpc-url", "http://node:8545",
				"-account", "0xacc",
				"-ledger-path", "/var/dpaste/ledger.json",
				"-request-timeout", "30s",
			},
			rest: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, "http://node:8545", cfg.Chain.RPCURL)
				assert.Equal(t, "0xacc", cfg.Chain.Account)
				assert.Equal(t, "/var/dpaste/ledger.json", cfg.Storage.LedgerPath)
				assert.Equal(t, 30*time.Second, cfg.Chain.RequestTimeout)
			},
		},
		{
			name: "config short alias",
			args: []string{"-c", "/path/to/config.json"},
			rest: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "parsing stops at the subcommand",
			args: []string{"-config", "cfg.json", "add", "--ttl", "1h", "some text"},
			rest: []string{"add", "--ttl", "1h", "some text"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "cfg.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{"view", "0xnote"},
			rest: []string{"view", "0xnote"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.JSONFilePath)
				assert.Empty(t, cfg.Chain.RPCURL)
				assert.Empty(t, cfg.Chain.Account)
				assert.Zero(t, cfg.Chain.RequestTimeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, rest, err := ParseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			assert.Equal(t, tt.rest, rest)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_InvalidValue(t *testing.T) {
	_, _, err := ParseFlags([]string{"-request-timeout", "soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request-timeout")
}

func TestParseFlags_HelpPassesThrough(t *testing.T) {
	// -h is left for the command layer, which prints the full usage
	cfg, rest, err := ParseFlags([]string{"-h"})
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, []string{"-h"}, rest)
}

func TestParseFlags_FeedsGetConfig(t *testing.T) {
	overrides, _, err := ParseFlags([]string{"-account", "0xflag", "-ledger-path", t.TempDir()})
	require.NoError(t, err)

	t.Setenv("CHAIN_ACCOUNT", "0xenv")

	cfg, err := GetConfig(overrides)
	require.NoError(t, err)
	// flag overrides win over the environment
	assert.Equal(t, "0xflag", cfg.Chain.Account)
}
