// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package config

import (
	"errors"
	"flag"
	"io"
	"time"
)

// ParseFlags parses the leading configuration flags and returns them as a
// partial config together with the arguments left for the command parser.
// Parsing stops at the first non-flag argument, so
// "dpaste -config cfg.json add ..." feeds the config layer and leaves
// "add ..." untouched.
//
// Flags:
//
//	-c/-config json file path with configs
//	-rpc-url chain node JSON-RPC endpoint
//	-account account submissions are sent from
//	-ledger-path path of the local ledger store
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var jsonConfigPath string
	var rpcURL string
	var account string
	var ledgerPath string
	var requestTimeout time.Duration

	fs := flag.NewFlagSet("dpaste", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&rpcURL, "rpc-url", "", "Chain node JSON-RPC endpoint")
	fs.StringVar(&account, "account", "", "Account submissions are sent from")
	fs.StringVar(&ledgerPath, "ledger-path", "", "Local ledger store path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			// hand the args back unparsed so the command layer prints
			// its own, fuller help
			return &StructuredConfig{}, args, nil
		}
		return nil, nil, err
	}

	return &StructuredConfig{
		Chain: Chain{
			RPCURL:         rpcURL,
			Account:        account,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			LedgerPath: ledgerPath,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}
