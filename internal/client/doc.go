// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

// Package client implements the dpaste command-line application.
//
// It wires the note services, the transaction ledger, and receipt polling
// into subcommands for creating, viewing, and managing pastes on the
// Golem Base storage layer.
package client
