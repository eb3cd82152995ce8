// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/urfave/cli/v2"

	"github.com/Golem-Base/dPaste/internal/config"
	"github.com/Golem-Base/dPaste/internal/logger"
	"github.com/Golem-Base/dPaste/internal/service"
	"github.com/Golem-Base/dPaste/internal/workers"
)

// App is the dpaste command-line application.
type App struct {
	cfg      *config.StructuredConfig
	services *service.Services
	poller   *workers.ReceiptPoller
	logger   *logger.Logger
	cli      *cli.App
}

// NewApp wires the CLI over the service layer and receipt poller.
func NewApp(cfg *config.StructuredConfig, services *service.Services, poller *workers.ReceiptPoller, log *logger.Logger) *App {
	a := &App{
		cfg:      cfg,
		services: services,
		poller:   poller,
		logger:   log,
	}

	a.cli = &cli.App{
		Name:    "dpaste",
		Usage:   "Pastebin on the Golem Base storage layer",
		Version: cfg.App.Version,
		Commands: []*cli.Command{
			a.addCmd(),
			a.viewCmd(),
			a.transactionsCmd(),
			a.extendCmd(),
			a.deleteCmd(),
		},
	}
	// Disable the default exit handler so errors surface as return values
	a.cli.ExitErrHandler = func(_ *cli.Context, _ error) {}

	return a
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	return a.cli.RunContext(ctx, args)
}

// SetOutput redirects the application's normal output, primarily for
// tests. Defaults to stdout.
func (a *App) SetOutput(w io.Writer) {
	a.cli.Writer = w
}

// addCmd creates the add command: submit a new paste and wait for its
// confirmation.
func (a *App) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Submit a new paste (text from argument or stdin)",
		ArgsUsage: "[text]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "Encrypt the paste with a password"},
			&cli.DurationFlag{Name: "ttl", Aliases: []string{"t"}, Usage: "Retention period (default from configuration)"},
			&cli.StringFlag{Name: "language", Aliases: []string{"l"}, Usage: "Syntax-highlighting language"},
			&cli.BoolFlag{Name: "copy", Aliases: []string{"c"}, Usage: "Copy the paste id to the clipboard"},
		},
		Action: func(c *cli.Context) error {
			account, err := a.account()
			if err != nil {
				return exitErr(err)
			}

			text := c.Args().First()
			if text == "" {
				text, err = readStdin()
				if err != nil {
					return exitErr(err)
				}
			}

			draft, err := a.services.NoteService.Create(service.CreateNoteParams{
				Text:     text,
				TTL:      c.Duration("ttl"),
				Language: c.String("language"),
				Password: c.String("password"),
			})
			if err != nil {
				return exitErr(err)
			}

			txID, err := a.services.NoteService.Submit(c.Context, draft, account)
			if err != nil {
				return exitErr(err)
			}
			fmt.Fprintf(c.App.Writer, "Transaction submitted: %s\n", txID)

			note, err := a.poller.Await(c.Context, txID)
			if err != nil {
				return exitErr(fmt.Errorf("await confirmation: %w", err))
			}

			fmt.Fprintf(c.App.Writer, "Paste submitted successfully.\nid: %s\nexpires: %s\n",
				note.NoteID, note.ExpirationDate.Local().Format(time.RFC1123))

			if c.Bool("copy") {
				if err := clipboard.WriteAll(note.NoteID); err != nil {
					a.logger.Warn().Err(err).Msg("clipboard write failed")
				}
			}
			return nil
		},
	}
}

// viewCmd creates the view command: fetch a paste and print its text.
func (a *App) viewCmd() *cli.Command {
	return &cli.Command{
		Name:      "view",
		Usage:     "View a paste by id",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "Decryption password"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Print paste metadata"},
			&cli.BoolFlag{Name: "copy", Aliases: []string{"c"}, Usage: "Copy the paste text to the clipboard"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return exitErr(errors.New("paste id is required"))
			}
			noteID := c.Args().First()

			note, err := a.services.NoteService.Fetch(c.Context, noteID)
			if err != nil {
				return exitErr(err)
			}

			if c.Bool("verbose") {
				createdAt := time.Unix(note.Metadata.CreatedAt, 0).UTC()
				fmt.Fprintf(c.App.Writer, "Note id: %s\n", noteID)
				fmt.Fprintf(c.App.Writer, "Created at: %s\n", createdAt.Format(time.RFC1123))
				fmt.Fprintf(c.App.Writer, "Syntax language: %s\n", note.Metadata.Language)
				fmt.Fprintf(c.App.Writer, "Paste protocol version: %s\n", note.Metadata.Version)
				fmt.Fprintf(c.App.Writer, "Encrypted: %s\n", yesNo(note.Metadata.Encrypted))
			}

			if note.Encrypted() {
				password := c.String("password")
				if password == "" {
					return exitErr(errors.New("paste is encrypted, a password must be provided"))
				}
				note, err = a.services.NoteService.Decrypt(note, password)
				if err != nil {
					return exitErr(err)
				}
			}

			text, _ := note.PlaintextText()
			fmt.Fprintln(c.App.Writer, text)

			if c.Bool("copy") {
				if err := clipboard.WriteAll(text); err != nil {
					a.logger.Warn().Err(err).Msg("clipboard write failed")
				}
			}
			return nil
		},
	}
}

// transactionsCmd creates the transactions command: list the account's
// submissions, resolving any that confirmed since the last run.
func (a *App) transactionsCmd() *cli.Command {
	return &cli.Command{
		Name:      "transactions",
		Usage:     "List past submissions and their status",
		ArgsUsage: "[account]",
		Action: func(c *cli.Context) error {
			account := c.Args().First()
			if account == "" {
				var err error
				if account, err = a.account(); err != nil {
					return exitErr(err)
				}
			}

			if err := a.poller.Sweep(c.Context); err != nil {
				// listing still works from the last known state
				a.logger.Warn().Err(err).Msg("receipt sweep failed")
			}

			entries, err := a.services.LedgerService.List(account)
			if err != nil {
				return exitErr(err)
			}
			if len(entries) == 0 {
				fmt.Fprintln(c.App.Writer, "No transactions.")
				return nil
			}

			for _, entry := range entries {
				if entry.State.NoteID != "" {
					fmt.Fprintf(c.App.Writer, "%s\t%s\tnote %s\texpires %s\n",
						entry.TxID, entry.State.Type, entry.State.NoteID, entry.State.ExpirationDate)
				} else {
					fmt.Fprintf(c.App.Writer, "%s\t%s\n", entry.TxID, entry.State.Type)
				}
			}
			return nil
		},
	}
}

// extendCmd creates the extend command: lengthen a paste's lifetime.
func (a *App) extendCmd() *cli.Command {
	return &cli.Command{
		Name:      "extend",
		Usage:     "Extend a paste's lifetime",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.Uint64Flag{Name: "blocks", Aliases: []string{"b"}, Value: 300, Usage: "Number of blocks to extend by"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return exitErr(errors.New("paste id is required"))
			}

			txID, err := a.services.NoteService.Extend(c.Context, c.Args().First(), c.Uint64("blocks"))
			if err != nil {
				return exitErr(err)
			}
			if _, err := a.poller.WaitMined(c.Context, txID); err != nil {
				return exitErr(fmt.Errorf("await confirmation: %w", err))
			}

			fmt.Fprintln(c.App.Writer, "Paste extended successfully.")
			return nil
		},
	}
}

// deleteCmd creates the delete command: remove a paste before it expires.
func (a *App) deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a paste",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return exitErr(errors.New("paste id is required"))
			}

			txID, err := a.services.NoteService.Delete(c.Context, c.Args().First())
			if err != nil {
				return exitErr(err)
			}
			if _, err := a.poller.WaitMined(c.Context, txID); err != nil {
				return exitErr(fmt.Errorf("await confirmation: %w", err))
			}

			fmt.Fprintln(c.App.Writer, "Paste deleted successfully.")
			return nil
		},
	}
}

func (a *App) account() (string, error) {
	if a.cfg.Chain.Account == "" {
		return "", errors.New("no account configured: set CHAIN_ACCOUNT or the chain.account config field")
	}
	return a.cfg.Chain.Account, nil
}

// exitErr formats an error for the CLI with a non-zero exit code.
func exitErr(err error) error {
	return cli.Exit(err.Error(), 1)
}

// readStdin reads the paste text from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
