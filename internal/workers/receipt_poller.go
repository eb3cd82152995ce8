// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Golem-Base/dPaste/internal/adapter"
	"github.com/Golem-Base/dPaste/internal/logger"
	"github.com/Golem-Base/dPaste/internal/service"
	"github.com/Golem-Base/dPaste/models"
)

// ReceiptPoller resolves submitted transactions against their mined
// receipts. It serves two callers: Await blocks a foreground command until
// one transaction confirms, and the Start/Stop lifecycle sweeps the
// account's leftover pending entries in the background, picking up
// submissions a previous run never saw confirm.
type ReceiptPoller struct {
	ledger   service.LedgerService
	wallet   adapter.WalletAdapter
	account  string
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ Worker = (*ReceiptPoller)(nil)

// NewReceiptPoller creates a poller over the given ledger and wallet.
// interval is the pause between receipt checks; zero or negative defaults
// to two seconds, one block on the target chain.
func NewReceiptPoller(ledger service.LedgerService, wallet adapter.WalletAdapter, account string, interval time.Duration, log *logger.Logger) *ReceiptPoller {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &ReceiptPoller{
		ledger:   ledger,
		wallet:   wallet,
		account:  account,
		interval: interval,
		logger:   log,
	}
}

// Await polls until txID's receipt is mined, then resolves it into the
// created note's id and expiry. It blocks up to the context's deadline;
// cancellation returns the context's error with the transaction still
// pending in the ledger.
func (p *ReceiptPoller) Await(ctx context.Context, txID string) (service.NewNoteData, error) {
	receipt, err := p.WaitMined(ctx, txID)
	if err != nil {
		return service.NewNoteData{}, err
	}
	return p.ledger.Resolve(ctx, p.account, txID, receipt)
}

// WaitMined polls until txID's receipt is mined and returns it without
// touching the ledger. Used for transactions that do not create a note.
func (p *ReceiptPoller) WaitMined(ctx context.Context, txID string) (models.Receipt, error) {
	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		receipt, ok, err := p.wallet.GetReceipt(ctx, txID)
		if err != nil {
			return models.Receipt{}, err
		}
		if ok {
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return models.Receipt{}, ctx.Err()
		case <-t.C:
		}
	}
}

// Sweep runs one pass over the account's pending ledger entries and
// resolves every one whose receipt has been mined. Entries that are still
// pending or whose receipt is not the entity-created shape are left alone;
// transport errors abort the pass.
func (p *ReceiptPoller) Sweep(ctx context.Context) error {
	entries, err := p.ledger.List(p.account)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.State.Type != models.TxPending {
			continue
		}

		receipt, ok, err := p.wallet.GetReceipt(ctx, entry.TxID)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		if _, err := p.ledger.Resolve(ctx, p.account, entry.TxID, receipt); err != nil {
			if errors.Is(err, models.ErrMalformedReceipt) {
				// not a note creation (extend, delete); nothing to record
				continue
			}
			return err
		}
		p.logger.Debug().Str("tx", entry.TxID).Msg("pending submission resolved")
	}
	return nil
}

// Start implements [Worker]. It stops any previously running sweep loop,
// then launches a goroutine that calls Sweep every interval until ctx is
// cancelled or Stop is called.
func (p *ReceiptPoller) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				if err := p.Sweep(loopCtx); err != nil && !errors.Is(err, context.Canceled) {
					p.logger.Warn().Err(err).Msg("receipt sweep failed")
				}
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the sweep loop and blocks until the
// goroutine has fully exited. Safe to call when the poller is not running.
func (p *ReceiptPoller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
