package service

import (
	"github.com/Golem-Base/dPaste/internal/adapter"
	"github.com/Golem-Base/dPaste/internal/config"
	"github.com/Golem-Base/dPaste/internal/crypto"
	"github.com/Golem-Base/dPaste/internal/logger"
	"github.com/Golem-Base/dPaste/internal/store"
)

// Services groups the application services into a single value that can
// be passed around the CLI and worker layers.
type Services struct {
	NoteService   NoteService
	LedgerService LedgerService
	Estimator     ExpiryEstimator
}

// NewServices wires the full service layer from its collaborators.
func NewServices(cfg *config.StructuredConfig, chain adapter.ChainAdapter, kv store.KVStore, log *logger.Logger) *Services {
	box := crypto.NewBox()
	estimator := NewExpiryEstimator(chain, cfg.Chain.BlockInterval)
	ledger := NewLedgerService(kv, estimator, log)
	note := NewNoteService(cfg.App, cfg.Chain, box, chain, chain, ledger, log)

	return &Services{
		NoteService:   note,
		LedgerService: ledger,
		Estimator:     estimator,
	}
}
