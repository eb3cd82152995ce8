package service

import (
	"context"
	"time"

	"github.com/Golem-Base/dPaste/internal/adapter"
)

type expiryEstimator struct {
	storage       adapter.StorageAdapter
	blockInterval time.Duration

	// now is swappable for tests; production uses time.Now.
	now func() time.Time
}

// NewExpiryEstimator builds an [ExpiryEstimator] over the given chain
// reader and block interval.
func NewExpiryEstimator(storage adapter.StorageAdapter, blockInterval time.Duration) ExpiryEstimator {
	return &expiryEstimator{storage: storage, blockInterval: blockInterval, now: time.Now}
}

// EstimateDate implements [ExpiryEstimator]. The single chain call is the
// only I/O; the projection itself is linear:
// now + (target - current) * interval. Targets behind the current height
// produce a past timestamp, which callers read as "already expired".
func (e *expiryEstimator) EstimateDate(ctx context.Context, targetBlock uint64) (time.Time, error) {
	currentBlock, err := e.storage.CurrentBlockNumber(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return e.project(targetBlock, currentBlock), nil
}

func (e *expiryEstimator) project(targetBlock, currentBlock uint64) time.Time {
	delta := int64(targetBlock) - int64(currentBlock)
	return e.now().Add(time.Duration(delta) * e.blockInterval)
}
