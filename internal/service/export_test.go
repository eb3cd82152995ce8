package service

import (
	"time"

	"github.com/Golem-Base/dPaste/internal/adapter"
)

// NewExpiryEstimatorAt builds an estimator with a fixed clock so tests can
// assert exact projections.
func NewExpiryEstimatorAt(storage adapter.StorageAdapter, blockInterval time.Duration, now func() time.Time) ExpiryEstimator {
	return &expiryEstimator{storage: storage, blockInterval: blockInterval, now: now}
}
