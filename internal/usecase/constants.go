package usecase

import "time"

const (
	// ledgersCacheKey holds the serialized derived-ledger view.
	ledgersCacheKey = "ledgers"

	// DefaultLedgerCacheTTL bounds how stale the cached view can get if an
	// invalidation is lost.
	DefaultLedgerCacheTTL = 30 * time.Second
)
