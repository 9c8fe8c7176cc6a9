package limiter

import (
	"context"
	"time"
)

// Record is one strike-ledger row as the gate sees it. Strikes never
// decrease except through an administrative unblock; LastBlockedAt nil
// means the key is not under an active block.
type Record struct {
	Key             string
	Strikes         int
	LastBlockedAt   *time.Time
	SuspiciousScore int
}

// Metadata travels with a strike write so the dashboard can show who was
// blocked and why.
type Metadata struct {
	IP          string
	Email       string
	UserAgent   string
	BlockReason string
	Location    string
}

// Ledger is the durable strike store. Implementations must provide atomic
// upsert semantics: concurrent strike writes to the same key must not lose
// an update.
type Ledger interface {
	// Find returns the records for any of the given keys, missing keys
	// simply absent from the result.
	Find(ctx context.Context, keys []string) ([]Record, error)
	// ClearBlocks unsets the active block on the given keys while keeping
	// their strike history.
	ClearBlocks(ctx context.Context, keys []string) error
	// Upsert creates or updates a single key's record.
	Upsert(ctx context.Context, rec Record, meta Metadata) error
}

// blockStatus is the outcome of the read path for one request.
type blockStatus struct {
	blocked   bool
	permanent bool
	key       string
	strikes   int
	remaining time.Duration
}

// strikeResult is the outcome of the write path.
type strikeResult struct {
	strikes   int
	duration  time.Duration
	permanent bool
}
