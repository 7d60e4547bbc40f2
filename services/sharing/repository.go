package sharing

import "context"

// ShareCache defines the interface for resolve bookkeeping
type ShareCache interface {
	// IncrementResolveCount bumps the hit counter for a token and
	// returns the new count. Purely observational; never gates access.
	IncrementResolveCount(ctx context.Context, tokenID string) (int64, error)
}
