package repository

import "context"

// Tx is the base interface for transactional handles. Feature-specific
// transaction interfaces embed it and add their row operations. Commit and
// Rollback end the transaction; Rollback after Commit is a no-op error that
// SafeRollback swallows.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
