package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/miroldev/vendure/internal/rctx"
)

// RunInTransaction executes fn inside one serializable transaction and hands
// it the request context carrying that transaction. Everything fn writes
// commits or rolls back as a unit; serializable isolation is what keeps two
// concurrent "make this the default" calls from both observing zero defaults.
//
// Context cancellation aborts the transaction: database/sql rolls back a
// transaction whose context is done, so partial writes never persist.
func RunInTransaction(ctx context.Context, db *sql.DB, locale string, fn func(*rctx.Context) error) error {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(rctx.New(ctx, tx, locale)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
