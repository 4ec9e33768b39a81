package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/EventApproval/internal/allocation"
	"github.com/stpnv0/EventApproval/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

// AdmissionRunner linearizes head-approve. Every admission takes the same
// transaction-scoped advisory lock, so the committed set cannot change
// between the check and the status update.
type AdmissionRunner struct {
	db      *dbpg.DB
	lockKey int64
	timeout time.Duration
}

func NewAdmissionRunner(db *dbpg.DB, lockKey int64, timeout time.Duration) *AdmissionRunner {
	return &AdmissionRunner{db: db, lockKey: lockKey, timeout: timeout}
}

func (r *AdmissionRunner) Admit(
	ctx context.Context,
	eventID string,
	check func(ctx context.Context, q allocation.Querier) error,
) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	// Read committed: every statement after the lock sees the admissions
	// committed before it was granted.
	tx, err := r.db.Master.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, r.lockKey); err != nil {
		return fmt.Errorf("acquire admission lock: %w", err)
	}

	var status domain.EventStatus
	lockQuery := `SELECT status FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, eventID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotEligible
		}
		return fmt.Errorf("lock event: %w", err)
	}
	if status != domain.StatusDeanApproved {
		return domain.ErrNotEligible
	}

	if err = check(ctx, &AllocationQuerier{q: tx}); err != nil {
		return err
	}

	query := `UPDATE events
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := tx.ExecContext(ctx, query, eventID, domain.StatusHeadApproved, domain.StatusDeanApproved)
	if err != nil {
		return fmt.Errorf("admit event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("admit rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotEligible
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit admission: %w", err)
	}

	return nil
}
