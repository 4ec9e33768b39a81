package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EventApproval/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ClaimRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewClaimRepo(db *dbpg.DB) *ClaimRepository {
	return &ClaimRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ClaimRepository) ListForEvent(ctx context.Context, eventID string) ([]domain.ResourceClaim, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, listClaimsQuery, eventID)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()

	return scanClaims(rows)
}

// Replace swaps the claims of a DRAFT event. The event row is locked so a
// concurrent submit cannot slip in between the check and the rewrite.
func (r *ClaimRepository) Replace(ctx context.Context, eventID, coordinatorID string, claims []domain.ClaimInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status domain.EventStatus
	var owner string
	lockQuery := `SELECT status, coordinator_id FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, eventID).Scan(&status, &owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotEligible
		}
		return fmt.Errorf("lock event: %w", err)
	}
	if status != domain.StatusDraft || owner != coordinatorID {
		return domain.ErrNotEligible
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM event_resources WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("delete claims: %w", err)
	}

	if err = insertClaims(ctx, tx, eventID, claims); err != nil {
		return err
	}

	return tx.Commit()
}

const listClaimsQuery = `
	SELECT er.event_id, er.resource_id, COALESCE(r.name, ''), er.quantity, er.position
	FROM event_resources er
	LEFT JOIN resources r ON r.id = er.resource_id
	WHERE er.event_id = $1
	ORDER BY er.position`

func insertClaims(ctx context.Context, tx *sql.Tx, eventID string, claims []domain.ClaimInput) error {
	query := `INSERT INTO event_resources (event_id, resource_id, quantity, position)
			  VALUES ($1, $2, $3, $4)`
	for i, c := range claims {
		if _, err := tx.ExecContext(ctx, query, eventID, c.ResourceID, c.Quantity, i); err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case "23503":
					return fmt.Errorf("%w: resource %s does not exist", domain.ErrValidation, c.ResourceID)
				case "23505":
					return fmt.Errorf("%w: resource %s is claimed more than once", domain.ErrValidation, c.ResourceID)
				}
			}
			return fmt.Errorf("insert claim: %w", err)
		}
	}
	return nil
}

func scanClaims(rows *sql.Rows) ([]domain.ResourceClaim, error) {
	res := make([]domain.ResourceClaim, 0)
	for rows.Next() {
		var c domain.ResourceClaim
		if err := rows.Scan(&c.EventID, &c.ResourceID, &c.ResourceName, &c.Quantity, &c.Position); err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		res = append(res, c)
	}
	return res, rows.Err()
}
