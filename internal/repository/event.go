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

const eventColumns = `id, title, department, coordinator_id, venue_id, start_time, end_time,
		participant_count, status, rejection_reason, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	if err := row.Scan(
		&e.ID, &e.Title, &e.Department, &e.CoordinatorID, &e.VenueID,
		&e.StartTime, &e.EndTime, &e.ParticipantCount, &e.Status,
		&e.RejectionReason, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create stores a DRAFT event together with its claims.
func (r *EventRepository) Create(ctx context.Context, e *domain.Event, claims []domain.ClaimInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = tx.ExecContext(
		ctx, query,
		e.ID, e.Title, e.Department, e.CoordinatorID, e.VenueID,
		e.StartTime, e.EndTime, e.ParticipantCount, e.Status,
		e.RejectionReason, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: unknown venue or coordinator", domain.ErrValidation)
		}
		return fmt.Errorf("insert event: %w", err)
	}

	if err = insertClaims(ctx, tx, e.ID, claims); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	query := `
		SELECT
			e.id, e.title, e.department, e.coordinator_id, e.venue_id,
			e.start_time, e.end_time, e.participant_count, e.status,
			e.rejection_reason, e.created_at, e.updated_at,
			COALESCE(v.name, ''), COALESCE(u.name, '')
		FROM events e
		LEFT JOIN venues v ON v.id = e.venue_id
		LEFT JOIN users u ON u.id = e.coordinator_id
		WHERE e.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get details: %w", err)
	}

	var d domain.EventDetails
	err = row.Scan(
		&d.Event.ID, &d.Event.Title, &d.Event.Department, &d.Event.CoordinatorID, &d.Event.VenueID,
		&d.Event.StartTime, &d.Event.EndTime, &d.Event.ParticipantCount, &d.Event.Status,
		&d.Event.RejectionReason, &d.Event.CreatedAt, &d.Event.UpdatedAt,
		&d.VenueName, &d.CoordinatorName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event details: %w", err)
	}

	return &d, nil
}

func (r *EventRepository) ListByCoordinator(ctx context.Context, coordinatorID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE coordinator_id = $1
			  ORDER BY start_time DESC`

	return r.list(ctx, query, coordinatorID)
}

func (r *EventRepository) ListByStatus(ctx context.Context, statuses []domain.EventStatus) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE status = ANY($1)
			  ORDER BY start_time`

	return r.list(ctx, query, pq.Array(statuses))
}

func (r *EventRepository) ListByVenue(
	ctx context.Context, venueID string, statuses []domain.EventStatus,
) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE venue_id = $1 AND status = ANY($2)
			  ORDER BY start_time`

	return r.list(ctx, query, venueID, pq.Array(statuses))
}

func (r *EventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// SetStatus is a compare-and-set: the row is updated only while its status
// is one of ch.From (and, when set, its author is ch.CoordinatorID).
func (r *EventRepository) SetStatus(ctx context.Context, ch domain.StatusChange) (*domain.Event, error) {
	query := `UPDATE events
			  SET status = $2, rejection_reason = $3, updated_at = now()
			  WHERE id = $1
			    AND status = ANY($4)
			    AND ($5 = '' OR coordinator_id::text = $5)
			  RETURNING ` + eventColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		ch.EventID, ch.To, ch.RejectionReason, pq.Array(ch.From), ch.CoordinatorID,
	)
	if err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotEligible
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}
