package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/EventApproval/internal/allocation"
	"github.com/stpnv0/EventApproval/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

// sqlQuerier is satisfied by both *sql.DB and *sql.Tx.
type sqlQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// overlapFilter selects events e whose window strictly overlaps [$2, $3),
// whose status is in $4, and which are not $5. Touching windows never
// match.
const overlapFilter = `e.start_time < $3
	  AND e.end_time > $2
	  AND e.status = ANY($4)
	  AND e.id::text <> $5`

// AllocationQuerier answers the validator's and the reporter's questions
// with the overlap predicate and the status filter pushed into SQL.
type AllocationQuerier struct {
	q sqlQuerier
}

var _ allocation.Querier = (*AllocationQuerier)(nil)

// NewConflictQuerier reads outside any transaction; it backs the advisory
// conflict report.
func NewConflictQuerier(db *dbpg.DB) *AllocationQuerier {
	return &AllocationQuerier{q: db.Master}
}

func (a *AllocationQuerier) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	e, err := scanEvent(a.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

func (a *AllocationQuerier) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	var v domain.Venue
	err := a.q.QueryRowContext(ctx, `SELECT id, name, capacity, created_at FROM venues WHERE id = $1`, id).
		Scan(&v.ID, &v.Name, &v.Capacity, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("get venue: %w", err)
	}
	return &v, nil
}

func (a *AllocationQuerier) GetResource(ctx context.Context, id string) (*domain.Resource, error) {
	var r domain.Resource
	err := a.q.QueryRowContext(ctx, `SELECT id, name, total_quantity, created_at FROM resources WHERE id = $1`, id).
		Scan(&r.ID, &r.Name, &r.TotalQuantity, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, fmt.Errorf("get resource: %w", err)
	}
	return &r, nil
}

func (a *AllocationQuerier) ListClaims(ctx context.Context, eventID string) ([]domain.ResourceClaim, error) {
	rows, err := a.q.QueryContext(ctx, listClaimsQuery, eventID)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()

	return scanClaims(rows)
}

func (a *AllocationQuerier) ListVenueOverlapping(
	ctx context.Context, venueID, excludeEventID string, w allocation.Window, statuses []domain.EventStatus,
) ([]domain.ConflictingEvent, error) {
	query := `SELECT e.id, e.title, e.start_time, e.end_time, e.status, 0
			  FROM events e
			  WHERE e.venue_id = $1
			    AND ` + overlapFilter + `
			  ORDER BY e.start_time, e.id`

	return a.listConflicting(ctx, query, venueID, w, statuses, excludeEventID)
}

func (a *AllocationQuerier) ListResourceOverlapping(
	ctx context.Context, resourceID, excludeEventID string, w allocation.Window, statuses []domain.EventStatus,
) ([]domain.ConflictingEvent, error) {
	query := `SELECT e.id, e.title, e.start_time, e.end_time, e.status, er.quantity
			  FROM event_resources er
			  JOIN events e ON e.id = er.event_id
			  WHERE er.resource_id = $1
			    AND ` + overlapFilter + `
			  ORDER BY e.start_time, e.id`

	return a.listConflicting(ctx, query, resourceID, w, statuses, excludeEventID)
}

func (a *AllocationQuerier) SumQuantityOverlapping(
	ctx context.Context, resourceID, excludeEventID string, w allocation.Window, statuses []domain.EventStatus,
) (int, error) {
	query := `SELECT COALESCE(SUM(er.quantity), 0)
			  FROM event_resources er
			  JOIN events e ON e.id = er.event_id
			  WHERE er.resource_id = $1
			    AND ` + overlapFilter

	var sum int
	err := a.q.QueryRowContext(ctx, query, resourceID, w.Start, w.End, pq.Array(statuses), excludeEventID).
		Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum overlapping quantity: %w", err)
	}
	return sum, nil
}

func (a *AllocationQuerier) listConflicting(
	ctx context.Context, query, key string, w allocation.Window, statuses []domain.EventStatus, excludeEventID string,
) ([]domain.ConflictingEvent, error) {
	rows, err := a.q.QueryContext(ctx, query, key, w.Start, w.End, pq.Array(statuses), excludeEventID)
	if err != nil {
		return nil, fmt.Errorf("list overlapping: %w", err)
	}
	defer rows.Close()

	res := make([]domain.ConflictingEvent, 0)
	for rows.Next() {
		var c domain.ConflictingEvent
		if err = rows.Scan(&c.ID, &c.Title, &c.StartTime, &c.EndTime, &c.Status, &c.Quantity); err != nil {
			return nil, fmt.Errorf("scan overlapping: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}
