package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/EventApproval/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type InventoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInventoryRepo(db *dbpg.DB) *InventoryRepository {
	return &InventoryRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *InventoryRepository) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	query := `SELECT id, name, capacity, created_at
			  FROM venues
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	var v domain.Venue
	if err = row.Scan(&v.ID, &v.Name, &v.Capacity, &v.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("scan venue: %w", err)
	}

	return &v, nil
}

func (r *InventoryRepository) GetResource(ctx context.Context, id string) (*domain.Resource, error) {
	query := `SELECT id, name, total_quantity, created_at
			  FROM resources
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get resource: %w", err)
	}

	var res domain.Resource
	if err = row.Scan(&res.ID, &res.Name, &res.TotalQuantity, &res.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, fmt.Errorf("scan resource: %w", err)
	}

	return &res, nil
}

func (r *InventoryRepository) ListVenues(ctx context.Context) ([]*domain.Venue, error) {
	query := `SELECT id, name, capacity, created_at
			  FROM venues
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Venue, 0)
	for rows.Next() {
		var v domain.Venue
		if err = rows.Scan(&v.ID, &v.Name, &v.Capacity, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}

func (r *InventoryRepository) ListResources(ctx context.Context) ([]*domain.Resource, error) {
	query := `SELECT id, name, total_quantity, created_at
			  FROM resources
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Resource, 0)
	for rows.Next() {
		var item domain.Resource
		if err = rows.Scan(&item.ID, &item.Name, &item.TotalQuantity, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		res = append(res, &item)
	}

	return res, rows.Err()
}

func (r *InventoryRepository) CreateVenue(ctx context.Context, v *domain.Venue) error {
	query := `INSERT INTO venues (id, name, capacity, created_at)
			  VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, v.ID, v.Name, v.Capacity, v.CreatedAt); err != nil {
		return fmt.Errorf("insert venue: %w", err)
	}
	return nil
}

func (r *InventoryRepository) CreateResource(ctx context.Context, res *domain.Resource) error {
	query := `INSERT INTO resources (id, name, total_quantity, created_at)
			  VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, res.ID, res.Name, res.TotalQuantity, res.CreatedAt); err != nil {
		return fmt.Errorf("insert resource: %w", err)
	}
	return nil
}

func (r *InventoryRepository) UpdateResourceQuantity(ctx context.Context, id string, total int) (*domain.Resource, error) {
	query := `UPDATE resources
			  SET total_quantity = $2
			  WHERE id = $1
			  RETURNING id, name, total_quantity, created_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, total)
	if err != nil {
		return nil, fmt.Errorf("update resource: %w", err)
	}

	var res domain.Resource
	if err = row.Scan(&res.ID, &res.Name, &res.TotalQuantity, &res.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, fmt.Errorf("scan resource: %w", err)
	}

	return &res, nil
}
