package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/anderssondelao/eventos-locales-app/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, title, place, description, date, kind, COALESCE(price, ''), image, COALESCE(category, ''), created_at`

// EventRepository stores events in Postgres. Ordering follows insertion (seq).
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

func (r *EventRepository) Merge(ctx context.Context, e *domain.Event) (bool, error) {
	query := `INSERT INTO events (id, title, place, description, date, kind, price, image, category, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, NULLIF($9, ''), $10)
			  ON CONFLICT (id) DO NOTHING`
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Place, e.Description, e.Date,
		string(e.Kind), e.Price, e.Image, string(e.Category), createdAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return n == 1, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
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

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY seq DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// Create serializes inserts per duplicate key with a transaction-scoped
// advisory lock, so concurrent identical submits cannot both pass the check.
func (r *EventRepository) Create(ctx context.Context, e *domain.Event) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT pg_advisory_xact_lock(hashtext($1 || chr(31) || $2 || chr(31) || $3 || chr(31) || $4))`
	if _, err = tx.ExecContext(ctx, lockQuery, e.Title, e.Place, e.Description, e.Date); err != nil {
		return false, fmt.Errorf("lock duplicate key: %w", err)
	}

	query := `INSERT INTO events (id, title, place, description, date, kind, price, image, category, created_at)
			  SELECT $1::text, $2::text, $3::text, $4::text, $5::text, $6::text,
			         NULLIF($7::text, ''), $8::text, NULLIF($9::text, ''), $10::timestamptz
			  WHERE NOT EXISTS (
				SELECT 1 FROM events
				WHERE title = $2::text AND place = $3::text AND description = $4::text AND date = $5::text
			  )
			  ON CONFLICT (id) DO NOTHING`
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := tx.ExecContext(
		ctx, query,
		e.ID, e.Title, e.Place, e.Description, e.Date,
		string(e.Kind), e.Price, e.Image, string(e.Category), createdAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}

	return n == 1, nil
}

func (r *EventRepository) Count(ctx context.Context) (int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM events`)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	var e domain.Event
	var kind, category string
	if err := s.Scan(
		&e.ID, &e.Title, &e.Place, &e.Description, &e.Date,
		&kind, &e.Price, &e.Image, &category, &e.CreatedAt,
	); err != nil {
		return nil, err
	}
	e.Kind = domain.EventKind(kind)
	e.Category = domain.Category(category)

	return &e, nil
}
