package inventory

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"monolith-service/internal/metrics"
	"monolith-service/internal/resource"

	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, item *Item) error
	GetAll(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id int) (*Item, error)
	Update(ctx context.Context, id int, apply func(*Item) error) (*Item, error)
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db      *bun.DB
	metrics *metrics.Metrics
}

func NewRepository(db *bun.DB, m *metrics.Metrics) Repository {
	return &repository{
		db:      db,
		metrics: m,
	}
}

func (r *repository) Create(ctx context.Context, item *Item) error {
	start := time.Now()
	_, err := r.db.NewInsert().Model(item).Exec(ctx)

	r.metrics.DB().RecordQuery(ctx, "insert", TableName, time.Since(start), err)

	return err
}

func (r *repository) GetAll(ctx context.Context) ([]Item, error) {
	start := time.Now()
	items := make([]Item, 0)
	err := r.db.NewSelect().Model(&items).Order("id ASC").Scan(ctx)

	r.metrics.DB().RecordQuery(ctx, "select", TableName, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Item, error) {
	start := time.Now()
	item, err := selectByID(ctx, r.db, id)

	r.metrics.DB().RecordQuery(ctx, "select", TableName, time.Since(start), err)

	return item, err
}

// Update loads the item, applies the change and writes it back in one
// transaction; any error rolls the transaction back.
func (r *repository) Update(ctx context.Context, id int, apply func(*Item) error) (*Item, error) {
	start := time.Now()
	var updated *Item

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		item, err := selectByID(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := apply(item); err != nil {
			return err
		}
		item.UpdatedAt = resource.Now()

		if _, err := tx.NewUpdate().Model(item).WherePK().Exec(ctx); err != nil {
			return err
		}
		updated = item
		return nil
	})

	r.metrics.DB().RecordQuery(ctx, "update", TableName, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	start := time.Now()
	item := &Item{ID: id}
	result, err := r.db.NewDelete().Model(item).WherePK().Exec(ctx)

	r.metrics.DB().RecordQuery(ctx, "delete", TableName, time.Since(start), err)

	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func selectByID(ctx context.Context, db bun.IDB, id int) (*Item, error) {
	item := new(Item)
	err := db.NewSelect().Model(item).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}
