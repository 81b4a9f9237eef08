package contact

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
	Create(ctx context.Context, contact *Contact) error
	GetAll(ctx context.Context) ([]Contact, error)
	GetByID(ctx context.Context, id int) (*Contact, error)
	Update(ctx context.Context, id int, apply func(*Contact) error) (*Contact, error)
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

func (r *repository) Create(ctx context.Context, contact *Contact) error {
	start := time.Now()
	_, err := r.db.NewInsert().Model(contact).Exec(ctx)

	r.metrics.DB().RecordQuery(ctx, "insert", TableName, time.Since(start), err)

	return err
}

func (r *repository) GetAll(ctx context.Context) ([]Contact, error) {
	start := time.Now()
	contacts := make([]Contact, 0)
	err := r.db.NewSelect().Model(&contacts).Order("id ASC").Scan(ctx)

	r.metrics.DB().RecordQuery(ctx, "select", TableName, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Contact, error) {
	start := time.Now()
	contact, err := selectByID(ctx, r.db, id)

	r.metrics.DB().RecordQuery(ctx, "select", TableName, time.Since(start), err)

	return contact, err
}

// Update runs load, apply and write in a single transaction.
func (r *repository) Update(ctx context.Context, id int, apply func(*Contact) error) (*Contact, error) {
	start := time.Now()
	var updated *Contact

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		contact, err := selectByID(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := apply(contact); err != nil {
			return err
		}
		contact.UpdatedAt = resource.Now()

		if _, err := tx.NewUpdate().Model(contact).WherePK().Exec(ctx); err != nil {
			return err
		}
		updated = contact
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
	contact := &Contact{ID: id}
	result, err := r.db.NewDelete().Model(contact).WherePK().Exec(ctx)

	r.metrics.DB().RecordQuery(ctx, "delete", TableName, time.Since(start), err)

	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

func selectByID(ctx context.Context, db bun.IDB, id int) (*Contact, error) {
	contact := new(Contact)
	err := db.NewSelect().Model(contact).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return contact, nil
}
