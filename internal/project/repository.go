package project

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
	Create(ctx context.Context, project *Project) error
	GetAll(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id int) (*Project, error)
	Update(ctx context.Context, id int, apply func(*Project) error) (*Project, error)
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

func (r *repository) Create(ctx context.Context, project *Project) error {
	start := time.Now()
	_, err := r.db.NewInsert().Model(project).Exec(ctx)

	r.metrics.DB().RecordQuery(ctx, "insert", TableName, time.Since(start), err)

	return err
}

func (r *repository) GetAll(ctx context.Context) ([]Project, error) {
	start := time.Now()
	projects := make([]Project, 0)
	err := r.db.NewSelect().Model(&projects).Order("id ASC").Scan(ctx)

	r.metrics.DB().RecordQuery(ctx, "select", TableName, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Project, error) {
	start := time.Now()
	project, err := selectByID(ctx, r.db, id)

	r.metrics.DB().RecordQuery(ctx, "select", TableName, time.Since(start), err)

	return project, err
}

// Update loads the project, applies the change and writes it back in one
// transaction; any error rolls the transaction back.
func (r *repository) Update(ctx context.Context, id int, apply func(*Project) error) (*Project, error) {
	start := time.Now()
	var updated *Project

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		project, err := selectByID(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := apply(project); err != nil {
			return err
		}
		project.UpdatedAt = resource.Now()

		if _, err := tx.NewUpdate().Model(project).WherePK().Exec(ctx); err != nil {
			return err
		}
		updated = project
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
	project := &Project{ID: id}
	result, err := r.db.NewDelete().Model(project).WherePK().Exec(ctx)

	r.metrics.DB().RecordQuery(ctx, "delete", TableName, time.Since(start), err)

	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func selectByID(ctx context.Context, db bun.IDB, id int) (*Project, error) {
	project := new(Project)
	err := db.NewSelect().Model(project).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}
