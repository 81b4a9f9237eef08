package project

import (
	"time"

	"monolith-service/internal/resource"

	"github.com/uptrace/bun"
)

const (
	ResourceName  = "project"
	TableName     = "projects"
	DefaultStatus = "planning"
)

type Project struct {
	bun.BaseModel `bun:"table:projects,alias:p"`

	ID          int        `bun:"id,pk,autoincrement" json:"id"`
	Name        string     `bun:"name,notnull,unique" json:"name"`
	Description *string    `bun:"description" json:"description"`
	Status      string     `bun:"status,notnull" json:"status"`
	StartDate   time.Time  `bun:"start_date,notnull" json:"start_date"`
	EndDate     *time.Time `bun:"end_date" json:"end_date"`
	Owner       string     `bun:"owner,notnull" json:"owner"`
	Budget      *float64   `bun:"budget" json:"budget"`
	CreatedAt   time.Time  `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull" json:"updated_at"`
}

// CreateProjectRequest is the POST body. name, owner and status must be non-empty.
type CreateProjectRequest struct {
	Name        string                  `json:"name" validate:"required"`
	Owner       string                  `json:"owner" validate:"required"`
	Status      string                  `json:"status" validate:"required"`
	Description resource.Field[string]  `json:"description"`
	StartDate   resource.Field[string]  `json:"start_date"`
	EndDate     resource.Field[string]  `json:"end_date"`
	Budget      resource.Field[float64] `json:"budget"`
}

// UpdateProjectRequest is the PUT body; only present keys are applied.
type UpdateProjectRequest struct {
	Name        resource.Field[string]  `json:"name"`
	Description resource.Field[string]  `json:"description"`
	Status      resource.Field[string]  `json:"status"`
	Owner       resource.Field[string]  `json:"owner"`
	Budget      resource.Field[float64] `json:"budget"`
	StartDate   resource.Field[string]  `json:"start_date"`
	EndDate     resource.Field[string]  `json:"end_date"`
}

// NewProject builds a project from a validated create request.
func (req *CreateProjectRequest) NewProject(now time.Time) (*Project, error) {
	startDate := now
	if req.StartDate.Set {
		if req.StartDate.Null {
			return nil, &resource.FieldError{Field: "start_date", Reason: "cannot be null"}
		}
		t, err := resource.ParseTimestamp(req.StartDate.Value)
		if err != nil {
			return nil, err
		}
		startDate = t
	}

	endDate, err := resource.ParseOptionalTimestamp(req.EndDate.Value)
	if err != nil {
		return nil, err
	}

	return &Project{
		Name:        req.Name,
		Description: resource.Nullable(req.Description, ""),
		Status:      req.Status,
		StartDate:   startDate,
		EndDate:     endDate,
		Owner:       req.Owner,
		Budget:      resource.Nullable(req.Budget, 0),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Apply copies the present fields onto p. end_date null or "" clears it;
// description and budget accept null.
func (req *UpdateProjectRequest) Apply(p *Project) error {
	if err := resource.Assign(&p.Name, req.Name, "name"); err != nil {
		return err
	}
	resource.AssignNullable(&p.Description, req.Description)
	if err := resource.Assign(&p.Status, req.Status, "status"); err != nil {
		return err
	}
	if err := resource.Assign(&p.Owner, req.Owner, "owner"); err != nil {
		return err
	}
	resource.AssignNullable(&p.Budget, req.Budget)

	if req.StartDate.Set {
		if req.StartDate.Null {
			return &resource.FieldError{Field: "start_date", Reason: "cannot be null"}
		}
		t, err := resource.ParseTimestamp(req.StartDate.Value)
		if err != nil {
			return err
		}
		p.StartDate = t
	}

	if req.EndDate.Set {
		t, err := resource.ParseOptionalTimestamp(req.EndDate.Value)
		if err != nil {
			return err
		}
		p.EndDate = t
	}

	return nil
}
