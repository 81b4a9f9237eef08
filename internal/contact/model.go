package contact

import (
	"time"

	"monolith-service/internal/resource"

	"github.com/uptrace/bun"
)

const (
	ResourceName  = "contact"
	TableName     = "contacts"
	DefaultStatus = "active"
)

type Contact struct {
	bun.BaseModel `bun:"table:contacts,alias:c"`

	ID         int       `bun:"id,pk,autoincrement" json:"id"`
	FirstName  string    `bun:"first_name,notnull" json:"first_name"`
	LastName   string    `bun:"last_name,notnull" json:"last_name"`
	Email      string    `bun:"email,notnull,unique" json:"email"`
	Phone      *string   `bun:"phone" json:"phone"`
	Department *string   `bun:"department" json:"department"`
	JobTitle   *string   `bun:"job_title" json:"job_title"`
	Company    *string   `bun:"company" json:"company"`
	Notes      *string   `bun:"notes" json:"notes"`
	Status     string    `bun:"status,notnull" json:"status"`
	CreatedAt  time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt  time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

type CreateContactRequest struct {
	FirstName  *string                `json:"first_name" validate:"required"`
	LastName   *string                `json:"last_name" validate:"required"`
	Email      *string                `json:"email" validate:"required"`
	Phone      resource.Field[string] `json:"phone"`
	Department resource.Field[string] `json:"department"`
	JobTitle   resource.Field[string] `json:"job_title"`
	Company    resource.Field[string] `json:"company"`
	Notes      resource.Field[string] `json:"notes"`
	Status     resource.Field[string] `json:"status"`
}

type UpdateContactRequest struct {
	FirstName  resource.Field[string] `json:"first_name"`
	LastName   resource.Field[string] `json:"last_name"`
	Email      resource.Field[string] `json:"email"`
	Phone      resource.Field[string] `json:"phone"`
	Department resource.Field[string] `json:"department"`
	JobTitle   resource.Field[string] `json:"job_title"`
	Company    resource.Field[string] `json:"company"`
	Notes      resource.Field[string] `json:"notes"`
	Status     resource.Field[string] `json:"status"`
}

func (req *CreateContactRequest) NewContact(now time.Time) *Contact {
	return &Contact{
		FirstName:  *req.FirstName,
		LastName:   *req.LastName,
		Email:      *req.Email,
		Phone:      resource.Nullable(req.Phone, ""),
		Department: resource.Nullable(req.Department, ""),
		JobTitle:   resource.Nullable(req.JobTitle, ""),
		Company:    resource.Nullable(req.Company, ""),
		Notes:      resource.Nullable(req.Notes, ""),
		Status:     req.Status.Or(DefaultStatus),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (req *UpdateContactRequest) Apply(c *Contact) error {
	if err := resource.Assign(&c.FirstName, req.FirstName, "first_name"); err != nil {
		return err
	}
	if err := resource.Assign(&c.LastName, req.LastName, "last_name"); err != nil {
		return err
	}
	if err := resource.Assign(&c.Email, req.Email, "email"); err != nil {
		return err
	}
	resource.AssignNullable(&c.Phone, req.Phone)
	resource.AssignNullable(&c.Department, req.Department)
	resource.AssignNullable(&c.JobTitle, req.JobTitle)
	resource.AssignNullable(&c.Company, req.Company)
	resource.AssignNullable(&c.Notes, req.Notes)
	return resource.Assign(&c.Status, req.Status, "status")
}
