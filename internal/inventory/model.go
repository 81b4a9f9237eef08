package inventory

import (
	"time"

	"monolith-service/internal/resource"

	"github.com/uptrace/bun"
)

const (
	ResourceName = "inventory"
	TableName    = "inventory_items"
)

type Item struct {
	bun.BaseModel `bun:"table:inventory_items,alias:i"`

	ID            int        `bun:"id,pk,autoincrement" json:"id"`
	Name          string     `bun:"name,notnull" json:"name"`
	SKU           string     `bun:"sku,notnull,unique" json:"sku"`
	Description   *string    `bun:"description" json:"description"`
	Quantity      int        `bun:"quantity,notnull" json:"quantity"`
	UnitPrice     float64    `bun:"unit_price,notnull" json:"unit_price"`
	Category      string     `bun:"category,notnull" json:"category"`
	Location      *string    `bun:"location" json:"location"`
	ReorderLevel  int        `bun:"reorder_level,notnull" json:"reorder_level"`
	LastRestocked *time.Time `bun:"last_restocked" json:"last_restocked"`
	CreatedAt     time.Time  `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt     time.Time  `bun:"updated_at,notnull" json:"updated_at"`
}

// CreateItemRequest is the POST body. Required keys must be present and not
// null; zero values such as "quantity": 0 are accepted.
type CreateItemRequest struct {
	Name          *string                `json:"name" validate:"required"`
	SKU           *string                `json:"sku" validate:"required"`
	Quantity      *int                   `json:"quantity" validate:"required"`
	UnitPrice     *float64               `json:"unit_price" validate:"required"`
	Category      *string                `json:"category" validate:"required"`
	ReorderLevel  *int                   `json:"reorder_level" validate:"required"`
	Description   resource.Field[string] `json:"description"`
	Location      resource.Field[string] `json:"location"`
	LastRestocked resource.Field[string] `json:"last_restocked"`
}

type UpdateItemRequest struct {
	Name          resource.Field[string]  `json:"name"`
	SKU           resource.Field[string]  `json:"sku"`
	Description   resource.Field[string]  `json:"description"`
	Quantity      resource.Field[int]     `json:"quantity"`
	UnitPrice     resource.Field[float64] `json:"unit_price"`
	Category      resource.Field[string]  `json:"category"`
	Location      resource.Field[string]  `json:"location"`
	ReorderLevel  resource.Field[int]     `json:"reorder_level"`
	LastRestocked resource.Field[string]  `json:"last_restocked"`
}

// NewItem builds an item from a validated create request.
func (req *CreateItemRequest) NewItem(now time.Time) (*Item, error) {
	lastRestocked, err := resource.ParseOptionalTimestamp(req.LastRestocked.Value)
	if err != nil {
		return nil, err
	}

	return &Item{
		Name:          *req.Name,
		SKU:           *req.SKU,
		Description:   resource.Nullable(req.Description, ""),
		Quantity:      *req.Quantity,
		UnitPrice:     *req.UnitPrice,
		Category:      *req.Category,
		Location:      resource.Nullable(req.Location, ""),
		ReorderLevel:  *req.ReorderLevel,
		LastRestocked: lastRestocked,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Apply copies the present fields onto item. last_restocked null or "" clears it.
func (req *UpdateItemRequest) Apply(item *Item) error {
	if err := resource.Assign(&item.Name, req.Name, "name"); err != nil {
		return err
	}
	if err := resource.Assign(&item.SKU, req.SKU, "sku"); err != nil {
		return err
	}
	resource.AssignNullable(&item.Description, req.Description)
	if err := resource.Assign(&item.Quantity, req.Quantity, "quantity"); err != nil {
		return err
	}
	if err := resource.Assign(&item.UnitPrice, req.UnitPrice, "unit_price"); err != nil {
		return err
	}
	if err := resource.Assign(&item.Category, req.Category, "category"); err != nil {
		return err
	}
	resource.AssignNullable(&item.Location, req.Location)
	if err := resource.Assign(&item.ReorderLevel, req.ReorderLevel, "reorder_level"); err != nil {
		return err
	}

	if req.LastRestocked.Set {
		t, err := resource.ParseOptionalTimestamp(req.LastRestocked.Value)
		if err != nil {
			return err
		}
		item.LastRestocked = t
	}

	return nil
}
