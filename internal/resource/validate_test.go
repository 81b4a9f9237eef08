package resource_test

import (
	"errors"
	"testing"

	"monolith-service/internal/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createWidget struct {
	Name     string                 `json:"name" validate:"required"`
	Count    *int                   `json:"count" validate:"required"`
	Price    *float64               `json:"price,omitempty" validate:"required"`
	Location resource.Field[string] `json:"location"`
	Notes    string                 `json:"notes"`
}

func TestValidator(t *testing.T) {
	v := resource.NewValidator()

	t.Run("RequiredFieldsInDeclarationOrder", func(t *testing.T) {
		assert.Equal(t, []string{"name", "count", "price"}, resource.RequiredFields(&createWidget{}))
	})

	t.Run("Valid", func(t *testing.T) {
		zero := 0
		price := 0.0
		err := v.Required(&createWidget{Name: "w", Count: &zero, Price: &price})
		assert.NoError(t, err)
	})

	t.Run("MissingReportsFullList", func(t *testing.T) {
		zero := 0
		err := v.Required(&createWidget{Name: "w", Count: &zero})
		require.Error(t, err)

		var verr *resource.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"name", "count", "price"}, verr.Fields)
		assert.Equal(t, "Missing required fields: name, count, price", err.Error())
		assert.True(t, errors.Is(err, resource.ErrInvalidInput))
	})

	t.Run("EmptyStringIsMissing", func(t *testing.T) {
		one := 1
		price := 1.0
		err := v.Required(&createWidget{Count: &one, Price: &price})
		assert.Error(t, err)
	})
}
