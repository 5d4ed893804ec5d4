package validation

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineInput struct {
	ProductID *uint `json:"productId" binding:"required"`
	Quantity  *int  `json:"quantity" binding:"required,gte=1"`
}

type orderInput struct {
	Items  []lineInput `json:"items" binding:"required,min=1,dive"`
	Total  *int        `json:"total" binding:"required,gte=0"`
	Status string      `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
	Email  string      `json:"customerEmail" binding:"omitempty,email"`
}

func ptr[T any](v T) *T { return &v }

func validate(t *testing.T, in orderInput) error {
	t.Helper()
	err := binding.Validator.ValidateStruct(&in)
	require.Error(t, err)
	return err
}

func TestFirstError_ReportsJSONFieldNames(t *testing.T) {
	field, message := FirstError(validate(t, orderInput{}))
	assert.Equal(t, "items", field)
	assert.Equal(t, "items is required", message)

	field, _ = FirstError(validate(t, orderInput{Items: []lineInput{}, Total: ptr(0)}))
	assert.Equal(t, "items", field)

	field, message = FirstError(validate(t, orderInput{
		Items: []lineInput{{ProductID: ptr(uint(1)), Quantity: ptr(0)}},
		Total: ptr(0),
	}))
	assert.Equal(t, "items[0].quantity", field)
	assert.Contains(t, message, "1 or greater")

	field, message = FirstError(validate(t, orderInput{
		Items: []lineInput{{ProductID: ptr(uint(1)), Quantity: ptr(1)}},
		Total: ptr(-5),
	}))
	assert.Equal(t, "total", field)
	assert.Equal(t, "total must be 0 or greater", message)

	field, message = FirstError(validate(t, orderInput{
		Items:  []lineInput{{ProductID: ptr(uint(1)), Quantity: ptr(1)}},
		Total:  ptr(0),
		Status: "shipped",
	}))
	assert.Equal(t, "status", field)
	assert.Contains(t, message, "pending, completed, cancelled")

	field, message = FirstError(validate(t, orderInput{
		Items: []lineInput{{ProductID: ptr(uint(1)), Quantity: ptr(1)}},
		Total: ptr(0),
		Email: "not-an-email",
	}))
	assert.Equal(t, "customerEmail", field)
	assert.Contains(t, message, "valid email")
}

func TestFirstError_NonValidatorError(t *testing.T) {
	field, message := FirstError(errors.New("unexpected EOF"))
	assert.Empty(t, field)
	assert.Equal(t, "unexpected EOF", message)
}
