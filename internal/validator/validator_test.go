package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type location struct {
	City string `json:"city" validate:"required"`
}

type sample struct {
	Email    string   `json:"email" validate:"required,email"`
	Role     string   `json:"role" validate:"required,is-signup-role"`
	Category string   `json:"category" validate:"omitempty,is-task-category"`
	Currency string   `json:"currency" validate:"omitempty,is-currency"`
	Status   string   `json:"status" validate:"omitempty,is-user-status"`
	Avail    string   `json:"availability" validate:"omitempty,is-availability"`
	Location location `json:"location"`
}

func validSample() sample {
	return sample{
		Email:    "user@example.com",
		Role:     "WORKER",
		Category: "REPAIR",
		Currency: "USD",
		Location: location{City: "Almaty"},
	}
}

func TestValidateOK(t *testing.T) {
	assert.NoError(t, New().Validate(validSample()))
}

func TestValidateCustomRules(t *testing.T) {
	s := validSample()
	s.Role = "ADMIN"
	s.Category = "GARDENING"
	s.Currency = "usd"
	s.Status = "DELETED"
	s.Avail = "SOMETIMES"
	s.Location.City = ""

	err := New().Validate(s)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))

	assert.Equal(t, "Invalid role", vErr.Errors["role"])
	assert.Equal(t, "Unknown task category", vErr.Errors["category"])
	assert.Contains(t, vErr.Errors, "currency")
	assert.Equal(t, "Invalid user status", vErr.Errors["status"])
	assert.Contains(t, vErr.Errors, "availability")
	assert.Equal(t, "This field is required", vErr.Errors["location.city"])
}
