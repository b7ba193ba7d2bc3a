package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqtrack/reqtrack/internal/shared/errors"
)

type tagInput struct {
	Name     string `json:"name" validate:"required"`
	Color    string `json:"color" validate:"omitempty,hexcolor6"`
	Category string `json:"category" validate:"omitempty,tagcategory"`
	Email    string `json:"email" validate:"omitempty,email"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		in      tagInput
		wantErr string
	}{
		{"valid", tagInput{Name: "UI", Color: "#3498db", Category: "機能領域"}, ""},
		{"missing name", tagInput{}, "name is required"},
		{"short color", tagInput{Name: "UI", Color: "#fff"}, "color must be a hex color"},
		{"unknown category", tagInput{Name: "UI", Category: "misc"}, "category must be a known tag category"},
		{"bad email", tagInput{Name: "UI", Email: "nope"}, "email must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
			assert.Contains(t, appErr.Details, tt.wantErr)
		})
	}
}

func TestValidatePagination(t *testing.T) {
	assert.Equal(t, Pagination{Page: 1, PageSize: 10}, ValidatePagination(0, 0))
	assert.Equal(t, Pagination{Page: 3, PageSize: 100}, ValidatePagination(3, 500))
	assert.Equal(t, 20, Pagination{Page: 3, PageSize: 10}.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
}
