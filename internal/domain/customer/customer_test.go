package customer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer(" Yamada ", "Acme", "Yamada@Acme.co.jp", "", now)
	require.NoError(t, err)
	assert.Equal(t, "Yamada", c.Name())
	assert.Equal(t, "yamada@acme.co.jp", c.Email())

	_, err = NewCustomer("", "Acme", "a@b.co", "", now)
	assert.Error(t, err)
	_, err = NewCustomer("A", "", "a@b.co", "", now)
	assert.Error(t, err)
	_, err = NewCustomer("A", "Acme", "bad", "", now)
	assert.Error(t, err)
}

func TestCustomerUpdate_KeepsEmptyInputs(t *testing.T) {
	c, err := NewCustomer("Yamada", "Acme", "y@acme.co", "03-0000", now)
	require.NoError(t, err)

	later := now.Add(time.Hour)
	require.NoError(t, c.Update("", "Globex", "", "", later))

	assert.Equal(t, "Yamada", c.Name())
	assert.Equal(t, "Globex", c.Company())
	assert.Equal(t, "y@acme.co", c.Email())
	assert.Equal(t, "03-0000", c.Phone())
	assert.Equal(t, later, c.UpdatedAt())

	assert.Error(t, c.Update("", "", "broken", "", later))
}
