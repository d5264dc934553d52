package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

func TestNewProduct(t *testing.T) {
	sellerID := uuid.New()
	categoryID := uuid.New()

	t.Run("valid product", func(t *testing.T) {
		p, err := NewProduct("Keyboard", "Mechanical", decimal.NewFromInt(50), 10, sellerID, categoryID)
		require.NoError(t, err)
		assert.Equal(t, "Keyboard", p.Name)
		assert.Equal(t, 1, p.Version)
		assert.True(t, p.IsInStock())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct("", "", decimal.NewFromInt(1), 1, sellerID, categoryID)
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct("X", "", decimal.NewFromInt(-1), 1, sellerID, categoryID)
		assert.Error(t, err)
	})

	t.Run("rejects missing seller", func(t *testing.T) {
		_, err := NewProduct("X", "", decimal.NewFromInt(1), 1, uuid.Nil, categoryID)
		assert.Error(t, err)
	})
}

func TestProduct_Stock(t *testing.T) {
	p, err := NewProduct("Keyboard", "", decimal.NewFromInt(50), 5, uuid.New(), uuid.New())
	require.NoError(t, err)

	require.NoError(t, p.DecreaseStock(3))
	assert.Equal(t, 2, p.Stock)

	assert.ErrorIs(t, p.DecreaseStock(3), shared.ErrInsufficientStock)
	assert.Equal(t, 2, p.Stock)

	require.NoError(t, p.IncreaseStock(4))
	assert.Equal(t, 6, p.Stock)

	assert.Error(t, p.DecreaseStock(0))
}

func TestCategory(t *testing.T) {
	c, err := NewCategory("Electronics")
	require.NoError(t, err)

	require.NoError(t, c.Rename("Gadgets"))
	assert.Equal(t, "Gadgets", c.Name)

	assert.Error(t, c.Rename(""))

	_, err = NewCategory("")
	assert.Error(t, err)
}
