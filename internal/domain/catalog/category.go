package catalog

import (
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// Category groups products for browsing
type Category struct {
	shared.BaseAggregateRoot
	Name string `gorm:"not null;uniqueIndex"`
}

// TableName specifies the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(name string) (*Category, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category name is required")
	}
	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}, nil
}

// Rename changes the category name
func (c *Category) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Category name is required")
	}
	c.Name = name
	return nil
}
