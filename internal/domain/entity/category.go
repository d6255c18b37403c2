// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (income or expense).
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "INCOME"
	CategoryTypeExpense CategoryType = "EXPENSE"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#9e9e9e"

// Category represents a transaction category. Categories are deactivated,
// never removed, once transactions reference them.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      CategoryType
	Color     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new active Category entity.
func NewCategory(name string, categoryType CategoryType, color string) *Category {
	if color == "" {
		color = DefaultCategoryColor
	}
	now := time.Now().UTC()
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		Color:     color,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsValidCategoryType reports whether the given type is INCOME or EXPENSE.
func IsValidCategoryType(t CategoryType) bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}
