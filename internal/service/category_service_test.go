package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

func TestCategoryService_ListCategories_Filtered(t *testing.T) {
	categories := sqlconfig.NewMockICategoryTable(t)
	svc := NewCategoryService(&storage.Storage{Reader: storage.Reader{Categories: categories}})

	salaryID := uuid.Must(uuid.NewV4())
	categories.EXPECT().List(mock.Anything, mock.MatchedBy(func(ct *sqlconfig.CategoryType) bool {
		return ct != nil && *ct == sqlconfig.CategoryTypeIncome
	})).Return([]*sqlconfig.Category{
		{ID: salaryID, CategoryName: "Salary", Type: sqlconfig.CategoryTypeIncome},
	}, nil)

	income := CategoryTypeIncome
	got, err := svc.ListCategories(context.Background(), &income)

	require.NoError(t, err)
	assert.Equal(t, []Category{{ID: salaryID, Name: "Salary", Type: CategoryTypeIncome}}, got)
}

func TestCategoryService_ListCategories_All(t *testing.T) {
	categories := sqlconfig.NewMockICategoryTable(t)
	svc := NewCategoryService(&storage.Storage{Reader: storage.Reader{Categories: categories}})

	categories.EXPECT().List(mock.Anything, (*sqlconfig.CategoryType)(nil)).Return([]*sqlconfig.Category{}, nil)

	got, err := svc.ListCategories(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}
