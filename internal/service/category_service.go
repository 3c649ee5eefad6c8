package service

import (
	"context"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// CategoryService serves the category reference data.
type CategoryService struct {
	storage *storage.Storage
}

func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// ListCategories returns all categories, or only those of categoryType when
// it is set.
func (s *CategoryService) ListCategories(ctx context.Context, categoryType *CategoryType) ([]Category, error) {
	var filter *sqlconfig.CategoryType
	if categoryType != nil {
		t := sqlconfig.CategoryType(*categoryType)
		filter = &t
	}

	rows, err := s.storage.Categories.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = Category{
			ID:   row.ID,
			Name: row.CategoryName,
			Type: CategoryType(row.Type),
		}
	}
	return categories, nil
}
