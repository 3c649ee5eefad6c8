package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/service"
)

// Category is the API response model for a category.
type Category struct {
	ID   string `json:"id" doc:"Category UUID"`
	Name string `json:"name" doc:"Category name"`
	Type string `json:"type" enum:"income,expense" doc:"Category type"`
}

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	Type string `query:"type" enum:"income,expense" doc:"Only return categories of this type"`
}

type ListCategoriesResponseBody struct {
	Categories []Category `json:"categories" doc:"Categories ordered by type then name"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

type categoryLister interface {
	ListCategories(ctx context.Context, categoryType *service.CategoryType) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Description: "Returns the income and expense categories transactions and budgets can use.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	var filter *service.CategoryType
	if input.Type != "" {
		t := service.CategoryType(input.Type)
		if !t.Valid() {
			return nil, huma.NewError(http.StatusBadRequest, "type must be income or expense")
		}
		filter = &t
	}

	categories, err := h.CategoryService.ListCategories(ctx, filter)
	if err != nil {
		return nil, apiutil.Error(err, "failed to list categories")
	}

	resp := ListCategoriesResponseBody{Categories: make([]Category, len(categories))}
	for i, c := range categories {
		resp.Categories[i] = Category{
			ID:   c.ID.String(),
			Name: c.Name,
			Type: string(c.Type),
		}
	}

	return &ListCategoriesOutput{Body: resp}, nil
}
