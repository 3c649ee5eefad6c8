package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ICategoryTable = (*CategoriesTable)(nil)

var categoryColumns = []any{"id", "category_name", "type", "created_at"}

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

// FindByID retrieves a category by primary key.
func (t *CategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	return t.findOne(ctx, sm.Where(psql.Quote("id").EQ(psql.Arg(id))))
}

// FindByName retrieves a category by name, ignoring case.
func (t *CategoriesTable) FindByName(ctx context.Context, name string, categoryType CategoryType) (*Category, error) {
	return t.findOne(ctx,
		sm.Where(psql.Raw("lower(category_name) = lower(?)", name)),
		sm.Where(psql.Quote("type").EQ(psql.Arg(string(categoryType)))),
	)
}

// List returns categories ordered by name. A nil type returns both kinds.
func (t *CategoriesTable) List(ctx context.Context, categoryType *CategoryType) ([]*Category, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(categoryColumns...),
		sm.From("categories"),
	}
	if categoryType != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("type").EQ(psql.Arg(string(*categoryType)))))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("category_name")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Category]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (t *CategoriesTable) findOne(ctx context.Context, where ...bob.Mod[*dialect.SelectQuery]) (*Category, error) {
	queryMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(categoryColumns...),
		sm.From("categories"),
	}, where...)

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Category]())
	if err != nil {
		return nil, notFound(err)
	}
	return row, nil
}
