package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IBudgetTable = (*BudgetsTable)(nil)

// BudgetsTable provides access to the budgets table.
type BudgetsTable struct {
	exec bob.Executor
}

func NewBudgetsTable(exec bob.Executor) *BudgetsTable {
	return &BudgetsTable{exec: exec}
}

func budgetSelect() []bob.Mod[*dialect.SelectQuery] {
	return []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			psql.Quote("b", "id"),
			psql.Quote("b", "user_id"),
			psql.Quote("b", "category_id"),
			psql.Quote("c", "category_name"),
			psql.Quote("b", "amount"),
			psql.Quote("b", "start_date"),
			psql.Quote("b", "end_date"),
			psql.Quote("b", "created_at"),
		),
		sm.From("budgets").As("b"),
		sm.InnerJoin("categories").As("c").On(
			psql.Quote("c", "id").EQ(psql.Quote("b", "category_id")),
		),
	}
}

// FindByID retrieves a budget by primary key.
func (t *BudgetsTable) FindByID(ctx context.Context, id uuid.UUID) (*Budget, error) {
	queryMods := append(budgetSelect(), sm.Where(psql.Quote("b", "id").EQ(psql.Arg(id))))

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Budget]())
	if err != nil {
		return nil, notFound(err)
	}
	return row, nil
}

// List returns the budgets matching the filter ordered by category name.
func (t *BudgetsTable) List(ctx context.Context, filter *BudgetFilter) ([]*Budget, error) {
	queryMods := append(budgetSelect(),
		sm.Where(psql.Quote("b", "user_id").EQ(psql.Arg(filter.UserID))),
		sm.Where(psql.Quote("b", "start_date").GTE(psql.Arg(filter.Period.From))),
		sm.Where(psql.Quote("b", "start_date").LT(psql.Arg(filter.Period.Until))),
	)
	if filter.CategoryID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("b", "category_id").EQ(psql.Arg(*filter.CategoryID))))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("c", "category_name")).Asc(),
		sm.OrderBy(psql.Quote("b", "id")).Asc(),
	)

	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Budget]())
}

// Insert creates a budget and returns its generated ID.
func (t *BudgetsTable) Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("budgets", "user_id", "category_id", "amount", "start_date", "end_date"),
		im.Values(psql.Arg(create.UserID, create.CategoryID, create.Amount, create.StartDate, create.EndDate)),
		im.OnConflict("user_id", "category_id", "start_date").DoNothing(),
		im.Returning("id"),
	)

	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, ErrConflict
	}
	if err != nil {
		return uuid.Nil, foreignKeyNotFound(err)
	}
	return id, nil
}

// Update applies the set fields of update to the budget.
func (t *BudgetsTable) Update(ctx context.Context, id uuid.UUID, update *BudgetUpdate) error {
	var queryMods []bob.Mod[*dialect.UpdateQuery]
	if v, ok := update.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(v))
	}
	if v, ok := update.CategoryID.Get(); ok {
		queryMods = append(queryMods, um.SetCol("category_id").ToArg(v))
	}
	if len(queryMods) == 0 {
		return nil
	}
	queryMods = append(queryMods,
		um.Table("budgets"),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	res, err := bob.Exec(ctx, t.exec, psql.Update(queryMods...))
	if err != nil {
		return uniqueViolation(foreignKeyNotFound(err))
	}
	return requireAffected(res)
}

// Delete removes the budget.
func (t *BudgetsTable) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := bob.Exec(ctx, t.exec, psql.Delete(
		dm.From("budgets"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	))
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Postgres error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
)

func foreignKeyNotFound(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
		return ErrNotFound
	}
	return err
}

func uniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return ErrConflict
	}
	return err
}
