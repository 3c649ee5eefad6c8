package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

var transactionColumns = []any{
	"id", "user_id", "category_id", "amount", "description", "transaction_date", "created_at",
}

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, notFound(err)
	}
	return row, nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	columns := []string{"user_id", "category_id", "amount", "description"}
	values := []any{create.UserID, create.CategoryID, create.Amount, create.Description}
	if !create.TransactionDate.IsZero() {
		columns = append(columns, "transaction_date")
		values = append(values, create.TransactionDate)
	}

	q := psql.Insert(
		im.Into("transactions", columns...),
		im.Values(psql.Arg(values...)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, foreignKeyNotFound(err)
	}
	return id, nil
}

// List returns the user's transactions matching the filter, newest first.
// A positive Limit fetches one extra row so callers can detect a next page.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
	}
	if filter.CategoryID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
	}
	if filter.MaxCreationTime != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit+1))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)

	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}

// SumAmounts totals |amount| of the user's transactions in categoryID whose
// transaction_date falls in period. It is zero when nothing matches.
func (t *TransactionsTable) SumAmounts(ctx context.Context, userID, categoryID uuid.UUID, period DateRange) (decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("COALESCE(SUM(ABS(amount)), 0)")),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
		sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(period.From))),
		sm.Where(psql.Quote("transaction_date").LT(psql.Arg(period.Until))),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[decimal.Decimal])
}

// SumByCategory totals the user's transactions in period per category,
// largest total first, ties broken by category name.
func (t *TransactionsTable) SumByCategory(ctx context.Context, userID uuid.UUID, period DateRange) ([]*CategoryTotal, error) {
	q := psql.Select(
		sm.Columns(
			psql.Quote("t", "category_id"),
			psql.Quote("c", "category_name"),
			psql.Quote("c", "type"),
			psql.Raw(`COALESCE(SUM(ABS("t"."amount")), 0) AS total`),
		),
		sm.From("transactions").As("t"),
		sm.InnerJoin("categories").As("c").On(
			psql.Quote("c", "id").EQ(psql.Quote("t", "category_id")),
		),
		sm.Where(psql.Quote("t", "user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("t", "transaction_date").GTE(psql.Arg(period.From))),
		sm.Where(psql.Quote("t", "transaction_date").LT(psql.Arg(period.Until))),
		sm.GroupBy(psql.Quote("t", "category_id")),
		sm.GroupBy(psql.Quote("c", "category_name")),
		sm.GroupBy(psql.Quote("c", "type")),
		sm.OrderBy(psql.Raw("total")).Desc(),
		sm.OrderBy(psql.Quote("c", "category_name")).Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*CategoryTotal]())
}
