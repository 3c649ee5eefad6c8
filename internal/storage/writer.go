package storage

import (
	"context"

	"github.com/stephenafamo/bob"
)

// Committer ends a transaction.
type Committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables bound to an open transaction.
type Writer struct {
	Reader

	tx Committer
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		Reader: *NewReader(tx),
		tx:     txCommitter{commit: tx.Commit, rollback: tx.Rollback},
	}
}

// NewWriterWithTables builds a Writer over tables that are already bound to
// an executor. A nil tx makes Commit and Rollback no-ops.
func NewWriterWithTables(tables Reader, tx Committer) *Writer {
	if tx == nil {
		tx = txCommitter{}
	}
	return &Writer{
		Reader: tables,
		tx:     tx,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}

type txCommitter struct {
	commit   func(ctx context.Context) error
	rollback func(ctx context.Context) error
}

func (c txCommitter) Commit(ctx context.Context) error {
	if c.commit == nil {
		return nil
	}
	return c.commit(ctx)
}

func (c txCommitter) Rollback(ctx context.Context) error {
	if c.rollback == nil {
		return nil
	}
	return c.rollback(ctx)
}
