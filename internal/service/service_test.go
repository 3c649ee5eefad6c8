package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/operator/actions"
)

// mockProcessor runs nothing; tests use Run to fill in action results.
type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	return m.Called(ctx, action).Error(0)
}
