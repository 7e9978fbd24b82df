package formstate_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/formstate/pkg/formstate"
)

// MockRule is a mock validation function.
type MockRule struct {
	mock.Mock
}

func (m *MockRule) Validate(ctx context.Context, value any, values formstate.Values) error {
	args := m.Called(ctx, value, values)
	return args.Error(0)
}

func resolves(context.Context, any, formstate.Values) error { return nil }

func rejects(msgs ...string) formstate.ValidationFunc {
	return func(context.Context, any, formstate.Values) error {
		return formstate.Fail(msgs...)
	}
}
