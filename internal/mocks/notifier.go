package mocks

import (
	"context"

	"github.com/Behyna/cc5mock/pkg/callback"
	"github.com/stretchr/testify/mock"
)

type Notifier struct {
	mock.Mock
}

func (n *Notifier) Notify(ctx context.Context, target string) callback.Result {
	args := n.Called(ctx, target)
	return args.Get(0).(callback.Result)
}
