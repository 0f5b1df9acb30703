package app

import (
	"context"
	"testing"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/rosestest"
	"github.com/charlieabtbl/cosmicroses/x/utils"
	"github.com/stretchr/testify/assert"
)

func TestChain(t *testing.T) {
	c1 := &rosestest.Decorator{}
	c2 := &rosestest.Decorator{}
	c3 := &rosestest.Decorator{}
	h := &rosestest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		utils.NewRecovery(),
		c2,
		nil,
		c3,
	).WithHandler(h)

	ctx := context.Background()
	_, err := stack.Check(ctx, nil, nil)
	assert.NoError(t, err)
	_, err = stack.Deliver(ctx, nil, nil)
	assert.NoError(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// now, let's trigger a panic below the recovery
	stack = ChainDecorators(c1, utils.NewRecovery(), c2).
		WithHandler(rosestest.PanicHandler{Value: "boom"})
	_, err = stack.Check(ctx, nil, nil)
	assert.True(t, errors.ErrPanic.Is(err))
	_, err = stack.Deliver(ctx, nil, nil)
	assert.True(t, errors.ErrPanic.Is(err))

	assert.Equal(t, 4, c1.CallCount())
	assert.Equal(t, 4, c2.CallCount())
}

func TestChainErrorStopsTheStack(t *testing.T) {
	failing := &rosestest.Decorator{DeliverErr: errors.ErrUnauthorized}
	after := &rosestest.Decorator{}
	h := &rosestest.Handler{}

	stack := ChainDecorators(failing).Chain(after).WithHandler(h)
	_, err := stack.Deliver(context.Background(), nil, nil)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, 0, after.CallCount())
	assert.Equal(t, 0, h.CallCount())

	var _ cosmicroses.Handler = stack
}
