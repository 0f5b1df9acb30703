package utils

import (
	"bytes"
	"context"
	"testing"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/rosestest"
	"github.com/charlieabtbl/cosmicroses/store"
	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	ctx := cosmicroses.WithLogger(context.Background(), log.NewTMLogger(&buf))
	tx := &rosestest.Tx{Msg: &rosestest.Msg{RoutePath: "payees/release"}}
	db := store.MemStore()

	_, err := NewLogging().Deliver(ctx, db, tx, &rosestest.Handler{DeliverResult: cosmicroses.DeliverResult{Log: "released"}})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "released")
	assert.Contains(t, buf.String(), "payees/release")

	buf.Reset()
	_, err = NewLogging().Deliver(ctx, db, tx, &rosestest.Handler{DeliverErr: errors.ErrNothingDue})
	assert.True(t, errors.ErrNothingDue.Is(err))
	assert.Contains(t, buf.String(), "payee is not due any payment")
}
