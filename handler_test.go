package cosmicroses

import (
	"context"
	"testing"

	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingMsg struct {
	Text string `protobuf:"bytes,1,opt,name=text,proto3" json:"text"`
}

func (m *pingMsg) Reset()         { *m = pingMsg{} }
func (m *pingMsg) String() string { return proto.CompactTextString(m) }
func (*pingMsg) ProtoMessage()    {}
func (*pingMsg) Path() string     { return "test/ping" }

func (m *pingMsg) Validate() error {
	if m.Text == "" {
		return errors.Wrap(errors.ErrEmpty, "text")
	}
	return nil
}

type pingTx struct {
	msg Msg
}

func (tx pingTx) GetMsg() (Msg, error) { return tx.msg, nil }

func TestLoadMsg(t *testing.T) {
	var msg pingMsg
	require.NoError(t, LoadMsg(pingTx{msg: &pingMsg{Text: "hi"}}, &msg))
	assert.Equal(t, "hi", msg.Text)

	err := LoadMsg(pingTx{msg: &pingMsg{}}, &msg)
	assert.True(t, errors.ErrEmpty.Is(err))

	var wrong Uint64Result
	err = LoadMsg(pingTx{msg: &pingMsg{Text: "hi"}}, &wrong)
	assert.True(t, errors.ErrType.Is(err))

	err = LoadMsg(pingTx{}, &msg)
	assert.True(t, errors.ErrMsg.Is(err))
}

func TestResultRoundtrip(t *testing.T) {
	res, err := NewResult(&Uint64Result{Value: 3333})
	require.NoError(t, err)
	val, err := Uint64(res, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(3333), val)

	_, err = Uint64(nil, errors.ErrNothingDue)
	assert.True(t, errors.ErrNothingDue.Is(err))
}

func TestMetadataValidate(t *testing.T) {
	var empty *Metadata
	assert.True(t, errors.ErrMetadata.Is(empty.Validate()))
	assert.True(t, errors.ErrMetadata.Is((&Metadata{}).Validate()))
	assert.NoError(t, (&Metadata{Schema: 1}).Validate())
}

func TestOptions(t *testing.T) {
	opts := Options{"name": []byte(`"roses"`), "broken": []byte(`{`)}
	var name string
	require.NoError(t, opts.ReadOptions("name", &name))
	assert.Equal(t, "roses", name)
	require.NoError(t, opts.ReadOptions("missing", &name))
	assert.True(t, errors.ErrInput.Is(opts.ReadOptions("broken", &name)))
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, DefaultLogger, GetLogger(ctx))

	_, ok := GetContract(ctx)
	assert.False(t, ok)

	self := NewCondition("contract", "instance", []byte{1})
	ctx = WithContract(ctx, self)
	got, ok := GetContract(ctx)
	assert.True(t, ok)
	assert.Equal(t, self, got)

	_, ok = GetInvoker(ctx)
	assert.False(t, ok)
}
