package app

import (
	"testing"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/rosestest/assert"
)

func TestCodeRegistry(t *testing.T) {
	reg := NewCodeRegistry()
	assert.Nil(t, reg.Register(counterCode("1.0.0")))
	assert.Nil(t, reg.Register(counterCode("1.10.0")))
	assert.Nil(t, reg.Register(counterCode("1.2.0")))
	assert.IsErr(t, errors.ErrDuplicate, reg.Register(counterCode("1.0.0")))
	assert.IsErr(t, errors.ErrInput, reg.Register(counterCode("one")))

	noInit := counterCode("2.0.0")
	noInit.InitPath = "counter/missing"
	assert.IsErr(t, errors.ErrInput, reg.Register(noInit))

	assert.Equal(t, []string{"counter@1.0.0", "counter@1.2.0", "counter@1.10.0"}, reg.IDs())

	latest, err := reg.Latest("counter")
	assert.Nil(t, err)
	assert.Equal(t, "counter@1.10.0", latest.ID())

	_, err = reg.Latest("payees")
	assert.IsErr(t, errors.ErrNotFound, err)

	msg, err := reg.DecodeMsg("counter/init", []byte(`{"start": 3}`))
	assert.Nil(t, err)
	assert.Equal(t, &initCounterMsg{Start: 3}, msg)

	_, err = reg.DecodeMsg("counter/unknown", nil)
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = reg.DecodeMsg("counter/init", []byte(`{"start": "x"}`))
	assert.IsErr(t, errors.ErrInput, err)
}

type otherInitMsg struct{ initCounterMsg }

func TestCodeRegistryPathConflict(t *testing.T) {
	reg := NewCodeRegistry()
	assert.Nil(t, reg.Register(counterCode("1.0.0")))

	conflicting := counterCode("2.0.0")
	conflicting.Msgs = []cosmicroses.Msg{&otherInitMsg{}}
	assert.IsErr(t, errors.ErrDuplicate, reg.Register(conflicting))
}

func TestParseCodeID(t *testing.T) {
	name, v, err := ParseCodeID("work@2.0.0")
	assert.Nil(t, err)
	assert.Equal(t, "work", name)
	assert.Equal(t, "2.0.0", v.String())

	_, _, err = ParseCodeID("work")
	assert.IsErr(t, errors.ErrInput, err)
	_, _, err = ParseCodeID("work@latest")
	assert.IsErr(t, errors.ErrInput, err)
}
