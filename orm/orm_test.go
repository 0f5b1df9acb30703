package orm

import (
	"bytes"
	"testing"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/rosestest/assert"
	"github.com/charlieabtbl/cosmicroses/store"
	"github.com/gogo/protobuf/proto"
)

type counter struct {
	Metadata *cosmicroses.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Count    uint64                `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *counter) Reset()         { *m = counter{} }
func (m *counter) String() string { return proto.CompactTextString(m) }
func (*counter) ProtoMessage()    {}

func (m *counter) Validate() error {
	return m.Metadata.Validate()
}

type other struct {
	counter
}

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	if err := b.Put(db, []byte("c1"), &counter{Metadata: &cosmicroses.Metadata{Schema: 1}, Count: 1}); err != nil {
		t.Fatalf("cannot save counter instance: %s", err)
	}

	var c1 counter
	if err := b.One(db, []byte("c1"), &c1); err != nil {
		t.Fatalf("cannot get c1 counter: %s", err)
	}
	if c1.Count != 1 {
		t.Fatalf("unexpected counter state: %d", c1.Count)
	}
	assert.Nil(t, b.Has(db, []byte("c1")))

	if err := b.Delete(db, []byte("c1")); err != nil {
		t.Fatalf("cannot delete c1 counter: %s", err)
	}
	if err := b.Delete(db, []byte("unknown")); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error when deleting unexisting instance: %s", err)
	}
	if err := b.One(db, []byte("c1"), &c1); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error for an unknown model get: %s", err)
	}
}

func TestModelBucketValidation(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	err := b.Put(db, []byte("c1"), &counter{Count: 1})
	assert.IsErr(t, errors.ErrMetadata, err)

	err = b.Put(db, nil, &counter{Metadata: &cosmicroses.Metadata{Schema: 1}})
	assert.IsErr(t, errors.ErrEmpty, err)

	err = b.Put(db, []byte("c1"), &other{})
	assert.IsErr(t, errors.ErrType, err)

	var o other
	err = b.One(db, []byte("c1"), &o)
	assert.IsErr(t, errors.ErrType, err)
}

func TestModelBucketNamespaces(t *testing.T) {
	db := store.MemStore()
	a := NewModelBucket("a", &counter{})
	b := NewModelBucket("b", &counter{})

	assert.Nil(t, a.Put(db, []byte("x"), &counter{Metadata: &cosmicroses.Metadata{Schema: 1}, Count: 7}))
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, []byte("x")))
}

func TestSequence(t *testing.T) {
	db := store.MemStore()

	cases := map[string]struct {
		bucket     string
		increments uint64
	}{
		"records":   {"records", 22},
		"instances": {"instances", 11},
		"tokens":    {"tokens", 1},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			s := NewSequence(tc.bucket, "id")
			latest, err := s.Latest(db)
			assert.Nil(t, err)
			assert.Equal(t, uint64(0), latest)
			orig := EncodeSequence(latest)

			var val uint64
			for i := uint64(0); i < tc.increments; i++ {
				val, err = s.NextInt(db)
				assert.Nil(t, err)
			}
			assert.Equal(t, tc.increments, val)

			// make sure final value is bigger than original value
			// if we use the raw bytes to index stuff
			last, err := s.NextVal(db)
			assert.Nil(t, err)
			assert.Equal(t, 1, bytes.Compare(last, orig))

			latest, err = s.Latest(db)
			assert.Nil(t, err)
			assert.Equal(t, tc.increments+1, latest)
		})
	}
}
