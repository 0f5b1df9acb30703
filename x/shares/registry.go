package shares

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/migration"
	"github.com/charlieabtbl/cosmicroses/orm"
)

const packageName = "shares"

// Registry keeps the shares of a single scope.
type Registry struct {
	scope  string
	shares orm.ModelBucket
	refs   orm.ModelBucket
	sets   orm.ModelBucket
}

// NewRegistry returns the registry of given scope. Registries of different
// scopes are independent.
func NewRegistry(scope string) *Registry {
	return &Registry{
		scope:  scope,
		shares: migration.NewModelBucket(packageName, orm.NewModelBucket("share", &Share{})),
		refs:   migration.NewModelBucket(packageName, orm.NewModelBucket("shareref", &ShareRef{})),
		sets:   migration.NewModelBucket(packageName, orm.NewModelBucket("shareset", &ShareSet{})),
	}
}

// Scope returns the scope of this registry.
func (r *Registry) Scope() string {
	return r.scope
}

func (r *Registry) key(suffix []byte) []byte {
	key := make([]byte, 0, len(r.scope)+1+len(suffix))
	key = append(key, r.scope...)
	key = append(key, '/')
	return append(key, suffix...)
}

func (r *Registry) header(db cosmicroses.ReadOnlyKVStore) (*ShareSet, error) {
	var set ShareSet
	err := r.sets.One(db, []byte(r.scope), &set)
	switch {
	case err == nil:
		return &set, nil
	case errors.ErrNotFound.Is(err):
		return &ShareSet{Metadata: &cosmicroses.Metadata{}}, nil
	default:
		return nil, errors.Wrap(err, "share set")
	}
}

// Lookup returns the share of given address. It fails with ErrNotFound if
// the address is not registered.
func (r *Registry) Lookup(db cosmicroses.ReadOnlyKVStore, addr cosmicroses.Address) (*Share, error) {
	var s Share
	if err := r.shares.One(db, r.key(addr), &s); err != nil {
		return nil, errors.Wrapf(err, "address %s", addr)
	}
	return &s, nil
}

// ByIndex returns the share registered at given insertion position. It
// fails with ErrOutOfRange if index is not lower than the count.
func (r *Registry) ByIndex(db cosmicroses.ReadOnlyKVStore, index uint64) (*Share, error) {
	set, err := r.header(db)
	if err != nil {
		return nil, err
	}
	if index >= set.Count {
		return nil, errors.Wrapf(errors.ErrOutOfRange, "index %d, count %d", index, set.Count)
	}
	var ref ShareRef
	if err := r.refs.One(db, r.key(orm.EncodeSequence(index)), &ref); err != nil {
		return nil, errors.Wrapf(err, "index %d", index)
	}
	return r.Lookup(db, ref.Address)
}

// Count returns the number of registered addresses.
func (r *Registry) Count(db cosmicroses.ReadOnlyKVStore) (uint64, error) {
	set, err := r.header(db)
	if err != nil {
		return 0, err
	}
	return set.Count, nil
}

// TotalShares returns the sum of the shares of all registered addresses.
func (r *Registry) TotalShares(db cosmicroses.ReadOnlyKVStore) (uint64, error) {
	set, err := r.header(db)
	if err != nil {
		return 0, err
	}
	return set.TotalShares, nil
}

// All returns all shares in the insertion order.
func (r *Registry) All(db cosmicroses.ReadOnlyKVStore) ([]*Share, error) {
	set, err := r.header(db)
	if err != nil {
		return nil, err
	}
	all := make([]*Share, 0, set.Count)
	for i := uint64(0); i < set.Count; i++ {
		s, err := r.ByIndex(db, i)
		if err != nil {
			return nil, err
		}
		all = append(all, s)
	}
	return all, nil
}

// Set registers the address with given shares. A registered address keeps
// its index and has its shares replaced.
func (r *Registry) Set(db cosmicroses.KVStore, addr cosmicroses.Address, shares uint64) error {
	return r.SetBatch(db, []*Entry{{Address: addr, Shares: shares}})
}

// SetBatch applies Set for every entry in order. All entries are validated
// before anything is written, so that an invalid entry rejects the whole
// batch.
func (r *Registry) SetBatch(db cosmicroses.KVStore, entries []*Entry) error {
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return errors.Wrapf(err, "entry %d", i)
		}
	}
	set, err := r.header(db)
	if err != nil {
		return err
	}
	if err := r.checkTotal(db, set.TotalShares, entries); err != nil {
		return err
	}

	for _, e := range entries {
		if err := r.set(db, set, e); err != nil {
			return err
		}
	}
	if len(entries) == 0 {
		return nil
	}
	if err := r.sets.Put(db, []byte(r.scope), set); err != nil {
		return errors.Wrap(err, "share set")
	}
	return nil
}

// Init fills an empty registry. It fails with ErrDuplicate if any address
// was ever registered in the scope.
func (r *Registry) Init(db cosmicroses.KVStore, entries []*Entry) error {
	count, err := r.Count(db)
	if err != nil {
		return err
	}
	if count != 0 {
		return errors.Wrapf(errors.ErrDuplicate, "scope %q already initialized", r.scope)
	}
	return r.SetBatch(db, entries)
}

// checkTotal ensures that applying all entries does not overflow the total.
func (r *Registry) checkTotal(db cosmicroses.ReadOnlyKVStore, total uint64, entries []*Entry) error {
	current := make(map[string]uint64, len(entries))
	for _, e := range entries {
		prev, ok := current[string(e.Address)]
		if !ok {
			switch s, err := r.Lookup(db, e.Address); {
			case err == nil:
				prev = s.Shares
			case !errors.ErrNotFound.Is(err):
				return err
			}
		}
		total -= prev
		if total+e.Shares < total {
			return errors.Wrap(errors.ErrOverflow, "total shares")
		}
		total += e.Shares
		current[string(e.Address)] = e.Shares
	}
	return nil
}

func (r *Registry) set(db cosmicroses.KVStore, set *ShareSet, e *Entry) error {
	s, err := r.Lookup(db, e.Address)
	switch {
	case err == nil:
		set.TotalShares = set.TotalShares - s.Shares + e.Shares
		s.Shares = e.Shares
	case errors.ErrNotFound.Is(err):
		s = &Share{
			Metadata: &cosmicroses.Metadata{},
			Address:  e.Address,
			Shares:   e.Shares,
			Index:    set.Count,
		}
		ref := &ShareRef{Metadata: &cosmicroses.Metadata{}, Address: e.Address}
		if err := r.refs.Put(db, r.key(orm.EncodeSequence(s.Index)), ref); err != nil {
			return errors.Wrap(err, "share ref")
		}
		set.Count++
		set.TotalShares += e.Shares
	default:
		return err
	}
	if err := r.shares.Put(db, r.key(e.Address), s); err != nil {
		return errors.Wrap(err, "share")
	}
	return nil
}

// Find is Lookup that returns a zero share instead of failing when the
// address is not registered.
func (r *Registry) Find(db cosmicroses.ReadOnlyKVStore, addr cosmicroses.Address) (*Share, error) {
	s, err := OrZero(r.Lookup(db, addr))
	if err != nil {
		return nil, err
	}
	if s.Address == nil {
		s.Address = addr
	}
	return s, nil
}

// OrZero turns a not found lookup result into a zero share. Any other
// result is returned unchanged.
func OrZero(s *Share, err error) (*Share, error) {
	if errors.ErrNotFound.Is(err) {
		return &Share{Metadata: &cosmicroses.Metadata{Schema: 1}}, nil
	}
	return s, err
}
