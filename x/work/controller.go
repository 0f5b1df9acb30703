package work

import (
	"fmt"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/migration"
	"github.com/charlieabtbl/cosmicroses/orm"
	"github.com/charlieabtbl/cosmicroses/x/access"
	"github.com/charlieabtbl/cosmicroses/x/shares"
)

var (
	// RecordingLicenseeRole is required to create records.
	RecordingLicenseeRole = access.NewRole("RECORDING_LICENSEE")
	// PauserRole is required to pause and unpause the work.
	PauserRole = access.NewRole("PAUSER")
)

// WorkScope is the scope of the work contributors registry.
const WorkScope = "work"

// RecordScope returns the scope of the contributors registry of a record.
func RecordScope(tokenID uint64) string {
	return fmt.Sprintf("record/%d", tokenID)
}

// Controller keeps the records and the configuration of a work.
type Controller struct {
	config   *ConfigBucket
	records  orm.ModelBucket
	holdings orm.ModelBucket
	seq      orm.Sequence
	work     *shares.Registry
}

// NewController returns a controller operating on the work buckets.
func NewController() *Controller {
	return &Controller{
		config:   NewConfigBucket(),
		records:  migration.NewModelBucket(packageName, orm.NewModelBucket("record", &Record{})),
		holdings: migration.NewModelBucket(packageName, orm.NewModelBucket("holding", &Holding{})),
		seq:      orm.NewSequence("record", "id"),
		work:     shares.NewRegistry(WorkScope),
	}
}

// Config returns the configuration bucket.
func (c *Controller) Config() *ConfigBucket {
	return c.config
}

// WorkContributors returns the registry of the work contributors.
func (c *Controller) WorkContributors() *shares.Registry {
	return c.work
}

// RecordContributors returns the registry of the contributors of an
// existing record.
func (c *Controller) RecordContributors(db cosmicroses.ReadOnlyKVStore, tokenID uint64) (*shares.Registry, error) {
	if _, err := c.Record(db, tokenID); err != nil {
		return nil, err
	}
	return shares.NewRegistry(RecordScope(tokenID)), nil
}

// Record returns the record with given token id.
func (c *Controller) Record(db cosmicroses.ReadOnlyKVStore, tokenID uint64) (*Record, error) {
	var r Record
	if err := c.records.One(db, orm.EncodeSequence(tokenID), &r); err != nil {
		return nil, errors.Wrapf(err, "token %d", tokenID)
	}
	return &r, nil
}

// Balance returns the number of records owned by the address.
func (c *Controller) Balance(db cosmicroses.ReadOnlyKVStore, owner cosmicroses.Address) (uint64, error) {
	h, err := c.holding(db, owner)
	if err != nil {
		return 0, err
	}
	return h.Count, nil
}

// CreateRecord mints the next record to the owner. The record is bound to
// the contributors or, if none are given, to the payees contract.
func (c *Controller) CreateRecord(db cosmicroses.KVStore, owner cosmicroses.Address, uri string, contributors []*shares.Entry, payees cosmicroses.Address) (*Record, error) {
	if err := c.requireNotPaused(db); err != nil {
		return nil, err
	}
	id, err := c.seq.NextInt(db)
	if err != nil {
		return nil, errors.Wrap(err, "token id")
	}
	r := &Record{
		Metadata:       &cosmicroses.Metadata{},
		TokenID:        id,
		Owner:          owner,
		TokenURI:       uri,
		PayeesContract: payees,
	}
	if err := c.records.Put(db, orm.EncodeSequence(id), r); err != nil {
		return nil, errors.Wrap(err, "record")
	}
	if len(contributors) != 0 {
		if err := shares.NewRegistry(RecordScope(id)).Init(db, contributors); err != nil {
			return nil, errors.Wrap(err, "record contributors")
		}
	}
	if err := c.addHolding(db, owner, 1); err != nil {
		return nil, err
	}
	return r, nil
}

// Approve allows the spender to transfer the record. An empty spender
// clears the approval. Only the owner can approve.
func (c *Controller) Approve(db cosmicroses.KVStore, caller cosmicroses.Address, tokenID uint64, spender cosmicroses.Address) error {
	if err := c.requireNotPaused(db); err != nil {
		return err
	}
	r, err := c.Record(db, tokenID)
	if err != nil {
		return err
	}
	if !r.Owner.Equals(caller) {
		return errors.Wrap(errors.ErrUnauthorized, "caller is not the owner")
	}
	if spender.Equals(r.Owner) {
		return errors.Wrap(errors.ErrInput, "approval to the current owner")
	}
	r.Approved = spender
	return c.records.Put(db, orm.EncodeSequence(tokenID), r)
}

// Transfer moves the record from the owner to the recipient. The caller
// must be the owner or the approved spender. The approval is cleared.
func (c *Controller) Transfer(db cosmicroses.KVStore, caller, from, to cosmicroses.Address, tokenID uint64) error {
	if err := c.requireNotPaused(db); err != nil {
		return err
	}
	r, err := c.Record(db, tokenID)
	if err != nil {
		return err
	}
	if !r.Owner.Equals(caller) && (len(r.Approved) == 0 || !r.Approved.Equals(caller)) {
		return errors.Wrap(errors.ErrUnauthorized, "caller is not the owner nor approved")
	}
	if !r.Owner.Equals(from) {
		return errors.Wrap(errors.ErrInput, "transfer from incorrect owner")
	}
	r.Owner = to
	r.Approved = nil
	if err := c.records.Put(db, orm.EncodeSequence(tokenID), r); err != nil {
		return errors.Wrap(err, "record")
	}
	if err := c.addHolding(db, from, -1); err != nil {
		return err
	}
	return c.addHolding(db, to, 1)
}

// SetPaused changes the paused state. Pausing a paused work fails with
// ErrPaused, unpausing a running one with ErrState.
func (c *Controller) SetPaused(db cosmicroses.KVStore, paused bool) error {
	conf, err := c.config.Load(db)
	if err != nil {
		return err
	}
	switch {
	case paused && conf.Paused:
		return errors.Wrap(errors.ErrPaused, "already paused")
	case !paused && !conf.Paused:
		return errors.Wrap(errors.ErrState, "not paused")
	}
	conf.Paused = paused
	return c.config.Save(db, conf)
}

func (c *Controller) requireNotPaused(db cosmicroses.ReadOnlyKVStore) error {
	conf, err := c.config.Load(db)
	if err != nil {
		return err
	}
	if conf.Paused {
		return errors.Wrap(errors.ErrPaused, "work is paused")
	}
	return nil
}

func (c *Controller) holding(db cosmicroses.ReadOnlyKVStore, owner cosmicroses.Address) (*Holding, error) {
	var h Holding
	switch err := c.holdings.One(db, owner, &h); {
	case err == nil:
		return &h, nil
	case errors.ErrNotFound.Is(err):
		return &Holding{Metadata: &cosmicroses.Metadata{}, Owner: owner}, nil
	default:
		return nil, errors.Wrap(err, "holding")
	}
}

func (c *Controller) addHolding(db cosmicroses.KVStore, owner cosmicroses.Address, diff int) error {
	h, err := c.holding(db, owner)
	if err != nil {
		return err
	}
	if diff < 0 {
		h.Count--
	} else {
		h.Count++
	}
	if err := c.holdings.Put(db, owner, h); err != nil {
		return errors.Wrap(err, "holding")
	}
	return nil
}
