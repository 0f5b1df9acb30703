package app

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
)

// Code is a deployable contract implementation. Many instances of the same
// code can be deployed, each with its own storage namespace.
type Code struct {
	// Name of the code, for example "payees".
	Name string
	// Version is a semantic version string. Together with the name it
	// identifies the code, for example "payees@1.0.0".
	Version string
	// Schema declares the storage schema version of every package this
	// code keeps data for. Upgrading to a code migrates the storage to
	// those versions.
	Schema map[string]uint32
	// InitPath is the path of the message that initializes an instance.
	// It can be processed only once per instance.
	InitPath string
	// Msgs lists a prototype of every message accepted by this code. It
	// is used to decode messages from their JSON representation.
	Msgs []cosmicroses.Msg
	// Routes registers all handlers of this code.
	Routes func(cosmicroses.Registry)
	// Fallback if set handles all paths not registered by Routes.
	Fallback cosmicroses.Handler
	// Configure if set applies genesis options to an initialized
	// instance.
	Configure func(db cosmicroses.KVStore, opts cosmicroses.Options) error

	version *semver.Version
	router  *Router
}

// ID returns the unique identifier of this code.
func (c *Code) ID() string {
	return CodeID(c.Name, c.Version)
}

// SemVer returns the parsed version of this code. It is available only
// after the code was registered.
func (c *Code) SemVer() *semver.Version {
	return c.version
}

// Router returns the router with all handlers of this code.
func (c *Code) Router() *Router {
	return c.router
}

// CodeID returns the identifier of a code of given name and version.
func CodeID(name, version string) string {
	return name + "@" + version
}

// ParseCodeID splits a code identifier into the name and the version.
func ParseCodeID(id string) (string, *semver.Version, error) {
	chunks := strings.SplitN(id, "@", 2)
	if len(chunks) != 2 || chunks[0] == "" {
		return "", nil, errors.Wrapf(errors.ErrInput, "invalid code id %q", id)
	}
	v, err := semver.StrictNewVersion(chunks[1])
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "invalid code version %q: %s", chunks[1], err)
	}
	return chunks[0], v, nil
}

func (c *Code) build() error {
	if c.Name == "" {
		return errors.Wrap(errors.ErrInput, "code name is required")
	}
	v, err := semver.StrictNewVersion(c.Version)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "invalid version %q: %s", c.Version, err)
	}
	if c.Routes == nil {
		return errors.Wrap(errors.ErrInput, "routes are required")
	}
	for pkg, ver := range c.Schema {
		if ver < 1 {
			return errors.Wrapf(errors.ErrSchema, "package %q schema version must be greater than zero", pkg)
		}
	}
	r := NewRouter()
	c.Routes(r)
	if c.Fallback != nil {
		r.HandleFallback(c.Fallback)
	}
	if c.InitPath == "" || !r.Has(c.InitPath) {
		return errors.Wrapf(errors.ErrInput, "init path %q not routed", c.InitPath)
	}
	c.version = v
	c.router = r
	return nil
}

// CodeRegistry keeps all codes that can be deployed.
type CodeRegistry struct {
	codes map[string]*Code
	msgs  map[string]reflect.Type
}

// NewCodeRegistry returns an empty registry.
func NewCodeRegistry() *CodeRegistry {
	return &CodeRegistry{
		codes: make(map[string]*Code),
		msgs:  make(map[string]reflect.Type),
	}
}

// Register adds a code to the registry. A code cannot be registered twice
// and two codes cannot declare different message types for the same path.
func (r *CodeRegistry) Register(c *Code) error {
	if err := c.build(); err != nil {
		return errors.Wrapf(err, "code %s", c.ID())
	}
	if _, ok := r.codes[c.ID()]; ok {
		return errors.Wrapf(errors.ErrDuplicate, "code %s", c.ID())
	}
	for _, m := range c.Msgs {
		tp := reflect.TypeOf(m)
		if tp.Kind() != reflect.Ptr {
			return errors.Wrapf(errors.ErrType, "message %T must be a pointer", m)
		}
		if prev, ok := r.msgs[m.Path()]; ok && prev != tp {
			return errors.Wrapf(errors.ErrDuplicate, "path %q declared by %s and %s", m.Path(), prev, tp)
		}
	}
	for _, m := range c.Msgs {
		r.msgs[m.Path()] = reflect.TypeOf(m)
	}
	r.codes[c.ID()] = c
	return nil
}

// MustRegister is Register that panics on failure.
func (r *CodeRegistry) MustRegister(c *Code) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

// Get returns the code with given identifier. ErrNotFound is returned if
// no such code was registered.
func (r *CodeRegistry) Get(id string) (*Code, error) {
	c, ok := r.codes[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "code %q", id)
	}
	return c, nil
}

// Latest returns the highest registered version of the code with given
// name.
func (r *CodeRegistry) Latest(name string) (*Code, error) {
	var latest *Code
	for _, c := range r.codes {
		if c.Name != name {
			continue
		}
		if latest == nil || c.version.GreaterThan(latest.version) {
			latest = c
		}
	}
	if latest == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "code %q", name)
	}
	return latest, nil
}

// IDs returns identifiers of all registered codes, ordered by name and
// version.
func (r *CodeRegistry) IDs() []string {
	all := make([]*Code, 0, len(r.codes))
	for _, c := range r.codes {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].version.LessThan(all[j].version)
	})
	ids := make([]string, len(all))
	for i, c := range all {
		ids[i] = c.ID()
	}
	return ids
}

// NewMsg returns a new, empty message instance for given path.
func (r *CodeRegistry) NewMsg(path string) (cosmicroses.Msg, error) {
	tp, ok := r.msgs[path]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no message for path %q", path)
	}
	return reflect.New(tp.Elem()).Interface().(cosmicroses.Msg), nil
}

// DecodeMsg returns the message for given path, loaded from its JSON
// representation.
func (r *CodeRegistry) DecodeMsg(path string, raw []byte) (cosmicroses.Msg, error) {
	msg, err := r.NewMsg(path)
	if err != nil {
		return nil, err
	}
	if len(raw) != 0 {
		if err := json.Unmarshal(raw, msg); err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "decode %s: %s", path, err)
		}
	}
	return msg, nil
}

func (c *Code) String() string {
	if c.router == nil {
		return c.ID()
	}
	return fmt.Sprintf("%s (%d routes)", c.ID(), len(c.router.Paths()))
}
