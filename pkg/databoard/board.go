package databoard

// Tracer is the minimal logging surface a Board can be given to trace its
// routing decisions at debug level. *logging.Logger from this module's
// internal/logging package satisfies it; so does any other logger whose
// Debug method follows the same printf-style convention. A Board with no
// Tracer attached never touches it.
type Tracer interface {
	Debug(format string, args ...interface{})
}

// Board is a single node in a databoard hierarchy: a local database plus
// an optional parent, a remapping table and an autoremap flag. Boards are
// shared by pointer; parent links and remappings are fixed at
// construction, so cycles are impossible and only the contained database
// and entry contents ever mutate.
type Board struct {
	db         *database
	parent     *Board
	remappings *Remappings
	autoremap  bool
	tracer     Tracer
}

// New returns an empty, parentless board with autoremap off.
func New() *Board {
	return &Board{db: newDatabase(), remappings: NewRemappings()}
}

// With returns a board with the given parent, remapping table and
// autoremap flag. Passing non-empty remappings without a parent is a
// configuration error: a rule that points into a board-pointer has
// nothing to resolve against.
func With(parent *Board, remappings *Remappings, autoremap bool) (*Board, error) {
	if remappings == nil {
		remappings = NewRemappings()
	}
	if parent == nil && !remappings.IsEmpty() {
		return nil, &ConfigError{Message: "remappings require a parent"}
	}
	return &Board{
		db:         newDatabase(),
		parent:     parent,
		remappings: remappings,
		autoremap:  autoremap,
	}, nil
}

// WithParent returns a board with the given parent, empty remappings and
// autoremap on — the "implicitly inherit everything" constructor.
func WithParent(parent *Board) *Board {
	return &Board{
		db:         newDatabase(),
		parent:     parent,
		remappings: NewRemappings(),
		autoremap:  true,
	}
}

// WithTracer attaches a Tracer that receives one debug line per routing
// decision (top-level redirect, local restriction, remap dispatch,
// autoremap dispatch, local fallthrough). It returns b for chaining and
// never changes routing outcomes.
func (b *Board) WithTracer(t Tracer) *Board {
	b.tracer = t
	return b
}

func (b *Board) trace(format string, args ...interface{}) {
	if b.tracer != nil {
		b.tracer.Debug(format, args...)
	}
}

// root returns the farthest ancestor of b, or b itself if it has no
// parent.
func (b *Board) root() *Board {
	if b.parent == nil {
		return b
	}
	return b.parent.root()
}

// resolve classifies key and follows the routing algorithm — top-level
// redirect, local restriction, manual remapping, autoremap fallback, local
// operation — down to the board and plain key an operation should finally
// act on. The autoremap fallback routes to the first ancestor that owns key
// and otherwise to b's own database. It never creates anything; Set uses
// its own resolution (see setRoute) because autoremap must not create on
// an ancestor it merely passed through.
func (b *Board) resolve(key string) (*Board, string, error) {
	if rest, ok := CheckTopLevelKey(key); ok {
		b.trace("resolve: %q redirects to root", key)
		return b.root().resolve(rest)
	}
	if rest, ok := CheckLocalKey(key); ok {
		b.trace("resolve: %q restricted to local database", key)
		return b, rest, nil
	}
	if target, ok := b.remappings.Find(key); ok {
		b.trace("resolve: %q remapped to %q", key, target)
		if pointer, ok := CheckBoardPointer(target); ok {
			if b.parent == nil {
				return nil, "", &NoParentError{Key: key, Remapped: pointer}
			}
			return b.parent.resolve(pointer)
		}
		return nil, "", &AssignmentError{Key: key, Value: target}
	}
	if b.autoremap && b.parent != nil {
		if owner, localKey, err := b.parent.resolve(key); err == nil && owner.db.containsKey(localKey) {
			b.trace("resolve: %q falls through to autoremap parent", key)
			return owner, localKey, nil
		}
	}
	b.trace("resolve: %q resolved locally", key)
	return b, key, nil
}

// setRoute resolves key for Set through the top-level, local and
// manual-remapping branches. On the bare autoremap fallback it probes the
// parent chain for an existing owner of key without creating anything
// along the way, and only routes the create-or-update to that owner if one
// exists. If nobody along the autoremap chain owns key, the entry is
// created on b itself.
func (b *Board) setRoute(key string) (*Board, string, error) {
	if rest, ok := CheckTopLevelKey(key); ok {
		b.trace("setRoute: %q redirects to root", key)
		return b.root().setRoute(rest)
	}
	if rest, ok := CheckLocalKey(key); ok {
		b.trace("setRoute: %q restricted to local database", key)
		return b, rest, nil
	}
	if target, ok := b.remappings.Find(key); ok {
		b.trace("setRoute: %q remapped to %q", key, target)
		if pointer, ok := CheckBoardPointer(target); ok {
			if b.parent == nil {
				return nil, "", &NoParentError{Key: key, Remapped: pointer}
			}
			return b.parent.setRoute(pointer)
		}
		return nil, "", &AssignmentError{Key: key, Value: target}
	}
	if b.autoremap && b.parent != nil {
		if owner, localKey, err := b.parent.resolve(key); err == nil && owner.db.containsKey(localKey) {
			b.trace("setRoute: %q falls through to autoremap parent", key)
			return owner, localKey, nil
		}
		b.trace("setRoute: %q not owned along the autoremap chain, set locally", key)
		return b, key, nil
	}
	b.trace("setRoute: %q resolved locally", key)
	return b, key, nil
}

// ContainsKey reports whether key is available after routing, regardless
// of type. Unlike Contains, it never errors: a routing failure (no
// parent, literal-constant remap target) simply reports false.
func (b *Board) ContainsKey(key string) bool {
	target, localKey, err := b.resolve(key)
	if err != nil {
		return false
	}
	return target.db.containsKey(localKey)
}

// Contains reports whether key is available after routing with runtime
// type T.
func Contains[T any](b *Board, key string) (bool, error) {
	target, localKey, err := b.resolve(key)
	if err != nil {
		return false, err
	}
	return dbContains[T](target.db, localKey)
}

// Get returns the value stored under key after routing.
func Get[T any](b *Board, key string) (T, error) {
	var zero T
	target, localKey, err := b.resolve(key)
	if err != nil {
		return zero, err
	}
	return dbRead[T](target.db, localKey)
}

// Set stores value under key, creating it if nothing along the routed
// path owns it yet, or updating in place if something does. It returns
// the previous value, or nil if the call created a new entry.
func Set[T any](b *Board, key string, value T) (*T, error) {
	target, localKey, err := b.setRoute(key)
	if err != nil {
		return nil, err
	}
	if target.db.containsKey(localKey) {
		old, err := dbUpdate[T](target.db, localKey, value)
		if err != nil {
			return nil, err
		}
		return &old, nil
	}
	if err := dbCreate[T](target.db, localKey, value); err != nil {
		return nil, err
	}
	return nil, nil
}

// Delete removes the entry under key after routing and returns its
// value.
func Delete[T any](b *Board, key string) (T, error) {
	var zero T
	target, localKey, err := b.resolve(key)
	if err != nil {
		return zero, err
	}
	return dbDelete[T](target.db, localKey)
}

// SequenceID returns the current sequence counter for key after routing.
func (b *Board) SequenceID(key string) (uint64, error) {
	target, localKey, err := b.resolve(key)
	if err != nil {
		return 0, err
	}
	return target.db.sequenceID(localKey)
}

// Entry returns a shared handle to the raw entry stored under key after
// routing, primarily so a caller can read its SequenceID directly; guard
// construction itself stays behind GetRef/GetMutRef/TryGetRef/TryGetMutRef.
func (b *Board) Entry(key string) (*EntryHandle, error) {
	target, localKey, err := b.resolve(key)
	if err != nil {
		return nil, err
	}
	return target.db.entryHandle(localKey)
}

// GetRef blocks until it can construct a ReadGuard[T] over key after
// routing.
func GetRef[T any](b *Board, key string) (*ReadGuard[T], error) {
	target, localKey, err := b.resolve(key)
	if err != nil {
		return nil, err
	}
	return dbGetRef[T](target.db, localKey)
}

// GetMutRef blocks until it can construct a WriteGuard[T] over key after
// routing.
func GetMutRef[T any](b *Board, key string) (*WriteGuard[T], error) {
	target, localKey, err := b.resolve(key)
	if err != nil {
		return nil, err
	}
	return dbGetMutRef[T](target.db, localKey)
}

// TryGetRef behaves like GetRef but fails with *IsLockedError instead of
// blocking if the entry's lock cannot be acquired immediately.
func TryGetRef[T any](b *Board, key string) (*ReadGuard[T], error) {
	target, localKey, err := b.resolve(key)
	if err != nil {
		return nil, err
	}
	return dbTryGetRef[T](target.db, localKey)
}

// TryGetMutRef behaves like GetMutRef but fails with *IsLockedError
// instead of blocking if the entry's lock cannot be acquired immediately.
func TryGetMutRef[T any](b *Board, key string) (*WriteGuard[T], error) {
	target, localKey, err := b.resolve(key)
	if err != nil {
		return nil, err
	}
	return dbTryGetMutRef[T](target.db, localKey)
}

// Remappings returns the board's declared remapping rules, or nil if it
// has none.
func (b *Board) Remappings() *Remappings {
	if b.remappings.IsEmpty() {
		return nil
	}
	return b.remappings
}
