package databoard

import "fmt"

// ErrorKind names the closed-but-open-for-extension set of failure modes a
// Board operation can report. It exists so callers who'd rather switch on a
// comparable value than type-assert have a cheap way to do so; the struct
// types below remain the source of truth and carry the offending key.
type ErrorKind int

const (
	KindAlreadyExists ErrorKind = iota
	KindAlreadyRemapped
	KindNotFound
	KindWrongType
	KindIsLocked
	KindNoParent
	KindAssignment
	KindUnexpected
)

func (k ErrorKind) String() string {
	switch k {
	case KindAlreadyExists:
		return "AlreadyExists"
	case KindAlreadyRemapped:
		return "AlreadyRemapped"
	case KindNotFound:
		return "NotFound"
	case KindWrongType:
		return "WrongType"
	case KindIsLocked:
		return "IsLocked"
	case KindNoParent:
		return "NoParent"
	case KindAssignment:
		return "Assignment"
	case KindUnexpected:
		return "Unexpected"
	default:
		return "Unknown"
	}
}

// AlreadyExistsError is returned when an entry is created under a key that
// is already present.
type AlreadyExistsError struct {
	Key string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("databoard: key %q already exists", e.Key)
}

// IsAlreadyExists reports whether err is an *AlreadyExistsError.
func IsAlreadyExists(err error) bool {
	_, ok := err.(*AlreadyExistsError)
	return ok
}

// AlreadyRemappedError is returned by Remappings.Add when source already
// has a rule.
type AlreadyRemappedError struct {
	Key      string
	Remapped string
}

func (e *AlreadyRemappedError) Error() string {
	return fmt.Sprintf("databoard: key %q is already remapped to %q", e.Key, e.Remapped)
}

// IsAlreadyRemapped reports whether err is an *AlreadyRemappedError.
func IsAlreadyRemapped(err error) bool {
	_, ok := err.(*AlreadyRemappedError)
	return ok
}

// NotFoundError is returned when an operation's key is absent after full
// routing.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("databoard: no entry for key %q", e.Key)
}

// IsNotFound reports whether err is a *NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// WrongTypeError is returned when the stored value's runtime type differs
// from the requested type parameter.
type WrongTypeError struct {
	Key string
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("databoard: entry %q is stored with a different type", e.Key)
}

// IsWrongType reports whether err is a *WrongTypeError.
func IsWrongType(err error) bool {
	_, ok := err.(*WrongTypeError)
	return ok
}

// IsLockedError is returned by a try-variant that could not acquire the
// entry's lock immediately.
type IsLockedError struct {
	Key string
}

func (e *IsLockedError) Error() string {
	return fmt.Sprintf("databoard: entry %q is locked", e.Key)
}

// IsLocked reports whether err is an *IsLockedError.
func IsLocked(err error) bool {
	_, ok := err.(*IsLockedError)
	return ok
}

// NoParentError is returned when routing demands a parent board but none
// exists.
type NoParentError struct {
	Key      string
	Remapped string
}

func (e *NoParentError) Error() string {
	return fmt.Sprintf("databoard: key %q remaps to %q on a parent, but this board has none", e.Key, e.Remapped)
}

// IsNoParent reports whether err is a *NoParentError.
func IsNoParent(err error) bool {
	_, ok := err.(*NoParentError)
	return ok
}

// AssignmentError is returned when a rule's target is a literal constant
// and the operation required dereferencing it.
type AssignmentError struct {
	Key   string
	Value string
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("databoard: key %q is remapped to the constant %q, not a board-pointer", e.Key, e.Value)
}

// IsAssignment reports whether err is an *AssignmentError.
func IsAssignment(err error) bool {
	_, ok := err.(*AssignmentError)
	return ok
}

// UnexpectedError marks an invariant violation; callers should treat it as
// a bug in this package, not a misuse they can recover from.
type UnexpectedError struct {
	Location string
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("databoard: unexpected internal error at %s", e.Location)
}

// IsUnexpected reports whether err is an *UnexpectedError.
func IsUnexpected(err error) bool {
	_, ok := err.(*UnexpectedError)
	return ok
}

// ConfigError reports invalid Board construction parameters — a
// programmer error caught at construction time rather than during
// routing.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "databoard: " + e.Message
}

// Kind extracts the comparable ErrorKind of err. It returns KindUnexpected
// for *UnexpectedError, for *ConfigError (which has no kind of its own) and
// for any error that is not one of this package's error types.
func Kind(err error) ErrorKind {
	switch err.(type) {
	case *AlreadyExistsError:
		return KindAlreadyExists
	case *AlreadyRemappedError:
		return KindAlreadyRemapped
	case *NotFoundError:
		return KindNotFound
	case *WrongTypeError:
		return KindWrongType
	case *IsLockedError:
		return KindIsLocked
	case *NoParentError:
		return KindNoParent
	case *AssignmentError:
		return KindAssignment
	default:
		return KindUnexpected
	}
}
