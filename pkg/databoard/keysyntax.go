package databoard

import "strings"

// Key-shape classification. These are pure, side-effect-free predicates and
// extractors used by Board to route an operation before it ever touches a
// database or a remapping table.
//
// Six shapes are distinguished:
//
//	key       plain local name
//	@key      redirect to the root board, then treat key as plain
//	_key      force resolution on the local database only
//	{key}     board-pointer to a name on the parent
//	{_key}    board-pointer, further restricted to the parent's local database
//	{@key}    board-pointer, further restricted to the parent's root
//
// Anything that does not both start with "{" and end with "}" is a literal
// constant assignment, including strings that merely contain braces
// internally (for example `json:{...}`) — classification looks only at the
// first and last byte, so a brace-wrapped JSON object such as `{"x":1}`
// classifies as a board-pointer.

// IsConstAssignment reports whether s is a literal constant, i.e. not a
// board-pointer.
func IsConstAssignment(s string) bool {
	return !IsBoardPointer(s)
}

// IsBoardPointer reports whether s is wrapped in a single matching brace
// pair, e.g. "{key}". Empty braces "{}" qualify as a pointer to the empty
// name.
func IsBoardPointer(s string) bool {
	return strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")
}

// IsLocalPointer reports whether s has the restricted board-pointer shape
// "{_key}".
func IsLocalPointer(s string) bool {
	return strings.HasPrefix(s, "{_") && strings.HasSuffix(s, "}")
}

// IsTopLevelPointer reports whether s has the restricted board-pointer shape
// "{@key}".
func IsTopLevelPointer(s string) bool {
	return strings.HasPrefix(s, "{@") && strings.HasSuffix(s, "}")
}

// StripBoardPointer returns the content between the braces of "{key}",
// preserving any leading "_" or "@", and reports whether s had that shape.
func StripBoardPointer(s string) (string, bool) {
	if !IsBoardPointer(s) {
		return "", false
	}
	return s[1 : len(s)-1], true
}

// StripLocalPointer returns the name inside "{_key}" with the "_" removed,
// and reports whether s had that shape.
func StripLocalPointer(s string) (string, bool) {
	if !IsLocalPointer(s) {
		return "", false
	}
	return s[2 : len(s)-1], true
}

// StripTopLevelPointer returns the name inside "{@key}" with the "@"
// removed, and reports whether s had that shape.
func StripTopLevelPointer(s string) (string, bool) {
	if !IsTopLevelPointer(s) {
		return "", false
	}
	return s[2 : len(s)-1], true
}

// CheckBoardPointer returns the content between the braces of "{key}" and
// true, or the unchanged s and false if s is not a board-pointer.
func CheckBoardPointer(s string) (string, bool) {
	if inner, ok := StripBoardPointer(s); ok {
		return inner, true
	}
	return s, false
}

// CheckLocalKey returns the suffix of s after a leading "_" and true, or the
// unchanged s and false.
func CheckLocalKey(s string) (string, bool) {
	if rest, ok := strings.CutPrefix(s, "_"); ok {
		return rest, true
	}
	return s, false
}

// CheckTopLevelKey returns the suffix of s after a leading "@" and true, or
// the unchanged s and false.
func CheckTopLevelKey(s string) (string, bool) {
	if rest, ok := strings.CutPrefix(s, "@"); ok {
		return rest, true
	}
	return s, false
}
