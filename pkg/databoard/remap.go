package databoard

import "sync"

const selfShortcut = "{=}"

// RemapRule is one (source, target) pair of a Remappings table, exposed for
// iteration (debug formatting, introspection).
type RemapRule struct {
	Source string
	Target string
}

// Remappings is an ordered list of source-key -> target-expression rules.
// Lookup matches by exact source equality; the first rule added for a given
// source wins, so order only matters as an "already present" signal — it is
// otherwise preserved purely for deterministic display.
//
// A target is one of:
//   - a board-pointer "{name}" (or restricted "{_name}"/"{@name}"),
//   - the self shortcut "{=}", expanding to a board-pointer of the same
//     name as the source, or
//   - a literal constant (anything not wrapped in braces).
type Remappings struct {
	mu      sync.RWMutex
	entries []RemapRule
}

// NewRemappings returns an empty Remappings table.
func NewRemappings() *Remappings {
	return &Remappings{}
}

// Add appends a rule. It fails with *AlreadyRemappedError if source already
// has one.
func (r *Remappings) Add(source, target string) error {
	if target == "{_=}" || target == "{@=}" {
		return &AssignmentError{Key: source, Value: target}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.Source == source {
			return &AlreadyRemappedError{Key: source, Remapped: e.Target}
		}
	}
	r.entries = append(r.entries, RemapRule{Source: source, Target: target})
	return nil
}

// Overwrite sets the rule for source, replacing any existing one, or
// appending a new rule if source has none.
func (r *Remappings) Overwrite(source, target string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.Source == source {
			r.entries[i].Target = target
			return
		}
	}
	r.entries = append(r.entries, RemapRule{Source: source, Target: target})
}

// Find returns the target expression for source and true, or "" and false
// if no rule matches. The self shortcut "{=}" is expanded to "{source}".
func (r *Remappings) Find(source string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.Source == source {
			if e.Target == selfShortcut {
				return "{" + source + "}", true
			}
			return e.Target, true
		}
	}
	return "", false
}

// Remap returns the mapped target for name, or name unchanged if no rule
// matches. A self-shortcut rule "{=}" yields name itself, not "{name}".
func (r *Remappings) Remap(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.Source == name {
			if e.Target == selfShortcut {
				return name
			}
			return e.Target
		}
	}
	return name
}

// Shrink is advisory compaction of the backing storage; it never changes
// lookup results.
func (r *Remappings) Shrink() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == cap(r.entries) {
		return
	}
	shrunk := make([]RemapRule, len(r.entries))
	copy(shrunk, r.entries)
	r.entries = shrunk
}

// IsEmpty reports whether the table has no rules.
func (r *Remappings) IsEmpty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries) == 0
}

// Len returns the number of rules.
func (r *Remappings) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Entries returns a snapshot copy of the rules in insertion order, for
// iteration (e.g. debug formatting).
func (r *Remappings) Entries() []RemapRule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]RemapRule, len(r.entries))
	copy(out, r.entries)
	return out
}
