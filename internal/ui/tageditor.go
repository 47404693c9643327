package ui

import (
	"strings"
	"unicode"
)

// TagKey classifies a keystroke for the TagEditor state machine.
// The view adapter maps real key events onto these before routing.
type TagKey int

const (
	// TagKeyEnter - commit the current buffer as a tag.
	TagKeyEnter TagKey = iota
	// TagKeyBackspace - delete backwards; arms/fires the two-phase tag delete
	// when the buffer is empty.
	TagKeyBackspace
	// TagKeyOther - any other key. Only disarms a pending delete.
	TagKeyOther
)

// TagEditor owns an ordered, duplicate-free list of tags plus the
// uncommitted text being typed. It is pure state: no terminal, no styling,
// no Bubble Tea types. TagInput adapts it to the UI.
//
// The tag list behaves as an ordered set under trimmed string equality.
// Elements are never empty and insertion order is preserved.
type TagEditor struct {
	tags    []string
	present map[string]struct{}

	buffer        string
	pendingDelete bool

	// onChange receives a copy of the full tag list after every mutation.
	onChange func(tags []string)
}

// NewTagEditor creates a TagEditor seeded with defaults. Empty and duplicate
// entries in defaults are dropped so the ordered-set invariant holds from
// construction, not just after the first mutation. onChange may be nil.
func NewTagEditor(defaults []string, onChange func(tags []string)) *TagEditor {
	e := &TagEditor{
		present:  make(map[string]struct{}),
		onChange: onChange,
	}
	for _, raw := range defaults {
		e.insert(raw)
	}
	return e
}

// insert appends a trimmed tag if non-empty and absent. Reports whether the
// list changed.
func (e *TagEditor) insert(raw string) bool {
	tag := strings.TrimSpace(raw)
	if tag == "" {
		return false
	}
	if _, ok := e.present[tag]; ok {
		return false
	}
	e.tags = append(e.tags, tag)
	e.present[tag] = struct{}{}
	return true
}

// HandleTextChange ingests the full content of the entry field after an
// edit. Every run of non-delimiter characters terminated by a delimiter
// (comma, semicolon, or whitespace) is committed as a tag; the unterminated
// remainder becomes the new buffer. Multiple tags pasted in one edit are all
// captured in a single pass.
func (e *TagEditor) HandleTextChange(raw string) {
	tokens, rest := splitTagInput(raw)

	changed := false
	for _, tok := range tokens {
		if e.insert(tok) {
			changed = true
		}
	}

	e.buffer = rest
	e.pendingDelete = false

	if changed {
		e.notify()
	}
}

// HandleKeyDown processes a classified keystroke. It reports whether the key
// was consumed; an unconsumed key should fall through to ordinary
// text-editing behavior in the entry field.
func (e *TagEditor) HandleKeyDown(key TagKey) bool {
	switch key {
	case TagKeyEnter:
		// Always consumed so Enter never submits the surrounding form by
		// accident. Empty or duplicate buffers are silent no-ops.
		e.pendingDelete = false
		if e.insert(e.buffer) {
			e.buffer = ""
			e.notify()
		}
		return true

	case TagKeyBackspace:
		if e.buffer != "" {
			// Ordinary character deletion, not ours to intercept.
			return false
		}
		if !e.pendingDelete {
			// First press arms the delete; the last tag is highlighted but
			// nothing is removed yet.
			e.pendingDelete = true
			return true
		}
		e.pendingDelete = false
		if n := len(e.tags); n > 0 {
			last := e.tags[n-1]
			e.tags = e.tags[:n-1]
			delete(e.present, last)
			e.notify()
		}
		return true

	default:
		// Any other interaction disarms a pending delete.
		e.pendingDelete = false
		return false
	}
}

// RemoveTag removes the tag equal (after trimming) to target. Removing an
// absent tag is a no-op.
func (e *TagEditor) RemoveTag(target string) {
	tag := strings.TrimSpace(target)
	if _, ok := e.present[tag]; !ok {
		return
	}
	kept := e.tags[:0]
	for _, t := range e.tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	e.tags = kept
	delete(e.present, tag)
	e.pendingDelete = false
	e.notify()
}

// Tags returns a copy of the tag list in insertion order.
func (e *TagEditor) Tags() []string {
	out := make([]string, len(e.tags))
	copy(out, e.tags)
	return out
}

// Len returns the number of tags.
func (e *TagEditor) Len() int {
	return len(e.tags)
}

// Contains reports whether tag (trimmed) is in the list.
func (e *TagEditor) Contains(tag string) bool {
	_, ok := e.present[strings.TrimSpace(tag)]
	return ok
}

// Buffer returns the uncommitted text being composed.
func (e *TagEditor) Buffer() string {
	return e.buffer
}

// PendingDelete reports whether the next empty-buffer Backspace will remove
// the last tag.
func (e *TagEditor) PendingDelete() bool {
	return e.pendingDelete
}

// UpForDeletion reports whether the tag at index i should render with the
// about-to-be-deleted affordance. True only for the final tag while a delete
// is armed.
func (e *TagEditor) UpForDeletion(i int) bool {
	return e.pendingDelete && len(e.tags) > 0 && i == len(e.tags)-1
}

// Value returns the comma-joined serialized form of the tag list, suitable
// for submission as a plain text field.
func (e *TagEditor) Value() string {
	return strings.Join(e.tags, ",")
}

func (e *TagEditor) notify() {
	if e.onChange != nil {
		e.onChange(e.Tags())
	}
}

// isTagDelimiter reports whether r terminates an in-progress tag.
func isTagDelimiter(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}

// splitTagInput scans raw left to right, emitting each delimiter-terminated
// token (trimmed, empties dropped) and returning the unterminated tail.
// Delimiter runs act as a single boundary, so the tail never contains a
// delimiter.
func splitTagInput(raw string) (tokens []string, rest string) {
	var token strings.Builder
	for _, r := range raw {
		if isTagDelimiter(r) {
			if t := strings.TrimSpace(token.String()); t != "" {
				tokens = append(tokens, t)
			}
			token.Reset()
			continue
		}
		token.WriteRune(r)
	}
	return tokens, token.String()
}
