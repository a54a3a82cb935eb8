// Package assoc: Index fixes the order of items for matrix rows/columns and
// for every score vector the engines produce.
package assoc

import "fmt"

// Index is an ordered, immutable sequence of item identifiers of length n.
// Position i of the index labels row i and column i of the association
// matrix, and entry i of every score vector. Build one with NewIndex and
// never mutate it afterwards; all accessors return copies or values.
type Index struct {
	ids []ItemID       // ordered identifiers, fixed at construction
	pos map[ItemID]int // reverse lookup: identifier → position
}

// NewIndex builds an Index from the given ordered identifiers, copying the
// input slice. Identifiers must be non-empty and unique.
//
// Errors:
//   - ErrBadShape    when ids is empty.
//   - ErrEmptyID     when an identifier is the empty string.
//   - ErrDuplicateID when an identifier repeats.
//
// Complexity: O(n) time and memory.
func NewIndex(ids []string) (*Index, error) {
	if len(ids) == 0 {
		return nil, ErrBadShape
	}
	idx := &Index{
		ids: make([]ItemID, len(ids)),
		pos: make(map[ItemID]int, len(ids)),
	}
	for i, raw := range ids {
		if raw == "" {
			return nil, fmt.Errorf("position %d: %w", i, ErrEmptyID)
		}
		id := ItemID(raw)
		if _, seen := idx.pos[id]; seen {
			return nil, fmt.Errorf("%q at position %d: %w", raw, i, ErrDuplicateID)
		}
		idx.ids[i] = id
		idx.pos[id] = i
	}

	return idx, nil
}

// Len returns the number of items n. Complexity: O(1).
func (x *Index) Len() int { return len(x.ids) }

// ID returns the identifier at position i.
// Returns ErrOutOfRange on an invalid position. Complexity: O(1).
func (x *Index) ID(i int) (ItemID, error) {
	if i < 0 || i >= len(x.ids) {
		return "", fmt.Errorf("Index.ID(%d): %w", i, ErrOutOfRange)
	}

	return x.ids[i], nil
}

// Position returns the position of identifier id.
// Returns ErrUnknownID when id is absent. Complexity: O(1).
func (x *Index) Position(id ItemID) (int, error) {
	i, ok := x.pos[id]
	if !ok {
		return 0, fmt.Errorf("Index.Position(%q): %w", id, ErrUnknownID)
	}

	return i, nil
}

// IDs returns a copy of the ordered identifiers, safe to retain or mutate.
// Complexity: O(n).
func (x *Index) IDs() []ItemID {
	out := make([]ItemID, len(x.ids))
	copy(out, x.ids)

	return out
}
