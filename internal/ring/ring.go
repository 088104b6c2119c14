package ring

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aabbfive/ChordDHT/internal/keyspace"
)

var (
	// ErrEmpty is returned when a view is built without members.
	ErrEmpty = errors.New("ring has no members")
	// ErrDuplicateKey is returned when two members share a key.
	ErrDuplicateKey = errors.New("ring members share a key")
	// ErrUnordered is returned when a traversal does not follow key order.
	ErrUnordered = errors.New("ring traversal is not in circular key order")
)

// Member represents a peer on the ring.
type Member struct {
	ID   string
	Addr string
	Key  keyspace.Key
}

// View is an immutable snapshot of ring membership sorted by key.
type View struct {
	members []Member
}

// NewView creates a view from members in any order.
func NewView(members []Member) (*View, error) {
	if len(members) == 0 {
		return nil, ErrEmpty
	}

	sorted := append([]Member(nil), members...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Key == sorted[i-1].Key {
			return nil, fmt.Errorf("%w: %s and %s at %d", ErrDuplicateKey, sorted[i-1].ID, sorted[i].ID, sorted[i].Key)
		}
	}
	return &View{members: sorted}, nil
}

// FromTraversal creates a view from members listed in successor order,
// starting anywhere on the ring. It fails unless the keys increase around
// the circle with exactly one wrap.
func FromTraversal(members []Member) (*View, error) {
	v, err := NewView(members)
	if err != nil {
		return nil, err
	}

	wraps := 0
	for i := range members {
		next := members[(i+1)%len(members)]
		if next.Key <= members[i].Key {
			wraps++
		}
	}
	if len(members) > 1 && wraps != 1 {
		return nil, fmt.Errorf("%w: %d wraps over %d members", ErrUnordered, wraps, len(members))
	}
	return v, nil
}

// Len returns the number of members.
func (v *View) Len() int {
	return len(v.members)
}

// Members returns the members in ascending key order.
func (v *View) Members() []Member {
	return append([]Member(nil), v.members...)
}

// Owner returns the member whose interval (predecessor, self] contains key.
func (v *View) Owner(key keyspace.Key) Member {
	// First member with key >= target
	idx := sort.Search(len(v.members), func(i int) bool {
		return v.members[i].Key >= key
	})

	// Wrap around if key is greater than all members
	if idx >= len(v.members) {
		idx = 0
	}
	return v.members[idx]
}

// Successor returns the member following the one with the given key.
func (v *View) Successor(key keyspace.Key) (Member, bool) {
	idx, ok := v.index(key)
	if !ok {
		return Member{}, false
	}
	return v.members[(idx+1)%len(v.members)], true
}

// Predecessor returns the member preceding the one with the given key.
func (v *View) Predecessor(key keyspace.Key) (Member, bool) {
	idx, ok := v.index(key)
	if !ok {
		return Member{}, false
	}
	return v.members[(idx+len(v.members)-1)%len(v.members)], true
}

func (v *View) index(key keyspace.Key) (int, bool) {
	idx := sort.Search(len(v.members), func(i int) bool {
		return v.members[i].Key >= key
	})
	if idx < len(v.members) && v.members[idx].Key == key {
		return idx, true
	}
	return 0, false
}
