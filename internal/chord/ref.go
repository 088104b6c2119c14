package chord

import (
	"fmt"

	"github.com/aabbfive/ChordDHT/internal/keyspace"
	"github.com/aabbfive/ChordDHT/internal/ring"
)

// PeerRef is a handle to a peer: its name, where to reach it, and its key.
type PeerRef struct {
	Name string
	Addr string
	Key  keyspace.Key
}

// IsZero reports whether the ref is unset.
func (r PeerRef) IsZero() bool {
	return r == PeerRef{}
}

// Same reports whether both refs denote the same ring position. Keys are
// unique within a ring, so two refs with the same key name the same peer even
// when they reach it through different addresses.
func (r PeerRef) Same(o PeerRef) bool {
	return r.Key == o.Key
}

// String returns "name@addr(key)".
func (r PeerRef) String() string {
	return fmt.Sprintf("%s@%s(%d)", r.Name, r.Addr, r.Key)
}

// Member converts the ref to a ring.Member.
func (r PeerRef) Member() ring.Member {
	return ring.Member{ID: r.Name, Addr: r.Addr, Key: r.Key}
}
