package chord

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks failures of a remote call.
	ErrTransport = errors.New("transport error")
	// ErrInconsistentRing is returned when routing exceeds the hop ceiling or
	// the ring's links contradict each other.
	ErrInconsistentRing = errors.New("inconsistent ring")
	// ErrLinkConflict is returned when a conditional link update finds an
	// unexpected current link.
	ErrLinkConflict = errors.New("link conflict")
	// ErrKeyCollision is returned when a joining peer's key is already taken.
	ErrKeyCollision = errors.New("peer key already in ring")
	// ErrAlreadyJoined is returned when a peer that is part of a ring joins again.
	ErrAlreadyJoined = errors.New("peer already part of a ring")
)

// TransportError describes a remote call that could not complete.
type TransportError struct {
	Peer string
	Op   string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Peer, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// LinkConflictError carries the link found by a rejected conditional update.
// Splicing is set when the update was refused because the target peer was
// itself joining or leaving.
type LinkConflictError struct {
	Link     string
	Current  PeerRef
	Splicing bool
}

func (e *LinkConflictError) Error() string {
	if e.Splicing {
		return fmt.Sprintf("%s link is %s (peer is splicing)", e.Link, e.Current)
	}
	return fmt.Sprintf("%s link is %s", e.Link, e.Current)
}

func (e *LinkConflictError) Is(target error) bool { return target == ErrLinkConflict }

// SpliceError reports a failed join or leave. When RolledBack is false the
// links changed before the failure are still in place and the ring may be
// inconsistent until repaired.
type SpliceError struct {
	Op         string
	Stage      string
	RolledBack bool
	Err        error
}

func (e *SpliceError) Error() string {
	state := "rolled back"
	if !e.RolledBack {
		state = "ring may be inconsistent"
	}
	return fmt.Sprintf("%s failed at %s (%s): %v", e.Op, e.Stage, state, e.Err)
}

func (e *SpliceError) Unwrap() error { return e.Err }

func inconsistent(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInconsistentRing, fmt.Sprintf(format, args...))
}
