package node

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aabbfive/ChordDHT/internal/chord"
)

func TestErrorMapping(t *testing.T) {
	ref := chord.PeerRef{Name: "a", Addr: "a.buf", Key: 100}

	tests := []struct {
		name     string
		err      error
		code     codes.Code
		wantBack error
	}{
		{"inconsistent ring", fmt.Errorf("lookup: %w", chord.ErrInconsistentRing), codes.Aborted, chord.ErrInconsistentRing},
		{"key collision", chord.ErrKeyCollision, codes.AlreadyExists, chord.ErrKeyCollision},
		{"already joined", chord.ErrAlreadyJoined, codes.FailedPrecondition, chord.ErrAlreadyJoined},
		{"downstream transport", &chord.TransportError{Peer: "b", Op: "Route", Err: errors.New("refused")}, codes.Unavailable, chord.ErrTransport},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded, chord.ErrTransport},
		{"other", errors.New("boom"), codes.Internal, chord.ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire := toStatus(tt.err)
			assert.Equal(t, tt.code, status.Code(wire))

			back := fromStatus(ref, "Op", wire)
			assert.ErrorIs(t, back, tt.wantBack)
		})
	}

	assert.NoError(t, toStatus(nil))
	assert.NoError(t, fromStatus(ref, "Op", nil))
}

func TestRefConversion(t *testing.T) {
	assert.Nil(t, refToProto(chord.PeerRef{}))
	assert.True(t, protoToRef(nil).IsZero())

	ref := chord.PeerRef{Name: "a", Addr: "a.buf", Key: 100}
	assert.Equal(t, ref, protoToRef(refToProto(ref)))
}
