// Package chordpb holds the generated messages and gRPC stubs of the
// chord.Peer and chord.DHT services described in chord.proto.
package chordpb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative chord.proto
