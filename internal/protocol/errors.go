// Package protocol defines the connection state machine and the packet
// catalog for the Handshaking, Status, and Login phases this proxy
// terminates itself (Play is forwarded opaquely once a backend bridge is
// established).
package protocol

import "errors"

// Error taxonomy. Call sites wrap these with fmt.Errorf("...: %w", ...)
// for additional context; callers that need to branch on failure kind
// compare with errors.Is against these sentinels.
var (
	ErrInvalidHandshake  = errors.New("invalid handshake")
	ErrUnexpectedPacket  = errors.New("unexpected packet")
	ErrAuthFailed        = errors.New("authentication failed")
	ErrNoDefaultBackend  = errors.New("no default backend configured")
	ErrBackendUnreachable = errors.New("backend unreachable")
	ErrBackendRefused    = errors.New("backend refused connection")
	ErrBindFailure       = errors.New("failed to bind listener")
)
