package adapter

import "errors"

// Error kinds surfaced by the adapter. Every failure is terminal for its
// operation; nothing is retried internally. Callers match with errors.Is.
var (
	// ErrUIUnavailable means the context carries no display capability;
	// the wallet cannot prompt the user
	ErrUIUnavailable = errors.New("no display capability available")

	// ErrConnectionFailed means the wallet refused the pairing handshake
	ErrConnectionFailed = errors.New("wallet connection failed")

	// ErrNotLoggedIn means signing or logout was attempted without an
	// active identity; the caller must log in first
	ErrNotLoggedIn = errors.New("no active wallet identity")

	// ErrIdentityUnavailable means login succeeded at the transport level
	// but the wallet returned no usable account
	ErrIdentityUnavailable = errors.New("wallet returned no usable identity")

	// ErrUnknownChain means the identity's chain hint or id does not map
	// to a known chain; this indicates a configuration or provider
	// mismatch
	ErrUnknownChain = errors.New("identity does not resolve to a known chain")

	// ErrCanceled means the user declined the wallet prompt. This is a
	// valid user decision, not an infrastructure fault; callers should not
	// retry it and should present it without an error banner.
	ErrCanceled = errors.New("request canceled by user")
)
