package provider

import (
	"context"
)

// The wallet provider SDK mixes transport and transaction-codec concerns
// behind a single handle. Here the two capabilities are split: a
// WalletProvider carries the user-facing transport operations and hands out
// TransactionConnectors bound to a negotiated network.

// WalletProvider is the transport capability of an external wallet:
// pairing, identity and teardown. Every call is a suspension point that may
// block on user interaction; cancellation is driven by the caller's context.
type WalletProvider interface {
	// Name identifies the provider (used as the plugin registration key)
	Name() string

	// Connect performs the pairing handshake for the given application and
	// network. A false result means the wallet refused the connection.
	Connect(ctx context.Context, appName string, network NetworkDescriptor) (bool, error)

	// Login prompts the user to select an identity for the network.
	// Returns (nil, nil) when the wallet reports no usable identity.
	Login(ctx context.Context, network NetworkDescriptor) (*WalletIdentity, error)

	// CheckLogin returns the currently active identity without prompting,
	// or (nil, nil) when none exists
	CheckLogin(ctx context.Context, network NetworkDescriptor) (*WalletIdentity, error)

	// Logout forgets the active identity for the network
	Logout(ctx context.Context, network NetworkDescriptor) error

	// Connector returns the transaction codec capability bound to the
	// network
	Connector(network NetworkDescriptor, opts ConnectorOptions) TransactionConnector
}

// TransactionConnector is the codec capability of a wallet: it decodes the
// framework's canonical bytes into the wallet's native representation and
// submits native transactions for user approval.
type TransactionConnector interface {
	// Decode translates canonical transaction bytes into the wallet's
	// native transaction structure. This is a format bridge only; it must
	// not alter semantic transaction content.
	Decode(ctx context.Context, raw []byte) (*NativeTransaction, error)

	// Transact submits a native transaction for approval. With
	// Broadcast disabled the wallet signs without submitting to the chain.
	// The call suspends until the user approves or rejects.
	Transact(ctx context.Context, tx *NativeTransaction, opts TransactOptions) (*SignedResponse, error)
}

// ConnectorOptions configure connector construction
type ConnectorOptions struct {
	// SkipKeyDiscovery disables the wallet's own key-discovery pass. The
	// adapter only forwards pre-resolved transactions, so discovery is
	// never needed.
	SkipKeyDiscovery bool
}
