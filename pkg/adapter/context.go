package adapter

import (
	"github.com/sigweihq/walletlink/pkg/chains"
	"github.com/sigweihq/walletlink/pkg/esr"
	"github.com/sigweihq/walletlink/pkg/provider"
)

// UserInterface is the display capability an operation needs before it can
// open wallet prompts. Its presence on the context is the precondition for
// login and signing; the adapter only pushes status lines through it.
type UserInterface interface {
	// Status shows a short progress line to the user
	Status(message string)
}

// TransactContext carries everything the session framework knows about the
// operation at hand. The adapter never caches any of it between calls;
// each login or signing operation re-establishes its own provider session.
type TransactContext struct {
	// Chain is the target chain descriptor
	Chain *chains.ChainDescriptor

	// AppName identifies the application to the wallet during pairing
	AppName string

	// UI is the display capability; nil means prompts cannot be shown
	UI UserInterface

	// RequestOptions are the request-construction options used when
	// re-resolving the wallet's modified transaction
	RequestOptions esr.RequestOptions

	// ABICache resolves contract ABIs during re-resolution
	ABICache esr.ABICache

	// ActiveIdentity is the identity obtained from a previous login, or
	// nil when the session is not authenticated
	ActiveIdentity *provider.WalletIdentity
}

// ProviderSession is a live, per-operation wallet connection handle. It is
// never persisted; teardown belongs to the provider SDK.
type ProviderSession struct {
	Network   provider.NetworkDescriptor
	Provider  provider.WalletProvider
	Connector provider.TransactionConnector
}
