package esr

import (
	"fmt"

	"github.com/sigweihq/walletlink/pkg/antelope"
	"github.com/sigweihq/walletlink/pkg/chains"
)

// Placeholder names a request may carry in action authorizations. They are
// substituted with the signer's permission level during resolution.
const (
	PlaceholderName       = "............1"
	PlaceholderPermission = "............2"
)

// RequestOptions control how signing requests are constructed
type RequestOptions struct {
	// Broadcast asks the eventual signer to broadcast after signing.
	// The wallet round trip always submits with broadcast disabled; this
	// flag only travels with the request for downstream consumers.
	Broadcast bool `json:"broadcast"`

	// Callback is an optional URL the signer should deliver the result to
	Callback string `json:"callback,omitempty"`
}

// SigningRequest is the chain-agnostic, serializable representation of an
// intended transaction. Instances are immutable once created; representing
// a wallet-modified transaction always means constructing a new request.
type SigningRequest struct {
	ChainID     chains.ChainID        `json:"chain_id"`
	Transaction *antelope.Transaction `json:"transaction"`
	Broadcast   bool                  `json:"broadcast"`
	Callback    string                `json:"callback,omitempty"`
}

// NewFromTransaction builds a signing request around a copy of the given
// transaction
func NewFromTransaction(chainID chains.ChainID, tx *antelope.Transaction, opts RequestOptions) (*SigningRequest, error) {
	if chainID.IsZero() {
		return nil, fmt.Errorf("signing request requires a chain id")
	}
	if tx == nil {
		return nil, fmt.Errorf("signing request requires a transaction")
	}
	return &SigningRequest{
		ChainID:     chainID,
		Transaction: tx.Clone(),
		Broadcast:   opts.Broadcast,
		Callback:    opts.Callback,
	}, nil
}

// ResolvedSigningRequest is a signing request bound to a concrete
// transaction body, the ABI set it was resolved with, and the signer's
// permission level
type ResolvedSigningRequest struct {
	Request *SigningRequest
	Signer  antelope.PermissionLevel

	// Transaction is the concrete transaction with placeholder
	// authorizations substituted
	Transaction *antelope.Transaction

	// SerializedTransaction is the canonical binary form of Transaction
	SerializedTransaction []byte

	// ABIs holds the fetched ABI per contract account
	ABIs map[string]*ABI
}
