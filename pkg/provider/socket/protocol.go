package socket

import (
	"encoding/json"
	"fmt"

	"github.com/sigweihq/walletlink/pkg/antelope"
	"github.com/sigweihq/walletlink/pkg/provider"
)

// Wire protocol: JSON envelopes over a local websocket, one request
// envelope per API call, responses correlated by envelope id.

const (
	typePair                    = "pair"
	typeGetOrRequestIdentity    = "get_or_request_identity"
	typeIdentityFromPermissions = "identity_from_permissions"
	typeForgetIdentity          = "forget_identity"
	typeRequestTransaction      = "request_transaction"
)

type envelope struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Error   *envelopeError  `json:"error,omitempty"`
}

type envelopeError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *envelopeError) Error() string {
	return fmt.Sprintf("wallet error %d: %s", e.Code, e.Message)
}

type pairRequest struct {
	AppName string                     `json:"appName"`
	Network provider.NetworkDescriptor `json:"network"`
}

type pairResponse struct {
	Paired bool `json:"paired"`
}

type identityRequest struct {
	Network provider.NetworkDescriptor `json:"network"`
}

type identityResponse struct {
	// Identity is null when the wallet has no usable identity
	Identity *provider.WalletIdentity `json:"identity"`
}

type transactRequest struct {
	Network               provider.NetworkDescriptor `json:"network"`
	SerializedTransaction antelope.HexBytes          `json:"serializedTransaction"`
	Broadcast             bool                       `json:"broadcast"`
	KeyDiscovery          bool                       `json:"keyDiscovery"`
}
