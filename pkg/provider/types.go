package provider

import (
	"fmt"

	"github.com/sigweihq/walletlink/pkg/antelope"
	"github.com/sigweihq/walletlink/pkg/chains"
)

// NetworkDescriptor tells the wallet which chain endpoint an operation
// targets
type NetworkDescriptor struct {
	Blockchain string         `json:"blockchain"`
	ChainID    chains.ChainID `json:"chainId"`
	Host       string         `json:"host"`
	Port       uint16         `json:"port"`
	Protocol   string         `json:"protocol"` // "http" or "https"
}

// NewNetworkDescriptor builds a network descriptor, validating the parts
func NewNetworkDescriptor(blockchain string, chainID chains.ChainID, host string, port uint16, protocol string) (NetworkDescriptor, error) {
	if host == "" {
		return NetworkDescriptor{}, fmt.Errorf("network descriptor requires a host")
	}
	if protocol != "http" && protocol != "https" {
		return NetworkDescriptor{}, fmt.Errorf("unsupported protocol %q", protocol)
	}
	return NetworkDescriptor{
		Blockchain: blockchain,
		ChainID:    chainID,
		Host:       host,
		Port:       port,
		Protocol:   protocol,
	}, nil
}

func (n NetworkDescriptor) String() string {
	return fmt.Sprintf("%s://%s:%d", n.Protocol, n.Host, n.Port)
}

// WalletAccount is one account entry of a wallet identity. The wallet's
// account model is loosely typed: chain id and blockchain hint are both
// optional and the hint's casing is not normalized.
type WalletAccount struct {
	Name       string `json:"name"`
	Authority  string `json:"authority"`
	ChainID    string `json:"chainId,omitempty"`
	Blockchain string `json:"blockchain,omitempty"`
	PublicKey  string `json:"publicKey,omitempty"`
}

// WalletIdentity is the wallet's authenticated identity, produced after the
// user approves a login prompt
type WalletIdentity struct {
	Hash     string          `json:"hash,omitempty"`
	Accounts []WalletAccount `json:"accounts"`
}

// DefaultAccount returns the identity's primary account, if any
func (id *WalletIdentity) DefaultAccount() (*WalletAccount, bool) {
	if id == nil || len(id.Accounts) == 0 {
		return nil, false
	}
	return &id.Accounts[0], true
}

// NativeTransaction is the wallet-native transaction representation a
// connector produces from canonical bytes. It keeps the original bytes so
// an unmodified round trip stays byte-identical.
type NativeTransaction struct {
	Transaction *antelope.Transaction
	Raw         []byte
}

// TransactOptions control a signing submission
type TransactOptions struct {
	// Broadcast submits the signed transaction to the chain. The adapter
	// always submits with Broadcast disabled.
	Broadcast bool `json:"broadcast"`
}

// SignedResponse is the wallet's answer to a signing submission. A nil or
// empty SerializedTransaction means the user declined. Signature order is
// significant and preserved exactly as received.
type SignedResponse struct {
	SerializedTransaction antelope.HexBytes    `json:"serializedTransaction,omitempty"`
	Signatures            []antelope.Signature `json:"signatures"`
}
