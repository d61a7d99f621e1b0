package socket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sigweihq/walletlink/pkg/antelope"
	"github.com/sigweihq/walletlink/pkg/provider"
)

// socketConnector is the codec capability of the socket provider, bound to
// one negotiated network
type socketConnector struct {
	provider *SocketProvider
	network  provider.NetworkDescriptor
	opts     provider.ConnectorOptions
}

// Decode implements provider.TransactionConnector. The wallet-native
// representation keeps the original bytes alongside the decoded
// transaction, so an unmodified submission round trip re-encodes
// byte-identically.
func (c *socketConnector) Decode(_ context.Context, raw []byte) (*provider.NativeTransaction, error) {
	tx, err := antelope.DecodeTransaction(raw)
	if err != nil {
		return nil, err
	}
	return &provider.NativeTransaction{
		Transaction: tx,
		Raw:         append([]byte(nil), raw...),
	}, nil
}

// Transact implements provider.TransactionConnector. The call suspends
// until the user approves or rejects the wallet prompt.
func (c *socketConnector) Transact(ctx context.Context, tx *provider.NativeTransaction, opts provider.TransactOptions) (*provider.SignedResponse, error) {
	raw := tx.Raw
	if raw == nil {
		encoded, err := antelope.EncodeTransaction(tx.Transaction)
		if err != nil {
			return nil, err
		}
		raw = encoded
	}

	payload, err := c.provider.request(ctx, typeRequestTransaction, transactRequest{
		Network:               c.network,
		SerializedTransaction: raw,
		Broadcast:             opts.Broadcast,
		KeyDiscovery:          !c.opts.SkipKeyDiscovery,
	})
	if err != nil {
		return nil, err
	}

	var resp provider.SignedResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("transact response: %w", err)
	}
	return &resp, nil
}
