package adapter

import (
	"context"
	"fmt"

	"github.com/sigweihq/walletlink/pkg/antelope"
	"github.com/sigweihq/walletlink/pkg/esr"
	"github.com/sigweihq/walletlink/pkg/provider"
)

// SignResult pairs the wallet's signatures with the freshly resolved
// request. The two always travel together: a partial result is never
// observable.
type SignResult struct {
	// Signatures exactly as received from the wallet, order preserved
	Signatures []antelope.Signature

	// Resolved is the new resolved request built from the transaction the
	// wallet returned, bound to the original permission level
	Resolved *esr.ResolvedSigningRequest
}

// Sign runs the signing round trip: encode the resolved transaction into
// the wallet wire format, submit it for user approval without
// broadcasting, decode whatever the wallet returns (it may have bumped
// fees, extended the expiration, or injected cosigners), and re-resolve it
// against the original signer. Linear flow, no retries; every failure is
// terminal.
func (a *WalletAdapter) Sign(ctx context.Context, resolved *esr.ResolvedSigningRequest, tctx *TransactContext) (*SignResult, error) {
	// Preconditions come first so no wallet traffic happens for a request
	// that cannot be approved.
	if tctx.UI == nil {
		return nil, ErrUIUnavailable
	}
	if tctx.ActiveIdentity == nil {
		return nil, ErrNotLoggedIn
	}

	session, err := a.establishSession(ctx, tctx.Chain, tctx.AppName)
	if err != nil {
		return nil, err
	}

	encoded, err := antelope.EncodeTransaction(resolved.Transaction)
	if err != nil {
		return nil, err
	}

	native, err := session.Connector.Decode(ctx, encoded)
	if err != nil {
		return nil, fmt.Errorf("wallet decode: %w", err)
	}

	tctx.UI.Status("Waiting for wallet signature")
	a.logger.Debug("submitting transaction for approval",
		"actions", len(resolved.Transaction.Actions), "signer", resolved.Signer.String())

	response, err := session.Connector.Transact(ctx, native, provider.TransactOptions{Broadcast: false})
	if err != nil {
		return nil, fmt.Errorf("wallet transact: %w", err)
	}

	// A response without a serialized transaction is the wallet's way of
	// reporting that the user declined.
	if len(response.SerializedTransaction) == 0 {
		return nil, ErrCanceled
	}

	// The wallet may have modified the transaction; its output is the new
	// ground truth.
	modified, err := antelope.DecodeTransaction(response.SerializedTransaction)
	if err != nil {
		return nil, fmt.Errorf("decode wallet transaction: %w", err)
	}

	request, err := esr.NewFromTransaction(resolved.Request.ChainID, modified, tctx.RequestOptions)
	if err != nil {
		return nil, err
	}

	// Resolution binds the original permission level; authorizations found
	// in the wallet's output never replace it.
	reresolved, err := request.Resolve(ctx, tctx.ABICache, resolved.Signer)
	if err != nil {
		return nil, err
	}

	a.logger.Info("wallet signing succeeded",
		"signatures", len(response.Signatures), "signer", resolved.Signer.String())

	return &SignResult{
		Signatures: response.Signatures,
		Resolved:   reresolved,
	}, nil
}
