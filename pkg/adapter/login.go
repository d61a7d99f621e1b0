package adapter

import (
	"context"
	"fmt"

	"github.com/sigweihq/walletlink/pkg/antelope"
	"github.com/sigweihq/walletlink/pkg/chains"
	"github.com/sigweihq/walletlink/pkg/provider"
)

// LoginResult is the outcome of a successful login
type LoginResult struct {
	// Chain is the canonical chain identifier the identity resolved to
	Chain chains.ChainID

	// PermissionLevel is the canonical actor@permission pair
	PermissionLevel antelope.PermissionLevel

	// Identity is the wallet identity as returned by the provider
	Identity *provider.WalletIdentity
}

// Login prompts the wallet for an identity on the context's chain and
// resolves it into the framework's canonical form
func (a *WalletAdapter) Login(ctx context.Context, tctx *TransactContext) (*LoginResult, error) {
	if tctx.UI == nil {
		return nil, ErrUIUnavailable
	}

	session, err := a.establishSession(ctx, tctx.Chain, tctx.AppName)
	if err != nil {
		return nil, err
	}

	tctx.UI.Status("Waiting for wallet login approval")

	identity, err := session.Provider.Login(ctx, session.Network)
	if err != nil {
		return nil, fmt.Errorf("wallet login: %w", err)
	}

	account, ok := identity.DefaultAccount()
	if !ok {
		return nil, ErrIdentityUnavailable
	}

	chainID, level, err := a.resolveIdentity(account)
	if err != nil {
		return nil, err
	}

	a.logger.Info("wallet login succeeded", "actor", level.Actor, "permission", level.Permission, "chain", chainID.String())

	return &LoginResult{
		Chain:           chainID,
		PermissionLevel: level,
		Identity:        identity,
	}, nil
}

// Logout forgets the active identity. It fails when the context carries no
// active session to forget.
func (a *WalletAdapter) Logout(ctx context.Context, tctx *TransactContext) error {
	if tctx.ActiveIdentity == nil {
		return ErrNotLoggedIn
	}

	session, err := a.establishSession(ctx, tctx.Chain, tctx.AppName)
	if err != nil {
		return err
	}

	if err := session.Provider.Logout(ctx, session.Network); err != nil {
		return fmt.Errorf("wallet logout: %w", err)
	}

	a.logger.Info("wallet logout succeeded", "chain", tctx.Chain.Name)
	return nil
}
