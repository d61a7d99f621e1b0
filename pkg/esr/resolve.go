package esr

import (
	"context"
	"fmt"

	"github.com/sigweihq/walletlink/pkg/antelope"
)

// Resolve binds the request to a signer: placeholder authorizations are
// substituted with the signer's permission level, the ABIs of all touched
// contracts are fetched through the cache, and the concrete transaction is
// serialized. The request itself is left untouched; resolution works on a
// deep copy.
func (r *SigningRequest) Resolve(ctx context.Context, cache ABICache, signer antelope.PermissionLevel) (*ResolvedSigningRequest, error) {
	if r.Transaction == nil {
		return nil, fmt.Errorf("resolve: request has no transaction")
	}

	tx := r.Transaction.Clone()
	substitutePlaceholders(tx.ContextFreeActions, signer)
	substitutePlaceholders(tx.Actions, signer)

	abis, err := fetchABIs(ctx, cache, tx)
	if err != nil {
		return nil, err
	}

	serialized, err := antelope.EncodeTransaction(tx)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}

	return &ResolvedSigningRequest{
		Request:               r,
		Signer:                signer,
		Transaction:           tx,
		SerializedTransaction: serialized,
		ABIs:                  abis,
	}, nil
}

func substitutePlaceholders(actions []antelope.Action, signer antelope.PermissionLevel) {
	for i := range actions {
		for j := range actions[i].Authorization {
			auth := &actions[i].Authorization[j]
			if auth.Actor == PlaceholderName {
				auth.Actor = signer.Actor
			}
			if auth.Permission == PlaceholderName || auth.Permission == PlaceholderPermission {
				auth.Permission = signer.Permission
			}
		}
	}
}

func fetchABIs(ctx context.Context, cache ABICache, tx *antelope.Transaction) (map[string]*ABI, error) {
	abis := make(map[string]*ABI)
	if cache == nil {
		return abis, nil
	}

	for _, actions := range [][]antelope.Action{tx.ContextFreeActions, tx.Actions} {
		for _, act := range actions {
			if _, done := abis[act.Account]; done {
				continue
			}
			abi, err := cache.GetABI(ctx, act.Account)
			if err != nil {
				return nil, fmt.Errorf("fetch abi for %s: %w", act.Account, err)
			}
			abis[act.Account] = abi
		}
	}
	return abis, nil
}
