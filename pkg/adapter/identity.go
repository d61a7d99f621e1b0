package adapter

import (
	"fmt"
	"strings"

	"github.com/sigweihq/walletlink/pkg/antelope"
	"github.com/sigweihq/walletlink/pkg/chains"
	"github.com/sigweihq/walletlink/pkg/provider"
)

// The wallet's account object is loosely typed: chain id and blockchain
// hint are both optional. Classification into an explicit tagged union
// keeps the resolution order fixed instead of ad hoc field probing.

type chainSource int

const (
	chainSourceUnresolved chainSource = iota
	chainSourceExplicit
	chainSourceHint
)

type accountChain struct {
	source chainSource
	id     chains.ChainID // set for chainSourceExplicit
	hint   string         // set for chainSourceHint, uppercased
}

// classifyAccountChain applies the ordered decision: an explicit chain id
// wins outright, a blockchain hint comes second, anything else is
// unresolvable
func classifyAccountChain(account *provider.WalletAccount) (accountChain, error) {
	if account.ChainID != "" {
		id, err := chains.ParseChainID(account.ChainID)
		if err != nil {
			return accountChain{}, err
		}
		return accountChain{source: chainSourceExplicit, id: id}, nil
	}
	if account.Blockchain != "" {
		return accountChain{source: chainSourceHint, hint: strings.ToUpper(account.Blockchain)}, nil
	}
	return accountChain{source: chainSourceUnresolved}, nil
}

// resolveIdentity turns a wallet account into the canonical chain id and
// permission level. Name validation happens inside NewPermissionLevel and
// is not repeated here.
func (a *WalletAdapter) resolveIdentity(account *provider.WalletAccount) (chains.ChainID, antelope.PermissionLevel, error) {
	classified, err := classifyAccountChain(account)
	if err != nil {
		return chains.ChainID{}, antelope.PermissionLevel{}, fmt.Errorf("%w: %w", ErrUnknownChain, err)
	}

	var chainID chains.ChainID
	switch classified.source {
	case chainSourceExplicit:
		chainID = classified.id
	case chainSourceHint:
		id, err := a.registry.Get(classified.hint)
		if err != nil {
			return chains.ChainID{}, antelope.PermissionLevel{}, fmt.Errorf("%w: %w", ErrUnknownChain, err)
		}
		chainID = id
	default:
		return chains.ChainID{}, antelope.PermissionLevel{}, fmt.Errorf("%w: account %q carries neither chain id nor blockchain hint", ErrUnknownChain, account.Name)
	}

	level, err := antelope.NewPermissionLevel(account.Name, account.Authority)
	if err != nil {
		return chains.ChainID{}, antelope.PermissionLevel{}, err
	}

	return chainID, level, nil
}
