package chainapi

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/sigweihq/walletlink/pkg/esr"
)

type rawABIResponse struct {
	AccountName string `json:"account_name"`
	ABI         string `json:"abi"` // base64
}

// GetABI fetches the raw ABI blob of a contract account. Client satisfies
// esr.ABICache, so it can back request resolution directly.
func (c *Client) GetABI(ctx context.Context, account string) (*esr.ABI, error) {
	var resp rawABIResponse
	reqBody := map[string]any{"account_name": account}
	if err := c.post(ctx, "/v1/chain/get_raw_abi", reqBody, &resp); err != nil {
		return nil, fmt.Errorf("get_raw_abi %s: %w", account, err)
	}

	raw, err := base64.StdEncoding.DecodeString(resp.ABI)
	if err != nil {
		return nil, fmt.Errorf("get_raw_abi %s: invalid abi encoding: %w", account, err)
	}

	c.logger.Debug("fetched contract abi", "account", account, "bytes", len(raw))
	return &esr.ABI{Account: account, Raw: raw}, nil
}

// ABICache memoizes ABI lookups from an underlying fetcher. ABIs change
// rarely; a session-lived cache avoids re-fetching the same contract for
// every signing request.
type ABICache struct {
	source esr.ABICache
	mu     sync.RWMutex
	abis   map[string]*esr.ABI
}

// NewABICache wraps a fetcher (typically a *Client) with memoization.
func NewABICache(source esr.ABICache) *ABICache {
	return &ABICache{
		source: source,
		abis:   make(map[string]*esr.ABI),
	}
}

// GetABI returns the cached ABI for the account, fetching it on first use.
func (c *ABICache) GetABI(ctx context.Context, account string) (*esr.ABI, error) {
	c.mu.RLock()
	abi, ok := c.abis[account]
	c.mu.RUnlock()
	if ok {
		return abi, nil
	}

	abi, err := c.source.GetABI(ctx, account)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.abis[account] = abi
	c.mu.Unlock()
	return abi, nil
}
