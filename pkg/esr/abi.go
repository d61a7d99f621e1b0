package esr

import (
	"context"

	"github.com/sigweihq/walletlink/pkg/antelope"
)

// ABI is the raw ABI blob of a contract account. The adapter never parses
// ABIs itself; it only carries them so a resolved request is self-contained.
type ABI struct {
	Account string            `json:"account"`
	Raw     antelope.HexBytes `json:"raw"`
}

// ABICache fetches contract ABIs, keyed by account name. Implementations
// are provided by the session framework (typically backed by its own
// chain API client and cache).
type ABICache interface {
	GetABI(ctx context.Context, account string) (*ABI, error)
}
