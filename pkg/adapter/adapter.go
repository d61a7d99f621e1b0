package adapter

import (
	"log/slog"

	"github.com/sigweihq/walletlink/pkg/chains"
	"github.com/sigweihq/walletlink/pkg/provider"
)

// WalletAdapter implements the session framework's wallet-plugin contract
// (login, logout, sign) on top of an external wallet provider. It holds no
// session state of its own; every operation establishes a fresh provider
// session from the context it is given.
type WalletAdapter struct {
	provider provider.WalletProvider
	registry *chains.Registry
	logger   *slog.Logger
}

// New creates a wallet adapter backed by the given provider. A nil
// registry falls back to the global chain registry, a nil logger to
// slog.Default().
func New(p provider.WalletProvider, registry *chains.Registry, logger *slog.Logger) *WalletAdapter {
	if registry == nil {
		registry = chains.InitGlobalRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WalletAdapter{
		provider: p,
		registry: registry,
		logger:   logger,
	}
}
