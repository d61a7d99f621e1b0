package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sigweihq/walletlink/pkg/chains"
	"github.com/sigweihq/walletlink/pkg/constants"
	"github.com/sigweihq/walletlink/pkg/provider"
)

// deriveNetwork builds the wallet-facing network descriptor purely from
// the chain descriptor's URL: https defaults to port 443, http to 80, and
// an explicit port wins over the default
func deriveNetwork(descriptor *chains.ChainDescriptor) (provider.NetworkDescriptor, error) {
	parsed, err := url.Parse(descriptor.URL)
	if err != nil {
		return provider.NetworkDescriptor{}, fmt.Errorf("invalid chain url %q: %w", descriptor.URL, err)
	}

	var protocol string
	var port uint16
	switch parsed.Scheme {
	case "https":
		protocol = "https"
		port = constants.DefaultSecurePort
	case "http":
		protocol = "http"
		port = constants.DefaultInsecurePort
	default:
		return provider.NetworkDescriptor{}, fmt.Errorf("unsupported scheme %q in chain url %q", parsed.Scheme, descriptor.URL)
	}

	if explicit := parsed.Port(); explicit != "" {
		parsedPort, err := strconv.ParseUint(explicit, 10, 16)
		if err != nil {
			return provider.NetworkDescriptor{}, fmt.Errorf("invalid port in chain url %q: %w", descriptor.URL, err)
		}
		port = uint16(parsedPort)
	}

	return provider.NewNetworkDescriptor(descriptor.Name, descriptor.ID, parsed.Hostname(), port, protocol)
}

// establishSession negotiates a fresh provider session for one operation.
// Plugin registration runs every time; it is idempotent process-wide
// state, so repeat calls are harmless.
func (a *WalletAdapter) establishSession(ctx context.Context, descriptor *chains.ChainDescriptor, appName string) (*ProviderSession, error) {
	network, err := deriveNetwork(descriptor)
	if err != nil {
		return nil, err
	}

	provider.RegisterPlugin(a.provider)

	a.logger.Debug("connecting to wallet", "app", appName, "network", network.String(), "chain", descriptor.Name)

	connected, err := a.provider.Connect(ctx, appName, network)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	if !connected {
		return nil, fmt.Errorf("%w: wallet refused pairing for %s", ErrConnectionFailed, appName)
	}

	// Key discovery stays disabled: only pre-resolved transactions are
	// ever forwarded to the wallet.
	connector := a.provider.Connector(network, provider.ConnectorOptions{SkipKeyDiscovery: true})

	return &ProviderSession{
		Network:   network,
		Provider:  a.provider,
		Connector: connector,
	}, nil
}
