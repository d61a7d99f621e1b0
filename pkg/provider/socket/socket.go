package socket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/sigweihq/walletlink/pkg/constants"
	"github.com/sigweihq/walletlink/pkg/provider"
)

// ProviderName is the plugin registration key of the socket provider
const ProviderName = "wallet-socket"

// Config holds the socket provider settings
type Config struct {
	// Endpoint is the websocket URL of the local wallet
	Endpoint string

	// HandshakeTimeout bounds the websocket upgrade. It does not bound
	// user-approval waits; those follow the caller's context.
	HandshakeTimeout time.Duration
}

// DefaultConfig returns the settings for a desktop wallet on its default
// local port
func DefaultConfig() Config {
	return Config{
		Endpoint:         fmt.Sprintf("ws://127.0.0.1:%d/socket", constants.DefaultWalletSocketPort),
		HandshakeTimeout: constants.SocketHandshakeTimeout,
	}
}

// SocketProvider talks to a locally running wallet over its websocket
// pairing protocol. It implements provider.WalletProvider.
type SocketProvider struct {
	cfg    Config
	logger *slog.Logger

	mu      sync.Mutex // guards conn and pending
	conn    *websocket.Conn
	pending map[string]chan envelope

	writeMu sync.Mutex // serializes writes on conn
}

// New creates a socket provider. A nil logger falls back to slog.Default().
func New(cfg Config, logger *slog.Logger) *SocketProvider {
	if cfg.Endpoint == "" {
		cfg = DefaultConfig()
	}
	if cfg.HandshakeTimeout == 0 {
		cfg.HandshakeTimeout = constants.SocketHandshakeTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SocketProvider{
		cfg:     cfg,
		logger:  logger,
		pending: make(map[string]chan envelope),
	}
}

// Name implements provider.WalletProvider
func (p *SocketProvider) Name() string {
	return ProviderName
}

// Connect implements provider.WalletProvider
func (p *SocketProvider) Connect(ctx context.Context, appName string, network provider.NetworkDescriptor) (bool, error) {
	payload, err := p.request(ctx, typePair, pairRequest{AppName: appName, Network: network})
	if err != nil {
		return false, err
	}

	var resp pairResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return false, fmt.Errorf("pair response: %w", err)
	}
	return resp.Paired, nil
}

// Login implements provider.WalletProvider
func (p *SocketProvider) Login(ctx context.Context, network provider.NetworkDescriptor) (*provider.WalletIdentity, error) {
	return p.identityCall(ctx, typeGetOrRequestIdentity, network)
}

// CheckLogin implements provider.WalletProvider
func (p *SocketProvider) CheckLogin(ctx context.Context, network provider.NetworkDescriptor) (*provider.WalletIdentity, error) {
	return p.identityCall(ctx, typeIdentityFromPermissions, network)
}

// Logout implements provider.WalletProvider
func (p *SocketProvider) Logout(ctx context.Context, network provider.NetworkDescriptor) error {
	_, err := p.request(ctx, typeForgetIdentity, identityRequest{Network: network})
	return err
}

// Connector implements provider.WalletProvider
func (p *SocketProvider) Connector(network provider.NetworkDescriptor, opts provider.ConnectorOptions) provider.TransactionConnector {
	return &socketConnector{provider: p, network: network, opts: opts}
}

// Close tears down the websocket connection. Pending requests fail.
func (p *SocketProvider) Close() error {
	p.mu.Lock()
	conn := p.conn
	p.conn = nil
	p.mu.Unlock()

	if conn == nil {
		return nil
	}
	return conn.Close()
}

func (p *SocketProvider) identityCall(ctx context.Context, typ string, network provider.NetworkDescriptor) (*provider.WalletIdentity, error) {
	payload, err := p.request(ctx, typ, identityRequest{Network: network})
	if err != nil {
		return nil, err
	}

	var resp identityResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("identity response: %w", err)
	}
	return resp.Identity, nil
}

// request sends one envelope and waits for its correlated response. The
// wait has no deadline of its own; the wallet may keep a prompt open for as
// long as the caller's context allows.
func (p *SocketProvider) request(ctx context.Context, typ string, payload any) (json.RawMessage, error) {
	conn, err := p.ensureConnected(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", typ, err)
	}

	id := uuid.NewString()
	ch := make(chan envelope, 1)

	p.mu.Lock()
	p.pending[id] = ch
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		delete(p.pending, id)
		p.mu.Unlock()
	}()

	p.logger.Debug("sending wallet request", "type", typ, "id", id)

	p.writeMu.Lock()
	_ = conn.SetWriteDeadline(time.Now().Add(constants.SocketWriteTimeout))
	err = conn.WriteJSON(envelope{ID: id, Type: typ, Payload: body})
	p.writeMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("send %s request: %w", typ, err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case env, ok := <-ch:
		if !ok {
			return nil, fmt.Errorf("wallet connection closed during %s request", typ)
		}
		if env.Error != nil {
			return nil, fmt.Errorf("%s request failed: %w", typ, env.Error)
		}
		return env.Payload, nil
	}
}

func (p *SocketProvider) ensureConnected(ctx context.Context) (*websocket.Conn, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn != nil {
		return p.conn, nil
	}

	dialer := websocket.Dialer{HandshakeTimeout: p.cfg.HandshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, p.cfg.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("dial wallet at %s: %w", p.cfg.Endpoint, err)
	}
	conn.SetReadLimit(constants.MaxEnvelopePayloadSize)

	p.conn = conn
	go p.readLoop(conn)

	p.logger.Debug("wallet socket connected", "endpoint", p.cfg.Endpoint)
	return conn, nil
}

// readLoop dispatches response envelopes to their waiting requests until
// the connection dies, then fails everything still pending
func (p *SocketProvider) readLoop(conn *websocket.Conn) {
	for {
		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			p.logger.Debug("wallet socket closed", "error", err)
			p.failPending(conn)
			return
		}

		p.mu.Lock()
		ch, exists := p.pending[env.ID]
		if exists {
			delete(p.pending, env.ID)
		}
		p.mu.Unlock()

		if exists {
			ch <- env
		} else {
			p.logger.Debug("dropping uncorrelated wallet message", "id", env.ID, "type", env.Type)
		}
	}
}

func (p *SocketProvider) failPending(conn *websocket.Conn) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == conn {
		p.conn = nil
	}
	for id, ch := range p.pending {
		close(ch)
		delete(p.pending, id)
	}
}
