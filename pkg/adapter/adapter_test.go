package adapter

import (
	"context"
	"time"

	"github.com/sigweihq/walletlink/pkg/antelope"
	"github.com/sigweihq/walletlink/pkg/chains"
	"github.com/sigweihq/walletlink/pkg/constants"
	"github.com/sigweihq/walletlink/pkg/provider"
)

// stubConnector is a scripted transaction connector with call counters
type stubConnector struct {
	decodeCalls   int
	transactCalls int

	response    *provider.SignedResponse
	transactErr error

	lastOpts provider.TransactOptions
	lastTx   *provider.NativeTransaction
}

func (c *stubConnector) Decode(_ context.Context, raw []byte) (*provider.NativeTransaction, error) {
	c.decodeCalls++
	tx, err := antelope.DecodeTransaction(raw)
	if err != nil {
		return nil, err
	}
	return &provider.NativeTransaction{Transaction: tx, Raw: raw}, nil
}

func (c *stubConnector) Transact(_ context.Context, tx *provider.NativeTransaction, opts provider.TransactOptions) (*provider.SignedResponse, error) {
	c.transactCalls++
	c.lastTx = tx
	c.lastOpts = opts
	if c.transactErr != nil {
		return nil, c.transactErr
	}
	return c.response, nil
}

// stubWallet is a scripted wallet provider with call counters
type stubWallet struct {
	connectCalls int
	loginCalls   int
	logoutCalls  int

	connectResult bool
	connectErr    error
	identity      *provider.WalletIdentity
	loginErr      error
	logoutErr     error
	connector     *stubConnector

	lastAppName string
	lastNetwork provider.NetworkDescriptor
}

func (w *stubWallet) Name() string { return "stub-wallet" }

func (w *stubWallet) Connect(_ context.Context, appName string, network provider.NetworkDescriptor) (bool, error) {
	w.connectCalls++
	w.lastAppName = appName
	w.lastNetwork = network
	return w.connectResult, w.connectErr
}

func (w *stubWallet) Login(_ context.Context, network provider.NetworkDescriptor) (*provider.WalletIdentity, error) {
	w.loginCalls++
	w.lastNetwork = network
	return w.identity, w.loginErr
}

func (w *stubWallet) CheckLogin(_ context.Context, network provider.NetworkDescriptor) (*provider.WalletIdentity, error) {
	return w.identity, w.loginErr
}

func (w *stubWallet) Logout(_ context.Context, network provider.NetworkDescriptor) error {
	w.logoutCalls++
	return w.logoutErr
}

func (w *stubWallet) Connector(network provider.NetworkDescriptor, opts provider.ConnectorOptions) provider.TransactionConnector {
	if w.connector == nil {
		w.connector = &stubConnector{}
	}
	return w.connector
}

// stubUI counts status lines
type stubUI struct {
	statuses []string
}

func (u *stubUI) Status(message string) {
	u.statuses = append(u.statuses, message)
}

func eosDescriptor() *chains.ChainDescriptor {
	return &chains.ChainDescriptor{
		Name: "eos",
		URL:  "https://eos.greymass.com",
		ID:   chains.MustChainID(constants.ChainIDEOS),
	}
}

func aliceIdentity() *provider.WalletIdentity {
	return &provider.WalletIdentity{Accounts: []provider.WalletAccount{
		{Name: "alice", Authority: "active", Blockchain: "eos"},
	}}
}

func testRegistry() *chains.Registry {
	registry := chains.NewRegistry()
	for name, id := range constants.ChainNameToID {
		_ = registry.Register(name, chains.MustChainID(id))
	}
	return registry
}

func signerTransaction() *antelope.Transaction {
	return &antelope.Transaction{
		Expiration:     antelope.NewTimePointSec(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)),
		RefBlockNum:    100,
		RefBlockPrefix: 0xcafebabe,
		Actions: []antelope.Action{{
			Account:       "eosio.token",
			Name:          "transfer",
			Authorization: []antelope.PermissionLevel{{Actor: "alice", Permission: "active"}},
			Data:          antelope.HexBytes{0x10, 0x20},
		}},
	}
}
