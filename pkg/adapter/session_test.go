package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigweihq/walletlink/pkg/chains"
	"github.com/sigweihq/walletlink/pkg/constants"
)

func TestDeriveNetwork(t *testing.T) {
	eosID := chains.MustChainID(constants.ChainIDEOS)

	tests := []struct {
		name         string
		url          string
		wantHost     string
		wantPort     uint16
		wantProtocol string
		wantErr      bool
	}{
		{
			name:         "https defaults to 443",
			url:          "https://eos.greymass.com",
			wantHost:     "eos.greymass.com",
			wantPort:     443,
			wantProtocol: "https",
		},
		{
			name:         "http defaults to 80",
			url:          "http://127.0.0.1",
			wantHost:     "127.0.0.1",
			wantPort:     80,
			wantProtocol: "http",
		},
		{
			name:         "explicit port wins over default",
			url:          "https://api.testnet.example:8443",
			wantHost:     "api.testnet.example",
			wantPort:     8443,
			wantProtocol: "https",
		},
		{
			name:         "explicit port on http",
			url:          "http://localhost:8888",
			wantHost:     "localhost",
			wantPort:     8888,
			wantProtocol: "http",
		},
		{name: "unsupported scheme", url: "ws://eos.greymass.com", wantErr: true},
		{name: "missing host", url: "https://", wantErr: true},
		{name: "port out of range", url: "https://eos.greymass.com:99999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			descriptor := &chains.ChainDescriptor{Name: "eos", URL: tt.url, ID: eosID}
			network, err := deriveNetwork(descriptor)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, network.Host)
			assert.Equal(t, tt.wantPort, network.Port)
			assert.Equal(t, tt.wantProtocol, network.Protocol)
			assert.Equal(t, "eos", network.Blockchain)
			assert.Equal(t, eosID, network.ChainID)
		})
	}
}

func TestEstablishSessionConnectRefused(t *testing.T) {
	wallet := &stubWallet{connectResult: false}
	a := New(wallet, testRegistry(), nil)

	_, err := a.establishSession(context.Background(), eosDescriptor(), "unittest")
	assert.ErrorIs(t, err, ErrConnectionFailed)
	assert.Equal(t, 1, wallet.connectCalls)
}

func TestEstablishSessionConnectError(t *testing.T) {
	wallet := &stubWallet{connectErr: assert.AnError}
	a := New(wallet, testRegistry(), nil)

	_, err := a.establishSession(context.Background(), eosDescriptor(), "unittest")
	assert.ErrorIs(t, err, ErrConnectionFailed)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestEstablishSessionSuccess(t *testing.T) {
	wallet := &stubWallet{connectResult: true}
	a := New(wallet, testRegistry(), nil)

	session, err := a.establishSession(context.Background(), eosDescriptor(), "unittest")
	require.NoError(t, err)
	assert.Equal(t, "unittest", wallet.lastAppName)
	assert.Equal(t, "eos.greymass.com", session.Network.Host)
	assert.NotNil(t, session.Connector)
}
