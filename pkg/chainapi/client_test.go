package chainapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigweihq/walletlink/pkg/constants"
	"github.com/sigweihq/walletlink/pkg/esr"
)

func TestGetInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chain/get_info", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		json.NewEncoder(w).Encode(map[string]any{
			"chain_id":                    constants.ChainIDEOS,
			"head_block_num":              1000,
			"head_block_id":               "000003e8aabbccdd0011223344556677000000000000000000000000000000ff",
			"head_block_time":             "2026-08-01T12:00:00",
			"last_irreversible_block_num": 998,
			"last_irreversible_block_id":  "000003e6aabbccdd0011223344556677000000000000000000000000000000ff",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	info, err := client.GetInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, constants.ChainIDEOS, info.ChainID.String())
	assert.Equal(t, uint32(1000), info.HeadBlockNum)
	assert.Equal(t, uint32(998), info.LastIrreversibleNum)
}

func TestRefBlock(t *testing.T) {
	// block number 0x01234567 in the leading big-endian word, prefix
	// 0xdeadbeef little-endian at offset 8
	id := "0123456700000000efbeadde" + "0000000000000000000000000000000000000000"

	refNum, refPrefix, err := RefBlock(id)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x4567), refNum)
	assert.Equal(t, uint32(0xdeadbeef), refPrefix)

	_, _, err = RefBlock("nothex")
	assert.Error(t, err)

	_, _, err = RefBlock("0123456700000000efbeadde")
	assert.ErrorContains(t, err, "expected 32 bytes")
}

func TestGetABI(t *testing.T) {
	abiBlob := []byte{0x0e, 'e', 'o', 's', 'i', 'o', ':', ':', 'a', 'b', 'i'}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chain/get_raw_abi", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "eosio.token", req["account_name"])

		json.NewEncoder(w).Encode(map[string]string{
			"account_name": "eosio.token",
			"abi":          base64.StdEncoding.EncodeToString(abiBlob),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	abi, err := client.GetABI(context.Background(), "eosio.token")
	require.NoError(t, err)
	assert.Equal(t, "eosio.token", abi.Account)
	assert.EqualValues(t, abiBlob, abi.Raw)
}

func TestChainErrorSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"what": "unknown key"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.GetABI(context.Background(), "missing")
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Contains(t, httpErr.Error(), "unknown key")
	assert.False(t, httpErr.IsNotFound())
}

// fetchCounter counts pass-through lookups behind the memoizing cache
type fetchCounter struct {
	calls int
}

func (f *fetchCounter) GetABI(_ context.Context, account string) (*esr.ABI, error) {
	f.calls++
	return &esr.ABI{Account: account}, nil
}

func TestABICacheMemoizes(t *testing.T) {
	source := &fetchCounter{}
	cache := NewABICache(source)

	for i := 0; i < 3; i++ {
		abi, err := cache.GetABI(context.Background(), "eosio.token")
		require.NoError(t, err)
		assert.Equal(t, "eosio.token", abi.Account)
	}
	_, err := cache.GetABI(context.Background(), "eosio")
	require.NoError(t, err)

	assert.Equal(t, 2, source.calls, "each account is fetched exactly once")
}
