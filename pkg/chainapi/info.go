package chainapi

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/sigweihq/walletlink/pkg/antelope"
	"github.com/sigweihq/walletlink/pkg/chains"
)

// ChainInfo is the subset of /v1/chain/get_info the adapter needs
type ChainInfo struct {
	ChainID             chains.ChainID        `json:"chain_id"`
	HeadBlockNum        uint32                `json:"head_block_num"`
	HeadBlockID         string                `json:"head_block_id"`
	HeadBlockTime       antelope.TimePointSec `json:"head_block_time"`
	LastIrreversibleNum uint32                `json:"last_irreversible_block_num"`
	LastIrreversibleID  string                `json:"last_irreversible_block_id"`
}

// GetInfo fetches the node's chain info
func (c *Client) GetInfo(ctx context.Context) (*ChainInfo, error) {
	var info ChainInfo
	if err := c.post(ctx, "/v1/chain/get_info", nil, &info); err != nil {
		return nil, fmt.Errorf("get_info: %w", err)
	}
	return &info, nil
}

// RefBlock derives the reference block fields a transaction needs from a
// block id: the low 16 bits of the block number and a 32-bit prefix taken
// from the id itself.
func RefBlock(blockID string) (uint16, uint32, error) {
	raw, err := hex.DecodeString(blockID)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid block id %q: %w", blockID, err)
	}
	if len(raw) != 32 {
		return 0, 0, fmt.Errorf("invalid block id %q: expected 32 bytes, got %d", blockID, len(raw))
	}
	// The block number occupies the first 4 bytes big-endian; the prefix is
	// the little-endian word at offset 8.
	blockNum := binary.BigEndian.Uint32(raw[:4])
	prefix := binary.LittleEndian.Uint32(raw[8:12])
	return uint16(blockNum & 0xFFFF), prefix, nil
}

// FillRefBlock stamps a transaction with reference block fields derived
// from the node's current last irreversible block.
func (c *Client) FillRefBlock(ctx context.Context, tx *antelope.Transaction) error {
	info, err := c.GetInfo(ctx)
	if err != nil {
		return err
	}
	refNum, refPrefix, err := RefBlock(info.LastIrreversibleID)
	if err != nil {
		return err
	}
	tx.RefBlockNum = refNum
	tx.RefBlockPrefix = refPrefix
	return nil
}
