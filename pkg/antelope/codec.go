package antelope

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	bin "github.com/gagliardetto/binary"
)

// Minimum encoded sizes, used to bound collection counts before allocating.
// The counts come straight from wallet output, so a corrupt payload must
// fail as a decode error rather than an oversized allocation.
const (
	minActionSize        = 18 // two names plus two zero-length uvarints
	minAuthorizationSize = 16 // two names
	minExtensionSize     = 3  // type plus a zero-length uvarint
)

func checkCount(decoder *bin.Decoder, count uint64, minSize int, what string) error {
	if count > uint64(decoder.Remaining())/uint64(minSize) {
		return fmt.Errorf("%s count %d does not fit in %d remaining bytes", what, count, decoder.Remaining())
	}
	return nil
}

// Canonical binary encoding: little-endian fixed-width integers, uvarint
// collection lengths, names as uint64. Encoding a decoded transaction must
// reproduce the input bytes exactly; the signing round trip relies on that.

// EncodeTransaction serializes a transaction into its canonical binary form
func EncodeTransaction(tx *Transaction) ([]byte, error) {
	var buf bytes.Buffer
	encoder := bin.NewBinEncoder(&buf)
	if err := tx.MarshalWithEncoder(encoder); err != nil {
		return nil, fmt.Errorf("encode transaction: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeTransaction deserializes a canonical binary transaction
func DecodeTransaction(data []byte) (*Transaction, error) {
	decoder := bin.NewBinDecoder(data)
	tx := &Transaction{}
	if err := tx.UnmarshalWithDecoder(decoder); err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}
	return tx, nil
}

func writeName(encoder *bin.Encoder, s string) error {
	n, err := StringToName(s)
	if err != nil {
		return err
	}
	return encoder.WriteUint64(n, binary.LittleEndian)
}

func readName(decoder *bin.Decoder) (string, error) {
	n, err := decoder.ReadUint64(binary.LittleEndian)
	if err != nil {
		return "", err
	}
	return NameToString(n), nil
}

// MarshalWithEncoder implements the canonical encoding for a permission level
func (p PermissionLevel) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := writeName(encoder, p.Actor); err != nil {
		return fmt.Errorf("actor: %w", err)
	}
	if err := writeName(encoder, p.Permission); err != nil {
		return fmt.Errorf("permission: %w", err)
	}
	return nil
}

// UnmarshalWithDecoder implements the canonical decoding for a permission level
func (p *PermissionLevel) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	actor, err := readName(decoder)
	if err != nil {
		return fmt.Errorf("actor: %w", err)
	}
	permission, err := readName(decoder)
	if err != nil {
		return fmt.Errorf("permission: %w", err)
	}
	p.Actor = actor
	p.Permission = permission
	return nil
}

// MarshalWithEncoder implements the canonical encoding for an action
func (a Action) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := writeName(encoder, a.Account); err != nil {
		return fmt.Errorf("account: %w", err)
	}
	if err := writeName(encoder, a.Name); err != nil {
		return fmt.Errorf("name: %w", err)
	}
	if err := encoder.WriteUVarInt(len(a.Authorization)); err != nil {
		return err
	}
	for i, auth := range a.Authorization {
		if err := auth.MarshalWithEncoder(encoder); err != nil {
			return fmt.Errorf("authorization[%d]: %w", i, err)
		}
	}
	if err := encoder.WriteUVarInt(len(a.Data)); err != nil {
		return err
	}
	return encoder.WriteBytes(a.Data, false)
}

// UnmarshalWithDecoder implements the canonical decoding for an action
func (a *Action) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	account, err := readName(decoder)
	if err != nil {
		return fmt.Errorf("account: %w", err)
	}
	name, err := readName(decoder)
	if err != nil {
		return fmt.Errorf("name: %w", err)
	}
	a.Account = account
	a.Name = name

	authCount, err := decoder.ReadUvarint64()
	if err != nil {
		return err
	}
	if err := checkCount(decoder, authCount, minAuthorizationSize, "authorization"); err != nil {
		return err
	}
	a.Authorization = make([]PermissionLevel, authCount)
	for i := range a.Authorization {
		if err := a.Authorization[i].UnmarshalWithDecoder(decoder); err != nil {
			return fmt.Errorf("authorization[%d]: %w", i, err)
		}
	}

	dataLen, err := decoder.ReadUvarint64()
	if err != nil {
		return err
	}
	if dataLen > uint64(decoder.Remaining()) {
		return fmt.Errorf("data length %d does not fit in %d remaining bytes", dataLen, decoder.Remaining())
	}
	data, err := decoder.ReadNBytes(int(dataLen))
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	a.Data = data
	return nil
}

// MarshalWithEncoder implements the canonical encoding for an extension
func (e Extension) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := encoder.WriteUint16(e.Type, binary.LittleEndian); err != nil {
		return err
	}
	if err := encoder.WriteUVarInt(len(e.Data)); err != nil {
		return err
	}
	return encoder.WriteBytes(e.Data, false)
}

// UnmarshalWithDecoder implements the canonical decoding for an extension
func (e *Extension) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	typ, err := decoder.ReadUint16(binary.LittleEndian)
	if err != nil {
		return err
	}
	e.Type = typ

	dataLen, err := decoder.ReadUvarint64()
	if err != nil {
		return err
	}
	if dataLen > uint64(decoder.Remaining()) {
		return fmt.Errorf("data length %d does not fit in %d remaining bytes", dataLen, decoder.Remaining())
	}
	data, err := decoder.ReadNBytes(int(dataLen))
	if err != nil {
		return err
	}
	e.Data = data
	return nil
}

// MarshalWithEncoder implements the canonical encoding for a transaction
func (tx Transaction) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := encoder.WriteUint32(uint32(tx.Expiration), binary.LittleEndian); err != nil {
		return err
	}
	if err := encoder.WriteUint16(tx.RefBlockNum, binary.LittleEndian); err != nil {
		return err
	}
	if err := encoder.WriteUint32(tx.RefBlockPrefix, binary.LittleEndian); err != nil {
		return err
	}
	if err := encoder.WriteUVarInt(int(tx.MaxNetUsageWords)); err != nil {
		return err
	}
	if err := encoder.WriteByte(tx.MaxCPUUsageMS); err != nil {
		return err
	}
	if err := encoder.WriteUVarInt(int(tx.DelaySec)); err != nil {
		return err
	}

	if err := writeActions(encoder, tx.ContextFreeActions); err != nil {
		return fmt.Errorf("context free actions: %w", err)
	}
	if err := writeActions(encoder, tx.Actions); err != nil {
		return fmt.Errorf("actions: %w", err)
	}

	if err := encoder.WriteUVarInt(len(tx.Extensions)); err != nil {
		return err
	}
	for i, ext := range tx.Extensions {
		if err := ext.MarshalWithEncoder(encoder); err != nil {
			return fmt.Errorf("extension[%d]: %w", i, err)
		}
	}
	return nil
}

// UnmarshalWithDecoder implements the canonical decoding for a transaction
func (tx *Transaction) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	expiration, err := decoder.ReadUint32(binary.LittleEndian)
	if err != nil {
		return fmt.Errorf("expiration: %w", err)
	}
	tx.Expiration = TimePointSec(expiration)

	if tx.RefBlockNum, err = decoder.ReadUint16(binary.LittleEndian); err != nil {
		return fmt.Errorf("ref block num: %w", err)
	}
	if tx.RefBlockPrefix, err = decoder.ReadUint32(binary.LittleEndian); err != nil {
		return fmt.Errorf("ref block prefix: %w", err)
	}

	maxNet, err := decoder.ReadUvarint64()
	if err != nil {
		return fmt.Errorf("max net usage words: %w", err)
	}
	if maxNet > math.MaxUint32 {
		return fmt.Errorf("max net usage words %d out of range", maxNet)
	}
	tx.MaxNetUsageWords = uint32(maxNet)

	if tx.MaxCPUUsageMS, err = decoder.ReadByte(); err != nil {
		return fmt.Errorf("max cpu usage ms: %w", err)
	}

	delaySec, err := decoder.ReadUvarint64()
	if err != nil {
		return fmt.Errorf("delay sec: %w", err)
	}
	if delaySec > math.MaxUint32 {
		return fmt.Errorf("delay sec %d out of range", delaySec)
	}
	tx.DelaySec = uint32(delaySec)

	if tx.ContextFreeActions, err = readActions(decoder); err != nil {
		return fmt.Errorf("context free actions: %w", err)
	}
	if tx.Actions, err = readActions(decoder); err != nil {
		return fmt.Errorf("actions: %w", err)
	}

	extCount, err := decoder.ReadUvarint64()
	if err != nil {
		return err
	}
	if err := checkCount(decoder, extCount, minExtensionSize, "extension"); err != nil {
		return err
	}
	tx.Extensions = make([]Extension, extCount)
	for i := range tx.Extensions {
		if err := tx.Extensions[i].UnmarshalWithDecoder(decoder); err != nil {
			return fmt.Errorf("extension[%d]: %w", i, err)
		}
	}
	return nil
}

func writeActions(encoder *bin.Encoder, actions []Action) error {
	if err := encoder.WriteUVarInt(len(actions)); err != nil {
		return err
	}
	for i, act := range actions {
		if err := act.MarshalWithEncoder(encoder); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	return nil
}

func readActions(decoder *bin.Decoder) ([]Action, error) {
	count, err := decoder.ReadUvarint64()
	if err != nil {
		return nil, err
	}
	if err := checkCount(decoder, count, minActionSize, "action"); err != nil {
		return nil, err
	}
	actions := make([]Action, count)
	for i := range actions {
		if err := actions[i].UnmarshalWithDecoder(decoder); err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
	}
	return actions, nil
}
