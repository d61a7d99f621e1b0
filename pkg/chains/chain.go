package chains

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ChainID is the 32-byte identifier of an Antelope chain (hex-encoded in
// string and JSON form).
type ChainID [32]byte

// ParseChainID parses a 64-character hex chain identifier
func ParseChainID(s string) (ChainID, error) {
	var id ChainID
	raw, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("invalid chain id %q: %w", s, err)
	}
	if len(raw) != 32 {
		return id, fmt.Errorf("invalid chain id %q: expected 32 bytes, got %d", s, len(raw))
	}
	copy(id[:], raw)
	return id, nil
}

// MustChainID parses a chain id and panics on failure (for static tables)
func MustChainID(s string) ChainID {
	id, err := ParseChainID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ChainID) String() string {
	return hex.EncodeToString(id[:])
}

// IsZero reports whether the id is the all-zero value
func (id ChainID) IsZero() bool {
	return id == ChainID{}
}

func (id ChainID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *ChainID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseChainID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ChainDescriptor identifies the chain a caller wants to operate on.
// It is supplied by the caller and treated as immutable for the duration
// of an operation.
type ChainDescriptor struct {
	// Name is the human-readable chain name (e.g. "eos")
	Name string `json:"name"`

	// URL is the chain API endpoint the wallet should submit through
	// (e.g. "https://eos.greymass.com")
	URL string `json:"url"`

	// ID is the chain identifier
	ID ChainID `json:"id"`
}
