package antelope

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// HexBytes is a byte slice that serializes to a hex string in JSON,
// matching the wallet wire format for binary payloads
type HexBytes []byte

func (h HexBytes) String() string {
	return hex.EncodeToString(h)
}

func (h HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h))
}

func (h *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid hex payload: %w", err)
	}
	*h = raw
	return nil
}

// Signature is a wallet-produced signature in its canonical text form
// (e.g. "SIG_K1_..."). The adapter treats signatures as opaque and never
// reorders them.
type Signature string

func (s Signature) String() string {
	return string(s)
}

// TimePointSec is a UTC timestamp with second precision, serialized as a
// uint32 on the wire and as "2006-01-02T15:04:05" in JSON
type TimePointSec uint32

const timePointSecFormat = "2006-01-02T15:04:05"

// NewTimePointSec truncates a time.Time to second precision
func NewTimePointSec(t time.Time) TimePointSec {
	return TimePointSec(t.UTC().Unix())
}

func (t TimePointSec) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

func (t TimePointSec) String() string {
	return t.Time().Format(timePointSecFormat)
}

func (t TimePointSec) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimePointSec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(timePointSecFormat, s)
	if err != nil {
		return fmt.Errorf("invalid time point %q: %w", s, err)
	}
	*t = TimePointSec(parsed.Unix())
	return nil
}

// PermissionLevel is the canonical (actor, permission) pair an action is
// authorized with. Construct through NewPermissionLevel or
// ParsePermissionLevel so that name validation always runs.
type PermissionLevel struct {
	Actor      string `json:"actor"`
	Permission string `json:"permission"`
}

// NewPermissionLevel validates both names and builds the pair
func NewPermissionLevel(actor, permission string) (PermissionLevel, error) {
	if err := ValidateName(actor); err != nil {
		return PermissionLevel{}, fmt.Errorf("invalid actor: %w", err)
	}
	if err := ValidateName(permission); err != nil {
		return PermissionLevel{}, fmt.Errorf("invalid permission: %w", err)
	}
	return PermissionLevel{Actor: actor, Permission: permission}, nil
}

// ParsePermissionLevel parses the "actor@permission" text form
func ParsePermissionLevel(s string) (PermissionLevel, error) {
	actor, permission, found := strings.Cut(s, "@")
	if !found {
		return PermissionLevel{}, fmt.Errorf("invalid permission level %q: expected actor@permission", s)
	}
	return NewPermissionLevel(actor, permission)
}

func (p PermissionLevel) String() string {
	return p.Actor + "@" + p.Permission
}

// Equal compares two permission levels
func (p PermissionLevel) Equal(o PermissionLevel) bool {
	return p.Actor == o.Actor && p.Permission == o.Permission
}

// Action is a single contract call within a transaction
type Action struct {
	Account       string            `json:"account"`
	Name          string            `json:"name"`
	Authorization []PermissionLevel `json:"authorization"`
	Data          HexBytes          `json:"data"`
}

// Extension is an opaque transaction extension entry
type Extension struct {
	Type uint16   `json:"type"`
	Data HexBytes `json:"data"`
}

// Transaction is the canonical transaction representation shared with the
// session framework. The wallet may return a modified copy of it after the
// user-approval step; instances are never mutated in place.
type Transaction struct {
	Expiration     TimePointSec `json:"expiration"`
	RefBlockNum    uint16       `json:"ref_block_num"`
	RefBlockPrefix uint32       `json:"ref_block_prefix"`

	MaxNetUsageWords uint32 `json:"max_net_usage_words"`
	MaxCPUUsageMS    uint8  `json:"max_cpu_usage_ms"`
	DelaySec         uint32 `json:"delay_sec"`

	ContextFreeActions []Action    `json:"context_free_actions"`
	Actions            []Action    `json:"actions"`
	Extensions         []Extension `json:"transaction_extensions"`
}

// Clone returns a deep copy of the transaction
func (tx *Transaction) Clone() *Transaction {
	out := *tx
	out.ContextFreeActions = cloneActions(tx.ContextFreeActions)
	out.Actions = cloneActions(tx.Actions)
	if tx.Extensions != nil {
		out.Extensions = make([]Extension, len(tx.Extensions))
		for i, ext := range tx.Extensions {
			out.Extensions[i] = Extension{Type: ext.Type, Data: append(HexBytes(nil), ext.Data...)}
		}
	}
	return &out
}

func cloneActions(actions []Action) []Action {
	if actions == nil {
		return nil
	}
	out := make([]Action, len(actions))
	for i, act := range actions {
		out[i] = Action{
			Account: act.Account,
			Name:    act.Name,
			Data:    append(HexBytes(nil), act.Data...),
		}
		if act.Authorization != nil {
			out[i].Authorization = append([]PermissionLevel(nil), act.Authorization...)
		}
	}
	return out
}
