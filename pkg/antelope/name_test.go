package antelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringToNameKnownValue(t *testing.T) {
	n, err := StringToName("eosio")
	assert.NoError(t, err)
	assert.Equal(t, uint64(0x5530EA0000000000), n)
}

func TestNameRoundTrip(t *testing.T) {
	names := []string{
		"eosio",
		"eosio.token",
		"alice",
		"transfer",
		"active",
		"a",
		"aaaaaaaaaaaaa", // 13 chars
		"............1", // request placeholder
		"............2",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			n, err := StringToName(name)
			assert.NoError(t, err)
			assert.Equal(t, name, NameToString(n))
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple account", input: "alice", wantErr: false},
		{name: "dotted account", input: "eosio.token", wantErr: false},
		{name: "digits", input: "acc12345", wantErr: false},
		{name: "placeholder", input: "............1", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "uppercase", input: "Alice", wantErr: true},
		{name: "too long", input: "aaaaaaaaaaaaaa", wantErr: true},
		{name: "invalid digit", input: "alice9", wantErr: true},
		{name: "trailing dot not canonical", input: "alice.", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParsePermissionLevel(t *testing.T) {
	level, err := ParsePermissionLevel("alice@active")
	assert.NoError(t, err)
	assert.Equal(t, "alice", level.Actor)
	assert.Equal(t, "active", level.Permission)
	assert.Equal(t, "alice@active", level.String())

	_, err = ParsePermissionLevel("alice")
	assert.Error(t, err, "missing separator should fail")

	_, err = ParsePermissionLevel("@active")
	assert.Error(t, err, "empty actor should fail")

	_, err = ParsePermissionLevel("alice@")
	assert.Error(t, err, "empty permission should fail")

	_, err = ParsePermissionLevel("Alice@active")
	assert.Error(t, err, "invalid actor name should fail")
}
