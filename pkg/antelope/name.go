package antelope

import (
	"fmt"
	"strings"
)

// Antelope account, permission, and action names are base-32 encoded into a
// uint64 on the wire: 12 chars at 5 bits each plus a 4-bit 13th char.
const nameCharmap = ".12345abcdefghijklmnopqrstuvwxyz"

func charToSymbol(c byte) (uint64, error) {
	switch {
	case c == '.':
		return 0, nil
	case c >= '1' && c <= '5':
		return uint64(c-'1') + 1, nil
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 6, nil
	default:
		return 0, fmt.Errorf("invalid name character %q", c)
	}
}

// StringToName encodes a name string into its wire representation
func StringToName(s string) (uint64, error) {
	if len(s) > 13 {
		return 0, fmt.Errorf("name %q is longer than 13 characters", s)
	}
	var n uint64
	for i := 0; i <= 12; i++ {
		var c uint64
		if i < len(s) {
			sym, err := charToSymbol(s[i])
			if err != nil {
				return 0, fmt.Errorf("name %q: %w", s, err)
			}
			c = sym
		}
		if i < 12 {
			c &= 0x1f
			c <<= 64 - 5*uint(i+1)
		} else {
			c &= 0x0f
		}
		n |= c
	}
	return n, nil
}

// NameToString decodes a wire name value back into its string form
func NameToString(value uint64) string {
	buf := []byte(strings.Repeat(".", 13))
	tmp := value
	for i := 0; i <= 12; i++ {
		var c byte
		if i == 0 {
			c = nameCharmap[tmp&0x0f]
			tmp >>= 4
		} else {
			c = nameCharmap[tmp&0x1f]
			tmp >>= 5
		}
		buf[12-i] = c
	}
	return strings.TrimRight(string(buf), ".")
}

// ValidateName checks that a name is non-empty, encodable, and canonical
// (its wire form decodes back to the same string)
func ValidateName(s string) error {
	if s == "" {
		return fmt.Errorf("name is empty")
	}
	n, err := StringToName(s)
	if err != nil {
		return err
	}
	if NameToString(n) != s {
		return fmt.Errorf("name %q is not canonical", s)
	}
	return nil
}
