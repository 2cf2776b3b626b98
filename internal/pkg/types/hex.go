package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// HexBytes is a byte string that travels as a "0x"-prefixed hexadecimal string (e.g., "0x01ff").
// It is the wire format used by the embedded wallet SDK for serialized messages and signatures.
type HexBytes []byte

// HexBytesFromString decodes a "0x"-prefixed hexadecimal string.
//
// The prefix is matched case-insensitively. An odd number of digits or any
// non-hexadecimal character is rejected.
func HexBytesFromString(s string) (HexBytes, error) {
	digits, ok := trimHexPrefix(s)
	if !ok {
		return nil, fmt.Errorf("hex string must start with 0x")
	}

	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("invalid hexadecimal value: %w", err)
	}

	return HexBytes(b), nil
}

// HasHexPrefix reports whether s starts with "0x" or "0X".
func HasHexPrefix(s string) bool {
	_, ok := trimHexPrefix(s)
	return ok
}

func trimHexPrefix(s string) (string, bool) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:], true
	}
	return s, false
}

// String returns the lowercase "0x"-prefixed representation.
func (h HexBytes) String() string {
	return "0x" + hex.EncodeToString(h)
}

// MarshalJSON encodes the bytes as a JSON "0x"-prefixed hex string.
func (h HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON parses and validates a JSON-encoded "0x"-prefixed hex string.
func (h *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	b, err := HexBytesFromString(s)
	if err != nil {
		return err
	}

	*h = b
	return nil
}
