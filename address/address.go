package address

import (
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Base58 type defines the structure of an address legacy or wrapped segwit
type Base58 struct {
	Version byte
	Data    []byte
}

// Bech32 defines the structure of an address native segwit
type Bech32 struct {
	Prefix  string
	Version byte
	Data    []byte
}

// FromBase58 decodes a string that was base58 encoded and verifies the checksum.
func FromBase58(address string) (*Base58, error) {
	decoded, version, err := base58.CheckDecode(address)
	if err != nil {
		return nil, errors.New("invalid address")
	}

	if len(decoded) < 20 {
		return nil, errors.New(address + " is too short")
	}
	if len(decoded) > 20 {
		return nil, errors.New(address + " is too long")
	}

	return &Base58{version, decoded}, nil
}

// ToBase58 prepends a version byte and appends a four byte checksum.
func ToBase58(b *Base58) string {
	encoded := base58.CheckEncode(b.Data, b.Version)
	return encoded
}

// FromBech32 decodes a bech32 encoded string and regroups the witness
// program back into 8-bit bytes.
func FromBech32(address string) (*Bech32, error) {
	prefix, data, err := bech32.Decode(address)
	if err != nil {
		return nil, err
	}
	if len(data) < 1 {
		return nil, errors.New("empty witness program")
	}

	version := data[0]
	if version > 16 {
		return nil, errors.New("invalid witness version")
	}

	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return nil, err
	}
	if len(program) < 2 || len(program) > 40 {
		return nil, errors.New("invalid witness program length")
	}
	if version == 0 && len(program) != 20 && len(program) != 32 {
		return nil, errors.New(
			"invalid witness program length for witness version 0",
		)
	}

	return &Bech32{prefix, version, program}, nil
}

// ToBech32 regroups the witness program into 5-bit words and encodes it
// with the witness version prepended.
func ToBech32(b *Bech32) (string, error) {
	converted, err := bech32.ConvertBits(b.Data, 8, 5, true)
	if err != nil {
		return "", err
	}

	combined := make([]byte, 0, len(converted)+1)
	combined = append(combined, b.Version)
	combined = append(combined, converted...)
	return bech32.Encode(b.Prefix, combined)
}
