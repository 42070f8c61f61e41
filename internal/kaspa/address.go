// Package kaspa holds the ledger specific encodings: addresses, locking
// scripts, signature hashes and the JSON wire types shared by the RPC and
// REST transports.
package kaspa

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
)

const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

const checksumLength = 8

// AddressVersion is the first payload byte and selects the script type.
type AddressVersion byte

const (
	VersionPubKey      AddressVersion = 0
	VersionPubKeyECDSA AddressVersion = 1
	VersionScriptHash  AddressVersion = 8
)

var (
	ErrInvalidAddress  = errors.New("invalid address")
	ErrInvalidChecksum = errors.New("invalid address checksum")
	ErrUnknownPrefix   = errors.New("unknown address prefix")
	ErrNetworkMismatch = errors.New("address network mismatch")
)

var generator = [5]uint64{0x98f2bc8e61, 0x79b76d99e2, 0xf33e5fb3c4, 0xae2eabe2a8, 0x1e4f43e470}

// Address is a decoded ledger address.
type Address struct {
	Prefix  string
	Network model.Network
	Version AddressVersion
	Payload []byte
}

func (a Address) String() string {
	return EncodeAddress(a.Prefix, a.Version, a.Payload)
}

// DecodeAddress parses "prefix:payload" and verifies its checksum.
func DecodeAddress(s string) (Address, error) {
	if s != strings.ToLower(s) && s != strings.ToUpper(s) {
		return Address{}, fmt.Errorf("%w: mixed case", ErrInvalidAddress)
	}
	s = strings.ToLower(s)

	prefix, data, ok := strings.Cut(s, ":")
	if !ok || prefix == "" {
		return Address{}, fmt.Errorf("%w: missing prefix", ErrInvalidAddress)
	}
	network, ok := model.NetworkByPrefix(prefix)
	if !ok {
		return Address{}, fmt.Errorf("%w %q", ErrUnknownPrefix, prefix)
	}
	if len(data) <= checksumLength {
		return Address{}, fmt.Errorf("%w: payload too short", ErrInvalidAddress)
	}

	values := make([]byte, len(data))
	for i := 0; i < len(data); i++ {
		idx := strings.IndexByte(charset, data[i])
		if idx < 0 {
			return Address{}, fmt.Errorf("%w: invalid character %q", ErrInvalidAddress, data[i])
		}
		values[i] = byte(idx)
	}
	if polyMod(prefix, values) != 0 {
		return Address{}, ErrInvalidChecksum
	}

	payload, err := bech32.ConvertBits(values[:len(values)-checksumLength], 5, 8, false)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(payload) < 1 {
		return Address{}, fmt.Errorf("%w: empty payload", ErrInvalidAddress)
	}

	addr := Address{
		Prefix:  prefix,
		Network: network,
		Version: AddressVersion(payload[0]),
		Payload: payload[1:],
	}
	if err := addr.validateLength(); err != nil {
		return Address{}, err
	}
	return addr, nil
}

// EncodeAddress renders the payload with the given prefix and version.
func EncodeAddress(prefix string, version AddressVersion, payload []byte) string {
	data := make([]byte, 0, len(payload)+1)
	data = append(data, byte(version))
	data = append(data, payload...)

	// Padding on an 8-to-5 conversion never fails.
	converted, _ := bech32.ConvertBits(data, 8, 5, true)

	checksum := polyMod(prefix, append(append([]byte{}, converted...), make([]byte, checksumLength)...))
	for i := 0; i < checksumLength; i++ {
		converted = append(converted, byte((checksum>>(5*(checksumLength-1-i)))&31))
	}

	var sb strings.Builder
	sb.Grow(len(prefix) + 1 + len(converted))
	sb.WriteString(prefix)
	sb.WriteByte(':')
	for _, v := range converted {
		sb.WriteByte(charset[v])
	}
	return sb.String()
}

// ValidateForNetwork decodes s and checks that it belongs to network.
func ValidateForNetwork(s string, network model.Network) (Address, error) {
	addr, err := DecodeAddress(s)
	if err != nil {
		return Address{}, err
	}
	if addr.Network != network {
		return Address{}, fmt.Errorf("%w: address prefix %q does not belong to %s", ErrNetworkMismatch, addr.Prefix, network)
	}
	return addr, nil
}

func (a Address) validateLength() error {
	want := 0
	switch a.Version {
	case VersionPubKey, VersionScriptHash:
		want = 32
	case VersionPubKeyECDSA:
		want = 33
	default:
		return fmt.Errorf("%w: unknown version %d", ErrInvalidAddress, a.Version)
	}
	if len(a.Payload) != want {
		return fmt.Errorf("%w: payload length %d for version %d", ErrInvalidAddress, len(a.Payload), a.Version)
	}
	return nil
}

func polyMod(prefix string, values []byte) uint64 {
	checksum := uint64(1)
	step := func(v byte) {
		top := checksum >> 35
		checksum = ((checksum & 0x07ffffffff) << 5) ^ uint64(v)
		for i := 0; i < len(generator); i++ {
			if (top>>uint(i))&1 == 1 {
				checksum ^= generator[i]
			}
		}
	}
	for i := 0; i < len(prefix); i++ {
		step(prefix[i] & 0x1f)
	}
	step(0)
	for _, v := range values {
		step(v)
	}
	return checksum ^ 1
}
