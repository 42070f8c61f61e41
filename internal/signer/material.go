// Package signer parses signing material, derives addresses from it and
// signs transactions with Schnorr signatures.
package signer

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"github.com/tyler-smith/go-bip39"
)

// ErrInvalidMaterial is returned for input that is neither a private key nor a mnemonic.
var ErrInvalidMaterial = errors.New("signing material is neither a hex private key nor a valid mnemonic")

const privateKeyHexLength = 64

// ParseMaterial classifies the secret once, at the boundary.
func ParseMaterial(secret string) (model.SigningMaterial, error) {
	secret = strings.TrimSpace(secret)
	candidate := strings.TrimPrefix(strings.ToLower(secret), "0x")
	if len(candidate) == privateKeyHexLength {
		if _, err := hex.DecodeString(candidate); err == nil {
			return model.NewSigningMaterial(model.MaterialPrivateKey, candidate), nil
		}
	}

	words := strings.Fields(strings.ToLower(secret))
	switch len(words) {
	case 12, 15, 18, 21, 24:
	default:
		return model.SigningMaterial{}, ErrInvalidMaterial
	}
	mnemonic := strings.Join(words, " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return model.SigningMaterial{}, ErrInvalidMaterial
	}
	return model.NewSigningMaterial(model.MaterialMnemonic, mnemonic), nil
}
