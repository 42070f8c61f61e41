package signer

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/kaspa"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"github.com/tyler-smith/go-bip39"
)

// CoinType is the BIP-44 coin type of the ledger.
const CoinType = 111111

// DerivationPath is m/44'/111111'/0'/0/0, the first receive address.
var DerivationPath = []uint32{
	hdkeychain.HardenedKeyStart + 44,
	hdkeychain.HardenedKeyStart + CoinType,
	hdkeychain.HardenedKeyStart + 0,
	0,
	0,
}

var errEmptyMaterial = errors.New("signing material is empty")

// Deriver turns signing material into keys and addresses.
type Deriver struct{}

// NewDeriver returns a Deriver.
func NewDeriver() *Deriver {
	return &Deriver{}
}

// PrivateKey returns the key the material controls.
func (d *Deriver) PrivateKey(material model.SigningMaterial) (*btcec.PrivateKey, error) {
	if material.Empty() {
		return nil, errEmptyMaterial
	}
	switch material.Kind {
	case model.MaterialPrivateKey:
		raw, err := hex.DecodeString(material.Secret())
		if err != nil {
			return nil, fmt.Errorf("decode private key: %w", err)
		}
		key, _ := btcec.PrivKeyFromBytes(raw)
		if key.Key.IsZero() {
			return nil, errors.New("private key is zero")
		}
		return key, nil
	case model.MaterialMnemonic:
		seed, err := bip39.NewSeedWithErrorChecking(material.Secret(), "")
		if err != nil {
			return nil, fmt.Errorf("mnemonic seed: %w", err)
		}
		key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
		if err != nil {
			return nil, fmt.Errorf("master key: %w", err)
		}
		for _, index := range DerivationPath {
			if key, err = key.Derive(index); err != nil {
				return nil, fmt.Errorf("derive child %d: %w", index, err)
			}
		}
		return key.ECPrivKey()
	default:
		return nil, fmt.Errorf("unsupported material kind %q", material.Kind)
	}
}

// DeriveAddress returns the Schnorr pay-to-pubkey address of the material
// on network.
func (d *Deriver) DeriveAddress(material model.SigningMaterial, network model.Network) (string, error) {
	prefix := network.AddressPrefix()
	if prefix == "" {
		return "", fmt.Errorf("no address prefix for network %q", network)
	}
	key, err := d.PrivateKey(material)
	if err != nil {
		return "", err
	}
	return AddressFromPublicKey(key.PubKey(), network), nil
}

// AddressFromPublicKey encodes the x-only public key for network.
func AddressFromPublicKey(pub *btcec.PublicKey, network model.Network) string {
	return kaspa.EncodeAddress(network.AddressPrefix(), kaspa.VersionPubKey, schnorr.SerializePubKey(pub))
}
