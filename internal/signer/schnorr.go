package signer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/kaspa"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
)

// SchnorrSigner signs every input with the key derived from the material.
type SchnorrSigner struct {
	deriver *Deriver
}

// NewSchnorrSigner returns a signer backed by deriver.
func NewSchnorrSigner(deriver *Deriver) *SchnorrSigner {
	return &SchnorrSigner{deriver: deriver}
}

// Sign produces the signed form of tx. Inputs locked to another key are
// rejected instead of producing an invalid transaction.
func (s *SchnorrSigner) Sign(ctx context.Context, tx model.UnsignedTransaction, material model.SigningMaterial) (*model.SignedTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, err := s.deriver.PrivateKey(material)
	if err != nil {
		return nil, err
	}
	xOnly := schnorr.SerializePubKey(key.PubKey())
	expected, err := kaspa.PayToAddressScript(kaspa.Address{Version: kaspa.VersionPubKey, Payload: xOnly})
	if err != nil {
		return nil, err
	}

	inputs := make([]model.SignedInput, 0, len(tx.Inputs))
	for i, in := range tx.Inputs {
		if !bytes.Equal(in.LockingScript.Bytes, expected.Bytes) {
			return nil, fmt.Errorf("input %d (%s:%d) is not locked to the signing key", i, in.TransactionID, in.Index)
		}
		digest, err := kaspa.SignatureHash(tx, i)
		if err != nil {
			return nil, fmt.Errorf("signature hash of input %d: %w", i, err)
		}
		sig, err := schnorr.Sign(key, digest[:])
		if err != nil {
			return nil, fmt.Errorf("sign input %d: %w", i, err)
		}
		inputs = append(inputs, model.SignedInput{
			Previous:        in,
			SignatureScript: kaspa.SchnorrSignatureScript(sig.Serialize(), kaspa.SigHashAll),
			Sequence:        kaspa.InputSequence,
			SigOpCount:      kaspa.InputSigOpCount,
		})
	}

	outputs := make([]model.TransactionOutput, len(tx.Outputs))
	copy(outputs, tx.Outputs)

	return &model.SignedTransaction{
		Version:  tx.Version,
		Inputs:   inputs,
		Outputs:  outputs,
		LockTime: tx.LockTime,
		Fee:      tx.Fee,
	}, nil
}
