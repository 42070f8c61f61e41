package kaspa

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"golang.org/x/crypto/blake2b"
)

var signingHashKey = []byte("TransactionSigningHash")

const subnetworkIDLength = 20

const (
	// InputSequence is the sequence written into every input.
	InputSequence uint64 = 0
	// InputSigOpCount is the signature operation count of a P2PK input.
	InputSigOpCount uint8 = 1
)

// SignatureHash computes the SigHashAll digest of input index of tx.
func SignatureHash(tx model.UnsignedTransaction, index int) (chainhash.Hash, error) {
	var digest chainhash.Hash
	if index < 0 || index >= len(tx.Inputs) {
		return digest, fmt.Errorf("input index %d out of range", index)
	}

	previousOutputs, err := previousOutputsHash(tx)
	if err != nil {
		return digest, err
	}
	input := tx.Inputs[index]
	txID, err := decodeTransactionID(input.TransactionID)
	if err != nil {
		return digest, err
	}

	w := newHashWriter()
	w.uint16(tx.Version)
	w.bytes(previousOutputs)
	w.bytes(sequencesHash(tx))
	w.bytes(sigOpCountsHash(tx))
	w.bytes(txID)
	w.uint32(input.Index)
	w.uint16(input.LockingScript.Version)
	w.varBytes(input.LockingScript.Bytes)
	w.uint64(input.Amount)
	w.uint64(InputSequence)
	w.uint8(InputSigOpCount)
	w.bytes(outputsHash(tx))
	w.uint64(tx.LockTime)
	w.bytes(make([]byte, subnetworkIDLength))
	w.uint64(0)
	w.bytes(make([]byte, chainhash.HashSize))
	w.uint8(SigHashAll)

	copy(digest[:], w.sum())
	return digest, nil
}

func previousOutputsHash(tx model.UnsignedTransaction) ([]byte, error) {
	w := newHashWriter()
	for _, in := range tx.Inputs {
		txID, err := decodeTransactionID(in.TransactionID)
		if err != nil {
			return nil, err
		}
		w.bytes(txID)
		w.uint32(in.Index)
	}
	return w.sum(), nil
}

func sequencesHash(tx model.UnsignedTransaction) []byte {
	w := newHashWriter()
	for range tx.Inputs {
		w.uint64(InputSequence)
	}
	return w.sum()
}

func sigOpCountsHash(tx model.UnsignedTransaction) []byte {
	w := newHashWriter()
	for range tx.Inputs {
		w.uint8(InputSigOpCount)
	}
	return w.sum()
}

func outputsHash(tx model.UnsignedTransaction) []byte {
	w := newHashWriter()
	for _, out := range tx.Outputs {
		w.uint64(out.Amount)
		w.uint16(out.Script.Version)
		w.varBytes(out.Script.Bytes)
	}
	return w.sum()
}

func decodeTransactionID(id string) ([]byte, error) {
	b, err := hex.DecodeString(id)
	if err != nil {
		return nil, fmt.Errorf("decode transaction id %q: %w", id, err)
	}
	if len(b) != chainhash.HashSize {
		return nil, fmt.Errorf("transaction id %q has %d bytes", id, len(b))
	}
	return b, nil
}

type hashWriter struct {
	h   hash.Hash
	buf [8]byte
}

func newHashWriter() *hashWriter {
	// A key within blake2b's 64 byte limit never fails.
	h, _ := blake2b.New256(signingHashKey)
	return &hashWriter{h: h}
}

func (w *hashWriter) bytes(b []byte) {
	_, _ = w.h.Write(b)
}

func (w *hashWriter) uint8(v uint8) {
	w.bytes([]byte{v})
}

func (w *hashWriter) uint16(v uint16) {
	binary.LittleEndian.PutUint16(w.buf[:2], v)
	w.bytes(w.buf[:2])
}

func (w *hashWriter) uint32(v uint32) {
	binary.LittleEndian.PutUint32(w.buf[:4], v)
	w.bytes(w.buf[:4])
}

func (w *hashWriter) uint64(v uint64) {
	binary.LittleEndian.PutUint64(w.buf[:], v)
	w.bytes(w.buf[:])
}

func (w *hashWriter) varBytes(b []byte) {
	w.uint64(uint64(len(b)))
	w.bytes(b)
}

func (w *hashWriter) sum() []byte {
	return w.h.Sum(nil)
}
