package kaspa

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
)

// ErrMalformed marks a response that does not have the expected shape.
var ErrMalformed = errors.New("malformed response")

const nativeSubnetworkID = "0000000000000000000000000000000000000000"

// FlexUint64 accepts both JSON numbers and decimal strings.
type FlexUint64 uint64

func (f *FlexUint64) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: number %s: %v", ErrMalformed, string(data), err)
	}
	*f = FlexUint64(v)
	return nil
}

type Outpoint struct {
	TransactionID string `json:"transactionId"`
	Index         uint32 `json:"index"`
}

// ScriptPublicKey decodes either {"version":v,"scriptPublicKey":"hex"} or a
// bare hex string prefixed with the two byte big endian version.
type ScriptPublicKey struct {
	Version uint16 `json:"version"`
	Script  string `json:"scriptPublicKey"`
}

func (s *ScriptPublicKey) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if len(raw) < 4 {
			return fmt.Errorf("%w: script public key %q", ErrMalformed, raw)
		}
		v, err := strconv.ParseUint(raw[:4], 16, 16)
		if err != nil {
			return fmt.Errorf("%w: script version %q", ErrMalformed, raw[:4])
		}
		s.Version = uint16(v)
		s.Script = raw[4:]
		return nil
	}
	type plain ScriptPublicKey
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = ScriptPublicKey(p)
	return nil
}

type UTXOEntry struct {
	Amount          FlexUint64       `json:"amount"`
	ScriptPublicKey *ScriptPublicKey `json:"scriptPublicKey"`
	BlockDaaScore   FlexUint64       `json:"blockDaaScore"`
	IsCoinbase      bool             `json:"isCoinbase"`
}

// UTXO is the nested outpoint/entry shape used by both transports.
type UTXO struct {
	Address   string     `json:"address,omitempty"`
	Outpoint  *Outpoint  `json:"outpoint"`
	UTXOEntry *UTXOEntry `json:"utxoEntry"`
}

// ToUnspentOutputs normalises wire UTXOs, rejecting incomplete entries.
func ToUnspentOutputs(utxos []UTXO) ([]model.UnspentOutput, error) {
	out := make([]model.UnspentOutput, 0, len(utxos))
	for i, u := range utxos {
		if u.Outpoint == nil || u.UTXOEntry == nil {
			return nil, fmt.Errorf("%w: utxo %d misses outpoint or entry", ErrMalformed, i)
		}
		if _, err := decodeTransactionID(u.Outpoint.TransactionID); err != nil {
			return nil, fmt.Errorf("%w: utxo %d: %v", ErrMalformed, i, err)
		}
		if u.UTXOEntry.Amount == 0 {
			return nil, fmt.Errorf("%w: utxo %d has zero amount", ErrMalformed, i)
		}
		if u.UTXOEntry.ScriptPublicKey == nil {
			return nil, fmt.Errorf("%w: utxo %d misses script public key", ErrMalformed, i)
		}
		script, err := hex.DecodeString(u.UTXOEntry.ScriptPublicKey.Script)
		if err != nil {
			return nil, fmt.Errorf("%w: utxo %d script: %v", ErrMalformed, i, err)
		}
		out = append(out, model.UnspentOutput{
			TransactionID: strings.ToLower(u.Outpoint.TransactionID),
			Index:         u.Outpoint.Index,
			Amount:        uint64(u.UTXOEntry.Amount),
			LockingScript: model.Script{Version: u.UTXOEntry.ScriptPublicKey.Version, Bytes: script},
			BlockDAAScore: uint64(u.UTXOEntry.BlockDaaScore),
			IsCoinbase:    u.UTXOEntry.IsCoinbase,
		})
	}
	return out, nil
}

// BalanceResponse covers both the aggregate and the split balance shapes.
type BalanceResponse struct {
	Address   string      `json:"address"`
	Balance   *FlexUint64 `json:"balance"`
	Available *FlexUint64 `json:"available"`
	Pending   *FlexUint64 `json:"pending"`
}

// Split returns available and pending figures for the declared shape.
func (b BalanceResponse) Split(shape model.BalanceShape) (available, pending uint64, err error) {
	if shape == model.BalanceShapeAuto || shape == "" {
		shape = b.detect()
	}
	switch shape {
	case model.BalanceShapeAggregate:
		if b.Balance == nil {
			return 0, 0, fmt.Errorf("%w: aggregate balance misses balance field", ErrMalformed)
		}
		return uint64(*b.Balance), 0, nil
	case model.BalanceShapeSplit:
		if b.Available == nil {
			return 0, 0, fmt.Errorf("%w: split balance misses available field", ErrMalformed)
		}
		if b.Pending != nil {
			pending = uint64(*b.Pending)
		}
		return uint64(*b.Available), pending, nil
	default:
		return 0, 0, fmt.Errorf("%w: unrecognised balance shape", ErrMalformed)
	}
}

func (b BalanceResponse) detect() model.BalanceShape {
	switch {
	case b.Available != nil:
		return model.BalanceShapeSplit
	case b.Balance != nil:
		return model.BalanceShapeAggregate
	default:
		return ""
	}
}

type TransactionInput struct {
	PreviousOutpoint Outpoint `json:"previousOutpoint"`
	SignatureScript  string   `json:"signatureScript"`
	Sequence         uint64   `json:"sequence"`
	SigOpCount       uint8    `json:"sigOpCount"`
}

type TransactionOutput struct {
	Amount          uint64          `json:"amount"`
	ScriptPublicKey ScriptPublicKey `json:"scriptPublicKey"`
}

type Transaction struct {
	Version      uint16              `json:"version"`
	Inputs       []TransactionInput  `json:"inputs"`
	Outputs      []TransactionOutput `json:"outputs"`
	LockTime     uint64              `json:"lockTime"`
	SubnetworkID string              `json:"subnetworkId"`
}

type SubmitTransactionRequest struct {
	Transaction Transaction `json:"transaction"`
	AllowOrphan bool        `json:"allowOrphan"`
}

type SubmitTransactionResponse struct {
	TransactionID string `json:"transactionId"`
	Error         string `json:"error,omitempty"`
}

// NewSubmitRequest converts a signed transaction into its wire form.
func NewSubmitRequest(tx model.SignedTransaction) SubmitTransactionRequest {
	inputs := make([]TransactionInput, 0, len(tx.Inputs))
	for _, in := range tx.Inputs {
		inputs = append(inputs, TransactionInput{
			PreviousOutpoint: Outpoint{TransactionID: in.Previous.TransactionID, Index: in.Previous.Index},
			SignatureScript:  hex.EncodeToString(in.SignatureScript),
			Sequence:         in.Sequence,
			SigOpCount:       in.SigOpCount,
		})
	}
	outputs := make([]TransactionOutput, 0, len(tx.Outputs))
	for _, out := range tx.Outputs {
		outputs = append(outputs, TransactionOutput{
			Amount: out.Amount,
			ScriptPublicKey: ScriptPublicKey{
				Version: out.Script.Version,
				Script:  hex.EncodeToString(out.Script.Bytes),
			},
		})
	}
	return SubmitTransactionRequest{
		Transaction: Transaction{
			Version:      tx.Version,
			Inputs:       inputs,
			Outputs:      outputs,
			LockTime:     tx.LockTime,
			SubnetworkID: nativeSubnetworkID,
		},
		AllowOrphan: false,
	}
}
