package kaspa

import (
	"fmt"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
)

const (
	opData32        = 0x20
	opData33        = 0x21
	opData65        = 0x41
	opCheckSig      = 0xac
	opCheckSigECDSA = 0xab
	opBlake2b       = 0xaa
	opEqual         = 0x87
)

// SigHashAll commits to every input and output.
const SigHashAll byte = 0x01

// PayToAddressScript returns the locking script paying to addr.
func PayToAddressScript(addr Address) (model.Script, error) {
	var script []byte
	switch addr.Version {
	case VersionPubKey:
		script = make([]byte, 0, 34)
		script = append(script, opData32)
		script = append(script, addr.Payload...)
		script = append(script, opCheckSig)
	case VersionPubKeyECDSA:
		script = make([]byte, 0, 35)
		script = append(script, opData33)
		script = append(script, addr.Payload...)
		script = append(script, opCheckSigECDSA)
	case VersionScriptHash:
		script = make([]byte, 0, 35)
		script = append(script, opBlake2b, opData32)
		script = append(script, addr.Payload...)
		script = append(script, opEqual)
	default:
		return model.Script{}, fmt.Errorf("%w: unsupported version %d", ErrInvalidAddress, addr.Version)
	}
	return model.Script{Version: 0, Bytes: script}, nil
}

// SchnorrSignatureScript wraps a 64 byte signature into an unlocking script.
func SchnorrSignatureScript(signature []byte, hashType byte) []byte {
	script := make([]byte, 0, 2+len(signature))
	script = append(script, opData65)
	script = append(script, signature...)
	return append(script, hashType)
}
