package model

type MaterialKind string

const (
	MaterialPrivateKey MaterialKind = "private_key"
	MaterialMnemonic   MaterialKind = "mnemonic"
)

// SigningMaterial is a parsed secret: either a hex private key or a
// mnemonic phrase. Formatting it never reveals the secret.
type SigningMaterial struct {
	Kind   MaterialKind
	secret string
}

// NewSigningMaterial wraps an already validated secret.
func NewSigningMaterial(kind MaterialKind, secret string) SigningMaterial {
	return SigningMaterial{Kind: kind, secret: secret}
}

// Secret returns the raw secret for signers and derivers.
func (m SigningMaterial) Secret() string {
	return m.secret
}

// Empty reports whether no secret was provided.
func (m SigningMaterial) Empty() bool {
	return m.secret == ""
}

func (m SigningMaterial) String() string {
	if m.Empty() {
		return "<none>"
	}
	return string(m.Kind) + "(redacted)"
}

func (m SigningMaterial) GoString() string {
	return m.String()
}
