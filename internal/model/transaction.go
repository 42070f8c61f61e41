package model

// TransactionIntent is what a caller wants sent. It holds the signing
// material only for the duration of a single broadcast request.
type TransactionIntent struct {
	SourceAddress string
	Material      SigningMaterial
	Destination   string
	Amount        uint64
	Fee           uint64
	Network       Network
}

// UnsentTransaction carries the public parameters of an intent so callers
// can retry elsewhere. It never includes signing material.
type UnsentTransaction struct {
	SourceAddress string
	Destination   string
	Amount        uint64
	Fee           uint64
	Network       Network
}

// Unsent strips the secret part of the intent.
func (i TransactionIntent) Unsent(source string) UnsentTransaction {
	return UnsentTransaction{
		SourceAddress: source,
		Destination:   i.Destination,
		Amount:        i.Amount,
		Fee:           i.Fee,
		Network:       i.Network,
	}
}

// TransactionOutput pays Amount to Address through Script.
type TransactionOutput struct {
	Address string
	Amount  uint64
	Script  Script
}

// UnsignedTransaction is the skeleton handed to a signer.
type UnsignedTransaction struct {
	Version  uint16
	Inputs   []UnspentOutput
	Outputs  []TransactionOutput
	LockTime uint64
	Fee      uint64
}

// SignedInput spends Previous with the given signature script.
type SignedInput struct {
	Previous        UnspentOutput
	SignatureScript []byte
	Sequence        uint64
	SigOpCount      uint8
}

// SignedTransaction is ready for submission. It is not modified after signing.
type SignedTransaction struct {
	Version  uint16
	Inputs   []SignedInput
	Outputs  []TransactionOutput
	LockTime uint64
	Fee      uint64
}

// InputTotal sums the values spent by the transaction.
func (t SignedTransaction) InputTotal() uint64 {
	var total uint64
	for _, in := range t.Inputs {
		total += in.Previous.Amount
	}
	return total
}

// OutputTotal sums the values created by the transaction.
func (t SignedTransaction) OutputTotal() uint64 {
	var total uint64
	for _, out := range t.Outputs {
		total += out.Amount
	}
	return total
}
