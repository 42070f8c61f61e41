package model

// Script is a locking script together with its script version.
type Script struct {
	Version uint16
	Bytes   []byte
}

// UnspentOutput is a spendable output normalised from any transport.
type UnspentOutput struct {
	TransactionID string
	Index         uint32
	Amount        uint64
	LockingScript Script
	BlockDAAScore uint64
	IsCoinbase    bool
}

// SumAmounts returns the total value of the outputs.
func SumAmounts(outputs []UnspentOutput) uint64 {
	var total uint64
	for _, o := range outputs {
		total += o.Amount
	}
	return total
}
