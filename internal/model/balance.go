package model

// BalanceSourceError tags balances that could not be fetched from any endpoint.
const BalanceSourceError = "error"

// Balance is an address balance in base units.
type Balance struct {
	Address   string
	Network   Network
	Available uint64
	Pending   uint64
	Total     uint64
	Source    string
	Error     string
}

// NewBalance builds a balance and derives the total.
func NewBalance(address string, network Network, available, pending uint64, source string) Balance {
	return Balance{
		Address:   address,
		Network:   network,
		Available: available,
		Pending:   pending,
		Total:     available + pending,
		Source:    source,
	}
}

// ErrorBalance is the zero balance returned when reconciliation failed.
func ErrorBalance(address string, network Network, err error) Balance {
	b := Balance{Address: address, Network: network, Source: BalanceSourceError}
	if err != nil {
		b.Error = err.Error()
	}
	return b
}

// Failed reports whether the balance carries an error instead of figures.
func (b Balance) Failed() bool {
	return b.Source == BalanceSourceError
}
