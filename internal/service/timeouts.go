package service

import (
	"time"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
)

// Timeouts bounds every remote call the engine makes.
type Timeouts struct {
	Connect time.Duration
	Sync    time.Duration
	Probe   time.Duration
	UTXOs   time.Duration
	Submit  time.Duration
	Balance time.Duration
}

// DefaultTimeouts returns the per call limits used when none are configured.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Connect: 10 * time.Second,
		Sync:    15 * time.Second,
		Probe:   8 * time.Second,
		UTXOs:   15 * time.Second,
		Submit:  30 * time.Second,
		Balance: 10 * time.Second,
	}
}

// withDefaults fills zero fields from DefaultTimeouts.
func (t Timeouts) withDefaults() Timeouts {
	d := DefaultTimeouts()
	if t.Connect <= 0 {
		t.Connect = d.Connect
	}
	if t.Sync <= 0 {
		t.Sync = d.Sync
	}
	if t.Probe <= 0 {
		t.Probe = d.Probe
	}
	if t.UTXOs <= 0 {
		t.UTXOs = d.UTXOs
	}
	if t.Submit <= 0 {
		t.Submit = d.Submit
	}
	if t.Balance <= 0 {
		t.Balance = d.Balance
	}
	return t
}

// attempt is the longest a single endpoint attempt of kind can take.
func (t Timeouts) attempt(kind model.TransportKind) time.Duration {
	switch kind {
	case model.TransportRPC:
		return t.Connect + t.Sync + t.UTXOs + t.Submit
	case model.TransportREST:
		return t.Probe + t.UTXOs + t.Submit
	default:
		return 0
	}
}
