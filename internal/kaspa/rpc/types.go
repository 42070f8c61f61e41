package rpc

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records node RPC call outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
