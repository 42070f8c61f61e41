package rest

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records gateway call outcomes.
	Metrics interface {
		Observe(operation, endpoint string, err error, started time.Time)
	}
)
