package model

import (
	"net"
	"strconv"
)

type TransportKind string

const (
	TransportRPC  TransportKind = "rpc"
	TransportREST TransportKind = "rest"
)

type BalanceShape string

const (
	// BalanceShapeAuto detects the shape from the fields present in the body.
	BalanceShapeAuto BalanceShape = "auto"
	// BalanceShapeAggregate is a single {"balance": n} figure.
	BalanceShapeAggregate BalanceShape = "aggregate"
	// BalanceShapeSplit is an {"available": a, "pending": p} pair.
	BalanceShapeSplit BalanceShape = "split"
)

// Endpoint is a single remote the engine may talk to. Values are immutable
// once the registry hands them out.
type Endpoint struct {
	Name         string
	Kind         TransportKind
	Host         string
	Port         int
	BaseURL      string
	Priority     int
	BalanceShape BalanceShape
}

// Address returns host:port for RPC endpoints and the base URL for REST ones.
func (e Endpoint) Address() string {
	if e.Kind == TransportREST {
		return e.BaseURL
	}
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

func (e Endpoint) String() string {
	if e.Name != "" {
		return e.Name
	}
	return string(e.Kind) + "://" + e.Address()
}
