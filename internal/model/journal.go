package model

import (
	"time"

	"github.com/google/uuid"
)

// AttemptRecord is one journal row: a single endpoint attempt of a broadcast.
// A broadcast that never reached an endpoint is stored as one row with an
// empty Endpoint.
type AttemptRecord struct {
	OperationID   uuid.UUID
	Network       Network
	Position      uint16
	Endpoint      string
	Transport     TransportKind
	Outcome       Outcome
	Error         string
	TransactionID string
	CreatedAt     time.Time
}
