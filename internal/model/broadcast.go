package model

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Attempt records one endpoint that was tried and why it was abandoned.
type Attempt struct {
	Endpoint Endpoint
	Error    string
}

// Alternative is a way to send funds without this engine.
type Alternative struct {
	Name        string
	Method      string
	Description string
	Steps       []string
}

type Severity string

const (
	SeverityTemporary Severity = "temporary"
	SeverityNetwork   Severity = "network"
	SeverityGeneral   Severity = "general"
)

// Troubleshooting classifies the last failure for the user.
type Troubleshooting struct {
	Issue          string
	Severity       Severity
	Solutions      []string
	Recommendation string
}

// BroadcastSuccess describes an accepted submission. TriedEndpoints lists
// the candidates that failed before Endpoint accepted the transaction.
type BroadcastSuccess struct {
	TransactionID  string
	Endpoint       Endpoint
	Transport      TransportKind
	Fee            uint64
	TriedEndpoints []Attempt
}

// BroadcastFailure describes an exhausted broadcast.
type BroadcastFailure struct {
	Reason          string
	TriedEndpoints  []Attempt
	Alternatives    []Alternative
	Troubleshooting Troubleshooting
	SourceAddress   string
	Unsent          UnsentTransaction
	err             error
}

// NewBroadcastFailure attaches the terminal error to the failure report.
func NewBroadcastFailure(reason string, err error) *BroadcastFailure {
	return &BroadcastFailure{Reason: reason, err: err}
}

// Err returns the terminal error that ended the broadcast.
func (f *BroadcastFailure) Err() error {
	return f.err
}

// BroadcastResult is exactly one of Success or Failure.
type BroadcastResult struct {
	OperationID string
	Outcome     Outcome
	Network     Network
	Success     *BroadcastSuccess
	Failure     *BroadcastFailure
}

// Err returns nil on success and the failure error otherwise.
func (r *BroadcastResult) Err() error {
	if r == nil || r.Failure == nil {
		return nil
	}
	return r.Failure.Err()
}
