package transport

import (
	"time"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/session"
	"github.com/goodnatureofminers/utxo-broadcaster/pkg/amount"
)

// errorResponse carries the endpoint trail when a broadcast stopped at an
// endpoint.
type errorResponse struct {
	Error          string            `json:"error"`
	Kind           string            `json:"kind,omitempty"`
	OperationID    string            `json:"operation_id,omitempty"`
	TriedEndpoints []attemptResponse `json:"tried_endpoints,omitempty"`
}

type balanceResponse struct {
	Address   string `json:"address"`
	Network   string `json:"network"`
	Available uint64 `json:"available"`
	Pending   uint64 `json:"pending"`
	Total     uint64 `json:"total"`
	Formatted string `json:"formatted"`
	Source    string `json:"source"`
	Error     string `json:"error,omitempty"`
}

type balancesResponse struct {
	Balances []balanceResponse `json:"balances"`
}

func toBalanceResponse(b model.Balance) balanceResponse {
	return balanceResponse{
		Address:   b.Address,
		Network:   string(b.Network),
		Available: b.Available,
		Pending:   b.Pending,
		Total:     b.Total,
		Formatted: amount.FormatWithCurrency(b.Total, b.Network.Currency()),
		Source:    b.Source,
		Error:     b.Error,
	}
}

// broadcastRequest takes the amount in whole coins ("1.5") or in base units
// ("150000000"), and the optional fee in base units.
type broadcastRequest struct {
	Network       string `json:"network"`
	SourceAddress string `json:"source_address"`
	Secret        string `json:"secret"`
	Destination   string `json:"destination"`
	Amount        string `json:"amount"`
	AmountUnits   string `json:"amount_units"`
	Fee           uint64 `json:"fee"`
}

type endpointResponse struct {
	Name      string `json:"name"`
	Transport string `json:"transport"`
	Address   string `json:"address"`
	Priority  int    `json:"priority"`
}

func toEndpointResponse(e model.Endpoint) endpointResponse {
	return endpointResponse{
		Name:      e.String(),
		Transport: string(e.Kind),
		Address:   e.Address(),
		Priority:  e.Priority,
	}
}

type endpointsResponse struct {
	Network   string             `json:"network"`
	Endpoints []endpointResponse `json:"endpoints"`
}

type attemptResponse struct {
	Endpoint  string `json:"endpoint"`
	Transport string `json:"transport"`
	Error     string `json:"error"`
}

func toAttemptResponses(attempts []model.Attempt) []attemptResponse {
	out := make([]attemptResponse, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, attemptResponse{
			Endpoint:  a.Endpoint.String(),
			Transport: string(a.Endpoint.Kind),
			Error:     a.Error,
		})
	}
	return out
}

type alternativeResponse struct {
	Name        string   `json:"name"`
	Method      string   `json:"method"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

type troubleshootingResponse struct {
	Issue          string   `json:"issue"`
	Severity       string   `json:"severity"`
	Solutions      []string `json:"solutions"`
	Recommendation string   `json:"recommendation"`
}

type unsentResponse struct {
	SourceAddress string `json:"source_address"`
	Destination   string `json:"destination"`
	Amount        uint64 `json:"amount"`
	Fee           uint64 `json:"fee"`
	Network       string `json:"network"`
}

type successResponse struct {
	TransactionID  string            `json:"transaction_id"`
	Endpoint       string            `json:"endpoint"`
	Transport      string            `json:"transport"`
	Fee            uint64            `json:"fee"`
	TriedEndpoints []attemptResponse `json:"tried_endpoints"`
}

type failureResponse struct {
	Reason          string                  `json:"reason"`
	TriedEndpoints  []attemptResponse       `json:"tried_endpoints"`
	Alternatives    []alternativeResponse   `json:"alternatives"`
	Troubleshooting troubleshootingResponse `json:"troubleshooting"`
	SourceAddress   string                  `json:"source_address"`
	Unsent          unsentResponse          `json:"unsent"`
}

type broadcastResponse struct {
	OperationID string           `json:"operation_id"`
	Outcome     string           `json:"outcome"`
	Network     string           `json:"network"`
	Success     *successResponse `json:"success,omitempty"`
	Failure     *failureResponse `json:"failure,omitempty"`
}

func toBroadcastResponse(r *model.BroadcastResult) broadcastResponse {
	resp := broadcastResponse{
		OperationID: r.OperationID,
		Outcome:     string(r.Outcome),
		Network:     string(r.Network),
	}
	if s := r.Success; s != nil {
		resp.Success = &successResponse{
			TransactionID:  s.TransactionID,
			Endpoint:       s.Endpoint.String(),
			Transport:      string(s.Transport),
			Fee:            s.Fee,
			TriedEndpoints: toAttemptResponses(s.TriedEndpoints),
		}
	}
	if f := r.Failure; f != nil {
		alternatives := make([]alternativeResponse, 0, len(f.Alternatives))
		for _, a := range f.Alternatives {
			alternatives = append(alternatives, alternativeResponse(a))
		}
		resp.Failure = &failureResponse{
			Reason:         f.Reason,
			TriedEndpoints: toAttemptResponses(f.TriedEndpoints),
			Alternatives:   alternatives,
			Troubleshooting: troubleshootingResponse{
				Issue:          f.Troubleshooting.Issue,
				Severity:       string(f.Troubleshooting.Severity),
				Solutions:      f.Troubleshooting.Solutions,
				Recommendation: f.Troubleshooting.Recommendation,
			},
			SourceAddress: f.SourceAddress,
			Unsent: unsentResponse{
				SourceAddress: f.Unsent.SourceAddress,
				Destination:   f.Unsent.Destination,
				Amount:        f.Unsent.Amount,
				Fee:           f.Unsent.Fee,
				Network:       string(f.Unsent.Network),
			},
		}
	}
	return resp
}

type sessionRequest struct {
	Address string `json:"address"`
	Network string `json:"network"`
}

type sessionResponse struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	Network   string    `json:"network"`
	CreatedAt time.Time `json:"created_at"`
	LastSeen  time.Time `json:"last_seen"`
}

func toSessionResponse(s session.Session) sessionResponse {
	return sessionResponse{
		ID:        s.ID,
		Address:   s.Address,
		Network:   string(s.Network),
		CreatedAt: s.CreatedAt,
		LastSeen:  s.LastSeen,
	}
}
