// Package transport exposes the engine over HTTP.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/service"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/session"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/signer"
	"github.com/goodnatureofminers/utxo-broadcaster/pkg/amount"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 16

var errBadRequest = errors.New("bad request")

// Handler serves balance, broadcast, endpoint and session routes.
type Handler struct {
	engine   Engine
	sessions Sessions
	network  model.Network
	logger   *zap.Logger
}

// NewHandler builds a handler. network is used when neither the request nor
// its session names one.
func NewHandler(engine Engine, sessions Sessions, network model.Network, logger *zap.Logger) *Handler {
	return &Handler{
		engine:   engine,
		sessions: sessions,
		network:  network,
		logger:   logger.Named("http"),
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/balance", h.GetBalance)
	mux.HandleFunc("POST /v1/broadcast", h.Broadcast)
	mux.HandleFunc("GET /v1/endpoints", h.GetEndpoints)
	mux.HandleFunc("GET /v1/sessions/{id}", h.GetSession)
	mux.HandleFunc("PUT /v1/sessions/{id}", h.PutSession)
	mux.HandleFunc("DELETE /v1/sessions/{id}", h.DeleteSession)
	mux.HandleFunc("GET /health", h.HealthCheck)
}

// GetBalance answers ?address=a&address=b[&network=n][&session=id]. Without
// an address the session address is used.
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	addresses := q["address"]

	var sess *session.Session
	if id := q.Get("session"); id != "" {
		s, err := h.sessions.Get(id)
		if err != nil {
			h.writeError(w, sessionStatus(err), err)
			return
		}
		sess = &s
	}
	if len(addresses) == 0 && sess != nil && sess.Address != "" {
		addresses = []string{sess.Address}
	}
	if len(addresses) == 0 {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: address parameter is required", errBadRequest))
		return
	}

	network, err := h.resolveNetwork(q.Get("network"), sess)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	balances := h.engine.RequestBalances(r.Context(), addresses, network)
	resp := balancesResponse{Balances: make([]balanceResponse, 0, len(balances))}
	for _, b := range balances {
		resp.Balances = append(resp.Balances, toBalanceResponse(b))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// Broadcast sends funds. Rejected intents map to 4xx, an exhausted broadcast
// to 502 with the failure report in the body.
func (h *Handler) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req broadcastRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	intent, err := h.intent(req)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.engine.RequestBroadcast(r.Context(), intent)
	if err != nil {
		h.writeError(w, statusOf(err), err)
		return
	}

	status := http.StatusOK
	if result.Outcome != model.OutcomeSuccess {
		status = http.StatusBadGateway
	}
	h.writeJSON(w, status, toBroadcastResponse(result))
}

func (h *Handler) intent(req broadcastRequest) (model.TransactionIntent, error) {
	network, err := h.resolveNetwork(req.Network, nil)
	if err != nil {
		return model.TransactionIntent{}, err
	}
	material, err := signer.ParseMaterial(req.Secret)
	if err != nil {
		return model.TransactionIntent{}, fmt.Errorf("%w: %w", errBadRequest, err)
	}
	units, err := requestAmount(req)
	if err != nil {
		return model.TransactionIntent{}, fmt.Errorf("%w: amount: %w", errBadRequest, err)
	}
	return model.TransactionIntent{
		SourceAddress: req.SourceAddress,
		Material:      material,
		Destination:   req.Destination,
		Amount:        units,
		Fee:           req.Fee,
		Network:       network,
	}, nil
}

// requestAmount reads amount in whole coins or, failing that, amount_units
// in base units. Exactly one of them must be set.
func requestAmount(req broadcastRequest) (uint64, error) {
	switch {
	case req.Amount != "" && req.AmountUnits != "":
		return 0, errors.New("set either amount or amount_units")
	case req.AmountUnits != "":
		return amount.ParseUnits(req.AmountUnits)
	default:
		return amount.Parse(req.Amount)
	}
}

func (h *Handler) GetEndpoints(w http.ResponseWriter, r *http.Request) {
	network, err := h.resolveNetwork(r.URL.Query().Get("network"), nil)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	endpoints, err := h.engine.Endpoints(network)
	if err != nil {
		h.writeError(w, http.StatusNotFound, err)
		return
	}

	resp := endpointsResponse{Network: string(network), Endpoints: make([]endpointResponse, 0, len(endpoints))}
	for _, e := range endpoints {
		resp.Endpoints = append(resp.Endpoints, toEndpointResponse(e))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(r.PathValue("id"))
	if err != nil {
		h.writeError(w, sessionStatus(err), err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSessionResponse(s))
}

func (h *Handler) PutSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	var network model.Network
	if req.Network != "" {
		n, err := model.ParseNetwork(req.Network)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err)
			return
		}
		network = n
	}

	s, err := h.sessions.Update(r.PathValue("id"), req.Address, network)
	if err != nil {
		h.writeError(w, sessionStatus(err), err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSessionResponse(s))
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Evict(r.PathValue("id")); err != nil {
		h.writeError(w, sessionStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) resolveNetwork(raw string, sess *session.Session) (model.Network, error) {
	switch {
	case raw != "":
		return model.ParseNetwork(raw)
	case sess != nil && sess.Network != "":
		return sess.Network, nil
	default:
		return h.network, nil
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	resp := errorResponse{Error: err.Error()}
	if kind := service.KindOf(err); kind != service.KindUnknown {
		resp.Kind = kind.String()
	}
	var aborted *service.AbortedError
	if errors.As(err, &aborted) {
		resp.OperationID = aborted.OperationID
		resp.TriedEndpoints = toAttemptResponses(aborted.Attempts)
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Int("status", status), zap.Error(err))
	}
	h.writeJSON(w, status, resp)
}

func statusOf(err error) int {
	switch service.KindOf(err) {
	case service.KindConfiguration, service.KindValidation:
		return http.StatusBadRequest
	case service.KindFunds, service.KindSigning:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func sessionStatus(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrEmptyID), errors.Is(err, session.ErrUnsupportedNetwork):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
