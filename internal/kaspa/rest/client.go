// Package rest is a client for the public REST gateways of the ledger.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/kaspa"
	"go.uber.org/ratelimit"
)

var (
	// ErrBadRequest defines the "bad request" error.
	ErrBadRequest = errors.New("bad request")
	// ErrNotFound defines the "not found" error.
	ErrNotFound = errors.New("not found")
	// ErrTooManyRequests defines the "too many requests" error.
	ErrTooManyRequests = errors.New("too many requests")
	// ErrInternalServerError defines the "internal server error" error.
	ErrInternalServerError = errors.New("internal server error")
	// ErrUnknownError defines the "unknown error" error.
	ErrUnknownError = errors.New("unknown error")
	// ErrRejected is returned when the gateway refuses a transaction.
	ErrRejected = errors.New("transaction rejected")
	// ErrMissingTransactionID is returned for a 2xx submit without an id.
	ErrMissingTransactionID = errors.New("response carries no transaction id")
)

const (
	statusPath   = "/info/status"
	utxosPath    = "/addresses/{address}/utxos"
	balancePath  = "/addresses/{address}/balance"
	transactions = "/transactions"
)

// Client talks to any gateway; the base URL is supplied per call so a single
// client and its rate limiter serve every configured gateway.
type Client struct {
	http    *resty.Client
	limiter ratelimit.Limiter
	metrics Metrics
}

// NewClient builds a client with an upper bound on every request and a
// client side rate ceiling. rps <= 0 disables the ceiling.
func NewClient(timeout time.Duration, rps int, metrics Metrics) *Client {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &Client{
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", "utxo-broadcaster"),
		limiter: limiter,
		metrics: metrics,
	}
}

// Status probes the gateway liveness endpoint.
func (c *Client) Status(ctx context.Context, baseURL string) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("status", baseURL, err, started)
	}()

	_, err = c.do(ctx, c.request(ctx), http.MethodGet, baseURL+statusPath)
	return err
}

// UTXOs returns the raw unspent outputs of address.
func (c *Client) UTXOs(ctx context.Context, baseURL, address string) (utxos []kaspa.UTXO, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("utxos", baseURL, err, started)
	}()

	body, err := c.do(ctx, c.request(ctx).SetPathParam("address", address), http.MethodGet, baseURL+utxosPath)
	if err != nil {
		return nil, err
	}
	if err = decode(body, &utxos); err != nil {
		return nil, err
	}
	return utxos, nil
}

// Balance returns the raw balance body of address.
func (c *Client) Balance(ctx context.Context, baseURL, address string) (resp *kaspa.BalanceResponse, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("balance", baseURL, err, started)
	}()

	body, err := c.do(ctx, c.request(ctx).SetPathParam("address", address), http.MethodGet, baseURL+balancePath)
	if err != nil {
		return nil, err
	}
	resp = &kaspa.BalanceResponse{}
	if err = decode(body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SubmitTransaction posts a signed transaction and returns its id.
func (c *Client) SubmitTransaction(ctx context.Context, baseURL string, tx kaspa.SubmitTransactionRequest) (id string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("submit_transaction", baseURL, err, started)
	}()

	req := c.request(ctx).
		SetQueryParam("replaceByFee", "false").
		SetHeader("Content-Type", "application/json").
		SetBody(tx)
	body, err := c.do(ctx, req, http.MethodPost, baseURL+transactions)
	if err != nil {
		return "", err
	}

	var resp kaspa.SubmitTransactionResponse
	if err = decode(body, &resp); err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", fmt.Errorf("%w: %s", ErrRejected, resp.Error)
	}
	if resp.TransactionID == "" {
		return "", fmt.Errorf("%w: %w", kaspa.ErrMalformed, ErrMissingTransactionID)
	}
	return resp.TransactionID, nil
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx)
}

func (c *Client) do(ctx context.Context, req *resty.Request, method, url string) ([]byte, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	if !resp.IsSuccess() {
		return nil, errorForStatus(resp)
	}
	return resp.Body(), nil
}

// wait takes a rate limiter slot unless ctx ends first. An abandoned Take
// completes in the background and still spends its slot.
func (c *Client) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	taken := make(chan struct{})
	go func() {
		c.limiter.Take()
		close(taken)
	}()
	select {
	case <-taken:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type errorResponse struct {
	Error  string          `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

func errorForStatus(resp *resty.Response) error {
	msg := resp.Status()
	var body errorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		switch {
		case body.Error != "":
			msg = body.Error
		case len(body.Detail) > 0:
			msg = strings.Trim(string(body.Detail), `"`)
		}
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, resp.Request.URL)
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, msg)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w (%d): %s", ErrInternalServerError, code, msg)
	default:
		return fmt.Errorf("%w (%d): %s", ErrUnknownError, code, msg)
	}
}

func decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", kaspa.ErrMalformed, err)
	}
	return nil
}
