package rpc

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const defaultHandshakeTimeout = 10 * time.Second

// Dialer opens node connections.
type Dialer struct {
	dialer  websocket.Dialer
	scheme  string
	poll    time.Duration
	metrics Metrics
	logger  *zap.Logger
}

// NewDialer returns a dialer using plain ws:// unless secure is set.
func NewDialer(handshakeTimeout time.Duration, secure bool, metrics Metrics, logger *zap.Logger) *Dialer {
	if handshakeTimeout <= 0 {
		handshakeTimeout = defaultHandshakeTimeout
	}
	scheme := "ws"
	if secure {
		scheme = "wss"
	}
	return &Dialer{
		dialer: websocket.Dialer{
			HandshakeTimeout: handshakeTimeout,
			Proxy:            websocket.DefaultDialer.Proxy,
		},
		scheme:  scheme,
		poll:    defaultSyncPollInterval,
		metrics: metrics,
		logger:  logger.Named("rpc"),
	}
}

// WithSyncPollInterval sets how often Sync asks the node for its state.
func (d *Dialer) WithSyncPollInterval(interval time.Duration) *Dialer {
	if interval > 0 {
		d.poll = interval
	}
	return d
}

// Dial connects to host:port. The context bounds the whole handshake.
func (d *Dialer) Dial(ctx context.Context, host string, port int) (conn *Conn, err error) {
	started := time.Now()
	defer func() {
		d.metrics.Observe("connect", err, started)
	}()

	address := net.JoinHostPort(host, strconv.Itoa(port))
	u := url.URL{Scheme: d.scheme, Host: address}

	ws, resp, err := d.dialer.DialContext(ctx, u.String(), nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", u.String(), err)
	}

	return newConn(ws, address, d.poll, d.metrics, d.logger.With(zap.String("node", address))), nil
}
