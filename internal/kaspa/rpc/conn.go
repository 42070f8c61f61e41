// Package rpc is a JSON over WebSocket client for ledger nodes.
package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/kaspa"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ErrClosed is returned for calls on a closed connection.
var ErrClosed = errors.New("rpc connection closed")

// Error is an error reported by the node.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
	}
	return "rpc error: " + e.Message
}

type request struct {
	ID     uint64 `json:"id"`
	Method string `json:"method"`
	Params any    `json:"params"`
}

type response struct {
	ID     *uint64         `json:"id"`
	Params json.RawMessage `json:"params,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *Error          `json:"error,omitempty"`
}

func (r *response) payload() json.RawMessage {
	if len(r.Params) > 0 {
		return r.Params
	}
	return r.Result
}

// Conn is a single node connection. Calls may be issued concurrently;
// responses are matched by id.
type Conn struct {
	ws      *websocket.Conn
	address string
	metrics Metrics
	logger  *zap.Logger
	poll    time.Duration

	writeMu sync.Mutex
	nextID  atomic.Uint64

	mu      sync.Mutex
	pending map[uint64]chan *response
	closed  bool
	readErr error
	done    chan struct{}
}

func newConn(ws *websocket.Conn, address string, poll time.Duration, metrics Metrics, logger *zap.Logger) *Conn {
	c := &Conn{
		ws:      ws,
		address: address,
		metrics: metrics,
		logger:  logger,
		poll:    poll,
		pending: make(map[uint64]chan *response),
		done:    make(chan struct{}),
	}
	go c.readLoop()
	return c
}

// Address returns the host:port the connection was dialed to.
func (c *Conn) Address() string {
	return c.address
}

// Close terminates the connection and fails pending calls. It is safe to
// call more than once.
func (c *Conn) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.writeMu.Lock()
	_ = c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.writeMu.Unlock()

	err := c.ws.Close()
	<-c.done
	return err
}

func (c *Conn) readLoop() {
	defer close(c.done)

	for {
		var resp response
		if err := c.ws.ReadJSON(&resp); err != nil {
			c.failPending(err)
			return
		}
		if resp.ID == nil {
			continue
		}

		c.mu.Lock()
		ch, ok := c.pending[*resp.ID]
		delete(c.pending, *resp.ID)
		c.mu.Unlock()

		if ok {
			ch <- &resp
		} else {
			c.logger.Debug("dropping unsolicited rpc message", zap.Uint64("id", *resp.ID))
		}
	}
}

func (c *Conn) failPending(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		c.readErr = ErrClosed
	} else {
		c.readErr = fmt.Errorf("read from %s: %w", c.address, err)
	}
	c.closed = true
	for id, ch := range c.pending {
		close(ch)
		delete(c.pending, id)
	}
}

// call sends method with params and decodes the reply into out.
func (c *Conn) call(ctx context.Context, method string, params, out any) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	id := c.nextID.Add(1)
	ch := make(chan *response, 1)

	c.mu.Lock()
	if c.closed {
		readErr := c.readErr
		c.mu.Unlock()
		if readErr != nil {
			return readErr
		}
		return ErrClosed
	}
	c.pending[id] = ch
	c.mu.Unlock()

	if err := c.write(ctx, request{ID: id, Method: method, Params: params}); err != nil {
		c.forget(id)
		return fmt.Errorf("write %s: %w", method, err)
	}

	select {
	case <-ctx.Done():
		c.forget(id)
		return ctx.Err()
	case resp, ok := <-ch:
		if !ok {
			c.mu.Lock()
			readErr := c.readErr
			c.mu.Unlock()
			return readErr
		}
		if resp.Error != nil {
			return resp.Error
		}
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(resp.payload(), out); err != nil {
			return fmt.Errorf("%s: %w: %v", method, kaspa.ErrMalformed, err)
		}
		return nil
	}
}

func (c *Conn) write(ctx context.Context, req request) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if deadline, ok := ctx.Deadline(); ok {
		_ = c.ws.SetWriteDeadline(deadline)
		defer func() { _ = c.ws.SetWriteDeadline(time.Time{}) }()
	}
	return c.ws.WriteJSON(req)
}

func (c *Conn) forget(id uint64) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}
