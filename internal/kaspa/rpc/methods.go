package rpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/clock"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/kaspa"
	"go.uber.org/zap"
)

const (
	methodGetServerInfo       = "getServerInfo"
	methodGetUtxosByAddresses = "getUtxosByAddresses"
	methodSubmitTransaction   = "submitTransaction"

	defaultSyncPollInterval = time.Second
)

// ErrNoTransactionID is returned when the node accepts a submission without
// reporting its id.
var ErrNoTransactionID = errors.New("node returned no transaction id")

// ServerInfo is the subset of getServerInfo the broadcaster relies on.
type ServerInfo struct {
	ServerVersion   string `json:"serverVersion"`
	NetworkID       string `json:"networkId"`
	HasUtxoIndex    bool   `json:"hasUtxoIndex"`
	IsSynced        bool   `json:"isSynced"`
	VirtualDaaScore uint64 `json:"virtualDaaScore"`
}

type utxosByAddressesRequest struct {
	Addresses []string `json:"addresses"`
}

type utxosByAddressesResponse struct {
	Entries []kaspa.UTXO `json:"entries"`
}

// ServerInfo returns node version and sync state.
func (c *Conn) ServerInfo(ctx context.Context) (info *ServerInfo, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_server_info", err, started)
	}()

	info = &ServerInfo{}
	if err = c.call(ctx, methodGetServerInfo, struct{}{}, info); err != nil {
		return nil, err
	}
	return info, nil
}

// Sync polls the node until it reports itself synced or ctx ends.
func (c *Conn) Sync(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("sync", err, started)
	}()

	for {
		info, err := c.ServerInfo(ctx)
		if err != nil {
			return err
		}
		if info.IsSynced {
			return nil
		}
		c.logger.Debug("node not synced yet", zap.Uint64("virtual_daa_score", info.VirtualDaaScore))
		if err := clock.SleepWithContext(ctx, c.poll); err != nil {
			return err
		}
	}
}

// UTXOsByAddress returns the raw unspent outputs of address.
func (c *Conn) UTXOsByAddress(ctx context.Context, address string) (utxos []kaspa.UTXO, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_utxos_by_addresses", err, started)
	}()

	var resp utxosByAddressesResponse
	if err = c.call(ctx, methodGetUtxosByAddresses, utxosByAddressesRequest{Addresses: []string{address}}, &resp); err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

// SubmitTransaction hands a signed transaction to the node.
func (c *Conn) SubmitTransaction(ctx context.Context, tx kaspa.SubmitTransactionRequest) (id string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("submit_transaction", err, started)
	}()

	var resp kaspa.SubmitTransactionResponse
	if err = c.call(ctx, methodSubmitTransaction, tx, &resp); err != nil {
		return "", err
	}
	if resp.TransactionID == "" {
		return "", fmt.Errorf("%w: %w", kaspa.ErrMalformed, ErrNoTransactionID)
	}
	return resp.TransactionID, nil
}
