// Package app assembles the engine from flags.
package app

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/registry"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/service"
	"github.com/goodnatureofminers/utxo-broadcaster/pkg/batcher"
)

// Config is shared by every binary; embed it with a go-flags group tag.
type Config struct {
	Network       string   `long:"network" env:"BROADCASTER_NETWORK" default:"mainnet" description:"default network (mainnet, testnet, devnet, simnet)"`
	RPCEndpoints  []string `long:"rpc-endpoint" env:"BROADCASTER_RPC_ENDPOINTS" env-delim:"," description:"host:port of a wRPC node for the default network, repeatable, replaces the built-in list"`
	RESTEndpoints []string `long:"rest-endpoint" env:"BROADCASTER_REST_ENDPOINTS" env-delim:"," description:"base URL of a REST gateway for the default network, repeatable, replaces the built-in list"`
	RPCSecure     bool     `long:"rpc-secure" env:"BROADCASTER_RPC_SECURE" description:"dial nodes over wss"`

	ConnectTimeout time.Duration `long:"connect-timeout" env:"BROADCASTER_CONNECT_TIMEOUT" default:"10s" description:"node connect timeout"`
	SyncTimeout    time.Duration `long:"sync-timeout" env:"BROADCASTER_SYNC_TIMEOUT" default:"15s" description:"node sync wait"`
	ProbeTimeout   time.Duration `long:"probe-timeout" env:"BROADCASTER_PROBE_TIMEOUT" default:"8s" description:"REST gateway probe timeout"`
	UTXOsTimeout   time.Duration `long:"utxos-timeout" env:"BROADCASTER_UTXOS_TIMEOUT" default:"15s" description:"UTXO lookup timeout"`
	SubmitTimeout  time.Duration `long:"submit-timeout" env:"BROADCASTER_SUBMIT_TIMEOUT" default:"30s" description:"submission timeout"`
	BalanceTimeout time.Duration `long:"balance-timeout" env:"BROADCASTER_BALANCE_TIMEOUT" default:"10s" description:"balance lookup timeout"`

	Fee     uint64 `long:"fee" env:"BROADCASTER_FEE" default:"10000" description:"default fee in base units"`
	RESTRPS int    `long:"rest-rps" env:"BROADCASTER_REST_RPS" default:"10" description:"client side request ceiling towards REST gateways, 0 disables it"`

	ClickhouseDSN        string        `long:"clickhouse-dsn" env:"BROADCASTER_CLICKHOUSE_DSN" description:"ClickHouse DSN of the broadcast journal, empty disables it"`
	JournalFlushSize     int           `long:"journal-flush-size" env:"BROADCASTER_JOURNAL_FLUSH_SIZE" default:"100" description:"journal rows per insert"`
	JournalFlushInterval time.Duration `long:"journal-flush-interval" env:"BROADCASTER_JOURNAL_FLUSH_INTERVAL" default:"1s" description:"journal flush interval"`
	JournalRPS           int           `long:"journal-rps" env:"BROADCASTER_JOURNAL_RPS" default:"10" description:"journal inserts per second"`

	LogLevel string `long:"log-level" env:"BROADCASTER_LOG_LEVEL" default:"info" description:"debug, info, warn or error"`
}

// DefaultNetwork parses the configured network.
func (c Config) DefaultNetwork() (model.Network, error) {
	n, err := model.ParseNetwork(c.Network)
	if err != nil {
		return "", fmt.Errorf("network: %w", err)
	}
	return n, nil
}

func (c Config) timeouts() service.Timeouts {
	return service.Timeouts{
		Connect: c.ConnectTimeout,
		Sync:    c.SyncTimeout,
		Probe:   c.ProbeTimeout,
		UTXOs:   c.UTXOsTimeout,
		Submit:  c.SubmitTimeout,
		Balance: c.BalanceTimeout,
	}
}

func (c Config) journal() batcher.Config {
	return batcher.Config{
		FlushSize:     c.JournalFlushSize,
		FlushInterval: c.JournalFlushInterval,
		RPS:           c.JournalRPS,
	}
}

// registry applies the endpoint overrides on top of the built-in list.
func (c Config) registry(network model.Network) (*registry.Registry, error) {
	reg := registry.Default()
	if len(c.RPCEndpoints) > 0 {
		endpoints, err := registry.ParseRPCEndpoints(c.RPCEndpoints)
		if err != nil {
			return nil, fmt.Errorf("rpc endpoints: %w", err)
		}
		reg.Override(network, model.TransportRPC, endpoints)
	}
	if len(c.RESTEndpoints) > 0 {
		endpoints, err := registry.ParseRESTEndpoints(c.RESTEndpoints)
		if err != nil {
			return nil, fmt.Errorf("rest endpoints: %w", err)
		}
		reg.Override(network, model.TransportREST, endpoints)
	}
	return reg, nil
}

// responseSlack covers writing the result once a broadcast has used its
// whole budget.
const responseSlack = 30 * time.Second

// ResponseTimeout returns configured, raised to budget plus a margin when it
// would cut a broadcast short.
func ResponseTimeout(configured, budget time.Duration) time.Duration {
	if floor := budget + responseSlack; configured < floor {
		return floor
	}
	return configured
}
