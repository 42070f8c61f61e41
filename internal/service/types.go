package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/kaspa"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Registry interface {
		CandidatesFor(network model.Network, kind model.TransportKind) ([]model.Endpoint, error)
	}
	Gateway interface {
		Status(ctx context.Context, baseURL string) error
		UTXOs(ctx context.Context, baseURL, address string) ([]kaspa.UTXO, error)
		Balance(ctx context.Context, baseURL, address string) (*kaspa.BalanceResponse, error)
		SubmitTransaction(ctx context.Context, baseURL string, tx kaspa.SubmitTransactionRequest) (string, error)
	}
	NodeDialer interface {
		Dial(ctx context.Context, host string, port int) (NodeConn, error)
	}
	NodeConn interface {
		Sync(ctx context.Context) error
		UTXOsByAddress(ctx context.Context, address string) ([]kaspa.UTXO, error)
		SubmitTransaction(ctx context.Context, tx kaspa.SubmitTransactionRequest) (string, error)
		Close() error
	}
	Signer interface {
		Sign(ctx context.Context, tx model.UnsignedTransaction, material model.SigningMaterial) (*model.SignedTransaction, error)
	}
	AddressDeriver interface {
		DeriveAddress(material model.SigningMaterial, network model.Network) (string, error)
	}
	// Transport opens sessions against endpoints of one kind.
	Transport interface {
		Kind() model.TransportKind
		Open(ctx context.Context, endpoint model.Endpoint) (Session, error)
	}
	// Session is an open channel to one endpoint for one broadcast attempt.
	Session interface {
		Prepare(ctx context.Context) error
		FetchUTXOs(ctx context.Context, address string) ([]model.UnspentOutput, error)
		Submit(ctx context.Context, tx *model.SignedTransaction) (string, error)
		Close() error
	}
	TransactionBuilder interface {
		Fee(intent model.TransactionIntent) uint64
		Build(ctx context.Context, intent model.TransactionIntent, source string, utxos []model.UnspentOutput) (*model.SignedTransaction, error)
	}
	BroadcastMetrics interface {
		ObserveAttempt(kind model.TransportKind, err error, started time.Time)
		ObserveOutcome(network model.Network, outcome model.Outcome, started time.Time)
	}
	BalanceMetrics interface {
		Observe(network model.Network, source string, err error, started time.Time)
	}
	Journal interface {
		Record(ctx context.Context, result *model.BroadcastResult)
	}
)
