package transport

import (
	"context"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/session"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Engine interface {
		RequestBalances(ctx context.Context, addresses []string, network model.Network) []model.Balance
		RequestBroadcast(ctx context.Context, intent model.TransactionIntent) (*model.BroadcastResult, error)
		Endpoints(network model.Network) ([]model.Endpoint, error)
	}
	Sessions interface {
		Get(id string) (session.Session, error)
		Update(id, address string, network model.Network) (session.Session, error)
		Evict(id string) error
	}
)
