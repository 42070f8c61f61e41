package journal

import (
	"context"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertBroadcastAttempts(ctx context.Context, records []model.AttemptRecord) error
	}
)
