package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/kaspa"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"github.com/goodnatureofminers/utxo-broadcaster/pkg/safe"
	"go.uber.org/zap"
)

// DefaultFee is charged when the intent does not carry a fee.
const DefaultFee uint64 = 10_000

const transactionVersion uint16 = 0

// Builder turns an intent and the source's outputs into a signed transaction.
// It spends every output it is given and returns the remainder to the source.
type Builder struct {
	signer     Signer
	defaultFee uint64
	logger     *zap.Logger
}

// NewBuilder returns a builder that signs with signer. A zero fee selects
// DefaultFee.
func NewBuilder(signer Signer, defaultFee uint64, logger *zap.Logger) (*Builder, error) {
	if signer == nil {
		return nil, errors.New("signer is required")
	}
	if defaultFee == 0 {
		defaultFee = DefaultFee
	}
	return &Builder{
		signer:     signer,
		defaultFee: defaultFee,
		logger:     logger.Named("builder"),
	}, nil
}

// Fee returns the fee applied to intent.
func (b *Builder) Fee(intent model.TransactionIntent) uint64 {
	if intent.Fee > 0 {
		return intent.Fee
	}
	return b.defaultFee
}

func (b *Builder) Build(ctx context.Context, intent model.TransactionIntent, source string, utxos []model.UnspentOutput) (*model.SignedTransaction, error) {
	const op = "build transaction"

	if intent.Amount == 0 {
		return nil, newError(KindValidation, op, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount))
	}
	destination, err := kaspa.ValidateForNetwork(intent.Destination, intent.Network)
	if err != nil {
		return nil, validateAddress(op, intent.Destination, intent.Network, ErrInvalidDestination)
	}
	change, err := kaspa.ValidateForNetwork(source, intent.Network)
	if err != nil {
		return nil, newError(KindValidation, op, fmt.Errorf("%w: %v", ErrSourceMismatch, err))
	}
	if len(utxos) == 0 {
		return nil, newError(KindFunds, op, ErrNoSpendableOutputs)
	}

	fee := b.Fee(intent)
	available, err := safe.Sum(utxos, func(u model.UnspentOutput) uint64 { return u.Amount })
	if err != nil {
		return nil, newError(KindValidation, op, fmt.Errorf("%w: inputs: %v", ErrInvalidAmount, err))
	}
	required, err := safe.Add(intent.Amount, fee)
	if err != nil {
		return nil, newError(KindValidation, op, fmt.Errorf("%w: amount plus fee: %v", ErrInvalidAmount, err))
	}
	rest, err := safe.Sub(available, required)
	if err != nil {
		return nil, newError(KindFunds, op, fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, available, required))
	}

	destinationScript, err := kaspa.PayToAddressScript(destination)
	if err != nil {
		return nil, newError(KindValidation, op, fmt.Errorf("%w: %v", ErrInvalidDestination, err))
	}
	outputs := []model.TransactionOutput{{
		Address: intent.Destination,
		Amount:  intent.Amount,
		Script:  destinationScript,
	}}
	if rest > 0 {
		changeScript, err := kaspa.PayToAddressScript(change)
		if err != nil {
			return nil, newError(KindValidation, op, fmt.Errorf("%w: %v", ErrSourceMismatch, err))
		}
		outputs = append(outputs, model.TransactionOutput{
			Address: source,
			Amount:  rest,
			Script:  changeScript,
		})
	}

	inputs := make([]model.UnspentOutput, len(utxos))
	copy(inputs, utxos)
	unsigned := model.UnsignedTransaction{
		Version: transactionVersion,
		Inputs:  inputs,
		Outputs: outputs,
		Fee:     fee,
	}

	signed, err := b.signer.Sign(ctx, unsigned, intent.Material)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, newError(KindSigning, op, fmt.Errorf("%w: %w", ErrSigningFailed, err))
	}
	if signed == nil || signed.InputTotal()-signed.OutputTotal() != fee || signed.InputTotal() < signed.OutputTotal() {
		return nil, newError(KindSigning, op, fmt.Errorf("%w: signed transaction does not balance to the fee", ErrSigningFailed))
	}

	b.logger.Debug("transaction built",
		zap.Int("inputs", len(signed.Inputs)),
		zap.Int("outputs", len(signed.Outputs)),
		zap.Uint64("amount", intent.Amount),
		zap.Uint64("fee", fee),
	)
	return signed, nil
}
