package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/app"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/service"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/signer"
	"github.com/goodnatureofminers/utxo-broadcaster/pkg/amount"
	"go.uber.org/zap"
)

var (
	errBalanceFailed   = errors.New("some balances could not be fetched")
	errBroadcastFailed = errors.New("broadcast failed")

	bold    = color.New(color.Bold)
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
	muted   = color.New(color.FgHiBlack)
)

type balanceCommand struct {
	root *root

	Args struct {
		Addresses []string `positional-arg-name:"address" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

func (c *balanceCommand) Execute(_ []string) error {
	engine, logger, err := c.root.engine()
	if err != nil {
		return err
	}
	defer closeEngine(engine, logger)

	network := engine.Network()

	failed := false
	for _, b := range engine.RequestBalances(c.root.ctx, c.Args.Addresses, network) {
		if b.Failed() {
			failed = true
			_, _ = failure.Printf("✗ %s: %s\n", b.Address, b.Error)
			continue
		}
		currency := network.Currency()
		_, _ = bold.Printf("%s\n", b.Address)
		fmt.Printf("  available %s\n", amount.FormatWithCurrency(b.Available, currency))
		fmt.Printf("  pending   %s\n", amount.FormatWithCurrency(b.Pending, currency))
		_, _ = success.Printf("  total     %s\n", amount.FormatWithCurrency(b.Total, currency))
		_, _ = muted.Printf("  via %s\n", b.Source)
	}
	if failed {
		return errBalanceFailed
	}
	return nil
}

type sendCommand struct {
	root *root

	Secret string `long:"secret" env:"BROADCASTER_SECRET" required:"yes" description:"hex private key or mnemonic phrase"`
	Source string `long:"source" description:"expected source address, checked against the secret"`
	Fee    string `long:"fee" description:"fee in base units, defaults to the engine fee"`
	Units  bool   `long:"units" description:"amount is given in base units instead of whole coins"`
	Args   struct {
		Destination string `positional-arg-name:"destination"`
		Amount      string `positional-arg-name:"amount" description:"amount in whole coins, e.g. 1.5"`
	} `positional-args:"yes" required:"yes"`
}

func (c *sendCommand) Execute(_ []string) error {
	material, err := signer.ParseMaterial(c.Secret)
	if err != nil {
		return err
	}
	parse := amount.Parse
	if c.Units {
		parse = amount.ParseUnits
	}
	units, err := parse(c.Args.Amount)
	if err != nil {
		return err
	}
	var fee uint64
	if c.Fee != "" {
		if fee, err = amount.ParseUnits(c.Fee); err != nil {
			return fmt.Errorf("fee: %w", err)
		}
	}

	engine, logger, err := c.root.engine()
	if err != nil {
		return err
	}
	defer closeEngine(engine, logger)

	network := engine.Network()

	result, err := engine.RequestBroadcast(c.root.ctx, model.TransactionIntent{
		SourceAddress: c.Source,
		Material:      material,
		Destination:   c.Args.Destination,
		Amount:        units,
		Fee:           fee,
		Network:       network,
	})
	if err != nil {
		if attempts := service.AttemptsOf(err); len(attempts) > 0 {
			printAttempts(attempts)
		}
		return err
	}
	currency := network.Currency()

	if s := result.Success; s != nil {
		_, _ = success.Printf("✓ sent %s to %s\n", amount.FormatWithCurrency(units, currency), c.Args.Destination)
		fmt.Printf("  transaction %s\n", s.TransactionID)
		fmt.Printf("  fee         %s\n", amount.FormatWithCurrency(s.Fee, currency))
		fmt.Printf("  via         %s (%s)\n", s.Endpoint, s.Transport)
		printAttempts(s.TriedEndpoints)
		return nil
	}

	f := result.Failure
	_, _ = failure.Printf("✗ %s\n", f.Reason)
	printAttempts(f.TriedEndpoints)
	_, _ = bold.Printf("\n%s (%s)\n", f.Troubleshooting.Issue, f.Troubleshooting.Severity)
	for _, s := range f.Troubleshooting.Solutions {
		fmt.Printf("  - %s\n", s)
	}
	fmt.Printf("  %s\n", f.Troubleshooting.Recommendation)

	_, _ = bold.Println("\nSend it another way:")
	for _, a := range f.Alternatives {
		fmt.Printf("  %s (%s): %s\n", a.Name, a.Method, a.Description)
		for i, step := range a.Steps {
			_, _ = muted.Printf("    %d. %s\n", i+1, step)
		}
	}
	u := f.Unsent
	fmt.Printf("\n  from %s\n  to   %s\n  amount %s, fee %s\n",
		u.SourceAddress, u.Destination,
		amount.FormatWithCurrency(u.Amount, currency), amount.FormatWithCurrency(u.Fee, currency))
	return fmt.Errorf("%w: operation %s", errBroadcastFailed, result.OperationID)
}

type endpointsCommand struct {
	root *root
}

func (c *endpointsCommand) Execute(_ []string) error {
	engine, logger, err := c.root.engine()
	if err != nil {
		return err
	}
	defer closeEngine(engine, logger)

	network := engine.Network()
	endpoints, err := engine.Endpoints(network)
	if err != nil {
		return err
	}
	_, _ = bold.Printf("%s\n", network)
	for i, e := range endpoints {
		fmt.Printf("  %2d. %-5s %-32s %s\n", i+1, e.Kind, e.String(), e.Address())
	}
	return nil
}

func printAttempts(attempts []model.Attempt) {
	for _, a := range attempts {
		_, _ = muted.Printf("  tried %s (%s): %s\n", a.Endpoint, a.Endpoint.Kind, a.Error)
	}
}

func closeEngine(engine *app.Engine, logger *zap.Logger) {
	if err := engine.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	_ = logger.Sync()
}
