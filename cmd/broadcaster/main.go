// Command broadcaster checks balances and sends funds from the terminal.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/app"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type root struct {
	app.Config `group:"Engine Options"`

	ctx context.Context
}

// engine builds the logger and engine from the parsed options.
func (r *root) engine() (*app.Engine, *zap.Logger, error) {
	logger, err := app.NewLogger(r.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	e, err := app.NewEngine(r.Config, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}
	e.Start(r.ctx)
	return e, logger, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &root{ctx: ctx}
	parser := flags.NewParser(r, flags.Default)
	mustAdd(parser.AddCommand("balance", "Show address balances",
		"Fetches the balance of every address from the REST gateways of the network.", &balanceCommand{root: r}))
	mustAdd(parser.AddCommand("send", "Send funds",
		"Builds, signs and broadcasts a transaction, falling back across every known endpoint.", &sendCommand{root: r}))
	mustAdd(parser.AddCommand("endpoints", "List endpoints",
		"Lists the endpoints of the network in the order a broadcast tries them.", &endpointsCommand{root: r}))

	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		stop()
		os.Exit(1)
	}
}

func mustAdd(_ *flags.Command, err error) {
	if err != nil {
		panic("register command: " + err.Error())
	}
}
