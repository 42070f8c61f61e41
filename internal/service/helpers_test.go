package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/kaspa"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testAddress(network model.Network, fill byte) string {
	return kaspa.EncodeAddress(network.AddressPrefix(), kaspa.VersionPubKey, bytes.Repeat([]byte{fill}, 32))
}

func testUTXO(t *testing.T, address string, index uint32, amount uint64) model.UnspentOutput {
	t.Helper()
	addr, err := kaspa.DecodeAddress(address)
	require.NoError(t, err)
	script, err := kaspa.PayToAddressScript(addr)
	require.NoError(t, err)
	return model.UnspentOutput{
		TransactionID: strings.Repeat("ab", 32),
		Index:         index,
		Amount:        amount,
		LockingScript: script,
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func restEndpoint(name string) model.Endpoint {
	return model.Endpoint{
		Name:         name,
		Kind:         model.TransportREST,
		BaseURL:      "https://" + name + ".example",
		BalanceShape: model.BalanceShapeAuto,
	}
}

func rpcEndpoint(name string) model.Endpoint {
	return model.Endpoint{
		Name: name,
		Kind: model.TransportRPC,
		Host: name + ".example",
		Port: 16110,
	}
}
