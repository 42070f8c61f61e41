package registry

import "github.com/goodnatureofminers/utxo-broadcaster/internal/model"

const (
	MainnetRPCPort = 16110
	TestnetRPCPort = 16210
	DevnetRPCPort  = 16310
	SimnetRPCPort  = 16510

	localHost = "127.0.0.1"
)

func rpcEndpoint(name, host string, port, priority int) model.Endpoint {
	return model.Endpoint{Name: name, Kind: model.TransportRPC, Host: host, Port: port, Priority: priority}
}

// restEndpoint detects the balance shape per response, public gateways have
// answered in both.
func restEndpoint(name, baseURL string, priority int) model.Endpoint {
	return model.Endpoint{Name: name, Kind: model.TransportREST, BaseURL: baseURL, Priority: priority, BalanceShape: model.BalanceShapeAuto}
}

// DefaultEndpoints returns the local node, the public seeds and the public
// REST gateways of every network.
func DefaultEndpoints() map[model.Network][]model.Endpoint {
	return map[model.Network][]model.Endpoint{
		model.Mainnet: {
			rpcEndpoint("local node", localHost, MainnetRPCPort, 0),
			rpcEndpoint("seeder1.kaspad.net", "seeder1.kaspad.net", MainnetRPCPort, 1),
			rpcEndpoint("seeder2.kaspad.net", "seeder2.kaspad.net", MainnetRPCPort, 1),
			restEndpoint("api.kaspa.org", "https://api.kaspa.org", 0),
			restEndpoint("kaspa-api.dexkaspa.com", "https://kaspa-api.dexkaspa.com", 1),
		},
		model.Testnet: {
			rpcEndpoint("local node", localHost, TestnetRPCPort, 0),
			rpcEndpoint("tn10-seeder.kaspad.net", "tn10-seeder.kaspad.net", TestnetRPCPort, 1),
			rpcEndpoint("tn10-1.kaspad.net", "tn10-1.kaspad.net", TestnetRPCPort, 1),
			rpcEndpoint("tn10-2.kaspad.net", "tn10-2.kaspad.net", TestnetRPCPort, 1),
			restEndpoint("api-tn10.kaspa.org", "https://api-tn10.kaspa.org", 0),
		},
		model.Devnet: {
			rpcEndpoint("local node", localHost, DevnetRPCPort, 0),
			restEndpoint("api-dev.kaspa.org", "https://api-dev.kaspa.org", 0),
		},
		model.Simnet: {
			rpcEndpoint("local node", localHost, SimnetRPCPort, 0),
		},
	}
}
