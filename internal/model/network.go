package model

import (
	"fmt"
	"strings"
)

type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Devnet  Network = "devnet"
	Simnet  Network = "simnet"
)

// Networks lists every network the engine knows about.
var Networks = []Network{Mainnet, Testnet, Devnet, Simnet}

// ParseNetwork accepts the canonical names as well as the short and
// address-prefix aliases (main, kaspa, test, kaspatest, ...).
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mainnet", "main", "kaspa":
		return Mainnet, nil
	case "testnet", "test", "kaspatest":
		return Testnet, nil
	case "devnet", "dev", "kaspadev":
		return Devnet, nil
	case "simnet", "sim", "kaspasim":
		return Simnet, nil
	default:
		return "", fmt.Errorf("unknown network %q", s)
	}
}

// Valid reports whether n is one of the supported networks.
func (n Network) Valid() bool {
	switch n {
	case Mainnet, Testnet, Devnet, Simnet:
		return true
	default:
		return false
	}
}

// AddressPrefix returns the human readable address prefix of the network.
func (n Network) AddressPrefix() string {
	switch n {
	case Mainnet:
		return "kaspa"
	case Testnet:
		return "kaspatest"
	case Devnet:
		return "kaspadev"
	case Simnet:
		return "kaspasim"
	default:
		return ""
	}
}

// Currency returns the ticker shown next to formatted amounts.
func (n Network) Currency() string {
	if n == Testnet {
		return "TKAS"
	}
	return "KAS"
}

// NetworkByPrefix maps an address prefix back to its network.
func NetworkByPrefix(prefix string) (Network, bool) {
	for _, n := range Networks {
		if n.AddressPrefix() == prefix {
			return n, true
		}
	}
	return "", false
}
