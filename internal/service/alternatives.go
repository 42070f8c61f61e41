package service

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/kaspa/rest"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
)

// Alternatives lists ways to move the funds by hand once every endpoint
// failed.
func Alternatives(network model.Network) []model.Alternative {
	return []model.Alternative{
		{
			Name:        "kasware",
			Method:      "browser extension",
			Description: "Kasware wallet extension, the quickest manual route",
			Steps: []string{
				"Install Kasware from the Chrome Web Store",
				"Import the private key of the source address",
				fmt.Sprintf("Select the %s network", network.AddressPrefix()),
				"Send the transaction",
			},
		},
		{
			Name:        "kdx",
			Method:      "desktop application",
			Description: "KDX desktop wallet",
			Steps: []string{
				"Download KDX from kaspa.org",
				fmt.Sprintf("Configure the %s network", network.AddressPrefix()),
				"Import the private key",
				"Send the transaction",
			},
		},
		{
			Name:        "api_direct",
			Method:      "REST API",
			Description: "Submit a fully built transaction to POST /transactions of any gateway",
			Steps: []string{
				"Build and sign the transaction offline",
				"POST it to /transactions with allowOrphan set to false",
			},
		},
	}
}

// Troubleshoot classifies the error that ended a broadcast.
func Troubleshoot(err error) model.Troubleshooting {
	switch {
	case errors.Is(err, rest.ErrInternalServerError):
		return model.Troubleshooting{
			Issue:    "Kaspa gateways are temporarily unavailable",
			Severity: model.SeverityTemporary,
			Solutions: []string{
				"The gateways are likely under maintenance",
				"Retry in 5 to 10 minutes",
				"Use Kasware or KDX in the meantime",
				"Check https://kaspa.org for announcements",
			},
			Recommendation: "Use one of the alternative wallets until the gateways recover",
		}
	case isNetworkError(err):
		return model.Troubleshooting{
			Issue:    "Slow or broken network connection",
			Severity: model.SeverityNetwork,
			Solutions: []string{
				"Check the internet connection",
				"Retry in a few moments",
				"Use a VPN if the endpoints are blocked",
			},
			Recommendation: "Temporary problem, retry",
		}
	default:
		return model.Troubleshooting{
			Issue:    "Technical error",
			Severity: model.SeverityGeneral,
			Solutions: []string{
				"Retry the operation",
				"Use one of the recommended wallets",
				"Contact support if it persists",
			},
			Recommendation: "Use Kasware for a more reliable transfer",
		}
	}
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
