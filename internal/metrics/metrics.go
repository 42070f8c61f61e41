// Package metrics holds the Prometheus collectors of the broadcaster.
package metrics

const namespace = "utxo_broadcaster"

const unknown = "unknown"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(v string) string {
	if v == "" {
		return unknown
	}
	return v
}
