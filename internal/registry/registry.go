// Package registry holds the static, per network list of endpoints the
// broadcaster may contact.
package registry

import (
	"errors"
	"fmt"
	"math/rand"
	"net"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"github.com/goodnatureofminers/utxo-broadcaster/pkg/safe"
)

// ErrUnsupportedNetwork is returned for networks without configured endpoints.
var ErrUnsupportedNetwork = errors.New("unsupported network")

// Registry is read-only after construction. Equal priority candidates are
// shuffled on every call.
type Registry struct {
	endpoints map[model.Network][]model.Endpoint

	mu      sync.Mutex
	shuffle func(n int, swap func(i, j int))
}

// New builds a registry from the given endpoint sets.
func New(endpoints map[model.Network][]model.Endpoint) *Registry {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	cp := make(map[model.Network][]model.Endpoint, len(endpoints))
	for network, list := range endpoints {
		cp[network] = append([]model.Endpoint(nil), list...)
	}
	return &Registry{endpoints: cp, shuffle: rnd.Shuffle}
}

// Default returns the registry of well known public endpoints.
func Default() *Registry {
	return New(DefaultEndpoints())
}

// WithShuffle replaces the tie-break permutation, mostly for tests.
func (r *Registry) WithShuffle(shuffle func(n int, swap func(i, j int))) *Registry {
	r.shuffle = shuffle
	return r
}

// Networks lists networks with at least one endpoint.
func (r *Registry) Networks() []model.Network {
	out := make([]model.Network, 0, len(r.endpoints))
	for _, n := range model.Networks {
		if len(r.endpoints[n]) > 0 {
			out = append(out, n)
		}
	}
	return out
}

// CandidatesFor returns the endpoints of kind for network ordered by
// priority, equal priorities in random order.
func (r *Registry) CandidatesFor(network model.Network, kind model.TransportKind) ([]model.Endpoint, error) {
	all, ok := r.endpoints[network]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedNetwork, network)
	}

	out := make([]model.Endpoint, 0, len(all))
	for _, e := range all {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })

	r.mu.Lock()
	defer r.mu.Unlock()
	for start := 0; start < len(out); {
		end := start + 1
		for end < len(out) && out[end].Priority == out[start].Priority {
			end++
		}
		if end-start > 1 {
			group := out[start:end]
			r.shuffle(len(group), func(i, j int) { group[i], group[j] = group[j], group[i] })
		}
		start = end
	}
	return out, nil
}

// Candidates returns RPC candidates followed by REST candidates.
func (r *Registry) Candidates(network model.Network) ([]model.Endpoint, error) {
	rpc, err := r.CandidatesFor(network, model.TransportRPC)
	if err != nil {
		return nil, err
	}
	rest, err := r.CandidatesFor(network, model.TransportREST)
	if err != nil {
		return nil, err
	}
	return append(rpc, rest...), nil
}

// Override replaces the endpoints of one transport kind for a network. It
// must be called before the registry is shared.
func (r *Registry) Override(network model.Network, kind model.TransportKind, endpoints []model.Endpoint) {
	kept := make([]model.Endpoint, 0, len(r.endpoints[network])+len(endpoints))
	for _, e := range r.endpoints[network] {
		if e.Kind != kind {
			kept = append(kept, e)
		}
	}
	r.endpoints[network] = append(kept, endpoints...)
}

// ParseRPCEndpoints parses host:port entries. Their list position is
// their priority.
func ParseRPCEndpoints(entries []string) ([]model.Endpoint, error) {
	out := make([]model.Endpoint, 0, len(entries))
	for i, entry := range entries {
		host, portStr, err := net.SplitHostPort(strings.TrimSpace(entry))
		if err != nil {
			return nil, fmt.Errorf("parse rpc endpoint %q: %w", entry, err)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("parse rpc endpoint port %q: %w", entry, err)
		}
		if _, err := safe.Uint16(port); err != nil || port == 0 {
			return nil, fmt.Errorf("rpc endpoint %q: invalid port", entry)
		}
		out = append(out, model.Endpoint{
			Name:     "rpc " + net.JoinHostPort(host, portStr),
			Kind:     model.TransportRPC,
			Host:     host,
			Port:     port,
			Priority: i,
		})
	}
	return out, nil
}

// ParseRESTEndpoints parses url[#shape] entries, shape being aggregate,
// split or auto.
func ParseRESTEndpoints(entries []string) ([]model.Endpoint, error) {
	out := make([]model.Endpoint, 0, len(entries))
	for i, entry := range entries {
		raw, shapeStr, _ := strings.Cut(strings.TrimSpace(entry), "#")
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse rest endpoint %q: %w", entry, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("rest endpoint %q: expected http(s) url", entry)
		}
		shape := model.BalanceShapeAuto
		switch model.BalanceShape(shapeStr) {
		case "", model.BalanceShapeAuto:
		case model.BalanceShapeAggregate, model.BalanceShapeSplit:
			shape = model.BalanceShape(shapeStr)
		default:
			return nil, fmt.Errorf("rest endpoint %q: unknown balance shape %q", entry, shapeStr)
		}
		out = append(out, model.Endpoint{
			Name:         "rest " + u.Host,
			Kind:         model.TransportREST,
			BaseURL:      strings.TrimRight(raw, "/"),
			Priority:     i,
			BalanceShape: shape,
		})
	}
	return out, nil
}
