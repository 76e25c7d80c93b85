// Package pathcost computes shortest weighted path costs between seed
// nodes of an interaction network, optionally over a random subsample of
// all seed pairs. It is used to characterize how tightly a set of prized
// proteins clusters within the network before or after a PCSF run.
package pathcost

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/graph/path"

	"github.com/forester-bio/forester/pkg/netgraph"
	"github.com/forester-bio/forester/pkg/table"
)

var (
	// ErrProportionRange is returned when the sampling proportion is not
	// in (0, 1].
	ErrProportionRange = errors.New("pathcost: sampled proportion must be in (0, 1]")

	// ErrUnknownSeed is returned when a seed node does not appear in the
	// edge list.
	ErrUnknownSeed = errors.New("pathcost: seed not present in network")
)

// Pair is an unordered seed pair, stored in the order the pair was drawn:
// From precedes To in the caller's seed list.
type Pair struct {
	From string
	To   string
}

// Options configures [Costs].
type Options struct {
	proportion float64
	seed       int64
	seeded     bool
	logger     *log.Logger
}

// Option is a functional option for [Costs].
type Option func(*Options)

// WithProportion sets the fraction of all C(n,2) seed pairs to sample.
// Must be in (0, 1]; the default is 1 (all pairs).
func WithProportion(p float64) Option {
	return func(o *Options) { o.proportion = p }
}

// WithSeed makes pair sampling deterministic. Without it each call seeds
// from the clock, and sampled runs are not reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithLogger enables progress logging for long samplings.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func defaultOptions() Options {
	return Options{
		proportion: 1.0,
		logger:     log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// Costs computes the shortest weighted path cost between sampled pairs of
// seed nodes over the network described by the edge-list table (first
// column head, second tail, third weight/cost).
//
// All C(n,2) unordered seed pairs are enumerated in seed order; when the
// proportion is below 1, floor(p x total) pairs are drawn without
// replacement in random order. Pairs with no connecting path are absent
// from the result rather than an error. Every other failure (a proportion
// outside (0, 1], a malformed edge list, an unknown seed) returns an error
// and no result.
func Costs(seeds []string, edgeList *table.Table, opts ...Option) (map[Pair]float64, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.proportion <= 0 || o.proportion > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrProportionRange, o.proportion)
	}

	g, err := netgraph.FromEdgeList(edgeList)
	if err != nil {
		return nil, err
	}
	for _, s := range seeds {
		if !g.HasNode(s) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSeed, s)
		}
	}

	pending := allPairs(seeds)
	samples := int(float64(len(pending)) * o.proportion)

	src := o.seed
	if !o.seeded {
		src = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(src))

	// Dijkstra trees are memoized per home node so full samplings cost
	// one traversal per seed instead of one per pair.
	trees := make(map[string]path.Shortest, len(seeds))
	costs := make(map[Pair]float64, samples)

	for i := 0; i < samples; i++ {
		j := rng.Intn(len(pending))
		p := pending[j]
		pending[j] = pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		// Seed membership was checked above, so NodeID cannot miss here.
		tree, ok := trees[p.From]
		if !ok {
			homeID, _ := g.NodeID(p.From)
			tree = path.DijkstraFrom(g.Weighted().Node(homeID), g.Weighted())
			trees[p.From] = tree
		}

		destID, _ := g.NodeID(p.To)
		if w := tree.WeightTo(destID); !math.IsInf(w, 1) {
			costs[p] = w
		}

		if (i+1)%1000 == 0 {
			o.logger.Debug("path cost progress", "done", i+1, "total", samples)
		}
	}

	return costs, nil
}

// allPairs enumerates the unordered seed pairs in seed order, (earlier,
// later) for every combination.
func allPairs(seeds []string) []Pair {
	var pairs []Pair
	for i := 0; i < len(seeds); i++ {
		for j := i + 1; j < len(seeds); j++ {
			pairs = append(pairs, Pair{From: seeds[i], To: seeds[j]})
		}
	}
	return pairs
}
