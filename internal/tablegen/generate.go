// Package tablegen builds equity tables by Monte Carlo simulation of every
// pairing of hand classes.
package tablegen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	rand "math/rand/v2"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	chpoker "github.com/chehsunliu/poker"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokertrainer/analysis"
	"github.com/lox/pokertrainer/equity"
	"github.com/lox/pokertrainer/internal/randutil"
	"github.com/lox/pokertrainer/internal/statistics"
	"github.com/lox/pokertrainer/poker"
)

// DefaultSamples is the number of deals simulated per pairing.
const DefaultSamples = 20000

// ErrNoClasses is returned when there is nothing to generate.
var ErrNoClasses = errors.New("no hand classes to generate")

// Options configures a generation run.
type Options struct {
	Samples int
	Seed    int64
	// Workers bounds concurrency, defaulting to the number of CPUs.
	Workers int
	// Classes restricts the run to pairings among these classes. All 169 are
	// used when empty.
	Classes          []analysis.Notation
	Clock            quartz.Clock
	Logger           *log.Logger
	ProgressInterval time.Duration
}

// Stats summarises a finished run.
type Stats struct {
	Pairs   int
	Samples int
	Elapsed time.Duration
	// MaxStdError is the largest standard error of any pairing, in percent,
	// and Noisiest is that pairing's key.
	MaxStdError float64
	Noisiest    string
}

// Pairing is one unordered matchup of hand classes.
type Pairing struct {
	A, B analysis.Notation
}

// Pairings lists every unordered pairing of classes, self pairings
// included, in grid order.
func Pairings(classes []analysis.Notation) []Pairing {
	pairs := make([]Pairing, 0, len(classes)*(len(classes)+1)/2)
	for i, a := range classes {
		for _, b := range classes[i:] {
			pairs = append(pairs, Pairing{A: a, B: b})
		}
	}
	return pairs
}

func (o *Options) applyDefaults() {
	if o.Samples <= 0 {
		o.Samples = DefaultSamples
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if len(o.Classes) == 0 {
		o.Classes = analysis.AllNotations()
	}
	if o.Clock == nil {
		o.Clock = quartz.NewReal()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// Generate simulates every pairing and returns the resulting table. Each
// pairing draws from its own RNG stream so the output depends only on the
// seed and sample count, not on the number of workers.
func Generate(ctx context.Context, opts Options) (*equity.Table, Stats, error) {
	opts.applyDefaults()
	pairs := Pairings(opts.Classes)
	if len(pairs) == 0 {
		return nil, Stats{}, ErrNoClasses
	}

	start := opts.Clock.Now()
	opts.Logger.Info("Generating equity table", "pairs", len(pairs), "samples", opts.Samples, "workers", opts.Workers)

	var done atomic.Int64
	stopProgress := reportProgress(ctx, opts, &done, len(pairs))
	defer stopProgress()

	results := make([][2]float64, len(pairs))
	samples := make([]statistics.Sample, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, p := range pairs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i], samples[i] = simulate(p.A, p.B, opts.Samples, randutil.Stream(opts.Seed, uint64(i)))
			done.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{Pairs: len(pairs), Samples: opts.Samples}
	raw := make(map[string][2]float64, len(pairs))
	for i, p := range pairs {
		key := equity.FormatKey(p.A, p.B)
		raw[key] = results[i]
		if se := samples[i].StdError() * 100; se > stats.MaxStdError {
			stats.MaxStdError, stats.Noisiest = se, key
		}
	}
	table, err := equity.NewTable(equity.Metadata{ID: uuid.NewString(), Samples: opts.Samples}, raw)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to build table: %w", err)
	}

	stats.Elapsed = opts.Clock.Since(start)
	opts.Logger.Info("Generated equity table", "id", table.Metadata().ID, "pairs", stats.Pairs, "elapsed", stats.Elapsed, "max_stderr", fmt.Sprintf("%.3f", stats.MaxStdError))
	return table, stats, nil
}

func reportProgress(ctx context.Context, opts Options, done *atomic.Int64, total int) func() {
	if opts.ProgressInterval <= 0 {
		return func() {}
	}
	ticker := opts.Clock.NewTicker(opts.ProgressInterval)
	stop := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case <-ticker.C:
				n := done.Load()
				opts.Logger.Info("Progress", "done", n, "total", total, "percent", fmt.Sprintf("%.1f", float64(n)*100/float64(total)))
			}
		}
	}()
	return func() {
		ticker.Stop()
		close(stop)
		<-finished
	}
}

// oracleCards maps dense card indices to the evaluator's card encoding.
var oracleCards = func() [52]chpoker.Card {
	var out [52]chpoker.Card
	for i := range out {
		out[i] = chpoker.NewCard(poker.CardFromIndex(i).Short())
	}
	return out
}()

// simulate deals samples random boards between random non-overlapping
// combinations of a and b. It returns each side's equity in percent and the
// per-deal share of a, scored 1 for a win and 0.5 for a tie.
func simulate(a, b analysis.Notation, samples int, rng *rand.Rand) ([2]float64, statistics.Sample) {
	if a == b {
		return [2]float64{50, 50}, statistics.Sample{}
	}
	combosA := a.Combinations()
	combosB := b.Combinations()

	var wins, ties int
	handA := make([]chpoker.Card, 7)
	handB := make([]chpoker.Card, 7)
	deck := poker.NewDeck(rng, 0)
	for range samples {
		ca := combosA[rng.IntN(len(combosA))]
		cb := combosB[rng.IntN(len(combosB))]
		for cb.Overlaps(ca) {
			cb = combosB[rng.IntN(len(combosB))]
		}
		deck.Reset(poker.NewCardSet(ca.First, ca.Second, cb.First, cb.Second))

		handA[0], handA[1] = oracleCards[ca.First.Index()], oracleCards[ca.Second.Index()]
		handB[0], handB[1] = oracleCards[cb.First.Index()], oracleCards[cb.Second.Index()]
		for k, card := range deck.Deal(5) {
			handA[k+2] = oracleCards[card.Index()]
			handB[k+2] = handA[k+2]
		}

		// lower scores are stronger
		ra, rb := chpoker.Evaluate(handA), chpoker.Evaluate(handB)
		switch {
		case ra < rb:
			wins++
		case ra == rb:
			ties++
		}
	}
	var share statistics.Sample
	share.AddN(1, wins)
	share.AddN(0.5, ties)
	share.AddN(0, samples-wins-ties)

	pct := round2((float64(wins) + float64(ties)/2) / float64(samples) * 100)
	return [2]float64{pct, round2(100 - pct)}, share
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
