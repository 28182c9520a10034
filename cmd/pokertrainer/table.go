package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/lox/pokertrainer/analysis"
	"github.com/lox/pokertrainer/equity"
	"github.com/lox/pokertrainer/internal/fileutil"
	"github.com/lox/pokertrainer/internal/tablegen"
)

// GenTableCmd generates an equity table file.
type GenTableCmd struct {
	Samples  int           `help:"Deals simulated per pairing (settings default when 0)"`
	Seed     int64         `help:"Random seed"`
	Workers  int           `help:"Concurrent workers (CPU count when 0)"`
	Output   string        `short:"o" help:"Output file, .json or .msgp"`
	Classes  string        `help:"Restrict generation to pairings within this range"`
	Progress time.Duration `help:"Progress log interval" default:"5s"`
}

func (cmd *GenTableCmd) Run(ctx context.Context, g *Globals) error {
	gen := g.settings.Generator
	opts := tablegen.Options{
		Samples:          firstNonZero(cmd.Samples, gen.Samples),
		Seed:             cmd.Seed,
		Workers:          firstNonZero(cmd.Workers, gen.Workers),
		Logger:           g.logger,
		ProgressInterval: cmd.Progress,
	}
	if opts.Seed == 0 {
		opts.Seed = gen.Seed
	}
	if cmd.Classes != "" {
		r, err := analysis.ParseRange(cmd.Classes)
		if err != nil {
			return err
		}
		opts.Classes = r.Notations()
	}
	output := cmd.Output
	if output == "" {
		output = gen.Output
	}

	table, stats, err := tablegen.Generate(ctx, opts)
	if err != nil {
		return err
	}
	format := equity.FormatForPath(output)
	err = fileutil.WriteAtomic(output, 0o644, func(w io.Writer) error {
		return table.Encode(w, format)
	})
	if err != nil {
		return err
	}

	header(g.Out, "Wrote %s", output)
	fmt.Fprintf(g.Out, "Pairs:   %d\n", stats.Pairs)
	fmt.Fprintf(g.Out, "Samples: %d per pairing\n", stats.Samples)
	fmt.Fprintf(g.Out, "Format:  %s\n", format)
	if stats.Noisiest != "" {
		fmt.Fprintf(g.Out, "Std err: %.3f%% max (%s)\n", stats.MaxStdError, stats.Noisiest)
	}
	fmt.Fprintf(g.Out, "Elapsed: %s\n", stats.Elapsed.Round(time.Millisecond))
	return nil
}

func firstNonZero(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

// TableInfoCmd describes the active equity table.
type TableInfoCmd struct {
	Keys []string `arg:"" optional:"" help:"Keys to look up, e.g. 'AKs vs QQ'"`
}

func (cmd *TableInfoCmd) Run(g *Globals) error {
	table, err := g.loadTable()
	if err != nil {
		return err
	}
	meta := table.Metadata()
	missing := table.Missing(analysis.AllNotations())

	header(g.Out, "Equity table")
	fmt.Fprintf(g.Out, "ID:      %s\n", meta.ID)
	fmt.Fprintf(g.Out, "Samples: %d\n", meta.Samples)
	fmt.Fprintf(g.Out, "Entries: %d\n", table.Len())
	fmt.Fprintf(g.Out, "Missing: %d pairings\n", len(missing))

	if len(cmd.Keys) == 0 {
		return nil
	}
	tw := newTable(g.Out)
	fmt.Fprintln(tw, "KEY\tA\tB")
	for _, key := range cmd.Keys {
		pct, ok := table.LookupKey(key)
		if !ok {
			fmt.Fprintf(tw, "%s\t-\t-\n", key)
			continue
		}
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\n", key, pct[0], pct[1])
	}
	return tw.Flush()
}
