package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/pokertrainer/equity"
	"github.com/lox/pokertrainer/internal/config"
	"github.com/lox/pokertrainer/internal/logging"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string `help:"Path to trainer settings" default:"${config_file}"`
	LogLevel string `help:"Log level (debug, info, warn, error)" env:"POKERTRAINER_LOG_LEVEL"`
	NoColor  bool   `help:"Disable colored output"`
	Table    string `help:"Equity table file, JSON or msgpack (defaults to the embedded table)"`

	Out io.Writer `kong:"-"`
	Err io.Writer `kong:"-"`

	settings *config.Config
	logger   *log.Logger
}

type CLI struct {
	Globals

	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Expand    ExpandCmd        `cmd:"" help:"Expand hand classes into concrete combinations"`
	Filter    FilterCmd        `cmd:"" help:"Remove combinations blocked by known cards"`
	Equity    EquityCmd        `cmd:"" help:"Hero equity against an opponent range"`
	Resolve   ResolveCmd       `cmd:"" help:"Hero equity for a table scenario file"`
	Eval      EvalCmd          `cmd:"" help:"Evaluate five to seven cards"`
	Best      BestCmd          `cmd:"" help:"Best five-card hand from hole and board cards"`
	GenTable  GenTableCmd      `cmd:"gen-table" help:"Generate an equity table by simulation"`
	TableInfo TableInfoCmd     `cmd:"table-info" help:"Describe an equity table or look up a key"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cli CLI
	parser, err := newParser(ctx, &cli)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	kctx.FatalIfErrorf(cli.prepare())
	kctx.FatalIfErrorf(kctx.Run(&cli.Globals))
}

func newParser(ctx context.Context, cli *CLI, opts ...kong.Option) (*kong.Kong, error) {
	opts = append([]kong.Option{
		kong.Name("pokertrainer"),
		kong.Description("Hand range and equity toolkit for hold'em training"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	}, opts...)
	return kong.New(cli, opts...)
}

// prepare loads settings and builds the logger. Flags win over the file.
func (g *Globals) prepare() error {
	if g.Out == nil {
		g.Out = os.Stdout
	}
	if g.Err == nil {
		g.Err = os.Stderr
	}

	settings, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	if g.LogLevel != "" {
		settings.LogLevel = g.LogLevel
	}
	if g.Table != "" {
		settings.TablePath = g.Table
	}
	if g.NoColor || settings.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger, err := logging.New(g.Err, settings.LogLevel, settings.LogFormat)
	if err != nil {
		return err
	}
	g.settings = settings
	g.logger = logger.WithPrefix("pokertrainer")
	return nil
}

func (g *Globals) loadTable() (*equity.Table, error) {
	if g.settings.TablePath == "" {
		return equity.Default()
	}
	table, err := equity.LoadFile(g.settings.TablePath)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("Loaded equity table", "path", g.settings.TablePath, "entries", table.Len())
	return table, nil
}

func (g *Globals) calculator() (*equity.Calculator, error) {
	table, err := g.loadTable()
	if err != nil {
		return nil, fmt.Errorf("failed to load equity table: %w", err)
	}
	return equity.NewCalculator(table, equity.WithLogger(g.logger))
}
