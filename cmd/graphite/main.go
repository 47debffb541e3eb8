// Command graphite opens an interactive desk with a pencil and a sheet of
// paper.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/graphite"
	"github.com/iw2rmb/graphite/desk"
	"github.com/iw2rmb/graphite/internal/config"
)

type model struct {
	desk desk.Model
}

func (m model) Init() tea.Cmd { return m.desk.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.desk, cmd = m.desk.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.desk.View() }

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("graphite", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a TOML config file")
	showVersion := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *showVersion {
		fmt.Println(graphite.Banner())
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	d := desk.New(newDeskConfig(cfg, logger))
	logger.Info("desk opened",
		slog.String("version", graphite.Version()),
		slog.String("paper", d.Paper().ID().String()),
	)

	p := tea.NewProgram(model{desk: d}, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", slog.Any("err", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newDeskConfig(cfg config.Config, logger *slog.Logger) desk.Config {
	return desk.Config{
		Pencil: desk.PencilConfig{
			PointDurability:  cfg.Pencil.PointDurability,
			Length:           cfg.Pencil.Length,
			EraserDurability: cfg.Pencil.EraserDurability,
		},
		Text:     cfg.Desk.Text,
		ShowHelp: cfg.Desk.ShowHelp,
		Style:    desk.DefaultStyle(),
		KeyMap:   desk.DefaultKeyMap(),
		OnChange: func(ev desk.ChangeEvent) {
			logger.Debug("paper changed",
				slog.String("op", ev.Command.Op.String()),
				slog.Uint64("version", ev.Version),
				slog.Int("point", ev.Stats.PointDurability),
				slog.Int("length", ev.Stats.Length),
				slog.Int("eraser", ev.Stats.EraserDurability),
			)
		},
		Logger: logger,
	}
}

// newLogger writes to the configured file. The terminal belongs to the
// desk, so without a file nothing is logged.
func newLogger(cfg config.Log) (*slog.Logger, func(), error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(h), func() { _ = f.Close() }, nil
}
