package desk

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/graphite/paper"
	"github.com/iw2rmb/graphite/pencil"
)

// Model is a Bubble Tea component holding one paper and one pencil.
type Model struct {
	cfg Config
	log *slog.Logger

	paper  *paper.Paper
	pencil *pencil.Pencil

	viewport viewport.Model
	input    textinput.Model
	help     help.Model
	showHelp bool

	width, height int

	status    string
	statusErr bool
}

func New(cfg Config) Model {
	if isZeroKeyMap(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "write <text> | erase <text> | edit <index> <text> | sharpen"
	in.Focus()

	m := Model{
		cfg:      cfg,
		log:      log,
		paper:    paper.New(paper.Options{Text: cfg.Text}),
		pencil:   pencil.New(cfg.Pencil.PointDurability, cfg.Pencil.Length, cfg.Pencil.EraserDurability, pencil.WithLogger(log)),
		viewport: viewport.New(0, 0),
		input:    in,
		help:     help.New(),
		showHelp: cfg.ShowHelp,
	}
	m.rebuildContent()
	return m
}

func (m Model) Paper() *paper.Paper { return m.paper }

func (m Model) Pencil() *pencil.Pencil { return m.pencil }

// Status returns the message shown after the last command and whether it
// reports an error.
func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.input.Width = max(m.width-lenPrompt(m.input)-1, 0)
	m.help.Width = m.width
	m.layout()
	return m
}

// Exec applies cmd to the paper and pencil. Only a failed edit returns an
// error; exhausted resources are reported through the status line instead.
func (m *Model) Exec(cmd Command) error {
	before := m.pencil.Stats()
	version := m.paper.Version()

	switch cmd.Op {
	case OpWrite:
		m.pencil.Write(cmd.Text, m.paper)
		m.setStatus(fmt.Sprintf("wrote %q", cmd.Text), false)
	case OpErase:
		m.pencil.Erase(cmd.Text, m.paper)
		if m.paper.Version() == version {
			m.setStatus(fmt.Sprintf("nothing erased for %q", cmd.Text), false)
		} else {
			m.setStatus(fmt.Sprintf("erased %q", cmd.Text), false)
		}
	case OpEdit:
		if err := m.pencil.Edit(cmd.Text, cmd.Index, m.paper); err != nil {
			m.setStatus(err.Error(), true)
			m.log.Debug("command failed", slog.String("op", cmd.Op.String()), slog.Any("err", err))
			return err
		}
		m.setStatus(fmt.Sprintf("edited %q at %d", cmd.Text, cmd.Index), false)
	case OpSharpen:
		m.pencil.Sharpen()
		if m.pencil.Stats() == before {
			m.setStatus("pencil is too short to sharpen", false)
		} else {
			m.setStatus("sharpened", false)
		}
	default:
		err := fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Op)
		m.setStatus(err.Error(), true)
		return err
	}

	m.log.Debug("command", slog.String("op", cmd.Op.String()), slog.Uint64("version", m.paper.Version()))
	if m.paper.Version() == version && m.pencil.Stats() == before {
		return nil
	}
	m.rebuildContent()
	m.viewport.GotoBottom()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ChangeEvent{
			Command: cmd,
			Version: m.paper.Version(),
			Text:    m.paper.Text(),
			Stats:   m.pencil.Stats(),
		})
	}
	return nil
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// layout sizes the viewport to whatever the chrome leaves over.
func (m *Model) layout() {
	chrome := 3 // title, status, prompt
	if m.showHelp {
		chrome++
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chrome, 0)
	m.rebuildContent()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderPaper())
}

func lenPrompt(in textinput.Model) int { return len(in.Prompt) }

func isZeroKeyMap(k KeyMap) bool {
	return len(k.Submit.Keys()) == 0 && len(k.Sharpen.Keys()) == 0 &&
		len(k.Help.Keys()) == 0 && len(k.Quit.Keys()) == 0
}
