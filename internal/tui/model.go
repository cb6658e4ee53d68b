package tui

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mosaicmc/chatrender/internal/component"
	"github.com/mosaicmc/chatrender/internal/obfuscate"
	"github.com/mosaicmc/chatrender/internal/render"
	"github.com/mosaicmc/chatrender/internal/term"
)

// loadedMsg carries the outcome of reading and rendering the message file.
type loadedMsg struct {
	node *render.Node
	err  error
}

// scrambleMsg triggers a repaint so obfuscated spans pick up fresh
// scrambled text.
type scrambleMsg struct{}

// Model is the Bubbletea state for the interactive message preview.
type Model struct {
	path     string
	renderer *render.Renderer
	painter  term.Painter
	interval time.Duration

	spin     spinner.Model
	node     *render.Node
	err      error
	loaded   bool
	quitting bool
}

// NewModel constructs a preview model for the message file at path.
func NewModel(path string, renderer *render.Renderer, interval time.Duration) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	scrambler := obfuscate.New(interval)
	return Model{
		path:     path,
		renderer: renderer,
		painter:  term.Painter{Scramble: scrambler.Scramble, ShowTooltips: true},
		interval: scrambler.Interval(),
		spin:     sp,
	}
}

// Init starts the spinner, kicks off the load, and schedules scrambling.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadCmd(), m.scrambleTick())
}

func (m Model) loadCmd() tea.Cmd {
	path := m.path
	renderer := m.renderer
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return loadedMsg{err: err}
		}
		raw, err := component.Decode(data)
		if err != nil {
			return loadedMsg{err: err}
		}
		node, err := renderer.RenderRaw(raw)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{node: node}
	}
}

func (m Model) scrambleTick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return scrambleMsg{} })
}

// Loaded reports whether the message has finished rendering.
func (m Model) Loaded() bool {
	return m.loaded
}

// Err returns the load or validation failure, if any.
func (m Model) Err() error {
	return m.err
}
