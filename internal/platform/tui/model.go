package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// footerLines is the number of rows below the playfield reserved for help.
const footerLines = 1

// Options configures a hosted game.
type Options struct {
	Config     config.BreakoutConfig
	Runtime    core.RuntimeConfig
	Difficulty string
	Store      *storage.Store       // nil disables run history
	Sound      breakout.SoundPlayer // nil is silent
	Logger     *log.Logger          // nil discards
	Clock      core.Clock           // nil uses the wall clock
	Screenshot string               // directory for ctrl+s dumps, empty disables
}

// messageBoard shows timed messages one after another. While a message is up
// the host stops ticking the simulation.
type messageBoard struct {
	clock   core.Clock
	text    string
	until   time.Time
	pending []boardMessage
}

type boardMessage struct {
	text string
	d    time.Duration
}

// ShowMessage implements breakout.Messenger. A message shown while another
// is up waits its turn and then runs for its own duration.
func (b *messageBoard) ShowMessage(text string, d time.Duration) {
	if b.Text() != "" {
		b.pending = append(b.pending, boardMessage{text: text, d: d})
		return
	}
	b.text = text
	b.until = b.clock.Now().Add(d)
}

// Text returns the message currently on screen, or "".
func (b *messageBoard) Text() string {
	now := b.clock.Now()
	for b.text != "" && !now.Before(b.until) {
		if len(b.pending) == 0 {
			b.text = ""
			break
		}
		next := b.pending[0]
		b.pending = b.pending[1:]
		b.text = next.text
		b.until = b.until.Add(next.d)
	}
	return b.text
}

// Clear drops the current message and everything waiting behind it.
func (b *messageBoard) Clear() {
	b.text = ""
	b.pending = nil
}

// holdTracker emulates key-up for terminals, which only report presses and
// auto-repeats. A key counts as held until it has gone release ticks without
// a repeat. Hold mode turns the release into a key-up; toggle mode only uses
// it to tell a new press from a repeat.
type holdTracker struct {
	release int
	left    map[core.Key]int
}

func newHoldTracker(release int) *holdTracker {
	return &holdTracker{release: max(1, release), left: make(map[core.Key]int)}
}

// Press records a press or repeat and reports whether the key was up before.
func (h *holdTracker) Press(k core.Key) bool {
	_, down := h.left[k]
	h.left[k] = h.release
	return !down
}

// Tick ages held keys and returns the ones that should now be released.
func (h *holdTracker) Tick() []core.Key {
	var released []core.Key
	for _, k := range []core.Key{core.KeyLeft, core.KeyRight} {
		n, down := h.left[k]
		if !down {
			continue
		}
		if n <= 1 {
			delete(h.left, k)
			released = append(released, k)
			continue
		}
		h.left[k] = n - 1
	}
	return released
}

// Reset forgets every held key.
func (h *holdTracker) Reset() {
	clear(h.left)
}

// runState tracks the run being played for persistence.
type runState struct {
	started time.Time
	saved   bool
	best    int
}

// Model is the Bubble Tea model hosting one breakout game.
type Model struct {
	opts     Options
	game     *breakout.Game
	screen   *core.Screen
	renderer *ScreenRenderer
	board    *messageBoard
	held     *holdTracker
	run      *runState
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	quitting bool
}

// NewModel creates a model sitting in the game menu.
func NewModel(opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = core.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Sound == nil {
		opts.Sound = breakout.Silent{}
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = opts.Config.Playfield.FrameRate
	}

	keys := DefaultKeyMap()
	m := Model{
		opts:   opts,
		screen: core.NewScreen(opts.Runtime.ScreenW, playHeight(opts.Runtime.ScreenH)),
		board:  &messageBoard{clock: opts.Clock},
		held:   newHoldTracker(opts.Config.Gameplay.HoldReleaseTicks),
		run:    &runState{},
		keys:   keys,
		mapper: NewKeyMapper(keys),
		help:   help.New(),
	}
	m.renderer = NewScreenRenderer(m.screen, opts.Config.Playfield.UnitsPerCell, 2*opts.Config.Ball.Radius)
	m.loadBest()
	m.newGame()
	return m
}

func playHeight(h int) int {
	return max(1, h-footerLines)
}

func (m *Model) newGame() {
	rt := m.opts.Runtime
	rt.ScreenH = playHeight(rt.ScreenH)
	m.game = breakout.New(m.opts.Config, rt,
		breakout.WithClock(m.opts.Clock),
		breakout.WithSound(m.opts.Sound),
		breakout.WithMessenger(m.board),
	)
	m.held.Reset()
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.mapper.MapAction(msg) {
	case core.ActionQuit:
		return m.quit()
	case core.ActionConfirm:
		m.game.Play()
		return m, nil
	case core.ActionRestart:
		if m.game.State().Terminal() {
			m.game.Restart()
			m.board.Clear()
			m.held.Reset()
			m.run.started = m.opts.Clock.Now()
			m.run.saved = false
			m.opts.Logger.Info("restart", "seed", m.game.Seed())
		}
		return m, nil
	}

	k := m.mapper.MapKey(msg)
	if k == core.KeyNone {
		return m, nil
	}
	switch m.game.State() {
	case breakout.StateLevelIntro, breakout.StatePlaying:
	default:
		return m, nil
	}
	// Auto-repeats of a key already down are dropped in both modes, so holding
	// a key in toggle mode flips the paddle once.
	if !m.held.Press(k) {
		return m, nil
	}
	m.game.HandleKey(core.Press(k))
	return m, nil
}

// quit leaves the program. A run in progress is recorded as abandoned; a
// quit from the menu goes through the game's own QUIT handling.
func (m Model) quit() (tea.Model, tea.Cmd) {
	switch m.game.State() {
	case breakout.StateMenu:
		m.game.Quit()
		m.logEvents()
	case breakout.StateLevelIntro, breakout.StatePlaying:
		m.saveRun(storage.OutcomeQuit)
	}
	m.quitting = true
	return m, tea.Quit
}

// handleMouse routes left clicks to the menu buttons.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.game.HandleClick(m.renderer.WorldPoint(msg.X, msg.Y))
	if m.game.QuitRequested() {
		m.logEvents()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The playfield is sized when a
// session is built, so it only follows the window while the menu is up.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width

	if m.game.State() == breakout.StateMenu {
		m.newGame()
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.opts.Runtime.TickRate)

	if m.board.Text() != "" {
		return m, next
	}

	released := m.held.Tick()
	if m.opts.Config.Gameplay.InputMode == config.InputHold {
		for _, k := range released {
			m.game.HandleKey(core.Release(k))
		}
	}

	if m.game.State() == breakout.StateLevelIntro {
		m.run.started = m.opts.Clock.Now()
		m.run.saved = false
	}

	m.game.Update()
	m.logEvents()

	switch m.game.State() {
	case breakout.StateWon:
		m.saveRun(storage.OutcomeWon)
	case breakout.StateGameOver:
		if !m.game.QuitRequested() {
			m.saveRun(storage.OutcomeGameOver)
		}
	}
	return m, next
}

func (m Model) logEvents() {
	logger := m.opts.Logger
	for _, ev := range m.game.Events() {
		switch ev.Kind {
		case breakout.EventPaddleHit:
			logger.Debug(ev.Kind.String(), "tick", ev.Tick)
		case breakout.EventBrickDestroyed:
			logger.Debug(ev.Kind.String(), "tick", ev.Tick, "edge", ev.Edge, "effect", ev.Effect, "score", ev.Score)
		case breakout.EventEffectOn, breakout.EventEffectOff:
			logger.Info(ev.Kind.String(), "tick", ev.Tick, "effect", ev.Effect)
		default:
			logger.Info(ev.Kind.String(), "tick", ev.Tick, "score", ev.Score, "lives", ev.Lives)
		}
	}
}

// saveRun records the current run once.
func (m Model) saveRun(outcome string) {
	if m.run.saved {
		return
	}
	m.run.saved = true
	if m.opts.Store == nil {
		return
	}

	now := m.opts.Clock.Now()
	stats := m.game.Session().Stats()
	id, err := m.opts.Store.SaveRun(storage.Run{
		Seed:             m.game.Seed(),
		Difficulty:       m.opts.Difficulty,
		Score:            m.game.Score(),
		Lives:            m.game.Lives(),
		BricksDestroyed:  stats.BricksDestroyed,
		EffectsTriggered: stats.EffectsTriggered,
		Outcome:          outcome,
		Duration:         now.Sub(m.run.started),
		StartedAt:        m.run.started,
		EndedAt:          now,
	})
	if err != nil {
		m.opts.Logger.Error("could not save run", "error", err)
		return
	}
	m.opts.Logger.Info("run saved", "id", id, "outcome", outcome, "score", m.game.Score())
	m.run.best = max(m.run.best, m.game.Score())
}

func (m Model) loadBest() {
	if m.opts.Store == nil {
		return
	}
	best, err := m.opts.Store.HighScore(m.opts.Difficulty)
	if err != nil {
		m.opts.Logger.Warn("could not read high score", "error", err)
		return
	}
	m.run.best = best
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	if m.opts.Screenshot == "" {
		return
	}
	m.draw()

	if err := os.MkdirAll(m.opts.Screenshot, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}
	name := fmt.Sprintf("breakout_%s.txt", m.opts.Clock.Now().Format("20060102_150405"))
	path := filepath.Join(m.opts.Screenshot, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

func (m Model) draw() {
	m.screen.Clear()
	m.game.Draw(m.renderer)
	if text := m.board.Text(); text != "" {
		m.screen.DrawTextCentered(m.screen.Width()/2, m.screen.Height()/2, text, core.ColorBrightYellow)
	}
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	footer := m.help.ShortHelpView(m.footerKeys())
	if m.run.best > 0 {
		footer = fmt.Sprintf("best %d  %s", m.run.best, footer)
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// footerKeys lists the bindings that do something in the current state.
func (m Model) footerKeys() []key.Binding {
	switch m.game.State() {
	case breakout.StateMenu:
		return []key.Binding{m.keys.Play, m.keys.Quit}
	case breakout.StateWon, breakout.StateGameOver:
		return []key.Binding{m.keys.Restart, m.keys.Quit}
	default:
		return []key.Binding{m.keys.Left, m.keys.Right, m.keys.Quit}
	}
}

// Game returns the hosted game.
func (m Model) Game() *breakout.Game { return m.game }

// IsQuitting reports whether the model has asked the program to exit.
func (m Model) IsQuitting() bool { return m.quitting }

// Run starts the Bubble Tea program for opts and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
