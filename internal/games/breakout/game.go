package breakout

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Renderer draws in world units.
type Renderer interface {
	DrawRect(r core.Rect, c core.Color)
	DrawText(x, y int, text string, style core.TextStyle)
}

// SoundPlayer plays a named cue without blocking.
type SoundPlayer interface {
	PlaySound(name string)
}

// Messenger shows a message that pauses the game for d.
type Messenger interface {
	ShowMessage(text string, d time.Duration)
}

// Silent is a SoundPlayer that plays nothing.
type Silent struct{}

// PlaySound does nothing.
func (Silent) PlaySound(string) {}

type noMessages struct{}

func (noMessages) ShowMessage(string, time.Duration) {}

// Messages shown by the state machine.
const (
	MsgGetReady = "GET READY!"
	MsgWin      = "YOU WIN!!!"
	MsgGameOver = "GAME OVER!"
)

// State is the phase of the game.
type State int

const (
	StateMenu State = iota
	StateLevelIntro
	StatePlaying
	StateWon
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateLevelIntro:
		return "level_intro"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state is a final outcome.
func (s State) Terminal() bool {
	return s == StateWon || s == StateGameOver
}

// Button is a clickable menu control.
type Button struct {
	Label string
	Rect  core.Rect
}

// Menu button labels.
const (
	ButtonPlay = "PLAY"
	ButtonQuit = "QUIT"
)

// Option configures a Game.
type Option func(*Game)

// WithClock sets the clock used for effect timing.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithSound sets the sound player.
func WithSound(p SoundPlayer) Option {
	return func(g *Game) { g.sound = p }
}

// WithMessenger sets the message display.
func WithMessenger(m Messenger) Option {
	return func(g *Game) { g.msg = m }
}

// Game is the Breakout state machine. The host calls Update once per tick
// and Draw once per frame.
type Game struct {
	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig
	clock   core.Clock
	sound   SoundPlayer
	msg     Messenger

	session  *Session
	state    State
	quit     bool
	buttons  []Button
	restarts int64
	events   []Event
}

// New creates a game sitting in the menu. The playfield is the runtime screen
// size scaled by cfg.Playfield.UnitsPerCell.
func New(cfg config.BreakoutConfig, runtime core.RuntimeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		runtime: runtime,
		clock:   core.RealClock{},
		sound:   Silent{},
		msg:     noMessages{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.buttons = menuButtons(cfg.Menu)
	g.reset()
	return g
}

func menuButtons(m config.BreakoutMenu) []Button {
	labels := []string{ButtonPlay, ButtonQuit}
	buttons := make([]Button, len(labels))
	for i, label := range labels {
		buttons[i] = Button{
			Label: label,
			Rect:  core.NewRect(m.OffsetX, m.OffsetY+(m.ButtonH+m.Spacing)*i, m.ButtonW, m.ButtonH),
		}
	}
	return buttons
}

// reset builds a new session. Each restart gets its own seed so the brick
// layout changes while a given seed still replays identically.
func (g *Game) reset() {
	u := g.cfg.Playfield.UnitsPerCell
	seed := g.runtime.Seed + g.restarts
	g.session = NewSession(g.cfg, g.runtime.ScreenW*u, g.runtime.ScreenH*u, seed, g.clock, g.sound)
	g.events = nil
}

// Play starts the level, as if PLAY were clicked.
func (g *Game) Play() {
	if g.state != StateMenu {
		return
	}
	g.state = StateLevelIntro
}

// Quit ends the game from the menu, as if QUIT were clicked. No message is shown.
func (g *Game) Quit() {
	if g.state != StateMenu {
		return
	}
	g.quit = true
	g.state = StateGameOver
	g.record(Event{Kind: EventQuit})
}

// Restart discards the finished session and goes straight to the level intro.
func (g *Game) Restart() {
	if !g.state.Terminal() || g.quit {
		return
	}
	g.restarts++
	g.reset()
	g.state = StateLevelIntro
}

// Update advances the game by one tick.
func (g *Game) Update() {
	switch g.state {
	case StateMenu, StateWon, StateGameOver:
		return
	case StateLevelIntro:
		g.state = StatePlaying
		g.record(Event{Kind: EventLevelStart})
		g.msg.ShowMessage(MsgGetReady, g.cfg.Gameplay.MessageDuration)
	}

	s := g.session
	if len(s.Bricks) == 0 {
		g.state = StateWon
		g.sound.PlaySound(config.SoundLevelComplete)
		g.record(Event{Kind: EventWon})
		g.msg.ShowMessage(MsgWin, g.cfg.Gameplay.MessageDuration)
		return
	}

	s.ExpireEffect()
	s.Resolve()
	s.Advance()
	g.events = append(g.events, s.drainEvents()...)

	if s.Over {
		g.state = StateGameOver
		g.record(Event{Kind: EventGameOver})
		g.msg.ShowMessage(MsgGameOver, g.cfg.Gameplay.MessageDuration)
	}
}

func (g *Game) record(ev Event) {
	ev.Tick = g.session.tick
	ev.Score = g.session.Score
	ev.Lives = g.session.Lives
	g.events = append(g.events, ev)
}

// HandleKey routes a paddle key event. In toggle mode every event flips the
// direction flag; in hold mode it sets it.
func (g *Game) HandleKey(ev core.KeyEvent) {
	if g.state.Terminal() {
		return
	}
	p := g.session.Paddle
	if g.cfg.Gameplay.InputMode == config.InputHold {
		p.Hold(ev.Key, ev.Down)
		return
	}
	p.Toggle(ev.Key)
}

// HandleClick routes a mouse click, in world units, to the menu buttons.
func (g *Game) HandleClick(x, y int) {
	if g.state != StateMenu {
		return
	}
	for _, b := range g.buttons {
		if !b.Rect.Contains(x, y) {
			continue
		}
		switch b.Label {
		case ButtonPlay:
			g.Play()
		case ButtonQuit:
			g.Quit()
		}
		return
	}
}

// Draw renders the bricks, paddle, ball, status labels and, in the menu, the buttons.
func (g *Game) Draw(r Renderer) {
	s := g.session
	for _, b := range s.Bricks {
		r.DrawRect(b.Rect, b.Color)
	}
	r.DrawRect(s.Paddle.Rect, s.Paddle.Color)
	r.DrawRect(s.Ball.Rect, s.Ball.Color)

	t := g.cfg.Text
	style := core.TextStyle{Color: t.Color, Font: t.Font, Size: t.Size}
	r.DrawText(t.ScoreOffsetX, t.StatusOffsetY, fmt.Sprintf("SCORE: %d", s.Score), style)
	r.DrawText(t.LivesOffsetX, t.StatusOffsetY, fmt.Sprintf("LIVES: %d", s.Lives), style)

	if s.Effect.Active() {
		left := s.Effect.Remaining(g.clock.Now(), g.cfg.Effects.Duration)
		label := fmt.Sprintf("%s %ds", s.Effect.Kind.Label(), int(left.Round(time.Second)/time.Second))
		fx := style
		fx.Color = s.Effect.Kind.Color(g.cfg.Effects.Colors)
		fx.Centered = true
		r.DrawText(s.FieldW/2, t.StatusOffsetY, label, fx)
	}

	if g.state == StateMenu {
		for _, b := range g.buttons {
			r.DrawRect(b.Rect, core.ColorGray)
			bs := style
			bs.Centered = true
			r.DrawText(b.Rect.CenterX(), b.Rect.CenterY(), b.Label, bs)
		}
	}
}

// State returns the current phase.
func (g *Game) State() State { return g.state }

// QuitRequested reports whether the game ended through the QUIT button.
func (g *Game) QuitRequested() bool { return g.quit }

// Session returns the live session.
func (g *Game) Session() *Session { return g.session }

// Buttons returns the menu buttons.
func (g *Game) Buttons() []Button { return g.buttons }

// Score returns the current score.
func (g *Game) Score() int { return g.session.Score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.session.Lives }

// Seed returns the seed the current session was built from.
func (g *Game) Seed() int64 { return g.runtime.Seed + g.restarts }

// Events returns the events recorded since the last call.
func (g *Game) Events() []Event {
	evs := g.events
	g.events = nil
	return evs
}
