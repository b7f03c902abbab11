// Package creeps implements Dodge the Creeps: the player dodges mobs that
// stream in from the screen edges and scores one point per second survived.
package creeps

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/dodge-creeps/internal/audio"
	"github.com/vovakirdan/dodge-creeps/internal/config"
	"github.com/vovakirdan/dodge-creeps/internal/core"
	"github.com/vovakirdan/dodge-creeps/internal/registry"
)

// Phase is the round lifecycle state.
type Phase int

const (
	PhaseIdle     Phase = iota // Title screen, no round yet
	PhaseGetReady              // Round started, mobs not spawning yet
	PhasePlaying               // Score and mob timers running
	PhaseGameOver              // Player hit; mobs left drifting off
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseGetReady:
		return "get_ready"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// soundSink receives music and effects for games created through the registry
var soundSink audio.Sink = audio.Silent{}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetSound sets the sound sink. A nil sink means silence.
func SetSound(s audio.Sink) {
	if s == nil {
		s = audio.Silent{}
	}
	soundSink = s
}

// Game is the round orchestrator. It owns the player, the HUD, the mob
// group and every timer, and drives them one frame at a time.
type Game struct {
	cfg       config.CreepsConfig
	fixedCfg  bool                // Config supplied at construction; Reset does not load
	loaded    config.CreepsConfig // Last config that loaded and validated
	hasLoaded bool
	cfgErr    error
	rng       RNG
	fixedRNG  bool
	sound     audio.Sink
	fixedSnd  bool
	preset    config.DifficultyPreset
	ownPreset bool // Preset chosen per game; overrides SetDifficultyPreset
	runtime   core.RuntimeConfig
	viewport  core.Vec2
	startPos  core.Vec2
	timers    *Timers
	deferred  *deferredQueue
	player    *Player
	hud       *HUD
	mobs      *MobGroup
	mobTmpl   MobTemplate
	path      *SpawnPath
	policy    SpawnPolicy
	input     *InputLatch
	axes      Axes
	diff      *config.DifficultyManager
	phase     Phase
	score     int
	paused    bool
	tickCount int // Ticks since the round started playing
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithOptions creates a game with explicit collaborators. A nil rng is
// seeded from the runtime config on Reset; a nil sink is silent.
func NewWithOptions(cfg config.CreepsConfig, rng RNG, sink audio.Sink) *Game {
	if sink == nil {
		sink = audio.Silent{}
	}
	return &Game{
		cfg:      cfg,
		fixedCfg: true,
		rng:      rng,
		fixedRNG: rng != nil,
		sound:    sink,
		fixedSnd: true,
	}
}

// SetPreset picks the difficulty preset for this game only. It takes
// effect on the next Reset.
func (g *Game) SetPreset(preset string) {
	g.preset = config.ParsePreset(preset)
	g.ownPreset = true
}

// Preset returns the difficulty preset the game resets with.
func (g *Game) Preset() string {
	if g.ownPreset {
		return string(g.preset)
	}
	return string(difficultyPreset)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "creeps"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge the Creeps"
}

// Reset builds a fresh scene for the given screen. The game starts Idle
// on the title screen and begins a round right away when autostart is on.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		g.reloadConfig()
	}
	preset := difficultyPreset
	if g.ownPreset {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyCreepsPreset(&g.cfg, preset)
	}

	if !g.fixedSnd {
		g.sound = soundSink
	}

	if !g.fixedRNG {
		seed := runtime.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}

	g.build()

	if g.cfg.Gameplay.Autostart {
		g.NewGame()
	}
}

// reloadConfig reads the config file. A file that fails to load or
// validate keeps the last good config, or the defaults before any load
// succeeded, and the error stays available through ConfigErr.
func (g *Game) reloadConfig() {
	cfg, err := config.LoadCreeps(configPath)
	g.cfgErr = err
	switch {
	case err == nil:
		g.loaded, g.hasLoaded = cfg, true
	case !g.hasLoaded:
		g.loaded = config.DefaultCreepsConfig()
	}
	g.cfg = g.loaded
}

// ConfigErr returns the error from the most recent config load, or nil.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// build wires the scene: timers, player, HUD, mobs and spawn path.
func (g *Game) build() {
	g.sound.Stop(audio.SoundMusic)

	g.viewport = core.V2(
		float64(g.runtime.ScreenW)*g.cfg.World.CellWidth,
		float64(g.runtime.ScreenH)*g.cfg.World.CellHeight,
	)
	g.startPos = g.viewport.Scale(0.5)

	g.timers = NewTimers(g.cfg.Timers)
	g.deferred = &deferredQueue{}

	g.player = NewPlayer(g.cfg.Player, g.deferred)
	g.player.OnHit(g.OnPlayerHit)

	g.hud = NewHUD(
		g.cfg.HUD,
		g.timers.Get(TimerGetReadyMessage),
		g.timers.Get(TimerStartMessage),
		g.timers.Get(TimerStartButton),
	)
	g.hud.OnStartGame(g.OnHUDStartGame)

	g.mobs = NewMobGroup()
	g.mobTmpl = NewMobTemplate(g.cfg.Mob)
	g.path = NewPerimeterPath(g.viewport.X, g.viewport.Y)
	g.policy = NewSpawnPolicy(g.cfg.Mob)
	g.input = NewInputLatch(g.cfg.Input.HoldTicks)
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)

	g.axes = Axes{}
	g.phase = PhaseIdle
	g.score = 0
	g.paused = false
	g.tickCount = 0
}

// NewGame starts a round: score 0, player at the start marker, every mob
// purged, "Get Ready" shown and the start timer armed.
func (g *Game) NewGame() {
	g.timers.Get(TimerScore).Stop()
	g.timers.Get(TimerMob).Stop()
	g.timers.Get(TimerMob).WaitTime = g.cfg.Timers.Mob

	g.score = 0
	g.tickCount = 0
	g.paused = false
	g.input.Reset()
	g.axes = Axes{}

	g.player.Start(g.startPos)
	g.timers.Get(TimerStart).Start()

	g.hud.UpdateScore(g.score)
	g.hud.ShowGetReady()

	g.mobs.FreeAll()
	g.mobs.Sweep()

	g.sound.Stop(audio.SoundMusic)
	g.sound.Play(audio.SoundMusic)

	g.phase = PhaseGetReady
}

// OnPlayerHit ends the round. Mobs already on screen keep moving.
// Outside GetReady and Playing it does nothing.
func (g *Game) OnPlayerHit() {
	if g.phase != PhaseGetReady && g.phase != PhasePlaying {
		return
	}

	g.timers.Get(TimerStart).Stop()
	g.timers.Get(TimerScore).Stop()
	g.timers.Get(TimerMob).Stop()

	g.hud.ShowGameOver()

	g.sound.Stop(audio.SoundMusic)
	g.sound.Play(audio.SoundDeath)

	g.phase = PhaseGameOver
}

// OnHUDStartGame handles the HUD's start button.
func (g *Game) OnHUDStartGame() {
	g.NewGame()
}

// OnTimerExpired delivers one timer expiry.
func (g *Game) OnTimerExpired(id TimerID) {
	switch id {
	case TimerStart:
		g.onStartTimeout()
	case TimerScore:
		g.onScoreTimeout()
	case TimerMob:
		g.onMobTimeout()
	case TimerGetReadyMessage:
		g.hud.OnGetReadyTimeout()
	case TimerStartMessage:
		g.hud.OnStartMessageTimeout()
	case TimerStartButton:
		g.hud.OnStartButtonTimeout()
	}
}

func (g *Game) onStartTimeout() {
	if g.phase != PhaseGetReady {
		return
	}
	g.timers.Get(TimerScore).Start()
	g.timers.Get(TimerMob).Start()
	g.phase = PhasePlaying
}

func (g *Game) onScoreTimeout() {
	if g.phase != PhasePlaying {
		return
	}
	g.score++
	g.hud.UpdateScore(g.score)
}

func (g *Game) onMobTimeout() {
	if g.phase != PhasePlaying {
		return
	}
	g.SpawnMob()

	mobTimer := g.timers.Get(TimerMob)
	mobTimer.WaitTime = g.diff.SpawnInterval(g.cfg.Timers.Mob, g.score, g.tickCount)
}

// SpawnMob adds one mob at a random point on the spawn path, heading
// inward, and returns it.
func (g *Game) SpawnMob() *Mob {
	m := newMob(g.mobTmpl, g.rng)
	s := g.policy.Next(g.rng, g.path)

	m.Position = s.Position
	m.Rotation = s.Direction
	m.Velocity = s.Velocity

	g.mobs.Add(m)
	return m
}

// Tick runs one frame of dt seconds.
func (g *Game) Tick(dt float64) {
	g.player.PhysicsProcess(dt, g.axes, g.viewport)

	for _, m := range g.mobs.All() {
		m.Integrate(dt)
	}

	if g.player.Visible() && g.player.CollisionEnabled() {
		hitbox := g.player.Hitbox()
		for _, m := range g.mobs.All() {
			if !m.Freed() && hitbox.Intersects(m.Hitbox()) {
				g.player.OnCollision(m)
			}
		}
	}

	g.deferred.Flush()

	screen := core.RectF{W: g.viewport.X, H: g.viewport.Y}
	for _, m := range g.mobs.All() {
		m.checkScreenExit(screen)
	}
	g.mobs.Sweep()

	if g.phase == PhasePlaying {
		g.tickCount++
	}

	g.timers.advance(dt, g.OnTimerExpired)
}

// SetAxes overrides the held directions for the next Tick.
func (g *Game) SetAxes(a Axes) {
	g.axes = a
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && (g.phase == PhaseGetReady || g.phase == PhasePlaying) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionConfirm) {
		g.hud.PressStartButton()
	}

	g.axes = g.input.Update(in)
	g.Tick(g.runtime.TickDuration())

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the round phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Player returns the player.
func (g *Game) Player() *Player {
	return g.player
}

// HUD returns the HUD.
func (g *Game) HUD() *HUD {
	return g.hud
}

// Mobs returns the live mob group.
func (g *Game) Mobs() *MobGroup {
	return g.mobs
}

// Timer returns the timer for id.
func (g *Game) Timer(id TimerID) *Timer {
	return g.timers.Get(id)
}

// Viewport returns the world size in world units.
func (g *Game) Viewport() core.Vec2 {
	return g.viewport
}

// Config returns the active configuration.
func (g *Game) Config() config.CreepsConfig {
	return g.cfg
}

// Register the game with the registry
func init() {
	registry.Register("creeps", func() registry.Game {
		return New()
	})
}
