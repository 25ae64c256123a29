// Package stage drives one gameplay stage: it shows the stage banner, brings
// in the player and a wave of enemies once the intro finishes, advances the
// session when the player reaches the stage exit, and tears the player down on
// death.
package stage

import (
	"fmt"

	"github.com/milk9111/aircombat/common"
	"github.com/milk9111/aircombat/ecs"
)

// Phase is the controller's current state.
type Phase int

const (
	Loading Phase = iota
	Running
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

const (
	// StageExitBit is the collision layer bit reserved for stage-exit
	// geometry.
	StageExitBit = 4

	IntroClip    = "Stage Display"
	GameOverText = "Game Over"

	PlayerScene = "player.yaml"
	EnemyScene  = "enemy.yaml"

	PlayerSpawnX  = 300.0
	PlayerSpawnY  = common.BaseHeight / 2.0
	CameraOffsetX = 360.0
	CameraOffsetY = 0.0
	GameOverX     = common.BaseWidth/2.0 - 200
	GameOverY     = common.BaseHeight / 2.0
)

// StageExitMask is the layer bitmask carried by stage-exit collisions.
const StageExitMask uint32 = 1 << StageExitBit

// Config wires a Controller to its collaborators. StageLabel, KillsLabel and
// Intro are optional; their side effects are skipped when nil.
type Config struct {
	Loader   SceneLoader
	Arena    Arena
	Sessions SessionStore
	Random   RandomSource

	StageLabel DisplaySink
	KillsLabel DisplaySink
	Intro      Animator

	PlayerScene string
	EnemyScene  string
}

// Controller is the stage state machine. A scene owns exactly one; a stage
// clear reloads the scene, which builds a new Controller in Loading.
type Controller struct {
	loader   SceneLoader
	arena    Arena
	sessions SessionStore
	rng      RandomSource

	stageLabel DisplaySink
	killsLabel DisplaySink
	intro      Animator

	playerScene string
	enemyScene  string

	phase   Phase
	spawner *Spawner
	player  ecs.Entity
	// cleared is set once a stage-exit collision has requested the reload;
	// the controller is discarded with the scene, so it is never reset.
	cleared bool
}

func NewController(cfg Config) (*Controller, error) {
	if cfg.Loader == nil || cfg.Arena == nil || cfg.Sessions == nil || cfg.Random == nil {
		return nil, ErrMissingPort
	}
	c := &Controller{
		loader:      cfg.Loader,
		arena:       cfg.Arena,
		sessions:    cfg.Sessions,
		rng:         cfg.Random,
		stageLabel:  cfg.StageLabel,
		killsLabel:  cfg.KillsLabel,
		intro:       cfg.Intro,
		playerScene: cfg.PlayerScene,
		enemyScene:  cfg.EnemyScene,
		phase:       Loading,
	}
	if c.playerScene == "" {
		c.playerScene = PlayerScene
	}
	if c.enemyScene == "" {
		c.enemyScene = EnemyScene
	}
	return c, nil
}

func (c *Controller) Phase() Phase {
	return c.phase
}

// Player returns the player handle while one is held.
func (c *Controller) Player() (ecs.Entity, bool) {
	return c.player, c.player.Valid()
}

// OnReady loads the enemy template, writes the stage banner and starts the
// intro clip.
func (c *Controller) OnReady() error {
	template, err := c.loader.Load(c.enemyScene)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEnemyLoad, err)
	}
	c.spawner = NewSpawner(c.loader, c.arena, c.rng, template)

	state, ok := c.sessions.Load()
	if !ok {
		return nil
	}

	if c.stageLabel != nil {
		c.stageLabel.SetText(fmt.Sprintf("Stage %d", state.CurrentStage()))
	}
	if c.intro != nil {
		c.intro.Play(IntroClip, 1.0, false, false)
	}
	return nil
}

// OnTick pushes the kill counter to the HUD. It changes no state.
func (c *Controller) OnTick() {
	state, ok := c.sessions.Load()
	if !ok || c.killsLabel == nil {
		return
	}
	c.killsLabel.SetText(fmt.Sprintf("Kills: %d", state.Kills()))
}

// OnIntroFinished moves Loading to Running: it spawns the player with an
// attached camera and the enemy wave for the current stage. Outside Loading
// it does nothing.
func (c *Controller) OnIntroFinished() error {
	if c.phase != Loading {
		return nil
	}

	if c.stageLabel != nil {
		c.stageLabel.SetVisible(false)
	}

	template, err := c.loader.Load(c.playerScene)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPlayerLoad, err)
	}
	player, err := c.loader.Instantiate(template)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPlayerLoad, err)
	}
	c.arena.SetPosition(player, PlayerSpawnX, PlayerSpawnY)

	cam := c.arena.NewCamera(CameraOffsetX, CameraOffsetY)
	c.arena.MakeCurrent(cam)
	c.arena.Add(player, cam)

	c.arena.Add(0, player)
	if err := c.spawnEnemies(); err != nil {
		return err
	}
	c.phase = Running
	c.player = player
	return nil
}

func (c *Controller) spawnEnemies() error {
	state, ok := c.sessions.Load()
	if !ok {
		return ErrNoSession
	}
	if c.spawner == nil {
		return ErrEnemyLoad
	}
	if _, err := c.spawner.SpawnWave(state.CurrentStage(), c.arena.ViewportHeight()); err != nil {
		return err
	}
	return nil
}

// OnCollision reacts to a tracked collider entering a shape on the given
// collision layers. Only the stage-exit bit while Running clears the stage:
// the player is frozen, the session advances and the scene is reloaded. Exit
// contacts arriving after the reload request, before the scene is torn down,
// are ignored.
func (c *Controller) OnCollision(layers uint32) error {
	if layers&StageExitMask == 0 || c.phase != Running || c.cleared {
		return nil
	}

	state, ok := c.sessions.Load()
	if !ok {
		return ErrNoSession
	}
	if err := c.arena.SetSpeed(c.player, 0); err != nil {
		return fmt.Errorf("stage: freeze player: %w", err)
	}
	state.AdvanceStage()
	c.cleared = true
	c.arena.ReloadCurrentScene()
	return nil
}

// OnPlayerDied frees everything attached to the player, removes the player
// from the arena and turns the stage banner into the game-over banner. The
// controller stays in GameOver; a repeated call finds no player and only
// reasserts the phase.
func (c *Controller) OnPlayerDied() {
	if c.player.Valid() {
		for _, child := range c.arena.Children(c.player) {
			c.arena.QueueFree(child)
		}
		c.arena.Remove(c.player)
		c.player = 0

		if c.stageLabel != nil {
			c.stageLabel.SetText(GameOverText)
			c.stageLabel.SetVisible(true)
			c.stageLabel.SetPosition(GameOverX, GameOverY)
		}
	}
	c.phase = GameOver
}
