package game

import (
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/logging"

	"github.com/google/uuid"
)

// Status of the current round.
type Status int

const (
	NotStarted Status = iota
	Running
	Paused
	GameOver
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	default:
		return "not_started"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Themes the renderer knows how to draw. The core only carries the name.
var Themes = []string{"sci", "matrix", "space"}

// Config selects the round layout. Board size and speed are fixed.
type Config struct {
	SnakeLength      int    // 1 or 3 starting segments
	Seed             uint64 // food placement seed
	AvoidFoodOverlap bool   // re-roll food that lands on the snake
	Theme            string
}

// Snapshot is the externally observable state of a round.
type Snapshot struct {
	RoundID      string              `json:"roundId"`
	Snake        []types.Point       `json:"snake"`
	Food         types.Point         `json:"food"`
	Score        int                 `json:"score"`
	BestScore    int                 `json:"bestScore"`
	Status       Status              `json:"status"`
	Collision    types.CollisionType `json:"collision,omitempty"`
	Heading      types.Heading       `json:"heading"`
	TickInterval time.Duration       `json:"tickInterval"`
	Theme        string              `json:"theme"`
}

// historyRecorder is implemented by stores that also keep finished rounds.
type historyRecorder interface {
	AddToHistory(record manager.RoundRecord) error
}

// Game owns one round of the simulation. It is not safe for concurrent use;
// the Runner serialises every call.
type Game struct {
	UUID string
	Grid types.Grid

	cfg       Config
	snake     *entity.Snake
	food      types.Point
	score     int
	status    Status
	collision types.CollisionType
	theme     string
	startTime time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	directionMgr *manager.DirectionManager
	store        manager.ScoreStore
	events       *EventBus
}

func NewGame(cfg Config, store manager.ScoreStore, events *EventBus) *Game {
	if cfg.SnakeLength != 3 {
		cfg.SnakeLength = 1
	}
	if store == nil {
		store = manager.NewMemoryStateManager()
	}
	if events == nil {
		events = NewEventBus()
	}
	grid := types.DefaultGrid()

	g := &Game{
		Grid:         grid,
		cfg:          cfg,
		theme:        themeOrDefault(cfg.Theme),
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, cfg.Seed, cfg.AvoidFoodOverlap),
		directionMgr: manager.NewDirectionManager(implicitHeading(cfg.SnakeLength)),
		store:        store,
		events:       events,
	}
	g.newRound()
	return g
}

func initialBody(length int) []types.Point {
	if length == 3 {
		return []types.Point{{X: 10, Y: 10}, {X: 10, Y: 11}, {X: 10, Y: 12}}
	}
	return []types.Point{{X: 10, Y: 10}}
}

// implicitHeading is the facing a Stopped multi-segment snake is given so
// its first move cannot fold back over the body.
func implicitHeading(length int) types.Heading {
	if length > 1 {
		return types.Up
	}
	return types.Stopped
}

func themeOrDefault(name string) string {
	for _, t := range Themes {
		if t == name {
			return t
		}
	}
	return Themes[0]
}

// newRound discards all round state and builds a fresh NotStarted round.
func (g *Game) newRound() {
	g.UUID = uuid.New().String()
	g.snake = entity.NewSnake(initialBody(g.cfg.SnakeLength))
	g.food = g.foodMgr.PlaceFood(g.snake)
	g.score = 0
	g.status = NotStarted
	g.collision = types.NoCollision
	g.directionMgr.Reset(implicitHeading(g.cfg.SnakeLength))
}

// Tick advances a Running round by one step and reports whether it ran.
func (g *Game) Tick() bool {
	if g.status != Running {
		return false
	}

	g.directionMgr.BeginTick()
	newHead := g.snake.GetHead().Add(g.directionMgr.Current().Delta())

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != types.NoCollision {
		g.endRound(collision)
		return true
	}

	g.snake.Prepend(newHead)
	if g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.score++
		g.food = g.foodMgr.PlaceFood(g.snake)
		g.updateBest()
	} else {
		g.snake.RemoveTail()
	}

	g.emit(EventSnapshot)
	return true
}

func (g *Game) endRound(collision types.CollisionType) {
	g.status = GameOver
	g.collision = collision
	g.directionMgr.Halt()
	logging.Log.Infof("round %s over: %s collision at score %d", g.UUID, collision, g.score)

	if rec, ok := g.store.(historyRecorder); ok {
		err := rec.AddToHistory(manager.RoundRecord{
			ID:        g.UUID,
			StartTime: g.startTime,
			EndTime:   time.Now(),
			Score:     g.score,
			Cause:     collision,
		})
		if err != nil {
			logging.Log.Warningf("could not record round: %v", err)
		}
	}

	g.emit(EventRoundOver)
	g.emit(EventSnapshot)
}

func (g *Game) updateBest() {
	if g.score <= g.store.Get() {
		return
	}
	if err := g.store.Set(g.score); err != nil {
		logging.Log.Warningf("could not store best score %d: %v", g.score, err)
	}
	g.emit(EventNewBest)
}

// TickInterval is the delay before the next tick at the current score.
func (g *Game) TickInterval() time.Duration {
	return types.TickInterval(g.score)
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		RoundID:      g.UUID,
		Snake:        g.snake.Body(),
		Food:         g.food,
		Score:        g.score,
		BestScore:    g.store.Get(),
		Status:       g.status,
		Collision:    g.collision,
		Heading:      g.directionMgr.Current(),
		TickInterval: g.TickInterval(),
		Theme:        g.theme,
	}
}

// Publish emits the current snapshot without changing state.
func (g *Game) Publish() {
	g.emit(EventSnapshot)
}

func (g *Game) emit(t EventType) {
	g.events.Emit(Event{Type: t, Snapshot: g.Snapshot()})
}
