package sim

import (
	"fmt"
	"log"

	"github.com/plus3/tethered/vmath"
	"github.com/plus3/tethered/world"
)

// Enemy template.
const (
	enemyName   = "e"
	enemySize   = 32
	enemySpeed  = 1
	enemyHealth = 100
)

// approach moves c toward target by speed. The displacement is the
// normalized vector from target to c, subtracted from c's position, so a
// character sitting on its target stays put.
func approach(c *world.Character, from, target vmath.Vec2, speed float64) {
	var movement vmath.Vec2
	vmath.NormalizeInto(&movement, *vmath.SubInto(&movement, from, target))
	vmath.SubInto(&c.Pos, c.Pos, *vmath.ScaleInto(&movement, movement, speed))
}

// PlayerMovementSystem steers the players toward the pointer. A bound pair
// moves together from the midpoint of their centers at the slower speed as
// soon as either follows; otherwise each follower moves on its own.
type PlayerMovementSystem struct{}

func (PlayerMovementSystem) Execute(frame *StepFrame) {
	scene := frame.Scene
	a, b := &scene.A, &scene.B

	if scene.Bound() && (a.FollowPointer || b.FollowPointer) {
		var mid vmath.Vec2
		vmath.ScaleInto(&mid, *vmath.AddInto(&mid, a.Center(), b.Center()), 0.5)

		var movement vmath.Vec2
		vmath.NormalizeInto(&movement, *vmath.SubInto(&movement, mid, frame.Pointer))
		vmath.ScaleInto(&movement, movement, min(a.Speed, b.Speed))
		vmath.SubInto(&a.Pos, a.Pos, movement)
		vmath.SubInto(&b.Pos, b.Pos, movement)
		return
	}

	for _, slot := range world.Slots {
		p := scene.Player(slot)
		if p.FollowPointer {
			approach(p, p.Center(), frame.Pointer, p.Speed)
		}
	}
}

// EnemyPursuitSystem resolves each enemy's target and moves it one step
// closer. With one player dead the other is chased; with both alive the
// nearer one is. While both are dead enemies hold position.
type EnemyPursuitSystem struct{}

func (EnemyPursuitSystem) Execute(frame *StepFrame) {
	scene := frame.Scene
	for i := range scene.Enemies {
		e := &scene.Enemies[i]

		target := pursuitTarget(scene, e)
		if target == nil {
			e.Target = 0
			continue
		}
		e.Target = target.Id
		approach(e, e.Center(), target.Center(), e.Speed)
	}
}

func pursuitTarget(scene *world.Scene, e *world.Character) *world.Character {
	a, b := &scene.A, &scene.B
	switch {
	case a.IsAlive() && b.IsAlive():
		return e.Closest(a, b)
	case a.IsAlive():
		return a
	case b.IsAlive():
		return b
	default:
		return nil
	}
}

// EnemySpawnSystem adds one enemy every SpawnInterval steps while the
// population is below SpawnCap. New enemies are centered on a random point of
// the circle around the arena center whose radius is the larger arena side.
type EnemySpawnSystem struct{}

func (EnemySpawnSystem) Execute(frame *StepFrame) {
	cfg := frame.Settings
	scene := frame.Scene
	if frame.Tick%uint64(cfg.SpawnInterval) != 0 || len(scene.Enemies) >= cfg.SpawnCap {
		return
	}

	res := cfg.Resolution
	at := res.Center().Add(frame.Rand.PointOnCircle(max(res.Width, res.Height)))

	e := world.NewCharacter(world.KindEnemy, enemyName)
	e.Size = vmath.V(enemySize, enemySize)
	e.Color = world.RGB{0, 0, 0}
	e.Speed = enemySpeed
	e.Health = enemyHealth
	e.MaxHealth = enemyHealth
	e.SetCenter(at)

	id := scene.Spawn(e)
	frame.Events.Emit(Event{Kind: EnemySpawned, Tick: frame.Tick, Entity: id, Position: at})
	log.Printf("[Spawn] enemy %d at (%.1f, %.1f), tick %d, count %d/%d",
		id.Serial(), at.X, at.Y, frame.Tick, len(scene.Enemies), cfg.SpawnCap)
}

// ContactDamageSystem applies DamagePerHit to a living player once for every
// enemy overlapping it. Health never drops below zero.
type ContactDamageSystem struct{}

func (ContactDamageSystem) Execute(frame *StepFrame) {
	scene := frame.Scene
	dmg := frame.Settings.DamagePerHit
	for i := range scene.Enemies {
		e := &scene.Enemies[i]
		for _, slot := range world.Slots {
			p := scene.Player(slot)
			if p.IsAlive() && p.Collides(e) {
				p.Health = max(p.Health-dmg, 0)
			}
		}
	}
}

// LifecycleSystem moves players between Alive and Dead. A living player at
// zero health dies, leaving its body behind and reappearing on the respawn
// circle; a dead player touching its own body comes back. Each player makes
// at most one transition per step.
type LifecycleSystem struct {
	bothDead bool
}

func (l *LifecycleSystem) Execute(frame *StepFrame) {
	scene := frame.Scene
	for _, slot := range world.Slots {
		p := scene.Player(slot)
		body := scene.Body(slot)

		switch {
		case p.IsAlive() && p.Health <= 0:
			at := respawnPoint(frame)
			body = scene.Kill(slot, at)
			frame.Events.Emit(Event{Kind: PlayerDied, Tick: frame.Tick, Entity: p.Id, Slot: slot, Position: body.Center()})
			deferLog(frame, "[Lifecycle] player %s died at tick %d, body %d left behind", slot, frame.Tick, body.Id.Serial())

		case !p.IsAlive():
			if body == nil {
				panic(fmt.Sprintf("sim: player %s is dead without a body", slot))
			}
			if p.Collides(body) {
				scene.Revive(slot, frame.Settings.RespawnHealth.Health(p.MaxHealth))
				frame.Events.Emit(Event{Kind: PlayerRespawned, Tick: frame.Tick, Entity: p.Id, Slot: slot, Position: p.Center()})
				deferLog(frame, "[Lifecycle] player %s respawned at tick %d with %d health", slot, frame.Tick, p.Health)
			}
		}
	}

	bothDead := scene.AliveCount() == 0
	if bothDead && !l.bothDead {
		frame.Events.Emit(Event{Kind: BothDead, Tick: frame.Tick})
		deferLog(frame, "[Lifecycle] both players dead at tick %d, score %.2f", frame.Tick, scene.Score)
	}
	l.bothDead = bothDead
}

// deferLog logs once the step's events were delivered. The arguments are
// captured now.
func deferLog(frame *StepFrame, format string, args ...any) {
	frame.Events.Defer(func() { log.Printf(format, args...) })
}

// respawnPoint picks a point on the circle around the arena center whose
// radius is half the smaller arena side.
func respawnPoint(frame *StepFrame) vmath.Vec2 {
	res := frame.Settings.Resolution
	return res.Center().Add(frame.Rand.PointOnCircle(min(res.Width, res.Height) * 0.5))
}

// StepCounterSystem advances the step counter.
type StepCounterSystem struct{}

func (StepCounterSystem) Execute(frame *StepFrame) {
	frame.Tick++
}

// ScoreSystem accrues ScoreRate per living player.
type ScoreSystem struct{}

func (ScoreSystem) Execute(frame *StepFrame) {
	frame.Scene.Score += float64(frame.Scene.AliveCount()) * frame.Settings.ScoreRate
}
