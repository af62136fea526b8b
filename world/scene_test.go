package world_test

import (
	"testing"

	"github.com/plus3/tethered/vmath"
	"github.com/plus3/tethered/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene() *world.Scene {
	a := world.NewCharacter(world.KindPlayer, "a")
	a.Pos = vmath.V(100, 100)
	a.Size = vmath.V(42, 64)

	b := world.NewCharacter(world.KindPlayer, "b")
	b.Pos = vmath.V(200, 100)
	b.Size = vmath.V(42, 64)

	return world.NewScene(a, b)
}

func newEnemy(x, y float64) world.Character {
	e := world.NewCharacter(world.KindEnemy, "e")
	e.Pos = vmath.V(x, y)
	e.Size = vmath.V(32, 32)
	return e
}

func TestEntityIdEncoding(t *testing.T) {
	id := world.NewEntityId(world.KindEnemy, 42)
	assert.Equal(t, world.KindEnemy, id.Kind())
	assert.Equal(t, uint32(42), id.Serial())
	assert.True(t, id.Valid())
	assert.False(t, world.EntityId(0).Valid())
}

func TestCharacterDerivedGeometry(t *testing.T) {
	c := world.NewCharacter(world.KindPlayer, "a")
	c.Pos = vmath.V(10, 20)
	c.Size = vmath.V(42, 64)

	assert.Equal(t, vmath.V(31, 52), c.Center())
	assert.Equal(t, vmath.V(10, 20), c.Bounds().Position)
	assert.Equal(t, vmath.V(42, 64), c.Bounds().Size)

	c.SetCenter(vmath.V(0, 0))
	assert.Equal(t, vmath.V(-21, -32), c.Pos)
	assert.Equal(t, vmath.V(0, 0), c.Center())
}

func TestCharacterClosest(t *testing.T) {
	s := newTestScene()
	e := newEnemy(0, 100)

	assert.Same(t, &s.A, e.Closest(&s.A, &s.B))

	e.Pos = vmath.V(400, 100)
	assert.Same(t, &s.B, e.Closest(&s.A, &s.B))

	// equidistant resolves to the second argument
	e.Pos = vmath.V(150+21-16, 100)
	assert.Same(t, &s.B, e.Closest(&s.A, &s.B))
}

func TestCharacterCollidesInclusive(t *testing.T) {
	a := newEnemy(0, 0)
	a.Size = vmath.V(10, 10)
	b := newEnemy(10, 0)
	b.Size = vmath.V(10, 10)

	assert.True(t, a.Collides(&b))
	b.Pos.X = 10.001
	assert.False(t, a.Collides(&b))
}

func TestNewSceneAssignsIds(t *testing.T) {
	s := newTestScene()

	assert.True(t, s.A.Id.Valid())
	assert.True(t, s.B.Id.Valid())
	assert.NotEqual(t, s.A.Id, s.B.Id)
	assert.Equal(t, world.KindPlayer, s.A.Id.Kind())
	assert.Nil(t, s.ABody)
	assert.Nil(t, s.BBody)
	assert.Empty(t, s.Enemies)
	assert.Equal(t, 2, s.AliveCount())
	assert.True(t, s.Bound())
}

func TestSceneSpawnAndFind(t *testing.T) {
	s := newTestScene()

	ids := make([]world.EntityId, 0, 5)
	for i := 0; i < 5; i++ {
		ids = append(ids, s.Spawn(newEnemy(float64(i), 0)))
	}

	require.Len(t, s.Enemies, 5)
	for i, id := range ids {
		assert.Equal(t, world.KindEnemy, id.Kind())
		assert.Equal(t, id, s.Enemies[i].Id, "spawn order is preserved")

		found := s.Find(id)
		require.NotNil(t, found)
		assert.Same(t, &s.Enemies[i], found)
	}

	assert.Same(t, &s.A, s.Find(s.A.Id))
	assert.Same(t, &s.B, s.Find(s.B.Id))
	assert.Nil(t, s.Find(0))
	assert.Nil(t, s.Find(world.NewEntityId(world.KindEnemy, 999)))
}

func TestSceneFindAfterSliceReplaced(t *testing.T) {
	s := newTestScene()
	s.Spawn(newEnemy(0, 0))
	id := s.Spawn(newEnemy(1, 0))

	s.Enemies = []world.Character{s.Enemies[1]}
	found := s.Find(id)
	require.NotNil(t, found)
	assert.Equal(t, id, found.Id)
}

func TestSceneCloneIsDeep(t *testing.T) {
	s := newTestScene()
	s.Spawn(newEnemy(5, 5))
	s.A.Health = 0
	s.Kill(world.SlotA, vmath.V(960, 540))
	s.Score = 12.5

	c := s.Clone()
	require.NotNil(t, c.ABody)
	assert.Equal(t, *s.ABody, *c.ABody)
	assert.NotSame(t, s.ABody, c.ABody)

	c.Enemies[0].Pos = vmath.V(-1, -1)
	c.ABody.Pos = vmath.V(-1, -1)
	c.A.Pos = vmath.V(-1, -1)

	assert.Equal(t, vmath.V(5, 5), s.Enemies[0].Pos)
	assert.NotEqual(t, vmath.V(-1, -1), s.ABody.Pos)
	assert.NotEqual(t, vmath.V(-1, -1), s.A.Pos)
	assert.Equal(t, 12.5, c.Score)

	// a clone continues the id sequence of its source
	idA := s.Spawn(newEnemy(0, 0))
	idC := c.Spawn(newEnemy(0, 0))
	assert.Equal(t, idA, idC)
	assert.Same(t, &c.Enemies[1], c.Find(idC))
}

func TestSceneKillAndRevive(t *testing.T) {
	s := newTestScene()
	before := s.A
	s.A.Health = 0

	body := s.Kill(world.SlotA, vmath.V(960, 540))

	require.NotNil(t, s.ABody)
	assert.Same(t, body, s.ABody)
	assert.Equal(t, world.KindPlayerBody, body.Kind)
	assert.Equal(t, world.KindPlayerBody, body.Id.Kind())
	assert.NotEqual(t, before.Id, body.Id)
	assert.Equal(t, before.Pos, body.Pos)
	assert.Equal(t, before.Size, body.Size)
	assert.Equal(t, before.Color, body.Color)
	assert.Same(t, body, s.Find(body.Id))

	assert.Equal(t, world.StatusDead, s.A.Status)
	assert.Equal(t, vmath.V(960, 540), s.A.Center())
	assert.Equal(t, before.Id, s.A.Id, "the player keeps its identity")
	assert.Equal(t, 1, s.AliveCount())
	assert.False(t, s.Bound())
	assert.Nil(t, s.BBody)

	s.Revive(world.SlotA, s.A.MaxHealth)
	assert.Nil(t, s.ABody)
	assert.Equal(t, world.StatusAlive, s.A.Status)
	assert.Equal(t, s.A.MaxHealth, s.A.Health)
	assert.True(t, s.Bound())
}

func TestSceneReviveClampsHealth(t *testing.T) {
	s := newTestScene()
	s.B.Health = 0
	s.Kill(world.SlotB, vmath.V(0, 0))
	s.Revive(world.SlotB, 1000)
	assert.Equal(t, s.B.MaxHealth, s.B.Health)

	s.B.Health = 0
	s.Kill(world.SlotB, vmath.V(0, 0))
	s.Revive(world.SlotB, -4)
	assert.Equal(t, 1, s.B.Health)
}

func TestSceneLifecycleInvariantsPanic(t *testing.T) {
	s := newTestScene()

	assert.Panics(t, func() { s.Revive(world.SlotA, 100) }, "revive of a living player")

	s.Kill(world.SlotA, vmath.V(0, 0))
	assert.Panics(t, func() { s.Kill(world.SlotA, vmath.V(0, 0)) }, "kill of a dead player")

	s.ABody = nil
	assert.Panics(t, func() { s.Revive(world.SlotA, 100) }, "revive without a body")
}

func TestPlayerSlots(t *testing.T) {
	s := newTestScene()
	assert.Equal(t, world.SlotB, world.SlotA.Other())
	assert.Equal(t, world.SlotA, world.SlotB.Other())
	assert.Same(t, &s.A, s.Player(world.SlotA))
	assert.Same(t, &s.B, s.Player(world.SlotB))
	assert.Equal(t, "a", world.SlotA.String())
	assert.Equal(t, "dead", world.StatusDead.String())
	assert.Equal(t, "enemy", world.KindEnemy.String())
}
