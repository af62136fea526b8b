package world_test

import (
	"testing"

	"github.com/plus3/tethered/vmath"
	"github.com/plus3/tethered/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoTicks returns a previous and a current scene that differ the way one
// fixed step would make them differ, plus an enemy spawned by that step.
func twoTicks() (prev world.Scene, curr *world.Scene, spawned world.EntityId) {
	curr = newTestScene()
	curr.Spawn(newEnemy(0, 0))
	curr.Spawn(newEnemy(50, 50))
	curr.Score = 1

	prev = curr.Clone()

	curr.A.Pos = curr.A.Pos.Add(vmath.V(0.3, -0.7))
	curr.B.Pos = curr.B.Pos.Add(vmath.V(-1.1, 0.9))
	curr.Enemies[0].Pos = vmath.V(0.1, 0.2)
	curr.Enemies[1].Pos = vmath.V(49.9, 50.3)
	curr.Score = 1.125
	spawned = curr.Spawn(newEnemy(3000, 3000))
	return prev, curr, spawned
}

func TestInterpolateBoundaries(t *testing.T) {
	prev, curr, spawned := twoTicks()

	t.Run("alpha 0 yields previous positions", func(t *testing.T) {
		out := world.Interpolate(&prev, curr, 0)
		assert.Equal(t, prev.A.Pos, out.A.Pos)
		assert.Equal(t, prev.B.Pos, out.B.Pos)
		assert.Equal(t, prev.Enemies[0].Pos, out.Enemies[0].Pos)
		assert.Equal(t, prev.Enemies[1].Pos, out.Enemies[1].Pos)
		assert.Equal(t, prev.Score, out.Score)
	})

	t.Run("alpha 1 yields current positions", func(t *testing.T) {
		out := world.Interpolate(&prev, curr, 1)
		assert.Equal(t, curr.A.Pos, out.A.Pos)
		assert.Equal(t, curr.B.Pos, out.B.Pos)
		assert.Equal(t, curr.Enemies[0].Pos, out.Enemies[0].Pos)
		assert.Equal(t, curr.Enemies[1].Pos, out.Enemies[1].Pos)
		assert.Equal(t, curr.Score, out.Score)
	})

	t.Run("new spawns are not interpolated", func(t *testing.T) {
		out := world.Interpolate(&prev, curr, 0.5)
		require.Len(t, out.Enemies, 3)
		assert.Equal(t, spawned, out.Enemies[2].Id)
		assert.Equal(t, vmath.V(3000, 3000), out.Enemies[2].Pos)
	})
}

func TestInterpolateMidpoint(t *testing.T) {
	prev, curr, _ := twoTicks()
	out := world.Interpolate(&prev, curr, 0.5)

	assert.InDelta(t, (prev.A.Pos.X+curr.A.Pos.X)/2, out.A.Pos.X, 1e-9)
	assert.InDelta(t, (prev.A.Pos.Y+curr.A.Pos.Y)/2, out.A.Pos.Y, 1e-9)
	assert.InDelta(t, 0.05, out.Enemies[0].Pos.X, 1e-9)
	assert.InDelta(t, 1.0625, out.Score, 1e-9)

	// non-positional fields come from the current scene
	assert.Equal(t, curr.A.Id, out.A.Id)
	assert.Equal(t, curr.A.Health, out.A.Health)
}

func TestInterpolateMatchesEnemiesById(t *testing.T) {
	prev, curr, _ := twoTicks()

	// reorder the previous scene; matching must not rely on position in the list
	prev.Enemies[0], prev.Enemies[1] = prev.Enemies[1], prev.Enemies[0]

	out := world.Interpolate(&prev, curr, 0)
	assert.Equal(t, vmath.V(0, 0), out.Enemies[0].Pos)
	assert.Equal(t, vmath.V(50, 50), out.Enemies[1].Pos)
}

func TestInterpolateCopiesBodiesVerbatim(t *testing.T) {
	prev, curr, _ := twoTicks()
	curr.A.Health = 0
	curr.Kill(world.SlotA, vmath.V(960, 540))

	out := world.Interpolate(&prev, curr, 0.5)
	require.NotNil(t, out.ABody)
	assert.Equal(t, *curr.ABody, *out.ABody)
	assert.NotSame(t, curr.ABody, out.ABody)
	assert.Nil(t, out.BBody)
}

func TestInterpolateSharesNoMemory(t *testing.T) {
	prev, curr, _ := twoTicks()
	out := world.Interpolate(&prev, curr, 0.5)

	out.Enemies[0].Pos = vmath.V(-9, -9)
	out.A.Pos = vmath.V(-9, -9)

	assert.NotEqual(t, vmath.V(-9, -9), curr.Enemies[0].Pos)
	assert.NotEqual(t, vmath.V(-9, -9), prev.Enemies[0].Pos)
	assert.NotEqual(t, vmath.V(-9, -9), curr.A.Pos)
}
