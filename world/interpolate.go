package world

import "github.com/plus3/tethered/vmath"

// Interpolate blends two consecutive authoritative scenes for presentation.
//
// Player and enemy positions and the score are interpolated linearly by
// alpha. Enemies are matched to prev by Id; an enemy missing from prev was
// spawned by the latest tick and is used as-is. Bodies are copied from curr.
// The result shares no memory with either input.
func Interpolate(prev, curr *Scene, alpha float64) Scene {
	out := Scene{
		A:      lerpCharacter(&prev.A, &curr.A, alpha),
		B:      lerpCharacter(&prev.B, &curr.B, alpha),
		ABody:  cloneBody(curr.ABody),
		BBody:  cloneBody(curr.BBody),
		Score:  vmath.Lerp(prev.Score, curr.Score, alpha),
		serial: curr.serial,
	}

	if curr.Enemies != nil {
		out.Enemies = make([]Character, len(curr.Enemies))
		for i := range curr.Enemies {
			e := curr.Enemies[i]
			if slot, ok := prev.enemySlot(e.Id); ok {
				e.Pos = prev.Enemies[slot].Pos.Lerp(e.Pos, alpha)
			}
			out.Enemies[i] = e
		}
	}
	out.index = newEnemyIndex(out.Enemies)
	return out
}

func lerpCharacter(prev, curr *Character, alpha float64) Character {
	c := *curr
	c.Pos = prev.Pos.Lerp(curr.Pos, alpha)
	return c
}
