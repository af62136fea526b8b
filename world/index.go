package world

import "github.com/kamstrup/intmap"

// enemyIndex maps enemy ids to their slot in Scene.Enemies. It remembers the
// backing array it was built over, so a replaced slice is detected without
// scanning it.
type enemyIndex struct {
	slots *intmap.Map[EntityId, int]
	base  *Character
}

func newEnemyIndex(enemies []Character) enemyIndex {
	idx := enemyIndex{
		slots: intmap.New[EntityId, int](max(len(enemies), 16)),
		base:  firstEnemy(enemies),
	}
	for i := range enemies {
		idx.slots.Put(enemies[i].Id, i)
	}
	return idx
}

func firstEnemy(enemies []Character) *Character {
	if len(enemies) == 0 {
		return nil
	}
	return &enemies[0]
}

// valid reports whether idx was built over this backing array and length.
func (idx *enemyIndex) valid(enemies []Character) bool {
	return idx.slots != nil && idx.slots.Len() == len(enemies) && idx.base == firstEnemy(enemies)
}

// appended records the last element of enemies, which grew by one.
func (idx *enemyIndex) appended(enemies []Character) {
	last := len(enemies) - 1
	idx.slots.Put(enemies[last].Id, last)
	idx.base = firstEnemy(enemies)
}

// lookup returns the slot of id. stale is set when the stored slot no longer
// holds id, i.e. the slice was rewritten in place.
func (idx *enemyIndex) lookup(enemies []Character, id EntityId) (slot int, ok, stale bool) {
	slot, ok = idx.slots.Get(id)
	if !ok {
		return 0, false, false
	}
	if slot >= len(enemies) || enemies[slot].Id != id {
		return 0, false, true
	}
	return slot, true, false
}
