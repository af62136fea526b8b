package main

import (
	"hash"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/plus3/tethered/sim"
	"github.com/plus3/tethered/world"
)

// sceneRecord is the canonical encoding of one authoritative scene. Two runs
// are identical exactly when their record streams are.
type sceneRecord struct {
	Tick    uint64            `msgpack:"tick"`
	A       world.Character   `msgpack:"a"`
	B       world.Character   `msgpack:"b"`
	ABody   *world.Character  `msgpack:"a_body"`
	BBody   *world.Character  `msgpack:"b_body"`
	Enemies []world.Character `msgpack:"enemies"`
	Score   float64           `msgpack:"score"`
}

func newSceneRecord(tick uint64, scene *world.Scene) sceneRecord {
	return sceneRecord{
		Tick:    tick,
		A:       scene.A,
		B:       scene.B,
		ABody:   scene.ABody,
		BBody:   scene.BBody,
		Enemies: scene.Enemies,
		Score:   scene.Score,
	}
}

type eventRecord struct {
	Kind   sim.EventKind  `msgpack:"kind"`
	Tick   uint64         `msgpack:"tick"`
	Entity world.EntityId `msgpack:"entity"`
	Slot   uint8          `msgpack:"slot"`
}

// digest folds a stream of scenes and events into a 64-bit FNV-1a hash of
// their msgpack encoding.
type digest struct {
	h   hash.Hash64
	enc *msgpack.Encoder
}

func newDigest() *digest {
	h := fnv.New64a()
	return &digest{h: h, enc: msgpack.NewEncoder(h)}
}

func (d *digest) scene(tick uint64, scene *world.Scene) error {
	return d.enc.Encode(newSceneRecord(tick, scene))
}

func (d *digest) event(e sim.Event) error {
	return d.enc.Encode(eventRecord{Kind: e.Kind, Tick: e.Tick, Entity: e.Entity, Slot: uint8(e.Slot)})
}

func (d *digest) Sum64() uint64 {
	return d.h.Sum64()
}
