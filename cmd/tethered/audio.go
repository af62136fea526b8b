package main

import (
	"encoding/binary"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/plus3/tethered/sim"
	"github.com/plus3/tethered/vmath"
)

const (
	sampleRate = 48000

	kickDuration = 500 * time.Millisecond
	kickFrom     = 150.0
	kickTo       = 0.01

	hatDuration = 200 * time.Millisecond
	hatHighPass = 400.0
	hatLowPass  = 9000.0

	tempo = 120 // beats per minute of the hi-hat pulse
)

// synthKick renders a sine whose pitch and gain fall exponentially, as
// 16-bit little-endian stereo PCM.
func synthKick(rate int) []byte {
	n := int(kickDuration.Seconds() * float64(rate))
	samples := make([]float64, n)

	phase := 0.0
	for i := range samples {
		t := float64(i) / float64(n)
		freq := kickFrom * math.Pow(kickTo/kickFrom, t)
		gain := math.Pow(0.01, t)
		samples[i] = math.Sin(phase) * gain
		phase += vmath.Tau * freq / float64(rate)
	}
	return encodePCM(samples)
}

// synthHat renders band-limited noise with a fast exponential decay.
func synthHat(rate int, seed string) []byte {
	n := int(hatDuration.Seconds() * float64(rate))
	samples := make([]float64, n)
	rng := vmath.NewRand(seed)

	dt := 1 / float64(rate)
	hpRC := 1 / (vmath.Tau * hatHighPass)
	lpRC := 1 / (vmath.Tau * hatLowPass)
	hpA := hpRC / (hpRC + dt)
	lpA := dt / (lpRC + dt)

	var prevIn, hp, lp float64
	for i := range samples {
		t := float64(i) / float64(n)
		in := rng.Range(-1, 1) * 0.5 * math.Pow(0.001/0.5, t)

		hp = hpA * (hp + in - prevIn)
		prevIn = in
		lp += lpA * (hp - lp)
		samples[i] = lp
	}
	return encodePCM(samples)
}

func encodePCM(samples []float64) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := int16(vmath.Clamp(s, -1, 1) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}

// Audio plays the one-shot effects and a steady hi-hat pulse. It implements
// loop.Audio and sim.EventSink.
type Audio struct {
	kick *audio.Player
	hat  *audio.Player

	volume   float64
	previous float64

	start time.Time
	beat  int64
}

func newAudio(ctx *audio.Context, muted bool) *Audio {
	a := &Audio{
		kick:   ctx.NewPlayerFromBytes(synthKick(ctx.SampleRate())),
		hat:    ctx.NewPlayerFromBytes(synthHat(ctx.SampleRate(), "hh")),
		volume: 1,
	}
	if muted {
		a.ToggleMute()
	}
	return a
}

// Tick advances the pulse on wall-clock time, independent of the fixed step.
func (a *Audio) Tick() {
	now := time.Now()
	if a.start.IsZero() {
		a.start = now
		return
	}
	beat := int64(now.Sub(a.start).Minutes() * tempo)
	if beat > a.beat {
		a.beat = beat
		a.play(a.hat, 0.3)
	}
}

// ToggleMute silences every player, restoring the previous volume on the
// next call.
func (a *Audio) ToggleMute() {
	if a.volume > 0 {
		a.previous = a.volume
		a.volume = 0
		log.Printf("[Audio] muted")
	} else {
		a.volume = a.previous
		if a.volume == 0 {
			a.volume = 1
		}
		log.Printf("[Audio] unmuted")
	}
	a.kick.SetVolume(a.volume)
	a.hat.SetVolume(a.volume)
}

// HandleEvent maps simulation events to effects.
func (a *Audio) HandleEvent(e sim.Event) {
	switch e.Kind {
	case sim.EnemySpawned, sim.PlayerDied, sim.BothDead:
		a.play(a.kick, 1)
	case sim.PlayerRespawned:
		a.play(a.hat, 1)
	}
}

func (a *Audio) play(player *audio.Player, gain float64) {
	if a.volume == 0 {
		return
	}
	player.SetVolume(a.volume * gain)
	if err := player.Rewind(); err != nil {
		log.Printf("[Audio] Warning: failed to rewind player: %v", err)
	}
	player.Play()
}
