package main

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func peak(pcm []byte, from, to int) int {
	p := 0
	for i := from; i < to; i++ {
		v := int(int16(binary.LittleEndian.Uint16(pcm[i*4:])))
		p = max(p, v, -v)
	}
	return p
}

func TestSynthKick(t *testing.T) {
	pcm := synthKick(sampleRate)
	frames := sampleRate / 2
	require.Len(t, pcm, frames*4, "half a second of 16-bit stereo")

	// both channels carry the same sample
	for i := 0; i < frames; i += 997 {
		assert.Equal(t, pcm[i*4:i*4+2], pcm[i*4+2:i*4+4])
	}

	head := peak(pcm, 0, frames/10)
	tail := peak(pcm, frames-frames/10, frames)
	assert.Greater(t, head, 20000)
	assert.Less(t, tail, head/10, "the kick decays")
}

func TestSynthHat(t *testing.T) {
	pcm := synthHat(sampleRate, "hh")
	frames := sampleRate / 5
	require.Len(t, pcm, frames*4)

	assert.Equal(t, pcm, synthHat(sampleRate, "hh"), "noise is seeded")
	assert.NotEqual(t, pcm, synthHat(sampleRate, "other"))

	head := peak(pcm, 0, frames/10)
	tail := peak(pcm, frames-frames/10, frames)
	assert.Greater(t, head, 0)
	assert.Less(t, tail, head)
}

func TestEncodePCMClamps(t *testing.T) {
	pcm := encodePCM([]float64{2, -2, 0})
	assert.Equal(t, int16(32767), int16(binary.LittleEndian.Uint16(pcm[0:])))
	assert.Equal(t, int16(-32767), int16(binary.LittleEndian.Uint16(pcm[4:])))
	assert.Equal(t, int16(0), int16(binary.LittleEndian.Uint16(pcm[8:])))
}
