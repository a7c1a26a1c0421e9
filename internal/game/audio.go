package game

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const audioSampleRate = 44100

type SoundData struct {
	raw []byte
}

type AudioManager struct {
	ctx  *audio.Context
	bump *SoundData
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

func getAudioContext() *audio.Context {
	// Audio is DISABLED by default. Enable explicitly with DELTATIME_ENABLE_AUDIO=1.
	if os.Getenv("DELTATIME_DISABLE_AUDIO") == "1" {
		return nil
	}
	if os.Getenv("DELTATIME_ENABLE_AUDIO") != "1" {
		return nil
	}
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(audioSampleRate)
	})
	return audioCtx
}

// NewAudioManager builds the manager with a synthesized edge-bump sound.
// There are no sound assets on disk.
func NewAudioManager() *AudioManager {
	return &AudioManager{
		ctx:  getAudioContext(),
		bump: &SoundData{raw: synthThumpWAV(audioSampleRate, 90, 180)},
	}
}

func (am *AudioManager) play(sd *SoundData) {
	if am == nil || am.ctx == nil || sd == nil || len(sd.raw) == 0 {
		return
	}
	// Decode from bytes each time to allow overlapping plays
	stream, err := wav.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(sd.raw))
	if err != nil {
		return
	}
	p, err := am.ctx.NewPlayer(stream)
	if err != nil {
		return
	}
	p.Play()
}

// PlayBump plays the sound for the sprite hitting the screen edge.
func (am *AudioManager) PlayBump() { am.play(am.bump) }

// synthThumpWAV returns a minimal 16-bit PCM mono WAV of a decaying sine thump.
func synthThumpWAV(sampleRate, durationMs int, freq float64) []byte {
	n := sampleRate * durationMs / 1000
	dataSize := n * 2 // mono 16-bit
	var buf bytes.Buffer
	buf.Grow(44 + dataSize)
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVEfmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))           // PCM chunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))            // PCM format
	binary.Write(&buf, binary.LittleEndian, uint16(1))            // channels
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))   // sample rate
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2)) // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))            // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))           // bits per sample
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	amp := 0.25 // keep the volume down
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		decay := 1.0 - float64(i)/float64(n)
		s := math.Sin(2*math.Pi*freq*t) * decay * amp
		binary.Write(&buf, binary.LittleEndian, int16(s*32767))
	}
	return buf.Bytes()
}
