package game

import (
	"encoding/binary"
	"testing"
)

func TestAudioManagerSilentWhenDisabled(t *testing.T) {
	t.Setenv("DELTATIME_ENABLE_AUDIO", "")
	am := NewAudioManager()
	if am.ctx != nil {
		t.Fatalf("audio context should be nil when audio is not enabled")
	}
	// Must be a safe no-op without a context
	am.PlayBump()
}

func TestSynthThumpWAVWellFormed(t *testing.T) {
	b := synthThumpWAV(audioSampleRate, 90, 180)
	wantSamples := audioSampleRate * 90 / 1000
	if got, want := len(b), 44+wantSamples*2; got != want {
		t.Fatalf("wav length = %d, want %d", got, want)
	}
	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
		t.Fatalf("missing RIFF/WAVE markers: %q %q", b[0:4], b[8:12])
	}
	if rate := binary.LittleEndian.Uint32(b[24:28]); rate != audioSampleRate {
		t.Fatalf("sample rate = %d, want %d", rate, audioSampleRate)
	}
	if size := binary.LittleEndian.Uint32(b[40:44]); size != uint32(wantSamples*2) {
		t.Fatalf("data size = %d, want %d", size, wantSamples*2)
	}
}
