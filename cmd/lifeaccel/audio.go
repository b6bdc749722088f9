package main

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// titleTheme lists the looped note frequencies in Hz; zero is a rest.
var titleTheme = []float64{
	220, 261.63, 329.63, 440, 329.63, 261.63,
	246.94, 293.66, 369.99, 493.88, 369.99, 0,
}

const titleFramesPerNote = audioSampleRate / 3

// audioContext is the process-wide ebiten audio context. It can only be
// created once.
var audioContext *audio.Context

// titleMusic plays the synthesized title theme. No audio assets ship with
// the repo, so the loop is generated rather than decoded.
type titleMusic struct {
	player *audio.Player
}

func newTitleMusic() (*titleMusic, error) {
	if audioContext == nil {
		audioContext = audio.NewContext(audioSampleRate)
	}
	player, err := audioContext.NewPlayer(&chiptuneStream{})
	if err != nil {
		return nil, fmt.Errorf("creating title music player: %w", err)
	}
	player.SetVolume(0)
	return &titleMusic{player: player}, nil
}

func (m *titleMusic) play() { m.player.Play() }

func (m *titleMusic) setVolume(v float64) { m.player.SetVolume(v) }

func (m *titleMusic) stop() {
	m.player.Pause()
	_ = m.player.Close()
}

// chiptuneStream generates an endless stereo 16-bit PCM rendition of
// titleTheme: a decaying sine voice with a soft third harmonic per note.
// Only the audio goroutine reads from it, so it needs no locking.
type chiptuneStream struct {
	frame int64
}

func (s *chiptuneStream) Read(p []byte) (int, error) {
	// Generate whole stereo frames only (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	for i := 0; i < frameBytes; i += 4 {
		v := int16(s.sample() * 0.3 * 32767)
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
		s.frame++
	}
	return frameBytes, nil
}

func (s *chiptuneStream) sample() float64 {
	note := int(s.frame/titleFramesPerNote) % len(titleTheme)
	freq := titleTheme[note]
	if freq == 0 {
		return 0
	}
	within := float64(s.frame % titleFramesPerNote)
	env := 1 - within/float64(titleFramesPerNote)
	phase := within * freq * 2 * math.Pi / audioSampleRate
	return (math.Sin(phase) + math.Sin(3*phase)/3) * env
}

func (s *chiptuneStream) Close() error { return nil }
