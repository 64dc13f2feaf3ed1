package assets

import (
	"bytes"
	"embed"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed *.wav
var assetsFS embed.FS

var audioContext = audio.NewContext(44100)

// AudioContext is the process-wide ebiten audio context. Exactly one may
// exist per process, so everything that plays sound shares this one.
func AudioContext() *audio.Context {
	return audioContext
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(path)
}

// LoadAudioPlayer loads an embedded audio asset and creates an audio player.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	reader := bytes.NewReader(b)
	if strings.HasSuffix(strings.ToLower(path), ".wav") {
		stream, err := wav.DecodeWithSampleRate(audioContext.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", path, err)
		}
		return audioContext.NewPlayer(stream)
	}

	// Fallback for already-decoded PCM assets in Ebiten's native format.
	return audioContext.NewPlayerFromBytes(b), nil
}

// ImpactPlayers loads one player per impact sound name. A missing or
// undecodable file fails the whole load; the sound set ships embedded,
// so that is a build defect, not a runtime condition.
func ImpactPlayers(names []string) (map[string]*audio.Player, error) {
	players := make(map[string]*audio.Player, len(names))
	for _, name := range names {
		player, err := LoadAudioPlayer(name + ".wav")
		if err != nil {
			return nil, fmt.Errorf("load impact sound %q: %w", name, err)
		}
		players[name] = player
	}
	return players, nil
}
