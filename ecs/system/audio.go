package system

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/kwheeler/ballpit/common"
)

// minVolume keeps resting-contact impacts audible; intensity 0 still
// plays at a whisper.
const minVolume = 0.05

// AudioSink plays collision sounds through ebiten audio players. Play is
// fire-and-forget: a request for a sound whose player is still busy is
// dropped rather than queued, so the stepping thread never waits.
type AudioSink struct {
	players map[Sound]*audio.Player
}

func NewAudioSink(players map[Sound]*audio.Player) *AudioSink {
	if players == nil {
		players = map[Sound]*audio.Player{}
	}
	return &AudioSink{players: players}
}

func (a *AudioSink) Play(s Sound, intensity float64) {
	player := a.players[s]
	if player == nil || player.IsPlaying() {
		return
	}
	volume := common.Clamp(intensity, minVolume, 1)
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		return
	}
	player.Play()
}
