package server

import "github.com/rs/zerolog"

// Sound event names the front-end audio layer keys on. Fire-and-forget:
// the draw flow never waits on playback.
const (
	SoundSpin   = "spin"
	SoundReveal = "reveal"
	SoundResult = "result"
)

// Notifier receives sound events from the draw flow.
type Notifier interface {
	Notify(event string)
}

// LogNotifier is the default sink when no audio layer is attached.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) LogNotifier {
	return LogNotifier{log: logger}
}

func (n LogNotifier) Notify(event string) {
	n.log.Debug().Str("sound", event).Msg("sound event")
}
