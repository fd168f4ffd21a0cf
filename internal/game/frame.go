package game

import "time"

// IntentSource supplies the intents gathered since the last frame.
type IntentSource interface {
	Intents() []Intent
}

// Renderer draws a snapshot. Each snapshot is a fresh copy owned by the
// renderer.
type Renderer interface {
	Render(snap Snapshot) error
}

// Frame runs one host frame: apply intents, update, then render the result
// together with the events the update produced.
func Frame(s *Session, src IntentSource, delta time.Duration, r Renderer) error {
	if src != nil {
		for _, in := range src.Intents() {
			s.HandleIntent(in)
		}
	}
	s.Update(delta)

	snap := s.Snapshot()
	snap.Events = s.DrainEvents()
	if r == nil {
		return nil
	}
	return r.Render(snap)
}
