package loop

import (
	"github.com/tomz197/tankfall/internal/game"
	"github.com/tomz197/tankfall/internal/input"
)

// keyIntents turns held-key snapshots into press and release intents.
// It implements game.IntentSource.
type keyIntents struct {
	prev    input.Input
	pending []game.Intent
}

var _ game.IntentSource = (*keyIntents)(nil)

// observe compares cur with the previous frame and queues the edges.
func (k *keyIntents) observe(cur input.Input) {
	k.pending = edge(k.pending, k.prev.Left, cur.Left, game.IntentMoveLeft, game.IntentMoveLeftRelease)
	k.pending = edge(k.pending, k.prev.Right, cur.Right, game.IntentMoveRight, game.IntentMoveRightRelease)
	k.pending = edge(k.pending, k.prev.Space, cur.Space, game.IntentFire, game.IntentFireRelease)
	k.prev = cur
}

// Intents returns the queued intents and empties the queue. The caller owns
// the returned slice.
func (k *keyIntents) Intents() []game.Intent {
	out := k.pending
	k.pending = nil
	return out
}

// reset forgets held keys and queued intents.
func (k *keyIntents) reset() {
	k.prev = input.Input{}
	k.pending = nil
}

func edge(dst []game.Intent, was, is bool, press, release game.Intent) []game.Intent {
	switch {
	case is && !was:
		return append(dst, press)
	case was && !is:
		return append(dst, release)
	}
	return dst
}
