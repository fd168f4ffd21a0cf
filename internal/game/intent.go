package game

// Intent is an abstract player action. Presses and releases arrive as
// separate intents; holding a key must not repeat its press.
type Intent int

const (
	IntentMoveLeft Intent = iota
	IntentMoveLeftRelease
	IntentMoveRight
	IntentMoveRightRelease
	IntentFire
	IntentFireRelease
)

var intentNames = [...]string{
	IntentMoveLeft:         "move-left",
	IntentMoveLeftRelease:  "move-left-release",
	IntentMoveRight:        "move-right",
	IntentMoveRightRelease: "move-right-release",
	IntentFire:             "fire",
	IntentFireRelease:      "fire-release",
}

func (i Intent) String() string {
	if i < 0 || int(i) >= len(intentNames) {
		return "unknown"
	}
	return intentNames[i]
}

// HandleIntent latches an intent for the next Update. A press only counts
// while its key is unlocked, and locks it until the matching release.
// Fire is only latched while ammunition is available.
func (s *Session) HandleIntent(in Intent) {
	if s.over {
		return
	}

	switch in {
	case IntentMoveLeft:
		if !s.leftLocked {
			s.goLeft = true
			s.goRight = false
			s.leftLocked = true
		}
	case IntentMoveRight:
		if !s.rightLocked {
			s.goRight = true
			s.goLeft = false
			s.rightLocked = true
		}
	case IntentFire:
		if !s.fireLocked && s.ammo > 0 {
			s.wantFire = true
			s.fireLocked = true
		}
	case IntentMoveLeftRelease:
		s.leftLocked = false
	case IntentMoveRightRelease:
		s.rightLocked = false
	case IntentFireRelease:
		s.fireLocked = false
	}
}
