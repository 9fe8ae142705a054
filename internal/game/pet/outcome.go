package pet

// Action identifies one of the four operations on the pet surface.
// The zero value (ActionUnknown) is intentionally invalid.
type Action int

const (
	ActionUnknown Action = iota // zero value; intentionally invalid
	ActionFeed
	ActionPlay
	ActionSleep
	ActionAdvance
)

// String returns the lowercase action name used in logs and journals.
func (a Action) String() string {
	switch a {
	case ActionFeed:
		return "feed"
	case ActionPlay:
		return "play"
	case ActionSleep:
		return "sleep"
	case ActionAdvance:
		return "advance"
	default:
		return "unknown"
	}
}

// RejectReason codes why an action was absorbed without effect.
type RejectReason string

const (
	// ReasonAsleep rejects feeding a sleeping pet.
	ReasonAsleep RejectReason = "asleep"
	// ReasonTooHungry rejects playing with a hungry pet.
	ReasonTooHungry RejectReason = "too-hungry-to-play"
	// ReasonCantSleepHungry rejects bedtime for a hungry pet.
	ReasonCantSleepHungry RejectReason = "cant-sleep-hungry"
	// ReasonAlreadyAsleep rejects bedtime for a pet already in it.
	ReasonAlreadyAsleep RejectReason = "already-asleep"
	// ReasonDead rejects everything after death.
	ReasonDead RejectReason = "dead"
)

// Outcome reports what a single action did. Actions never fail with an
// error: an illegal action is absorbed and reported as a rejection with
// the attributes untouched.
type Outcome struct {
	Action  Action
	Applied bool
	// Reason is set only on rejections.
	Reason RejectReason
	// Message is the player-facing flavor line; may be empty.
	Message     string
	StateBefore State
	StateAfter  State
}

// Rejected reports whether the action was absorbed without effect.
func (o Outcome) Rejected() bool { return !o.Applied }

// StateChanged reports whether the action moved the pet to a new state.
func (o Outcome) StateChanged() bool { return o.StateBefore != o.StateAfter }
