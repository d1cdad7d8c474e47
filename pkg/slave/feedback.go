package slave

import (
	"time"

	"github.com/golang/glog"

	"github.com/acslink/acs.go/pkg/hal"
)

// Outcome selects a feedback pulse sequence.
type Outcome int

// Feedback outcomes.
const (
	Grant Outcome = iota
	Deny
)

// FeedbackPins are the output pins the feedback engine drives.
type FeedbackPins struct {
	Green  hal.Pin
	Red    hal.Pin
	Buzzer hal.Pin
}

type feedbackState int

const (
	feedbackIdle feedbackState = iota
	grantStart
	grantBuzzOff
	denyStart
	denyBuzzOff1
	denyBuzzOn2
	denyBuzzOff2
)

// Feedback is a non-blocking timed state machine driving the grant
// and deny pulse sequences. It advances at most one state per Tick so
// the pulse pattern is preserved even when ticks arrive late.
type Feedback struct {
	gpio hal.GPIO
	pins FeedbackPins

	state   feedbackState
	entered time.Time
}

// NewFeedback creates a Feedback engine in the idle state.
func NewFeedback(gpio hal.GPIO, pins FeedbackPins) *Feedback {
	return &Feedback{gpio: gpio, pins: pins}
}

// Active reports whether a feedback session is running.
func (f *Feedback) Active() bool {
	return f.state != feedbackIdle
}

// Trigger starts a session. Only one session may run at a time; a
// trigger while active is rejected and reports false.
func (f *Feedback) Trigger(outcome Outcome, now time.Time) bool {
	if f.Active() {
		return false
	}
	switch outcome {
	case Grant:
		f.gpio.Set(f.pins.Green, true)
		f.gpio.Set(f.pins.Red, false)
		f.gpio.Set(f.pins.Buzzer, true)
		f.enter(grantStart, now)
	case Deny:
		f.gpio.Set(f.pins.Green, false)
		f.gpio.Set(f.pins.Red, true)
		f.gpio.Set(f.pins.Buzzer, true)
		f.enter(denyStart, now)
	default:
		return false
	}
	return true
}

// Tick advances the state machine when the current state's dwell time
// has elapsed. At most one transition happens per call.
func (f *Feedback) Tick(now time.Time) {
	if f.state == feedbackIdle || now.Sub(f.entered) < f.dwell() {
		return
	}
	switch f.state {
	case grantStart:
		f.gpio.Set(f.pins.Buzzer, false)
		f.enter(grantBuzzOff, now)
	case grantBuzzOff:
		f.gpio.Set(f.pins.Green, false)
		f.enter(feedbackIdle, now)
		glog.V(2).Info("grant feedback finished")
	case denyStart:
		f.gpio.Set(f.pins.Buzzer, false)
		f.enter(denyBuzzOff1, now)
	case denyBuzzOff1:
		f.gpio.Set(f.pins.Buzzer, true)
		f.enter(denyBuzzOn2, now)
	case denyBuzzOn2:
		f.gpio.Set(f.pins.Buzzer, false)
		f.enter(denyBuzzOff2, now)
	case denyBuzzOff2:
		f.gpio.Set(f.pins.Red, false)
		f.enter(feedbackIdle, now)
		glog.V(2).Info("deny feedback finished")
	}
}

func (f *Feedback) enter(state feedbackState, now time.Time) {
	f.state = state
	f.entered = now
}

// dwell returns how long the current state holds before the next
// transition.
func (f *Feedback) dwell() time.Duration {
	switch f.state {
	case grantStart:
		return 250 * time.Millisecond
	case grantBuzzOff:
		return 1500 * time.Millisecond
	case denyStart:
		return 150 * time.Millisecond
	case denyBuzzOff1:
		return 100 * time.Millisecond
	case denyBuzzOn2:
		return 150 * time.Millisecond
	case denyBuzzOff2:
		return 1500 * time.Millisecond
	}
	return 0
}
