// Package hal defines the hardware capability interfaces the device
// core is written against, plus host-side implementations for running
// and testing without real hardware.
package hal

import (
	"sync"

	"github.com/golang/glog"
)

// Pin identifies a GPIO pin number.
type Pin int

// GPIO drives digital output pins.
type GPIO interface {
	Set(pin Pin, high bool)
}

// InputPin reads one digital input level.
type InputPin interface {
	Get() bool
}

// InputFunc is the func form of InputPin.
type InputFunc func() bool

// Get implements InputPin.
func (f InputFunc) Get() bool {
	return f()
}

// LogGPIO is a GPIO that records levels and logs transitions instead
// of driving hardware.
type LogGPIO struct {
	lock   sync.Mutex
	levels map[Pin]bool
}

// NewLogGPIO creates a LogGPIO.
func NewLogGPIO() *LogGPIO {
	return &LogGPIO{levels: make(map[Pin]bool)}
}

// Set implements GPIO.
func (g *LogGPIO) Set(pin Pin, high bool) {
	g.lock.Lock()
	changed := g.levels[pin] != high
	g.levels[pin] = high
	g.lock.Unlock()
	if changed {
		glog.V(1).Infof("gpio %d -> %v", pin, high)
	}
}

// Level reports the last level set on pin.
func (g *LogGPIO) Level(pin Pin) bool {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.levels[pin]
}
