package hal

import (
	"fmt"
	"os"
)

// SysfsPin reads a digital input through the Linux sysfs GPIO
// interface (/sys/class/gpio/gpioN/value).
type SysfsPin struct {
	path string
	idle bool
}

// NewSysfsPin creates a SysfsPin for GPIO number pin. idle is the
// level reported while the value file cannot be read, so an
// unexported or missing pin never looks like an active input.
func NewSysfsPin(pin Pin, idle bool) *SysfsPin {
	return &SysfsPin{
		path: fmt.Sprintf("/sys/class/gpio/gpio%d/value", pin),
		idle: idle,
	}
}

// Get implements InputPin.
func (p *SysfsPin) Get() bool {
	data, err := os.ReadFile(p.path)
	if err != nil || len(data) == 0 {
		return p.idle
	}
	return data[0] == '1'
}
