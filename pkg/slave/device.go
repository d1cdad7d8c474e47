package slave

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/golang/glog"

	"github.com/acslink/acs.go/pkg/hal"
	"github.com/acslink/acs.go/pkg/proto"
	"github.com/acslink/acs.go/pkg/wiegand"
)

// ReaderID is the fixed identifier of the single attached reader.
const ReaderID = 1

// readerCount is reported by the identify response.
const readerCount = 1

// Defaults for Config fields left zero.
const (
	DefaultHeartbeatInterval = 30 * time.Second
	DefaultStepInterval      = 10 * time.Millisecond
	DefaultRestartDelay      = time.Second
)

// serialBufferSize bounds the serial input line buffer.
const serialBufferSize = 512

// ErrRestartRequested is returned by Run after a successful
// set_address: the caller must tear the device down and build it
// again so every piece of state reflects the new address.
var ErrRestartRequested = errors.New("restart requested")

// ByteSource supplies bytes already received from the serial link.
// Drain returns whatever is buffered without blocking.
type ByteSource interface {
	Drain() []byte
}

// Clock is the scheduler's time base.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Config wires a Device to its collaborators.
type Config struct {
	// UID is the immutable device identity.
	UID string

	Reader wiegand.Source // optional
	Input  ByteSource     // optional
	Output io.Writer
	Store  hal.ByteStore
	GPIO   hal.GPIO
	Pins   FeedbackPins
	Inputs InputPins // optional

	HeartbeatInterval time.Duration
	StepInterval      time.Duration
	RestartDelay      time.Duration
	Clock             Clock
}

// Device owns all mutable device state and drives it from a single
// cooperative scheduler. Nothing in a Step blocks on I/O.
type Device struct {
	uid       string
	addr      byte
	addrStore *AddressStore

	reader wiegand.Source
	input  ByteSource
	out    io.Writer
	inputs InputPins

	feedback *Feedback
	lines    *lineBuffer

	lastREX     bool
	haveContact bool
	lastContact bool

	lastBeat time.Time
	restart  bool

	hbInterval   time.Duration
	stepInterval time.Duration
	restartDelay time.Duration
	clock        Clock
}

// NewDevice creates a Device and loads the persisted address once.
func NewDevice(cfg Config) *Device {
	if cfg.HeartbeatInterval == 0 {
		cfg.HeartbeatInterval = DefaultHeartbeatInterval
	}
	if cfg.StepInterval == 0 {
		cfg.StepInterval = DefaultStepInterval
	}
	if cfg.RestartDelay == 0 {
		cfg.RestartDelay = DefaultRestartDelay
	}
	if cfg.Clock == nil {
		cfg.Clock = systemClock{}
	}
	d := &Device{
		uid:          cfg.UID,
		addrStore:    NewAddressStore(cfg.Store),
		reader:       cfg.Reader,
		input:        cfg.Input,
		out:          cfg.Output,
		inputs:       cfg.Inputs,
		feedback:     NewFeedback(cfg.GPIO, cfg.Pins),
		lines:        newLineBuffer(serialBufferSize),
		lastREX:      true, // released
		hbInterval:   cfg.HeartbeatInterval,
		stepInterval: cfg.StepInterval,
		restartDelay: cfg.RestartDelay,
		clock:        cfg.Clock,
	}
	d.addr = d.addrStore.Load()
	return d
}

// Addr is the address loaded at construction time.
func (d *Device) Addr() byte {
	return d.addr
}

// RestartRequested reports whether a successful set_address is
// pending a restart.
func (d *Device) RestartRequested() bool {
	return d.restart
}

// Step performs one cooperative scheduler pass: poll the reader,
// drain serial input, sample door inputs, emit a due heartbeat and
// tick the feedback engine. A feedback session started by a command
// in this pass first advances on the next pass's tick.
func (d *Device) Step(now time.Time) {
	d.pollReader()
	if d.input != nil {
		d.lines.Feed(d.input.Drain(), func(line string) {
			d.dispatchLine(line, now)
		})
	}
	d.pollInputs()
	d.heartbeat(now)
	d.feedback.Tick(now)
}

func (d *Device) pollReader() {
	if d.reader == nil {
		return
	}
	code, bits, ok := d.reader.Poll()
	if !ok {
		return
	}
	if !wiegand.ValidParity(code, bits) {
		glog.Warningf("parity check failed: code=%d bits=%d", code, bits)
		if d.addr != Unconfigured {
			d.send(proto.NewEventError(int(d.addr), ReaderID, "parity"))
		}
		return
	}
	if d.addr == Unconfigured {
		glog.V(1).Infof("unconfigured, card read dropped: code=%d bits=%d", code, bits)
		return
	}
	glog.V(1).Infof("card read: code=%d bits=%d", code, bits)
	d.send(proto.NewCardRead(int(d.addr), ReaderID, code, bits))
}

func (d *Device) heartbeat(now time.Time) {
	if d.lastBeat.IsZero() {
		d.lastBeat = now
		return
	}
	if d.addr == Unconfigured || now.Sub(d.lastBeat) < d.hbInterval {
		return
	}
	d.send(proto.NewHeartbeat(int(d.addr)))
	d.lastBeat = now
}

// send frames msg and emits it with a single write.
func (d *Device) send(msg interface{}) {
	frame, err := proto.EncodeMessage(msg)
	if err != nil {
		glog.Errorf("encode message: %v", err)
		return
	}
	if _, err := d.out.Write(frame); err != nil {
		glog.Errorf("serial write: %v", err)
	}
}

// Run implements Runnable. It announces the device, then repeats
// Step at the configured interval until the context is canceled or a
// restart is requested.
func (d *Device) Run(ctx context.Context) error {
	glog.Infof("device %s online, hub address %d", d.uid, d.addr)
	d.send(proto.NewBoot("online", d.uid))
	d.lastBeat = d.clock.Now()

	ticker := time.NewTicker(d.stepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			d.Step(d.clock.Now())
		}
		if d.restart {
			// give the acknowledgement time to leave the wire
			time.Sleep(d.restartDelay)
			glog.Info("address assigned, restarting control flow")
			return ErrRestartRequested
		}
	}
}
