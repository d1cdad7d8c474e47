// slaved runs the ACS slave endpoint on a host-attached serial port.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
	"go.bug.st/serial"

	"github.com/acslink/acs.go/pkg/hal"
	"github.com/acslink/acs.go/pkg/slave"
	"github.com/acslink/acs.go/pkg/wiegand"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		glog.Exitf("configuration: %v", err)
	}

	uid := cfg.UID
	if uid == "" {
		id, err := machineid.ID()
		if err != nil {
			glog.Exitf("no UID configured and machine id unavailable: %v", err)
		}
		uid = strings.ToUpper(id)
	}

	port, err := serial.Open(cfg.Port, &serial.Mode{BaudRate: cfg.Baud})
	if err != nil {
		glog.Exitf("open %s: %v", cfg.Port, err)
	}

	runner := slave.NewRunner().HandleSignals()

	pump := newSerialPump(port)
	runner.Go(pump)

	var reader wiegand.Source
	if cfg.SimReads != "" {
		f, err := os.Open(cfg.SimReads)
		if err != nil {
			glog.Exitf("open sim reads: %v", err)
		}
		sim := newSimReader(f)
		reader = sim
		runner.Go(sim)
	}

	store := hal.NewFileStore(cfg.StorePath, slave.AddressStoreCells)
	gpio := hal.NewLogGPIO()
	pins := slave.FeedbackPins{
		Green:  hal.Pin(cfg.Pins.Green),
		Red:    hal.Pin(cfg.Pins.Red),
		Buzzer: hal.Pin(cfg.Pins.Buzzer),
	}

	runner.Go(slave.RunFunc(func(ctx context.Context) error {
		for {
			dev := slave.NewDevice(slave.Config{
				UID:               uid,
				Reader:            reader,
				Input:             pump,
				Output:            port,
				Store:             store,
				GPIO:              gpio,
				Pins:              pins,
				Inputs:            inputPins(cfg.Pins),
				HeartbeatInterval: time.Duration(cfg.HeartbeatSeconds) * time.Second,
				StepInterval:      time.Duration(cfg.StepMillis) * time.Millisecond,
			})
			err := dev.Run(ctx)
			if errors.Is(err, slave.ErrRestartRequested) {
				glog.Info("rebuilding device state")
				continue
			}
			return err
		}
	}))

	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
}

// inputPins builds the monitored door inputs from the pin
// configuration. Unreadable pins fall back to their released levels,
// high for the active-low REX button and low for a closed door.
func inputPins(pins PinConfig) slave.InputPins {
	var in slave.InputPins
	if pins.REX != 0 {
		in.REX = hal.NewSysfsPin(hal.Pin(pins.REX), true)
	}
	if pins.Contact != 0 {
		in.Contact = hal.NewSysfsPin(hal.Pin(pins.Contact), false)
	}
	return in
}
