package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PinConfig maps the feedback outputs and monitored inputs to GPIO
// pin numbers. REX and Contact are read through sysfs; 0 leaves the
// input unmonitored.
type PinConfig struct {
	Green   int `yaml:"green"`
	Red     int `yaml:"red"`
	Buzzer  int `yaml:"buzzer"`
	REX     int `yaml:"rex"`
	Contact int `yaml:"contact"`
}

// Config is the daemon configuration.
type Config struct {
	// Port is the serial device connected to the hub.
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
	// StorePath backs the persisted device address.
	StorePath string `yaml:"store_path"`
	// UID overrides the machine-derived device identity.
	UID string `yaml:"uid"`
	// SimReads names an optional FIFO/file supplying simulated card
	// reads, one "CODE" or "CODE:BITS" per line.
	SimReads string    `yaml:"sim_reads"`
	Pins     PinConfig `yaml:"pins"`
	// HeartbeatSeconds overrides the 30s heartbeat interval.
	HeartbeatSeconds int `yaml:"heartbeat_seconds"`
	// StepMillis overrides the 10ms scheduler pass interval.
	StepMillis int `yaml:"step_millis"`
}

func defaultConfig() Config {
	return Config{
		Port:      "/dev/ttyUSB0",
		Baud:      115200,
		StorePath: "acs-addr.dat",
		Pins:      PinConfig{Green: 4, Red: 5, Buzzer: 6, REX: 7, Contact: 8},
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
