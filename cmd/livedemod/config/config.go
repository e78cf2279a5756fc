// Package config loads the live capture device/demodulator settings
// from a YAML file, the same shape the rest of this codebase's cmd/
// entry points use.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"quadra/internal/audio"
	"quadra/internal/demod"
	"quadra/pkg/device"
)

// Config is the on-disk shape of config.yml.
type Config struct {
	Device struct {
		DeviceName string  `yaml:"device_name"`
		SampleRate float64 `yaml:"sample_rate"`
		InChannel  int     `yaml:"in_channel"`
		OutChannel int     `yaml:"out_channel"`
	} `yaml:"device"`

	Demodulator struct {
		SymbolRate int `yaml:"symbol_rate"`
	} `yaml:"demodulator"`
}

// Load reads and parses filename.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// NewDevice builds the ASIO device this config describes.
func (c *Config) NewDevice() device.Device {
	return &device.ASIODevice{
		DeviceName: c.Device.DeviceName,
		SampleRate: c.Device.SampleRate,
		InChannel:  c.Device.InChannel,
		OutChannel: c.Device.OutChannel,
	}
}

// NewReceiver builds a demodulator matched to this config's sample
// rate and symbol rate, wrapped in the audio callback that feeds it
// from a device's input buffer.
func (c *Config) NewReceiver() (*audio.Receiver, error) {
	d, err := demod.New(int(c.Device.SampleRate), c.Demodulator.SymbolRate)
	if err != nil {
		return nil, err
	}
	return &audio.Receiver{Demod: d}, nil
}
