// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd/translo)
package config

import (
	"log"

	"github.com/spf13/viper"

	translo "github.com/jvens/translo"
)

// Config is the root-level settings struct and is a mix of settings
// available in translo.yaml and those available from the command line
type Config struct {
	// coordinate of the wall entrance, the crossing threshold
	X1 float64 `mapstructure:"x1"`

	// coordinate of the wall exit
	X2 float64 `mapstructure:"x2"`

	// physical time of one native simulation step, in ns
	Timestep float64 `mapstructure:"timestep"`

	// reference length for displacement normalization, in nm
	RF float64 `mapstructure:"rf"`

	// cartesian axis whose coordinate is tracked (0, 1 or 2)
	Axis int `mapstructure:"axis"`

	// whether to also search subdirectories for dump files
	Descend bool `mapstructure:"descend"`

	// the directory searched for dump files
	Dir string `mapstructure:"dir"`

	// base name of the output plot, without extension
	Out string `mapstructure:"out"`

	// how many files to analyze concurrently
	Cpus int `mapstructure:"cpus"`
}

// New returns a new Config struct populated by
// Viper settings (either from the local translo.yaml)
// and/or command line arguments
func New() Config {
	var c Config

	err := viper.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	return c
}

// Options translates the settings into an analysis Options value. Zero or
// otherwise unusable settings simply leave the corresponding default in
// place, so a half-filled translo.yaml works.
func (c Config) Options() *translo.Options {
	o := translo.DefaultOptions()
	o.X1(c.X1)
	o.X2(c.X2)
	o.Timestep(c.Timestep)
	o.RF(c.RF)
	o.Axis(c.Axis)
	o.Cpus(c.Cpus)
	return o
}
