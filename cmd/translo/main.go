// translo sweeps a directory of LAMMPS dump files from polymer translocation
// runs, finds the wall-crossing event of each run, and plots the head, tail
// and front-monomer displacement series of all of them in one figure.
package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	translo "github.com/jvens/translo"
	"github.com/jvens/translo/batch"
	"github.com/jvens/translo/config"
	"github.com/jvens/translo/internal/discover"
	"github.com/jvens/translo/transplot"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "translo",
	Short: "Extract and plot monomer displacement series from translocation dumps",
	Long: `translo analyzes coarse-grained polymer translocation runs recorded as
LAMMPS text dumps (.lammpstrj, optionally gzip or zstd compressed).

For every run it finds the first time any monomer reached the wall entrance
(the --x1 threshold, in the native units of the simulation), anchors the time
axis at that crossing, normalizes displacements by the Flory radius, and
derives the head, tail and front-monomer series. The series of all analyzed
runs end up in a single png figure.

Wall trajectories (files named *w.lammpstrj) are left out of the sweep. Files
too short to analyze, and runs where the polymer never crossed, are skipped
with a note. Settings can also come from a translo.yaml in the working
directory; among others it may set "timestep" and "rf", which have no flag.`,
	Version:      "0.1.0",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.Float64("x1", 0, "coordinate of the wall entrance, the crossing threshold")
	f.Float64("x2", 0, "coordinate of the wall exit")
	f.String("dir", ".", "directory searched for dump files")
	f.Bool("descend", false, "also search subdirectories")
	f.Int("axis", 0, "cartesian axis whose coordinate is tracked: 0, 1 or 2")
	f.Int("cpus", 1, "how many files to analyze concurrently")
	f.String("out", "translocation", "base name of the output plot, without extension")

	// Mark required flags
	rootCmd.MarkFlagRequired("x1")
	rootCmd.MarkFlagRequired("x2")

	// Bind the parameters to viper
	for _, name := range []string{"x1", "x2", "dir", "descend", "axis", "cpus", "out"} {
		viper.BindPFlag(name, f.Lookup(name))
	}
	// These two have no flag, they can only come from translo.yaml
	viper.SetDefault("timestep", translo.Timestep)
	viper.SetDefault("rf", translo.RF)
}

func run(cmd *cobra.Command, args []string) error {
	viper.SetConfigName("translo")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	c := config.New()
	files, err := discover.List(c.Dir, c.Descend)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no trajectory files under %s", c.Dir)
	}
	fmt.Println("Identified files:")
	for _, f := range files {
		fmt.Println(" ", f)
	}
	o := c.Options()
	var results []*translo.Result
	var errs []error
	if c.Cpus > 1 {
		results, errs = batch.AllConc(files, o)
	} else {
		results, errs = batch.All(files, o)
	}
	var kept []*translo.Result
	failed := 0
	for i, res := range results {
		if errs[i] != nil {
			if batch.Critical(errs[i]) {
				log.Printf("%s: %v", files[i], errs[i])
				failed++
			}
			continue
		}
		fmt.Printf("%s: monomer %d crossed at dump %d\n", res.Path, res.FrontID, res.Event.Dump)
		kept = append(kept, res)
	}
	fmt.Printf("%d files, %d crossings, %d skipped, %d failed\n",
		len(files), len(kept), len(files)-len(kept)-failed, failed)
	if len(kept) == 0 {
		return fmt.Errorf("no run produced a crossing, nothing to plot")
	}
	if err := transplot.SeriesPlot(kept, "Translocation", c.Out); err != nil {
		return err
	}
	fmt.Println("Wrote", c.Out+".png")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
