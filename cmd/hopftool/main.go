// hopftool is a headless CLI for inspecting, checking and exporting the
// Hopf fibration meshes the viewers draw.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/hopf-fibration/internal/config"
	"github.com/Faultbox/hopf-fibration/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "check":
		cmdCheck(args)
	case "export":
		cmdExport(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hopftool - Hopf fibration mesh utility

Usage:
  hopftool <command> [options]

Commands:
  info [-yaml]             Show fiber, vertex and triangle counts
  check                    Verify the mesh invariants, exit 1 on failure
  export [-wire] <out.obj> Write the tube mesh as Wavefront OBJ
  config                   Print the effective configuration as YAML

Common options:
  -config <file>   Load settings from a YAML file
  -preset <name>   bands, grid or single
  -major <n>       Samples along each fiber
  -minor <n>       Samples around each tube
  -latitudes <n>   Evenly spaced latitude bands
  -longitudes <n>  Fibers per latitude
  -tube-radius <r> Tube radius
  -debug           Enable debug logging

Examples:
  hopftool info -preset grid
  hopftool check -major 64 -minor 6
  hopftool export -preset single bundle.obj`)
}

// options are the settings every subcommand accepts.
type options struct {
	configPath string
	preset     string
	major      int
	minor      int
	latitudes  int
	longitudes int
	tubeRadius float64
	debug      bool
}

func registerOptions(fs *flag.FlagSet) *options {
	o := &options{}
	fs.StringVar(&o.configPath, "config", "", "Path to config file")
	fs.StringVar(&o.preset, "preset", "", "Fibration preset: bands, grid or single")
	fs.IntVar(&o.major, "major", 0, "Samples along each fiber")
	fs.IntVar(&o.minor, "minor", 0, "Samples around each tube")
	fs.IntVar(&o.latitudes, "latitudes", 0, "Number of evenly spaced latitude bands")
	fs.IntVar(&o.longitudes, "longitudes", 0, "Number of fibers per latitude")
	fs.Float64Var(&o.tubeRadius, "tube-radius", 0, "Tube radius")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	return o
}

// load resolves the config file and flag overrides and starts the logger.
func (o *options) load() (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		cfg, err = config.LoadFile(o.configPath)
		if err != nil {
			return nil, err
		}
	}

	f := &cfg.Fibration
	if o.preset != "" {
		f.Preset = o.preset
	}
	if o.major > 0 {
		f.MajorRes = o.major
	}
	if o.minor > 0 {
		f.MinorRes = o.minor
	}
	if o.latitudes > 0 {
		f.LatitudeBands = o.latitudes
		f.Latitudes = nil
	}
	if o.longitudes > 0 {
		f.LongitudeBands = o.longitudes
	}
	if o.tubeRadius > 0 {
		f.TubeRadius = float32(o.tubeRadius)
	}

	level := "warn"
	if o.debug {
		level = "debug"
	}
	opts := logger.Options{Level: level, Console: true, Stderr: true}
	if cfg.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithOptions(opts); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func mustLoad(fs *flag.FlagSet, o *options, args []string) *config.Config {
	fs.Parse(args)
	cfg, err := o.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	o := registerOptions(fs)
	cfg := mustLoad(fs, o, args)

	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
