package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"

	"gz/internal/config"
	"gz/internal/logger"
	"gz/internal/runner"
	"gz/pkg/color"
)

// Main entry point for the GZ interpreter.
func main() {
	var (
		help       bool
		verbose    bool
		noColor    bool
		cpuProfile bool
		configFile string
		memoryFile string
		entry      string
	)

	flag.BoolVar(&help, "h", false, "Show help")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&noColor, "n", false, "No color")
	flag.BoolVar(&cpuProfile, "p", false, "Write a CPU profile to the current directory")
	flag.StringVar(&configFile, "c", "", "Run options file (YAML)")
	flag.StringVar(&memoryFile, "m", "", "Run memory file (YAML)")
	flag.StringVar(&entry, "e", "", "Entry function (overrides config)")

	flag.Parse()
	args := flag.Args()

	cfg, err := config.Load(configFile)
	if err != nil {
		logger.Init(verbose, noColor)
		log.Fatal("Failed to load config", "file", configFile, "error", err)
	}

	if verbose {
		cfg.Verbose = true
	}
	if noColor {
		cfg.NoColor = true
	}
	if memoryFile != "" {
		cfg.Memory = memoryFile
	}
	if entry != "" {
		cfg.Entry = entry
	}

	logger.Init(cfg.Verbose, cfg.NoColor)
	if help {
		fmt.Printf("Usage: %s [options] <file>\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if cfg.NoColor {
		color.EnableColor(false)
	}

	if len(args) == 0 {
		log.Fatal("No input file provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}

	if cpuProfile {
		defer profile.Start(profile.ProfilePath("."), profile.Quiet).Stop()
	}

	opts := runner.Runner{
		Verbose:    cfg.Verbose,
		NoColor:    cfg.NoColor,
		Entry:      cfg.Entry,
		MaxDepth:   cfg.MaxDepth,
		MaxSteps:   cfg.MaxSteps,
		MemoryFile: cfg.Memory,
		SourceFile: args[0],
	}

	if err := opts.Run(); err != nil {
		log.Fatal("Run failed", "error", err)
	}
}
