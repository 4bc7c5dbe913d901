package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"codeinject/pkg/config"
	"codeinject/pkg/driver"
	"codeinject/pkg/source"
)

func main() {
	// Define flags
	configFlag := flag.String("config", "", "YAML config file")
	engineFlag := flag.String("engine", "", "Token matcher: literal or regexp (overrides config)")
	skipInvalidFlag := flag.Bool("skip-invalid", false, "Keep scanning past zero codes instead of stopping (overrides config)")
	namesFlag := flag.Bool("names", false, "List each code with its character name (overrides config)")
	textFlag := flag.String("text", "", "Text to insert into; the result is printed after all names are processed")
	atFlag := flag.Int("at", -1, "Cursor position in -text, in characters (default: end of text)")
	selectFlag := flag.Int("select", 0, "Select this many characters after the cursor instead of using an insertion point")
	logLevelFlag := flag.String("log-level", "", "Log level: debug, info, warn or error (overrides config)")

	flag.Parse() // Parses the command-line flags

	cfg, err := config.LoadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(64) // Exit code 64: command line usage error
	}

	// Explicitly set flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "engine":
			cfg.Engine = *engineFlag
		case "skip-invalid":
			cfg.SkipInvalid = *skipInvalidFlag
		case "names":
			cfg.Names = *namesFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(64)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	at := *atFlag
	if at < 0 {
		at = len([]rune(*textFlag))
	}
	buf, err := driver.NewBuffer(*textFlag, at)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -at: %v\n", err)
		os.Exit(64)
	}

	var selected any = buf
	if *selectFlag > 0 {
		selected = &driver.Range{Buffer: buf, Start: at, End: at + *selectFlag}
	}

	// Without arguments the script behaves as if it were not started from a
	// file and falls back to the sample name.
	var scripts []*source.ScriptName
	for _, arg := range flag.Args() {
		scripts = append(scripts, source.FromFile(arg))
	}
	if len(scripts) == 0 {
		scripts = append(scripts, nil)
	}

	injector := driver.NewInjector(cfg.ScanOptions(), logger)
	options := driver.RunOptions{ShowNames: cfg.Names}

	ok := true
	for _, script := range scripts {
		host := &driver.StaticHost{Document: true, Selected: []any{selected}, Script: script}
		if script == nil {
			host.ScriptErr = errors.New("no script file given")
		}
		report, errs := injector.Run(host)
		if !injector.DisplayResult(report, errs, options) {
			ok = false
		}
		if len(errs) == 0 {
			logger.Debug("injected", slog.String("script", report.Script.DisplayPath()),
				slog.Int("codes", len(report.Result.Codes)))
		}
	}

	if *textFlag != "" {
		fmt.Println(buf.String())
	}
	if !ok {
		os.Exit(70) // Exit code 70: internal software error
	}
}
