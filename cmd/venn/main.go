// cmd/venn/main.go
//
// Entry point for venn.
//
// Flow:
// 1. Load the user's config (optional YAML file, defaults otherwise)
// 2. With positional arguments: parse and compare them once, print, exit
// 3. Without arguments: open the log file and run the interactive editor

package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pgold/venn/internal/config"
	"github.com/pgold/venn/internal/logging"
	"github.com/pgold/venn/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default: the user config dir)")
	flag.Parse()

	var cfg config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// One-shot mode: each argument is one raw list, optionally "name=raw".
	if args := flag.Args(); len(args) > 0 {
		os.Exit(runOnce(args, cfg, os.Stdout, os.Stderr))
	}

	// Interactive mode. The log file is best-effort: if it cannot be
	// opened the editor still runs, just without a log.
	logger, err := logging.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer logger.Close()

	p := tea.NewProgram(
		tui.NewApp(cfg, tui.WithLogger(logger)),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", err)
		os.Exit(1)
	}
}
