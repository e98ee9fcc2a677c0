package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hersh/blockfall/internal/config"
	"github.com/hersh/blockfall/internal/scores"
	"github.com/hersh/blockfall/internal/tui"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the TUI, so diagnostics go to a file or nowhere.
	if cfg.LogPath != "" {
		f, err := tea.LogToFile(cfg.LogPath, "blockfall")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ledger := scores.NewLedger(cfg.ScoresPath)
	log.Printf("starting: scores=%s seed=%d poll=%s", ledger.Path(), seed, cfg.Poll)

	model := tui.NewModel(
		rand.New(rand.NewSource(seed)),
		ledger,
		cfg.Poll,
	)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
