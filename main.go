package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/prepdrill/drill"
	"github.com/andareed/prepdrill/logging"
)

var logFile = flag.String("debug", "", "Write Debug Logs to file")

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	timingFlag := flag.Int("timing", 100, "timing percentage: 70, 100, 130, or 0 for untimed")
	countFlag := flag.Int("count", 0, "drill only the first N questions of the deck (0 = all)")
	resumeFlag := flag.String("resume", "", "resume from a saved progress file")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	// Anything below here should NOT run if --version was provided.
	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("prepdrill: Started")

	var m *model
	if *resumeFlag != "" {
		m, err = newModelFromProgress(*resumeFlag)
		if err != nil {
			log.Fatalf("failed to resume %q: %v", *resumeFlag, err)
		}
	} else {
		args := flag.Args()
		if len(args) < 1 {
			fmt.Println("Usage: prepdrill [--debug debug.log] [--timing 70|100|130|0] [--count N] <deck.json|deck.yaml>")
			fmt.Println("       prepdrill --resume progress.json")
			os.Exit(1)
		}
		m, err = newModelFromDeck(args[0], *timingFlag, *countFlag)
		if err != nil {
			log.Fatalf("failed to load %q: %v", args[0], err)
		}
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

// newModelFromDeck starts a fresh drill over the deck file. The session
// clock starts immediately; the time limit follows the drawn count, not the
// full deck size.
func newModelFromDeck(path string, timing, count int) (*model, error) {
	questions, err := drill.LoadDeck(path)
	if err != nil {
		return nil, err
	}
	questions = drill.Draw(questions, count)

	d := drill.New(questions, timing)
	d.Start(time.Now())
	log.Printf("Drill %s: %d questions, limit %ds", d.DrillID, len(questions), d.TimeLimitSeconds)

	m := newModel(d, deckNameFromPath(path), path)
	m.InitialiseUI()
	return m, nil
}

// newModelFromProgress restores a saved session. The timer re-derives
// remaining time from the stored start instant, so time spent away from the
// program still counts.
func newModelFromProgress(path string) (*model, error) {
	m := newModel(nil, "", "")
	// LoadProgress needs the maps in place even when the DTO omits them
	if err := LoadProgress(m, path); err != nil {
		return nil, err
	}
	m.InitialPath = path
	m.InitialiseUI()
	log.Printf("Resumed drill %s at question %d", m.data.dr.DrillID, m.data.current+1)
	return m, nil
}

func deckNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
