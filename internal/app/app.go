package app

import (
	"errors"
	"fmt"

	"github.com/budgr/budgr/internal/ledger"
	"github.com/budgr/budgr/internal/logging/events"
	"github.com/budgr/budgr/internal/storage"
	"github.com/budgr/budgr/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-multierror"
)

// Config describes user-provided application options.
type Config struct {
	DataDir    string
	Backend    storage.Kind
	NewLogs    []string
	Width      int
	Height     int
	ShowFooter bool
}

// Runner executes the Bubble Tea program for model until it quits.
type Runner func(tea.Model) error

// Run bootstraps and executes the Bubble Tea program, then saves every log.
func Run(cfg Config) error {
	return run(cfg, runProgram)
}

func runProgram(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func run(cfg Config, runner Runner) (err error) {
	backend, err := storage.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := backend.Close(); cerr != nil {
			err = multierror.Append(err, fmt.Errorf("close storage: %w", cerr))
		}
	}()

	book := ledger.NewBook(backend)
	if err := book.Load(); err != nil {
		return err
	}
	if err := createLogs(book, cfg.NewLogs); err != nil {
		return err
	}

	model := ui.NewModel(book, cfg.Width, cfg.Height, cfg.ShowFooter)
	var result *multierror.Error
	runErr := runner(model)
	events.App.Exit(model.Screen().Name(), runErr)
	if runErr != nil {
		result = multierror.Append(result, fmt.Errorf("run program: %w", runErr))
	}
	persistErr := book.Persist()
	events.App.Persist(len(book.Logs()), persistErr)
	if persistErr != nil {
		result = multierror.Append(result, persistErr)
	}
	return result.ErrorOrNil()
}

// createLogs adds the named logs, skipping any that already exist.
func createLogs(book *ledger.Book, names []string) error {
	for _, name := range names {
		if _, err := book.NewLog(name); err != nil {
			if errors.Is(err, ledger.ErrLogExists) {
				continue
			}
			return fmt.Errorf("create log: %w", err)
		}
	}
	return nil
}
