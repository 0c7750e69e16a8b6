package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/bank"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/prompt"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/session"
)

// State is the Controller's position in the menu loop.
type State int

const (
	StateMenu State = iota
	StateRunningSingleTest
	StateRunningAllTests
	StateExiting
)

// String returns a short name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateRunningSingleTest:
		return "running_single_test"
	case StateRunningAllTests:
		return "running_all_tests"
	case StateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Controller runs the main menu loop until the user exits.
type Controller struct {
	catalog *bank.Catalog
	ui      UI
	runner  *Runner
	logger  *slog.Logger
	state   State
}

// NewController creates a Controller over the catalog. A nil logger discards
// all records.
func NewController(catalog *bank.Catalog, ui UI, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		catalog: catalog,
		ui:      ui,
		runner:  NewRunner(ui, logger),
		logger:  logger,
		state:   StateMenu,
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Run shows the menu, dispatches the user's choice and repeats until the
// user picks Exit or input is interrupted. Both end with the farewell and a
// nil error. Any other error is unrecoverable and returned as is.
func (c *Controller) Run(ctx context.Context) error {
	tests := c.catalog.Tests()
	allOption := len(tests) + 1
	exitOption := len(tests) + 2

	for {
		c.transition(StateMenu)
		c.ui.Menu(tests)

		raw, err := c.ui.ReadLine(ctx, MenuPrompt(exitOption))
		if err != nil {
			return c.exit(err)
		}

		choice, err := prompt.ParseChoice(raw, 1, exitOption)
		if err != nil {
			c.logger.Info("invalid menu selection", "input", raw, "err", err)
			c.ui.InputError(err)
			if err := c.ui.Pause(ctx, PromptContinue); err != nil {
				return c.exit(err)
			}
			continue
		}

		switch choice {
		case exitOption:
			return c.exit(nil)
		case allOption:
			c.transition(StateRunningAllTests)
			if err := c.runAll(ctx, tests); err != nil {
				return c.exit(err)
			}
		default:
			test, err := c.catalog.ByNumber(choice)
			if err != nil {
				return c.exit(err)
			}
			c.transition(StateRunningSingleTest)
			if _, err := c.runner.RunTest(ctx, test); err != nil {
				return c.exit(err)
			}
		}
	}
}

// runAll runs every test in catalog order, then shows the aggregate.
func (c *Controller) runAll(ctx context.Context, tests []bank.Test) error {
	var progress session.Progress
	for _, t := range tests {
		res, err := c.runner.RunTest(ctx, t)
		if err != nil {
			return err
		}
		progress.Record(t, res)
	}

	outcome, err := progress.Outcome()
	if err != nil {
		return fmt.Errorf("grade all tests: %w", err)
	}
	total := progress.Total()
	c.logger.Info("all tests finished",
		"score", total.Score,
		"total", total.Total,
		"grade", outcome.Letter,
		"passed", outcome.Passed,
	)

	c.ui.Aggregate(&progress, outcome)
	return c.ui.Pause(ctx, PromptMenu)
}

// exit moves to StateExiting. A nil error or an interruption shows the
// farewell and yields nil.
func (c *Controller) exit(err error) error {
	from := c.state
	c.transition(StateExiting)

	switch {
	case err == nil:
		c.ui.Farewell(FarewellExit)
		return nil
	case errors.Is(err, errAnswerAborted):
		c.logger.Info("quiz interrupted", "state", from, "at", "answer")
		c.ui.Farewell(FarewellAborted)
		return nil
	case prompt.Interrupted(err):
		c.logger.Info("quiz interrupted", "state", from)
		c.ui.Farewell(FarewellInterrupted)
		return nil
	default:
		return err
	}
}

func (c *Controller) transition(to State) {
	if c.state == to {
		return
	}
	c.logger.Debug("state transition", "from", c.state, "to", to)
	c.state = to
}
