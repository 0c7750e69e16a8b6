// Package app hosts the full-screen terminal front-end.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/bank"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/quiz"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/router"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/screen"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/screens/home"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/screens/welcome"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/layout"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/theme"
)

// Options configures the full-screen front-end.
type Options struct {
	Catalog *bank.Catalog
	Theme   theme.Theme
	Logger  *slog.Logger

	// SkipSplash starts on the main menu instead of the welcome animation.
	SkipSplash bool

	// Out receives the farewell once the program has exited. Nil skips it.
	Out io.Writer
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	theme  theme.Theme
	width  int
	height int

	// interrupted is set when the user quits with Ctrl+C rather than Exit.
	interrupted bool
}

// newAppModel creates an AppModel whose root is the main menu, optionally
// behind the welcome splash.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Theme, opts.Catalog, opts.Logger)
	}

	var initial screen.Screen
	if opts.SkipSplash {
		initial = homeFactory()
	} else {
		initial = welcome.New(opts.Theme, homeFactory)
	}
	return AppModel{
		router: router.New(initial),
		theme:  opts.Theme,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.interrupted = true
			return m, tea.Quit
		}
	}

	// Esc is left to the screens: the quiz asks before abandoning a test.
	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.WindowTitle = layout.AppName
	return v
}

// render draws the header, the active screen and the footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.theme, m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(m.theme, title, status, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(m.theme, footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled. Cancellation is a normal exit.
func Run(ctx context.Context, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !opts.Theme.Styled {
		progOpts = append(progOpts, tea.WithColorProfile(colorprofile.Ascii))
	}

	opts.Logger.Debug("starting full-screen quiz", "tests", opts.Catalog.Len())
	p := tea.NewProgram(newAppModel(opts), progOpts...)
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			opts.Logger.Info("quiz interrupted")
			writeFarewell(opts.Out, opts.Theme, quiz.FarewellInterrupted)
			return nil
		}
		return fmt.Errorf("run program: %w", err)
	}

	kind := quiz.FarewellExit
	if m, ok := final.(AppModel); ok && m.interrupted {
		opts.Logger.Info("quiz interrupted")
		kind = quiz.FarewellInterrupted
	}
	writeFarewell(opts.Out, opts.Theme, kind)
	return nil
}

// writeFarewell prints the goodbye message below the restored terminal.
// Only a normal exit adds the study reminder.
func writeFarewell(w io.Writer, th theme.Theme, kind quiz.Farewell) {
	if w == nil {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, th.Correct.UnsetBold().Render(quiz.ThankYouLine))
	if kind == quiz.FarewellExit {
		fmt.Fprintln(w, th.Info.Render(quiz.StudyLine))
	}
	fmt.Fprintln(w)
}
