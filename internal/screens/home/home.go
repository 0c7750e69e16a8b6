package home

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/bank"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/router"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/screen"
	sessionscreen "github.com/dimerciabaruani-tech/economics-quiz-app/internal/screens/session"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/session"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/components"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/layout"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/theme"
)

// HomeScreen is the main menu: one entry per test, then "Take All Tests"
// and "Exit".
type HomeScreen struct {
	theme theme.Theme
	menu  components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen listing the tests of catalog.
func New(th theme.Theme, catalog *bank.Catalog, logger *slog.Logger) *HomeScreen {
	start := func(plan *session.Plan) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sessionscreen.New(th, logger, plan)}
			}
		}
	}

	var items []components.MenuItem
	for _, t := range catalog.Tests() {
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("Test %d: %s (%d questions)", t.Number, t.Name, t.Len()),
			Action: start(session.SingleTestPlan(t)),
		})
	}
	items = append(items,
		components.MenuItem{Label: "Take All Tests", Action: start(session.AllTestsPlan(catalog))},
		components.MenuItem{Label: "Exit", Action: func() tea.Cmd { return tea.Quit }},
	)

	return &HomeScreen{
		theme: th,
		menu:  components.NewMenu(th, items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(h.theme, cw, compact),
		renderMenu(h.theme, h.menu.View(), cw),
		renderLegend(h.theme, cw),
	}
	content := strings.Join(sections, "\n\n")

	return components.Frame(h.theme, content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Main Menu"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	keys := h.menu.Keys
	return append(components.Hints(keys.Up, keys.Down, keys.Select),
		layout.KeyHint{Key: fmt.Sprintf("1-%d", len(h.menu.Items)), Description: "Choose"},
		layout.KeyHint{Key: keys.Quit.Help().Key, Description: keys.Quit.Help().Desc},
	)
}
