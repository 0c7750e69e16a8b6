package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/quiz"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/router"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/screen"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 800 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// chartBars are the column heights of the splash chart, drawn one per phase
// step so the chart rises as the animation plays.
var chartBars = []int{1, 2, 2, 3, 4, 5}

const chartHeight = 5

// trendFrames alternate beside the chart once it is complete.
var trendFrames = []string{"↗", "▲"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home screen.
type WelcomeScreen struct {
	theme        theme.Theme
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(th theme.Theme, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		theme:       th,
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	t := w.theme
	var sections []string

	// Phase 1: the chart rises.
	visible := len(chartBars)
	if w.elapsed < phase1End {
		visible = int(w.elapsed * time.Duration(len(chartBars)) / phase1End)
	}
	chart := renderChart(chartBars[:visible])

	// Phase 2+: trend markers beside the chart.
	if w.elapsed >= phase1End {
		mark := t.Correct.Render(trendFrames[w.tickCount%len(trendFrames)])
		lines := strings.Split(chart, "\n")
		lines[0] += " " + mark
		chart = strings.Join(lines, "\n")
	}
	sections = append(sections, t.Info.Render(chart))

	// Phase 3+: banner, title and credit.
	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(t, width),
			"",
			t.Strong.Render("Economics 1 Quiz Application"),
			t.Subtitle.Render(quiz.Author),
			"",
			t.Hint.Render("press any key to continue"),
		)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderChart draws bars bottom-aligned over a baseline, two columns apart.
func renderChart(bars []int) string {
	var b strings.Builder
	for row := chartHeight; row >= 1; row-- {
		b.WriteString("│")
		for _, h := range bars {
			if h >= row {
				b.WriteString(" █")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("└" + strings.Repeat("──", len(chartBars)))
	return b.String()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
