package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/infra/workspacefinder"
)

type screen int

const (
	screenDays screen = iota
	screenRunning
	screenResult
)

type dayItem struct {
	puzzle domain.Puzzle
}

func (d dayItem) Title() string { return fmt.Sprintf("Day %02d  %s", d.puzzle.Day, d.puzzle.Title) }
func (d dayItem) Description() string {
	n := len(d.puzzle.Parts())
	if n == 1 {
		return "1 part"
	}
	return fmt.Sprintf("%d parts", n)
}
func (d dayItem) FilterValue() string { return d.Title() }

type model struct {
	theme Theme
	deps  Deps

	scr     screen
	days    list.Model
	spinner spinner.Model
	kind    domain.FixtureKind

	workspaceFound bool
	workspaceRoot  string

	running bool
	active  domain.Puzzle
	result  domain.DayResult
	runID   string
	runErr  error
	toast   string
}

func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(dayItems(deps), list.NewDefaultDelegate(), 0, 0)
	l.Title = "Advent of Code 2021"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := model{
		theme:   DefaultTheme(),
		deps:    deps,
		scr:     screenDays,
		days:    l,
		spinner: s,
		kind:    domain.FixtureTest,
	}

	wd, err := os.Getwd()
	if err == nil && deps.WorkspaceLocator != nil {
		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr == nil {
			m.workspaceFound = true
			m.workspaceRoot = root
			m.kind = defaultKind(root)
		}
	}

	return m
}

// defaultKind reads run.default_input, falling back to the worked examples.
func defaultKind(root string) domain.FixtureKind {
	cfg, err := workspacefinder.LoadConfigOrDefault(root)
	if err != nil || cfg.Run.DefaultInput == "" {
		return domain.FixtureTest
	}
	return cfg.Run.DefaultInput
}

func dayItems(deps Deps) []list.Item {
	if deps.Catalog == nil {
		return nil
	}
	var items []list.Item
	for _, p := range deps.Catalog.All() {
		items = append(items, dayItem{puzzle: p})
	}
	return items
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.days.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		if msg.found {
			m.kind = defaultKind(msg.root)
		}
		if msg.err != nil && !msg.found {
			m.toast = userMessage(msg.err)
		}
		m.days.SetItems(dayItems(m.deps))
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace created at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case runnerDoneMsg:
		m.running = false
		m.result = msg.result
		m.runID = msg.id
		m.runErr = msg.err
		m.scr = screenResult
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenDays && m.days.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenDays {
				return m, tea.Quit
			}
			if !m.running {
				m.scr = screenDays
			}
			return m, nil

		case "i":
			if m.scr == screenDays {
				m.kind = otherKind(m.kind)
				m.toast = ""
				return m, nil
			}

		case "n":
			if m.scr == screenDays && !m.workspaceFound {
				wd, err := os.Getwd()
				if err != nil {
					m.toast = userMessage(err)
					return m, nil
				}
				return m, cmdInitWorkspaceHere(m.deps, wd)
			}

		case "enter":
			if m.scr != screenDays {
				return m, nil
			}
			it, ok := m.days.SelectedItem().(dayItem)
			if !ok {
				return m, nil
			}
			if !m.workspaceFound {
				m.toast = "No workspace found (press n to create one here)"
				return m, nil
			}
			m.active = it.puzzle
			m.running = true
			m.toast = ""
			m.scr = screenRunning
			return m, tea.Batch(m.spinner.Tick, cmdRunDay(m.deps, m.workspaceRoot, it.puzzle.Day, m.kind))

		case "esc", "b":
			if m.scr == screenResult {
				m.scr = screenDays
				return m, nil
			}
		}
	}

	if m.scr == screenDays {
		var cmd tea.Cmd
		m.days, cmd = m.days.Update(msg)
		return m, cmd
	}
	return m, nil
}

func otherKind(k domain.FixtureKind) domain.FixtureKind {
	if k == domain.FixtureInput {
		return domain.FixtureTest
	}
	return domain.FixtureInput
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("aoc2021") + "\n" +
		m.theme.Subtitle.Render("Advent of Code 2021 solutions") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s • input: %s", m.workspaceRoot, m.kind))
	} else {
		workspaceBanner = m.theme.Card.Render(
			"⚠ No workspace found.\n\nPress n to create one in the current directory.",
		)
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenDays:
		help := m.theme.Help.Render("↑/↓ navigate • enter run • i toggle test/input • / search • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.days.View()) + "\n" + help + toast)

	case screenRunning:
		card := m.theme.Card.Render(fmt.Sprintf("%s Solving %s on %s…", m.spinner.View(), m.active, m.kind))
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + card)

	case screenResult:
		var body strings.Builder
		body.WriteString(m.theme.Title.Render(m.active.String()))
		body.WriteString("\n\n")
		if m.runErr != nil {
			body.WriteString(m.theme.Fail.Render(userMessage(m.runErr)))
			body.WriteString("\n\n")
		}
		if m.result.Day != 0 {
			body.WriteString(renderDayResult(m.theme, m.result))
		}
		if m.runID != "" {
			body.WriteString("\n")
			body.WriteString(m.theme.Help.Render("Saved as " + m.runID))
		}
		body.WriteString("\n\n")
		body.WriteString(m.theme.Help.Render("esc/b back • q home"))
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(body.String()))

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
