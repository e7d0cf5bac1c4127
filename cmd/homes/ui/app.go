package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"homefinder/internal/listings"
	"homefinder/internal/logging"
)

// Options configures the browser.
type Options struct {
	Theme          string // auto, light, dark
	SearchDebounce time.Duration
	AltScreen      bool
	// StartListingID opens a detail page right away when set.
	StartListingID string
	Logger         *zap.Logger
}

// stateChangedMsg is delivered when the container publishes new state.
type stateChangedMsg struct{}

// Model is the root bubbletea model: a navigator over the list and detail
// pages, fed by the listings container.
type Model struct {
	ctx       context.Context
	container *listings.Container
	logger    *zap.Logger
	opts      Options

	nav    *Navigator
	list   ListPage
	detail DetailPage
	help   help.Model
	keys   KeyMap
	styles Styles

	status string
}

// NewModel builds the browser over c. ctx bounds the change subscription.
func NewModel(ctx context.Context, c *listings.Container, opts Options) Model {
	styles := NewStyles(ThemeFor(opts.Theme))
	keys := DefaultKeyMap()

	debounce := NewQueryDebouncer(opts.SearchDebounce, c.SetSearchQuery)

	h := help.New()
	h.Styles.ShortKey = styles.Muted.Bold(true)
	h.Styles.ShortDesc = styles.Muted

	return Model{
		ctx:       ctx,
		container: c,
		logger:    logging.For(opts.Logger, logging.CategoryUI),
		opts:      opts,
		nav:       NewNavigator(),
		list:      NewListPage(c, styles, keys, debounce),
		detail:    NewDetailPage(styles, keys),
		help:      h,
		keys:      keys,
		styles:    styles,
	}
}

// Init subscribes to container changes and starts the spinner.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		waitForChange(m.ctx, m.container.Changes()),
		m.list.spinner.Tick,
	}
	if id := m.opts.StartListingID; id != "" {
		cmds = append(cmds, func() tea.Msg { return openListingMsg{id: id} })
	}
	return tea.Batch(cmds...)
}

// waitForChange turns one container notification into a message.
func waitForChange(ctx context.Context, changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-changes:
			return stateChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		m.detail.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case stateChangedMsg:
		m.list.SetSnapshot(m.container.Snapshot())
		return m, waitForChange(m.ctx, m.container.Changes())

	case openListingMsg:
		m.open(msg.id)
		return m, nil

	case backMsg:
		m.nav.Back()
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		// While typing a query, q and ? are text.
		if m.onDetail() || !m.list.Searching() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
		}
		m.status = ""
	}

	var cmd tea.Cmd
	if m.onDetail() {
		m.detail, cmd = m.detail.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

// open resolves a detail route. Unknown ids go back to the list with a
// status line.
func (m *Model) open(id string) {
	route, err := m.nav.Push(ListingRoute(id))
	if err != nil {
		m.status = err.Error()
		m.logger.Warn("bad route", zap.String("id", id), zap.Error(err))
		return
	}

	l, ok := m.container.GetListingByID(route.ListingID)
	if !ok {
		m.nav.Back()
		m.status = fmt.Sprintf("Listing %q not found", id)
		m.logger.Warn("listing not found", zap.String("id", id))
		return
	}

	m.detail.Show(l)
	m.status = ""
	m.logger.Debug("opened listing", zap.String("id", id))
}

func (m Model) onDetail() bool {
	return m.nav.Current().IsDetail()
}

// Route returns the current route.
func (m Model) Route() Route { return m.nav.Current() }

// Status returns the app-level status line.
func (m Model) Status() string { return m.status }

// View renders the current page.
func (m Model) View() string {
	var page string
	if m.onDetail() {
		page = m.detail.View()
	} else {
		page = m.list.View()
	}

	parts := []string{page}
	if m.status != "" {
		parts = append(parts, m.styles.Footer.Render(m.styles.Warning.Render(m.status)))
	}
	parts = append(parts, m.styles.Footer.Render(m.help.View(m.keys.ForDetail(m.onDetail()))))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Run starts the browser and blocks until the user quits or ctx is done.
func Run(ctx context.Context, c *listings.Container, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewModel(ctx, c, opts)
	defer m.list.debouncer.Cancel()

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(m, progOpts...).Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
