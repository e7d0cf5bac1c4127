package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"homefinder/internal/format"
	"homefinder/internal/listing"
	"homefinder/internal/listings"
)

// SearchPlaceholder is shown in the empty search box.
const SearchPlaceholder = "Search destination, street..."

// openListingMsg asks the app to navigate to a listing.
type openListingMsg struct{ id string }

// ListPage shows the category tabs, the search bar and the listing cards.
type ListPage struct {
	container *listings.Container
	debouncer *QueryDebouncer
	keys      KeyMap
	styles    Styles
	layout    LayoutConfig

	input   textinput.Model
	spinner spinner.Model

	snap   listings.Snapshot
	cursor int
	offset int
}

// NewListPage creates the list page over c.
func NewListPage(c *listings.Container, styles Styles, keys KeyMap, debounce *QueryDebouncer) ListPage {
	ti := textinput.New()
	ti.Placeholder = SearchPlaceholder
	ti.Prompt = "⌕ "
	ti.CharLimit = 80

	if debounce == nil {
		debounce = NewQueryDebouncer(0, c.SetSearchQuery)
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Spinner))

	p := ListPage{
		container: c,
		debouncer: debounce,
		keys:      keys,
		styles:    styles,
		input:     ti,
		spinner:   sp,
	}
	p.SetSize(0, 0)
	p.SetSnapshot(c.Snapshot())
	return p
}

// SetSize updates the size.
func (p *ListPage) SetSize(w, h int) {
	p.layout = NewLayoutConfig(w, h)
	// One extra cell for the cursor.
	p.input.Width = p.layout.CardWidth() - CardBorderW - CardPaddingH*2 - lipgloss.Width(p.input.Prompt) - 1
	p.clampCursor()
}

// SetSnapshot replaces the rendered state.
func (p *ListPage) SetSnapshot(s listings.Snapshot) {
	criteriaChanged := s.ActiveCategory != p.snap.ActiveCategory || s.SearchQuery != p.snap.SearchQuery
	p.snap = s
	if criteriaChanged {
		p.cursor, p.offset = 0, 0
	}
	p.clampCursor()
}

// Snapshot returns the state being rendered.
func (p ListPage) Snapshot() listings.Snapshot { return p.snap }

// Searching reports whether the search bar has focus.
func (p ListPage) Searching() bool { return p.input.Focused() }

// Selected returns the listing under the cursor.
func (p ListPage) Selected() (listing.Listing, bool) {
	if p.cursor < 0 || p.cursor >= len(p.snap.Listings) {
		return listing.Listing{}, false
	}
	return p.snap.Listings[p.cursor], true
}

// Update handles messages.
func (p ListPage) Update(msg tea.Msg) (ListPage, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		// Tabs work whether or not the search bar has focus.
		switch {
		case key.Matches(msg, p.keys.NextTab) && (!p.Searching() || msg.Type == tea.KeyTab):
			p.selectCategory(p.shiftCategory(1))
			return p, nil
		case key.Matches(msg, p.keys.PrevTab) && (!p.Searching() || msg.Type == tea.KeyShiftTab):
			p.selectCategory(p.shiftCategory(-1))
			return p, nil
		}

		if p.Searching() {
			return p.updateSearch(msg)
		}
		return p.updateBrowse(msg)
	}

	if p.Searching() {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p ListPage) updateSearch(msg tea.KeyMsg) (ListPage, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		p.input.Blur()
		p.debouncer.Flush(p.input.Value())
		p.SetSnapshot(p.container.Snapshot())
		return p, nil
	case tea.KeyEsc:
		if p.input.Value() != "" {
			p.input.SetValue("")
			p.debouncer.Flush("")
		} else {
			p.input.Blur()
		}
		p.SetSnapshot(p.container.Snapshot())
		return p, nil
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if after := p.input.Value(); after != before {
		p.debouncer.Push(after)
		p.SetSnapshot(p.container.Snapshot())
	}
	return p, cmd
}

func (p ListPage) updateBrowse(msg tea.KeyMsg) (ListPage, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Verified):
		p.selectCategory(listing.CategoryVerified)
	case key.Matches(msg, p.keys.NearYou):
		p.selectCategory(listing.CategoryNearYou)
	case key.Matches(msg, p.keys.New):
		p.selectCategory(listing.CategoryNew)

	case key.Matches(msg, p.keys.Search):
		cmd := p.input.Focus()
		return p, cmd

	case key.Matches(msg, p.keys.ClearSearch):
		if p.input.Value() != "" {
			p.input.SetValue("")
			p.debouncer.Flush("")
			p.SetSnapshot(p.container.Snapshot())
		}

	case key.Matches(msg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
		p.clampCursor()
	case key.Matches(msg, p.keys.Down):
		if p.cursor < len(p.snap.Listings)-1 {
			p.cursor++
		}
		p.clampCursor()

	case key.Matches(msg, p.keys.Open):
		if l, ok := p.Selected(); ok {
			id := l.ID
			return p, func() tea.Msg { return openListingMsg{id: id} }
		}

	case key.Matches(msg, p.keys.Refresh):
		p.container.Refresh()
		p.SetSnapshot(p.container.Snapshot())
	}
	return p, nil
}

func (p *ListPage) selectCategory(c listing.Category) {
	p.container.SetActiveCategory(c)
	p.SetSnapshot(p.container.Snapshot())
}

func (p ListPage) shiftCategory(step int) listing.Category {
	cats := listing.Categories()
	idx := 0
	for i, c := range cats {
		if c == p.snap.ActiveCategory {
			idx = i
			break
		}
	}
	idx = (idx + step + len(cats)) % len(cats)
	return cats[idx]
}

// clampCursor keeps the cursor on a row and the row on screen.
func (p *ListPage) clampCursor() {
	n := len(p.snap.Listings)
	if p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}

	perPage := p.layout.CardsPerPage(p.snap.HasError())
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+perPage {
		p.offset = p.cursor - perPage + 1
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

// View renders the page.
func (p ListPage) View() string {
	sections := []string{
		p.styles.Header.Render("Find your home"),
		p.renderSearch(),
		p.renderTabs(),
	}
	if p.snap.HasError() {
		sections = append(sections, p.styles.Banner.Render(p.snap.Error))
	}
	sections = append(sections, p.renderBody(), p.renderStatus())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (p ListPage) renderSearch() string {
	style := p.styles.Search
	if p.Searching() {
		style = p.styles.SearchFocus
	}
	return style.Width(p.layout.CardWidth() - CardBorderW).Render(p.input.View())
}

func (p ListPage) renderTabs() string {
	tabs := make([]string, 0, len(listing.Categories()))
	for _, c := range listing.Categories() {
		style := p.styles.Tab
		if c == p.snap.ActiveCategory {
			style = p.styles.TabActive
		}
		tabs = append(tabs, style.Render(c.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (p ListPage) renderBody() string {
	if len(p.snap.Listings) == 0 {
		if p.snap.IsLoading {
			return p.styles.Content.Render(p.spinner.View() + " Loading...")
		}
		title, hint := format.EmptyState(p.snap.SearchQuery)
		return p.styles.Content.Render(lipgloss.JoinVertical(lipgloss.Left,
			p.styles.Bold.Render(title),
			p.styles.Muted.Render(hint),
		))
	}

	perPage := p.layout.CardsPerPage(p.snap.HasError())
	end := p.offset + perPage
	if end > len(p.snap.Listings) {
		end = len(p.snap.Listings)
	}

	cards := make([]string, 0, end-p.offset)
	for i := p.offset; i < end; i++ {
		cards = append(cards, p.renderCard(p.snap.Listings[i], i == p.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (p ListPage) renderCard(l listing.Listing, selected bool) string {
	w := p.layout.CardContentWidth()

	badge := ""
	if l.Category == listing.CategoryVerified {
		badge = " " + p.styles.Badge.Render(listing.CategoryVerified.Label())
	}
	title := p.styles.Title.Render(truncate(l.Title, w-lipgloss.Width(badge))) + badge
	where := p.styles.Muted.Render(truncate(format.Location(l), w))
	price := p.styles.Price.Render(format.CardPrice(l)) + "  " + p.styles.Muted.Render(format.Rooms(l))

	style := p.styles.Card
	if selected {
		style = p.styles.CardSelected
	}
	return style.Width(p.layout.CardWidth() - CardBorderW).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, where, price),
	)
}

func (p ListPage) renderStatus() string {
	var s string
	switch {
	case p.snap.IsLoading && len(p.snap.Listings) > 0:
		s = p.spinner.View() + " Refreshing..."
	case p.snap.IsLoading:
		s = ""
	default:
		s = fmt.Sprintf("%d of %d listings", len(p.snap.Listings), p.snap.AllCount)
	}
	return p.styles.Footer.Render(s)
}

// truncate shortens s to max cells, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= max {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if lipgloss.Width(b.String()+string(r)) > max-1 {
			break
		}
		b.WriteRune(r)
	}
	return b.String() + "…"
}
