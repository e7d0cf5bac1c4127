package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"homefinder/internal/format"
	"homefinder/internal/listing"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// ContactUnavailable is shown when the contact action is used.
const ContactUnavailable = "Contact feature is not available in this demo."

// backMsg asks the app to return to the previous route.
type backMsg struct{}

// DetailPage shows one listing in a scrollable viewport.
type DetailPage struct {
	keys     KeyMap
	styles   Styles
	layout   LayoutConfig
	viewport viewport.Model

	listing listing.Listing
	content string
	status  string
}

// NewDetailPage creates an empty detail page.
func NewDetailPage(styles Styles, keys KeyMap) DetailPage {
	layout := NewLayoutConfig(0, 0)
	w, h := layout.DetailViewport()
	return DetailPage{
		keys:     keys,
		styles:   styles,
		layout:   layout,
		viewport: viewport.New(w, h),
	}
}

// SetSize updates the size and re-wraps the content.
func (p *DetailPage) SetSize(w, h int) {
	p.layout = NewLayoutConfig(w, h)
	p.viewport.Width, p.viewport.Height = p.layout.DetailViewport()
	if p.listing.ID != "" {
		p.content = p.renderContent()
		p.viewport.SetContent(p.content)
	}
}

// Show loads l into the page and scrolls to the top.
func (p *DetailPage) Show(l listing.Listing) {
	p.listing = l
	p.status = ""
	p.content = p.renderContent()
	p.viewport.SetContent(p.content)
	p.viewport.GotoTop()
}

// Listing returns the listing on display.
func (p DetailPage) Listing() listing.Listing { return p.listing }

// Update handles messages.
func (p DetailPage) Update(msg tea.Msg) (DetailPage, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, p.keys.Back):
			return p, func() tea.Msg { return backMsg{} }

		case key.Matches(msg, p.keys.Contact):
			p.status = p.styles.Warning.Render(ContactUnavailable)
			return p, nil

		case key.Matches(msg, p.keys.Copy):
			addr := format.Location(p.listing)
			if err := clipboardWriteAll(addr); err != nil {
				p.status = p.styles.Error.Render("Failed to copy address")
			} else {
				p.status = p.styles.Success.Render(fmt.Sprintf("Copied %q to clipboard", addr))
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the page.
func (p DetailPage) View() string {
	header := p.styles.Header.Render("← " + p.listing.Title)
	parts := []string{
		header,
		p.styles.RenderDivider(p.viewport.Width),
		p.viewport.View(),
	}
	if p.status != "" {
		parts = append(parts, p.styles.Footer.Render(p.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (p DetailPage) renderContent() string {
	l := p.listing
	width := p.viewport.Width - ContentIndent

	var sb strings.Builder
	line := func(s string) {
		sb.WriteString(s)
		sb.WriteString("\n")
	}

	line(p.styles.Title.Render(l.Title))
	line(p.styles.Price.Render(format.DetailPrice(l)))
	line("")
	line(p.styles.Body.Render(l.Address))
	line(p.styles.Muted.Render(l.City))
	line("")
	line(p.styles.Body.Render(fmt.Sprintf("%d bedrooms • %d bathrooms • %d m²", l.Bedrooms, l.Bathrooms, l.Size)))
	if l.IsVerified {
		line(p.styles.Success.Render("✓ Verified landlord"))
	}
	if l.UnreadMessages > 0 {
		line(p.styles.Info.Render(fmt.Sprintf("%d unread message(s)", l.UnreadMessages)))
	}

	if l.Description != "" {
		line("")
		line(p.styles.Bold.Render("About this place"))
		line(renderMarkdown(l.Description, width, p.styles.Theme.IsDark))
	}

	line("")
	if avail := format.Availability(l); avail != "" {
		line(p.styles.Body.Render(avail))
	}
	if l.LandlordName != "" {
		line(p.styles.Body.Render("Landlord: " + l.LandlordName))
	}
	if l.ImageURL != "" {
		line(p.styles.Muted.Render("Photo: " + l.ImageURL))
	}
	line("")
	line(p.styles.Badge.Render("[c] Contact landlord"))

	return strings.TrimRight(sb.String(), "\n")
}

// renderMarkdown renders a description with glamour, falling back to the raw
// text if the renderer fails.
func renderMarkdown(md string, width int, dark bool) string {
	if width < 20 {
		width = 20
	}
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
