package ui

// Layout constants for the list and detail pages
const (
	// Chrome around the card list: header, search box, tabs, status, help.
	HeaderHeight    = 1
	SearchBoxHeight = 3
	TabBarHeight    = 2
	StatusBarHeight = 1
	HelpPaneHeight  = 1
	BannerHeight    = 1

	// A card is three content lines inside a rounded border.
	CardHeight    = 5
	CardMinWidth  = 36
	CardMaxWidth  = 72
	CardPaddingH  = 1
	CardBorderW   = 2
	ContentIndent = 2

	// Detail page chrome: back header plus footer.
	DetailHeaderHeight = 2
	DetailFooterHeight = 2

	// Fallback size before the first WindowSizeMsg.
	DefaultTerminalWidth  = 80
	DefaultTerminalHeight = 24
	CompactModeWidth      = 60
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	IsCompact      bool
}

// NewLayoutConfig creates a layout configuration for the given terminal size.
// Non-positive sizes fall back to 80x24.
func NewLayoutConfig(width, height int) LayoutConfig {
	if width <= 0 {
		width = DefaultTerminalWidth
	}
	if height <= 0 {
		height = DefaultTerminalHeight
	}
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		IsCompact:      width < CompactModeWidth,
	}
}

// CardWidth returns the outer card width, clamped to a readable range.
func (l LayoutConfig) CardWidth() int {
	w := l.TerminalWidth - ContentIndent
	if w > CardMaxWidth {
		w = CardMaxWidth
	}
	if w < CardMinWidth {
		w = CardMinWidth
	}
	return w
}

// CardContentWidth is the text width inside a card.
func (l LayoutConfig) CardContentWidth() int {
	return l.CardWidth() - CardBorderW - CardPaddingH*2
}

// ListHeight returns the rows left for cards on the list page.
func (l LayoutConfig) ListHeight(withBanner bool) int {
	h := l.TerminalHeight - HeaderHeight - SearchBoxHeight - TabBarHeight - StatusBarHeight - HelpPaneHeight
	if withBanner {
		h -= BannerHeight
	}
	if h < CardHeight {
		h = CardHeight
	}
	return h
}

// CardsPerPage returns how many cards fit on the list page, at least one.
func (l LayoutConfig) CardsPerPage(withBanner bool) int {
	n := l.ListHeight(withBanner) / CardHeight
	if n < 1 {
		n = 1
	}
	return n
}

// DetailViewport returns the viewport size for the detail page.
func (l LayoutConfig) DetailViewport() (width, height int) {
	width = l.TerminalWidth - ContentIndent
	height = l.TerminalHeight - DetailHeaderHeight - DetailFooterHeight - StatusBarHeight
	if height < 1 {
		height = 1
	}
	return width, height
}
