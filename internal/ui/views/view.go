package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"plugdeck/internal/domain"
	"plugdeck/internal/ui/input/types"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	ActiveTab      types.Tab
	Plugins        []*domain.Plugin // filtered, sorted list for the active tab
	TotalInstalled int
	TotalListed    int
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	Scanning       bool
	StatusMessage  string
	SearchQuery    string // raw query as typed
	HighlightText  string // free-text part used for name highlighting
	TextInput      string
	InputMode      string
	SortName       string
	ShowHelp       bool
	ShowDetails    bool
	DetailsContent string
	RequestURL     string
	ShowDownloads  bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	pluginRender *PluginRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showDownloads bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		pluginRender: NewPluginRenderer(styles, showDownloads),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	// Title with scan indicator
	logo := r.styles.Title.Render("plugdeck")

	rightParts := []string{}
	if state.Scanning {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		rightParts = append(rightParts, r.styles.Scan.Render(fmt.Sprintf("%s Scanning", spinner[frame])))
	}
	if state.SearchQuery != "" {
		rightParts = append(rightParts, r.styles.Filter.Render(fmt.Sprintf("[%s]", state.SearchQuery)))
	}
	if state.SortName != "" {
		rightParts = append(rightParts, r.styles.Dim.Render("sort: "+state.SortName))
	}

	content.WriteString(r.alignLine(logo, strings.Join(rightParts, "  "), state.Width))
	content.WriteString("\n")

	// Tabs
	content.WriteString(r.renderTabs(state))
	content.WriteString("\n\n")

	// Active text input (search or sort prompt)
	if state.InputMode != "" {
		content.WriteString(state.TextInput)
		content.WriteString("\n\n")
	}

	// Main content
	mainContent := ""
	switch {
	case state.Scanning && len(state.Plugins) == 0:
		mainContent = r.styles.Dim.Render("Looking for plugins...")
	case len(state.Plugins) == 0 && state.SearchQuery != "":
		mainContent = r.styles.Dim.Render("No plugins match the current query.")
	case len(state.Plugins) == 0:
		mainContent = r.styles.Dim.Render("No plugins found. Press r to rescan.")
	default:
		mainContent = r.renderPluginList(state)
	}
	content.WriteString(mainContent)

	// Status line
	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	} else if state.RequestURL != "" && state.ActiveTab == types.TabMarketplace {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.RequestURL))
	}

	// Help footer pinned to the bottom
	if !state.ShowHelp && !state.ShowDetails {
		helpText := r.styles.Help.Render("Press ? for help")
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		padding := availableLines - currentLines - 1
		if padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString("\n")
		content.WriteString(helpText)
	}

	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content.String())

	if state.ShowDetails && state.DetailsContent != "" {
		return r.popupRender.RenderPopupOverlay(state.DetailsContent, state.Height, state.Width)
	}

	if state.ShowHelp {
		return r.popupRender.RenderPopupOverlay(r.renderHelpContent(), state.Height, state.Width)
	}

	return finalContent
}

// renderTabs renders the Marketplace/Installed tab bar
func (r *Renderer) renderTabs(state ViewState) string {
	market := fmt.Sprintf("Marketplace (%d)", state.TotalListed)
	installed := fmt.Sprintf("Installed (%d)", state.TotalInstalled)

	if state.ActiveTab == types.TabMarketplace {
		market = r.styles.TabActive.Render(market)
		installed = r.styles.TabInactive.Render(installed)
	} else {
		market = r.styles.TabInactive.Render(market)
		installed = r.styles.TabActive.Render(installed)
	}
	return market + " " + installed
}

// renderPluginList renders the visible window of the plugin list
func (r *Renderer) renderPluginList(state ViewState) string {
	var lines []string

	total := len(state.Plugins)
	effectiveHeight := state.ViewportHeight
	if effectiveHeight <= 0 {
		effectiveHeight = 20
	}

	needsTopIndicator := state.ViewportOffset > 0
	needsBottomIndicator := total > state.ViewportOffset+effectiveHeight
	if needsTopIndicator {
		effectiveHeight--
	}
	if needsBottomIndicator {
		effectiveHeight--
	}

	if needsTopIndicator {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", state.ViewportOffset)))
	}

	end := state.ViewportOffset + effectiveHeight
	if end > total {
		end = total
	}
	for i := state.ViewportOffset; i < end; i++ {
		plugin := state.Plugins[i]
		isSelected := i == state.SelectedIndex
		var line string
		if state.ActiveTab == types.TabInstalled {
			line = r.pluginRender.RenderInstalled(plugin, isSelected, state.HighlightText)
		} else {
			line = r.pluginRender.RenderMarketplace(plugin, isSelected, state.HighlightText)
		}
		lines = append(lines, line)
	}

	if needsBottomIndicator {
		itemsBelow := total - end
		if itemsBelow < 0 {
			itemsBelow = 0
		}
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", itemsBelow)))
	}

	return strings.Join(lines, "\n")
}

// alignLine lays out left and right content on a single line
func (r *Renderer) alignLine(left, right string, width int) string {
	if right == "" {
		return left
	}
	if width <= 0 {
		width = 80
	}
	available := width - 4 // main container padding
	padding := available - lipgloss.Width(left) - lipgloss.Width(right)
	if padding > 0 {
		return left + strings.Repeat(" ", padding) + right
	}
	return left + "  " + right
}

// renderHelpContent renders the short in-app help popup
func (r *Renderer) renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("plugdeck Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Move up/down")))
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render("PgUp/PgDn"), descStyle.Render("Page up/down")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("gg/G"), descStyle.Render("Go to top/bottom")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Tab, 1/2"), descStyle.Render("Switch tabs")))

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("/"), descStyle.Render("Search plugins")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("Esc"), descStyle.Render("Clear search")))
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Marketplace: tag:Editor sort_by:downloads repository:stable"))
	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Installed:   status:enabled status:outdated status:invalid"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("s"), descStyle.Render("Sort options")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("r"), descStyle.Render("Rescan plugins directory")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("Enter"), descStyle.Render("Show plugin details")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("?"), descStyle.Render("Toggle this help")))
	help.WriteString(fmt.Sprintf("  %s           %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}
