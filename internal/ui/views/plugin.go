package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"plugdeck/internal/domain"
)

// PluginRenderer handles rendering of plugin list items
type PluginRenderer struct {
	styles        *Styles
	showDownloads bool
}

// NewPluginRenderer creates a new plugin renderer
func NewPluginRenderer(styles *Styles, showDownloads bool) *PluginRenderer {
	return &PluginRenderer{
		styles:        styles,
		showDownloads: showDownloads,
	}
}

// RenderInstalled renders a locally installed plugin line
func (r *PluginRenderer) RenderInstalled(plugin *domain.Plugin, isSelected bool, searchQuery string) string {
	if plugin == nil {
		return ""
	}

	bgColor := ""
	if isSelected {
		bgColor = "238"
	}

	var parts []string

	icon := r.getStateIcon(plugin)
	iconStyle := r.getStateStyle(plugin)
	if isSelected {
		iconStyle = iconStyle.Background(lipgloss.Color(bgColor))
	}
	parts = append(parts, iconStyle.Render(icon))
	parts = append(parts, " ")

	parts = append(parts, r.renderName(plugin, searchQuery, bgColor))

	if plugin.State.Version != "" {
		versionStyle := lipgloss.NewStyle().Faint(true).Background(lipgloss.Color(bgColor))
		parts = append(parts, versionStyle.Render(" v"+plugin.State.Version))
	}

	if label := r.getStateLabel(plugin); label != "" {
		labelStyle := r.getStateStyle(plugin)
		if isSelected {
			labelStyle = labelStyle.Background(lipgloss.Color(bgColor))
		}
		parts = append(parts, labelStyle.Render(" ["+label+"]"))
	}

	return strings.Join(parts, "")
}

// RenderMarketplace renders a marketplace listing line
func (r *PluginRenderer) RenderMarketplace(plugin *domain.Plugin, isSelected bool, searchQuery string) string {
	if plugin == nil {
		return ""
	}

	bgColor := ""
	if isSelected {
		bgColor = "238"
	}

	var parts []string

	parts = append(parts, r.renderName(plugin, searchQuery, bgColor))

	if plugin.Vendor != "" {
		vendorStyle := r.styles.Vendor
		if isSelected {
			vendorStyle = vendorStyle.Background(lipgloss.Color(bgColor))
		}
		parts = append(parts, vendorStyle.Render(" by "+plugin.Vendor))
	}

	if plugin.Rating > 0 {
		ratingStyle := r.styles.Rating
		if isSelected {
			ratingStyle = ratingStyle.Background(lipgloss.Color(bgColor))
		}
		parts = append(parts, ratingStyle.Render(fmt.Sprintf(" ★%.1f", plugin.Rating)))
	}

	if r.showDownloads && plugin.Downloads > 0 {
		dlStyle := lipgloss.NewStyle().Faint(true).Background(lipgloss.Color(bgColor))
		parts = append(parts, dlStyle.Render(" "+formatDownloads(plugin.Downloads)))
	}

	if len(plugin.Tags) > 0 {
		tagStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color(bgColor))
		parts = append(parts, tagStyle.Render(" #"+strings.Join(plugin.Tags, " #")))
	}

	return strings.Join(parts, "")
}

// renderName renders the plugin name with search highlighting if applicable
func (r *PluginRenderer) renderName(plugin *domain.Plugin, searchQuery, bgColor string) string {
	name := plugin.Name
	nameStyle := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))
	if searchQuery != "" && strings.Contains(strings.ToLower(name), strings.ToLower(searchQuery)) {
		return r.highlightMatch(name, searchQuery,
			nameStyle.Foreground(lipgloss.Color("226")), nameStyle)
	}
	return nameStyle.Render(name)
}

// getStateIcon returns the status icon for an installed plugin
func (r *PluginRenderer) getStateIcon(plugin *domain.Plugin) string {
	switch {
	case plugin.State.Invalid:
		return "✗"
	case plugin.State.Deleted:
		return "−"
	case plugin.State.NeedRestart:
		return "⟳"
	case plugin.State.NeedUpdate:
		return "↑"
	case !plugin.State.Enabled:
		return "○"
	default:
		return "●"
	}
}

// getStateStyle returns the style matching the plugin's install state
func (r *PluginRenderer) getStateStyle(plugin *domain.Plugin) lipgloss.Style {
	switch {
	case plugin.State.Invalid:
		return r.styles.StateError
	case plugin.State.Deleted, plugin.State.NeedRestart, plugin.State.NeedUpdate:
		return r.styles.StateWarning
	case !plugin.State.Enabled:
		return r.styles.StateDisabled
	default:
		return r.styles.StateOK
	}
}

// getStateLabel returns a short textual label for abnormal install states
func (r *PluginRenderer) getStateLabel(plugin *domain.Plugin) string {
	switch {
	case plugin.State.Invalid:
		return "invalid"
	case plugin.State.Deleted:
		return "uninstalled"
	case plugin.State.NeedRestart:
		return "restart required"
	case plugin.State.NeedUpdate:
		return "update available"
	case !plugin.State.Enabled:
		return "disabled"
	case plugin.State.Bundled:
		return "bundled"
	}
	return ""
}

// highlightMatch highlights matching text within a string
func (r *PluginRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}
	return strings.Join(result, "")
}

// formatDownloads renders a download count compactly (12400 -> "12.4k")
func formatDownloads(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM↓", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk↓", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d↓", n)
	}
}
