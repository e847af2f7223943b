package ui

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"plugdeck/internal/config"
	"plugdeck/internal/domain"
	"plugdeck/internal/eventbus"
	"plugdeck/internal/marketplace"
	"plugdeck/internal/query"
	"plugdeck/internal/ui/input"
	inputtypes "plugdeck/internal/ui/input/types"
	"plugdeck/internal/ui/logic"
	"plugdeck/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	width  int
	height int

	// Catalog data
	installed map[string]*domain.Plugin // plugins found on disk, by ID
	listed    map[string]*domain.Plugin // marketplace listing, by ID

	// Visible, filtered and sorted IDs for the active tab
	visible []string

	activeTab   inputtypes.Tab
	rawQuery    [2]string // raw search text per tab, indexed by Tab
	trendingQ   *query.Trending
	installedQ  *query.Installed
	currentSort logic.SortMode

	selectedIndex  int
	viewportOffset int
	viewportHeight int

	scanning      bool
	statusMessage string
	showHelp      bool
	showDetails   bool
	detailsText   string
	requestURL    string
	inPagerMode   bool

	navigator    *logic.Navigator
	renderer     *views.Renderer
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, listing []*domain.Plugin) *Model {
	m := &Model{
		bus:          bus,
		config:       cfg,
		installed:    make(map[string]*domain.Plugin),
		listed:       make(map[string]*domain.Plugin),
		activeTab:    inputtypes.TabMarketplace,
		trendingQ:    query.ParseTrending(""),
		installedQ:   query.ParseInstalled(""),
		currentSort:  logic.SortByName,
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(cfg.UISettings.ShowDownloads),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
	}

	for _, p := range listing {
		m.listed[p.ID] = p
	}

	m.updateVisible()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.viewportHeight = 20 // updated on first WindowSizeMsg
	return tick()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()

	case tea.KeyMsg:
		// Popups swallow keys until dismissed
		if m.showDetails {
			switch msg.String() {
			case "esc", "enter", "q":
				m.showDetails = false
				m.detailsText = ""
			}
			return m, nil
		}
		if m.showHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.showHelp = false
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		ActiveTab:      m.activeTab,
		Plugins:        m.visiblePlugins(),
		TotalInstalled: len(m.installed),
		TotalListed:    len(m.listed),
		SelectedIndex:  m.selectedIndex,
		ViewportOffset: m.viewportOffset,
		ViewportHeight: m.viewportHeight,
		Scanning:       m.scanning,
		StatusMessage:  m.statusMessage,
		SearchQuery:    m.rawQuery[m.activeTab],
		HighlightText:  m.highlightText(),
		SortName:       m.currentSort.String(),
		ShowHelp:       m.showHelp,
		ShowDetails:    m.showDetails,
		DetailsContent: m.detailsText,
		RequestURL:     m.requestURL,
		ShowDownloads:  m.config.UISettings.ShowDownloads,
	}

	if mode := m.inputHandler.CurrentMode(); mode != inputtypes.ModeNormal {
		prompt := "Search: "
		if mode == inputtypes.ModeSort {
			prompt = "Sort by (name/downloads/rating/vendor): "
		}
		state.InputMode = "text"
		state.TextInput = prompt + m.inputHandler.TextInput().View()
	}

	return m.renderer.Render(state)
}

// inputContext builds the read-only context handed to input modes
func (m *Model) inputContext() inputtypes.Context {
	return &modelContext{model: m}
}

// modelContext adapts the model to the input context interface
type modelContext struct {
	model *Model
}

func (c *modelContext) CurrentIndex() int { return c.model.selectedIndex }

func (c *modelContext) TotalItems() int { return len(c.model.visible) }

func (c *modelContext) ActiveTab() inputtypes.Tab { return c.model.activeTab }

func (c *modelContext) SearchQuery() string { return c.model.rawQuery[c.model.activeTab] }

func (c *modelContext) CurrentPluginID() string {
	if c.model.selectedIndex >= 0 && c.model.selectedIndex < len(c.model.visible) {
		return c.model.visible[c.model.selectedIndex]
	}
	return ""
}

// processAction executes a single action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch act := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(act.Direction)

	case inputtypes.SwitchTabAction:
		if m.activeTab != act.Tab {
			m.activeTab = act.Tab
			m.resetSelection()
			m.updateVisible()
		}

	case inputtypes.NextTabAction:
		if m.activeTab == inputtypes.TabMarketplace {
			m.activeTab = inputtypes.TabInstalled
		} else {
			m.activeTab = inputtypes.TabMarketplace
		}
		m.resetSelection()
		m.updateVisible()

	case inputtypes.RefreshAction:
		if m.bus != nil {
			m.bus.Publish(eventbus.ScanRequestedEvent{Paths: []string{m.config.PluginsDir}})
		}

	case inputtypes.ClearSearchAction:
		m.setQuery("")

	case inputtypes.ToggleHelpAction:
		// Prefer the pager when attached to a real terminal
		if m.helpOps != nil && m.program != nil {
			return m.fetchHelpPager(m.helpRenderer.RenderHelpContentPlain())
		}
		m.showHelp = !m.showHelp

	case inputtypes.ShowDetailsAction:
		if p := m.selectedPlugin(); p != nil {
			m.detailsText = m.buildPluginDetails(p)
			m.showDetails = true
		}

	case inputtypes.SortByAction:
		m.currentSort = logic.SortModeFor(act.Criteria)
		m.updateVisible()

	case inputtypes.SubmitTextAction:
		switch act.Mode {
		case inputtypes.ModeSearch:
			m.setQuery(act.Text)
		case inputtypes.ModeSort:
			m.handleSortInput(act.Text)
		}

	case inputtypes.UpdateTextAction, inputtypes.CancelTextAction:
		// Text display is read from the input handler directly

	case inputtypes.QuitAction:
		if !act.Force && m.bus != nil && m.config.UISettings.AutosaveOnExit {
			m.bus.Publish(eventbus.ConfigChangedEvent{
				PluginsDir:     m.config.PluginsDir,
				MarketplaceURL: m.config.Marketplace.BaseURL,
			})
		}
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg processes events, timers and pager lifecycle messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case tickMsg:
		if m.inPagerMode {
			return m, nil
		}
		return m, tick()

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed, falling back to popup: %v", msg.err)
			m.showHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	default:
		return m, nil
	}
}

// handleEvent applies a domain event to the model state
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.PluginDiscoveredEvent:
		plugin := e.Plugin
		m.installed[plugin.ID] = &plugin
		m.updateVisible()

	case eventbus.StateUpdatedEvent:
		if p, ok := m.installed[e.PluginID]; ok {
			p.State = e.State
			m.updateVisible()
		}

	case eventbus.ScanStartedEvent:
		m.scanning = true
		// Start over: discovery events rebuild the installed set
		m.installed = make(map[string]*domain.Plugin)
		m.updateVisible()

	case eventbus.ScanCompletedEvent:
		m.scanning = false
		m.statusMessage = fmt.Sprintf("Found %d plugins", e.PluginsFound)

	case eventbus.ErrorEvent:
		m.statusMessage = e.Message
		log.Printf("Error event: %s: %v", e.Message, e.Err)
	}
}

// setQuery installs a new raw query for the active tab and reparses it
func (m *Model) setQuery(raw string) {
	m.rawQuery[m.activeTab] = raw

	if m.activeTab == inputtypes.TabMarketplace {
		m.trendingQ = query.ParseTrending(raw)
		if mode := logic.SortModeFor(m.trendingQ.SortBy); m.trendingQ.SortBy != "" {
			m.currentSort = mode
		}
	} else {
		m.installedQ = query.ParseInstalled(raw)
	}

	if m.bus != nil {
		m.bus.Publish(eventbus.SearchChangedEvent{Raw: raw})
	}

	m.resetSelection()
	m.updateVisible()
}

// handleSortInput processes sort criteria typed at the sort prompt
func (m *Model) handleSortInput(criteria string) {
	criteria = strings.ToLower(strings.TrimSpace(criteria))
	switch criteria {
	case "name", "n":
		m.currentSort = logic.SortByName
	case "downloads", "d":
		m.currentSort = logic.SortByDownloads
	case "rating", "r":
		m.currentSort = logic.SortByRating
	case "vendor", "v":
		m.currentSort = logic.SortByVendor
	default:
		m.statusMessage = fmt.Sprintf("Unknown sort: %s", criteria)
		return
	}
	m.updateVisible()
}

// updateVisible recomputes the filtered, sorted ID list for the active tab
// and refreshes the marketplace request preview.
func (m *Model) updateVisible() {
	var plugins map[string]*domain.Plugin
	if m.activeTab == inputtypes.TabInstalled {
		plugins = m.installed
	} else {
		plugins = m.listed
	}

	ordered := make([]string, 0, len(plugins))
	for id := range plugins {
		ordered = append(ordered, id)
	}
	sort.Strings(ordered)

	filter := logic.NewSearchFilter(plugins)
	if m.activeTab == inputtypes.TabInstalled {
		ordered = filter.FilterInstalled(ordered, m.installedQ)
	} else {
		ordered = filter.FilterTrending(ordered, m.trendingQ)
	}

	sorter := logic.NewPluginSorter(plugins)
	sorter.SortPlugins(ordered, m.currentSort)

	m.visible = ordered
	if m.selectedIndex >= len(m.visible) {
		m.selectedIndex = len(m.visible) - 1
	}
	if m.selectedIndex < 0 {
		m.selectedIndex = 0
	}

	if m.activeTab == inputtypes.TabMarketplace {
		m.requestURL = ""
		if m.rawQuery[inputtypes.TabMarketplace] != "" {
			builder := marketplace.NewRequestBuilder(m.config.Marketplace.BaseURL, m.config.Marketplace.DefaultRepository)
			m.requestURL = builder.SearchURL(m.trendingQ)
		}
	}
}

// visiblePlugins resolves the visible IDs to plugin values in order
func (m *Model) visiblePlugins() []*domain.Plugin {
	plugins := m.listed
	if m.activeTab == inputtypes.TabInstalled {
		plugins = m.installed
	}
	out := make([]*domain.Plugin, 0, len(m.visible))
	for _, id := range m.visible {
		if p, ok := plugins[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// selectedPlugin returns the plugin under the cursor, or nil
func (m *Model) selectedPlugin() *domain.Plugin {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.visible) {
		return nil
	}
	plugins := m.listed
	if m.activeTab == inputtypes.TabInstalled {
		plugins = m.installed
	}
	return plugins[m.visible[m.selectedIndex]]
}

// highlightText returns the free-text part of the active query for
// match highlighting in the list.
func (m *Model) highlightText() string {
	if m.activeTab == inputtypes.TabInstalled {
		if m.installedQ.HasSearch {
			return m.installedQ.SearchQuery
		}
		return ""
	}
	if m.trendingQ.HasSearch {
		return m.trendingQ.SearchQuery
	}
	return ""
}

// navigate applies a navigation direction through the navigator
func (m *Model) navigate(direction string) {
	m.navigator.UpdateState(m.selectedIndex, m.viewportOffset, m.viewportHeight, len(m.visible))

	switch direction {
	case "up":
		m.selectedIndex, m.viewportOffset = m.navigator.MoveUp()
	case "down":
		m.selectedIndex, m.viewportOffset = m.navigator.MoveDown()
	case "pageup":
		m.selectedIndex, m.viewportOffset = m.navigator.PageUp()
	case "pagedown":
		m.selectedIndex, m.viewportOffset = m.navigator.PageDown()
	case "home":
		m.selectedIndex, m.viewportOffset = m.navigator.JumpToTop()
	case "end":
		m.selectedIndex, m.viewportOffset = m.navigator.JumpToBottom()
	}
}

// resetSelection moves the cursor back to the top of the list
func (m *Model) resetSelection() {
	m.selectedIndex = 0
	m.viewportOffset = 0
}

// updateViewportHeight recomputes the list height from the window size
func (m *Model) updateViewportHeight() {
	// Title, tabs, input line, status and container padding
	overhead := 9
	m.viewportHeight = m.height - overhead
	if m.viewportHeight < 3 {
		m.viewportHeight = 3
	}
}

// buildPluginDetails renders the details popup content for a plugin
func (m *Model) buildPluginDetails(p *domain.Plugin) string {
	var b strings.Builder

	b.WriteString(p.Name)
	b.WriteString("\n\n")

	if p.Vendor != "" {
		fmt.Fprintf(&b, "Vendor:      %s\n", p.Vendor)
	}
	if p.State.Version != "" {
		fmt.Fprintf(&b, "Version:     %s\n", p.State.Version)
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, "Tags:        %s\n", strings.Join(p.Tags, ", "))
	}
	if p.Repository != "" {
		fmt.Fprintf(&b, "Repository:  %s\n", p.Repository)
	}
	if p.Downloads > 0 {
		fmt.Fprintf(&b, "Downloads:   %d\n", p.Downloads)
	}
	if p.Rating > 0 {
		fmt.Fprintf(&b, "Rating:      %.1f\n", p.Rating)
	}

	if m.activeTab == inputtypes.TabInstalled {
		fmt.Fprintf(&b, "Enabled:     %v\n", p.State.Enabled)
		if p.State.Bundled {
			b.WriteString("Bundled:     yes\n")
		}
		if p.State.Invalid {
			b.WriteString("State:       invalid\n")
		}
		if p.State.NeedUpdate {
			b.WriteString("State:       update available\n")
		}
		if p.State.Deleted {
			b.WriteString("State:       uninstalled\n")
		}
		if p.State.NeedRestart {
			b.WriteString("State:       restart required\n")
		}
		if p.State.Error != "" {
			fmt.Fprintf(&b, "Error:       %s\n", p.State.Error)
		}
	}

	if p.Description != "" {
		b.WriteString("\n")
		b.WriteString(p.Description)
		b.WriteString("\n")
	}

	b.WriteString("\nPress Esc to close")
	return b.String()
}

// fetchHelpPager returns a command that shows help using the ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// tick drives spinner animation
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
