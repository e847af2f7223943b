package logic

// Navigator handles list navigation and viewport management
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, totalItems int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.totalItems = totalItems
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// GetMaxIndex returns the maximum selectable index
func (n *Navigator) GetMaxIndex() int {
	if n.totalItems > 0 {
		return n.totalItems - 1
	}
	return 0
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	if index < 0 {
		index = 0
	}
	if max := n.GetMaxIndex(); index > max {
		index = max
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// MoveUp moves the selection up one item
func (n *Navigator) MoveUp() (int, int) {
	return n.SetSelectedIndex(n.selectedIndex - 1)
}

// MoveDown moves the selection down one item
func (n *Navigator) MoveDown() (int, int) {
	return n.SetSelectedIndex(n.selectedIndex + 1)
}

// PageUp moves the selection up a viewport's worth of items
func (n *Navigator) PageUp() (int, int) {
	return n.SetSelectedIndex(n.selectedIndex - n.pageSize())
}

// PageDown moves the selection down a viewport's worth of items
func (n *Navigator) PageDown() (int, int) {
	return n.SetSelectedIndex(n.selectedIndex + n.pageSize())
}

// JumpToTop selects the first item
func (n *Navigator) JumpToTop() (int, int) {
	return n.SetSelectedIndex(0)
}

// JumpToBottom selects the last item
func (n *Navigator) JumpToBottom() (int, int) {
	return n.SetSelectedIndex(n.GetMaxIndex())
}

func (n *Navigator) pageSize() int {
	if n.viewportHeight > 1 {
		return n.viewportHeight - 1
	}
	return 1
}

// ensureSelectedVisible adjusts the viewport to keep the selected item visible
func (n *Navigator) ensureSelectedVisible() {
	// If selected item is above viewport, scroll up
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}

	// Account for the scroll indicator lines at the viewport edges
	needsTopIndicator := n.viewportOffset > 0
	needsBottomIndicator := n.viewportOffset+n.viewportHeight < n.totalItems

	effectiveHeight := n.viewportHeight
	if needsTopIndicator {
		effectiveHeight--
	}
	if needsBottomIndicator {
		effectiveHeight--
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}

	// If selected item is below effective viewport, scroll down
	if n.selectedIndex >= n.viewportOffset+effectiveHeight {
		n.viewportOffset = n.selectedIndex - effectiveHeight + 1
	}

	// Final validation: ensure viewport doesn't exceed bounds
	maxOffset := n.totalItems - effectiveHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
