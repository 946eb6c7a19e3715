package navigation

// PaneScroll holds one pane's scroll state
type PaneScroll struct {
	Top  int
	Left int
}

// Event types for scroll changes
type PaneScrolledEvent struct {
	PaneID string
	Top    int
	Left   int
}
