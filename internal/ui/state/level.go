package state

// Level is the state of one filterable list: its items, cursor, filter text
// and scroll offset.
type Level struct {
	ID             string
	Title          string
	Items          []Item
	Full           []Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int

	// Source, when set, produces the visible items for a filter query
	// instead of the built-in fuzzy match over Full.
	Source func(query string) []Item
}

func NewLevel(id, title string, items []Item) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the visible index of the item with id, or -1.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// UpdateItems replaces the items, re-applying the filter and keeping the
// scroll offset when it is still in range.
func (l *Level) UpdateItems(items []Item) {
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 || prevOffset < 0 || prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}

// Refresh re-runs the filter, e.g. after Source's backing data changed.
func (l *Level) Refresh() {
	l.UpdateItems(l.Full)
}

// Selected returns the item under the cursor.
func (l *Level) Selected() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// Visible returns the rows that fit in height, starting at the scroll offset.
func (l *Level) Visible(height int) []Item {
	l.EnsureCursorVisible(height)
	if height <= 0 || len(l.Items) <= height {
		return l.Items
	}
	end := l.ViewportOffset + height
	if end > len(l.Items) {
		end = len(l.Items)
	}
	return l.Items[l.ViewportOffset:end]
}
