package state

// SetCursor moves the cursor to index, clamped to the visible items.
func (l *Level) SetCursor(index int) bool {
	old := l.Cursor
	l.Cursor = l.clamp(index)
	return old != l.Cursor
}

func (l *Level) MoveCursorUp() bool   { return l.moveCursorBy(-1) }
func (l *Level) MoveCursorDown() bool { return l.moveCursorBy(1) }

func (l *Level) MoveCursorHome() bool { return l.SetCursor(0) }

func (l *Level) MoveCursorEnd() bool { return l.SetCursor(len(l.Items) - 1) }

// MoveCursorPageUp moves the cursor up by one page of maxVisible rows.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by one page of maxVisible rows.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *Level) moveCursorBy(delta int) bool {
	start := l.Cursor
	if start < 0 {
		start = 0
	}
	return l.SetCursor(start + delta)
}

func (l *Level) clamp(index int) int {
	if len(l.Items) == 0 || index < 0 {
		return 0
	}
	if index >= len(l.Items) {
		return len(l.Items) - 1
	}
	return index
}

func (l *Level) pageSize(maxVisible int) int {
	total := len(l.Items)
	if maxVisible <= 0 || maxVisible > total {
		return total
	}
	return maxVisible
}

// EnsureCursorVisible adjusts the scroll offset so the cursor row is shown.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	l.Cursor = l.clamp(l.Cursor)
	if len(l.Items) == 0 || maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	switch {
	case l.Cursor < l.ViewportOffset:
		l.ViewportOffset = l.Cursor
	case l.Cursor >= l.ViewportOffset+maxVisible:
		l.ViewportOffset = l.Cursor - maxVisible + 1
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
}
