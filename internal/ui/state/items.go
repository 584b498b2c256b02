package state

// Item is one selectable row. ID is what the row stands for (a URL, a binding
// id); Label is what gets drawn and matched against the filter.
type Item struct {
	ID    string
	Label string
}

// CloneItems produces a shallow copy of items.
func CloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
