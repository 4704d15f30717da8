package widgets

// ViewSelection is the set of row ids chosen through a ViewSelector.
type ViewSelection struct {
	items []string
}

// NewViewSelection returns a selection of ids, keeping their order.
func NewViewSelection(ids ...string) ViewSelection {
	seen := make(map[string]struct{}, len(ids))
	items := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		items = append(items, id)
	}
	return ViewSelection{items: items}
}

// Items returns the selected ids.
func (s ViewSelection) Items() []string { return append([]string(nil), s.items...) }

// Len returns the number of selected ids.
func (s ViewSelection) Len() int { return len(s.items) }

// Contains reports whether id is selected.
func (s ViewSelection) Contains(id string) bool {
	for _, item := range s.items {
		if item == id {
			return true
		}
	}
	return false
}

// ViewSelector is implemented by view parts, such as a checkbox column, that
// let the user select rows.
type ViewSelector interface {
	SelectorID() string
	Selection() ViewSelection
}

// View is implemented by widgets holding selectable rows.
type View interface {
	Selector(id string) (ViewSelector, bool)
}
