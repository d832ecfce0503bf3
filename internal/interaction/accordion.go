package interaction

// Accordion keeps at most one item expanded
type Accordion struct {
	expanded string
}

// NewAccordion creates an accordion with seed expanded.
// An empty seed starts with everything collapsed.
func NewAccordion(seed string) *Accordion {
	return &Accordion{expanded: seed}
}

// Toggle collapses id when it is expanded and expands it otherwise,
// which implicitly collapses any other item.
func (a *Accordion) Toggle(id string) {
	if a.expanded == id {
		a.expanded = ""
		return
	}
	a.expanded = id
}

// Expanded returns the expanded item, if any
func (a *Accordion) Expanded() (string, bool) {
	return a.expanded, a.expanded != ""
}

// IsExpanded reports whether id is the expanded item
func (a *Accordion) IsExpanded(id string) bool {
	return id != "" && a.expanded == id
}
