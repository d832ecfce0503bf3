package interaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vado.sa/internal/interaction"
)

func expandedOf(a *interaction.Accordion) string {
	id, _ := a.Expanded()
	return id
}

func TestAccordion_ToggleSequence(t *testing.T) {
	a := interaction.NewAccordion("")
	_, ok := a.Expanded()
	assert.False(t, ok)

	var got []string
	for _, id := range []string{"A", "B", "A", "A"} {
		a.Toggle(id)
		got = append(got, expandedOf(a))
	}
	assert.Equal(t, []string{"A", "B", "A", ""}, got)
}

func TestAccordion_ExclusiveSelection(t *testing.T) {
	a := interaction.NewAccordion("")
	a.Toggle("A")
	a.Toggle("B")
	assert.Equal(t, "B", expandedOf(a))

	a.Toggle("B")
	assert.Equal(t, "", expandedOf(a))
}

func TestAccordion_Seeded(t *testing.T) {
	a := interaction.NewAccordion("site-supervision")
	assert.True(t, a.IsExpanded("site-supervision"))
	assert.False(t, a.IsExpanded("engineering-design"))
	assert.False(t, a.IsExpanded(""))

	a.Toggle("site-supervision")
	_, ok := a.Expanded()
	assert.False(t, ok)
}
