package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vado.sa/internal/animation"
	"vado.sa/internal/content"
	"vado.sa/internal/interaction"
	"vado.sa/internal/models"
)

func newPageService(t *testing.T, projects []models.Project) *PageService {
	t.Helper()
	ps, err := NewProjectService(projects)
	require.NoError(t, err)
	s := NewPageService(ps, content.Site())
	s.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return s
}

func TestPageService_Home(t *testing.T) {
	s := newPageService(t, content.Projects())
	page := s.Home(ContactState{})

	assert.False(t, page.Header.Scrolled)
	assert.False(t, page.Header.Solid)
	assert.Equal(t, interaction.ScrollThreshold, page.Header.Threshold)
	assert.Equal(t, 2026, page.Year)

	require.Len(t, page.Portfolio, 3)
	assert.True(t, page.Portfolio[0].Active)
	assert.False(t, page.Portfolio[1].Active)
	assert.Equal(t, "al-mashraq-strip-mall", page.Portfolio[0].Slug)
	assert.Equal(t, 4000, page.PortfolioCar.DelayMs)

	var expanded []string
	for _, svc := range page.Services {
		if svc.Expanded {
			expanded = append(expanded, svc.ID)
		}
	}
	assert.Equal(t, []string{content.ServicesSeed}, expanded)

	assert.True(t, page.Slides[0].Active)
	assert.Equal(t, 5000, page.Hero.Carousel.DelayMs)
	assert.True(t, page.Testimonials[0].Active)

	assert.Equal(t, 3, page.Contact.ResetSeconds)
	assert.False(t, page.Contact.Submitted)
	assert.NotNil(t, page.Contact.Fields)
	assert.LessOrEqual(t, len([]rune(page.Meta.Description)), 160)
}

func TestPageService_HomeSubmitted(t *testing.T) {
	s := newPageService(t, content.Projects())
	page := s.Home(ContactState{Form: interaction.FormSnapshot{
		Fields:    map[string]string{FieldFullName: "Layla"},
		Submitted: true,
	}})
	assert.True(t, page.Contact.Submitted)
	assert.Equal(t, "Layla", page.Contact.Fields[FieldFullName])
}

func TestPageService_Project(t *testing.T) {
	s := newPageService(t, content.Projects())

	page, ok := s.Project("villa-yun")
	require.True(t, ok)
	assert.Equal(t, "The Feel of Villa Yun | VADO Consultants", page.Meta.Title)
	assert.Equal(t, "The Feel of Villa Yun", page.Meta.OGTitle)
	assert.Equal(t, "/images/portfolio-1.png", page.Meta.OGImage)
	assert.Equal(t, "/projects/villa-yun", page.Meta.Path)
	assert.Len(t, []rune(page.Meta.Description), 160)
	assert.True(t, strings.HasPrefix(page.Project.Description, page.Meta.Description))

	assert.Equal(t, []string{"/images/portfolio-almashraq.jpg", "/images/portfolio-2.png"}, page.Gallery)
	require.NotNil(t, page.Adjacent.Previous)
	require.NotNil(t, page.Adjacent.Next)
	assert.Equal(t, "al-mashraq-strip-mall", page.Adjacent.Previous.Slug)
	assert.Equal(t, "nomus-art-house", page.Adjacent.Next.Slug)

	assert.True(t, page.Header.Solid)
	assert.True(t, page.Header.Scrolled)
}

func TestPageService_ProjectSingleImageGallery(t *testing.T) {
	s := newPageService(t, []models.Project{{Slug: "a", Title: "Alpha", Description: "short", Gallery: []string{"/a.jpg"}}})
	page, ok := s.Project("a")
	require.True(t, ok)
	assert.Empty(t, page.Gallery)
	assert.Equal(t, "short", page.Meta.Description)
}

func TestPageService_ProjectUnknown(t *testing.T) {
	s := newPageService(t, content.Projects())
	_, ok := s.Project("z")
	assert.False(t, ok)

	nf := s.NotFound()
	assert.Equal(t, "Project Not Found | VADO Consultants", nf.Meta.Title)
}

func TestSectionMotion(t *testing.T) {
	s := newPageService(t, content.Projects())
	for name, m := range sectionMotion {
		t.Run(name, func(t *testing.T) {
			p := animation.Lookup(m.Preset)
			if m.Children != nil {
				assert.Equal(t, animation.Container, p.Role, "children need a container preset")
				assert.Equal(t, animation.Leaf, animation.Lookup(*m.Children).Role)
			} else {
				assert.Equal(t, animation.Leaf, p.Role)
			}
			if !m.OnLoad {
				assert.True(t, m.Viewport.Once)
				assert.Positive(t, m.Viewport.Amount)
			}
		})
	}

	_, ok := s.Motion("team-grid")
	assert.True(t, ok)
	_, ok = s.Motion("nope")
	assert.False(t, ok)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "مرح", truncate("مرحبا", 3))
}

func TestResetSeconds(t *testing.T) {
	tests := map[time.Duration]int{
		0:                       3,
		200 * time.Millisecond:  1,
		1500 * time.Millisecond: 2,
		5 * time.Second:         5,
	}
	for d, want := range tests {
		assert.Equal(t, want, resetSeconds(d), d.String())
	}
}

func TestPageService_Links(t *testing.T) {
	t.Run("same origin", func(t *testing.T) {
		s := newPageService(t, content.Projects())
		home := s.Home(ContactState{})
		assert.Empty(t, home.Meta.URL)
		assert.Equal(t, "/contact", home.Contact.Action)
		assert.Equal(t, "/api/contact", home.Contact.Endpoint)
	})

	t.Run("configured", func(t *testing.T) {
		ps, err := NewProjectService(content.Projects())
		require.NoError(t, err)
		s := NewPageService(ps, content.Site(),
			WithBaseURL("https://vado.sa/"),
			WithContactOrigin("https://api.vado.sa"),
		)

		home := s.Home(ContactState{})
		assert.Equal(t, "https://vado.sa/", home.Meta.URL)
		assert.Equal(t, "https://api.vado.sa/contact", home.Contact.Action)
		assert.Equal(t, "https://api.vado.sa/api/contact", home.Contact.Endpoint)

		page, ok := s.Project("villa-yun")
		require.True(t, ok)
		assert.Equal(t, "https://vado.sa/projects/villa-yun", page.Meta.URL)
	})
}

func TestPageService_MotionIsACopy(t *testing.T) {
	s := newPageService(t, content.Projects())
	home := s.Home(ContactState{})
	*home.Motion["team-grid"].Children = animation.SlideUp
	home.Motion["hero"] = Motion{Preset: animation.ScaleIn}

	m, ok := s.Motion("team-grid")
	require.True(t, ok)
	assert.Equal(t, animation.FadeInUp, *m.Children)
	assert.Equal(t, animation.StaggerContainer, s.Home(ContactState{}).Motion["hero"].Preset)
}
