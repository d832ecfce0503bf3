package render

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vado.sa/internal/animation"
	"vado.sa/internal/content"
	"vado.sa/internal/interaction"
	"vado.sa/internal/services"
)

func setup(t *testing.T) (*Renderer, *services.PageService) {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	ps, err := services.NewProjectService(content.Projects())
	require.NoError(t, err)
	return r, services.NewPageService(ps, content.Site())
}

func doc(t *testing.T, b *bytes.Buffer) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(b)
	require.NoError(t, err)
	return d
}

func TestHome(t *testing.T) {
	r, pages := setup(t)
	var buf bytes.Buffer
	require.NoError(t, r.Home(&buf, pages.Home(services.ContactState{})))
	d := doc(t, &buf)

	assert.Equal(t, "VADO | VISION Arch. & Engineering Consultants", d.Find("title").Text())

	header := d.Find("[data-header]")
	assert.False(t, header.HasClass("is-scrolled"))
	assert.Equal(t, "100", header.AttrOr("data-threshold", ""))
	_, solid := header.Attr("data-solid")
	assert.False(t, solid)

	titles := d.Find("[data-showcase-index]")
	require.Equal(t, 3, titles.Length())
	assert.True(t, titles.First().HasClass("is-active"))
	assert.Equal(t, "/projects/al-mashraq-strip-mall", titles.First().AttrOr("href", ""))

	expanded := d.Find("[data-accordion-item].is-expanded")
	require.Equal(t, 1, expanded.Length())
	assert.Equal(t, content.ServicesSeed, expanded.AttrOr("data-accordion-item", ""))

	assert.Equal(t, 7, d.Find(".team-grid figure").Length())

	grid := d.Find(".team-grid")
	assert.Equal(t, "staggerContainer", grid.AttrOr("data-motion", ""))
	assert.Equal(t, "fadeInUp", grid.AttrOr("data-motion-children", ""))
	assert.Equal(t, "0.2", grid.AttrOr("data-motion-amount", ""))
	assert.Equal(t, "true", grid.AttrOr("data-motion-once", ""))

	button := d.Find("[data-contact-form] button[type=submit]")
	assert.Equal(t, "Send Message", button.Text())
	_, disabled := button.Attr("disabled")
	assert.False(t, disabled)
	_, required := d.Find("#fullName").Attr("required")
	assert.True(t, required)
	_, required = d.Find("#phone").Attr("required")
	assert.False(t, required)
	assert.Equal(t, 0, d.Find(`meta[http-equiv="refresh"]`).Length())
}

func TestHomeSubmitted(t *testing.T) {
	r, pages := setup(t)
	var buf bytes.Buffer
	page := pages.Home(services.ContactState{Form: interaction.FormSnapshot{
		Fields:    map[string]string{services.FieldFullName: "Layla <b>"},
		Submitted: true,
	}})
	require.NoError(t, r.Home(&buf, page))
	d := doc(t, &buf)

	button := d.Find("[data-contact-form] button[type=submit]")
	assert.Equal(t, "Message Sent!", button.Text())
	_, disabled := button.Attr("disabled")
	assert.True(t, disabled)
	assert.Equal(t, "Layla <b>", d.Find("#fullName").AttrOr("value", ""))
	assert.Equal(t, "3;url=/#contact", d.Find(`meta[http-equiv="refresh"]`).AttrOr("content", ""))
}

func TestHomeErrors(t *testing.T) {
	r, pages := setup(t)
	var buf bytes.Buffer
	require.NoError(t, r.Home(&buf, pages.Home(services.ContactState{Errors: []string{"Full Name is required"}})))
	assert.Equal(t, "Full Name is required", doc(t, &buf).Find(".form-errors li").Text())
}

func TestProject(t *testing.T) {
	r, pages := setup(t)
	page, ok := pages.Project("al-mashraq-strip-mall")
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, r.Project(&buf, page))
	d := doc(t, &buf)

	assert.Equal(t, "Al Mashraq Strip Mall | VADO Consultants", d.Find("title").Text())
	assert.Equal(t, "/images/portfolio-almashraq.jpg", d.Find(`meta[property="og:image"]`).AttrOr("content", ""))
	assert.True(t, d.Find("[data-header]").HasClass("is-scrolled"))
	assert.Equal(t, "Al Mashraq Strip Mall", d.Find("h1").Text())
	assert.Equal(t, 2, d.Find(".gallery img").Length())
	assert.Equal(t, "Al Mashraq Strip Mall - Image 2", d.Find(".gallery img").First().AttrOr("alt", ""))

	assert.Equal(t, 0, d.Find(".project-nav a.prev").Length())
	assert.Equal(t, "/projects/villa-yun", d.Find(".project-nav a.next").AttrOr("href", ""))
}

func TestNotFound(t *testing.T) {
	r, pages := setup(t)
	var buf bytes.Buffer
	require.NoError(t, r.NotFound(&buf, pages.NotFound()))
	assert.Equal(t, "Project Not Found | VADO Consultants", doc(t, &buf).Find("title").Text())
}

func TestEmbeddedAnimations(t *testing.T) {
	r, pages := setup(t)
	var buf bytes.Buffer
	require.NoError(t, r.NotFound(&buf, pages.NotFound()))

	raw := doc(t, &buf).Find("#vado-motion").Text()
	var bundle struct {
		Presets map[string]json.RawMessage `json:"presets"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &bundle))
	assert.Len(t, bundle.Presets, len(animation.All()))
}

func TestStatic(t *testing.T) {
	for _, name := range []string{"css/site.css", "js/site.js"} {
		_, err := fs.Stat(Static(), name)
		assert.NoError(t, err, name)
	}
}

func TestCanonicalAndContactTargets(t *testing.T) {
	r, _ := setup(t)
	ps, err := services.NewProjectService(content.Projects())
	require.NoError(t, err)
	pages := services.NewPageService(ps, content.Site(), services.WithBaseURL("https://vado.sa"))

	var buf bytes.Buffer
	page, ok := pages.Project("nomus-art-house")
	require.True(t, ok)
	require.NoError(t, r.Project(&buf, page))
	d := doc(t, &buf)
	assert.Equal(t, "https://vado.sa/projects/nomus-art-house", d.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	assert.Equal(t, "https://vado.sa/projects/nomus-art-house", d.Find(`meta[property="og:url"]`).AttrOr("content", ""))

	buf.Reset()
	require.NoError(t, r.Home(&buf, pages.Home(services.ContactState{})))
	form := doc(t, &buf).Find("[data-contact-form]")
	assert.Equal(t, "/contact#contact", form.AttrOr("action", ""))
	assert.Equal(t, "/api/contact", form.AttrOr("data-endpoint", ""))

	_, pagesNoBase := setup(t)
	buf.Reset()
	require.NoError(t, r.Home(&buf, pagesNoBase.Home(services.ContactState{})))
	assert.Equal(t, 0, doc(t, &buf).Find(`link[rel="canonical"]`).Length())
}

// The browser form must enter the submitted state before the request
// leaves, clear values rather than restore defaults, and only fall back
// to a native post when the server never answered or rejected the fields.
func TestContactScript(t *testing.T) {
	data, err := fs.ReadFile(Static(), "js/site.js")
	require.NoError(t, err)
	js := string(data)

	submit := js[strings.Index(js, `form.addEventListener("submit"`):]
	disable := strings.Index(submit, "button.disabled = true")
	request := strings.Index(submit, "fetch(endpoint")
	require.NotEqual(t, -1, disable)
	require.NotEqual(t, -1, request)
	assert.Less(t, disable, request)

	assert.NotContains(t, js, "form.reset()")
	assert.Contains(t, js, `el.value = ""`)
	assert.Contains(t, submit, "res.status === 422")
	assert.NotContains(t, submit, ".catch(")
}

func TestMotionAttrs(t *testing.T) {
	children := animation.FadeInUp
	got := motionAttrs(services.Motion{Preset: animation.StaggerContainer, Children: &children, OnLoad: true})
	assert.Equal(t, `data-motion="staggerContainer" data-motion-children="fadeInUp" data-motion-onload="true"`, string(got))

	got = motionAttrs(services.Motion{Preset: animation.FadeInRight, Viewport: animation.LargeElementViewport()})
	assert.Equal(t, `data-motion="fadeInRight" data-motion-amount="0.1" data-motion-once="true"`, string(got))
}
