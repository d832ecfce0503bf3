package services

import (
	"strings"
	"time"

	"vado.sa/internal/animation"
	"vado.sa/internal/content"
	"vado.sa/internal/interaction"
	"vado.sa/internal/models"
)

const (
	siteTitleSuffix  = " | VADO Consultants"
	metaDescriptionN = 160
	portfolioDelayMs = 4000
	testimonyDelayMs = 4000
	homeTitle        = "VADO | VISION Arch. & Engineering Consultants"
	notFoundTitle    = "Project Not Found" + siteTitleSuffix
)

func preset(n animation.Name) *animation.Name { return &n }

// sectionMotion is the entrance used by each home page section
var sectionMotion = map[string]Motion{
	"hero":          {Preset: animation.StaggerContainer, Children: preset(animation.FadeInUp), OnLoad: true},
	"about-text":    {Preset: animation.StaggerContainer, Viewport: animation.DefaultViewport(), Children: preset(animation.FadeInUp)},
	"about-image":   {Preset: animation.FadeInRight, Viewport: animation.DefaultViewport()},
	"portfolio-nav": {Preset: animation.FadeInLeft, Viewport: animation.DefaultViewport()},
	"portfolio-car": {Preset: animation.FadeInRight, Viewport: animation.DefaultViewport()},
	"quote":         {Preset: animation.FadeInUp, Viewport: animation.DefaultViewport()},
	"team-header":   {Preset: animation.FadeInUp, Viewport: animation.DefaultViewport()},
	"team-grid":     {Preset: animation.StaggerContainer, Viewport: animation.DefaultViewport(), Children: preset(animation.FadeInUp)},
	"testimonials":  {Preset: animation.FadeInUp, Viewport: animation.DefaultViewport()},
	"contact-form":  {Preset: animation.StaggerContainer, Viewport: animation.DefaultViewport(), Children: preset(animation.FadeInUp)},
	"contact-info":  {Preset: animation.FadeInRight, Viewport: animation.DefaultViewport()},
	"cta":           {Preset: animation.StaggerContainer, Viewport: animation.DefaultViewport(), Children: preset(animation.FadeInUp)},
	"project-hero":  {Preset: animation.FadeIn, OnLoad: true},
	"project-body":  {Preset: animation.StaggerContainerSlow, Viewport: animation.LargeElementViewport(), Children: preset(animation.FadeInUp)},
}

// PageService builds page view models from the catalog and site copy
type PageService struct {
	projects      *ProjectService
	site          models.Site
	baseURL       string
	contactOrigin string
	now           func() time.Time
}

// PageOption configures a PageService
type PageOption func(*PageService)

// WithBaseURL sets the public origin used for canonical and og:url links
func WithBaseURL(u string) PageOption {
	return func(s *PageService) { s.baseURL = strings.TrimRight(u, "/") }
}

// WithContactOrigin points the contact form at another origin,
// for pages served from a static host
func WithContactOrigin(u string) PageOption {
	return func(s *PageService) { s.contactOrigin = strings.TrimRight(u, "/") }
}

// NewPageService creates a PageService
func NewPageService(projects *ProjectService, site models.Site, opts ...PageOption) *PageService {
	s := &PageService{projects: projects, site: site, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Home builds the home page with the given contact form state
func (s *PageService) Home(contact ContactState) HomePage {
	header := s.header(interaction.NewScrollDetector(0))

	hero := interaction.NewSelector(len(s.site.Slides))
	slides := make([]SlideView, len(s.site.Slides))
	for i, sl := range s.site.Slides {
		slides[i] = SlideView{Slide: sl, Active: hero.IsActive(i)}
	}

	projects := s.projects.GetAll()
	showcase := interaction.NewSelector(len(projects))
	portfolio := make([]PortfolioItem, len(projects))
	for i, p := range projects {
		portfolio[i] = PortfolioItem{
			Index:    i,
			Slug:     p.Slug,
			Title:    p.Title,
			Category: p.Category,
			Image:    p.HeroImage,
			Active:   showcase.IsActive(i),
		}
	}

	accordion := interaction.NewAccordion(content.ServicesSeed)
	services := make([]ServiceView, len(s.site.Services))
	for i, svc := range s.site.Services {
		services[i] = ServiceView{Service: svc, Expanded: accordion.IsExpanded(svc.ID)}
	}

	testimonies := interaction.NewSelector(len(s.site.Testimonials))
	testimonials := make([]TestimonialView, len(s.site.Testimonials))
	for i, tm := range s.site.Testimonials {
		testimonials[i] = TestimonialView{Testimonial: tm, Active: testimonies.IsActive(i)}
	}

	fields := contact.Form.Fields
	if fields == nil {
		fields = map[string]string{}
	}

	return HomePage{
		Meta: Meta{
			Title:       homeTitle,
			Description: truncate(s.site.About.Description, metaDescriptionN),
			OGTitle:     homeTitle,
			OGImage:     firstImage(s.site.Slides),
			Path:        "/",
			URL:         s.url("/"),
		},
		Site:         s.site,
		Header:       header,
		Hero:         CarouselView{Active: hero.Active(), Carousel: s.site.HeroCarousel},
		Slides:       slides,
		Portfolio:    portfolio,
		PortfolioCar: models.Carousel{DelayMs: portfolioDelayMs, Loop: true, Effect: "fade"},
		Services:     services,
		Testimonials: testimonials,
		TestimonyCar: models.Carousel{DelayMs: testimonyDelayMs, Loop: true},
		Contact: ContactView{
			Info:          s.site.Contact,
			Fields:        fields,
			Submitted:     contact.Form.Submitted,
			Errors:        contact.Errors,
			ResetSeconds:  resetSeconds(contact.ResetAfter),
			RequiredNames: RequiredFields(),
			Action:        s.contactOrigin + "/contact",
			Endpoint:      s.contactOrigin + "/api/contact",
		},
		Motion: motionTable(),
		Year:   s.now().Year(),
	}
}

// Project builds the detail page for slug.
// The boolean is false when the slug is not in the catalog.
func (s *PageService) Project(slug string) (ProjectPage, bool) {
	project, ok := s.projects.GetBySlug(slug)
	if !ok {
		return ProjectPage{}, false
	}

	var gallery []string
	if len(project.Gallery) > 1 {
		gallery = project.Gallery[1:]
	}

	description := truncate(project.Description, metaDescriptionN)
	return ProjectPage{
		Meta: Meta{
			Title:       project.Title + siteTitleSuffix,
			Description: description,
			OGTitle:     project.Title,
			OGImage:     project.HeroImage,
			Path:        ProjectPath(project.Slug),
			URL:         s.url(ProjectPath(project.Slug)),
		},
		Site:     s.site,
		Header:   s.header(interaction.NewSolidHeader()),
		Project:  project,
		Gallery:  gallery,
		Adjacent: s.projects.GetAdjacent(slug),
		Motion:   motionTable(),
		Year:     s.now().Year(),
	}, true
}

// NotFound builds the not-found page
func (s *PageService) NotFound() NotFoundPage {
	return NotFoundPage{
		Meta:   Meta{Title: notFoundTitle, OGTitle: notFoundTitle},
		Site:   s.site,
		Header: s.header(interaction.NewSolidHeader()),
		Year:   s.now().Year(),
	}
}

// Motion returns the entrance bound to a page section
func (s *PageService) Motion(section string) (Motion, bool) {
	m, ok := sectionMotion[section]
	return m.clone(), ok
}

func (m Motion) clone() Motion {
	if m.Children != nil {
		m.Children = preset(*m.Children)
	}
	return m
}

// motionTable copies sectionMotion for one page view
func motionTable() map[string]Motion {
	out := make(map[string]Motion, len(sectionMotion))
	for k, m := range sectionMotion {
		out[k] = m.clone()
	}
	return out
}

// ProjectPath is the URL path of a project detail page
func ProjectPath(slug string) string {
	return "/projects/" + slug
}

func (s *PageService) header(d *interaction.ScrollDetector) HeaderView {
	return HeaderView{
		Nav:       s.site.Nav,
		Scrolled:  d.Scrolled(),
		Solid:     d.Solid(),
		Threshold: interaction.ScrollThreshold,
	}
}

func (s *PageService) url(path string) string {
	if s.baseURL == "" {
		return ""
	}
	return s.baseURL + path
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func firstImage(slides []models.Slide) string {
	if len(slides) == 0 {
		return ""
	}
	return slides[0].Image
}

// resetSeconds rounds the reset delay up to whole seconds, at least one
func resetSeconds(d time.Duration) int {
	if d <= 0 {
		d = interaction.ResetDelay
	}
	n := int((d + time.Second - 1) / time.Second)
	return max(n, 1)
}
