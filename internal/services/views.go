package services

import (
	"time"

	"vado.sa/internal/animation"
	"vado.sa/internal/interaction"
	"vado.sa/internal/models"
)

// Meta is the document head of a page
type Meta struct {
	Title       string
	Description string
	OGTitle     string
	OGImage     string
	Path        string
	// URL is the absolute canonical address, empty without a base URL
	URL string
}

// Motion binds a page section to its entrance preset.
// Children is the leaf preset applied to each child when Preset is a container.
type Motion struct {
	Preset   animation.Name
	Viewport animation.Viewport
	Children *animation.Name
	OnLoad   bool
}

// HeaderView is the sticky header state at first paint
type HeaderView struct {
	Nav       []models.NavItem
	Scrolled  bool
	Solid     bool
	Threshold int
}

// CarouselView is a slider with its active slide
type CarouselView struct {
	Active   int
	Carousel models.Carousel
}

// SlideView is one hero slide
type SlideView struct {
	models.Slide
	Active bool
}

// PortfolioItem is one entry of the portfolio sidebar and carousel
type PortfolioItem struct {
	Index    int
	Slug     string
	Title    string
	Category string
	Image    string
	Active   bool
}

// ServiceView is a service with its accordion state
type ServiceView struct {
	models.Service
	Expanded bool
}

// TestimonialView is one testimonial slide
type TestimonialView struct {
	models.Testimonial
	Active bool
}

// ContactView is the contact form at render time
type ContactView struct {
	Info          models.ContactInfo
	Fields        map[string]string
	Submitted     bool
	Errors        []string
	ResetSeconds  int
	RequiredNames []string
	// Action is the native form target, Endpoint the JSON one
	Action   string
	Endpoint string
}

// HomePage is everything the home template renders
type HomePage struct {
	Meta         Meta
	Site         models.Site
	Header       HeaderView
	Hero         CarouselView
	Slides       []SlideView
	Portfolio    []PortfolioItem
	PortfolioCar models.Carousel
	Services     []ServiceView
	Testimonials []TestimonialView
	TestimonyCar models.Carousel
	Contact      ContactView
	Motion       map[string]Motion
	Year         int
}

// ProjectPage is a project detail page
type ProjectPage struct {
	Meta     Meta
	Site     models.Site
	Header   HeaderView
	Project  models.Project
	Gallery  []string
	Adjacent models.Adjacent
	Motion   map[string]Motion
	Year     int
}

// NotFoundPage is rendered for unknown routes and slugs
type NotFoundPage struct {
	Meta   Meta
	Site   models.Site
	Header HeaderView
	Year   int
}

// ContactState is the form state handed to the home page
type ContactState struct {
	Form   interaction.FormSnapshot
	Errors []string
	// ResetAfter is how long the confirmation shows; zero means interaction.ResetDelay
	ResetAfter time.Duration
}
