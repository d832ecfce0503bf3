package models

// NavItem is a header or footer navigation link
type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Slide is one hero slider entry
type Slide struct {
	Image    string `json:"image"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// Service is one entry of the services accordion
type Service struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// TeamMember is shown in the team grid
type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
}

// Testimonial is one client quote
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

// SocialLink is a footer social network link
type SocialLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// ContactInfo holds the firm's public contact details
type ContactInfo struct {
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	PhoneHref    string   `json:"phone_href"`
	AddressLines []string `json:"address_lines"`
	Established  string   `json:"established"`
}

// Carousel describes the autoplay behaviour of a slider
type Carousel struct {
	DelayMs int    `json:"delay_ms"`
	Loop    bool   `json:"loop"`
	Effect  string `json:"effect,omitempty"`
}

// Site is the static copy for the whole website
type Site struct {
	Name         string        `json:"name"`
	LegalName    string        `json:"legal_name"`
	Tagline      string        `json:"tagline"`
	Nav          []NavItem     `json:"nav"`
	Slides       []Slide       `json:"slides"`
	HeroCarousel Carousel      `json:"hero_carousel"`
	About        About         `json:"about"`
	Services     []Service     `json:"services"`
	Quote        Quote         `json:"quote"`
	Team         []TeamMember  `json:"team"`
	Testimonials []Testimonial `json:"testimonials"`
	Contact      ContactInfo   `json:"contact"`
	Social       []SocialLink  `json:"social"`
	FooterBlurb  string        `json:"footer_blurb"`
	CTAHeadline  string        `json:"cta_headline"`
}

// About is the copy of the about section
type About struct {
	Label       string   `json:"label"`
	Headline    []string `json:"headline"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
}

// Quote is the large vision statement block
type Quote struct {
	Text        string `json:"text"`
	Attribution string `json:"attribution"`
}
