package content

import "vado.sa/internal/models"

// ServicesSeed is the service expanded when the home page first renders
const ServicesSeed = "site-supervision"

// Site returns the static copy of the VADO website
func Site() models.Site {
	return models.Site{
		Name:      "VADO",
		LegalName: "VISION Arch. & Engineering Consultants",
		Tagline:   "Est. 1994 — Al Khobar",
		Nav: []models.NavItem{
			{Label: "Projects", Href: "#portfolio"},
			{Label: "About", Href: "#about"},
			{Label: "Services", Href: "#services"},
			{Label: "Team", Href: "#team"},
			{Label: "Contact", Href: "#contact"},
		},
		Slides: []models.Slide{
			{Image: "/images/hero-1.png", Title: "Al Mashraq Strip Mall", Category: "Commercial"},
			{Image: "/images/hero-2.png", Title: "Urban Planning Excellence", Category: "Design"},
			{Image: "/images/hero-3.png", Title: "Residential Innovation", Category: "Architecture"},
		},
		HeroCarousel: models.Carousel{DelayMs: 5000, Loop: true, Effect: "fade"},
		About: models.About{
			Label:    "About VADO",
			Headline: []string{"Where Vision", "Becomes", "Architecture."},
			Description: "VADO (VISION Arch. & Engineering Consultants) is a multidisciplinary consultancy specialized in " +
				"architecture, engineering, and project development. With decades of experience, VADO delivers innovative, " +
				"functional, and sustainable solutions tailored to meet the evolving needs of communities and clients across Saudi Arabia.",
			Image: "/images/about.png",
		},
		Services: []models.Service{
			{
				ID:          "architectural-design",
				Label:       "Architectural Design",
				Image:       "/images/service-exterior.png",
				Description: "Creative architectural solutions that balance aesthetics, function, and context turning vision into architecture.",
			},
			{
				ID:          "engineering-design",
				Label:       "Engineering Design",
				Image:       "/images/service-urban.png",
				Description: "Integrated structural and MEP engineering ensuring safety, efficiency, and sustainability in every project.",
			},
			{
				ID:          "project-management",
				Label:       "Project Management",
				Image:       "/images/service-interior.png",
				Description: "Comprehensive project management from concept to completion, ensuring quality, schedule, and budget alignment.",
			},
			{
				ID:          ServicesSeed,
				Label:       "Site Supervision",
				Image:       "/images/service-residential.png",
				Description: "Dedicated on-site supervision delivering precision, consistency, and construction excellence.",
			},
		},
		Quote: models.Quote{
			Text: "To shape meaningful spaces through thoughtful design and engineering excellence—creating environments " +
				"that inspire, serve, and sustain communities.",
			Attribution: "VADO Vision Statement",
		},
		Team: []models.TeamMember{
			{Name: "Arch. Khalid Al Mulla", Role: "President", Image: "/images/team-khalid.jpg"},
			{Name: "Arch. Mutaz Al Mulla", Role: "Vice President & Chief Architect", Image: "/images/team-mutaz.jpg"},
			{Name: "Eng. Mohammed Zakariya", Role: "Chief Electro-Mechanical Engineer", Image: "/images/team-mohammed.png"},
			{Name: "Sarah Ahmed", Role: "Senior Architect", Image: "/images/team-1.png"},
			{Name: "Omar Hassan", Role: "Structural Engineer", Image: "/images/team-2.png"},
			{Name: "Fatima Al-Rashid", Role: "Interior Designer", Image: "/images/team-3.png"},
			{Name: "Ahmed Al-Farsi", Role: "Project Manager", Image: "/images/team-4.png"},
		},
		Testimonials: []models.Testimonial{
			{
				Quote: "Working with VADO was a transformative experience. They understood our vision and translated it into a " +
					"stunning architectural reality that exceeded all our expectations.",
				Author: "John Mitchell",
				Role:   "Homeowner",
			},
			{
				Quote: "The attention to detail and commitment to sustainability made VADO the perfect partner for our urban " +
					"development project. The results speak for themselves.",
				Author: "Sarah Chen",
				Role:   "Property Developer",
			},
			{
				Quote: "From concept to completion, the team delivered exceptional work. Their innovative approach to interior " +
					"design created spaces that truly inspire.",
				Author: "Michael Torres",
				Role:   "CEO, Torres Industries",
			},
		},
		Contact: models.ContactInfo{
			Email:        "info@vado.sa",
			Phone:        "+966 542 900 447",
			PhoneHref:    "tel:+966542900447",
			AddressLines: []string{"Al Fardan Tower – Office 401", "Al Khobar, Saudi Arabia"},
			Established:  "Established 1994 • Al Khobar, Saudi Arabia",
		},
		Social: []models.SocialLink{
			{Label: "LinkedIn", Href: "#"},
			{Label: "Instagram", Href: "#"},
			{Label: "Twitter", Href: "#"},
		},
		FooterBlurb: "VISION Arch. & Engineering Consultants. Transforming ideas into built realities through thoughtful " +
			"design and engineering excellence since 1994.",
		CTAHeadline: "Let's Build The Future.",
	}
}
