package content

import "vado.sa/internal/models"

// Projects returns the built-in VADO catalog in display order.
// A fresh slice is returned on every call.
func Projects() []models.Project {
	return []models.Project{
		{
			Slug:     "al-mashraq-strip-mall",
			Title:    "Al Mashraq Strip Mall",
			Category: "Commercial",
			Client:   "Al Mashraq Development Co.",
			Location: "Al Khobar, Saudi Arabia",
			Year:     "2023",
			Description: "A contemporary retail destination designed to serve the growing community of Al Khobar. " +
				"The project balances commercial functionality with architectural elegance, featuring an open-air design " +
				"that encourages pedestrian flow while providing shade and comfort in the Saudi climate. The facade combines " +
				"modern materials with traditional Arabian geometric patterns, creating a dialogue between heritage and innovation.",
			HeroImage: "/images/portfolio-almashraq.jpg",
			Gallery: []string{
				"/images/portfolio-almashraq.jpg",
				"/images/portfolio-1.png",
				"/images/portfolio-2.png",
			},
		},
		{
			Slug:     "villa-yun",
			Title:    "The Feel of Villa Yun",
			Category: "Interiors",
			Client:   "Private Client",
			Location: "Dhahran, Saudi Arabia",
			Year:     "2022",
			Description: "An interior design project that transforms a modern villa into a serene living space. " +
				"The design philosophy centered on creating harmony between minimalist aesthetics and warm, inviting atmospheres. " +
				"Natural materials, carefully curated lighting, and a neutral palette work together to establish spaces that feel " +
				"both luxurious and comfortable.",
			HeroImage: "/images/portfolio-1.png",
			Gallery: []string{
				"/images/portfolio-1.png",
				"/images/portfolio-almashraq.jpg",
				"/images/portfolio-2.png",
			},
		},
		{
			Slug:     "nomus-art-house",
			Title:    "Nomus Art House",
			Category: "Exteriors",
			Client:   "Nomus Cultural Foundation",
			Location: "Dammam, Saudi Arabia",
			Year:     "2021",
			Description: "A cultural space designed to house and celebrate contemporary art. " +
				"The exterior architecture makes a bold statement while respecting its urban context. Clean lines and thoughtful " +
				"massing create dramatic interplay of light and shadow throughout the day. The building serves as both a container " +
				"for art and a work of art itself.",
			HeroImage: "/images/portfolio-2.png",
			Gallery: []string{
				"/images/portfolio-2.png",
				"/images/portfolio-1.png",
				"/images/portfolio-almashraq.jpg",
			},
		},
	}
}
