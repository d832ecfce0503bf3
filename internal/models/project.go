package models

// Project represents a single portfolio project
type Project struct {
	Slug        string   `json:"slug" yaml:"slug"`
	Title       string   `json:"title" yaml:"title"`
	Category    string   `json:"category" yaml:"category"`
	Client      string   `json:"client" yaml:"client"`
	Location    string   `json:"location" yaml:"location"`
	Year        string   `json:"year" yaml:"year"`
	Description string   `json:"description" yaml:"description"`
	HeroImage   string   `json:"hero_image" yaml:"hero_image"`
	Gallery     []string `json:"gallery" yaml:"gallery"`
}

// ProjectList wraps the ordered array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}

// Adjacent holds the neighbours of a project in catalog order.
// Either side is nil at the ends of the catalog or for an unknown slug.
type Adjacent struct {
	Previous *Project `json:"previous"`
	Next     *Project `json:"next"`
}
