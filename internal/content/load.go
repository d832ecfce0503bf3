package content

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"vado.sa/internal/models"
)

// ErrInvalidCatalog is returned when a catalog breaks the slug rules
var ErrInvalidCatalog = errors.New("invalid project catalog")

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// LoadProjects reads an ordered catalog from a YAML (or JSON) file.
// The file holds a top-level "projects" list.
func LoadProjects(path string) ([]models.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var list models.ProjectList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	if err := Validate(list.Projects); err != nil {
		return nil, err
	}
	return list.Projects, nil
}

// Validate checks that every slug is URL-safe and unique
func Validate(projects []models.Project) error {
	seen := make(map[string]int, len(projects))
	for i, p := range projects {
		if !slugPattern.MatchString(p.Slug) {
			return fmt.Errorf("%w: project %d has slug %q, want lowercase letters, digits and dashes", ErrInvalidCatalog, i, p.Slug)
		}
		if first, dup := seen[p.Slug]; dup {
			return fmt.Errorf("%w: slug %q used by projects %d and %d", ErrInvalidCatalog, p.Slug, first, i)
		}
		seen[p.Slug] = i
	}
	return nil
}
