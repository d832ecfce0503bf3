package services

import (
	"fmt"
	"slices"

	"vado.sa/internal/content"
	"vado.sa/internal/models"
)

// ProjectService handles project catalog lookups.
// The catalog is fixed at construction and safe for concurrent readers.
type ProjectService struct {
	projects []models.Project
}

// NewProjectService creates a ProjectService over an ordered catalog.
// The records are copied, so later changes by the caller are not observed.
func NewProjectService(projects []models.Project) (*ProjectService, error) {
	if err := content.Validate(projects); err != nil {
		return nil, fmt.Errorf("new project service: %w", err)
	}
	return &ProjectService{projects: cloneAll(projects)}, nil
}

// GetAll returns all projects in canonical order
func (s *ProjectService) GetAll() []models.Project {
	return cloneAll(s.projects)
}

// GetBySlug returns the project with the given slug.
// The boolean is false when no project matches.
func (s *ProjectService) GetBySlug(slug string) (models.Project, bool) {
	i := s.indexOf(slug)
	if i < 0 {
		return models.Project{}, false
	}
	return clone(s.projects[i]), true
}

// GetAdjacent returns the previous and next projects around slug.
// Both are nil when the slug is not in the catalog.
func (s *ProjectService) GetAdjacent(slug string) models.Adjacent {
	i := s.indexOf(slug)
	if i < 0 {
		return models.Adjacent{}
	}

	var adj models.Adjacent
	if i > 0 {
		prev := clone(s.projects[i-1])
		adj.Previous = &prev
	}
	if i < len(s.projects)-1 {
		next := clone(s.projects[i+1])
		adj.Next = &next
	}
	return adj
}

// Len returns the number of projects in the catalog
func (s *ProjectService) Len() int {
	return len(s.projects)
}

func (s *ProjectService) indexOf(slug string) int {
	for i := range s.projects {
		if s.projects[i].Slug == slug {
			return i
		}
	}
	return -1
}

// clone copies p including its gallery, so no caller shares catalog memory
func clone(p models.Project) models.Project {
	p.Gallery = slices.Clone(p.Gallery)
	return p
}

func cloneAll(projects []models.Project) []models.Project {
	out := make([]models.Project, len(projects))
	for i, p := range projects {
		out[i] = clone(p)
	}
	return out
}
