package services

import (
	"errors"
	"fmt"

	"designcollective.dev/internal/models"
)

// ErrNotFound is returned for unknown collections and projects
var ErrNotFound = errors.New("not found")

// ProjectService handles project-related operations
type ProjectService struct {
	content *models.Content
}

// NewProjectService creates a new ProjectService
func NewProjectService(content *models.Content) *ProjectService {
	return &ProjectService{content: content}
}

// Content returns the page content the service was built from
func (s *ProjectService) Content() *models.Content {
	return s.content
}

// Sections returns the navigation sections in display order
func (s *ProjectService) Sections() []models.NavSection {
	return s.content.Sections
}

// Collections returns both collections, team first
func (s *ProjectService) Collections() []models.Collection {
	return []models.Collection{s.content.Projects.Team, s.content.Projects.Individual}
}

// Collection returns a collection by key
func (s *ProjectService) Collection(key string) (*models.Collection, error) {
	switch key {
	case s.content.Projects.Team.Key:
		return &s.content.Projects.Team, nil
	case s.content.Projects.Individual.Key:
		return &s.content.Projects.Individual, nil
	}
	return nil, fmt.Errorf("collection %q: %w", key, ErrNotFound)
}

// GetBySlug returns a specific project of a collection by its title slug
func (s *ProjectService) GetBySlug(key, slug string) (*models.Project, error) {
	col, err := s.Collection(key)
	if err != nil {
		return nil, err
	}
	for i := range col.Projects {
		if col.Projects[i].Slug() == slug {
			return &col.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("project %q in %q: %w", slug, key, ErrNotFound)
}
