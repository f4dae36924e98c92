package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designcollective.dev/internal/models"
)

func TestProjectService(t *testing.T) {
	s := NewProjectService(models.DefaultContent())

	cols := s.Collections()
	require.Len(t, cols, 2)
	assert.Equal(t, "team", cols[0].Key)
	assert.Equal(t, "individual", cols[1].Key)
	assert.Len(t, s.Sections(), 3)

	col, err := s.Collection("individual")
	require.NoError(t, err)
	assert.Equal(t, "Concept Storefront", col.Projects[0].Title)

	_, err = s.Collection("archive")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetBySlug(t *testing.T) {
	s := NewProjectService(models.DefaultContent())

	p, err := s.GetBySlug("team", "analytics-dashboard-2-0")
	require.NoError(t, err)
	assert.Equal(t, "Analytics Dashboard 2.0", p.Title)

	_, err = s.GetBySlug("individual", "analytics-dashboard-2-0")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetBySlug("nope", "x")
	assert.ErrorIs(t, err, ErrNotFound)
}
