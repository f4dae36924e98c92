package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefaultContentIsValid(t *testing.T) {
	c := DefaultContent()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Projects.Team.Projects, 3)
	assert.Len(t, c.Projects.Individual.Projects, 3)
	assert.Len(t, c.Sections, 3)
}

func TestDefaultContentReturnsCopies(t *testing.T) {
	a := DefaultContent()
	a.Sections[0].Label = "Changed"
	assert.Equal(t, "Work", DefaultContent().Sections[0].Label)
}

func TestContentValidateAggregates(t *testing.T) {
	c := DefaultContent()
	c.Sections = append(c.Sections, NavSection{ID: "work", Label: "Again"})
	c.Projects.Team.Projects = append(c.Projects.Team.Projects, c.Projects.Team.Projects[0])
	c.Contact.Email = "nowhere"

	err := c.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	assert.ErrorIs(t, err, ErrInvalidSection)
	assert.ErrorIs(t, err, ErrInvalidProject)
}

func TestSameTitleAcrossCollectionsIsAllowed(t *testing.T) {
	c := DefaultContent()
	c.Projects.Individual.Projects[0].Title = c.Projects.Team.Projects[0].Title
	assert.NoError(t, c.Validate())
}

func TestNewNavSection(t *testing.T) {
	s, err := NewNavSection("work", "Work")
	require.NoError(t, err)
	assert.Equal(t, "#work", s.Href())

	_, err = NewNavSection("", "Work")
	assert.ErrorIs(t, err, ErrInvalidSection)
	_, err = NewNavSection("work", " ")
	assert.ErrorIs(t, err, ErrInvalidSection)
}

func TestSectionMustTargetRenderedAnchor(t *testing.T) {
	c := DefaultContent()
	c.Sections = append(c.Sections, NavSection{ID: "blog", Label: "Blog"})
	assert.ErrorIs(t, c.Validate(), ErrInvalidSection)
	assert.True(t, IsAnchor("home"))
	assert.False(t, IsAnchor("blog"))
}

func TestFillFrom(t *testing.T) {
	c := Content{
		Brand:    "Studio",
		Projects: ProjectList{Team: Collection{Key: "team", Projects: []Project{{Title: "Only", Link: "#"}}}},
	}
	c.FillFrom(DefaultContent())

	assert.Equal(t, "Studio", c.Brand)
	require.Len(t, c.Projects.Team.Projects, 1)
	assert.Empty(t, c.Projects.Team.Projects[0].Role)
	assert.Empty(t, c.Projects.Team.Heading)
	assert.Len(t, c.Projects.Individual.Projects, 3)
	assert.Equal(t, DefaultContent().Contact, c.Contact)
	assert.Equal(t, DefaultContent().Hero, c.Hero)
}

func TestValidateCallToActMustBeSectionAnchor(t *testing.T) {
	for _, href := range []string{"javascript:alert(1)", "https://example.com", "#", "#blog", ""} {
		c := DefaultContent()
		c.CallToAct.Href = href
		assert.ErrorIs(t, c.Validate(), ErrInvalidLink, href)
	}

	c := DefaultContent()
	c.CallToAct.Href = "#about"
	assert.NoError(t, c.Validate())
}

func TestValidateChecksPageLinks(t *testing.T) {
	cases := map[string]func(c *Content){
		"hero primary":   func(c *Content) { c.Hero.Primary.Href = "" },
		"hero secondary": func(c *Content) { c.Hero.Secondary.Href = "javascript:void(0)" },
		"explore all":    func(c *Content) { c.ExploreAll = "not a url" },
		"linkedin":       func(c *Content) { c.Contact.LinkedIn = "linkedin" },
		"github":         func(c *Content) { c.Contact.GitHub = "ftp://x" },
		"scene":          func(c *Content) { c.SceneURL = "scene.splinecode" },
	}
	for name, mutate := range cases {
		c := DefaultContent()
		mutate(c)
		err := c.Validate()
		assert.ErrorIs(t, err, ErrInvalidLink, name)
		assert.Len(t, multierr.Errors(err), 1, name)
	}

	c := DefaultContent()
	c.ExploreAll = ""
	assert.NoError(t, c.Validate(), "explore all may be left out")
}

func TestValidateCollectionKeys(t *testing.T) {
	c := DefaultContent()
	c.Projects.Team.Key = "x"
	c.Projects.Individual.Key = "x"
	assert.ErrorIs(t, c.Validate(), ErrInvalidCollection)

	c = DefaultContent()
	c.Projects.Individual.Key = ""
	assert.ErrorIs(t, c.Validate(), ErrInvalidCollection)
}

func TestValidateSlugCollision(t *testing.T) {
	c := DefaultContent()
	c.Projects.Team.Projects = []Project{
		{Title: "C++", Link: "#"},
		{Title: "C", Link: "#"},
	}
	err := c.Validate()
	assert.ErrorIs(t, err, ErrInvalidProject)
	assert.Contains(t, err.Error(), `share slug "c"`)
}

func TestValidateReportsEveryBadField(t *testing.T) {
	c := DefaultContent()
	c.CallToAct.Href = "javascript:alert(1)"
	c.ExploreAll = "not a url"
	c.Contact.GitHub = "ftp://x"
	c.Projects.Team.Key = "x"
	c.Projects.Individual.Key = "x"

	err := c.Validate()
	assert.Len(t, multierr.Errors(err), 4)
}
