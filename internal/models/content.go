package models

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Anchor ids every page must expose exactly once
const (
	AnchorHome    = "home"
	AnchorWork    = "work"
	AnchorAbout   = "about"
	AnchorContact = "contact"
)

// Anchors lists the in-page targets in page order
var Anchors = []string{AnchorHome, AnchorWork, AnchorAbout, AnchorContact}

// IsAnchor reports whether id is one of the rendered section anchors
func IsAnchor(id string) bool {
	for _, a := range Anchors {
		if a == id {
			return true
		}
	}
	return false
}

var (
	// ErrInvalidSection is returned when a nav section fails validation
	ErrInvalidSection = errors.New("invalid nav section")
	// ErrInvalidCollection is returned for empty or repeated collection keys
	ErrInvalidCollection = errors.New("invalid collection")
	// ErrInvalidLink is returned when a page link fails ValidateLink
	ErrInvalidLink = errors.New("invalid link")
)

// NavSection is one in-page anchor target listed in the navigation
type NavSection struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// NewNavSection builds a NavSection and validates it
func NewNavSection(id, label string) (NavSection, error) {
	s := NavSection{ID: id, Label: label}
	if err := s.Validate(); err != nil {
		return NavSection{}, err
	}
	return s, nil
}

// Validate checks that the section has a usable id and a label
func (s NavSection) Validate() error {
	if s.ID == "" || strings.ContainsAny(s.ID, " #") {
		return fmt.Errorf("%w: bad id %q", ErrInvalidSection, s.ID)
	}
	if strings.TrimSpace(s.Label) == "" {
		return fmt.Errorf("%w: %q has no label", ErrInvalidSection, s.ID)
	}
	return nil
}

// Href returns the in-page link for the section
func (s NavSection) Href() string {
	return "#" + s.ID
}

// Action is a labelled link such as a call to action
type Action struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// HeroCopy holds the foreground text of the hero
type HeroCopy struct {
	Badge       string `json:"badge"`
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	Primary     Action `json:"primary"`
	Secondary   Action `json:"secondary"`
}

// Panel is a titled block of prose
type Panel struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ContactCopy holds the contact panel text and outbound links
type ContactCopy struct {
	Heading  string `json:"heading"`
	Text     string `json:"text"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// MailtoHref returns the mail link for the contact address
func (c ContactCopy) MailtoHref() string {
	return "mailto:" + c.Email
}

// Content is everything the page renders
type Content struct {
	Brand      string       `json:"brand"`
	CallToAct  Action       `json:"call_to_action"`
	Sections   []NavSection `json:"sections"`
	SceneURL   string       `json:"scene_url"`
	Hero       HeroCopy     `json:"hero"`
	Projects   ProjectList  `json:"projects"`
	ExploreAll string       `json:"explore_all"`
	About      [2]Panel     `json:"about"`
	Contact    ContactCopy  `json:"contact"`
}

// Validate checks every record and the uniqueness rules: section ids and
// collection keys unique, titles and their slugs unique within their
// collection. All violations are reported.
func (c *Content) Validate() error {
	var err error

	if strings.TrimSpace(c.Brand) == "" {
		err = multierr.Append(err, errors.New("empty brand"))
	}

	seen := make(map[string]bool, len(c.Sections))
	for _, s := range c.Sections {
		if verr := s.Validate(); verr != nil {
			err = multierr.Append(err, verr)
			continue
		}
		if seen[s.ID] {
			err = multierr.Append(err, fmt.Errorf("%w: duplicate id %q", ErrInvalidSection, s.ID))
		}
		if !IsAnchor(s.ID) {
			err = multierr.Append(err, fmt.Errorf("%w: no section renders anchor %q", ErrInvalidSection, s.ID))
		}
		seen[s.ID] = true
	}

	// the mobile menu closes and then scrolls, so the call to action must
	// stay on the page
	if href := c.CallToAct.Href; !strings.HasPrefix(href, "#") || !IsAnchor(href[1:]) {
		err = multierr.Append(err, fmt.Errorf("%w: call to action %q is not a section anchor", ErrInvalidLink, c.CallToAct.Href))
	}

	links := []struct{ name, href string }{
		{"hero primary action", c.Hero.Primary.Href},
		{"hero secondary action", c.Hero.Secondary.Href},
		{"contact linkedin", c.Contact.LinkedIn},
		{"contact github", c.Contact.GitHub},
	}
	if c.ExploreAll != "" {
		links = append(links, struct{ name, href string }{"explore all", c.ExploreAll})
	}
	if c.SceneURL != "" {
		links = append(links, struct{ name, href string }{"scene url", c.SceneURL})
	}
	for _, l := range links {
		if lerr := ValidateLink(l.href); lerr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: %s: %v", ErrInvalidLink, l.name, lerr))
		}
	}

	keys := make(map[string]bool, 2)
	for _, col := range []Collection{c.Projects.Team, c.Projects.Individual} {
		switch {
		case col.Key == "":
			err = multierr.Append(err, fmt.Errorf("%w: empty key for %q", ErrInvalidCollection, col.Heading))
		case keys[col.Key]:
			err = multierr.Append(err, fmt.Errorf("%w: duplicate key %q", ErrInvalidCollection, col.Key))
		}
		keys[col.Key] = true

		titles := make(map[string]bool, len(col.Projects))
		slugs := make(map[string]string, len(col.Projects))
		for _, p := range col.Projects {
			if verr := p.Validate(); verr != nil {
				err = multierr.Append(err, fmt.Errorf("%s: %w", col.Key, verr))
				continue
			}
			if titles[p.Title] {
				err = multierr.Append(err, fmt.Errorf("%s: %w: duplicate title %q", col.Key, ErrInvalidProject, p.Title))
			} else if other, ok := slugs[p.Slug()]; ok {
				err = multierr.Append(err, fmt.Errorf("%s: %w: %q and %q share slug %q", col.Key, ErrInvalidProject, other, p.Title, p.Slug()))
			}
			titles[p.Title] = true
			slugs[p.Slug()] = p.Title
		}
	}

	if !strings.Contains(c.Contact.Email, "@") {
		err = multierr.Append(err, fmt.Errorf("contact email %q is not an address", c.Contact.Email))
	}

	return err
}

// FillFrom copies each top-level field of d into c where c leaves it unset.
// A collection counts as unset only when it has neither a key nor projects.
func (c *Content) FillFrom(d *Content) {
	if c.Brand == "" {
		c.Brand = d.Brand
	}
	if c.CallToAct == (Action{}) {
		c.CallToAct = d.CallToAct
	}
	if c.Sections == nil {
		c.Sections = d.Sections
	}
	if c.SceneURL == "" {
		c.SceneURL = d.SceneURL
	}
	if c.Hero == (HeroCopy{}) {
		c.Hero = d.Hero
	}
	if c.Projects.Team.Key == "" && c.Projects.Team.Projects == nil {
		c.Projects.Team = d.Projects.Team
	}
	if c.Projects.Individual.Key == "" && c.Projects.Individual.Projects == nil {
		c.Projects.Individual = d.Projects.Individual
	}
	if c.ExploreAll == "" {
		c.ExploreAll = d.ExploreAll
	}
	if c.About == ([2]Panel{}) {
		c.About = d.About
	}
	if c.Contact == (ContactCopy{}) {
		c.Contact = d.Contact
	}
}
