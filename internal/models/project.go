package models

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidProject is returned when a project record fails validation
var ErrInvalidProject = errors.New("invalid project")

// Project represents one portfolio card
type Project struct {
	Title string   `json:"title"`
	Role  string   `json:"role"`
	Desc  string   `json:"desc"`
	Tags  []string `json:"tags"`
	Link  string   `json:"link"`
}

// NewProject builds a Project and validates it
func NewProject(title, role, desc string, tags []string, link string) (Project, error) {
	p := Project{
		Title: title,
		Role:  role,
		Desc:  desc,
		Tags:  append([]string(nil), tags...),
		Link:  link,
	}
	if err := p.Validate(); err != nil {
		return Project{}, err
	}
	return p, nil
}

// MustProject is NewProject for compile-time sample data
func MustProject(title, role, desc string, tags []string, link string) Project {
	p, err := NewProject(title, role, desc, tags, link)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate checks the title, its slug and the link of a project
func (p Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidProject)
	}
	if p.Slug() == "" {
		return fmt.Errorf("%w: title %q has no letters or digits", ErrInvalidProject, p.Title)
	}
	if err := ValidateLink(p.Link); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidProject, p.Title, err)
	}
	return nil
}

// Slug returns the URL-safe form of the title
func (p Project) Slug() string {
	return Slugify(p.Title)
}

// ValidateLink accepts the placeholder "#", in-page anchors, mailto links
// and absolute http(s) URLs.
func ValidateLink(link string) error {
	switch {
	case link == "":
		return errors.New("empty link")
	case link == "#":
		return nil
	case strings.HasPrefix(link, "#"):
		if strings.ContainsAny(link[1:], " #") {
			return fmt.Errorf("malformed anchor %q", link)
		}
		return nil
	}

	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("malformed link %q: %w", link, err)
	}
	switch u.Scheme {
	case "mailto":
		if !strings.Contains(u.Opaque, "@") {
			return fmt.Errorf("mailto link without address %q", link)
		}
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("link without host %q", link)
		}
	default:
		return fmt.Errorf("unsupported link scheme %q", u.Scheme)
	}
	return nil
}

// Slugify lowercases s and joins its alphanumeric runs with dashes
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Collection is an ordered group of projects shown under one heading.
// Order is display order and drives the entrance stagger.
type Collection struct {
	Key      string    `json:"key"`
	Heading  string    `json:"heading"`
	Blurb    string    `json:"blurb"`
	Projects []Project `json:"projects"`
}

// ProjectList wraps the two collections of the work section
type ProjectList struct {
	Team       Collection `json:"team"`
	Individual Collection `json:"individual"`
}
