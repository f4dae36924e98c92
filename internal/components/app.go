package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"designcollective.dev/internal/models"
	"designcollective.dev/internal/view"
)

// App stacks the page sections in their fixed order
func App(c *models.Content, menu *view.Menu, clock view.Clock) g.Node {
	return Div(
		Class("min-h-screen bg-gradient-to-b from-white via-white to-white"),
		SiteNav(c, menu),
		Main(
			Hero(c),
			WorkSection(c.Projects, c.ExploreAll),
			About(c.About),
			Contact(c.Contact),
		),
		PageFooter(c.Brand, c.Sections, clock),
	)
}

// Page wraps App in the document layout
func Page(c *models.Content, menu *view.Menu, clock view.Clock, staticPrefix string) g.Node {
	return Layout(
		PageConfig{
			Title:        c.Brand + " · Portfolio",
			Description:  c.Hero.Subheadline,
			StaticPrefix: staticPrefix,
		},
		App(c, menu, clock),
	)
}
