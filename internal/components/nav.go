package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"designcollective.dev/internal/models"
	"designcollective.dev/internal/view"
)

// SiteNav is the fixed header. The dropdown is always in the markup and
// hidden while the menu is closed so menu.js can flip it in place; without
// scripts the toggle and the in-menu links reload the page carrying the
// next menu state.
func SiteNav(c *models.Content, menu *view.Menu) g.Node {
	open := menu.IsOpen()

	// the toggle link leads to the state a press would produce
	pressed := *menu
	pressed.Toggle()

	toggleLabel := "☰"
	if open {
		toggleLabel = "✕"
	}

	return Header(
		Class("fixed top-0 left-0 right-0 z-40 bg-white/60 backdrop-blur"),
		Div(
			Class(container),
			Div(
				Class("flex h-16 items-center justify-between"),
				A(
					Href("#"+models.AnchorHome),
					Class("group inline-flex items-center gap-3"),
					brandMark(),
					Span(Class("text-sm sm:text-base font-semibold tracking-tight"), g.Text(c.Brand)),
				),
				Nav(
					Class("hidden md:flex items-center gap-6"),
					g.Group(g.Map(c.Sections, func(s models.NavSection) g.Node {
						return A(Href(s.Href()), Class("text-sm text-gray-700 hover:text-gray-900 transition-colors"), g.Text(s.Label))
					})),
					A(
						Href(c.CallToAct.Href),
						Class("rounded-full bg-gray-900 text-white text-sm px-4 py-2 shadow hover:shadow-md transition"),
						g.Text(c.CallToAct.Label),
					),
				),
				A(
					Href(menuHref(pressed.State(), "")),
					g.Attr("role", "button"),
					g.Attr("aria-label", "Toggle menu"),
					g.Attr("aria-expanded", boolString(open)),
					Data("menu-toggle", ""),
					Class("md:hidden inline-flex h-10 w-10 items-center justify-center rounded-md border border-gray-200"),
					Span(Data("menu-label", ""), g.Text(toggleLabel)),
				),
			),
			menuPanel(c, menu),
		),
	)
}

func menuPanel(c *models.Content, menu *view.Menu) g.Node {
	// every link inside the panel leads to the closed state
	closed := *menu
	next := closed.ForceClose()

	return Div(
		Class("md:hidden pb-4"),
		Data("menu-panel", ""),
		g.If(!menu.IsOpen(), g.Attr("hidden")),
		Div(
			Class("mt-2 space-y-1 rounded-lg border border-gray-200 p-2 bg-white/70 backdrop-blur"),
			g.Group(g.Map(c.Sections, func(s models.NavSection) g.Node {
				return A(
					Href(menuHref(next, s.ID)),
					Data("menu-close", ""),
					Class("block rounded-md px-3 py-2 text-sm text-gray-800 hover:bg-gray-50"),
					g.Text(s.Label),
				)
			})),
			A(
				Href(menuHref(next, anchorOf(c.CallToAct.Href))),
				Data("menu-close", ""),
				Class("block rounded-md px-3 py-2 text-sm text-white bg-gray-900"),
				g.Text(c.CallToAct.Label),
			),
		),
	)
}

// menuHref builds a same-page link that carries the menu state and
// optionally scrolls to an anchor
func menuHref(state view.MenuState, anchor string) string {
	href := "?" + view.MenuParam + "=" + state.String()
	if anchor != "" {
		href += "#" + anchor
	}
	return href
}

func anchorOf(href string) string {
	if len(href) > 1 && href[0] == '#' {
		return href[1:]
	}
	return ""
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
