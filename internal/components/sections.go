package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"designcollective.dev/internal/models"
	"designcollective.dev/internal/motion"
	"designcollective.dev/internal/view"
)

// Hero is the full-viewport opening section. Its content animates on mount
// rather than on scroll because it is always in view at load.
func Hero(c *models.Content) g.Node {
	h := c.Hero
	return Section(
		ID(models.AnchorHome),
		Class("relative h-[88vh] sm:h-[92vh] pt-16"),
		Div(
			Class("absolute inset-0"),
			g.If(c.SceneURL != "", Scene(c.SceneURL, "100%", "100%")),
		),
		Div(Class("pointer-events-none absolute inset-0 bg-gradient-to-b from-white/10 via-white/20 to-white")),
		Div(
			Class("relative mx-auto max-w-7xl h-full flex items-end sm:items-center px-4 sm:px-6 lg:px-8"),
			Div(
				Class("max-w-2xl pb-10 sm:pb-0"),
				Motion(motion.HeroEntrance()),
				Div(
					Class("inline-flex items-center gap-2 rounded-full border border-gray-200 bg-white/70 px-3 py-1 text-xs"),
					Icon("sparkles", "size-3.5 text-blue-600"),
					g.Text(h.Badge),
				),
				H1(Class("mt-4 text-4xl sm:text-6xl font-semibold tracking-tight leading-tight"), g.Text(h.Headline)),
				P(Class("mt-4 text-gray-700 max-w-xl"), g.Text(h.Subheadline)),
				Div(
					Class("mt-6 flex items-center gap-3"),
					A(
						Href(h.Primary.Href),
						Class("rounded-full bg-gray-900 text-white text-sm px-5 py-2.5 shadow hover:shadow-md transition"),
						g.Text(h.Primary.Label),
					),
					A(
						Href(h.Secondary.Href),
						Class("rounded-full border border-gray-300 text-gray-900 text-sm px-5 py-2.5 bg-white/70 backdrop-blur hover:bg-white transition"),
						g.Text(h.Secondary.Label),
					),
				),
			),
		),
	)
}

// About renders the two info panels, the second trailing the first
func About(panels [2]models.Panel) g.Node {
	tl := motion.NewTimeline(motion.PanelEntrance)
	for i := range panels {
		tl.Add(fmt.Sprintf("%s-%d", models.AnchorAbout, i))
	}

	nodes := make([]g.Node, 0, tl.Len())
	for _, slot := range tl.Schedule() {
		p := panels[slot.Index]
		nodes = append(nodes, Div(
			Data("motion-id", slot.ID),
			Motion(slot.Entrance),
			Class("rounded-2xl border border-gray-200 bg-white/70 backdrop-blur p-6"),
			H3(Class("text-xl font-semibold tracking-tight"), g.Text(p.Title)),
			P(Class("mt-3 text-sm text-gray-700 leading-relaxed"), g.Text(p.Body)),
		))
	}

	return Section(
		ID(models.AnchorAbout),
		Class("py-16 scroll-mt-16"),
		Div(
			Class(container),
			Div(Class("grid grid-cols-1 md:grid-cols-2 gap-10"), g.Group(nodes)),
		),
	)
}

func Contact(cc models.ContactCopy) g.Node {
	return Section(
		ID(models.AnchorContact),
		Class("py-16 scroll-mt-16"),
		Div(
			Class(container),
			Div(
				Class("rounded-2xl border border-gray-200 bg-white/70 backdrop-blur p-8"),
				Div(
					Class("flex flex-col sm:flex-row sm:items-center sm:justify-between gap-6"),
					Div(
						H3(Class("text-2xl font-semibold tracking-tight"), g.Text(cc.Heading)),
						P(Class("mt-2 text-sm text-gray-700"), g.Text(cc.Text)),
					),
					Div(
						Class("flex items-center gap-3"),
						A(
							Href(cc.MailtoHref()),
							Class("inline-flex items-center gap-2 rounded-full bg-gray-900 text-white text-sm px-5 py-2.5"),
							Icon("mail", "size-4"), g.Text("Email"),
						),
						A(
							Href(cc.LinkedIn),
							Class("inline-flex items-center gap-2 rounded-full border border-gray-300 bg-white/70 text-gray-900 text-sm px-5 py-2.5"),
							Icon("linkedin", "size-4"), g.Text("LinkedIn"),
						),
						A(
							Href(cc.GitHub),
							Class("hidden sm:inline-flex items-center gap-2 rounded-full border border-gray-300 bg-white/70 text-gray-900 text-sm px-5 py-2.5"),
							Icon("github", "size-4"), g.Text("GitHub"),
						),
					),
				),
			),
		),
	)
}

// PageFooter reads the year from clock on every render
func PageFooter(brand string, sections []models.NavSection, clock view.Clock) g.Node {
	return Footer(
		Class("py-10"),
		Div(
			Class(container),
			Div(
				Class("flex flex-col sm:flex-row items-center justify-between gap-4 text-sm text-gray-600"),
				P(Data("copyright", ""), g.Text(Copyright(brand, clock))),
				Div(
					Class("flex items-center gap-4"),
					A(Href("#"+models.AnchorHome), Class("hover:text-gray-900"), g.Text("Top")),
					g.Group(g.Map(sections, func(s models.NavSection) g.Node {
						return A(Href(s.Href()), Class("hover:text-gray-900"), g.Text(s.Label))
					})),
				),
			),
		),
	)
}

// Copyright returns the footer line for the clock's current year
func Copyright(brand string, clock view.Clock) string {
	return fmt.Sprintf("© %d %s. All rights reserved.", clock.Year(), brand)
}
