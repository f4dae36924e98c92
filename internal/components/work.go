package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"designcollective.dev/internal/models"
	"designcollective.dev/internal/motion"
)

func TagChip(label string) g.Node {
	return Span(
		Class("inline-flex items-center rounded-full bg-gray-900/5 text-gray-800 px-2 py-1 text-xs font-medium"),
		g.Text(label),
	)
}

// ProjectCard renders one project as a link. The slot holds the card's
// position in its own collection and the entrance derived from it.
func ProjectCard(p models.Project, slot motion.Slot) g.Node {
	return A(
		Href(p.Link),
		Data("project", p.Slug()),
		Data("motion-id", slot.ID),
		Motion(slot.Entrance),
		Class("group block rounded-2xl border border-gray-200 bg-white/70 backdrop-blur p-5 hover:shadow-md transition relative overflow-hidden"),

		Div(
			Class("absolute inset-0 opacity-0 group-hover:opacity-100 transition pointer-events-none"),
			Div(Class("absolute -inset-20 bg-gradient-to-tr from-blue-500/10 via-fuchsia-500/10 to-amber-400/10 blur-2xl")),
		),
		Div(
			Class("flex items-start justify-between gap-4"),
			Div(
				H3(
					Class("text-lg font-semibold tracking-tight flex items-center gap-2"),
					g.Text(p.Title),
					Icon("arrow-up-right", "size-[18px] opacity-0 group-hover:opacity-100 transition"),
				),
				P(Class("mt-1 text-xs text-gray-600"), g.Text(p.Role)),
			),
		),
		P(Class("mt-3 text-sm text-gray-700 leading-relaxed"), g.Text(p.Desc)),
		Div(
			Class("mt-4 flex flex-wrap gap-2"),
			g.Group(g.Map(p.Tags, TagChip)),
		),
	)
}

func projectGrid(col models.Collection) g.Node {
	tl := motion.NewTimeline(motion.CardEntrance)
	for _, p := range col.Projects {
		tl.Add(col.Key + "-" + p.Slug())
	}

	cards := make([]g.Node, 0, tl.Len())
	for _, slot := range tl.Schedule() {
		cards = append(cards, ProjectCard(col.Projects[slot.Index], slot))
	}
	return Div(
		Class("mt-8 grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-5"),
		Data("collection-grid", ""),
		g.Group(cards),
	)
}

func collectionHeader(col models.Collection, extra g.Node) g.Node {
	return Div(
		Class("flex items-end justify-between gap-6"),
		Div(
			H2(Class("text-2xl sm:text-3xl font-semibold tracking-tight"), g.Text(col.Heading)),
			g.If(col.Blurb != "", P(Class("mt-2 text-sm text-gray-600 max-w-xl"), g.Text(col.Blurb))),
		),
		extra,
	)
}

// WorkSection shows the team and individual collections. Each collection
// staggers its cards from its own index zero.
func WorkSection(list models.ProjectList, exploreAll string) g.Node {
	var explore g.Node
	if exploreAll != "" {
		explore = A(
			Href(exploreAll),
			Class("hidden sm:inline-flex items-center gap-1 text-sm text-gray-700 hover:text-gray-900"),
			g.Text("Explore all"),
			Icon("arrow-up-right", "size-4"),
		)
	}

	return Section(
		ID(models.AnchorWork),
		Class("relative py-16 scroll-mt-16"),
		Div(
			Class("absolute inset-x-0 top-0 -z-0"),
			Div(Class("pointer-events-none mx-auto h-40 max-w-7xl bg-gradient-to-b from-blue-500/10 via-fuchsia-500/10 to-transparent blur-2xl")),
		),
		Div(
			Class(container+" relative"),
			Div(
				Data("collection", list.Team.Key),
				collectionHeader(list.Team, explore),
				projectGrid(list.Team),
			),
			Div(
				Class("mt-14"),
				Data("collection", list.Individual.Key),
				collectionHeader(list.Individual, nil),
				projectGrid(list.Individual),
			),
		),
	)
}
