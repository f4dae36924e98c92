package models

// DefaultSceneURL is the Spline scene shown behind the hero
const DefaultSceneURL = "https://prod.spline.design/VJLoxp84lCdVfdZu/scene.splinecode"

// DefaultContent returns the sample content of the site. Each call returns
// a fresh copy.
func DefaultContent() *Content {
	return &Content{
		Brand:     "Design Collective",
		CallToAct: Action{Label: "Let’s Collaborate", Href: "#" + AnchorContact},
		Sections: []NavSection{
			{ID: AnchorWork, Label: "Work"},
			{ID: AnchorAbout, Label: "About"},
			{ID: AnchorContact, Label: "Contact"},
		},
		SceneURL: DefaultSceneURL,
		Hero: HeroCopy{
			Badge:       "Tech • Portfolio • Interactive • Playful • Modern",
			Headline:    "We design products that feel intuitive, playful, and unmistakably modern.",
			Subheadline: "A living showcase of our team and individual explorations — from scalable systems to experimental visuals.",
			Primary:     Action{Label: "See the work", Href: "#" + AnchorWork},
			Secondary:   Action{Label: "Get in touch", Href: "#" + AnchorContact},
		},
		Projects: ProjectList{
			Team: Collection{
				Key:     "team",
				Heading: "Team projects",
				Blurb:   "Cross-functional work where we co-created systems, journeys, and interfaces.",
				Projects: []Project{
					MustProject("Unified Design System", "Team effort • Design Ops + UI Kit",
						"Scaled a shared component library across web and mobile with tokens, motion, and accessibility baked in.",
						[]string{"Design System", "Figma Tokens", "A11y"}, "#"),
					MustProject("Analytics Dashboard 2.0", "Team effort • Research + Interaction",
						"Reimagined insights with spatial hierarchy, progressive drill-down, and micro-interactions for clarity.",
						[]string{"Research", "Data Viz", "Prototyping"}, "#"),
					MustProject("Onboarding Journey", "Team effort • UX Strategy",
						"Reduced time-to-value by 42% with contextual nudges, empty states, and guided walkthroughs.",
						[]string{"UX Writing", "Guidance", "Motion"}, "#"),
				},
			},
			Individual: Collection{
				Key:     "individual",
				Heading: "Individual projects",
				Blurb:   "Solo explorations to push craft, motion, and generative visuals.",
				Projects: []Project{
					MustProject("Concept Storefront", "Individual • Visual + Motion",
						"A playful ecommerce concept with tactile interactions and 3D product exploration.",
						[]string{"3D", "Motion", "Visual"}, "#"),
					MustProject("Micro-Interactions Pack", "Individual • Prototyping",
						"A collection of reusable motion patterns for delight without distraction.",
						[]string{"Framer", "Prototyping"}, "#"),
					MustProject("Brand Playground", "Individual • Identity",
						"Explorations in color, type, and depth for a modern, tech-forward tone.",
						[]string{"Brand", "Type", "Exploration"}, "#"),
				},
			},
		},
		ExploreAll: "#",
		About: [2]Panel{
			{
				Title: "How we work",
				Body: "We blend research, systems thinking, and motion to craft coherent product experiences. We value " +
					"playful exploration as much as rigorous execution — prototypes early, tokens everywhere, and a " +
					"steady cadence of critiques.",
			},
			{
				Title: "Toolbox",
				Body: "Figma, Framer, Spline, code, and lots of sticky notes. We lean on tokens and component-driven design " +
					"to build once and ship everywhere.",
			},
		},
		Contact: ContactCopy{
			Heading:  "Let’s build something memorable",
			Text:     "Reach out for collaborations, workshops, or design support.",
			Email:    "design@yourcompany.com",
			LinkedIn: "#",
			GitHub:   "#",
		},
	}
}
