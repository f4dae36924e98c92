package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SplineViewerSrc is the web component that renders the hero scene
const SplineViewerSrc = "https://unpkg.com/@splinetool/viewer@1.9.48/build/spline-viewer.js"

// motionBoot runs in the head before first paint. It flags the document so
// site.css hides animated elements until motion.js plays them; browsers that
// cannot play them never get the flag and show the content as is.
const motionBoot = `if(!matchMedia("(prefers-reduced-motion: reduce)").matches&&"IntersectionObserver"in window)document.documentElement.classList.add("motion")`

type PageConfig struct {
	Title       string
	Description string
	// StaticPrefix is where the static assets are served from
	StaticPrefix string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Design Collective"
	}
	if config.StaticPrefix == "" {
		config.StaticPrefix = "/static"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Class("scroll-smooth"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				g.If(config.Description != "", Meta(Name("description"), Content(config.Description))),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Script(g.Raw(motionBoot)),
				Script(Src("https://cdn.tailwindcss.com")),
				Link(Rel("stylesheet"), Href(config.StaticPrefix+"/css/site.css")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				Script(Type("module"), Src(SplineViewerSrc)),
			),
			Body(
				Class("text-gray-900 antialiased"),
				g.Group(content),

				Script(Src(config.StaticPrefix+"/js/motion.js")),
				Script(Src(config.StaticPrefix+"/js/menu.js")),
			),
		),
	})
}
