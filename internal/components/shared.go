package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"designcollective.dev/internal/motion"
)

const container = "mx-auto max-w-7xl px-4 sm:px-6 lg:px-8"

// Icon renders a lucide icon through iconify
func Icon(name, class string) g.Node {
	classes := "iconify inline-block"
	if class != "" {
		classes += " " + class
	}
	return Span(
		Class(classes),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("aria-hidden", "true"),
	)
}

// Scene embeds the Spline viewer. It is an opaque box sized by the caller;
// load failures are the viewer's own business.
func Scene(src, width, height string) g.Node {
	return g.El("spline-viewer",
		g.Attr("url", src),
		Style("width:"+width+";height:"+height),
	)
}

// Motion emits the data-motion-* attributes read by static/js/motion.js
func Motion(e motion.Entrance) g.Node {
	return g.Group([]g.Node{
		Data("motion", string(e.Mode)),
		Data("motion-delay", strconv.FormatInt(e.Delay.Milliseconds(), 10)),
		Data("motion-duration", strconv.FormatInt(e.Duration.Milliseconds(), 10)),
		Data("motion-y", strconv.Itoa(e.OffsetY)),
		g.If(e.Once, Data("motion-once", "true")),
		g.If(e.Amount > 0, Data("motion-amount", strconv.FormatFloat(e.Amount, 'f', -1, 64))),
	})
}

func brandMark() g.Node {
	return Div(Class("h-8 w-8 rounded-xl bg-gradient-to-br from-blue-500 via-fuchsia-500 to-amber-400 shadow-lg"))
}
