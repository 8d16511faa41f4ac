package content

// Section is one overlay panel's static copy.
type Section struct {
	ID    ID
	Title string
	Body  string
}

var sections = map[ID]Section{
	IDAbout: {
		ID:    IDAbout,
		Title: "About Me",
		Body: "Software engineer with a soft spot for graphics, tooling and\n" +
			"well-worn keyboards. This desk is a map of what I do: poke\n" +
			"around, everything on it opens.",
	},
	IDContact: {
		ID:    IDContact,
		Title: "Contact",
		Body: "Email: hello@example.dev\n" +
			"GitHub: github.com/example\n" +
			"Based in Berlin, usually reachable within a day.",
	},
	IDNotes: {
		ID:    IDNotes,
		Title: "Notebook",
		Body: "Half-finished ideas, conference scribbles and sketches of\n" +
			"systems that mostly exist now. The notebook always fills up\n" +
			"faster than the backlog empties.",
	},
	IDCard: {
		ID:    IDCard,
		Title: "Business Card",
		Body: "The short version: backend and graphics engineering,\n" +
			"available for interesting problems.",
	},
	IDProjects: {
		ID:    IDProjects,
		Title: "Projects",
		Body: "Selected work: a tile-based renderer, a scene editor, a\n" +
			"handful of CLIs people actually use, and this desk. Sources\n" +
			"and write-ups live on the linked GitHub.",
	},
	IDResume: {
		ID:    IDResume,
		Title: "Resume",
		Body: "Eight years shipping software across rendering, backend and\n" +
			"infrastructure teams. Full CV available as PDF on request.",
	},
	IDSkills: {
		ID:    IDSkills,
		Title: "Skills",
		Body: "Go, C, GLSL, a dangerous amount of shell. Comfortable from\n" +
			"the GPU up to the load balancer.",
	},
}

// Lookup returns the static section for a panel id.
func Lookup(id ID) (Section, bool) {
	s, ok := sections[id]
	return s, ok
}
