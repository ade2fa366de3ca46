// Package render prints solver results for humans (styled text) or for
// machines (indented JSON).
//
// A Renderer is configured with functional options and writes to a single
// io.Writer:
//
//	r := render.New(render.WithWriter(os.Stdout), render.WithFormat(render.JSON))
//	err := r.System(render.NewSystemReport(e1, e2, sol))
//
// Styling uses lipgloss. With colour disabled every style is plain, so
// text output is stable for tests and pipes.
package render
