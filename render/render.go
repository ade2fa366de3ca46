package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/eqsolve/equation"
	"github.com/katalvlaran/eqsolve/inequality"
	"github.com/katalvlaran/eqsolve/system"
)

// Renderer writes results in the configured format.
type Renderer struct {
	opts   Options
	styles Styles
}

// New returns a Renderer with DefaultOptions modified by opts.
func New(opts ...Option) *Renderer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Renderer{opts: o, styles: newStyles(o.Color)}
}

// Options returns the effective settings.
func (r *Renderer) Options() Options { return r.opts }

// SystemReport is the JSON shape of a solved system.
type SystemReport struct {
	Equations [2]string       `json:"equations"`
	Solution  system.Solution `json:"solution"`
}

// NewSystemReport pairs a solution with the standardised equations.
func NewSystemReport(e1, e2 equation.Equation, sol system.Solution) SystemReport {
	return SystemReport{Equations: [2]string{e1.String(), e2.String()}, Solution: sol}
}

// InequalityReport is the JSON shape of a solved inequality.
type InequalityReport struct {
	Standard  string              `json:"standard"`
	Reduced   string              `json:"reduced"`
	Category  inequality.Category `json:"category"`
	Summary   string              `json:"summary"`
	Count     int                 `json:"count"`
	Solutions []inequality.Row    `json:"solutions"`
}

// NewInequalityReport labels xs and fills in the display forms of q.
func NewInequalityReport(q inequality.Inequality, c inequality.Category, xs []int32) InequalityReport {
	return InequalityReport{
		Standard:  q.StandardForm(),
		Reduced:   q.ReducedForm(),
		Category:  c,
		Summary:   inequality.Describe(c, len(xs)),
		Count:     len(xs),
		Solutions: inequality.Label(xs),
	}
}

// System writes the step-by-step report of a solved system.
func (r *Renderer) System(rep SystemReport) error {
	if r.opts.Format == JSON {
		return r.JSON(rep)
	}

	var sb strings.Builder
	for i, sec := range rep.Solution.Trace {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(r.styles.Title.Render("=== " + sec.Title + " ==="))
		sb.WriteString("\n")
		for _, l := range sec.Lines {
			sb.WriteString(r.styleTraceLine(l))
			sb.WriteString("\n")
		}
	}

	return r.write(sb.String())
}

// styleTraceLine highlights the closing verdict lines of a trace.
func (r *Renderer) styleTraceLine(l string) string {
	switch {
	case l == "verified", strings.HasPrefix(l, "solution:"):
		return r.styles.Success.Render(l)
	case strings.HasPrefix(l, "verification failed"):
		return r.styles.Warning.Render(l)
	}

	return l
}

// Inequality writes the standard form, the reduced form, a summary and
// the labeled solution table.
func (r *Renderer) Inequality(rep InequalityReport) error {
	if r.opts.Format == JSON {
		return r.JSON(rep)
	}

	var sb strings.Builder
	sb.WriteString(r.styles.Title.Render("=== Inequality ==="))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "standard form: %s\n", rep.Standard)
	fmt.Fprintf(&sb, "reduced form:  %s\n", rep.Reduced)
	fmt.Fprintf(&sb, "category:      %s\n", rep.Category)
	sb.WriteString("\n")
	if rep.Count == 0 {
		sb.WriteString(r.styles.Warning.Render(rep.Summary))
		sb.WriteString("\n")
		return r.write(sb.String())
	}
	sb.WriteString(r.styles.Success.Render(rep.Summary))
	sb.WriteString("\n")

	t := &table{headers: []string{"#", "x"}}
	for _, row := range rep.Solutions {
		t.addRow(strconv.Itoa(row.Index), strconv.FormatInt(int64(row.Value), 10))
	}
	sb.WriteString(t.view(r.styles))

	return r.write(sb.String())
}

// Error writes a failure line in the error style. JSON output wraps it
// as {"error": "..."}.
func (r *Renderer) Error(err error) error {
	if r.opts.Format == JSON {
		return r.JSON(map[string]string{"error": err.Error()})
	}

	return r.write(r.styles.Error.Render("error: "+err.Error()) + "\n")
}

// JSON writes v as indented JSON followed by a newline.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.opts.Writer)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.opts.Writer, s)

	return err
}
