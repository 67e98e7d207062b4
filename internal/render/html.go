// Package render turns a resume into its printable HTML and PDF forms.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"resumeapi/internal/model"
)

//go:embed templates/resume.html.tmpl
var resumeHTML string

var resumePage = template.Must(template.New("resume").Parse(resumeHTML))

// HTMLRenderer renders resumes with the embedded page template.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

type pageData struct {
	Resume model.Resume
	Style  model.TemplateConfig
}

// Render writes r as a standalone HTML page styled by t.
// A nil t (dangling template reference) renders with the default style.
func (h *HTMLRenderer) Render(w io.Writer, r model.Resume, t *model.Template) error {
	var buf bytes.Buffer
	if err := resumePage.Execute(&buf, pageData{Resume: r, Style: StyleFor(t)}); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// StyleFor returns t's style with any blank value filled from the default template.
func StyleFor(t *model.Template) model.TemplateConfig {
	def := model.DefaultTemplates()[0].Config
	if t == nil {
		return def
	}
	c := t.Config
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&c.Colors.Primary, def.Colors.Primary)
	fill(&c.Colors.Secondary, def.Colors.Secondary)
	fill(&c.Colors.Text, def.Colors.Text)
	fill(&c.Colors.Background, def.Colors.Background)
	fill(&c.Fonts.Heading, def.Fonts.Heading)
	fill(&c.Fonts.Body, def.Fonts.Body)
	fill(&c.Layout, def.Layout)
	return c
}
