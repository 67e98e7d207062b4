package render

import (
	"bytes"
	"testing"
	"time"

	"resumeapi/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() model.Resume {
	r := model.NewResume("user-1", "Backend CV", "tpl-1", time.Now())
	r.PersonalInfo = model.PersonalInfo{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		GitHub:   "https://github.com/ada",
		Summary:  "Writes programs for engines.",
	}
	r.Experience = []model.Experience{{ID: "e1", Company: "Engines Ltd", Position: "Engineer", StartDate: "1842", Current: true}}
	r.Skills = []model.SkillGroup{{ID: "s1", Category: "Math", Items: []string{"Algorithms", "Notes"}}}
	return *r
}

func TestHTMLRenderer_Render(t *testing.T) {
	h := NewHTMLRenderer()

	t.Run("sections and style", func(t *testing.T) {
		tpl := model.DefaultTemplates()[2]
		var buf bytes.Buffer
		require.NoError(t, h.Render(&buf, sampleResume(), &tpl))

		out := buf.String()
		assert.Contains(t, out, "Ada Lovelace")
		assert.Contains(t, out, "Professional Summary")
		assert.Contains(t, out, "Work Experience")
		assert.Contains(t, out, "Present")
		assert.Contains(t, out, `<span class="tag">Algorithms</span>`)
		assert.Contains(t, out, `class="layout-executive"`)
		assert.Contains(t, out, "Playfair Display")
		assert.NotContains(t, out, "Education")
	})

	t.Run("dangling template uses defaults", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, h.Render(&buf, sampleResume(), nil))
		assert.Contains(t, buf.String(), `class="layout-modern"`)
		assert.Contains(t, buf.String(), "#2563eb")
	})

	t.Run("empty name placeholder and escaping", func(t *testing.T) {
		r := sampleResume()
		r.PersonalInfo.FullName = ""
		r.PersonalInfo.Summary = "<script>alert(1)</script>"

		var buf bytes.Buffer
		require.NoError(t, h.Render(&buf, r, nil))
		assert.Contains(t, buf.String(), "Your Name")
		assert.NotContains(t, buf.String(), "<script>")
	})
}

func TestStyleFor(t *testing.T) {
	def := model.DefaultTemplates()[0].Config

	assert.Equal(t, def, StyleFor(nil))

	partial := &model.Template{Config: model.TemplateConfig{Layout: "creative", Colors: model.TemplateColors{Primary: "#000000"}}}
	got := StyleFor(partial)
	assert.Equal(t, "creative", got.Layout)
	assert.Equal(t, "#000000", got.Colors.Primary)
	assert.Equal(t, def.Colors.Secondary, got.Colors.Secondary)
	assert.Equal(t, def.Fonts, got.Fonts)
}
