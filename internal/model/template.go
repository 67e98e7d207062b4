package model

import "time"

// Template is a read-only catalog entry describing a resume's visual style.
type Template struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Config      TemplateConfig `json:"config"`
	IsPremium   bool           `json:"is_premium"`
	CreatedAt   time.Time      `json:"created_at"`
}

type TemplateConfig struct {
	Colors TemplateColors `json:"colors"`
	Fonts  TemplateFonts  `json:"fonts"`
	Layout string         `json:"layout"`
}

type TemplateColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Text       string `json:"text"`
	Background string `json:"background"`
}

type TemplateFonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// DefaultTemplates is the catalog inserted into an empty templates table.
func DefaultTemplates() []Template {
	return []Template{
		{
			Name:        "Modern Professional",
			Description: "Clean and modern design perfect for tech professionals",
			Category:    "Professional",
			Config: TemplateConfig{
				Colors: TemplateColors{Primary: "#2563eb", Secondary: "#64748b", Text: "#1e293b", Background: "#ffffff"},
				Fonts:  TemplateFonts{Heading: "Inter", Body: "Inter"},
				Layout: "modern",
			},
		},
		{
			Name:        "Creative Designer",
			Description: "Bold and creative template for designers and artists",
			Category:    "Creative",
			Config: TemplateConfig{
				Colors: TemplateColors{Primary: "#7c3aed", Secondary: "#a855f7", Text: "#1f2937", Background: "#ffffff"},
				Fonts:  TemplateFonts{Heading: "Poppins", Body: "Inter"},
				Layout: "creative",
			},
		},
		{
			Name:        "Executive",
			Description: "Sophisticated template for senior executives",
			Category:    "Executive",
			Config: TemplateConfig{
				Colors: TemplateColors{Primary: "#1f2937", Secondary: "#6b7280", Text: "#111827", Background: "#ffffff"},
				Fonts:  TemplateFonts{Heading: "Playfair Display", Body: "Inter"},
				Layout: "executive",
			},
			IsPremium: true,
		},
		{
			Name:        "Minimalist",
			Description: "Simple and clean design focusing on content",
			Category:    "Minimalist",
			Config: TemplateConfig{
				Colors: TemplateColors{Primary: "#059669", Secondary: "#6b7280", Text: "#374151", Background: "#ffffff"},
				Fonts:  TemplateFonts{Heading: "Inter", Body: "Inter"},
				Layout: "minimalist",
			},
		},
	}
}
