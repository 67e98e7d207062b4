package model

import "fmt"

// Section names one of the editable slices of a resume.
type Section string

const (
	SectionPersonalInfo   Section = "personal_info"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionLanguages      Section = "languages"
)

// Sections lists every editable section in display order.
var Sections = []Section{
	SectionPersonalInfo,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
	SectionLanguages,
}

// Valid reports whether s is a known section.
func (s Section) Valid() bool {
	for _, known := range Sections {
		if s == known {
			return true
		}
	}
	return false
}

// Top-level update keys that are not sections.
const (
	KeyTitle      = "title"
	KeyTemplateID = "template_id"
)

// ResumeUpdate is a partial update: only the keys that are set are written.
// A nil slice means "not part of this update"; an empty non-nil slice clears the section.
type ResumeUpdate struct {
	Title          *string         `json:"title,omitempty" validate:"omitempty,max=200"`
	TemplateID     *string         `json:"template_id,omitempty"`
	PersonalInfo   *PersonalInfo   `json:"personal_info,omitempty"`
	Experience     []Experience    `json:"experience,omitempty" validate:"omitempty,dive"`
	Education      []Education     `json:"education,omitempty" validate:"omitempty,dive"`
	Skills         []SkillGroup    `json:"skills,omitempty" validate:"omitempty,dive"`
	Projects       []Project       `json:"projects,omitempty" validate:"omitempty,dive"`
	Certifications []Certification `json:"certifications,omitempty" validate:"omitempty,dive"`
	Languages      []Language      `json:"languages,omitempty" validate:"omitempty,dive"`
}

// Keys returns the top-level keys present in u, in a stable order.
func (u ResumeUpdate) Keys() []string {
	keys := make([]string, 0, 9)
	if u.Title != nil {
		keys = append(keys, KeyTitle)
	}
	if u.TemplateID != nil {
		keys = append(keys, KeyTemplateID)
	}
	if u.PersonalInfo != nil {
		keys = append(keys, string(SectionPersonalInfo))
	}
	if u.Experience != nil {
		keys = append(keys, string(SectionExperience))
	}
	if u.Education != nil {
		keys = append(keys, string(SectionEducation))
	}
	if u.Skills != nil {
		keys = append(keys, string(SectionSkills))
	}
	if u.Projects != nil {
		keys = append(keys, string(SectionProjects))
	}
	if u.Certifications != nil {
		keys = append(keys, string(SectionCertifications))
	}
	if u.Languages != nil {
		keys = append(keys, string(SectionLanguages))
	}
	return keys
}

// IsEmpty reports whether u carries no keys at all.
func (u ResumeUpdate) IsEmpty() bool {
	return len(u.Keys()) == 0
}

// Merge returns u overlaid with next: keys present in next win, the rest come from u.
func (u ResumeUpdate) Merge(next ResumeUpdate) ResumeUpdate {
	out := u
	if next.Title != nil {
		out.Title = next.Title
	}
	if next.TemplateID != nil {
		out.TemplateID = next.TemplateID
	}
	if next.PersonalInfo != nil {
		out.PersonalInfo = next.PersonalInfo
	}
	if next.Experience != nil {
		out.Experience = next.Experience
	}
	if next.Education != nil {
		out.Education = next.Education
	}
	if next.Skills != nil {
		out.Skills = next.Skills
	}
	if next.Projects != nil {
		out.Projects = next.Projects
	}
	if next.Certifications != nil {
		out.Certifications = next.Certifications
	}
	if next.Languages != nil {
		out.Languages = next.Languages
	}
	return out
}

// CheckItemIDs returns an error naming the first section whose item ids are not unique.
func (u ResumeUpdate) CheckItemIDs() error {
	checks := []struct {
		section Section
		ids     []string
	}{
		{SectionExperience, itemIDs(u.Experience, func(e Experience) string { return e.ID })},
		{SectionEducation, itemIDs(u.Education, func(e Education) string { return e.ID })},
		{SectionSkills, itemIDs(u.Skills, func(s SkillGroup) string { return s.ID })},
		{SectionProjects, itemIDs(u.Projects, func(p Project) string { return p.ID })},
		{SectionCertifications, itemIDs(u.Certifications, func(c Certification) string { return c.ID })},
		{SectionLanguages, itemIDs(u.Languages, func(l Language) string { return l.ID })},
	}
	for _, c := range checks {
		seen := make(map[string]struct{}, len(c.ids))
		for _, id := range c.ids {
			if _, dup := seen[id]; dup {
				return fmt.Errorf("%s: duplicate item id %q", c.section, id)
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}

// SectionUpdate builds an update carrying exactly the given section of r.
func SectionUpdate(r Resume, s Section) (ResumeUpdate, error) {
	switch s {
	case SectionPersonalInfo:
		pi := r.PersonalInfo
		return ResumeUpdate{PersonalInfo: &pi}, nil
	case SectionExperience:
		return ResumeUpdate{Experience: nonNil(r.Experience)}, nil
	case SectionEducation:
		return ResumeUpdate{Education: nonNil(r.Education)}, nil
	case SectionSkills:
		return ResumeUpdate{Skills: nonNil(r.Skills)}, nil
	case SectionProjects:
		return ResumeUpdate{Projects: nonNil(r.Projects)}, nil
	case SectionCertifications:
		return ResumeUpdate{Certifications: nonNil(r.Certifications)}, nil
	case SectionLanguages:
		return ResumeUpdate{Languages: nonNil(r.Languages)}, nil
	default:
		return ResumeUpdate{}, fmt.Errorf("unknown section %q", s)
	}
}

func itemIDs[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return cloneSlice(in)
}
