package model

import "time"

// Resume is a user's resume document.
// Section sequences may be empty; every write replaces a whole sequence.
type Resume struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	Title          string          `json:"title"`
	TemplateID     string          `json:"template_id"`
	PersonalInfo   PersonalInfo    `json:"personal_info"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []SkillGroup    `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
	IsPublic       bool            `json:"is_public"`
	LastModified   time.Time       `json:"last_modified"`
	CreatedAt      time.Time       `json:"created_at"`
}

// PersonalInfo is the single-object header section of a resume.
type PersonalInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

type Experience struct {
	ID          string `json:"id" validate:"required"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type Education struct {
	ID          string `json:"id" validate:"required"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// SkillGroup is a named category of skills, e.g. "Languages": ["Go", "SQL"].
type SkillGroup struct {
	ID       string   `json:"id" validate:"required"`
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type Project struct {
	ID           string   `json:"id" validate:"required"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	GitHub       string   `json:"github,omitempty"`
}

type Certification struct {
	ID     string `json:"id" validate:"required"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Link   string `json:"link,omitempty"`
}

type Language struct {
	ID          string `json:"id" validate:"required"`
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// NewResume returns an empty resume owned by userID: all sections cleared and private.
func NewResume(userID, title, templateID string, now time.Time) *Resume {
	return &Resume{
		UserID:         userID,
		Title:          title,
		TemplateID:     templateID,
		Experience:     []Experience{},
		Education:      []Education{},
		Skills:         []SkillGroup{},
		Projects:       []Project{},
		Certifications: []Certification{},
		Languages:      []Language{},
		IsPublic:       false,
		LastModified:   now,
		CreatedAt:      now,
	}
}

// Apply merges the keys present in u into r and stamps LastModified.
// The owner and identifier are never touched.
func (r *Resume) Apply(u ResumeUpdate, now time.Time) {
	if u.Title != nil {
		r.Title = *u.Title
	}
	if u.TemplateID != nil {
		r.TemplateID = *u.TemplateID
	}
	if u.PersonalInfo != nil {
		r.PersonalInfo = *u.PersonalInfo
	}
	if u.Experience != nil {
		r.Experience = cloneSlice(u.Experience)
	}
	if u.Education != nil {
		r.Education = cloneSlice(u.Education)
	}
	if u.Skills != nil {
		r.Skills = cloneSlice(u.Skills)
	}
	if u.Projects != nil {
		r.Projects = cloneSlice(u.Projects)
	}
	if u.Certifications != nil {
		r.Certifications = cloneSlice(u.Certifications)
	}
	if u.Languages != nil {
		r.Languages = cloneSlice(u.Languages)
	}
	r.LastModified = now
}

// Clone returns a copy of r whose section slices do not alias r's.
func (r Resume) Clone() Resume {
	out := r
	out.Experience = cloneSlice(r.Experience)
	out.Education = cloneSlice(r.Education)
	out.Skills = cloneSlice(r.Skills)
	out.Projects = cloneSlice(r.Projects)
	out.Certifications = cloneSlice(r.Certifications)
	out.Languages = cloneSlice(r.Languages)
	return out
}

// RecentlyUpdated reports whether the resume was modified within window of now.
func (r Resume) RecentlyUpdated(now time.Time, window time.Duration) bool {
	return now.Sub(r.LastModified) <= window
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
