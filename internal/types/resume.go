// Package types provides type definitions for the resume document edited and rendered by the builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// ResumeData is the aggregate root of a resume document.
// Missing sections are empty lists, never nil, once Normalize has run.
type ResumeData struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Summary        string           `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []Skill          `json:"skills"`
	Projects       []Project        `json:"projects"`
}

// PersonalInfo holds the singleton contact block of the document
type PersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Avatar   string `json:"avatar"`
	Links    []Link `json:"links"`
}

// Link is a labeled personal link (portfolio, blog, ...)
type Link struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Skill is a named skill with a proficiency level in [0,100]
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// WorkExperience is one position. Description holds newline-delimited bullet lines.
type WorkExperience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Education is one degree entry. Period wins over the StartYear/EndYear pair when both are set.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Period      string `json:"period"`
	StartYear   string `json:"startYear,omitempty"`
	EndYear     string `json:"endYear,omitempty"`
}

// DisplayPeriod returns the period text shown by the renderers
func (e Education) DisplayPeriod() string {
	if e.Period != "" {
		return e.Period
	}
	switch {
	case e.StartYear != "" && e.EndYear != "":
		return e.StartYear + " - " + e.EndYear
	case e.StartYear != "":
		return e.StartYear
	default:
		return e.EndYear
	}
}

// Project is a portfolio project with an optional link
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Section names one top-level field of ResumeData
type Section string

const (
	SectionPersonalInfo   Section = "personalInfo"
	SectionSummary        Section = "summary"
	SectionWorkExperience Section = "workExperience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
)

// Sections lists every top-level section in display order
var Sections = []Section{
	SectionPersonalInfo,
	SectionSummary,
	SectionWorkExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
}

// ParseSection validates a section name
func ParseSection(s string) (Section, error) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", fmt.Errorf("unknown section: %q", s)
}

// Blank returns the empty document used at session start and after reset
func Blank() ResumeData {
	return ResumeData{
		PersonalInfo:   PersonalInfo{Links: []Link{}},
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Skills:         []Skill{},
		Projects:       []Project{},
	}
}

// Normalize returns a copy of d with every nil list replaced by an empty one
func (d ResumeData) Normalize() ResumeData {
	if d.PersonalInfo.Links == nil {
		d.PersonalInfo.Links = []Link{}
	}
	if d.WorkExperience == nil {
		d.WorkExperience = []WorkExperience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	return d
}

// Clone returns a deep copy of d. The copy shares no backing arrays with d.
func (d ResumeData) Clone() ResumeData {
	out := d
	out.PersonalInfo.Links = append([]Link{}, d.PersonalInfo.Links...)
	out.WorkExperience = append([]WorkExperience{}, d.WorkExperience...)
	out.Education = append([]Education{}, d.Education...)
	out.Skills = append([]Skill{}, d.Skills...)
	out.Projects = append([]Project{}, d.Projects...)
	return out
}

// With returns a copy of d with one top-level section replaced.
// The value must have the section's exact Go type.
func (d ResumeData) With(section Section, value any) (ResumeData, error) {
	switch section {
	case SectionPersonalInfo:
		v, ok := value.(PersonalInfo)
		if !ok {
			return d, sectionTypeError(section, value)
		}
		d.PersonalInfo = v
	case SectionSummary:
		v, ok := value.(string)
		if !ok {
			return d, sectionTypeError(section, value)
		}
		d.Summary = v
	case SectionWorkExperience:
		v, ok := value.([]WorkExperience)
		if !ok {
			return d, sectionTypeError(section, value)
		}
		d.WorkExperience = v
	case SectionEducation:
		v, ok := value.([]Education)
		if !ok {
			return d, sectionTypeError(section, value)
		}
		d.Education = v
	case SectionSkills:
		v, ok := value.([]Skill)
		if !ok {
			return d, sectionTypeError(section, value)
		}
		d.Skills = v
	case SectionProjects:
		v, ok := value.([]Project)
		if !ok {
			return d, sectionTypeError(section, value)
		}
		d.Projects = v
	default:
		return d, fmt.Errorf("unknown section: %q", section)
	}
	return d.Normalize(), nil
}

// SectionValue returns a zero value of the Go type stored in section, for decoding into
func SectionValue(section Section) (any, error) {
	switch section {
	case SectionPersonalInfo:
		return &PersonalInfo{}, nil
	case SectionSummary:
		return new(string), nil
	case SectionWorkExperience:
		return &[]WorkExperience{}, nil
	case SectionEducation:
		return &[]Education{}, nil
	case SectionSkills:
		return &[]Skill{}, nil
	case SectionProjects:
		return &[]Project{}, nil
	default:
		return nil, fmt.Errorf("unknown section: %q", section)
	}
}

func sectionTypeError(section Section, value any) error {
	return fmt.Errorf("section %s cannot hold value of type %T", section, value)
}
