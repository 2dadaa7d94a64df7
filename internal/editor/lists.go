package editor

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// List names one editable list of the document
type List string

const (
	ListSkills         List = "skills"
	ListWorkExperience List = "workExperience"
	ListEducation      List = "education"
	ListProjects       List = "projects"
	ListLinks          List = "links"
)

// ParseList validates a list name
func ParseList(s string) (List, error) {
	switch l := List(s); l {
	case ListSkills, ListWorkExperience, ListEducation, ListProjects, ListLinks:
		return l, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownList, s)
	}
}

// appendItem returns a new slice holding items followed by item
func appendItem[T any](items []T, item T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

// replaceAt returns a new slice with the item at index replaced by edit's result
func replaceAt[T any](list List, items []T, index int, edit func(T) (T, error)) ([]T, error) {
	if index < 0 || index >= len(items) {
		return nil, &IndexError{List: list, Index: index, Len: len(items)}
	}
	item, err := edit(items[index])
	if err != nil {
		return nil, err
	}
	out := make([]T, len(items))
	copy(out, items)
	out[index] = item
	return out, nil
}

// removeAt returns a new slice without the item at index. Other items keep their order and ids.
func removeAt[T any](list List, items []T, index int) ([]T, error) {
	if index < 0 || index >= len(items) {
		return nil, &IndexError{List: list, Index: index, Len: len(items)}
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...), nil
}

// AddWorkExperience appends a blank position with a fresh id
func AddWorkExperience(items []types.WorkExperience) []types.WorkExperience {
	id := NewID(idSet(items, func(e types.WorkExperience) string { return e.ID }))
	return appendItem(items, types.WorkExperience{ID: id})
}

// SetWorkExperienceField replaces one field of the position at index
func SetWorkExperienceField(items []types.WorkExperience, index int, field, value string) ([]types.WorkExperience, error) {
	return replaceAt(ListWorkExperience, items, index, func(e types.WorkExperience) (types.WorkExperience, error) {
		switch field {
		case "company":
			e.Company = value
		case "role":
			e.Role = value
		case "period":
			e.Period = value
		case "description":
			e.Description = value
		default:
			return e, &FieldError{Entity: "workExperience", Field: field, Cause: ErrUnknownField}
		}
		return e, nil
	})
}

// RemoveWorkExperience drops the position at index
func RemoveWorkExperience(items []types.WorkExperience, index int) ([]types.WorkExperience, error) {
	return removeAt(ListWorkExperience, items, index)
}

// AddEducation appends a blank education entry with a fresh id
func AddEducation(items []types.Education) []types.Education {
	id := NewID(idSet(items, func(e types.Education) string { return e.ID }))
	return appendItem(items, types.Education{ID: id})
}

// SetEducationField replaces one field of the education entry at index
func SetEducationField(items []types.Education, index int, field, value string) ([]types.Education, error) {
	return replaceAt(ListEducation, items, index, func(e types.Education) (types.Education, error) {
		switch field {
		case "institution":
			e.Institution = value
		case "degree":
			e.Degree = value
		case "period":
			e.Period = value
		case "startYear":
			e.StartYear = value
		case "endYear":
			e.EndYear = value
		default:
			return e, &FieldError{Entity: "education", Field: field, Cause: ErrUnknownField}
		}
		return e, nil
	})
}

// RemoveEducation drops the education entry at index
func RemoveEducation(items []types.Education, index int) ([]types.Education, error) {
	return removeAt(ListEducation, items, index)
}

// AddProject appends a blank project with a fresh id
func AddProject(items []types.Project) []types.Project {
	id := NewID(idSet(items, func(p types.Project) string { return p.ID }))
	return appendItem(items, types.Project{ID: id})
}

// SetProjectField replaces one field of the project at index
func SetProjectField(items []types.Project, index int, field, value string) ([]types.Project, error) {
	return replaceAt(ListProjects, items, index, func(p types.Project) (types.Project, error) {
		switch field {
		case "name":
			p.Name = value
		case "description":
			p.Description = value
		case "link":
			p.Link = value
		default:
			return p, &FieldError{Entity: "projects", Field: field, Cause: ErrUnknownField}
		}
		return p, nil
	})
}

// RemoveProject drops the project at index
func RemoveProject(items []types.Project, index int) ([]types.Project, error) {
	return removeAt(ListProjects, items, index)
}

// DefaultLinkLabel is the label given to a newly added personal link
const DefaultLinkLabel = "Portfolio"

// AddLink appends a personal link with the default label and a fresh id
func AddLink(items []types.Link) []types.Link {
	id := NewID(idSet(items, func(l types.Link) string { return l.ID }))
	return appendItem(items, types.Link{ID: id, Label: DefaultLinkLabel})
}

// SetLinkField replaces the label or url of the link at index
func SetLinkField(items []types.Link, index int, field, value string) ([]types.Link, error) {
	return replaceAt(ListLinks, items, index, func(l types.Link) (types.Link, error) {
		switch field {
		case "label":
			l.Label = value
		case "url":
			l.URL = value
		default:
			return l, &FieldError{Entity: "links", Field: field, Cause: ErrUnknownField}
		}
		return l, nil
	})
}

// RemoveLink drops the link at index
func RemoveLink(items []types.Link, index int) ([]types.Link, error) {
	return removeAt(ListLinks, items, index)
}
