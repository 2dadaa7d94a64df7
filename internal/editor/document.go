package editor

import "github.com/jonathan/resume-builder/internal/types"

// Edit is a pure document transformation. It must return a new value and leave its input untouched.
type Edit func(types.ResumeData) (types.ResumeData, error)

// SetPersonal edits one personal-info field
func SetPersonal(field, value string) Edit {
	return func(d types.ResumeData) (types.ResumeData, error) {
		info, err := SetPersonalField(d.PersonalInfo, field, value)
		if err != nil {
			return d, err
		}
		d.PersonalInfo = info
		return d, nil
	}
}

// SetSummary replaces the summary text
func SetSummary(value string) Edit {
	return func(d types.ResumeData) (types.ResumeData, error) {
		d.Summary = value
		return d, nil
	}
}

// SetAvatar stores an avatar URL or data URL on the personal info
func SetAvatar(url string) Edit {
	return SetPersonal("avatar", url)
}

// AddItem appends a new item with a fresh id to list
func AddItem(list List) Edit {
	return func(d types.ResumeData) (types.ResumeData, error) {
		switch list {
		case ListSkills:
			d.Skills = AddSkill(d.Skills)
		case ListWorkExperience:
			d.WorkExperience = AddWorkExperience(d.WorkExperience)
		case ListEducation:
			d.Education = AddEducation(d.Education)
		case ListProjects:
			d.Projects = AddProject(d.Projects)
		case ListLinks:
			d.PersonalInfo.Links = AddLink(d.PersonalInfo.Links)
		default:
			return d, ErrUnknownList
		}
		return d, nil
	}
}

// SetItemField edits one field of the item at index in list
func SetItemField(list List, index int, field, value string) Edit {
	return func(d types.ResumeData) (types.ResumeData, error) {
		var err error
		switch list {
		case ListSkills:
			var items []types.Skill
			if items, err = SetSkillField(d.Skills, index, field, value); err == nil {
				d.Skills = items
			}
		case ListWorkExperience:
			var items []types.WorkExperience
			if items, err = SetWorkExperienceField(d.WorkExperience, index, field, value); err == nil {
				d.WorkExperience = items
			}
		case ListEducation:
			var items []types.Education
			if items, err = SetEducationField(d.Education, index, field, value); err == nil {
				d.Education = items
			}
		case ListProjects:
			var items []types.Project
			if items, err = SetProjectField(d.Projects, index, field, value); err == nil {
				d.Projects = items
			}
		case ListLinks:
			var items []types.Link
			if items, err = SetLinkField(d.PersonalInfo.Links, index, field, value); err == nil {
				d.PersonalInfo.Links = items
			}
		default:
			err = ErrUnknownList
		}
		return d, err
	}
}

// RemoveItem drops the item at index from list
func RemoveItem(list List, index int) Edit {
	return func(d types.ResumeData) (types.ResumeData, error) {
		var err error
		switch list {
		case ListSkills:
			var items []types.Skill
			if items, err = RemoveSkill(d.Skills, index); err == nil {
				d.Skills = items
			}
		case ListWorkExperience:
			var items []types.WorkExperience
			if items, err = RemoveWorkExperience(d.WorkExperience, index); err == nil {
				d.WorkExperience = items
			}
		case ListEducation:
			var items []types.Education
			if items, err = RemoveEducation(d.Education, index); err == nil {
				d.Education = items
			}
		case ListProjects:
			var items []types.Project
			if items, err = RemoveProject(d.Projects, index); err == nil {
				d.Projects = items
			}
		case ListLinks:
			var items []types.Link
			if items, err = RemoveLink(d.PersonalInfo.Links, index); err == nil {
				d.PersonalInfo.Links = items
			}
		default:
			err = ErrUnknownList
		}
		return d, err
	}
}
