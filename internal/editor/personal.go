package editor

import "github.com/jonathan/resume-builder/internal/types"

// SetPersonalField returns a copy of info with one scalar field replaced.
// Values are stored as typed; nothing is validated.
func SetPersonalField(info types.PersonalInfo, field, value string) (types.PersonalInfo, error) {
	switch field {
	case "name":
		info.Name = value
	case "title":
		info.Title = value
	case "email":
		info.Email = value
	case "phone":
		info.Phone = value
	case "location", "address":
		info.Location = value
	case "linkedin":
		info.LinkedIn = value
	case "github":
		info.GitHub = value
	case "avatar", "pictureUrl":
		info.Avatar = value
	default:
		return info, &FieldError{Entity: "personalInfo", Field: field, Cause: ErrUnknownField}
	}
	return info, nil
}
