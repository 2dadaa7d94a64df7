// Package i18n holds the interface strings for each supported language.
package i18n

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/text/language"
)

// Key identifies one translatable string
type Key string

const (
	KeyResumeBuilder  Key = "resumeBuilder"
	KeyEdit           Key = "edit"
	KeyPreview        Key = "preview"
	KeyDownloadPDF    Key = "downloadPdf"
	KeyBuilding       Key = "building"
	KeyVisualTemplate Key = "visualTemplate"
	KeyATSFriendly    Key = "atsFriendly"

	KeyPersonalInfo   Key = "personalInfo"
	KeySummary        Key = "summary"
	KeySkills         Key = "skills"
	KeyWorkExperience Key = "workExperience"
	KeyEducation      Key = "education"
	KeyProjects       Key = "projects"
	KeyLinks          Key = "links"

	KeyFullName          Key = "fullName"
	KeyJobTitle          Key = "jobTitle"
	KeyEmail             Key = "email"
	KeyPhone             Key = "phone"
	KeyAddress           Key = "address"
	KeyLinkedIn          Key = "linkedin"
	KeyGitHub            Key = "github"
	KeyProfilePicture    Key = "profilePicture"
	KeyAvatarPlaceholder Key = "avatarPlaceholder"
	KeyUploadTooltip     Key = "uploadTooltip"

	KeySkillName         Key = "skillName"
	KeyAddSkill          Key = "addSkill"
	KeyCompany           Key = "company"
	KeyRole              Key = "role"
	KeyPeriod            Key = "period"
	KeyDescription       Key = "description"
	KeyAddWorkExperience Key = "addWorkExperience"
	KeyInstitution       Key = "institution"
	KeyDegree            Key = "degree"
	KeyAddEducation      Key = "addEducation"
	KeyProjectName       Key = "projectName"
	KeyLink              Key = "link"
	KeyAddProject        Key = "addProject"
	KeyRemove            Key = "remove"
	KeyContactInfo       Key = "contactInfo"
)

var translations = map[types.Language]map[Key]string{
	types.LanguagePersian: {
		KeyResumeBuilder:  "رزومه‌ساز",
		KeyEdit:           "ویرایش",
		KeyPreview:        "پیش‌نمایش",
		KeyDownloadPDF:    "دانلود PDF",
		KeyBuilding:       "درحال ساخت...",
		KeyVisualTemplate: "بصری",
		KeyATSFriendly:    "سازگار با ATS",

		KeyPersonalInfo:   "اطلاعات شخصی",
		KeySummary:        "خلاصه",
		KeySkills:         "مهارت‌ها",
		KeyWorkExperience: "سوابق شغلی",
		KeyEducation:      "تحصیلات",
		KeyProjects:       "پروژه‌ها",
		KeyLinks:          "لینک‌ها",

		KeyFullName:          "نام و نام خانوادگی",
		KeyJobTitle:          "عنوان شغلی",
		KeyEmail:             "ایمیل",
		KeyPhone:             "تلفن",
		KeyAddress:           "آدرس",
		KeyLinkedIn:          "لینکدین",
		KeyGitHub:            "گیت‌هاب",
		KeyProfilePicture:    "عکس پروفایل",
		KeyAvatarPlaceholder: "لینک عکس یا آپلود",
		KeyUploadTooltip:     "آپلود عکس از سیستم",

		KeySkillName:         "نام مهارت",
		KeyAddSkill:          "افزودن مهارت",
		KeyCompany:           "شرکت",
		KeyRole:              "سمت",
		KeyPeriod:            "بازه زمانی",
		KeyDescription:       "توضیحات",
		KeyAddWorkExperience: "افزودن سابقه شغلی",
		KeyInstitution:       "موسسه آموزشی",
		KeyDegree:            "مدرک",
		KeyAddEducation:      "افزودن سابقه تحصیلی",
		KeyProjectName:       "نام پروژه",
		KeyLink:              "لینک",
		KeyAddProject:        "افزودن پروژه",
		KeyRemove:            "حذف",
		KeyContactInfo:       "اطلاعات تماس",
	},
	types.LanguageEnglish: {
		KeyResumeBuilder:  "Resume Builder",
		KeyEdit:           "Edit",
		KeyPreview:        "Preview",
		KeyDownloadPDF:    "Download PDF",
		KeyBuilding:       "Building...",
		KeyVisualTemplate: "Visual",
		KeyATSFriendly:    "ATS-Friendly",

		KeyPersonalInfo:   "Personal Info",
		KeySummary:        "Summary",
		KeySkills:         "Skills",
		KeyWorkExperience: "Work Experience",
		KeyEducation:      "Education",
		KeyProjects:       "Projects",
		KeyLinks:          "Links",

		KeyFullName:          "Full Name",
		KeyJobTitle:          "Job Title",
		KeyEmail:             "Email",
		KeyPhone:             "Phone",
		KeyAddress:           "Address",
		KeyLinkedIn:          "LinkedIn",
		KeyGitHub:            "GitHub",
		KeyProfilePicture:    "Profile Picture",
		KeyAvatarPlaceholder: "Image URL or Upload",
		KeyUploadTooltip:     "Upload from your computer",

		KeySkillName:         "Skill Name",
		KeyAddSkill:          "Add Skill",
		KeyCompany:           "Company",
		KeyRole:              "Role",
		KeyPeriod:            "Period",
		KeyDescription:       "Description",
		KeyAddWorkExperience: "Add Work Experience",
		KeyInstitution:       "Institution",
		KeyDegree:            "Degree",
		KeyAddEducation:      "Add Education",
		KeyProjectName:       "Project Name",
		KeyLink:              "Link",
		KeyAddProject:        "Add Project",
		KeyRemove:            "Remove",
		KeyContactInfo:       "Contact Info",
	},
}

// Default is the language used when nothing else is requested
const Default = types.LanguagePersian

// Supported lists the languages with a string table, default first
var Supported = []types.Language{types.LanguagePersian, types.LanguageEnglish}

var matcher = language.NewMatcher([]language.Tag{language.Persian, language.English})

// T returns the string for key in lang, falling back to English and then to the key itself
func T(lang types.Language, key Key) string {
	if s, ok := translations[lang][key]; ok {
		return s
	}
	if s, ok := translations[types.LanguageEnglish][key]; ok {
		return s
	}
	return string(key)
}

// ParseLanguage validates a language code. Empty input selects Default.
func ParseLanguage(s string) (types.Language, error) {
	code := types.Language(strings.ToLower(strings.TrimSpace(s)))
	if code == "" {
		return Default, nil
	}
	if _, ok := translations[code]; ok {
		return code, nil
	}
	return "", fmt.Errorf("unsupported language: %q (expected fa or en)", s)
}

// Match picks the best supported language for an Accept-Language style preference list.
// Unparseable or unmatched input yields Default.
func Match(preferences ...string) types.Language {
	var tags []language.Tag
	for _, p := range preferences {
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}
