package editor

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize_ClampsSkillLevels(t *testing.T) {
	doc := types.Blank()
	doc.Skills = []types.Skill{{ID: "a", Level: 150}, {ID: "b", Level: -5}, {ID: "c", Level: 57}}

	out := Sanitize(doc)

	assert.Equal(t, 100, out.Skills[0].Level)
	assert.Equal(t, 0, out.Skills[1].Level)
	assert.Equal(t, 57, out.Skills[2].Level)
	assert.Equal(t, 150, doc.Skills[0].Level, "input must not be modified")
}

func TestSanitize_ReassignsEmptyAndDuplicateIDs(t *testing.T) {
	doc := types.Blank()
	doc.Skills = []types.Skill{{ID: "a", Name: "Go"}, {ID: "a", Name: "Dup"}, {ID: "", Name: "Blank"}, {ID: "b"}}
	doc.Projects = []types.Project{{ID: ""}, {ID: ""}}
	doc.PersonalInfo.Links = []types.Link{{ID: "l"}, {ID: "l"}}

	out := Sanitize(doc)

	require.Len(t, out.Skills, 4)
	assert.Equal(t, "a", out.Skills[0].ID)
	assert.Equal(t, "Go", out.Skills[0].Name)
	assert.Equal(t, "b", out.Skills[3].ID)
	assert.Equal(t, "Dup", out.Skills[1].Name)

	for _, ids := range [][]string{
		{out.Skills[0].ID, out.Skills[1].ID, out.Skills[2].ID, out.Skills[3].ID},
		{out.Projects[0].ID, out.Projects[1].ID},
		{out.PersonalInfo.Links[0].ID, out.PersonalInfo.Links[1].ID},
	} {
		seen := map[string]bool{}
		for _, id := range ids {
			assert.NotEmpty(t, id)
			assert.False(t, seen[id], "duplicate id %q", id)
			seen[id] = true
		}
	}
	assert.Equal(t, "a", doc.Skills[1].ID, "input must not be modified")
}

func TestSanitize_KeepsValidDocument(t *testing.T) {
	doc := types.Blank()
	doc.Skills = []types.Skill{{ID: "s1", Name: "Go", Level: 90}}
	doc.WorkExperience = []types.WorkExperience{{ID: "w1", Company: "Acme"}}

	assert.Equal(t, doc, Sanitize(doc))
}
