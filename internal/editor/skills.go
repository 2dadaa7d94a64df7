package editor

import (
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// MinLevel and MaxLevel bound every stored skill level
	MinLevel = 0
	MaxLevel = 100
	// DefaultLevel is the level of a newly added skill
	DefaultLevel = 50
)

// ClampLevel forces level into [MinLevel, MaxLevel]
func ClampLevel(level int) int {
	return max(MinLevel, min(MaxLevel, level))
}

// ParseLevel converts raw form input into a stored level.
// Empty input is 0, fractions round half away from zero, and the result is clamped.
// Anything else that is not a finite number yields ErrInvalidLevel.
func ParseLevel(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return MinLevel, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidLevel
	}
	f = math.Round(f)
	switch {
	case f < MinLevel:
		return MinLevel, nil
	case f > MaxLevel:
		return MaxLevel, nil
	}
	return int(f), nil
}

// AddSkill appends an unnamed skill at DefaultLevel with a fresh id
func AddSkill(items []types.Skill) []types.Skill {
	id := NewID(idSet(items, func(s types.Skill) string { return s.ID }))
	return appendItem(items, types.Skill{ID: id, Level: DefaultLevel})
}

// SetSkillName renames the skill at index
func SetSkillName(items []types.Skill, index int, name string) ([]types.Skill, error) {
	return replaceAt(ListSkills, items, index, func(s types.Skill) (types.Skill, error) {
		s.Name = name
		return s, nil
	})
}

// SetSkillLevel stores a clamped level on the skill at index
func SetSkillLevel(items []types.Skill, index int, level int) ([]types.Skill, error) {
	return replaceAt(ListSkills, items, index, func(s types.Skill) (types.Skill, error) {
		s.Level = ClampLevel(level)
		return s, nil
	})
}

// SetSkillField applies a form edit to the skill at index.
// On ErrInvalidLevel the list is not replaced and the previous level stands.
func SetSkillField(items []types.Skill, index int, field, value string) ([]types.Skill, error) {
	switch field {
	case "name":
		return SetSkillName(items, index, value)
	case "level":
		level, err := ParseLevel(value)
		if err != nil {
			return nil, &FieldError{Entity: "skills", Field: field, Cause: err}
		}
		return SetSkillLevel(items, index, level)
	default:
		return nil, &FieldError{Entity: "skills", Field: field, Cause: ErrUnknownField}
	}
}

// RemoveSkill drops the skill at index
func RemoveSkill(items []types.Skill, index int) ([]types.Skill, error) {
	return removeAt(ListSkills, items, index)
}
