package editor

import "github.com/jonathan/resume-builder/internal/types"

// Sanitize returns a normalized copy of doc that satisfies the document invariants:
// every skill level is clamped to [MinLevel, MaxLevel], and every list item has a
// non-empty id unique within its list. The first item carrying an id keeps it;
// later duplicates and empty ids get fresh ones. doc itself is not modified.
func Sanitize(doc types.ResumeData) types.ResumeData {
	out := doc.Clone().Normalize()
	for i := range out.Skills {
		out.Skills[i].Level = ClampLevel(out.Skills[i].Level)
	}
	uniqueIDs(out.Skills, func(s *types.Skill) *string { return &s.ID })
	uniqueIDs(out.WorkExperience, func(w *types.WorkExperience) *string { return &w.ID })
	uniqueIDs(out.Education, func(e *types.Education) *string { return &e.ID })
	uniqueIDs(out.Projects, func(p *types.Project) *string { return &p.ID })
	uniqueIDs(out.PersonalInfo.Links, func(l *types.Link) *string { return &l.ID })
	return out
}

// uniqueIDs reassigns empty and repeated ids in place
func uniqueIDs[T any](items []T, id func(*T) *string) {
	seen := make(map[string]struct{}, len(items))
	for i := range items {
		seen[*id(&items[i])] = struct{}{}
	}
	kept := make(map[string]struct{}, len(items))
	taken := func(candidate string) bool {
		_, ok := seen[candidate]
		return ok
	}
	for i := range items {
		p := id(&items[i])
		if _, dup := kept[*p]; *p != "" && !dup {
			kept[*p] = struct{}{}
			continue
		}
		*p = NewID(taken)
		seen[*p] = struct{}{}
		kept[*p] = struct{}{}
	}
}
