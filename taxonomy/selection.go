package taxonomy

import "ustabul/models"

// Selection transitions: the skill collection is replaced wholesale on every
// change, so each transition takes the current slice and returns a new one.
// The UI only renders option and free-text controls whose parent entries are
// already selected, so transitions with a missing parent are silent no-ops.

func findSkill(skills []models.SelectedSkill, main, sub string) int {
	for i, s := range skills {
		if s.MainCategory == main && s.SubCategory == sub {
			return i
		}
	}
	return -1
}

func findDetail(details []models.SkillDetail, detailType string) int {
	for i, d := range details {
		if d.Type == detailType {
			return i
		}
	}
	return -1
}

func cloneSkills(skills []models.SelectedSkill) []models.SelectedSkill {
	out := make([]models.SelectedSkill, len(skills))
	copy(out, skills)
	return out
}

func removeSkill(skills []models.SelectedSkill, idx int) []models.SelectedSkill {
	out := make([]models.SelectedSkill, 0, len(skills)-1)
	out = append(out, skills[:idx]...)
	return append(out, skills[idx+1:]...)
}

// ToggleSubCategory flips a bare sub-category between unselected and
// selected-with-no-details.
func ToggleSubCategory(skills []models.SelectedSkill, main, sub string) []models.SelectedSkill {
	if idx := findSkill(skills, main, sub); idx >= 0 {
		return removeSkill(skills, idx)
	}
	out := cloneSkills(skills)
	return append(out, models.SelectedSkill{
		MainCategory: main,
		SubCategory:  sub,
		Details:      []models.SkillDetail{},
	})
}

// ToggleDetailType flips the presence of a detail type under (main, sub),
// creating the skill on first selection and deleting it when its last detail
// is removed.
func ToggleDetailType(skills []models.SelectedSkill, main, sub, detailType string) []models.SelectedSkill {
	idx := findSkill(skills, main, sub)
	if idx < 0 {
		out := cloneSkills(skills)
		return append(out, models.SelectedSkill{
			MainCategory: main,
			SubCategory:  sub,
			Details:      []models.SkillDetail{{Type: detailType, Options: []string{}}},
		})
	}

	out := cloneSkills(skills)
	skill := out[idx]
	di := findDetail(skill.Details, detailType)
	if di < 0 {
		details := make([]models.SkillDetail, len(skill.Details), len(skill.Details)+1)
		copy(details, skill.Details)
		skill.Details = append(details, models.SkillDetail{Type: detailType, Options: []string{}})
		out[idx] = skill
		return out
	}

	details := make([]models.SkillDetail, 0, len(skill.Details)-1)
	details = append(details, skill.Details[:di]...)
	details = append(details, skill.Details[di+1:]...)
	if len(details) == 0 {
		// last detail gone, the whole skill goes with it
		return removeSkill(out, idx)
	}
	skill.Details = details
	out[idx] = skill
	return out
}

// ToggleOption flips the presence of option inside an existing detail entry.
// An emptied option set does not remove the detail; only ToggleDetailType
// does that.
func ToggleOption(skills []models.SelectedSkill, main, sub, detailType, option string) []models.SelectedSkill {
	idx := findSkill(skills, main, sub)
	if idx < 0 {
		return skills
	}
	di := findDetail(skills[idx].Details, detailType)
	if di < 0 {
		// Flat-option sub-categories carry a single synthetic detail entry
		// with an empty type; its options are selectable as soon as the
		// sub-category is, so the entry is created on first use.
		node, ok := Lookup(main, sub)
		if !ok || node.Kind != KindOptions || detailType != "" {
			return skills
		}
		out := cloneSkills(skills)
		skill := out[idx]
		details := make([]models.SkillDetail, len(skill.Details), len(skill.Details)+1)
		copy(details, skill.Details)
		skill.Details = append(details, models.SkillDetail{Type: "", Options: []string{option}})
		out[idx] = skill
		return out
	}

	out := cloneSkills(skills)
	skill := out[idx]
	details := make([]models.SkillDetail, len(skill.Details))
	copy(details, skill.Details)
	detail := details[di]

	oi := -1
	for i, o := range detail.Options {
		if o == option {
			oi = i
			break
		}
	}
	if oi >= 0 {
		opts := make([]string, 0, len(detail.Options)-1)
		opts = append(opts, detail.Options[:oi]...)
		detail.Options = append(opts, detail.Options[oi+1:]...)
	} else {
		opts := make([]string, len(detail.Options), len(detail.Options)+1)
		copy(opts, detail.Options)
		detail.Options = append(opts, option)
	}

	details[di] = detail
	skill.Details = details
	out[idx] = skill
	return out
}

// SetOtherText stores free text against an existing detail entry. The text
// is not validated against anything.
func SetOtherText(skills []models.SelectedSkill, main, sub, detailType, text string) []models.SelectedSkill {
	idx := findSkill(skills, main, sub)
	if idx < 0 {
		return skills
	}
	di := findDetail(skills[idx].Details, detailType)
	if di < 0 {
		return skills
	}

	out := cloneSkills(skills)
	skill := out[idx]
	details := make([]models.SkillDetail, len(skill.Details))
	copy(details, skill.Details)
	details[di].Other = text
	skill.Details = details
	out[idx] = skill
	return out
}

// ClearAll resets the whole selection.
func ClearAll() []models.SelectedSkill {
	return []models.SelectedSkill{}
}

// NormalizeSkills validates a replace-whole-collection skill submission and
// drops empty shells: a skill whose sub-category has named detail types but
// carries none is removed rather than stored. Leaf and flat-option
// sub-categories are complete selections on their own, options or not.
func NormalizeSkills(skills []models.SelectedSkill) ([]models.SelectedSkill, error) {
	out := []models.SelectedSkill{}
	for _, skill := range skills {
		if err := ValidatePath(skill); err != nil {
			return nil, err
		}
		node, _ := Lookup(skill.MainCategory, skill.SubCategory)
		if node.Kind == KindDetails && len(skill.Details) == 0 {
			continue
		}
		if skill.Details == nil {
			skill.Details = []models.SkillDetail{}
		}
		out = append(out, skill)
	}
	return out, nil
}
