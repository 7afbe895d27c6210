package models

// SkillDetail is one detail-type selection under a chosen sub-category.
// Type may be "" for sub-categories whose option list has no named detail
// type. Options keep insertion order for display; membership is what matters
// for matching. Other carries free text when the "Diğer" option is chosen.
type SkillDetail struct {
	Type    string   `bson:"type" json:"type"`
	Options []string `bson:"options" json:"options"`
	Other   string   `bson:"other,omitempty" json:"other,omitempty"`
}

// SelectedSkill is one taxonomy path a worker or job has picked.
// An empty Details slice is only valid for leaf sub-categories.
type SelectedSkill struct {
	MainCategory string        `bson:"mainCategory" json:"mainCategory"`
	SubCategory  string        `bson:"subCategory" json:"subCategory"`
	Details      []SkillDetail `bson:"details" json:"details"`
}
