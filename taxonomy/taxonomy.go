// Package taxonomy holds the static skill-category tree of the platform and
// read-only traversal over it. The tree has three terminal shapes: a
// sub-category can be a directly selectable leaf, carry a flat option list
// with no named detail type, or carry named detail types each with its own
// (possibly empty) option list. Each shape is an explicit node kind instead
// of the null / empty-key / empty-list sentinels the data originally used.
package taxonomy

import (
	"fmt"

	"ustabul/apperr"
	"ustabul/models"
	"ustabul/utils"
)

// OptionOther marks an option that requires accompanying free text.
const OptionOther = "Diğer"

type NodeKind int

const (
	// KindLeaf: the sub-category itself is the selection, nothing below it.
	KindLeaf NodeKind = iota
	// KindOptions: a flat option list with no named detail type.
	KindOptions
	// KindDetails: named detail types, each with an option list that may be
	// empty (the detail type itself is then the selectable unit).
	KindDetails
)

type DetailGroup struct {
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

type Node struct {
	Kind    NodeKind      `json:"kind"`
	Options []string      `json:"options,omitempty"`
	Details []DetailGroup `json:"details,omitempty"`
}

type SubCategory struct {
	Name string `json:"name"`
	Node Node   `json:"node"`
}

type MainCategory struct {
	Name string        `json:"name"`
	Subs []SubCategory `json:"subCategories"`
}

// MainCategories returns main category names in declaration order.
func MainCategories() []string {
	names := make([]string, 0, len(skillCategories))
	for _, mc := range skillCategories {
		names = append(names, mc.Name)
	}
	return names
}

// SubCategories returns the sub-category names under main, in declaration
// order. Unknown main yields an empty slice, not an error; callers treat
// empty as "unknown or childless".
func SubCategories(main string) []string {
	mc, ok := findMain(main)
	if !ok {
		return []string{}
	}
	names := make([]string, 0, len(mc.Subs))
	for _, sc := range mc.Subs {
		names = append(names, sc.Name)
	}
	return names
}

// Lookup resolves a (main, sub) pair to its node.
func Lookup(main, sub string) (Node, bool) {
	mc, ok := findMain(main)
	if !ok {
		return Node{}, false
	}
	for _, sc := range mc.Subs {
		if sc.Name == sub {
			return sc.Node, true
		}
	}
	return Node{}, false
}

// DetailsFor returns the detail groups under (main, sub), or nil when the
// pair is unknown or a leaf. Flat option lists come back as one group with
// an empty type name.
func DetailsFor(main, sub string) []DetailGroup {
	node, ok := Lookup(main, sub)
	if !ok {
		return nil
	}
	switch node.Kind {
	case KindOptions:
		return []DetailGroup{{Type: "", Options: node.Options}}
	case KindDetails:
		return node.Details
	default:
		return nil
	}
}

// HasOtherOption reports whether the option list contains the free-text
// marker option.
func HasOtherOption(options []string) bool {
	return utils.Contains(options, OptionOther)
}

// Tree returns the full category tree for the categories endpoint.
func Tree() []MainCategory {
	return skillCategories
}

// JobCategories is the flat sub-category list used by job postings.
func JobCategories() []string {
	names := []string{}
	for _, mc := range skillCategories {
		for _, sc := range mc.Subs {
			names = append(names, sc.Name)
		}
	}
	return names
}

// IsJobCategory reports whether category is a valid job posting category.
func IsJobCategory(category string) bool {
	for _, mc := range skillCategories {
		for _, sc := range mc.Subs {
			if sc.Name == category {
				return true
			}
		}
	}
	return false
}

func findMain(name string) (MainCategory, bool) {
	for _, mc := range skillCategories {
		if mc.Name == name {
			return mc, true
		}
	}
	return MainCategory{}, false
}

func (dg DetailGroup) hasOption(option string) bool {
	return utils.Contains(dg.Options, option)
}

func (n Node) detailGroup(detailType string) (DetailGroup, bool) {
	groups := n.Details
	if n.Kind == KindOptions {
		groups = []DetailGroup{{Type: "", Options: n.Options}}
	}
	for _, dg := range groups {
		if dg.Type == detailType {
			return dg, true
		}
	}
	return DetailGroup{}, false
}

// ValidatePath checks a submitted skill against the tree: the (main, sub)
// pair must exist, every detail type must exist under it, every option must
// belong to its detail's option list, and leaf sub-categories must carry no
// details.
func ValidatePath(skill models.SelectedSkill) error {
	node, ok := Lookup(skill.MainCategory, skill.SubCategory)
	if !ok {
		return apperr.New(apperr.Validation,
			fmt.Sprintf("Geçersiz yetkinlik: %s / %s", skill.MainCategory, skill.SubCategory))
	}

	if node.Kind == KindLeaf {
		if len(skill.Details) > 0 {
			return apperr.New(apperr.Validation,
				fmt.Sprintf("%s doğrudan seçilebilir bir alt kategoridir, detay içeremez", skill.SubCategory))
		}
		return nil
	}

	for _, detail := range skill.Details {
		dg, ok := node.detailGroup(detail.Type)
		if !ok {
			return apperr.New(apperr.Validation,
				fmt.Sprintf("Geçersiz detay tipi: %s / %s", skill.SubCategory, detail.Type))
		}
		for _, opt := range detail.Options {
			if !dg.hasOption(opt) {
				return apperr.New(apperr.Validation,
					fmt.Sprintf("Geçersiz seçenek: %s / %s", detail.Type, opt))
			}
		}
		if detail.Other != "" && !utils.Contains(detail.Options, OptionOther) {
			return apperr.New(apperr.Validation,
				fmt.Sprintf("Serbest metin için %q seçeneği işaretlenmelidir", OptionOther))
		}
	}
	return nil
}
