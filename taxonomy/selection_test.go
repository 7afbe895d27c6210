package taxonomy

import (
	"reflect"
	"testing"

	"ustabul/models"
)

func TestToggleSubCategoryIsInvolutive(t *testing.T) {
	skills := ToggleSubCategory(nil, "METAL İŞLERİ", "TESVİYE")
	if len(skills) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(skills))
	}
	if skills[0].SubCategory != "TESVİYE" {
		t.Fatalf("unexpected skill: %+v", skills[0])
	}

	skills = ToggleSubCategory(skills, "METAL İŞLERİ", "TESVİYE")
	if len(skills) != 0 {
		t.Fatalf("second toggle should remove the skill, got %+v", skills)
	}
}

func TestToggleDetailTypeCreatesAndRemovesSkill(t *testing.T) {
	skills := ToggleDetailType(nil, "METAL İŞLERİ", "KAYNAK", "TIG")
	if len(skills) != 1 || len(skills[0].Details) != 1 {
		t.Fatalf("expected one skill with one detail, got %+v", skills)
	}

	skills = ToggleDetailType(skills, "METAL İŞLERİ", "KAYNAK", "MİG-MAG")
	if len(skills[0].Details) != 2 {
		t.Fatalf("expected two details, got %+v", skills[0].Details)
	}

	skills = ToggleDetailType(skills, "METAL İŞLERİ", "KAYNAK", "TIG")
	if len(skills[0].Details) != 1 || skills[0].Details[0].Type != "MİG-MAG" {
		t.Fatalf("expected MİG-MAG left, got %+v", skills[0].Details)
	}

	// removing the last detail removes the whole skill
	skills = ToggleDetailType(skills, "METAL İŞLERİ", "KAYNAK", "MİG-MAG")
	if len(skills) != 0 {
		t.Fatalf("expected empty selection, got %+v", skills)
	}
}

func TestToggleOptionDoesNotRemoveEmptiedDetail(t *testing.T) {
	skills := ToggleDetailType(nil, "METAL İŞLERİ", "KAYNAK", "TIG")
	skills = ToggleOption(skills, "METAL İŞLERİ", "KAYNAK", "TIG", "Çelik")
	if got := skills[0].Details[0].Options; !reflect.DeepEqual(got, []string{"Çelik"}) {
		t.Fatalf("expected [Çelik], got %v", got)
	}

	skills = ToggleOption(skills, "METAL İŞLERİ", "KAYNAK", "TIG", "Çelik")
	if len(skills) != 1 || len(skills[0].Details) != 1 {
		t.Fatalf("detail must survive with zero options, got %+v", skills)
	}
	if len(skills[0].Details[0].Options) != 0 {
		t.Fatalf("expected no options, got %v", skills[0].Details[0].Options)
	}
}

func TestToggleOptionNoOpWithoutParents(t *testing.T) {
	skills := ToggleOption(nil, "METAL İŞLERİ", "KAYNAK", "TIG", "Çelik")
	if len(skills) != 0 {
		t.Fatalf("expected silent no-op, got %+v", skills)
	}

	withSkill := ToggleSubCategory(nil, "METAL İŞLERİ", "KAYNAK")
	got := ToggleOption(withSkill, "METAL İŞLERİ", "KAYNAK", "TIG", "Çelik")
	if !reflect.DeepEqual(got, withSkill) {
		t.Fatalf("missing detail should be a no-op, got %+v", got)
	}
}

func TestSetOtherText(t *testing.T) {
	skills := ToggleSubCategory(nil, "METAL İŞLERİ", "LAZER KESİM")
	skills = ToggleOption(skills, "METAL İŞLERİ", "LAZER KESİM", "", OptionOther)
	skills = SetOtherText(skills, "METAL İŞLERİ", "LAZER KESİM", "", "özel bükümlü profil")

	if skills[0].Details[0].Other != "özel bükümlü profil" {
		t.Fatalf("other text not set: %+v", skills[0].Details[0])
	}

	// no matching skill: silent no-op
	if got := SetOtherText(nil, "ELEKTRİK", "KABLAJ", "", "x"); len(got) != 0 {
		t.Fatalf("expected no-op, got %+v", got)
	}
}

func TestTogglesDoNotMutateInput(t *testing.T) {
	orig := []models.SelectedSkill{{
		MainCategory: "METAL İŞLERİ",
		SubCategory:  "KAYNAK",
		Details:      []models.SkillDetail{{Type: "TIG", Options: []string{"Çelik"}}},
	}}
	snapshot := cloneSkills(orig)

	_ = ToggleOption(orig, "METAL İŞLERİ", "KAYNAK", "TIG", "Alüminyum")
	_ = ToggleDetailType(orig, "METAL İŞLERİ", "KAYNAK", "MİG-MAG")
	_ = ToggleSubCategory(orig, "METAL İŞLERİ", "KAYNAK")

	if !reflect.DeepEqual(orig, snapshot) {
		t.Fatalf("input mutated: %+v", orig)
	}
}

func TestClearAll(t *testing.T) {
	got := ClearAll()
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil selection, got %#v", got)
	}
}

func TestNormalizeSkillsDropsEmptyShellsAndValidates(t *testing.T) {
	skills := []models.SelectedSkill{
		{MainCategory: "METAL İŞLERİ", SubCategory: "KAYNAK"}, // no details selected yet
		{MainCategory: "METAL İŞLERİ", SubCategory: "TESVİYE"},
	}
	got, err := NormalizeSkills(skills)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].SubCategory != "TESVİYE" {
		t.Fatalf("expected only the leaf to survive, got %+v", got)
	}
	if got[0].Details == nil {
		t.Fatal("details must be non-nil after normalization")
	}

	bad := []models.SelectedSkill{{MainCategory: "METAL İŞLERİ", SubCategory: "YOK"}}
	if _, err := NormalizeSkills(bad); err == nil {
		t.Fatal("expected validation error for unknown subcategory")
	}
}

func TestNormalizeSkillsKeepsBareFlatOptionSkill(t *testing.T) {
	// checking a flat-option sub-category without picking any option is a
	// complete selection and must survive a profile save
	skills := ToggleSubCategory(nil, "METAL İŞLERİ", "LAZER KESİM")
	got, err := NormalizeSkills(skills)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].SubCategory != "LAZER KESİM" {
		t.Fatalf("bare flat-option skill dropped: %+v", got)
	}
	if len(got[0].Details) != 0 {
		t.Fatalf("details invented: %+v", got[0].Details)
	}
}
