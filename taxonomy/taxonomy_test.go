package taxonomy

import (
	"testing"

	"ustabul/models"
)

func TestEverySubCategoryPathValidates(t *testing.T) {
	for _, main := range MainCategories() {
		for _, sub := range SubCategories(main) {
			node, ok := Lookup(main, sub)
			if !ok {
				t.Fatalf("Lookup(%q, %q) not found", main, sub)
			}

			skill := models.SelectedSkill{MainCategory: main, SubCategory: sub}
			for _, dg := range DetailsFor(main, sub) {
				detail := models.SkillDetail{Type: dg.Type}
				if len(dg.Options) > 0 {
					detail.Options = []string{dg.Options[0]}
				}
				skill.Details = append(skill.Details, detail)
			}

			if err := ValidatePath(skill); err != nil {
				t.Errorf("%s / %s (kind %d): %v", main, sub, node.Kind, err)
			}
		}
	}
}

func TestSubCategoriesUnknownMain(t *testing.T) {
	subs := SubCategories("MARANGOZLUK")
	if subs == nil {
		t.Fatal("expected non-nil slice for unknown main category")
	}
	if len(subs) != 0 {
		t.Fatalf("expected empty, got %v", subs)
	}
}

func TestLeafHasNoDetails(t *testing.T) {
	node, ok := Lookup("METAL İŞLERİ", "TESVİYE")
	if !ok {
		t.Fatal("TESVİYE not found")
	}
	if node.Kind != KindLeaf {
		t.Fatalf("expected leaf, got kind %d", node.Kind)
	}
	if dgs := DetailsFor("METAL İŞLERİ", "TESVİYE"); len(dgs) != 0 {
		t.Fatalf("leaf returned detail groups: %v", dgs)
	}
}

func TestOptionsShapeNormalizedToSingleGroup(t *testing.T) {
	dgs := DetailsFor("METAL İŞLERİ", "LAZER KESİM")
	if len(dgs) != 1 {
		t.Fatalf("expected one synthetic group, got %d", len(dgs))
	}
	if dgs[0].Type != "" {
		t.Fatalf("expected empty type, got %q", dgs[0].Type)
	}
	if len(dgs[0].Options) == 0 {
		t.Fatal("expected options")
	}
}

func TestHasOtherOption(t *testing.T) {
	dgs := DetailsFor("METAL İŞLERİ", "LAZER KESİM")
	if !HasOtherOption(dgs[0].Options) {
		t.Fatal("LAZER KESİM should offer Diğer")
	}
	if HasOtherOption([]string{"MİG-MAG", "TIG"}) {
		t.Fatal("false positive")
	}
}

func TestValidatePathRejectsLeafWithDetails(t *testing.T) {
	skill := models.SelectedSkill{
		MainCategory: "ELEKTRİK",
		SubCategory:  "KABLAJ",
		Details:      []models.SkillDetail{{Type: "x"}},
	}
	if err := ValidatePath(skill); err == nil {
		t.Fatal("expected error for leaf with details")
	}
}

func TestValidatePathRejectsUnknownOption(t *testing.T) {
	skill := models.SelectedSkill{
		MainCategory: "METAL İŞLERİ",
		SubCategory:  "KAYNAK",
		Details: []models.SkillDetail{
			{Type: "MİG-MAG", Options: []string{"KERESTE"}},
		},
	}
	if err := ValidatePath(skill); err == nil {
		t.Fatal("expected error for option not in the group")
	}
}

func TestValidatePathOtherTextRequiresOtherOption(t *testing.T) {
	skill := models.SelectedSkill{
		MainCategory: "METAL İŞLERİ",
		SubCategory:  "LAZER KESİM",
		Details: []models.SkillDetail{
			{Type: "", Options: []string{"Durmazlar"}, Other: "özel profil"},
		},
	}
	if err := ValidatePath(skill); err == nil {
		t.Fatal("expected error: free text without Diğer selected")
	}

	skill.Details[0].Options = []string{"Durmazlar", OptionOther}
	if err := ValidatePath(skill); err != nil {
		t.Fatalf("unexpected error with Diğer selected: %v", err)
	}
}

func TestJobCategories(t *testing.T) {
	cats := JobCategories()
	if len(cats) == 0 {
		t.Fatal("no job categories")
	}
	if !IsJobCategory(cats[0]) {
		t.Fatalf("%q should be a job category", cats[0])
	}
	if IsJobCategory("YOK BÖYLE BİR KATEGORİ") {
		t.Fatal("unknown category accepted")
	}
}
