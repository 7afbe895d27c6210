package taxonomy

var steelOptions = []string{"Alüminyum", "Çelik", "Paslanmaz"}
var cncAxisOptions = []string{"2 Eksen", "3 Eksen", "4 Eksen", "5 Eksen"}

// skillCategories is process-wide read-only configuration. Declaration order
// is the display order.
var skillCategories = []MainCategory{
	{
		Name: "METAL İŞLERİ",
		Subs: []SubCategory{
			{Name: "KAYNAK", Node: Node{Kind: KindDetails, Details: []DetailGroup{
				{Type: "MİG-MAG", Options: steelOptions},
				{Type: "TIG", Options: steelOptions},
				{Type: "ELEKTRİK ARK", Options: steelOptions},
				{Type: "OKSİ-ASETİLEN", Options: steelOptions},
				{Type: "LAZER", Options: steelOptions},
				{Type: "PUNTA KAYNAĞI", Options: steelOptions},
			}}},
			{Name: "ABKANT BÜKÜM", Node: Node{Kind: KindDetails, Details: []DetailGroup{
				{Type: "CNC ABKANT BÜKÜM", Options: []string{}},
				{Type: "NC ABKANT BÜKÜM", Options: []string{}},
			}}},
			{Name: "TESVİYE", Node: Node{Kind: KindLeaf}},
			{Name: "İMALAT", Node: Node{Kind: KindOptions, Options: []string{
				"Paslanmaz", "Alüminyum", "Çelik", "Ağır Çelik", "Makine İmalatı",
			}}},
			{Name: "TALAŞLI İMALAT", Node: Node{Kind: KindDetails, Details: []DetailGroup{
				{Type: "CNC TORNA", Options: cncAxisOptions},
				{Type: "CNC DİK İŞLEM", Options: cncAxisOptions},
				{Type: "ÜNİVERSAL TORNA", Options: []string{}},
				{Type: "ÜNİVERSAL FREZE", Options: []string{}},
				{Type: "MATKAP TEZGAHI", Options: []string{}},
				{Type: "PLANYA", Options: []string{}},
			}}},
			{Name: "LAZER KESİM", Node: Node{Kind: KindOptions, Options: []string{
				"Durmazlar",
				"Çin Üreticiler (Bodor vs.)",
				"Ermaksan",
				"Ajan",
				"Mekotek",
				"Nukon",
				"Amada",
				"Trumpf",
				"Bystronic",
				"Diğer",
			}}},
			{Name: "PLAZMA KESİM", Node: Node{Kind: KindOptions, Options: []string{
				"Ajan", "Durmazlar", "Diğer",
			}}},
			{Name: "ŞERİT TESTERE", Node: Node{Kind: KindOptions, Options: []string{
				"Düz Kesim", "Açılı Kesim",
			}}},
		},
	},
	{
		Name: "ELEKTRİK",
		Subs: []SubCategory{
			{Name: "PANO MONTAJI", Node: Node{Kind: KindLeaf}},
			{Name: "KABLAJ", Node: Node{Kind: KindLeaf}},
			{Name: "OTOMASYONCU", Node: Node{Kind: KindDetails, Details: []DetailGroup{
				{Type: "PLC", Options: []string{"Schindler", "Siemens", "Delta", "Diğer"}},
			}}},
			{Name: "BAKIM ONARIM", Node: Node{Kind: KindLeaf}},
		},
	},
	{
		Name: "TESİSAT",
		Subs: []SubCategory{
			{Name: "HİDROLİK", Node: Node{Kind: KindLeaf}},
			{Name: "PNOMATİK", Node: Node{Kind: KindLeaf}},
		},
	},
}
