// Package locations holds the fixed city → district table and the lookup
// rules the address forms depend on.
package locations

import (
	"sort"

	"ustabul/models"
	"ustabul/utils"
)

var turkeyLocations = map[string][]string{
	"İstanbul": {
		"Adalar", "Arnavutköy", "Ataşehir", "Avcılar", "Bağcılar", "Bahçelievler",
		"Bakırköy", "Başakşehir", "Bayrampaşa", "Beşiktaş", "Beykoz", "Beylikdüzü",
		"Beyoğlu", "Büyükçekmece", "Çatalca", "Çekmeköy", "Esenler", "Esenyurt",
		"Eyüpsultan", "Fatih", "Gaziosmanpaşa", "Güngören", "Kadıköy", "Kağıthane",
		"Kartal", "Küçükçekmece", "Maltepe", "Pendik", "Sancaktepe", "Sarıyer",
		"Silivri", "Sultanbeyli", "Sultangazi", "Şile", "Şişli", "Tuzla",
		"Ümraniye", "Üsküdar", "Zeytinburnu",
	},
	"Ankara": {
		"Akyurt", "Altındağ", "Ayaş", "Bala", "Beypazarı", "Çamlıdere", "Çankaya",
		"Çubuk", "Elmadağ", "Etimesgut", "Evren", "Gölbaşı", "Güdül", "Haymana",
		"Kahramankazan", "Kalecik", "Keçiören", "Kızılcahamam", "Mamak", "Nallıhan",
		"Polatlı", "Pursaklar", "Sincan", "Şereflikoçhisar", "Yenimahalle",
	},
	"İzmir": {
		"Aliağa", "Balçova", "Bayındır", "Bayraklı", "Bergama", "Beydağ", "Bornova",
		"Buca", "Çeşme", "Çiğli", "Dikili", "Foça", "Gaziemir", "Güzelbahçe",
		"Karabağlar", "Karaburun", "Karşıyaka", "Kemalpaşa", "Kınık", "Kiraz",
		"Konak", "Menderes", "Menemen", "Narlıdere", "Ödemiş", "Seferihisar",
		"Selçuk", "Tire", "Torbalı", "Urla",
	},
	"Adana": {
		"Aladağ", "Ceyhan", "Çukurova", "Feke", "İmamoğlu", "Karaisalı", "Karataş",
		"Kozan", "Pozantı", "Saimbeyli", "Sarıçam", "Seyhan", "Tufanbeyli",
		"Yumurtalık", "Yüreğir",
	},
	"Bursa": {
		"Büyükorhan", "Gemlik", "Gürsu", "Harmancık", "İnegöl", "İznik", "Karacabey",
		"Keles", "Kestel", "Mudanya", "Mustafakemalpaşa", "Nilüfer", "Orhaneli",
		"Orhangazi", "Osmangazi", "Yenişehir", "Yıldırım",
	},
	"Antalya": {
		"Akseki", "Aksu", "Alanya", "Demre", "Döşemealtı", "Elmalı", "Finike",
		"Gazipaşa", "Gündoğmuş", "İbradı", "Kaş", "Kemer", "Kepez", "Konyaaltı",
		"Korkuteli", "Kumluca", "Manavgat", "Muratpaşa", "Serik",
	},
	"Konya": {
		"Ahırlı", "Akören", "Akşehir", "Altınekin", "Beyşehir", "Bozkır", "Çeltik",
		"Cihanbeyli", "Çumra", "Derbent", "Derebucak", "Doğanhisar", "Emirgazi",
		"Ereğli", "Güneysin", "Hadim", "Halkapınar", "Hüyük", "Ilgın", "Kadınhanı",
		"Karapınar", "Karatay", "Kulu", "Meram", "Sarayönü", "Selçuklu", "Seydişehir",
		"Taşkent", "Tuzlukçu", "Yalıhüyük", "Yunak",
	},
	"Gaziantep": {
		"Araban", "İslahiye", "Karkamış", "Nizip", "Nurdağı", "Oğuzeli", "Şahinbey",
		"Şehitkamil", "Yavuzeli",
	},
	"Kayseri": {
		"Akkışla", "Bünyan", "Develi", "Felahiye", "Hacılar", "İncesu", "Kocasinan",
		"Melikgazi", "Özvatan", "Pınarbaşı", "Sarıoğlan", "Sarız", "Talas", "Tomarza",
		"Yahyalı", "Yeşilhisar",
	},
	"Mersin": {
		"Akdeniz", "Anamur", "Aydıncık", "Bozyazı", "Çamlıyayla", "Erdemli", "Gülnar",
		"Mezitli", "Mut", "Silifke", "Tarsus", "Toroslar", "Yenişehir",
	},
}

// Cities returns all covered city names, sorted.
func Cities() []string {
	cities := make([]string, 0, len(turkeyLocations))
	for city := range turkeyLocations {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

// Districts returns the district list for a city, nil when the city is not
// covered.
func Districts(city string) []string {
	return turkeyLocations[city]
}

// Normalize enforces the city → district dependency on a submitted address:
// a district that does not belong to the selected city is cleared along with
// the finer-grained fields, mirroring the cascading reset the selectors do.
func Normalize(loc models.Location) models.Location {
	if loc.City == "" {
		return models.Location{}
	}
	districts := Districts(loc.City)
	if loc.District != "" && !utils.Contains(districts, loc.District) {
		loc.District = ""
		loc.Neighborhood = ""
		loc.Street = ""
		loc.BuildingNo = ""
	}
	return loc
}
