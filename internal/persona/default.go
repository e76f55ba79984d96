package persona

// Persona labels of the built-in catalog.
const (
	CautiousExplorer   = "Cautious Explorer"
	BalancedAdventurer = "Balanced Adventurer"
	ConfidentWanderer  = "Confident Wanderer"
)

// Safety tags used by the built-in city table.
const (
	TagCrowded           = "crowded"
	TagPoorlyLit         = "poorly-lit"
	TagScamProne         = "scam-prone"
	TagLateTransitGaps   = "late-transit-gaps"
	TagPickpockets       = "pickpockets"
	TagHarassmentReports = "harassment-reports"
)

const defaultMaxRecommendations = 5

// DefaultSpec returns a fresh copy of the built-in catalog.
func DefaultSpec() CatalogSpec {
	return CatalogSpec{
		MaxRecommendations: defaultMaxRecommendations,
		Bands: []BandSpec{
			{
				Name:     CautiousExplorer,
				MinIndex: 0,
				Cities:   []string{"Copenhagen", "Tokyo", "Reykjavik", "Ljubljana", "Singapore", "Zurich", "Kyoto", "Vienna"},
			},
			{
				Name:     BalancedAdventurer,
				MinIndex: 3,
				Cities:   []string{"Lisbon", "Seoul", "Montreal", "Melbourne", "Taipei", "Edinburgh", "Amsterdam", "Porto"},
			},
			{
				Name:     ConfidentWanderer,
				MinIndex: 6,
				Cities:   []string{"Mexico City", "Bangkok", "Marrakech", "Istanbul", "Buenos Aires", "Hanoi", "Cape Town"},
			},
		},
		Cities: []CitySpec{
			{Name: "Copenhagen"},
			{Name: "Tokyo", Tags: []string{TagCrowded}},
			{Name: "Reykjavik", Tags: []string{TagLateTransitGaps}},
			{Name: "Ljubljana"},
			{Name: "Singapore"},
			{Name: "Zurich"},
			{Name: "Kyoto", Tags: []string{TagCrowded}},
			{Name: "Vienna"},
			{Name: "Lisbon", Tags: []string{TagPickpockets}},
			{Name: "Seoul", Tags: []string{TagCrowded}},
			{Name: "Montreal"},
			{Name: "Melbourne"},
			{Name: "Taipei", Tags: []string{TagCrowded}},
			{Name: "Edinburgh", Tags: []string{TagLateTransitGaps}},
			{Name: "Amsterdam", Tags: []string{TagCrowded, TagPickpockets}},
			{Name: "Porto", Tags: []string{TagPoorlyLit}},
			{Name: "Mexico City", Tags: []string{TagCrowded, TagScamProne, TagHarassmentReports}},
			{Name: "Bangkok", Tags: []string{TagCrowded, TagScamProne}},
			{Name: "Marrakech", Tags: []string{TagScamProne, TagHarassmentReports, TagPoorlyLit}},
			{Name: "Istanbul", Tags: []string{TagCrowded, TagScamProne}},
			{Name: "Buenos Aires", Tags: []string{TagPickpockets, TagPoorlyLit}},
			{Name: "Hanoi", Tags: []string{TagCrowded, TagScamProne}},
			{Name: "Cape Town", Tags: []string{TagPoorlyLit, TagLateTransitGaps}},
		},
		Triggers: map[string][]string{
			"crowds":        {TagCrowded},
			"dark-streets":  {TagPoorlyLit},
			"scams":         {TagScamProne},
			"pickpocketing": {TagPickpockets},
			"night-transit": {TagLateTransitGaps},
			"harassment":    {TagHarassmentReports},
		},
	}
}

// DefaultCatalog builds the built-in catalog. It panics if the table is inconsistent.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultSpec())
	if err != nil {
		panic(err)
	}
	return c
}
