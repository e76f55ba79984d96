// Package persona classifies quiz answers into a traveler persona and a ranked
// list of recommended cities.
//
// Each answer maps to an ordinal score (first declared value 0, then 1, 2). The
// four scores add up to a risk-tolerance index between 0 and MaxRiskIndex. The
// catalog splits that range into bands, each with a curated city list; cities
// whose safety tags match the traveler's anxiety triggers are pushed down the list.
package persona

// Result is the derived persona for one submission. It is never stored.
type Result struct {
	Persona         string
	RiskIndex       int
	Recommendations []string
}

// Engine classifies answers against a fixed catalog. It holds no mutable state.
type Engine struct {
	catalog *Catalog
}

func NewEngine(catalog *Catalog) *Engine {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Engine{catalog: catalog}
}

func (e *Engine) Catalog() *Catalog { return e.catalog }

// Classify returns ErrInvalidInput if an enum answer is missing or unknown.
func (e *Engine) Classify(a Answers) (Result, error) {
	idx, err := a.RiskIndex()
	if err != nil {
		return Result{}, err
	}
	b := e.catalog.bands[e.catalog.BandIndex(idx)]
	return Result{
		Persona:         b.name,
		RiskIndex:       idx,
		Recommendations: e.catalog.rank(b, e.catalog.avoidedTags(a.AnxietyTriggers)),
	}, nil
}
