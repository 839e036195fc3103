package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed isotopes.json
var rawDocument []byte

//go:embed schema.json
var rawSchema []byte

const schemaURL = "schema://isotopes.json"

// CountryStat is one row of the isotope-economics table.
type CountryStat struct {
	Country           string  `json:"country"`
	ProductionShare   float64 `json:"production_share"`   // % of global isotope production
	MedicalProcedures float64 `json:"medical_procedures"` // million procedures per year
	CO2Savings        float64 `json:"co2_savings"`        // thousand tons saved
}

// Metric is a headline figure shown as a card on the global dashboard.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta"`
}

// ProductionMethod scores a production route on a 0-10 scale.
type ProductionMethod struct {
	Method         string  `json:"method"`
	CostEfficiency float64 `json:"cost_efficiency"`
	Scalability    float64 `json:"scalability"`
	IsotopeRange   float64 `json:"isotope_range"`
}

// Scores returns the method's scores in the order of ProductionAxes.
func (m ProductionMethod) Scores() []float64 {
	return []float64{m.CostEfficiency, m.Scalability, m.IsotopeRange}
}

// ProductionAxes names the dimensions ProductionMethod is scored on.
var ProductionAxes = []string{"Cost Efficiency", "Scalability", "Isotope Range"}

// MedicalShare is one application's share of the medical isotope market.
type MedicalShare struct {
	Application string  `json:"application"`
	Share       float64 `json:"share"`
}

// MarketSize is the global isotope market size for one year, in $B.
type MarketSize struct {
	Year int     `json:"year"`
	Size float64 `json:"size"`
}

// Window is an inclusive range of years.
type Window struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Contains reports whether year falls inside the window.
func (w Window) Contains(year int) bool {
	return year >= w.From && year <= w.To
}

// CostRow compares the economics of one production route.
type CostRow struct {
	Method      string  `json:"method"`
	StartupCost float64 `json:"startup_cost"` // $M
	UnitCost    float64 `json:"unit_cost"`    // $ per unit
	Capacity    string  `json:"capacity"`
}

// document mirrors isotopes.json.
type document struct {
	Version           int                `json:"version"`
	Countries         []CountryStat      `json:"countries"`
	Metrics           []Metric           `json:"metrics"`
	ProductionMethods []ProductionMethod `json:"production_methods"`
	MedicalShares     []MedicalShare     `json:"medical_shares"`
	MarketSizes       []MarketSize       `json:"market_sizes"`
	Projection        Window             `json:"projection"`
	CostComparison    []CostRow          `json:"cost_comparison"`
}

var (
	loadOnce sync.Once
	loaded   *document
)

// data returns the decoded document. The document is compiled into the
// binary, so a failure here is a build defect and panics.
func data() *document {
	loadOnce.Do(func() {
		doc, err := decode(rawDocument, rawSchema)
		if err != nil {
			panic(fmt.Sprintf("dataset: embedded document is invalid: %v", err))
		}
		loaded = doc
	})
	return loaded
}

// decode validates raw against schema and unmarshals it.
func decode(raw, schema []byte) (*document, error) {
	compiled, err := compileSchema(schema)
	if err != nil {
		return nil, err
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if err := compiled.Validate(instance); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

func compileSchema(schema []byte) (*jsonschema.Schema, error) {
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}

// CountryStats returns the fixed country table in its authored order.
// Each call returns a fresh copy.
func CountryStats() []CountryStat {
	return clone(data().Countries)
}

// HeadlineMetrics returns the dashboard metric cards.
func HeadlineMetrics() []Metric {
	return clone(data().Metrics)
}

// ProductionMethods returns the production route scores.
func ProductionMethods() []ProductionMethod {
	return clone(data().ProductionMethods)
}

// MedicalShares returns the medical market split by application.
func MedicalShares() []MedicalShare {
	return clone(data().MedicalShares)
}

// MarketSizes returns the yearly market sizes in ascending year order.
func MarketSizes() []MarketSize {
	return clone(data().MarketSizes)
}

// ProjectionWindow returns the years of MarketSizes that are forecasts.
func ProjectionWindow() Window {
	return data().Projection
}

// CostComparison returns the production cost table.
func CostComparison() []CostRow {
	return clone(data().CostComparison)
}

func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
