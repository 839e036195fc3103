package dataset

import (
	"fmt"
	"math"
	"sort"
)

// TopProducers returns the n countries with the largest production share,
// largest first. Ties keep their authored order.
func TopProducers(n int) []CountryStat {
	stats := CountryStats()
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].ProductionShare > stats[j].ProductionShare
	})
	if n < 0 {
		n = 0
	}
	if n > len(stats) {
		n = len(stats)
	}
	return stats[:n]
}

// TotalProductionShare sums ProductionShare over all countries.
func TotalProductionShare() float64 {
	var total float64
	for _, s := range CountryStats() {
		total += s.ProductionShare
	}
	return total
}

// TotalMedicalProcedures sums MedicalProcedures (millions/year).
func TotalMedicalProcedures() float64 {
	var total float64
	for _, s := range CountryStats() {
		total += s.MedicalProcedures
	}
	return total
}

// TotalCO2Savings sums CO2Savings (thousand tons).
func TotalCO2Savings() float64 {
	var total float64
	for _, s := range CountryStats() {
		total += s.CO2Savings
	}
	return total
}

// MarketSizeIn returns the market size recorded for year.
func MarketSizeIn(year int) (float64, bool) {
	for _, m := range MarketSizes() {
		if m.Year == year {
			return m.Size, true
		}
	}
	return 0, false
}

// CAGR returns the compound annual growth rate between two recorded years,
// as a fraction (0.068 for 6.8%).
func CAGR(from, to int) (float64, error) {
	if to <= from {
		return 0, fmt.Errorf("cagr: end year %d must be after start year %d", to, from)
	}
	start, ok := MarketSizeIn(from)
	if !ok {
		return 0, fmt.Errorf("cagr: no market size for %d", from)
	}
	end, ok := MarketSizeIn(to)
	if !ok {
		return 0, fmt.Errorf("cagr: no market size for %d", to)
	}
	return math.Pow(end/start, 1/float64(to-from)) - 1, nil
}

// YearOverYear returns the growth of each year relative to the previous
// one, as fractions. The first year has no predecessor and is omitted.
func YearOverYear() []MarketSize {
	sizes := MarketSizes()
	if len(sizes) < 2 {
		return nil
	}
	out := make([]MarketSize, 0, len(sizes)-1)
	for i := 1; i < len(sizes); i++ {
		out = append(out, MarketSize{
			Year: sizes[i].Year,
			Size: sizes[i].Size/sizes[i-1].Size - 1,
		})
	}
	return out
}

// CostMinima identifies the cheapest route per numeric cost column.
type CostMinima struct {
	StartupCost int // row index with the lowest startup cost
	UnitCost    int // row index with the lowest unit cost
}

// MinCosts returns the row indexes holding each column's minimum in rows.
// Both indexes are -1 when rows is empty.
func MinCosts(rows []CostRow) CostMinima {
	m := CostMinima{StartupCost: -1, UnitCost: -1}
	for i, r := range rows {
		if m.StartupCost < 0 || r.StartupCost < rows[m.StartupCost].StartupCost {
			m.StartupCost = i
		}
		if m.UnitCost < 0 || r.UnitCost < rows[m.UnitCost].UnitCost {
			m.UnitCost = i
		}
	}
	return m
}
