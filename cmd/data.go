package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matrix/isotopes/internal/dataset"
	"github.com/matrix/isotopes/internal/ui/format"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Print the isotope economics dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		top, _ := cmd.Flags().GetInt("top")
		if asJSON {
			return writeDataJSON(cmd.OutOrStdout(), top)
		}
		writeDataTable(cmd.OutOrStdout(), top)
		return nil
	},
}

func init() {
	dataCmd.Flags().Bool("json", false, "Print JSON instead of a table")
	dataCmd.Flags().Int("top", 0, "Only the N largest producers (0 prints every country)")
}

func selectCountries(top int) []dataset.CountryStat {
	if top > 0 {
		return dataset.TopProducers(top)
	}
	return dataset.CountryStats()
}

type dataTotals struct {
	ProductionShare   float64 `json:"production_share"`
	MedicalProcedures float64 `json:"medical_procedures"`
	CO2Savings        float64 `json:"co2_savings"`
}

type dataReport struct {
	Countries []dataset.CountryStat `json:"countries"`
	Totals    dataTotals            `json:"totals"`
	Markets   []dataset.MarketSize  `json:"market_sizes"`
	CAGR      float64               `json:"projected_cagr"`
}

func writeDataJSON(w io.Writer, top int) error {
	window := dataset.ProjectionWindow()
	cagr, err := dataset.CAGR(window.From, window.To)
	if err != nil {
		return fmt.Errorf("projected growth: %w", err)
	}

	report := dataReport{
		Countries: selectCountries(top),
		Totals: dataTotals{
			ProductionShare:   dataset.TotalProductionShare(),
			MedicalProcedures: dataset.TotalMedicalProcedures(),
			CO2Savings:        dataset.TotalCO2Savings(),
		},
		Markets: dataset.MarketSizes(),
		CAGR:    cagr,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	return nil
}

func writeDataTable(w io.Writer, top int) {
	fmt.Fprintf(w, "%-14s  %10s  %14s  %14s\n", "Country", "Production", "Procedures/yr", "CO2 Saved")
	fmt.Fprintln(w, strings.Repeat("─", 58))

	for _, c := range selectCountries(top) {
		fmt.Fprintf(w, "%-14s  %10s  %14s  %14s\n",
			c.Country,
			format.Decimal(c.ProductionShare, 0)+"%",
			format.Millions(c.MedicalProcedures),
			format.Tons(c.CO2Savings),
		)
	}

	if top > 0 {
		return
	}
	fmt.Fprintln(w, strings.Repeat("─", 58))
	fmt.Fprintf(w, "%-14s  %10s  %14s  %14s\n",
		"TOTAL",
		format.Decimal(dataset.TotalProductionShare(), 0)+"%",
		format.Millions(dataset.TotalMedicalProcedures()),
		format.Tons(dataset.TotalCO2Savings()),
	)
}
