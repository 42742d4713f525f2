// Package export writes stored analyses to CSV, XLSX, and JSON files for
// hand-off to sales tooling.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/salesfit/internal/model"
)

// analysisColumns defines the ordered output columns shared by the CSV
// and XLSX writers.
var analysisColumns = []string{
	"ID",
	"Seller",
	"Target",
	"Verdict",
	"Overall Score",
	"Market Alignment",
	"Budget Readiness",
	"Technology Fit",
	"Competitive Position",
	"Implementation Readiness",
	"Confidence",
	"Competition Type",
	"Score Reduction",
	"Created At",
}

// WriteCSV writes analyses as a CSV file.
func WriteCSV(analyses []model.Analysis, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return eris.Wrap(err, "export: create csv file")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(analysisColumns); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}
	for i := range analyses {
		if err := w.Write(buildRow(&analyses[i])); err != nil {
			return eris.Wrap(err, "export: write csv row")
		}
	}
	return nil
}

// WriteXLSX writes analyses as a single-sheet XLSX workbook.
func WriteXLSX(analyses []model.Analysis, outputPath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Analyses")
	if err != nil {
		return eris.Wrap(err, "export: add xlsx sheet")
	}

	header := sheet.AddRow()
	for _, col := range analysisColumns {
		header.AddCell().Value = col
	}
	for i := range analyses {
		row := sheet.AddRow()
		for _, val := range buildRow(&analyses[i]) {
			row.AddCell().Value = val
		}
	}

	if err := file.Save(outputPath); err != nil {
		return eris.Wrap(err, "export: save xlsx file")
	}
	return nil
}

// WriteJSON writes the full analyses, reports included, as indented JSON.
func WriteJSON(analyses []model.Analysis, outputPath string) error {
	data, err := json.MarshalIndent(analyses, "", "  ")
	if err != nil {
		return eris.Wrap(err, "export: marshal analyses")
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return eris.Wrap(err, "export: write json file")
	}
	return nil
}

// Write picks the writer matching the file extension of outputPath.
// Supported: .csv, .xlsx, .json.
func Write(analyses []model.Analysis, outputPath string) error {
	switch {
	case strings.HasSuffix(outputPath, ".csv"):
		return WriteCSV(analyses, outputPath)
	case strings.HasSuffix(outputPath, ".xlsx"):
		return WriteXLSX(analyses, outputPath)
	case strings.HasSuffix(outputPath, ".json"):
		return WriteJSON(analyses, outputPath)
	default:
		return eris.New(fmt.Sprintf("export: unsupported output format %q", outputPath))
	}
}

// buildRow maps an analysis to one flat output row.
func buildRow(a *model.Analysis) []string {
	row := []string{
		a.ID,
		a.SellerCompany,
		a.TargetCompany,
		string(a.Compatibility.Verdict),
		strconv.Itoa(a.Scorecard.Overall),
	}
	for _, name := range model.DimensionOrder {
		row = append(row, dimensionStr(&a.Scorecard, name))
	}

	confidence := ""
	if a.ValidationReport != nil {
		confidence = string(a.ValidationReport.ConfidenceLevel)
	}
	competitionType := ""
	reduction := ""
	if a.CompetitiveImpact != nil {
		competitionType = string(a.CompetitiveImpact.CompetitionType)
		reduction = strconv.Itoa(a.CompetitiveImpact.ScoreReduction)
	}

	return append(row,
		confidence,
		competitionType,
		reduction,
		a.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	)
}

func dimensionStr(card *model.Scorecard, name string) string {
	if dim := card.Dimension(name); dim != nil {
		return strconv.FormatFloat(dim.Score, 'f', 1, 64)
	}
	return ""
}
