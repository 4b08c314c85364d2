package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/spigell/cv-tailor/internal/relevance"
)

const (
	summarySheet  = "Summary"
	keywordsSheet = "Keywords"

	headerColor   = "4472C4"
	strongColor   = "C6EFCE"
	moderateColor = "FFEB9C"
	weakColor     = "FFC7CE"
)

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

// ExportExcel writes the report as a workbook with Summary and Keywords
// sheets. The .xlsx extension is added when missing. It returns the path
// actually written.
func ExportExcel(r *Report, outputPath string) (string, error) {
	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath += ".xlsx"
	}
	outputPath = filepath.Clean(outputPath)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return "", fmt.Errorf("renaming default sheet: %w", err)
	}
	if _, err := f.NewSheet(keywordsSheet); err != nil {
		return "", fmt.Errorf("creating keywords sheet: %w", err)
	}

	if err := writeSummary(f, r); err != nil {
		return "", fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeKeywords(f, r); err != nil {
		return "", fmt.Errorf("failed to create keywords sheet: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("failed to save Excel file: %w", err)
	}
	return outputPath, nil
}

func writeSummary(f *excelize.File, r *Report) error {
	if err := f.SetColWidth(summarySheet, "A", "A", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "B", "B", 60); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := f.SetCellValue(summarySheet, "A1", "Keyword Match Report"); err != nil {
		return err
	}
	if err := f.MergeCell(summarySheet, "A1", "B1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "B1", headerStyle); err != nil {
		return err
	}

	rows := [][2]any{
		{"Report ID:", r.ID.String()},
		{"Generated:", r.CreatedAt.Format("2006-01-02 15:04:05")},
		{"Job posting:", r.JobSource},
		{"CV:", r.CVSource},
		{"Match percentage:", r.Result.MatchPercentage},
		{"Match strength:", string(r.Strength)},
		{"Estimated ATS boost:", r.Boost},
		{"Total weight:", round2(r.Result.TotalWeight)},
		{"Matched weight:", round2(r.Result.MatchedWeight)},
		{"Keyword insights:", fmt.Sprintf("%d%% (%s)", r.Insights.MatchPercentage, r.Insights.Tone)},
		{"Selected keywords:", strings.Join(r.Selected, ", ")},
	}

	for i, row := range rows {
		n := i + 3
		label := fmt.Sprintf("A%d", n)
		if err := f.SetCellValue(summarySheet, label, row[0]); err != nil {
			return err
		}
		if err := f.SetCellStyle(summarySheet, label, label, labelStyle); err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", n), row[1]); err != nil {
			return err
		}
	}

	strengthStyle, err := rowStyle(f, strengthColor(r.Strength))
	if err != nil {
		return err
	}
	return f.SetCellStyle(summarySheet, "B8", "B8", strengthStyle)
}

func writeKeywords(f *excelize.File, r *Report) error {
	widths := map[string]float64{"A": 30, "B": 10, "C": 10, "D": 12}
	for col, width := range widths {
		if err := f.SetColWidth(keywordsSheet, col, col, width); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	})
	if err != nil {
		return err
	}

	matchedStyle, err := rowStyle(f, strongColor)
	if err != nil {
		return err
	}
	missingStyle, err := rowStyle(f, weakColor)
	if err != nil {
		return err
	}

	headers := []string{"Keyword", "Weight", "Matched", "Group"}
	for col, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+col)))
		if err := f.SetCellValue(keywordsSheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(keywordsSheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for i, w := range r.Result.Weighted {
		row := i + 2
		values := []any{w.Keyword, round2(w.Weight), yesNo(w.Matched), group(r, w.Keyword)}
		for col, value := range values {
			if err := f.SetCellValue(keywordsSheet, fmt.Sprintf("%s%d", string(rune('A'+col)), row), value); err != nil {
				return err
			}
		}

		style := missingStyle
		if w.Matched {
			style = matchedStyle
		}
		if err := f.SetCellStyle(keywordsSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), style); err != nil {
			return err
		}
	}

	if n := len(r.Result.Weighted); n > 0 {
		if err := f.AutoFilter(keywordsSheet, fmt.Sprintf("A1:D%d", n+1), []excelize.AutoFilterOptions{}); err != nil {
			return err
		}
	}

	return f.SetPanes(keywordsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func rowStyle(f *excelize.File, color string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		Border: thinBorder,
	})
}

func strengthColor(s relevance.Strength) string {
	switch s {
	case relevance.Strong:
		return strongColor
	case relevance.Moderate:
		return moderateColor
	default:
		return weakColor
	}
}

func group(r *Report, keyword string) string {
	switch {
	case r.Pool.IsCore(keyword):
		return "core"
	case r.Pool.IsOptional(keyword):
		return "optional"
	default:
		return "custom"
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
