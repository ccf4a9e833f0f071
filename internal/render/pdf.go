// Package render writes generated diet programs to disk as PDF and DOCX
// documents. Renderers are stateless; one instance serves every list of a
// run.
package render

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/merveatik/dietbot/internal/generator"
)

// PDFRenderer produces A4 portrait documents. Text is translated through
// the cp1254 code page so Turkish characters survive the core fonts.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer { return &PDFRenderer{} }

func (r *PDFRenderer) Ext() string { return ".pdf" }

func (r *PDFRenderer) Render(doc generator.Document, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1254")
	pdf.SetMargins(20, 18, 20)
	pdf.SetAutoPageBreak(true, 22)

	if doc.FooterText != "" {
		footer := doc.FooterText
		pdf.SetFooterFunc(func() {
			pdf.SetY(-16)
			pdf.SetFont("Helvetica", "I", 8)
			pdf.SetTextColor(120, 120, 120)
			pdf.CellFormat(0, 8, tr(footer), "", 0, "C", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		})
	}

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(doc.PatientName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	rangeLine := fmt.Sprintf("%s - %s",
		generator.FormatDate(doc.Program.StartDate),
		generator.FormatDate(doc.Program.EndDate))
	pdf.CellFormat(0, 7, tr(rangeLine), "", 1, "C", false, 0, "")
	if doc.Combination != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 6, tr(doc.Combination), "", 1, "C", false, 0, "")
	}
	if doc.ExcludedFoods != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 6, tr("Hariç: "+doc.ExcludedFoods), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	for _, day := range doc.Program.Days {
		date := doc.Program.StartDate.AddDate(0, 0, day.Index-1)
		header := fmt.Sprintf("%d. GÜN  %s", day.Index, generator.FormatDate(date))

		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(235, 228, 245)
		pdf.CellFormat(0, 8, tr(header), "", 1, "L", true, 0, "")
		pdf.Ln(1)

		for _, meal := range day.Meals {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s  %s", meal.TimeLabel, meal.MealName)),
				"", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(meal.RecipeText), "", "L", false)
			pdf.Ln(1)
		}
		pdf.Ln(3)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
