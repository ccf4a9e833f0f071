package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/merveatik/dietbot/internal/generator"
)

// DOCXRenderer writes a minimal WordprocessingML package: the three parts
// Word requires and one document body. No styling beyond bold runs and a
// larger title, which is all the practitioner's template used.
type DOCXRenderer struct{}

func NewDOCXRenderer() *DOCXRenderer { return &DOCXRenderer{} }

func (r *DOCXRenderer) Ext() string { return ".docx" }

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

func (r *DOCXRenderer) Render(doc generator.Document, path string) error {
	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	writePara(&body, doc.PatientName, paraTitle)
	rangeLine := fmt.Sprintf("%s - %s",
		generator.FormatDate(doc.Program.StartDate),
		generator.FormatDate(doc.Program.EndDate))
	writePara(&body, rangeLine, paraPlain)
	if doc.Combination != "" {
		writePara(&body, doc.Combination, paraPlain)
	}
	if doc.ExcludedFoods != "" {
		writePara(&body, "Hariç: "+doc.ExcludedFoods, paraPlain)
	}
	writePara(&body, "", paraPlain)

	for _, day := range doc.Program.Days {
		date := doc.Program.StartDate.AddDate(0, 0, day.Index-1)
		writePara(&body, fmt.Sprintf("%d. GÜN  %s", day.Index, generator.FormatDate(date)), paraHeading)
		for _, meal := range day.Meals {
			writePara(&body, fmt.Sprintf("%s  %s", meal.TimeLabel, meal.MealName), paraBold)
			for _, line := range strings.Split(meal.RecipeText, "\n") {
				writePara(&body, line, paraPlain)
			}
		}
		writePara(&body, "", paraPlain)
	}
	if doc.FooterText != "" {
		writePara(&body, doc.FooterText, paraPlain)
	}

	body.WriteString(`</w:body></w:document>`)
	return writeDocxPackage(path, body.String())
}

type paraStyle int

const (
	paraPlain paraStyle = iota
	paraBold
	paraHeading
	paraTitle
)

func writePara(b *strings.Builder, text string, style paraStyle) {
	b.WriteString(`<w:p>`)
	b.WriteString(`<w:r><w:rPr>`)
	switch style {
	case paraBold, paraHeading:
		b.WriteString(`<w:b/>`)
	case paraTitle:
		b.WriteString(`<w:b/><w:sz w:val="32"/>`)
	}
	b.WriteString(`</w:rPr>`)
	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(escapeXML(text))
	b.WriteString(`</w:t></w:r></w:p>`)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	// EscapeText never fails on a bytes.Buffer.
	xml.EscapeText(&buf, []byte(s)) //nolint:errcheck
	return buf.String()
}

func writeDocxPackage(path, documentXML string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating docx: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	parts := []struct {
		name, content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", documentXML},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("adding %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return fmt.Errorf("writing %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing docx: %w", err)
	}
	return nil
}
