package render

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/merveatik/dietbot/internal/domain"
	"github.com/merveatik/dietbot/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() generator.Document {
	start := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	return generator.Document{
		PatientName: "Ayse Yilmaz",
		Combination: "K-3",
		FooterText:  "Dyt. Merve Atik",
		Program: domain.Program{
			ListIndex: 1,
			Band:      domain.Band26to29,
			WeightKg:  74,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 1),
			Days: []domain.Day{
				{Index: 1, Meals: []domain.MealAssignment{
					{TimeLabel: "08:00", MealName: "Kahvaltı", SlotType: domain.SlotBreakfast,
						RecipeText: "Menemen & tam buğday ekmeği\n1 bardak süt"},
				}},
				{Index: 2, Meals: []domain.MealAssignment{
					{TimeLabel: "08:00", MealName: "Kahvaltı", SlotType: domain.SlotBreakfast,
						RecipeText: generator.FallbackText},
				}},
			},
		},
	}
}

func TestPDFRenderer_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, NewPDFRenderer().Render(testDocument(), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestDOCXRenderer_WritesValidPackage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.docx")
	require.NoError(t, NewDOCXRenderer().Render(testDocument(), path))

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	names := make(map[string]bool)
	var document string
	for _, f := range zr.File {
		names[f.Name] = true
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			raw, err := io.ReadAll(rc)
			rc.Close()
			require.NoError(t, err)
			document = string(raw)
		}
	}
	assert.True(t, names["[Content_Types].xml"])
	assert.True(t, names["_rels/.rels"])
	require.True(t, names["word/document.xml"])

	assert.Contains(t, document, "Ayse Yilmaz")
	assert.Contains(t, document, "1. GÜN  02 OCAK")
	assert.Contains(t, document, "Uygun tarif bulunamadı.")
	// Ampersands in recipe text must be escaped.
	assert.Contains(t, document, "Menemen &amp; tam buğday ekmeği")
}
