package service

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	"github.com/merveatik/dietbot/internal/domain"
	"github.com/merveatik/dietbot/internal/generator"
	"github.com/merveatik/dietbot/internal/repository"
	"github.com/merveatik/dietbot/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureRenderer struct {
	ext   string
	docs  []generator.Document
	paths []string
}

func (r *captureRenderer) Ext() string { return r.ext }

func (r *captureRenderer) Render(doc generator.Document, path string) error {
	r.docs = append(r.docs, doc)
	r.paths = append(r.paths, path)
	return nil
}

type generateFixture struct {
	svc      GenerateService
	recipes  repository.RecipeRepo
	packages repository.PackageRepo
	settings repository.SettingsRepo
	pdf      *captureRenderer
	outDir   string
}

func newGenerateFixture(t *testing.T) *generateFixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	recipes := repository.NewSQLiteRecipeRepo(db)
	packages := repository.NewSQLitePackageRepo(db)
	templates := repository.NewSQLiteTemplateRepo(db)
	settings := repository.NewSQLiteSettingsRepo(db)

	pdf := &captureRenderer{ext: ".pdf"}
	rng := rand.New(rand.NewPCG(7, 11))
	gen := generator.New(recipes, rng, []generator.Renderer{pdf}, zerolog.Nop())

	outDir := t.TempDir()
	return &generateFixture{
		svc:      NewGenerateService(gen, templates, packages, settings, outDir, zerolog.Nop()),
		recipes:  recipes,
		packages: packages,
		settings: settings,
		pdf:      pdf,
		outDir:   outDir,
	}
}

func (f *generateFixture) seedRecipes(t *testing.T, ctx context.Context) []string {
	t.Helper()
	var ids []string
	for slot, name := range map[domain.SlotType]string{
		domain.SlotBreakfast:    "Menemen",
		domain.SlotMidMorning:   "Badem",
		domain.SlotLunch:        "Izgara Tavuk",
		domain.SlotMidAfternoon: "Yoğurt",
		domain.SlotDinner:       "Sebze Çorbası",
		domain.SlotSpecialDrink: "Detoks Suyu",
	} {
		rec := testutil.NewTestRecipe(name, testutil.WithSlotType(slot))
		require.NoError(t, f.recipes.Create(ctx, rec))
		ids = append(ids, rec.ID)
	}
	return ids
}

func baseRequest(scope domain.Scope) domain.GenerationRequest {
	return domain.GenerationRequest{
		PatientName:  "Ayse Yilmaz",
		WeightKg:     74,
		HeightCm:     165,
		TemplateID:   "tpl-3-ogun",
		Scope:        scope,
		StartDate:    time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC),
		OutputFormat: domain.FormatPDF,
	}
}

func TestGenerateService_PackageScope(t *testing.T) {
	f := newGenerateFixture(t)
	ctx := context.Background()

	ids := f.seedRecipes(t, ctx)
	pkg := testutil.NewTestPackage("Detoks 8",
		testutil.WithListCount(2), testutil.WithDaysPerList(4),
		testutil.WithWeightChange(-1.5))
	require.NoError(t, f.packages.Create(ctx, pkg))
	require.NoError(t, f.packages.SetRecipes(ctx, pkg.ID, ids))

	result, err := f.svc.Generate(ctx, baseRequest(domain.PackageScope(pkg.ID)))
	require.NoError(t, err)

	assert.Empty(t, result.Failures)
	require.Len(t, result.Files, 2)
	assert.Equal(t, "AYSE YILMAZ (03 ŞUBAT - 06 ŞUBAT).pdf", filepath.Base(result.Files[0]))
	assert.Equal(t, "AYSE YILMAZ (07 ŞUBAT - 10 ŞUBAT).pdf", filepath.Base(result.Files[1]))

	require.Len(t, f.pdf.docs, 2)
	assert.Equal(t, 74.0, f.pdf.docs[0].Program.WeightKg)
	assert.Equal(t, 72.5, f.pdf.docs[1].Program.WeightKg)
	require.Len(t, f.pdf.docs[0].Program.Days, 4)
	assert.Len(t, f.pdf.docs[0].Program.Days[0].Meals, 6)
}

func TestGenerateService_PoolScope_UsesDaysCountSetting(t *testing.T) {
	f := newGenerateFixture(t)
	ctx := context.Background()

	f.seedRecipes(t, ctx)
	require.NoError(t, f.settings.Set(ctx, "days_count", "6"))

	result, err := f.svc.Generate(ctx, baseRequest(domain.PoolScope("normal")))
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	require.Len(t, f.pdf.docs, 1)
	assert.Len(t, f.pdf.docs[0].Program.Days, 6)
}

func TestGenerateService_PackageSavePathWins(t *testing.T) {
	f := newGenerateFixture(t)
	ctx := context.Background()

	ids := f.seedRecipes(t, ctx)
	custom := t.TempDir()
	pkg := testutil.NewTestPackage("Ozel", testutil.WithListCount(1),
		testutil.WithDaysPerList(2), testutil.WithSavePath(custom))
	require.NoError(t, f.packages.Create(ctx, pkg))
	require.NoError(t, f.packages.SetRecipes(ctx, pkg.ID, ids))

	result, err := f.svc.Generate(ctx, baseRequest(domain.PackageScope(pkg.ID)))
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, custom, filepath.Dir(result.Files[0]))
}

func TestGenerateService_FooterSettingsReachRenderer(t *testing.T) {
	f := newGenerateFixture(t)
	ctx := context.Background()

	f.seedRecipes(t, ctx)
	require.NoError(t, f.settings.Set(ctx, "footer_phone", "0555 000 00 00"))
	require.NoError(t, f.settings.Set(ctx, "footer_website", "merveatik.com"))
	require.NoError(t, f.settings.Set(ctx, "footer_instagram", "dyt.merveatik"))

	_, err := f.svc.Generate(ctx, baseRequest(domain.PoolScope("normal")))
	require.NoError(t, err)
	require.Len(t, f.pdf.docs, 1)
	assert.Equal(t, "0555 000 00 00  |  merveatik.com  |  @dyt.merveatik",
		f.pdf.docs[0].FooterText)
}

func TestGenerateService_BlankFooterSettingsSkipped(t *testing.T) {
	f := newGenerateFixture(t)
	ctx := context.Background()

	f.seedRecipes(t, ctx)
	require.NoError(t, f.settings.Set(ctx, "footer_website", "merveatik.com"))

	_, err := f.svc.Generate(ctx, baseRequest(domain.PoolScope("normal")))
	require.NoError(t, err)
	require.Len(t, f.pdf.docs, 1)
	assert.Equal(t, "merveatik.com", f.pdf.docs[0].FooterText)
}

func TestGenerateService_UnknownTemplate(t *testing.T) {
	f := newGenerateFixture(t)

	req := baseRequest(domain.PoolScope("normal"))
	req.TemplateID = "yok"
	_, err := f.svc.Generate(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGenerateService_UnknownPackage(t *testing.T) {
	f := newGenerateFixture(t)

	_, err := f.svc.Generate(context.Background(), baseRequest(domain.PackageScope("yok")))
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
