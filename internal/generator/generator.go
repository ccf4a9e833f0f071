package generator

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/merveatik/dietbot/internal/domain"
	"github.com/rs/zerolog"
)

// Plan decides how many lists a run produces and how each list shifts the
// date and weight windows. Package generations carry the package's values;
// pool generations collapse to a single list.
type Plan struct {
	ListCount           int
	DaysPerList         int
	WeightChangePerList float64
}

// SingleListPlan returns the plan used for pool-scoped generations: one
// list of the given length with no weight projection.
func SingleListPlan(days int) Plan {
	return Plan{ListCount: 1, DaysPerList: days}
}

// Job bundles one complete generation: the validated request, the resolved
// template, the list plan, and the output destination.
type Job struct {
	Request  domain.GenerationRequest
	Template domain.Template
	Plan     Plan
	OutDir   string
	Footer   string
}

// Generator runs multi-list generations end to end. It owns no request
// state; the random source is shared across calls.
type Generator struct {
	source    CandidateSource
	selector  *Selector
	renderers []Renderer
	log       zerolog.Logger
}

// New creates a Generator drawing candidates from source and writing
// documents through the given renderers.
func New(source CandidateSource, rng *rand.Rand, renderers []Renderer, log zerolog.Logger) *Generator {
	return &Generator{
		source:    source,
		selector:  NewSelector(rng),
		renderers: renderers,
		log:       log.With().Str("component", "generator").Logger(),
	}
}

// Run produces every list of the job. Renderer failures are collected per
// list and format; only candidate-loading errors abort the run. The k-th
// list starts where list k-1 ended and is built at the band of the
// projected weight, always offset from the base weight so rounding cannot
// accumulate.
func (g *Generator) Run(ctx context.Context, job Job) (*domain.GenerationResult, error) {
	req := job.Request
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := job.Template.Validate(); err != nil {
		return nil, err
	}
	if job.Plan.ListCount < 1 || job.Plan.DaysPerList < 1 {
		return nil, fmt.Errorf("plan requires at least one list of one day")
	}
	if err := os.MkdirAll(job.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	tokens := ParseExclusions(req.ExcludedFoods)
	asm := &assembler{source: g.source, selector: g.selector, log: g.log}
	result := &domain.GenerationResult{}

	for k := 1; k <= job.Plan.ListCount; k++ {
		weight := req.WeightKg + float64(k-1)*job.Plan.WeightChangePerList
		band := BandForPatient(weight, req.HeightCm)
		listStart := req.StartDate.AddDate(0, 0, (k-1)*job.Plan.DaysPerList)
		listEnd := listStart.AddDate(0, 0, job.Plan.DaysPerList-1)

		if k == 1 {
			result.InitialBand = band
		}
		result.FinalBand = band

		g.log.Info().
			Int("list", k).
			Float64("weight_kg", weight).
			Str("band", string(band)).
			Str("start", listStart.Format("2006-01-02")).
			Msg("building list")

		days, err := asm.buildDays(ctx, &job.Template, req.Scope, band, tokens, job.Plan.DaysPerList)
		if err != nil {
			return nil, fmt.Errorf("list %d: %w", k, err)
		}

		program := domain.Program{
			ListIndex: k,
			Band:      band,
			WeightKg:  weight,
			StartDate: listStart,
			EndDate:   listEnd,
			Days:      days,
		}
		g.renderList(program, job, result)
	}
	return result, nil
}

func (g *Generator) renderList(program domain.Program, job Job, result *domain.GenerationResult) {
	doc := Document{
		PatientName:   job.Request.PatientName,
		TemplateName:  job.Template.Name,
		Combination:   job.Request.CombinationCode,
		ExcludedFoods: job.Request.ExcludedFoods,
		FooterText:    job.Footer,
		Program:       program,
	}
	base := FileBaseName(job.Request.PatientName, program.StartDate, program.EndDate)

	for _, r := range g.renderers {
		if !wantsExt(job.Request.OutputFormat, r.Ext()) {
			continue
		}
		path := filepath.Join(job.OutDir, base+r.Ext())
		if err := r.Render(doc, path); err != nil {
			g.log.Error().Err(err).Int("list", program.ListIndex).Str("path", path).
				Msg("render failed")
			result.Failures = append(result.Failures, domain.ListFailure{
				ListIndex: program.ListIndex,
				Format:    formatForExt(r.Ext()),
				Err:       err.Error(),
			})
			continue
		}
		result.Files = append(result.Files, path)
	}
}

func wantsExt(f domain.OutputFormat, ext string) bool {
	switch ext {
	case ".pdf":
		return f.WantsPDF()
	case ".docx":
		return f.WantsDOCX()
	default:
		return false
	}
}

func formatForExt(ext string) domain.OutputFormat {
	if ext == ".docx" {
		return domain.FormatDOCX
	}
	return domain.FormatPDF
}
