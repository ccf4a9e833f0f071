package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/merveatik/dietbot/internal/domain"
	"github.com/merveatik/dietbot/internal/generator"
	"github.com/merveatik/dietbot/internal/repository"
	"github.com/rs/zerolog"
)

type generateService struct {
	gen           *generator.Generator
	templates     repository.TemplateRepo
	packages      repository.PackageRepo
	settings      repository.SettingsRepo
	defaultOutDir string
	log           zerolog.Logger
}

// NewGenerateService wires the generation engine to its catalogue repos.
// defaultOutDir is used when neither the package nor the settings name a
// save path.
func NewGenerateService(gen *generator.Generator, templates repository.TemplateRepo,
	packages repository.PackageRepo, settings repository.SettingsRepo,
	defaultOutDir string, log zerolog.Logger) GenerateService {
	return &generateService{
		gen:           gen,
		templates:     templates,
		packages:      packages,
		settings:      settings,
		defaultOutDir: defaultOutDir,
		log:           log.With().Str("component", "generate").Logger(),
	}
}

func (s *generateService) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tpl, err := s.templates.GetByID(ctx, req.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("resolving template: %w", err)
	}

	plan, outDir, err := s.resolvePlan(ctx, req.Scope)
	if err != nil {
		return nil, err
	}
	footer, err := s.composeFooter(ctx)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("patient", req.PatientName).
		Int("lists", plan.ListCount).
		Int("days_per_list", plan.DaysPerList).
		Str("out_dir", outDir).
		Msg("starting generation")

	result, err := s.gen.Run(ctx, generator.Job{
		Request:  req,
		Template: *tpl,
		Plan:     plan,
		OutDir:   outDir,
		Footer:   footer,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("files", len(result.Files)).
		Int("failures", len(result.Failures)).
		Msg("generation finished")
	return result, nil
}

// composeFooter joins the practitioner's contact settings into the single
// footer line printed on every document page. Blank settings are skipped;
// an all-blank configuration yields no footer.
func (s *generateService) composeFooter(ctx context.Context) (string, error) {
	fields := []struct{ key, prefix string }{
		{"footer_phone", ""},
		{"footer_website", ""},
		{"footer_instagram", "@"},
	}
	var parts []string
	for _, f := range fields {
		v, err := s.settings.Get(ctx, f.key, "")
		if err != nil {
			return "", err
		}
		if v != "" {
			parts = append(parts, f.prefix+v)
		}
	}
	return strings.Join(parts, "  |  "), nil
}

// resolvePlan derives the list plan and output directory from the scope.
// Package scopes carry their own plan; pool scopes produce a single list
// whose length comes from the days_count setting.
func (s *generateService) resolvePlan(ctx context.Context, scope domain.Scope) (generator.Plan, string, error) {
	outDir, err := s.settings.Get(ctx, "save_path", "")
	if err != nil {
		return generator.Plan{}, "", err
	}
	if outDir == "" {
		outDir = s.defaultOutDir
	}

	if !scope.IsPackage() {
		daysRaw, err := s.settings.Get(ctx, "days_count", "4")
		if err != nil {
			return generator.Plan{}, "", err
		}
		days, err := strconv.Atoi(daysRaw)
		if err != nil || days < 1 {
			days = 4
		}
		return generator.SingleListPlan(days), outDir, nil
	}

	pkg, err := s.packages.GetByID(ctx, scope.PackageID)
	if err != nil {
		return generator.Plan{}, "", fmt.Errorf("resolving package: %w", err)
	}
	if pkg.SavePath != "" {
		outDir = pkg.SavePath
	}
	return generator.Plan{
		ListCount:           pkg.ListCount,
		DaysPerList:         pkg.DaysPerList,
		WeightChangePerList: pkg.WeightChangePerList,
	}, outDir, nil
}
