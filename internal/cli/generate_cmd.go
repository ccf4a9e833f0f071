package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/merveatik/dietbot/internal/domain"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		name        string
		weight      float64
		height      float64
		birthYear   int
		gender      string
		templateID  string
		packageName string
		pool        string
		start       string
		exclude     string
		combination string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate diet program documents for a patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}

			var scope domain.Scope
			switch {
			case packageName != "" && pool != "":
				return fmt.Errorf("--package and --pool are mutually exclusive")
			case packageName != "":
				pkg, err := app.Packages.GetByName(ctx, packageName)
				if err != nil {
					return err
				}
				scope = domain.PackageScope(pkg.ID)
			case pool != "":
				scope = domain.PoolScope(pool)
			default:
				scope = domain.PoolScope("normal")
			}

			req := domain.GenerationRequest{
				PatientName:     name,
				WeightKg:        weight,
				HeightCm:        height,
				BirthYear:       birthYear,
				Gender:          gender,
				TemplateID:      templateID,
				Scope:           scope,
				StartDate:       startDate,
				ExcludedFoods:   exclude,
				CombinationCode: combination,
				OutputFormat:    domain.OutputFormat(format),
			}

			result, err := app.Generate.Generate(ctx, req)
			if err != nil {
				return err
			}

			successf("Generated %d file(s)\n", len(result.Files))
			for _, f := range result.Files {
				fmt.Printf("  %s\n", f)
			}
			if result.InitialBand != result.FinalBand {
				fmt.Printf("Band progression: %s -> %s\n", result.InitialBand, result.FinalBand)
			}
			for _, fail := range result.Failures {
				warnf("List %d (%s) failed: %s\n", fail.ListIndex, fail.Format, fail.Err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Patient name")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	cmd.Flags().Float64Var(&height, "height", 0, "Height in cm")
	cmd.Flags().IntVar(&birthYear, "birth-year", 0, "Birth year")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&templateID, "template", "tpl-3-ogun", "Diet template ID")
	cmd.Flags().StringVar(&packageName, "package", "", "Diet package name (multi-list generation)")
	cmd.Flags().StringVar(&pool, "pool", "", "Recipe pool (single-list generation)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&exclude, "exclude", "", "Comma-separated foods to exclude")
	cmd.Flags().StringVar(&combination, "combination", "", "Combination code printed on the documents")
	cmd.Flags().StringVar(&format, "format", "pdf", "Output format: pdf, docx or both")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}
