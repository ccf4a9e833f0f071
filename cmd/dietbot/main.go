package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/merveatik/dietbot/internal/botproc"
	"github.com/merveatik/dietbot/internal/cli"
	"github.com/merveatik/dietbot/internal/db"
	"github.com/merveatik/dietbot/internal/generator"
	"github.com/merveatik/dietbot/internal/render"
	"github.com/merveatik/dietbot/internal/repository"
	"github.com/merveatik/dietbot/internal/season"
	"github.com/merveatik/dietbot/internal/service"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := newLogger()

	// Determine data dir: env var or default ~/.dietbot
	dataDir := os.Getenv("DIETBOT_DATA")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".dietbot")
	}

	// The active season picks which recipe database the whole process
	// uses; the two catalogues never mix.
	cfg, err := season.LoadConfig(dataDir)
	if err != nil {
		log.Warn().Err(err).Msg("season config unreadable, using defaults")
	}
	active, err := season.Resolve(time.Now(), cfg)
	if err != nil {
		log.Warn().Err(err).Msg("season boundaries malformed, defaulting to summer")
	}
	dbPath := filepath.Join(dataDir, season.DBFileName(active))
	log.Debug().Str("season", string(active)).Str("db", dbPath).Msg("resolved season")

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	recipeRepo := repository.NewSQLiteRecipeRepo(database)
	templateRepo := repository.NewSQLiteTemplateRepo(database)
	packageRepo := repository.NewSQLitePackageRepo(database)
	poolRepo := repository.NewSQLitePoolRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire the generation engine
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid())))
	renderers := []generator.Renderer{render.NewPDFRenderer(), render.NewDOCXRenderer()}
	gen := generator.New(recipeRepo, rng, renderers, log)
	defaultOutDir := filepath.Join(dataDir, "programs")

	// The companion bot is an external process; its command comes from
	// the environment.
	botCmd := os.Getenv("DIETBOT_BOT_CMD")
	if botCmd == "" {
		botCmd = "dietbot-telegram"
	}
	botArgs := strings.Fields(os.Getenv("DIETBOT_BOT_ARGS"))

	app := &cli.App{
		Recipes:   service.NewRecipeService(recipeRepo, poolRepo),
		Templates: service.NewTemplateService(templateRepo),
		Packages:  service.NewPackageService(packageRepo),
		Pools:     service.NewPoolService(poolRepo),
		Settings:  service.NewSettingsService(settingsRepo),
		Generate: service.NewGenerateService(gen, templateRepo, packageRepo,
			settingsRepo, defaultOutDir, log),
		Bot: botproc.New(botCmd, botArgs, log),
	}

	return cli.NewRootCmd(app).Execute()
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(os.Getenv("DIETBOT_LOG_LEVEL")); err == nil && parsed != zerolog.NoLevel {
		level = parsed
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}
