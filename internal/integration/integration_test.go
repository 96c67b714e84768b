package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"language-sprint-service/internal/app"
	"language-sprint-service/internal/domain"
	pgloader "language-sprint-service/internal/infra/postgres"
	pgmigrations "language-sprint-service/internal/infra/postgres/migrations"
	infraredis "language-sprint-service/internal/infra/redis"
	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

func TestSprintRunEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	seedLanguages(t, ctx, pgURL, sampleLanguages())

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	loader := pgloader.NewCorpusLoader(pool)

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	corpusRepo := infraredis.NewCorpusRepository(redisClient, loader, 5*time.Minute)
	sessionStore := infraredis.NewSessionStore(redisClient, 5*time.Minute)
	scoreStore := infraredis.NewScoreStore(redisClient)
	service := app.NewGameService(sessionStore, corpusRepo, scoreStore)

	session, err := service.StartGame(ctx, domain.ModeSprint, domain.DifficultyAny, "alice")
	if err != nil {
		t.Fatalf("start game: %v", err)
	}

	answers := map[string]string{
		"hola":    "spanish",
		"bonjour": "french",
		"hallo":   "german",
	}

	var outcome app.SubmitOutcome
	for {
		question, ok := session.CurrentQuestion()
		if !ok {
			break
		}
		answer, known := answers[question.Prompt]
		if !known {
			t.Fatalf("unexpected prompt %q", question.Prompt)
		}
		outcome, err = service.Submit(ctx, session.ID, answer)
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if !outcome.Correct {
			t.Fatalf("answer %q judged incorrect", answer)
		}
		if outcome.Finished {
			break
		}
	}

	if outcome.Result == nil {
		t.Fatal("expected a terminal result")
	}
	if outcome.Result.Stats.Accuracy != 100 {
		t.Fatalf("expected 100%% accuracy, got %d", outcome.Result.Stats.Accuracy)
	}

	// The run's scores must be visible through the Redis-backed stores.
	bests, err := scoreStore.PersonalBests(ctx, "alice")
	if err != nil {
		t.Fatalf("load bests: %v", err)
	}
	if bests.Modes[domain.ModeSprint].GamesPlayed != 1 {
		t.Fatalf("expected 1 sprint game recorded, got %+v", bests)
	}

	board, err := service.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("load leaderboard: %v", err)
	}
	if len(board.Entries) != 1 || board.Entries[0].Username != "alice" {
		t.Fatalf("expected alice on the leaderboard, got %+v", board.Entries)
	}
	wantScore := len(answers)*100 + 500
	if board.Entries[0].TotalScore != wantScore {
		t.Fatalf("expected %d points, got %d", wantScore, board.Entries[0].TotalScore)
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "sprint", "POSTGRES_PASSWORD": "sprintpass", "POSTGRES_DB": "sprintdb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://sprint:sprintpass@%s:%s/sprintdb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func seedLanguages(t *testing.T, ctx context.Context, dsn string, languages []domain.Language) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, lang := range languages {
		data, err := json.Marshal(lang)
		if err != nil {
			t.Fatalf("marshal language: %v", err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO languages (code, data) VALUES (?, ?::jsonb) ON CONFLICT (code) DO UPDATE SET data=EXCLUDED.data`, lang.Code, string(data)); err != nil {
			t.Fatalf("insert language: %v", err)
		}
	}
}

func sampleLanguages() []domain.Language {
	return []domain.Language{
		{Code: "es", Name: "Spanish", AcceptableAnswers: []string{"spanish", "es"}, Samples: []string{"hola"}},
		{Code: "fr", Name: "French", AcceptableAnswers: []string{"french", "fr"}, Samples: []string{"bonjour"}},
		{Code: "de", Name: "German", AcceptableAnswers: []string{"german", "de"}, Samples: []string{"hallo"}},
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
