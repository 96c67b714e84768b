package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"language-sprint-service/internal/app"
	"language-sprint-service/internal/config"
	"language-sprint-service/internal/domain"
	"language-sprint-service/internal/infra/memory"
	pgcorpus "language-sprint-service/internal/infra/postgres"
	redisinfra "language-sprint-service/internal/infra/redis"
	transport "language-sprint-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the game server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	sessionTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var loader memory.CorpusLoader = memory.NewStaticCorpusLoader(defaultLanguages())
	if pool != nil {
		loader = pgcorpus.NewCorpusLoader(pool)
	}

	corpusTTL := config.TTLDuration(cfg.Corpus.TTL, 10*time.Minute)
	var corpusRepo app.CorpusRepository
	if redisClient != nil {
		corpusRepo = redisinfra.NewCorpusRepository(redisClient, loader, corpusTTL)
	} else {
		corpusRepo = memory.NewCorpusRepository(loader, corpusTTL)
	}

	var sessions app.SessionRepository
	var scores app.ScoreStore
	var guestbook app.GuestbookStore
	if redisClient != nil {
		sessions = redisinfra.NewSessionStore(redisClient, sessionTTL)
		scores = redisinfra.NewScoreStore(redisClient)
		guestbook = redisinfra.NewGuestbookStore(redisClient)
	} else {
		sessions = memory.NewSessionStore()
		scores = memory.NewScoreStore()
		guestbook = memory.NewGuestbookStore()
	}

	service := app.NewGameService(sessions, corpusRepo, scores)
	applyModeOverrides(service, cfg)
	guestbookService := app.NewGuestbookService(guestbook)

	gameHandler := transport.NewGameHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", gameHandler.ServeWS)
	mux.Handle("/leaderboard", transport.NewLeaderboardHandler(service))
	mux.Handle("/guestbook", transport.NewGuestbookHandler(guestbookService))

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting language sprint service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// applyModeOverrides folds config knobs into the built-in mode table. The
// time-attack pool is a capacity hint, not a guarantee.
func applyModeOverrides(service *app.GameService, cfg config.Config) {
	if limit := config.TTLDuration(cfg.Game.TimeAttackLimit, 0); limit > 0 || cfg.Game.TimeAttackPool > 0 {
		mode, _ := domain.ConfigFor(domain.ModeTimeAttack)
		if limit > 0 {
			mode.TimeLimit = limit
		}
		if cfg.Game.TimeAttackPool > 0 {
			mode.QuestionCount = cfg.Game.TimeAttackPool
		}
		service.ConfigureMode(mode)
	}
	if cfg.Game.EndlessPool > 0 {
		mode, _ := domain.ConfigFor(domain.ModeEndless)
		mode.QuestionCount = cfg.Game.EndlessPool
		service.ConfigureMode(mode)
	}
}
