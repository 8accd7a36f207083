package main

import (
	"context"
	"crypto/tls"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/oppd-health/whatsapp-intake/internal/api/router"
	"github.com/oppd-health/whatsapp-intake/internal/archive"
	"github.com/oppd-health/whatsapp-intake/internal/channels/whatsapp"
	"github.com/oppd-health/whatsapp-intake/internal/config"
	"github.com/oppd-health/whatsapp-intake/internal/directory"
	"github.com/oppd-health/whatsapp-intake/internal/intake"
	"github.com/oppd-health/whatsapp-intake/internal/observability/metrics"
	"github.com/oppd-health/whatsapp-intake/internal/scheduling"
	"github.com/oppd-health/whatsapp-intake/internal/triage"
	"github.com/oppd-health/whatsapp-intake/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	intakeMetrics := metrics.NewIntakeMetrics(nil)

	store, err := buildStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("context store init failed", "error", err)
		os.Exit(1)
	}

	generator := buildGenerator(ctx, cfg, logger)
	dir, sink := buildSchedulingBackend(cfg, logger)

	var turnArchive *archive.Store
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Error("postgres open failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		turnArchive = archive.NewStore(db)
	}

	engine := intake.NewEngine(dir, generator, sink, intakeMetrics, logger, cfg.TriageQuestionCap)

	var archiver intake.Archiver
	if turnArchive != nil {
		archiver = turnArchive
	}
	service := intake.NewService(store, engine, archiver, intakeMetrics, logger)

	sender := whatsapp.NewClient(cfg.WhatsAppGraphBaseURL, cfg.WhatsAppAccessToken, cfg.WhatsAppPhoneNumberID, logger)
	webhook := whatsapp.NewWebhook(cfg.WhatsAppVerifyToken, func(msg whatsapp.InboundText) {
		// The webhook has already been acked; process off the request path.
		go func() {
			turnCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			out, err := service.ProcessUtterance(turnCtx, msg.From, msg.Text)
			if err != nil {
				logger.Error("conversation turn failed", "identity", msg.From, "error", err)
			}
			if out.Message == "" {
				return
			}
			if err := sender.Send(turnCtx, msg.From, out.Message, out.QuickReplies); err != nil {
				logger.Error("outbound send failed", "identity", msg.From, "error", err)
			}
		}()
	}, logger)

	handler := router.New(&router.Config{
		Logger:          logger,
		Webhook:         webhook,
		Intake:          service,
		Archive:         turnArchive,
		Metrics:         intakeMetrics,
		MetricsHandler:  promhttp.Handler(),
		AdminAuthSecret: cfg.AdminJWTSecret,
		DevSimToken:     cfg.DevSimToken,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Env, "store", cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

func buildStore(ctx context.Context, cfg *config.Config, logger *logging.Logger) (intake.ContextStore, error) {
	switch cfg.StoreBackend {
	case "redis":
		opts := &redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		return intake.NewRedisStore(client, cfg.RecordTTL), nil
	case "dynamodb":
		awsCfg, err := loadAWSConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return intake.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), cfg.IntakeTable, cfg.RecordTTL)
	default:
		logger.Info("using in-memory context store")
		return intake.NewMemoryStore(), nil
	}
}

func buildGenerator(ctx context.Context, cfg *config.Config, logger *logging.Logger) triage.Generator {
	fallback := triage.NewStaticGenerator()

	switch cfg.QuestionProvider {
	case "gemini":
		gen, err := triage.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Warn("gemini unavailable, using static questions", "error", err)
			return fallback
		}
		return triage.NewFailover(gen, fallback)
	case "bedrock":
		awsCfg, err := loadAWSConfig(ctx, cfg)
		if err != nil {
			logger.Warn("aws config unavailable, using static questions", "error", err)
			return fallback
		}
		gen, err := triage.NewBedrockGenerator(bedrockruntime.NewFromConfig(awsCfg), cfg.BedrockModelID)
		if err != nil {
			logger.Warn("bedrock unavailable, using static questions", "error", err)
			return fallback
		}
		return triage.NewFailover(gen, fallback)
	default:
		return fallback
	}
}

func buildSchedulingBackend(cfg *config.Config, logger *logging.Logger) (directory.Lookup, scheduling.Sink) {
	if cfg.SchedulingAPIEndpoint == "" {
		logger.Info("no scheduling backend configured, using static directory and log sink")
		return directory.NewStaticDirectory(), scheduling.NewLogSink(logger)
	}
	return directory.NewHTTPDirectory(cfg.SchedulingAPIEndpoint, cfg.SchedulingAPIKey, cfg.SchedulingHTTPTimeout),
		scheduling.NewHTTPSink(cfg.SchedulingAPIEndpoint, cfg.SchedulingAPIKey, cfg.SchedulingHTTPTimeout)
}

func loadAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}
	if cfg.AWSEndpointOverride != "" {
		opts = append(opts, awsconfig.WithBaseEndpoint(cfg.AWSEndpointOverride))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}
