package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/estatebot/internal/api/handlers"
	"github.com/donaldgifford/estatebot/internal/api/middleware"
	"github.com/donaldgifford/estatebot/internal/config"
	"github.com/donaldgifford/estatebot/internal/onoffice"
	"github.com/donaldgifford/estatebot/internal/probe"
	"github.com/donaldgifford/estatebot/internal/router"
	"github.com/donaldgifford/estatebot/internal/tracing"
	"github.com/donaldgifford/estatebot/pkg/chat"
	"github.com/donaldgifford/estatebot/pkg/logger"
)

const (
	apiTitle   = "Estatebotics"
	apiVersion = "2.0.0"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing, log)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn("flushing traces", "error", err)
		}
	}()

	listings := onoffice.NewSignedClient(
		onoffice.NewCredentials(cfg.OnOffice.APIKey, cfg.OnOffice.SecretToken),
		onoffice.WithAPIURL(cfg.OnOffice.APIURL),
		onoffice.WithHTTPClient(&http.Client{
			Timeout:   cfg.OnOffice.Timeout,
			Transport: tracing.Transport(nil),
		}),
		onoffice.WithLogger(log),
	)

	backend, err := newLLMBackend(ctx, cfg.LLM)
	if err != nil {
		return err
	}
	prompts, err := chat.NewPromptRenderer(cfg.LLM.SystemPrompt, cfg.LLM.PromptTemplate, cfg.LLM.MaxReplyChars)
	if err != nil {
		return fmt.Errorf("loading prompt templates: %w", err)
	}
	gateway := chat.NewGateway(backend, prompts, log, chat.WithTemperature(cfg.LLM.Temperature))
	rt := router.New(listings, gateway, log)

	var ready handlers.ReadinessChecker
	if cfg.OnOffice.Probe.Enabled {
		p, err := probe.New(listings, cfg.OnOffice.Probe.Interval, cfg.OnOffice.Probe.Timeout, log)
		if err != nil {
			return err
		}
		p.Start(ctx)
		defer func() { <-p.Stop().Done() }()
		ready = p
	}

	e := newServer(cfg.Server, log, rt, listings, ready)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server",
		"addr", addr,
		"llm_backend", backend.Name(),
		"probe", cfg.OnOffice.Probe.Enabled,
	)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// newServer assembles the Echo app with middleware, operational endpoints
// and the Huma API operations.
func newServer(
	cfg config.ServerConfig,
	log *slog.Logger,
	rt handlers.PromptRouter,
	listings onoffice.ListingsClient,
	ready handlers.ReadinessChecker,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	e.Use(
		middleware.RequestLog(log),
		middleware.Recovery(log),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSOrigins),
	)

	health := handlers.NewHealthHandler(ready)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig(apiTitle, apiVersion)
	humaCfg.Info.Description = "Real estate chatbot backed by the onOffice listings API."
	api := humaecho.New(e, humaCfg)

	handlers.RegisterChatRoutes(api, handlers.NewChatHandler(rt))
	handlers.RegisterPropertiesRoutes(api, handlers.NewPropertiesHandler(listings))

	return e
}

// newLLMBackend builds the configured generative backend. Backend HTTP
// clients carry the LLM timeout and trace propagation.
func newLLMBackend(ctx context.Context, cfg config.LLMConfig) (chat.LLMBackend, error) {
	hc := &http.Client{Timeout: cfg.Timeout, Transport: tracing.Transport(nil)}

	switch cfg.Backend {
	case "openai_compat":
		opts := []chat.OpenAICompatOption{chat.WithOpenAICompatHTTPClient(hc)}
		if cfg.OpenAICompat.APIKey != "" {
			opts = append(opts, chat.WithOpenAICompatAPIKey(cfg.OpenAICompat.APIKey))
		}
		return chat.NewOpenAICompatBackend(cfg.OpenAICompat.Endpoint, cfg.OpenAICompat.Model, opts...), nil
	case "anthropic":
		opts := []chat.AnthropicOption{chat.WithAnthropicHTTPClient(hc)}
		if cfg.Anthropic.Endpoint != "" {
			opts = append(opts, chat.WithAnthropicEndpoint(cfg.Anthropic.Endpoint))
		}
		if cfg.Anthropic.Model != "" {
			opts = append(opts, chat.WithAnthropicModel(cfg.Anthropic.Model))
		}
		if cfg.Anthropic.APIKey != "" {
			opts = append(opts, chat.WithAnthropicAPIKey(cfg.Anthropic.APIKey))
		}
		return chat.NewAnthropicBackend(opts...), nil
	case "gemini":
		opts := []chat.GeminiOption{chat.WithGeminiHTTPClient(hc)}
		if cfg.Gemini.BaseURL != "" {
			opts = append(opts, chat.WithGeminiBaseURL(cfg.Gemini.BaseURL))
		}
		b, err := chat.NewGeminiBackend(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, opts...)
		if err != nil {
			return nil, fmt.Errorf("creating gemini backend: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown llm backend %q", cfg.Backend)
	}
}
