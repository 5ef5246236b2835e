// Package main provides the easy-dataset binary entry point.
// easy-dataset turns literature chunks into fine-tuning datasets:
// question generation, answer evaluation, tag distillation, and
// genre/audience framing, all driven by configurable LLM prompts.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	// Register LLM providers via init()
	_ "github.com/amazing83/easy-dataset/llm/providers"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/amazing83/easy-dataset/config"
	"github.com/amazing83/easy-dataset/llm"
	"github.com/amazing83/easy-dataset/model"
	"github.com/amazing83/easy-dataset/pipeline"
	"github.com/amazing83/easy-dataset/prompt"
	"github.com/amazing83/easy-dataset/promptstore"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "easy-dataset"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootFlags are the global flags shared by every verb.
type rootFlags struct {
	configPath string
	projectID  string
	language   string
	logLevel   string
	natsURL    string
	modelsFile string
}

func rootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "LLM-driven dataset curation pipeline",
		Long: `easy-dataset builds fine-tuning datasets from literature chunks.

It provides:
- Question generation from text chunks, optionally framed by
  genre/audience pairs
- Quality evaluation of Q&A records with 0.5-step scoring
- Tag and question distillation for topic trees
- Domain-tree revision against changed literature
- Data cleaning of raw chunk text

Prompt templates can be overridden per project via NATS KV, and every
LLM call can be recorded to JetStream for auditing.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Config file path (YAML)")
	pf.StringVarP(&flags.projectID, "project", "p", "", "Project ID for prompt overrides")
	pf.StringVarP(&flags.language, "lang", "l", "", "Prompt language (zh, en)")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&flags.natsURL, "nats", "", "NATS server URL (overrides config)")
	pf.StringVar(&flags.modelsFile, "models", "", "Model registry file (JSON, overrides config)")

	cmd.AddCommand(
		newEvaluateCmd(flags),
		newQuestionsCmd(flags),
		newGACmd(flags),
		newDistillTagsCmd(flags),
		newDistillQuestionsCmd(flags),
		newReviseTreeCmd(flags),
		newCleanCmd(flags),
		newRenderCmd(flags),
	)

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// app holds the wired-up pipeline for one CLI invocation.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	builder *prompt.Builder
	service *pipeline.Service
	lang    prompt.Language

	nc *nats.Conn
}

// setup loads config, connects infrastructure, and wires the pipeline.
func setup(flags *rootFlags) (*app, error) {
	logger := newLogger(flags.logLevel)
	slog.SetDefault(logger)

	cfg, err := loadConfig(flags.configPath, logger)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flags.projectID != "" {
		cfg.Project.ID = flags.projectID
	}
	if flags.language != "" {
		cfg.Project.Language = flags.language
	}
	if flags.natsURL != "" {
		cfg.NATS.URL = flags.natsURL
	}
	if flags.modelsFile != "" {
		cfg.Models.RegistryFile = flags.modelsFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	lang := prompt.ParseLanguage(cfg.Project.Language)

	registry, err := loadModelRegistry(cfg)
	if err != nil {
		return nil, fmt.Errorf("load model registry: %w", err)
	}
	model.InitGlobal(registry)

	a := &app{cfg: cfg, logger: logger, lang: lang}

	// NATS is optional: without it overrides and call recording are off.
	var store prompt.OverrideStore
	var recorder *llm.CallRecorder
	if cfg.NATS.URL != "" {
		nc, err := nats.Connect(cfg.NATS.URL,
			nats.Name(appName),
			nats.Timeout(5*time.Second))
		if err != nil {
			return nil, fmt.Errorf("connect to NATS at %s: %w", cfg.NATS.URL, err)
		}
		a.nc = nc

		js, err := nc.JetStream()
		if err != nil {
			a.close()
			return nil, fmt.Errorf("jetstream context: %w", err)
		}

		kvStore, err := promptstore.NewKVStore(js, promptstore.WithKVLogger(logger))
		if err != nil {
			a.close()
			return nil, fmt.Errorf("open prompt override store: %w", err)
		}
		store = kvStore

		if cfg.NATS.RecordCalls {
			recorder, err = llm.NewCallRecorder(js, llm.WithRecorderLogger(logger))
			if err != nil {
				a.close()
				return nil, fmt.Errorf("create call recorder: %w", err)
			}
		}
	}

	resolver := prompt.NewResolver(store, prompt.WithResolverLogger(logger))
	a.builder = prompt.NewBuilder(nil, resolver)

	clientOpts := []llm.ClientOption{llm.WithLogger(logger)}
	if recorder != nil {
		clientOpts = append(clientOpts, llm.WithCallRecorder(recorder))
	}
	client := llm.NewClient(registry, clientOpts...)

	svcOpts := []pipeline.ServiceOption{
		pipeline.WithLogger(logger),
		pipeline.WithTemperature(cfg.LLM.Temperature),
	}
	if cfg.LLM.MaxTokens > 0 {
		svcOpts = append(svcOpts, pipeline.WithMaxTokens(cfg.LLM.MaxTokens))
	}
	a.service = pipeline.NewService(a.builder, client, cfg.Project.ID, lang, svcOpts...)

	return a, nil
}

func (a *app) close() {
	if a.nc != nil {
		a.nc.Close()
	}
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// loadConfig loads from an explicit path, or via layered discovery.
func loadConfig(path string, logger *slog.Logger) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.NewLoader(logger).Load()
}

// loadModelRegistry loads the registry file from config, or defaults.
func loadModelRegistry(cfg *config.Config) (*model.Registry, error) {
	if cfg.Models.RegistryFile != "" {
		return model.LoadFromFile(cfg.Models.RegistryFile)
	}
	return model.NewDefaultRegistry(), nil
}
