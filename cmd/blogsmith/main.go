// Command blogsmith generates a complete blog post from a single JSON
// request on argv: a four-stage generation pipeline with a quality-gated
// revision loop, or a one-call preview in test mode. The result JSON goes
// to stdout; everything else goes to stderr.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"blogsmith/pkg/assemble"
	"blogsmith/pkg/brief"
	"blogsmith/pkg/gen"
	"blogsmith/pkg/logx"
	"blogsmith/pkg/pipeline"
	"blogsmith/pkg/preview"
	"blogsmith/pkg/runlog"
	"blogsmith/pkg/score"
)

// Version information - set by goreleaser via ldflags.
var (
	version = "dev"
	commit  = "none"
)

// input is the request object passed as the single CLI argument.
type input struct {
	Prompt         string                  `json:"prompt"`
	Title          string                  `json:"title"`
	Locale         string                  `json:"locale"`
	Tags           []string                `json:"tags"`
	AIAgents       *pipeline.Agents        `json:"aiAgents"`
	APIKeys        map[string]string       `json:"apiKeys"`
	Layout         *layoutSpec             `json:"layout"`
	TestMode       bool                    `json:"testMode"`
	WritingSamples []preview.WritingSample `json:"writingSamples"`
}

type layoutSpec struct {
	Instruction string `json:"instruction"`
}

type errorResult struct {
	Error string `json:"error"`
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("blogsmith %s (%s)\n", version, commit)
		os.Exit(0)
	}

	in, errResult := parseArgs(os.Args[1:])
	if errResult != nil {
		emit(*errResult)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, in); err != nil {
		emit(errorResult{Error: fmt.Sprintf("Generation failed: %v", err)})
		os.Exit(1)
	}
}

// parseArgs decodes and validates the single JSON argument. A non-nil
// errorResult means the request must be rejected before any client is built
// or any generation call is attempted.
func parseArgs(args []string) (input, *errorResult) {
	if len(args) < 1 {
		return input{}, &errorResult{Error: "No input provided."}
	}

	var in input
	if err := json.Unmarshal([]byte(args[0]), &in); err != nil {
		return input{}, &errorResult{Error: fmt.Sprintf("Invalid JSON input: %v", err)}
	}

	if in.Prompt == "" {
		return input{}, &errorResult{Error: "Prompt is required"}
	}
	if len(in.APIKeys) == 0 {
		return input{}, &errorResult{Error: "API keys are required. Please add your AI API keys in settings."}
	}
	return in, nil
}

func run(ctx context.Context, in input) error {
	logger := logx.NewLogger("main")

	scoreCfg, err := score.ConfigFromEnv()
	if err != nil {
		logger.Warn("score config override ignored: %v", err)
	}

	locale := brief.Locale(in.Locale)
	if locale == "" {
		locale = brief.LocaleKorean
	}

	agents := pipeline.DefaultAgents()
	if in.AIAgents != nil {
		agents = *in.AIAgents
	}

	var layoutInstruction string
	if in.Layout != nil {
		layoutInstruction = in.Layout.Instruction
	}

	port := gen.NewRegistry(gen.Config{Keys: in.APIKeys, Metrics: prometheus.NewRegistry()})

	if in.TestMode {
		p := preview.New(port, agents.Writer, scoreCfg)
		return emit(p.Generate(ctx, in.Prompt, locale, in.WritingSamples, layoutInstruction))
	}

	events, err := runlog.FromEnv()
	if err != nil {
		logger.Warn("run log disabled: %v", err)
	}
	defer func() { _ = events.Close() }()

	req := brief.Parse(in.Prompt, in.Title, in.Tags, locale)

	cfg := pipeline.Config{Port: port, Agents: agents, ScoreConfig: scoreCfg}
	if events != nil {
		cfg.Events = events
	}

	result, err := pipeline.New(cfg).Run(ctx, req, layoutInstruction)
	if err != nil {
		return err
	}

	final := assemble.New(scoreCfg).Assemble(req, agents, in.Tags, result)
	return emit(final)
}

// emit writes one JSON object to stdout. Korean text stays readable: no
// HTML escaping, no ASCII transliteration.
func emit(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
