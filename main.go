package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mindling-ai/mindling/core/agent"
	"github.com/mindling-ai/mindling/core/state"
	"github.com/mindling-ai/mindling/pkg/config"
	"github.com/mindling-ai/mindling/pkg/llm"
	"github.com/mindling-ai/mindling/pkg/xlog"
	"github.com/mindling-ai/mindling/services/responder"
	"github.com/mindling-ai/mindling/services/safety"
	"github.com/mindling-ai/mindling/services/websearch"
	"github.com/mindling-ai/mindling/webui"
)

const idleAfter = 10 * time.Minute

func main() {
	cfg, err := config.New()
	if err != nil {
		xlog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	factory := agentFactory(cfg)

	if cfg.ListenAddr != "" {
		serve(cfg, factory)
		return
	}
	repl(factory)
}

func agentFactory(cfg *config.Config) func() (*agent.Agent, error) {
	return func() (*agent.Agent, error) {
		ctx := context.Background()
		search := websearch.New(cfg.SearchResults)

		opts := []agent.Option{
			agent.WithContext(ctx),
			agent.WithSafetyGate(safety.NewGate(safety.ParseMode(cfg.SafetyMode))),
			agent.WithSearch(search),
			agent.WithResponder(responder.New(ctx, search)),
		}

		if cfg.ModelConfigured() {
			client := llm.NewClient(cfg.LLMAPIKey, cfg.LLMAPIURL, cfg.LLMTimeout)
			opts = append(opts, agent.WithModel(llm.NewModel(client, cfg.Model)))
			xlog.Info("Model capability enabled", "model", cfg.Model)
		} else {
			xlog.Info("No model configured, using rule-based answers only")
		}

		return agent.New(opts...)
	}
}

func serve(cfg *config.Config, factory func() (*agent.Agent, error)) {
	pool := state.NewConversationPool(factory)
	if cfg.IdleTickCron != "" {
		if err := pool.StartIdleTicker(cfg.IdleTickCron, idleAfter); err != nil {
			xlog.Error("Failed to start idle ticker", "error", err)
			os.Exit(1)
		}
	}
	defer pool.Stop()

	app := webui.NewApp(pool)
	xlog.Info("Listening", "addr", cfg.ListenAddr)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		xlog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func repl(factory func() (*agent.Agent, error)) {
	a, err := factory()
	if err != nil {
		xlog.Error("Failed to build agent", "error", err)
		os.Exit(1)
	}

	fmt.Println("mindling is listening. /status for state, /reset to start over, ctrl-d to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fmt.Println(a.RunTurn(line))
	}
}
