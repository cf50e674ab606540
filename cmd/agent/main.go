package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chzyer/readline"
	"github.com/joho/godotenv"

	"github.com/hjerpe/coding-agent/internal/config"
	"github.com/hjerpe/coding-agent/internal/provider"
	"github.com/hjerpe/coding-agent/internal/runner"
	"github.com/hjerpe/coding-agent/internal/telemetry"
	"github.com/hjerpe/coding-agent/memory"
	"github.com/hjerpe/coding-agent/tools"
)

var (
	debugMode  = flag.Bool("d", false, "Enable debug logging")
	logFile    = flag.String("log-file", "", "Log file path (logs disabled by default)")
	configFile = flag.String("config", "agent.yaml", "Config file path")
)

func main() {
	flag.Parse()

	// .env is optional; the variable may already be exported.
	_ = godotenv.Load()

	logger, err := telemetry.Init(*debugMode, *logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	logger.Info().Msg("Agent starting")

	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		fmt.Println("Missing ANTHROPIC_API_KEY; export it or add it to .env before running.")
		os.Exit(1)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	client := provider.NewClient()
	r := runner.New(client, tools.Builtins(), runner.Options{
		Model:     anthropic.Model(cfg.Model),
		MaxTokens: cfg.MaxTokens,
		MaxRounds: cfg.MaxToolRounds,
		Timeouts:  cfg.Timeouts(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nGoodbye!")
		cancel()
	}()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\u001b[94mYou\u001b[0m: ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize readline")
	}
	defer rl.Close()

	fmt.Println("Chat with Claude (Ctrl-C to quit)")
	conv := memory.NewConversation()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			// EOF ends the session
			logger.Debug().Msg("Readline closed")
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		logger.Info().Int("input_len", len(line)).Msg("User input received")

		reply, err := r.RunTurn(ctx, conv, line)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Printf("\u001b[93mClaude\u001b[0m: %s\n", reply)
	}

	logger.Info().Msg("Agent stopped")
}
