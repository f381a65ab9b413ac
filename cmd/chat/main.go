package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"coffee-assistant/config"
	"coffee-assistant/internal/bootstrap"
	"coffee-assistant/internal/chat/delivery/cli"
	"coffee-assistant/pkg/log"
)

func main() {
	sessionID := flag.String("session", "interactive_session", "session id shared by every line")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Logs go to stderr so they do not interleave with the conversation.
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		Output:       os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, err := bootstrap.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize components: ", err)
		return
	}
	defer components.Close()

	if err := cli.New(components.Chat, os.Stdin, os.Stdout, *sessionID).Run(ctx); err != nil {
		logger.Error(ctx, "REPL stopped: ", err)
	}
}
