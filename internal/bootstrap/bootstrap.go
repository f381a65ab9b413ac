// Package bootstrap builds the assistant's components from configuration.
// Both the HTTP API and the interactive REPL start from here.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"coffee-assistant/config"
	"coffee-assistant/internal/calculator"
	calculatorUC "coffee-assistant/internal/calculator/usecase"
	"coffee-assistant/internal/chat"
	chatUC "coffee-assistant/internal/chat/usecase"
	convRepo "coffee-assistant/internal/conversation/repository"
	memoryRepo "coffee-assistant/internal/conversation/repository/memory"
	redisRepo "coffee-assistant/internal/conversation/repository/redis"
	"coffee-assistant/internal/outlet"
	outletSQLite "coffee-assistant/internal/outlet/repository/sqlite"
	outletUC "coffee-assistant/internal/outlet/usecase"
	"coffee-assistant/internal/planner"
	"coffee-assistant/internal/product"
	productQdrant "coffee-assistant/internal/product/repository/qdrant"
	productUC "coffee-assistant/internal/product/usecase"
	pkgCalculator "coffee-assistant/pkg/calculator"
	"coffee-assistant/pkg/llmprovider"
	"coffee-assistant/pkg/log"
	pkgQdrant "coffee-assistant/pkg/qdrant"
	pkgRedis "coffee-assistant/pkg/redis"
	pkgSQLite "coffee-assistant/pkg/sqlite"
	"coffee-assistant/pkg/voyage"
)

// Components are the wired use cases. Product is nil when product search is
// not configured.
type Components struct {
	Chat       chat.UseCase
	Calculator calculator.UseCase
	Outlet     outlet.UseCase
	Product    product.UseCase

	closers []func() error
}

// Close releases the database and cache connections.
func (c *Components) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Build wires every component. Only the outlet database and, when selected,
// Redis are hard requirements; the LLM and product search degrade.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*Components, error) {
	c := &Components{}

	// 1. LLM (optional)
	llm := newLLM(ctx, cfg, l)

	// 2. Conversation store
	repo, err := newConversationRepo(ctx, cfg, l, c)
	if err != nil {
		c.Close()
		return nil, err
	}

	// 3. Calculator
	c.Calculator = newCalculator(ctx, cfg, l)

	// 4. Outlet directory
	db, err := pkgSQLite.Open(ctx, cfg.Outlet.DBPath, pkgSQLite.DefaultConfig())
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("bootstrap.Build: outlet db: %w", err)
	}
	c.closers = append(c.closers, db.Close)
	c.Outlet, err = newOutlet(ctx, cfg, l, db, llm)
	if err != nil {
		c.Close()
		return nil, err
	}

	// 5. Product search (optional)
	c.Product = newProduct(ctx, cfg, l, llm)

	// 6. Chat controller
	deps := chatUC.Deps{
		Planner:    planner.New(),
		Repo:       repo,
		Calculator: c.Calculator,
		Outlet:     c.Outlet,
	}
	if llm != nil {
		deps.LLM = llm
	}
	c.Chat = chatUC.New(l, deps, chatUC.Options{
		CarryOverSlots:    cfg.Planner.CarryOverSlots,
		CalculatorTimeout: cfg.Calculator.Timeout,
		OutletTimeout:     cfg.Outlet.Timeout,
	})

	return c, nil
}

func newLLM(ctx context.Context, cfg *config.Config, l log.Logger) *llmprovider.Manager {
	manager, err := llmprovider.NewManagerFromConfig(&cfg.LLM, l)
	if err != nil {
		l.Warnf(ctx, "LLM not available, general chat and text-to-SQL disabled: %v", err)
		return nil
	}
	l.Info(ctx, "LLM provider manager initialized")
	return manager
}

func newConversationRepo(ctx context.Context, cfg *config.Config, l log.Logger, c *Components) (convRepo.Repository, error) {
	if cfg.Conversation.Driver != "redis" {
		l.Infof(ctx, "Conversation store: memory (max sessions %d, ttl %s)", cfg.Conversation.MaxSessions, cfg.Conversation.TTL)
		return memoryRepo.New(memoryRepo.Options{
			MaxSessions: cfg.Conversation.MaxSessions,
			TTL:         cfg.Conversation.TTL,
		}), nil
	}

	client, err := pkgRedis.New(ctx, pkgRedis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap.Build: redis: %w", err)
	}
	c.closers = append(c.closers, client.Close)

	l.Infof(ctx, "Conversation store: redis at %s", cfg.Redis.Addr)
	return redisRepo.New(client, redisRepo.Options{
		KeyPrefix: cfg.Redis.KeyPrefix,
		TTL:       cfg.Conversation.TTL,
	}, l), nil
}

func newCalculator(ctx context.Context, cfg *config.Config, l log.Logger) calculator.UseCase {
	if cfg.Calculator.URL == "" {
		l.Info(ctx, "Calculator: in-process")
		return calculatorUC.New(l)
	}
	l.Infof(ctx, "Calculator: remote at %s", cfg.Calculator.URL)
	return calculatorUC.NewRemote(pkgCalculator.New(cfg.Calculator.URL, cfg.Calculator.Timeout), l)
}

func newOutlet(ctx context.Context, cfg *config.Config, l log.Logger, db *sql.DB, llm *llmprovider.Manager) (outlet.UseCase, error) {
	var text2sql outletUC.LLM
	if cfg.Outlet.Text2SQL && llm != nil {
		text2sql = llm
	}

	uc := outletUC.New(l, outletSQLite.New(db, l), text2sql)
	if err := uc.Seed(ctx); err != nil {
		return nil, fmt.Errorf("bootstrap.Build: seed outlets: %w", err)
	}
	return uc, nil
}

func newProduct(ctx context.Context, cfg *config.Config, l log.Logger, llm *llmprovider.Manager) product.UseCase {
	if cfg.Voyage.APIKey == "" || cfg.Qdrant.URL == "" {
		l.Warn(ctx, "Product search skipped: VOYAGE_API_KEY or QDRANT_URL is missing")
		return nil
	}

	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		l.Warnf(ctx, "Product search skipped: %v", err)
		return nil
	}
	embedder.WithModel(cfg.Voyage.Model)

	repo := productQdrant.New(pkgQdrant.NewClient(cfg.Qdrant.URL), embedder, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, l)

	var summarizer productUC.LLM
	if llm != nil {
		summarizer = llm
	}
	uc := productUC.New(l, repo, summarizer, cfg.Product.TopK)

	seedCtx := ctx
	if cfg.Product.Timeout > 0 {
		var cancel context.CancelFunc
		seedCtx, cancel = context.WithTimeout(ctx, cfg.Product.Timeout)
		defer cancel()
	}
	if err := uc.Seed(seedCtx); err != nil {
		// Search still works against an already indexed collection.
		l.Warnf(ctx, "Product catalogue seed failed: %v", err)
	}
	return uc
}
