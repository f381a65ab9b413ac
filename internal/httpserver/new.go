package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"coffee-assistant/config"
	"coffee-assistant/internal/calculator"
	"coffee-assistant/internal/chat"
	"coffee-assistant/internal/outlet"
	"coffee-assistant/internal/product"
	"coffee-assistant/pkg/log"
)

const (
	readTimeout     = 15 * time.Second
	writeTimeout    = 60 * time.Second
	shutdownTimeout = 30 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   config.RateLimitConfig

	// Domains
	chatUC       chat.UseCase
	calculatorUC calculator.UseCase
	outletUC     outlet.UseCase
	productUC    product.UseCase
}

// Config is the dependency bag passed to New(). ProductUseCase is optional;
// the others are required.
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   config.RateLimitConfig

	ChatUseCase       chat.UseCase
	CalculatorUseCase calculator.UseCase
	OutletUseCase     outlet.UseCase
	ProductUseCase    product.UseCase
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		rateLimit:    cfg.RateLimit,
		chatUC:       cfg.ChatUseCase,
		calculatorUC: cfg.CalculatorUseCase,
		outletUC:     cfg.OutletUseCase,
		productUC:    cfg.ProductUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	if srv.calculatorUC == nil {
		return errors.New("calculator usecase is required")
	}
	if srv.outletUC == nil {
		return errors.New("outlet usecase is required")
	}
	return nil
}
