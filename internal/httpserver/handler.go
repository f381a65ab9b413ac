package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	calculatorHTTP "coffee-assistant/internal/calculator/delivery/http"
	chatHTTP "coffee-assistant/internal/chat/delivery/http"
	"coffee-assistant/internal/middleware"
	"coffee-assistant/internal/model"
	outletHTTP "coffee-assistant/internal/outlet/delivery/http"
	productHTTP "coffee-assistant/internal/product/delivery/http"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if !model.IsProduction(srv.environment) {
		srv.gin.Use(gin.Logger())
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.rootCheck)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires each domain's handler the same way:
// build the handler from its usecase, then let the package map its routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.rateLimit)

	// Tool endpoints
	calculatorHTTP.RegisterRoutes(srv.gin, calculatorHTTP.New(srv.l, srv.calculatorUC))
	outletHTTP.RegisterRoutes(srv.gin, outletHTTP.New(srv.l, srv.outletUC))
	if srv.productUC != nil {
		productHTTP.RegisterRoutes(srv.gin, productHTTP.New(srv.l, srv.productUC))
	} else {
		srv.l.Infof(ctx, "Product usecase not configured, skipping POST /products")
	}

	// Chat
	api := srv.gin.Group("/api/v1")
	chatHTTP.RegisterRoutes(api, chatHTTP.New(srv.l, srv.chatUC), mw)

	srv.l.Infof(ctx, "Routes registered (rate limit enabled: %v)", srv.rateLimit.Enabled)
}
