package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "ikhaya/docs" // swagger spec, regenerated by swag init
	"ikhaya/internal/adapter/http/handlers"
	"ikhaya/internal/adapter/http/middleware"
	"ikhaya/internal/infrastructure/container"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	defaultPort     = "8080"
	shutdownTimeout = 10 * time.Second
)

// Run builds the dependency graph, serves the API and shuts down gracefully
// when ctx is cancelled.
func Run(ctx context.Context) error {
	auth, err := middleware.NewAuthenticator(os.Getenv("JWT_SECRET"))
	if err != nil {
		return err
	}

	c, err := container.Build(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	srv := &http.Server{
		Addr:              ":" + port(),
		Handler:           NewRouter(c, auth),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[api] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Printf("[api] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter mounts every route on a fresh engine.
func NewRouter(c *container.Container, auth *middleware.Authenticator) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Authenticated routes
	private := v1.Group("", auth.RequireAuth())
	addLeaseRoutes(private, handlers.NewLeaseHandler(c.Leases))
	addBillingRoutes(private, handlers.NewInvoiceHandler(c.Invoices), handlers.NewPaymentHandler(c.Payments))
	addNotificationRoutes(private, handlers.NewNotificationHandler(c.Notifications))

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func port() string {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		return v
	}
	return defaultPort
}
