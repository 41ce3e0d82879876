package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/zhanrui-dev/devbus/api"
	"github.com/zhanrui-dev/devbus/config"
	"github.com/zhanrui-dev/devbus/internal/middleware"
	"github.com/zhanrui-dev/devbus/internal/service/account"
	"github.com/zhanrui-dev/devbus/internal/service/booking"
	"github.com/zhanrui-dev/devbus/internal/service/search"
	"github.com/zhanrui-dev/devbus/internal/service/selection"
	"github.com/zhanrui-dev/devbus/internal/token"
)

type Services struct {
	Search    search.SearchUseCase
	Selection selection.SelectionUseCase
	Booking   booking.BookingUseCase
	Account   account.AccountUseCase
	Tokens    *token.Manager
}

// Run starts the HTTP server and blocks until ctx is canceled or the server
// fails.
func Run(ctx context.Context, cfg *config.Config, svcs Services) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(cfg, svcs),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}

// NewRouter assembles the gin engine with CORS and all resource handlers.
func NewRouter(cfg *config.Config, svcs Services) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(cfg.HTTP.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := middleware.RequireAuth(svcs.Tokens)

	api.NewAuthHandler(svcs.Account, svcs.Tokens).Register(r.Group("/api/auth"))
	api.NewTripHandler(svcs.Search).Register(r.Group("/api/trips"))
	api.NewSelectionHandler(svcs.Selection).Register(r.Group("/api/selection", authed))
	api.NewBookingHandler(svcs.Booking, svcs.Account).Register(r.Group("/api/bookings", authed))

	return r
}
