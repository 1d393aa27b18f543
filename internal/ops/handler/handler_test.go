package handler

import (
	"testing"
	"time"

	"github.com/bitfantasy/ostrich-ops/internal/config"
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
	"github.com/bitfantasy/ostrich-ops/internal/ops/service"
	"github.com/bitfantasy/ostrich-ops/internal/ops/testutil"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// setupOpsTest wires the full stack against an isolated test schema and
// registers the API routes the handler tests exercise.
func setupOpsTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:            testutil.JWTSecret,
			AccessTokenExpire: time.Hour,
			Issuer:            "ostrich-ops",
		},
		Auth: config.AuthConfig{
			MaxAttempts:   5,
			AttemptWindow: 15 * time.Minute,
		},
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil, cfg)
	h := NewHandlers(services, cfg)

	router := testutil.SetupRouter()
	router.POST("/api/v1/auth/login", h.Auth.Login)

	api := testutil.AuthGroup(router, "/api/v1")
	api.GET("/auth/me", h.Auth.Me)

	customers := api.Group("/customers")
	customers.GET("", h.Customer.List)
	customers.POST("", h.Customer.Create)
	customers.GET("/:id", h.Customer.Get)
	customers.PUT("/:id", h.Customer.Update)
	customers.DELETE("/:id", h.Customer.Delete)

	categories := api.Group("/categories")
	categories.GET("", h.Category.List)
	categories.POST("", h.Category.Create)
	categories.PUT("/:id", h.Category.Update)
	categories.DELETE("/:id", h.Category.Delete)

	products := api.Group("/products")
	products.GET("", h.Product.List)
	products.POST("", h.Product.Create)
	products.GET("/:id", h.Product.Get)
	products.PUT("/:id", h.Product.Update)
	products.DELETE("/:id", h.Product.Delete)

	sales := api.Group("/sales")
	sales.GET("", h.Sale.List)
	sales.POST("", h.Sale.Create)
	sales.GET("/:id", h.Sale.Get)
	sales.PUT("/:id", h.Sale.Update)
	sales.DELETE("/:id", h.Sale.Delete)

	dispatch := api.Group("/dispatch")
	dispatch.GET("", h.Dispatch.List)
	dispatch.POST("", h.Dispatch.Create)
	dispatch.PUT("/:id", h.Dispatch.Update)
	dispatch.DELETE("/:id", h.Dispatch.Delete)

	tickets := api.Group("/service-tickets")
	tickets.GET("", h.Ticket.List)
	tickets.POST("", h.Ticket.Create)
	tickets.POST("/import", h.Ticket.Import)
	tickets.GET("/template", h.Ticket.Template)
	tickets.PUT("/:id", h.Ticket.Update)

	return router, db
}
