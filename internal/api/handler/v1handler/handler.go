// Package v1handler implements the v1 HTTP API for the account service.
package v1handler

import (
	"github.com/gin-gonic/gin"

	"accounts/internal/account"
)

// Deps carries the dependencies the v1 handlers need to serve requests.
type Deps struct {
	Accounts account.Accounts
}

// Handler serves the v1 account endpoints.
type Handler struct {
	deps Deps
}

// New constructs a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Router builds the gin engine serving the v1 API. Routes carry their full
// path because the engine is mounted under /v1/ by the API server.
func Router(deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	h := New(deps)

	accounts := engine.Group("/v1/accounts")
	accounts.POST("/register", h.RegisterAccount)
	accounts.GET("", h.ListAccounts)
	accounts.GET("/:accountId", h.GetAccount)
	accounts.PUT("/:accountId", h.UpdateAccount)
	accounts.DELETE("/:accountId", h.DeleteAccount)

	return engine
}
