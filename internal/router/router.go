// Package router wires handlers and guards onto the Echo instance.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"movie-catalog/internal/config"
	"movie-catalog/internal/handler"
	"movie-catalog/internal/middleware"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/session"
)

// RegisterRoutes registers the full HTTP surface. WithUser runs on every
// request so all pages can render login state; RequireLogin and RequireOwner
// guard the mutating movie routes. The credential POSTs carry the rate
// limiter; rdb may be nil, which disables it.
func RegisterRoutes(e *echo.Echo, a *handler.AuthHandler, m *handler.MovieHandler,
	sessions session.Store, movies repository.MovieStore,
	rl config.LoginRateLimit, rdb *redis.Client) {

	e.Use(middleware.WithUser(sessions))

	e.GET("/healthz", handler.Health)
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/movielist")
	})

	e.GET("/movielist", m.List)

	e.GET("/insert", m.InsertForm, middleware.RequireLogin)
	e.POST("/insert", m.Insert, middleware.RequireLogin)

	owner := middleware.RequireOwner(movies)
	e.GET("/update/:id", m.UpdateForm, middleware.RequireLogin, owner)
	e.POST("/update/:id", m.Update, middleware.RequireLogin, owner)
	e.POST("/delete/:id", m.Delete, middleware.RequireLogin, owner)

	limit := middleware.LoginRateLimit(rl, rdb)
	e.GET("/registration", a.RegistrationForm)
	e.POST("/registration", a.Register, limit)
	e.GET("/login", a.LoginForm)
	e.POST("/login", a.Login, limit)
	e.POST("/logout", a.Logout, middleware.RequireLogin)
}
