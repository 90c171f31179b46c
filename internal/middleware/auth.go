// Package middleware contains the request guards. Every guard either lets
// the request through or short-circuits with a redirect; authorization
// failures never reach the handlers.
package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"movie-catalog/internal/model"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/session"
)

// Context keys set by the guards.
const (
	UserKey  = "user"  // model.User snapshot of the logged-in user
	MovieKey = "movie" // model.Movie fetched by RequireOwner
)

// WithUser resolves the session cookie and stashes the user snapshot in the
// request context so every page can render login state. An unknown or
// expired token is treated as anonymous, never as an error.
func WithUser(sessions session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			u, err := sessions.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, session.ErrNoSession) {
					log.Warn().Err(err).Msg("session lookup failed")
				}
				return next(c)
			}
			c.Set(UserKey, u)
			return next(c)
		}
	}
}

// CurrentUser returns the session user placed in the context by WithUser.
func CurrentUser(c echo.Context) (model.User, bool) {
	u, ok := c.Get(UserKey).(model.User)
	return u, ok
}

// RequireLogin redirects anonymous requests to the login page.
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := CurrentUser(c); !ok {
			log.Info().Str("path", c.Request().URL.Path).Msg("access denied: not logged in")
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}

// RequireOwner loads the movie named by the :id param and lets the request
// through only when the session user created it. A missing movie, a store
// failure, or an ownership mismatch all redirect to the list page. The
// fetched movie is stored under MovieKey so handlers do not look it up again.
func RequireOwner(movies repository.MovieStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := CurrentUser(c)
			if !ok {
				log.Info().Msg("ownership check failed: not logged in")
				return c.Redirect(http.StatusFound, "/login")
			}
			id := c.Param("id")
			m, err := movies.GetByID(c.Request().Context(), id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					log.Info().Str("id", id).Msg("ownership check failed: movie not found")
				} else {
					log.Error().Err(err).Str("id", id).Msg("ownership check failed: store error")
				}
				return c.Redirect(http.StatusFound, "/movielist")
			}
			if m.PostedBy != u.ID {
				log.Info().Str("id", id).Str("user", u.ID.Hex()).Msg("ownership check failed: user is not the owner")
				return c.Redirect(http.StatusFound, "/movielist")
			}
			c.Set(MovieKey, m)
			return next(c)
		}
	}
}
