package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"movie-catalog/internal/middleware"
	"movie-catalog/internal/model"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/session"
)

const storeTimeout = 5 * time.Second

// AuthHandler bundles dependencies for the registration/login/logout pages.
type AuthHandler struct {
	Users    repository.UserStore
	Sessions session.Store
}

func NewAuthHandler(users repository.UserStore, sessions session.Store) *AuthHandler {
	return &AuthHandler{Users: users, Sessions: sessions}
}

// ----- DTOs -----

type registrationForm struct {
	Username        string `form:"username" validate:"required"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirmPassword" validate:"required"`
}

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (h *AuthHandler) RegistrationForm(c echo.Context) error {
	return c.Render(http.StatusOK, "registration.html", echo.Map{})
}

// Register validates the password confirmation and creates the user. Any
// failure re-renders the form with a user-facing message; no user record is
// created unless both passwords match.
func (h *AuthHandler) Register(c echo.Context) error {
	var f registrationForm
	if err := c.Bind(&f); err != nil {
		return c.Render(http.StatusOK, "registration.html", echo.Map{"Error": "Error registering user"})
	}
	if err := validate.Struct(f); err != nil {
		return c.Render(http.StatusOK, "registration.html", echo.Map{"Error": "Error registering user"})
	}
	if f.Password != f.ConfirmPassword {
		return c.Render(http.StatusOK, "registration.html", echo.Map{"Error": "Passwords do not match"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	if _, err := h.Users.Create(ctx, f.Username, f.Password); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			log.Info().Str("username", f.Username).Msg("registration: username already exists")
		} else {
			log.Error().Err(err).Msg("create user failed")
		}
		return c.Render(http.StatusOK, "registration.html", echo.Map{"Error": "Error registering user"})
	}
	return c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{})
}

// Login matches the submitted credentials against the store and, on success,
// starts a session and sets the cookie. The session payload is a snapshot of
// the user at login time.
func (h *AuthHandler) Login(c echo.Context) error {
	var f loginForm
	if err := c.Bind(&f); err != nil {
		return c.Render(http.StatusOK, "login.html", echo.Map{"Error": "Invalid username or password"})
	}
	if err := validate.Struct(f); err != nil {
		return c.Render(http.StatusOK, "login.html", echo.Map{"Error": "Invalid username or password"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	u, err := h.Users.FindByCredentials(ctx, f.Username, f.Password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Render(http.StatusOK, "login.html", echo.Map{"Error": "Invalid username or password"})
		}
		log.Error().Err(err).Msg("credential lookup failed")
		return c.String(http.StatusInternalServerError, "Internal Server Error")
	}

	token, err := h.Sessions.Create(ctx, u)
	if err != nil {
		log.Error().Err(err).Msg("session create failed")
		return c.String(http.StatusInternalServerError, "Internal Server Error")
	}
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, "/movielist")
}

// Logout destroys the session unconditionally and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
		defer cancel()
		if err := h.Sessions.Destroy(ctx, cookie.Value); err != nil && !errors.Is(err, session.ErrNoSession) {
			log.Error().Err(err).Msg("session destroy failed")
			return c.String(http.StatusInternalServerError, "Error logging out")
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, "/login")
}

// pageUser exposes the session user to templates so pages can toggle
// login/logout affordances.
func pageUser(c echo.Context) *model.User {
	if u, ok := middleware.CurrentUser(c); ok {
		return &u
	}
	return nil
}
