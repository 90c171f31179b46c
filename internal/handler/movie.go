package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"movie-catalog/internal/middleware"
	"movie-catalog/internal/model"
	"movie-catalog/internal/queue"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/service"
)

var validate = validator.New()

// MovieHandler bundles dependencies for the movie CRUD pages.
type MovieHandler struct {
	Movies repository.MovieStore
	Events service.EventPublisher
}

func NewMovieHandler(movies repository.MovieStore, events service.EventPublisher) *MovieHandler {
	return &MovieHandler{Movies: movies, Events: events}
}

// ----- DTO -----

// movieForm is the raw form payload. Year and rating arrive as strings and
// are converted at the parse step so a malformed value is a validation
// failure before the store is touched.
type movieForm struct {
	Name     string `form:"movieName" validate:"required"`
	Descript string `form:"movieDescript" validate:"required"`
	Year     string `form:"year" validate:"required"`
	Genres   string `form:"genres" validate:"required"`
	Rating   string `form:"rating" validate:"required"`
}

func (f movieForm) parse() (model.MovieFields, error) {
	if err := validate.Struct(f); err != nil {
		return model.MovieFields{}, err
	}
	year, err := strconv.Atoi(strings.TrimSpace(f.Year))
	if err != nil || year < 0 {
		return model.MovieFields{}, fmt.Errorf("invalid year %q", f.Year)
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(f.Rating), 64)
	if err != nil || rating < 0 {
		return model.MovieFields{}, fmt.Errorf("invalid rating %q", f.Rating)
	}
	return model.MovieFields{
		Name:     f.Name,
		Descript: f.Descript,
		Year:     year,
		Genres:   f.Genres,
		Rating:   rating,
	}, nil
}

// List renders every movie. This page is public; ownership only affects
// which rows show edit/delete controls.
func (h *MovieHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	movies, err := h.Movies.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("list movies failed")
		return c.String(http.StatusInternalServerError, "Internal Server Error")
	}
	return c.Render(http.StatusOK, "movielist.html", echo.Map{
		"Movies": movies,
		"User":   pageUser(c),
	})
}

func (h *MovieHandler) InsertForm(c echo.Context) error {
	return c.Render(http.StatusOK, "insert.html", echo.Map{"User": pageUser(c)})
}

// Insert creates a movie owned by the session user. Validation and store
// failures send the user back to the form, matching the original flow.
func (h *MovieHandler) Insert(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	var f movieForm
	if err := c.Bind(&f); err != nil {
		log.Info().Err(err).Msg("insert: bad form")
		return c.Redirect(http.StatusFound, "/insert")
	}
	fields, err := f.parse()
	if err != nil {
		log.Info().Err(err).Msg("insert: invalid form")
		return c.Redirect(http.StatusFound, "/insert")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	m, err := h.Movies.Insert(ctx, fields, u.ID)
	if err != nil {
		log.Error().Err(err).Msg("insert movie failed")
		return c.Redirect(http.StatusFound, "/insert")
	}
	h.publish(c, queue.MovieCreated, m)
	return c.Redirect(http.StatusFound, "/movielist")
}

// UpdateForm renders the edit form pre-filled with the movie fetched by the
// ownership guard.
func (h *MovieHandler) UpdateForm(c echo.Context) error {
	m, ok := c.Get(middleware.MovieKey).(model.Movie)
	if !ok {
		// Guard not in front of this handler; fetch directly.
		ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
		defer cancel()
		var err error
		m, err = h.Movies.GetByID(ctx, c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			return c.Redirect(http.StatusFound, "/movielist")
		}
		if err != nil {
			log.Error().Err(err).Msg("fetch movie failed")
			return c.String(http.StatusInternalServerError, "Error fetching movie data")
		}
	}
	return c.Render(http.StatusOK, "update.html", echo.Map{
		"Movie": m,
		"User":  pageUser(c),
	})
}

// Update replaces the mutable movie fields. The owner is immutable; it never
// appears in the update payload.
func (h *MovieHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var f movieForm
	if err := c.Bind(&f); err != nil {
		return c.String(http.StatusBadRequest, "invalid movie form")
	}
	fields, err := f.parse()
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid movie form")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	if err := h.Movies.UpdateByID(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.String(http.StatusNotFound, "Movie not found")
		}
		log.Error().Err(err).Str("id", id).Msg("update movie failed")
		return c.String(http.StatusInternalServerError, err.Error())
	}

	if m, ok := c.Get(middleware.MovieKey).(model.Movie); ok {
		m.Name, m.Descript, m.Year, m.Genres, m.Rating =
			fields.Name, fields.Descript, fields.Year, fields.Genres, fields.Rating
		h.publish(c, queue.MovieUpdated, m)
	}
	return c.Redirect(http.StatusFound, "/movielist")
}

// Delete removes the movie and redirects to the list regardless of outcome.
// Deleting an id that is already gone is a no-op redirect, not an error.
func (h *MovieHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	err := h.Movies.DeleteByID(ctx, id)
	switch {
	case err == nil:
		if m, ok := c.Get(middleware.MovieKey).(model.Movie); ok {
			h.publish(c, queue.MovieDeleted, m)
		}
	case errors.Is(err, repository.ErrNotFound):
		// already gone
	default:
		log.Error().Err(err).Str("id", id).Msg("delete movie failed")
	}
	return c.Redirect(http.StatusFound, "/movielist")
}

func (h *MovieHandler) publish(c echo.Context, action string, m model.Movie) {
	if h.Events == nil {
		return
	}
	ev := queue.MovieEvent{
		Action:     action,
		MovieID:    m.ID.Hex(),
		MovieName:  m.Name,
		Year:       m.Year,
		Rating:     m.Rating,
		UserID:     m.PostedBy.Hex(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := h.Events.Publish(c.Request().Context(), ev); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("movie event publish failed")
	}
}
