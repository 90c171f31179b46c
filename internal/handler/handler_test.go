package handler_test

// Test fixture: the full route table wired against in-memory fakes of the
// store interfaces and the in-process session store, exercised over httptest.

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/v2/bson"

	"movie-catalog/internal/config"
	"movie-catalog/internal/handler"
	"movie-catalog/internal/model"
	"movie-catalog/internal/queue"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/router"
	"movie-catalog/internal/session"
	"movie-catalog/internal/view"
)

// ----- fakes -----

type fakeMovies struct {
	mu sync.Mutex
	m  map[string]model.Movie

	// per-operation error injection for exercising store-failure paths
	insertErr error
	allErr    error
	getErr    error
	updateErr error
	deleteErr error
}

func newFakeMovies() *fakeMovies { return &fakeMovies{m: make(map[string]model.Movie)} }

func (f *fakeMovies) Insert(_ context.Context, fields model.MovieFields, owner bson.ObjectID) (model.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return model.Movie{}, f.insertErr
	}
	mv := model.Movie{
		ID:       bson.NewObjectID(),
		Name:     fields.Name,
		Descript: fields.Descript,
		Year:     fields.Year,
		Genres:   fields.Genres,
		Rating:   fields.Rating,
		PostedBy: owner,
	}
	f.m[mv.ID.Hex()] = mv
	return mv, nil
}

func (f *fakeMovies) All(context.Context) ([]model.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.allErr != nil {
		return nil, f.allErr
	}
	out := make([]model.Movie, 0, len(f.m))
	for _, mv := range f.m {
		out = append(out, mv)
	}
	return out, nil
}

func (f *fakeMovies) GetByID(_ context.Context, id string) (model.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return model.Movie{}, f.getErr
	}
	mv, ok := f.m[id]
	if !ok {
		return model.Movie{}, repository.ErrNotFound
	}
	return mv, nil
}

func (f *fakeMovies) UpdateByID(_ context.Context, id string, fields model.MovieFields) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	mv, ok := f.m[id]
	if !ok {
		return repository.ErrNotFound
	}
	mv.Name, mv.Descript, mv.Year, mv.Genres, mv.Rating =
		fields.Name, fields.Descript, fields.Year, fields.Genres, fields.Rating
	f.m[id] = mv
	return nil
}

func (f *fakeMovies) DeleteByID(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.m[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.m, id)
	return nil
}

type fakeUsers struct {
	mu sync.Mutex
	m  map[string]model.User // keyed by username

	createErr error
	findErr   error
}

func newFakeUsers() *fakeUsers { return &fakeUsers{m: make(map[string]model.User)} }

func (f *fakeUsers) Create(_ context.Context, username, password string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return model.User{}, f.createErr
	}
	if _, ok := f.m[username]; ok {
		return model.User{}, repository.ErrDuplicateUsername
	}
	u := model.User{ID: bson.NewObjectID(), UserName: username, Password: password}
	f.m[username] = u
	return u, nil
}

func (f *fakeUsers) FindByCredentials(_ context.Context, username, password string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return model.User{}, f.findErr
	}
	u, ok := f.m[username]
	if !ok || u.Password != password {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

type eventRecorder struct {
	mu     sync.Mutex
	events []queue.MovieEvent
}

func (r *eventRecorder) Publish(_ context.Context, ev queue.MovieEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *eventRecorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Action
	}
	return out
}

// failingSessions errors on every mutation; Get behaves as anonymous.
type failingSessions struct{ err error }

func (f failingSessions) Create(context.Context, model.User) (string, error) {
	return "", f.err
}
func (f failingSessions) Get(context.Context, string) (model.User, error) {
	return model.User{}, session.ErrNoSession
}
func (f failingSessions) Destroy(context.Context, string) error { return f.err }

// ----- fixture -----

type testApp struct {
	e        *echo.Echo
	movies   *fakeMovies
	users    *fakeUsers
	sessions *session.MemoryStore
	events   *eventRecorder
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	app := &testApp{
		movies:   newFakeMovies(),
		users:    newFakeUsers(),
		sessions: session.NewMemoryStore(time.Minute),
		events:   &eventRecorder{},
	}
	e := echo.New()
	e.Renderer = view.New()
	a := handler.NewAuthHandler(app.users, app.sessions)
	m := handler.NewMovieHandler(app.movies, app.events)
	router.RegisterRoutes(e, a, m, app.sessions, app.movies,
		config.LoginRateLimit{Enabled: false}, nil)
	app.e = e
	return app
}

// postForm submits a form-encoded POST, optionally carrying a session cookie.
func (a *testApp) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

// register creates a user directly in the fake store.
func (a *testApp) register(t *testing.T, username, password string) model.User {
	t.Helper()
	u, err := a.users.Create(context.Background(), username, password)
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return u
}

// login performs POST /login and returns the session cookie.
func (a *testApp) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	rec := a.postForm("/login", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	if rec.Code != http.StatusFound {
		t.Fatalf("login %s: expected redirect, got %d: %s", username, rec.Code, rec.Body.String())
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			return c
		}
	}
	t.Fatalf("login %s: no session cookie set", username)
	return nil
}

func movieForm(name, descript, year, genres, rating string) url.Values {
	return url.Values{
		"movieName":     {name},
		"movieDescript": {descript},
		"year":          {year},
		"genres":        {genres},
		"rating":        {rating},
	}
}

func sampleFields(name string, year int) model.MovieFields {
	return model.MovieFields{
		Name:     name,
		Descript: "desc",
		Year:     year,
		Genres:   "Crime",
		Rating:   8.0,
	}
}

func redirectedTo(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != want {
		t.Fatalf("expected redirect to %s, got %s", want, loc)
	}
}
