package client

import (
	"safetravelbuddy/server/logger"

	"github.com/pkg/errors"
)

var logg = logger.NewLogger()

// User-facing notices. Everything else is detail for the diagnostic log.
var (
	ErrMissingRegisterFields = errors.New("please fill all register fields")
	ErrMissingLoginFields    = errors.New("please fill both email and password")
	ErrRegisterFailed        = errors.New("register failed, please try again")
	ErrLoginFailed           = errors.New("login failed, please try again")
	ErrNoSession             = errors.New("please login first so we know who you are")
)

// App drives the auth & session flows and owns the current AppState.
type App struct {
	State AppState

	api      *Client
	sessions *SessionStore
}

func NewApp(api *Client, sessions *SessionStore) *App {
	return &App{
		State:    NewAppState(),
		api:      api,
		sessions: sessions,
	}
}

// Bootstrap silently restores a prior session: a persisted token is
// validated against the identity endpoint, once, on startup. Any
// failure discards the token & lands on the register screen.
func (app *App) Bootstrap() error {
	token, err := app.sessions.Load()
	if err != nil || token == "" {
		app.State = app.State.WithBootstrapFailed()
		return err
	}

	profile, err := app.api.Me(token)
	if err != nil {
		logg.Debugf("bootstrap: discarding session: %v", err)
		app.sessions.Clear()
		app.State = app.State.WithBootstrapFailed()
		return nil
	}

	app.State = app.State.WithBootstrapSucceeded(*profile)
	return nil
}

// Register creates an account. Empty fields fail fast - no network call
// is made.
func (app *App) Register(name, email, password string) error {
	app.State.RegisterForm = RegisterForm{Name: name, Email: email, Password: password}

	if name == "" || email == "" || password == "" {
		return ErrMissingRegisterFields
	}

	if err := app.api.Register(name, email, password); err != nil {
		logg.Debugf("register: %v", err)
		return ErrRegisterFailed
	}

	app.State = app.State.WithRegisterSucceeded()
	return nil
}

// Login signs in, persists the returned token & then fetches the
// profile with it. The token is saved before the profile call, so a
// crash mid-login still leaves a restorable session.
func (app *App) Login(email, password string) error {
	app.State.LoginForm = LoginForm{Email: email, Password: password}

	if email == "" || password == "" {
		return ErrMissingLoginFields
	}

	token, err := app.api.Login(email, password)
	if err != nil {
		logg.Debugf("login: %v", err)
		return ErrLoginFailed
	}

	if err := app.sessions.Save(token); err != nil {
		return err
	}

	profile, err := app.api.Me(token)
	if err != nil {
		logg.Debugf("login: %v", err)
		return ErrLoginFailed
	}

	app.State = app.State.WithLoginSucceeded(*profile)
	return nil
}

func (app *App) Logout() error {
	err := app.sessions.Clear()
	app.State = app.State.WithLoggedOut()
	return err
}

// Whoami returns the profile for the current session, if any.
func (app *App) Whoami() (*Profile, error) {
	token, err := app.sessions.Load()
	if err != nil || token == "" {
		return nil, ErrNoSession
	}

	return app.api.Me(token)
}

// StartJourney records the start of a trip with the server.
func (app *App) StartJourney() (*JourneyInfo, error) {
	token, err := app.sessions.Load()
	if err != nil || token == "" {
		return nil, ErrNoSession
	}

	return app.api.StartJourney(token)
}
