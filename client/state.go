package client

// Mode selects which of the three screens the cli presents.
type Mode string

const (
	ModeRegister Mode = "register"
	ModeLogin    Mode = "login"
	ModeHome     Mode = "home"
)

type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RegisterForm struct {
	Name     string
	Email    string
	Password string
}

type LoginForm struct {
	Email    string
	Password string
}

// AppState holds every piece of ui state the flows act on. Transitions
// are pure - they return the next state & never touch collaborators -
// so each user action can be verified in isolation.
type AppState struct {
	Mode          Mode
	Authenticated bool
	Profile       *Profile
	Busy          bool
	RegisterForm  RegisterForm
	LoginForm     LoginForm
}

func NewAppState() AppState {
	return AppState{Mode: ModeRegister}
}

func (s AppState) WithBootstrapSucceeded(profile Profile) AppState {
	s.Authenticated = true
	s.Profile = &profile
	s.Mode = ModeHome
	return s
}

func (s AppState) WithBootstrapFailed() AppState {
	s.Authenticated = false
	s.Profile = nil
	s.Mode = ModeRegister
	return s
}

// WithRegisterSucceeded moves to the login screen with the email the
// user just registered with pre-filled.
func (s AppState) WithRegisterSucceeded() AppState {
	s.Mode = ModeLogin
	s.LoginForm.Email = s.RegisterForm.Email
	return s
}

func (s AppState) WithLoginSucceeded(profile Profile) AppState {
	s.Authenticated = true
	s.Profile = &profile
	s.Mode = ModeHome
	return s
}

func (s AppState) WithLoggedOut() AppState {
	s.Authenticated = false
	s.Profile = nil
	s.LoginForm = LoginForm{}
	s.Mode = ModeLogin
	return s
}

func (s AppState) WithBusy(busy bool) AppState {
	s.Busy = busy
	return s
}
