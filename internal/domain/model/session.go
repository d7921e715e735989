package model

// Session is the state recorded in the session store on local login, keyed by
// an opaque token carried in the session cookie.
type Session struct {
	Token    string `json:"-"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Identity is the state recorded by the Google OAuth callback, keyed by an
// opaque token carried in the identity cookie.
type Identity struct {
	Token    string `json:"-"`
	Provider string `json:"provider"`
	Subject  string `json:"subject"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}
