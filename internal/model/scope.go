package model

// Scope identifies the signed-in user a request acts on behalf of.
type Scope struct {
	UserID string
	Token  string // Bearer token forwarded to the notes backend
}
