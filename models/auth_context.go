package models

// AuthContext is the per-request authentication result produced by the
// session resolver. It is either anonymous or carries exactly one principal,
// and it is never modified after construction.
type AuthContext struct {
	principal *User
}

// Anonymous returns an AuthContext without a principal.
func Anonymous() AuthContext {
	return AuthContext{}
}

// Authenticated returns an AuthContext bound to user.
func Authenticated(user User) AuthContext {
	return AuthContext{principal: &user}
}

// Principal returns the resolved user and true, or a zero User and false for
// an anonymous context.
func (a AuthContext) Principal() (User, bool) {
	if a.principal == nil {
		return User{}, false
	}
	return *a.principal, true
}

// IsAuthenticated reports whether a principal was resolved.
func (a AuthContext) IsAuthenticated() bool {
	return a.principal != nil
}
