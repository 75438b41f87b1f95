package contextkeys

// Custom type so our keys can never collide with other packages.
type contextKey string

// PrincipalKey is the key under which the resolved authenticated user
// is stored in the request context by the auth middleware.
const PrincipalKey = contextKey("principal")

// String returns the key as a plain string for APIs (gin) that key by string.
func (k contextKey) String() string {
	return string(k)
}
