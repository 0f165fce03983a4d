package ports

type AuthClaims struct {
	UserID string
	Email  string
	Role   string
	Valid  bool
}

// TokenVerifier validates bearer tokens issued by the external auth
// collaborator. Verification only; this service never mints sessions.
type TokenVerifier interface {
	ParseAndValidate(raw string) (AuthClaims, error)
}
