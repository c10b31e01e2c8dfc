package models

// Principal is whoever is behind the current request: an Account or nobody.
type Principal interface {
	IsAdministrator() bool
	IsAuthenticated() bool
}

// AnonymousPrincipal stands in when no session is present.
type AnonymousPrincipal struct{}

// IsAdministrator is always false for an anonymous visitor.
func (AnonymousPrincipal) IsAdministrator() bool { return false }

// IsAuthenticated is always false for an anonymous visitor.
func (AnonymousPrincipal) IsAuthenticated() bool { return false }

var (
	_ Principal = (*Account)(nil)
	_ Principal = AnonymousPrincipal{}
)
