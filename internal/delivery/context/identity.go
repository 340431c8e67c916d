package context

import "github.com/labstack/echo/v4"

// KeyIdentity is the key the auth middleware uses to store the verified
// session identity on the request.
const KeyIdentity ContextKey = "identity"

// Identity is the authenticated caller decoded from the session cookie.
type Identity struct {
	AccountID int64
	IsAdmin   bool
}

// SetIdentity stores the verified identity in echo.Context.
func SetIdentity(c echo.Context, identity Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity extracts the verified identity from echo.Context.
// The second return value is false on routes the auth middleware never ran on.
func GetIdentity(c echo.Context) (Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(Identity)

	return identity, ok
}
