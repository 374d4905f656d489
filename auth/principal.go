package auth

// Principal is the authenticated actor behind a request, already resolved by
// the middleware. Exactly one of UserID/CustomerID is set for non-admin
// callers; Admin is loaded from the user row, not the token, so a demotion
// takes effect immediately.
type Principal struct {
	UserID     uint
	CustomerID uint
	Admin      bool
}

func (p Principal) IsAdmin() bool { return p.Admin }
