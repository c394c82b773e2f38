package store

// AccessToken is a bearer credential for the HTTP API. Only the bcrypt hash
// is stored; lookup is by token prefix, verification by hash comparison.
type AccessToken struct {
	ID          int64
	UserID      string
	Description string
	// TokenPrefix is the leading characters of the token, used for lookup.
	TokenPrefix string
	// TokenHash is the bcrypt hash of the full token.
	TokenHash string
	CreatedTs int64
}

// FindAccessToken specifies the conditions for finding access tokens.
type FindAccessToken struct {
	ID          *int64
	UserID      *string
	TokenPrefix *string
}

// DeleteAccessToken specifies the conditions for deleting access tokens.
type DeleteAccessToken struct {
	ID     *int64
	UserID *string
}
