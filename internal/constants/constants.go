package constants

const (
	// HeaderAccessToken is the request header carrying the access token.
	HeaderAccessToken = "X-Access-Token"

	// ContextKeyUserEmail is the gin context key for the authenticated identity.
	ContextKeyUserEmail = "userEmail"

	// IdeasPerPage is the fixed page size for idea listings.
	IdeasPerPage = 10

	MinScore = 1
	MaxScore = 10
)
