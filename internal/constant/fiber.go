package constant

const (
	ContextKeyRequestID = "requestid"

	// AuthorizationRealm is the authorization realm (prefix of value
	// in the `Authorization` header) for mutating endpoints.
	AuthorizationRealm = "Bearer"
)
