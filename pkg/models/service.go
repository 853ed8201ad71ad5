package models

// Service describes an authorization server configuration held by the remote
// service. Like Client, the real record is much larger; handlers read only a
// handful of fields.
type Service struct {
	Number                 int64    `json:"number,omitempty"`
	ServiceOwnerNumber     int64    `json:"serviceOwnerNumber,omitempty"`
	ServiceName            string   `json:"serviceName,omitempty"`
	APIKey                 int64    `json:"apiKey,omitempty"`
	APISecret              string   `json:"apiSecret,omitempty"`
	Issuer                 string   `json:"issuer,omitempty"`
	AuthorizationEndpoint  string   `json:"authorizationEndpoint,omitempty"`
	TokenEndpoint          string   `json:"tokenEndpoint,omitempty"`
	UserInfoEndpoint       string   `json:"userInfoEndpoint,omitempty"`
	RevocationEndpoint     string   `json:"revocationEndpoint,omitempty"`
	IntrospectionEndpoint  string   `json:"introspectionEndpoint,omitempty"`
	JwksURI                string   `json:"jwksUri,omitempty"`
	SupportedScopes        []string `json:"supportedScopes,omitempty"`
	SupportedGrantTypes    []string `json:"supportedGrantTypes,omitempty"`
	SupportedResponseTypes []string `json:"supportedResponseTypes,omitempty"`
	SupportedAcrs          []string `json:"supportedAcrs,omitempty"`
	SupportedClaimLocales  []string `json:"supportedClaimLocales,omitempty"`
	SupportedClaims        []string `json:"supportedClaims,omitempty"`
	AccessTokenDuration    int64    `json:"accessTokenDuration,omitempty"`
	RefreshTokenDuration   int64    `json:"refreshTokenDuration,omitempty"`
	CreatedAt              int64    `json:"createdAt,omitempty"`
	ModifiedAt             int64    `json:"modifiedAt,omitempty"`
}
