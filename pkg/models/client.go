package models

// ClientType distinguishes confidential from public clients.
type ClientType string

const (
	ClientTypeConfidential ClientType = "CONFIDENTIAL"
	ClientTypePublic       ClientType = "PUBLIC"
)

// Client describes an OAuth client registered with the remote service. The
// full descriptor has many more optional fields; this SDK only reads a few
// and otherwise passes the record through untouched.
type Client struct {
	Number                         int64      `json:"number,omitempty"`
	ServiceNumber                  int64      `json:"serviceNumber,omitempty"`
	Developer                      string     `json:"developer,omitempty"`
	ClientID                       int64      `json:"clientId,omitempty"`
	ClientIDAlias                  string     `json:"clientIdAlias,omitempty"`
	ClientIDAliasEnabled           bool       `json:"clientIdAliasEnabled,omitempty"`
	ClientSecret                   string     `json:"clientSecret,omitempty"`
	ClientName                     string     `json:"clientName,omitempty"`
	ClientType                     ClientType `json:"clientType,omitempty"`
	Description                    string     `json:"description,omitempty"`
	LogoURI                        string     `json:"logoUri,omitempty"`
	ClientURI                      string     `json:"clientUri,omitempty"`
	PolicyURI                      string     `json:"policyUri,omitempty"`
	TosURI                         string     `json:"tosUri,omitempty"`
	RedirectURIs                   []string   `json:"redirectUris,omitempty"`
	GrantTypes                     []string   `json:"grantTypes,omitempty"`
	ResponseTypes                  []string   `json:"responseTypes,omitempty"`
	Contacts                       []string   `json:"contacts,omitempty"`
	CreatedAt                      int64      `json:"createdAt,omitempty"`
	ModifiedAt                     int64      `json:"modifiedAt,omitempty"`
	TLSClientCertBoundAccessTokens bool       `json:"tlsClientCertificateBoundAccessTokens,omitempty"`
}
