package models

// Property is an arbitrary key-value attribute attached to an access token or
// authorization code at issue time. Hidden properties are kept server-side:
// they never appear in token responses sent to client applications but are
// still returned by introspection.
type Property struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Hidden bool   `json:"hidden"`
}
