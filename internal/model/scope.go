package model

// Scope identifies the trusted caller an internal request runs on behalf of.
type Scope struct {
	CallerID string
}
