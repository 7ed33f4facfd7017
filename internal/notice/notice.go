// Package notice renders the login page advisory from the URL's error
// parameter. Render is the pure projection used by the HTTP handlers;
// Navigator and Banner keep a rendering in sync with URL changes for
// in-process hosts that navigate without a new request.
package notice

import "net/url"

const (
	// QueryParam is the login URL parameter the identity flow sets on rejection.
	QueryParam = "error"

	// ErrorInactive is the only value that produces a visible notice.
	ErrorInactive = "inactive"

	// InactiveMessage is shown to users whose account is pending approval or deactivated.
	InactiveMessage = "Seu acesso está pendente de aprovação ou foi desativado. Entre em contato com o administrador."
)

// Fragment is the rendered notice. The zero value renders nothing.
type Fragment struct {
	Visible bool
	Message string
}

// Render maps the current value of the error parameter to a fragment.
// The comparison is exact: case variants, empty strings and an absent
// parameter all render nothing.
func Render(errorParam *string) Fragment {
	if errorParam == nil || *errorParam != ErrorInactive {
		return Fragment{}
	}
	return Fragment{Visible: true, Message: InactiveMessage}
}

// ErrorParam reads the error parameter from a query. Absent parameters are nil.
// When the parameter repeats, the first value wins.
func ErrorParam(q url.Values) *string {
	vs, ok := q[QueryParam]
	if !ok || len(vs) == 0 {
		return nil
	}
	v := vs[0]
	return &v
}

// RenderQuery is Render over a parsed query string.
func RenderQuery(q url.Values) Fragment {
	return Render(ErrorParam(q))
}
