package http

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"task-portal/pkg/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Handler is the public interface for the login notice HTTP delivery layer.
type Handler interface {
	LoginPage(c *gin.Context)
	Notice(c *gin.Context)
}

type handler struct {
	l           log.Logger
	tmpl        *template.Template
	loginAction string
}

// DefaultLoginAction is where the login form posts when no identity flow URL
// is configured.
const DefaultLoginAction = "/auth/login"

// New creates a new HTTP handler. loginAction is the form target of the
// login page, the entry point of the identity flow.
func New(l log.Logger, loginAction string) Handler {
	if loginAction == "" {
		loginAction = DefaultLoginAction
	}
	return &handler{
		l:           l,
		tmpl:        template.Must(template.ParseFS(templatesFS, "templates/*.html")),
		loginAction: loginAction,
	}
}
