package api

import (
	"html/template"

	"github.com/mtareb/medichat/internal/services"
	"github.com/mtareb/medichat/internal/upstream"
)

// Handler holds the dependencies shared by every route: the upstream
// service client, the per-session transcript store, the profile save gate,
// and the parsed page templates.
type Handler struct {
	upstream     *upstream.Client
	transcripts  *services.TranscriptStore
	profileSaves *inflightGate
	cookieSecure bool
	templates    map[string]*template.Template
}

type credentialsInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type chatInput struct {
	Message string `json:"message" form:"message"`
}

// NewHandler parses the page templates and wires the handler's state.
func NewHandler(client *upstream.Client, templateDir string, cookieSecure bool) (*Handler, error) {
	templates, err := parsePageTemplates(templateDir, newTemplateFuncMap(), pageTemplates)
	if err != nil {
		return nil, err
	}

	return &Handler{
		upstream:     client,
		transcripts:  services.NewTranscriptStore(),
		profileSaves: newInflightGate(),
		cookieSecure: cookieSecure,
		templates:    templates,
	}, nil
}
