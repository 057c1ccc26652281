package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"proconnect/internal/domain"
	"proconnect/pkg/templates"
)

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ProfileExporter renders member profiles to HTML and, when a Renderer is
// configured, to PDF.
type ProfileExporter struct {
	store    EntityStore
	renderer Renderer
	tpl      *template.Template
	style    template.CSS
}

// NewProfileExporter accepts a nil renderer; ExportPDF then returns
// ErrNoRenderer.
func NewProfileExporter(store EntityStore, r Renderer) (*ProfileExporter, error) {
	tpl, err := templates.Profile()
	if err != nil {
		return nil, fmt.Errorf("parse profile template: %w", err)
	}
	style, err := templates.Style()
	if err != nil {
		return nil, fmt.Errorf("load profile style: %w", err)
	}
	return &ProfileExporter{store: store, renderer: r, tpl: tpl, style: style}, nil
}

func (p *ProfileExporter) RenderHTML(u domain.User) (string, error) {
	var buf bytes.Buffer
	data := map[string]interface{}{"User": u, "Style": p.style}
	if err := p.tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render profile %s: %w", u.ID, err)
	}
	return buf.String(), nil
}

// ExportPDF renders the profile of userID; an empty id means the current
// user.
func (p *ProfileExporter) ExportPDF(ctx context.Context, userID string) ([]byte, error) {
	if p.renderer == nil {
		return nil, ErrNoRenderer
	}
	u, err := p.lookup(userID)
	if err != nil {
		return nil, err
	}
	html, err := p.RenderHTML(u)
	if err != nil {
		return nil, err
	}
	pdf, err := p.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("render pdf for %s: %w", u.ID, err)
	}
	return pdf, nil
}

// ExportHTML is ExportPDF without the renderer step.
func (p *ProfileExporter) ExportHTML(userID string) (string, error) {
	u, err := p.lookup(userID)
	if err != nil {
		return "", err
	}
	return p.RenderHTML(u)
}

func (p *ProfileExporter) lookup(userID string) (domain.User, error) {
	if userID == "" {
		return p.store.CurrentUser(), nil
	}
	u, ok := p.store.User(userID)
	if !ok {
		return domain.User{}, fmt.Errorf("%w: %s", ErrUnknownUser, userID)
	}
	return u, nil
}
