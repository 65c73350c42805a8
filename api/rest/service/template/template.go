package template

import (
	"context"

	"github.com/pkg/errors"
	"github.com/richcrm/richcrm/db"
	"github.com/richcrm/richcrm/db/store"
	templaterepo "github.com/richcrm/richcrm/db/template"
	"github.com/richcrm/richcrm/internal/models"
	"github.com/richcrm/richcrm/pkg/log"
)

// ErrMissingTitle is returned when an operation requires a
// template title and none was supplied.
var ErrMissingTitle = errors.New("templateTitle is required")

type Template interface {
	WithStore(store.Store) Template
	Get(title string) (*models.Template, error)
	Put(*PutRequest) (*models.Template, error)
	Delete(title string) error
	ResolveValidTitles(titles []string) ([]string, error)
}

type templateService struct {
	ctx  context.Context
	repo templaterepo.Repository
}

func Service(ctx context.Context) Template {
	return &templateService{
		ctx:  ctx,
		repo: templaterepo.New(ctx, db.Connection()),
	}
}

func (t *templateService) WithStore(s store.Store) Template {
	t.repo = templaterepo.New(t.ctx, s)
	return t
}

// Get returns the template, or nil when no template carries the
// given title.
func (t *templateService) Get(title string) (*models.Template, error) {
	if title == "" {
		return nil, ErrMissingTitle
	}
	return t.repo.GetByTitle(title)
}

type PutRequest struct {
	TemplateTitle   string `json:"templateTitle"`
	TemplateContent string `json:"templateContent"`
}

func (t *templateService) Put(req *PutRequest) (*models.Template, error) {
	if req.TemplateTitle == "" {
		return nil, ErrMissingTitle
	}

	tmpl := &models.Template{
		TemplateTitle:   req.TemplateTitle,
		TemplateContent: req.TemplateContent,
	}

	return tmpl, t.repo.Put(tmpl)
}

func (t *templateService) Delete(title string) error {
	if title == "" {
		return ErrMissingTitle
	}
	return t.repo.Delete(title)
}

// ResolveValidTitles returns the subset of titles that name an
// existing template, deduplicated in first-seen order.
// Unresolvable titles are dropped with a log line, not an error.
func (t *templateService) ResolveValidTitles(titles []string) ([]string, error) {
	resolved := make([]string, 0, len(titles))
	seen := make(map[string]bool, len(titles))

	for _, title := range titles {
		if seen[title] {
			continue
		}

		tmpl, err := t.repo.GetByTitle(title)
		if err != nil {
			return nil, err
		}
		if tmpl == nil {
			log.Info("dropping unknown template title", "title", title)
			continue
		}

		seen[title] = true
		resolved = append(resolved, title)
	}

	return resolved, nil
}
