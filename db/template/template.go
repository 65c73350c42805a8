package template

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/richcrm/richcrm/db/store"
	"github.com/richcrm/richcrm/internal/models"
)

// Repository persists email template records keyed by title.
type Repository interface {
	GetByTitle(title string) (*models.Template, error)
	Put(t *models.Template) error
	Delete(title string) error
}

type repository struct {
	ctx   context.Context
	store store.Store
}

func New(ctx context.Context, s store.Store) Repository {
	return &repository{ctx: ctx, store: s}
}

func key(title string) map[string]interface{} {
	return map[string]interface{}{"TemplateTitle": title}
}

// GetByTitle returns the template, or nil when it does not exist.
func (r *repository) GetByTitle(title string) (*models.Template, error) {
	t := &models.Template{}

	err := r.store.Get(r.ctx, models.TemplateTable, key(title), t)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (r *repository) Put(t *models.Template) error {
	if t.TemplateTitle == "" {
		return errors.New("templateTitle is required")
	}

	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	return r.store.Put(r.ctx, models.TemplateTable, t)
}

func (r *repository) Delete(title string) error {
	return r.store.Delete(r.ctx, models.TemplateTable, key(title))
}
