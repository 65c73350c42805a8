package tasktemplate

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/richcrm/richcrm/db/store"
	"github.com/richcrm/richcrm/internal/models"
)

// Repository persists individual task template records. Ordering
// is not its concern: partition reads come back unordered and the
// linked-list pointers are written exactly as instructed.
type Repository interface {
	GetByTTID(ttid string) (*models.TaskTemplate, error)
	GetByTaskNameAndCreator(taskName, creatorID string) (models.TaskTemplates, error)
	GetByStageAndCreator(stage models.Stage, creatorID string) (models.TaskTemplates, error)
	Create(t *models.TaskTemplate) error
	Update(u *Update) error
	Delete(ttid string) error
}

type repository struct {
	ctx   context.Context
	store store.Store
}

func New(ctx context.Context, s store.Store) Repository {
	return &repository{ctx: ctx, store: s}
}

func key(ttid string) map[string]interface{} {
	return map[string]interface{}{"TTID": ttid}
}

// GetByTTID returns the record, or nil when it does not exist.
func (r *repository) GetByTTID(ttid string) (*models.TaskTemplate, error) {
	t := &models.TaskTemplate{}

	err := r.store.Get(r.ctx, models.TaskTemplateTable, key(ttid), t)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (r *repository) GetByTaskNameAndCreator(taskName, creatorID string) (models.TaskTemplates, error) {
	found := make(models.TaskTemplates, 0)

	err := r.store.Scan(r.ctx, models.TaskTemplateTable, map[string]interface{}{
		"TaskName":  taskName,
		"CreatorId": creatorID,
	}, &found)

	return found, err
}

func (r *repository) GetByStageAndCreator(stage models.Stage, creatorID string) (models.TaskTemplates, error) {
	found := make(models.TaskTemplates, 0)

	err := r.store.Scan(r.ctx, models.TaskTemplateTable, map[string]interface{}{
		"Stage":     stage,
		"CreatorId": creatorID,
	}, &found)

	return found, err
}

func (r *repository) Create(t *models.TaskTemplate) error {
	switch {
	case t.TTID == "":
		return errors.New("ttid is required")
	case t.TaskName == "":
		return errors.New("taskName is required")
	case !t.Stage.Valid():
		return errors.New("stage is required")
	}

	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	return r.store.Put(r.ctx, models.TaskTemplateTable, t)
}

// Update describes a partial update. Nil optional fields are left
// unchanged; PrevTTID and NextTTID are structural and always
// written, a nil value meaning an explicit null pointer.
type Update struct {
	TTID      string
	TaskName  *string
	Stage     *models.Stage
	TaskType  *models.TaskType
	IsDefault *bool
	Templates []string
	PrevTTID  *string
	NextTTID  *string
}

func (r *repository) Update(u *Update) error {
	if u.TTID == "" {
		return errors.New("ttid is required")
	}

	set := map[string]interface{}{
		"PrevTTID":  u.PrevTTID,
		"NextTTID":  u.NextTTID,
		"UpdatedAt": time.Now().UTC(),
	}

	if u.TaskName != nil {
		set["TaskName"] = *u.TaskName
	}
	if u.Stage != nil {
		set["Stage"] = *u.Stage
	}
	if u.TaskType != nil {
		set["TaskType"] = *u.TaskType
	}
	if u.IsDefault != nil {
		set["IsDefault"] = *u.IsDefault
	}
	if u.Templates != nil {
		set["Templates"] = u.Templates
	}

	return r.store.Update(r.ctx, models.TaskTemplateTable, key(u.TTID), set)
}

func (r *repository) Delete(ttid string) error {
	return r.store.Delete(r.ctx, models.TaskTemplateTable, key(ttid))
}
