package tasktemplate

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/richcrm/richcrm/api/rest/service/template"
	"github.com/richcrm/richcrm/db"
	"github.com/richcrm/richcrm/db/store"
	tasktemplaterepo "github.com/richcrm/richcrm/db/tasktemplate"
	"github.com/richcrm/richcrm/internal/chain"
	"github.com/richcrm/richcrm/internal/models"
	"github.com/richcrm/richcrm/pkg/log"
)

var (
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidStage    = errors.New("invalid stage")
	ErrInvalidTaskType = errors.New("invalid task type")
	ErrCycleDetected   = errors.New("ordering change would create a cycle")
)

type TaskTemplate interface {
	WithStore(store.Store) TaskTemplate
	CreateOrUpdate(*CreateOrUpdateRequest) (*models.TaskTemplate, error)
	Delete(ttid string) error
	Get(ttid string) (*models.TaskTemplate, error)
	OrderedByStage(stage models.Stage, creatorID string) (models.TaskTemplates, error)
	SeedDefaults(creatorID string) error
}

type taskTemplateService struct {
	ctx       context.Context
	repo      tasktemplaterepo.Repository
	templates template.Template
}

func Service(ctx context.Context) TaskTemplate {
	s := &taskTemplateService{ctx: ctx}
	return s.WithStore(db.Connection())
}

func (s *taskTemplateService) WithStore(st store.Store) TaskTemplate {
	s.repo = tasktemplaterepo.New(s.ctx, st)
	s.templates = template.Service(s.ctx).WithStore(st)
	return s
}

type CreateOrUpdateRequest struct {
	TaskName  string   `json:"taskName"`
	CreatorID string   `json:"creatorId"`
	Stage     int      `json:"stage"`
	TaskType  int      `json:"taskType"`
	PrevTTID  *string  `json:"prevTtid"`
	NextTTID  *string  `json:"nextTtid"`
	IsDefault bool     `json:"isDefault"`
	Templates []string `json:"templates"`
}

// CreateOrUpdate is the single entry point for both inserting and
// editing a task template. The record is addressed by
// (taskName, creatorId): when one already exists the call becomes
// an update of that record, otherwise a new ttid is minted. Either
// way the desired prev/next linkage is cycle-checked against a
// snapshot of the partition before anything is written.
func (s *taskTemplateService) CreateOrUpdate(req *CreateOrUpdateRequest) (*models.TaskTemplate, error) {
	switch {
	case req.TaskName == "":
		return nil, errors.Wrap(ErrMissingField, "taskName")
	case req.CreatorID == "":
		return nil, errors.Wrap(ErrMissingField, "creatorId")
	}

	stage := models.Stage(req.Stage)
	if !stage.Valid() {
		return nil, errors.Wrapf(ErrInvalidStage, "stage %v", req.Stage)
	}

	taskType := models.TaskType(req.TaskType)
	if !taskType.Valid() {
		return nil, errors.Wrapf(ErrInvalidTaskType, "taskType %v", req.TaskType)
	}

	titles := req.Templates
	if taskType == models.TaskTypeContact {
		var err error
		if titles, err = s.templates.ResolveValidTitles(req.Templates); err != nil {
			return nil, err
		}
	}

	existing, err := s.repo.GetByTaskNameAndCreator(req.TaskName, req.CreatorID)
	if err != nil {
		return nil, err
	}

	partition, err := s.repo.GetByStageAndCreator(stage, req.CreatorID)
	if err != nil {
		return nil, err
	}

	if len(existing) > 0 {
		return s.update(existing[0], partition, req, stage, taskType, titles)
	}

	return s.insert(partition, req, stage, taskType, titles)
}

func (s *taskTemplateService) insert(
	partition models.TaskTemplates,
	req *CreateOrUpdateRequest,
	stage models.Stage,
	taskType models.TaskType,
	titles []string,
) (*models.TaskTemplate, error) {
	t := &models.TaskTemplate{
		TTID:      uuid.NewString(),
		TaskName:  req.TaskName,
		CreatorID: req.CreatorID,
		Stage:     stage,
		TaskType:  taskType,
		PrevTTID:  req.PrevTTID,
		NextTTID:  req.NextTTID,
		IsDefault: req.IsDefault,
		Templates: titles,
	}

	if chain.WouldCreateCycle(partition, t, false) {
		return nil, errors.Wrapf(ErrCycleDetected, "inserting %v", t.TaskName)
	}

	if err := s.repo.Create(t); err != nil {
		return nil, err
	}

	if err := s.relink(t.PrevTTID, t.NextTTID, t.TTID); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *taskTemplateService) update(
	cur *models.TaskTemplate,
	partition models.TaskTemplates,
	req *CreateOrUpdateRequest,
	stage models.Stage,
	taskType models.TaskType,
	titles []string,
) (*models.TaskTemplate, error) {
	candidate := *cur
	candidate.Stage = stage
	candidate.TaskType = taskType
	candidate.IsDefault = req.IsDefault
	candidate.Templates = titles
	candidate.PrevTTID = req.PrevTTID
	candidate.NextTTID = req.NextTTID

	if chain.WouldCreateCycle(partition, &candidate, true) {
		return nil, errors.Wrapf(ErrCycleDetected, "moving %v", cur.TaskName)
	}

	err := s.repo.Update(&tasktemplaterepo.Update{
		TTID:      cur.TTID,
		Stage:     &stage,
		TaskType:  &taskType,
		IsDefault: &req.IsDefault,
		Templates: titles,
		PrevTTID:  req.PrevTTID,
		NextTTID:  req.NextTTID,
	})
	if err != nil {
		return nil, err
	}

	// bridge the gap the record is leaving, then stitch it into
	// its new position
	if err := s.bridge(cur.PrevTTID, cur.NextTTID); err != nil {
		return nil, err
	}

	if err := s.relink(req.PrevTTID, req.NextTTID, cur.TTID); err != nil {
		return nil, err
	}

	return s.repo.GetByTTID(cur.TTID)
}

// Delete removes the record and bridges its former neighbors to
// each other. Deleting an absent ttid is a no-op success.
func (s *taskTemplateService) Delete(ttid string) error {
	if ttid == "" {
		return errors.Wrap(ErrMissingField, "ttid")
	}

	cur, err := s.repo.GetByTTID(ttid)
	if err != nil {
		return err
	}
	if cur == nil {
		return nil
	}

	if err := s.bridge(cur.PrevTTID, cur.NextTTID); err != nil {
		return err
	}

	return s.repo.Delete(ttid)
}

func (s *taskTemplateService) Get(ttid string) (*models.TaskTemplate, error) {
	if ttid == "" {
		return nil, errors.Wrap(ErrMissingField, "ttid")
	}
	return s.repo.GetByTTID(ttid)
}

// OrderedByStage returns the creator's templates for a stage in
// traversal order. An empty partition yields an empty list.
func (s *taskTemplateService) OrderedByStage(stage models.Stage, creatorID string) (models.TaskTemplates, error) {
	if !stage.Valid() {
		return nil, errors.Wrapf(ErrInvalidStage, "stage %v", int(stage))
	}
	if creatorID == "" {
		return nil, errors.Wrap(ErrMissingField, "creatorId")
	}

	partition, err := s.repo.GetByStageAndCreator(stage, creatorID)
	if err != nil {
		return nil, err
	}

	return chain.Ordered(partition), nil
}

// SeedDefaults builds one default task chain per stage for the
// creator, linking each new record behind the previous one. A
// failed step logs and restarts the chain from a null prev pointer
// rather than aborting the seed.
func (s *taskTemplateService) SeedDefaults(creatorID string) error {
	if creatorID == "" {
		return errors.Wrap(ErrMissingField, "creatorId")
	}

	for _, stage := range models.Stages {
		var prev *string

		for _, def := range models.StageDefaultTasks[stage] {
			created, err := s.CreateOrUpdate(&CreateOrUpdateRequest{
				TaskName:  def.TaskName,
				CreatorID: creatorID,
				Stage:     int(stage),
				TaskType:  int(def.TaskType),
				Templates: def.Templates,
				IsDefault: true,
				PrevTTID:  prev,
			})
			if err != nil {
				log.Warn("default task seeding failed, restarting chain",
					"stage", stage.String(),
					"taskName", def.TaskName,
					"error", err)
				prev = nil
				continue
			}

			prev = &created.TTID
		}
	}

	return nil
}

// relink points the given neighbors at the record: prev's next and
// next's prev both become ttid. An absent neighbor is skipped, not
// an error.
func (s *taskTemplateService) relink(prev, next *string, ttid string) error {
	if prev != nil {
		p, err := s.repo.GetByTTID(*prev)
		if err != nil {
			return err
		}
		if p == nil {
			log.Debug("prev neighbor absent, skipping relink", "ttid", *prev)
		} else if p.TTID != ttid {
			err = s.repo.Update(&tasktemplaterepo.Update{
				TTID:     p.TTID,
				PrevTTID: p.PrevTTID,
				NextTTID: &ttid,
			})
			if err != nil {
				return err
			}
		}
	}

	if next != nil {
		n, err := s.repo.GetByTTID(*next)
		if err != nil {
			return err
		}
		if n == nil {
			log.Debug("next neighbor absent, skipping relink", "ttid", *next)
		} else if n.TTID != ttid {
			err = s.repo.Update(&tasktemplaterepo.Update{
				TTID:     n.TTID,
				PrevTTID: &ttid,
				NextTTID: n.NextTTID,
			})
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// bridge connects a record's former neighbors directly to each
// other, removing the record from the chain without touching the
// record itself.
func (s *taskTemplateService) bridge(prev, next *string) error {
	if prev != nil {
		p, err := s.repo.GetByTTID(*prev)
		if err != nil {
			return err
		}
		if p == nil {
			log.Debug("prev neighbor absent, skipping bridge", "ttid", *prev)
		} else {
			err = s.repo.Update(&tasktemplaterepo.Update{
				TTID:     p.TTID,
				PrevTTID: p.PrevTTID,
				NextTTID: next,
			})
			if err != nil {
				return err
			}
		}
	}

	if next != nil {
		n, err := s.repo.GetByTTID(*next)
		if err != nil {
			return err
		}
		if n == nil {
			log.Debug("next neighbor absent, skipping bridge", "ttid", *next)
		} else {
			err = s.repo.Update(&tasktemplaterepo.Update{
				TTID:     n.TTID,
				PrevTTID: prev,
				NextTTID: n.NextTTID,
			})
			if err != nil {
				return err
			}
		}
	}

	return nil
}
