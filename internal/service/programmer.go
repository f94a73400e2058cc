package service

import (
	"context"
	"fmt"
	"io"

	"github.com/deppfellow/chinook/internal/errs"
	"github.com/deppfellow/chinook/internal/model"
	"github.com/deppfellow/chinook/internal/prompt"
	"github.com/deppfellow/chinook/internal/schema"
	"github.com/rs/zerolog"
)

// User-facing messages.
const (
	MsgNoRecords   = "No records found"
	MsgDeleted     = "Programmer has been deleted"
	MsgNotDeleted  = "Programmer not deleted"
	PromptFirst    = "Enter a first name: "
	PromptLast     = "Enter a last name: "
	PromptConfirm  = "Are you sure you want to delete this record? (y/n) "
	msgFoundPrefix = "Found: "
)

// ProgrammerStore is the persistence the ProgrammerService needs.
type ProgrammerStore interface {
	Create(ctx context.Context, p model.Programmer) (model.Programmer, error)
	ByID(ctx context.Context, id int) (model.Programmer, error)
	First(ctx context.Context, filter schema.Filter) (model.Programmer, error)
	Find(ctx context.Context, filter schema.Filter) ([]model.Programmer, error)
	Update(ctx context.Context, p model.Programmer) error
	Delete(ctx context.Context, p model.Programmer) error
}

type ProgrammerService struct {
	store  ProgrammerStore
	log    *zerolog.Logger
	out    io.Writer
	prompt *prompt.Prompter
}

func NewProgrammerService(store ProgrammerStore, logger *zerolog.Logger, out io.Writer, p *prompt.Prompter) *ProgrammerService {
	return &ProgrammerService{
		store:  store,
		log:    logger,
		out:    out,
		prompt: p,
	}
}

// Seed inserts the sample programmers, one commit each.
func (s *ProgrammerService) Seed(ctx context.Context) ([]model.Programmer, error) {
	seed := model.SeedProgrammers()
	created := make([]model.Programmer, 0, len(seed))
	for _, p := range seed {
		c, err := s.store.Create(ctx, p)
		if err != nil {
			return created, err
		}
		created = append(created, c)
	}

	s.log.Info().Int("count", len(created)).Msg("seeded programmers")
	return created, nil
}

// SetFamousFor changes what the programmer with id is famous for.
func (s *ProgrammerService) SetFamousFor(ctx context.Context, id int, famousFor string) (model.Programmer, error) {
	p, err := s.store.ByID(ctx, id)
	if err != nil {
		return model.Programmer{}, err
	}

	p.FamousFor = famousFor
	if err := s.store.Update(ctx, p); err != nil {
		return model.Programmer{}, err
	}

	s.log.Info().Int("id", id).Str("famous_for", famousFor).Msg("updated programmer")
	return p, nil
}

// NormalizeReport counts what NormalizeGenders did.
type NormalizeReport struct {
	Updated   int
	Undefined int
}

// NormalizeGenders rewrites "F"/"M" to "Female"/"Male", committing per record.
// Any other value is reported as a warning and left as is.
func (s *ProgrammerService) NormalizeGenders(ctx context.Context) (NormalizeReport, error) {
	var report NormalizeReport

	people, err := s.store.Find(ctx, nil)
	if err != nil {
		return report, err
	}

	for _, person := range people {
		gender, ok := model.NormalizeGender(person.Gender)
		if !ok {
			report.Undefined++
			s.log.Warn().
				Int("id", person.ID).
				Str("gender", person.Gender).
				Msg("gender not defined")
			continue
		}

		person.Gender = gender
		if err := s.store.Update(ctx, person); err != nil {
			return report, err
		}
		report.Updated++
	}

	s.log.Info().
		Int("updated", report.Updated).
		Int("undefined", report.Undefined).
		Msg("normalized genders")
	return report, nil
}

// DeleteByName asks for a first and last name, shows the first match and
// deletes it after confirmation. It reports whether a row was deleted.
func (s *ProgrammerService) DeleteByName(ctx context.Context) (bool, error) {
	first, err := s.prompt.Ask(PromptFirst)
	if err != nil {
		return false, err
	}
	last, err := s.prompt.Ask(PromptLast)
	if err != nil {
		return false, err
	}

	p, err := s.store.First(ctx, schema.Filter{"first_name": first, "last_name": last})
	if errs.IsNotFound(err) {
		fmt.Fprintln(s.out, MsgNoRecords)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	fmt.Fprintln(s.out, msgFoundPrefix+p.FullName())

	ok, err := s.prompt.Confirm(PromptConfirm)
	if err != nil {
		return false, err
	}
	if !ok {
		fmt.Fprintln(s.out, MsgNotDeleted)
		return false, nil
	}

	if err := s.store.Delete(ctx, p); err != nil {
		return false, err
	}
	fmt.Fprintln(s.out, MsgDeleted)
	return true, nil
}

// Purge deletes every programmer, one commit per record.
func (s *ProgrammerService) Purge(ctx context.Context) (int, error) {
	people, err := s.store.Find(ctx, nil)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, p := range people {
		if err := s.store.Delete(ctx, p); err != nil {
			return deleted, err
		}
		deleted++
	}

	s.log.Info().Int("count", deleted).Msg("purged programmers")
	return deleted, nil
}

// List returns every programmer ordered by id.
func (s *ProgrammerService) List(ctx context.Context) ([]model.Programmer, error) {
	return s.store.Find(ctx, nil)
}
