package service

import (
	"io"

	"github.com/deppfellow/chinook/internal/prompt"
	"github.com/deppfellow/chinook/internal/repository"
	"github.com/rs/zerolog"
)

type Services struct {
	Programmers *ProgrammerService
}

// NewServices wires the services over the ORM repositories. User-facing
// messages go to out; answers are read through p.
func NewServices(repos *repository.Repositories, logger *zerolog.Logger, out io.Writer, p *prompt.Prompter) *Services {
	return &Services{
		Programmers: NewProgrammerService(repos.Programmers, logger, out, p),
	}
}
