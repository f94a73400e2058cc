package main

import (
	"context"
	"fmt"

	"github.com/deppfellow/chinook/internal/errs"
	"github.com/deppfellow/chinook/internal/printer"
	"github.com/deppfellow/chinook/internal/prompt"
	"github.com/deppfellow/chinook/internal/repository"
	"github.com/deppfellow/chinook/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// session is an open ORM session with its repositories.
type session struct {
	repos *repository.Repositories
	log   *zerolog.Logger
	close closer
}

type sessionOpener func(ctx context.Context) (*session, error)

// withProgrammers opens a session, builds the programmer service on the
// command's stdin/stdout, runs fn and closes the session on every path.
func withProgrammers(cmd *cobra.Command, open sessionOpener, fn func(*service.ProgrammerService) error) (err error) {
	s, err := open(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	services := service.NewServices(s.repos, s.log, cmd.OutOrStdout(), p)
	return fn(services.Programmers)
}

func listProgrammers(cmd *cobra.Command, svc *service.ProgrammerService) error {
	people, err := svc.List(cmd.Context())
	if err != nil {
		return err
	}
	return printer.Print(cmd.OutOrStdout(), people)
}

// setFamousFor reports a missing programmer instead of failing.
func setFamousFor(cmd *cobra.Command, svc *service.ProgrammerService, id int, famousFor string) error {
	_, err := svc.SetFamousFor(cmd.Context(), id, famousFor)
	if errs.IsNotFound(err) {
		fmt.Fprintln(cmd.OutOrStdout(), service.MsgNoRecords)
		return nil
	}
	return err
}

func newProgrammersCmd(open sessionOpener) *cobra.Command {
	var (
		seed      bool
		purge     bool
		id        int
		famousFor string
	)

	cmd := &cobra.Command{
		Use:   "programmers",
		Short: "Run the programmer session: update, normalize genders, delete, list",
		Long: `Without a subcommand, runs the whole programmer session in order:
optional seeding, a famous_for update, gender normalization, an interactive
delete by name, optional purge, and finally a listing of what is left.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProgrammers(cmd, open, func(svc *service.ProgrammerService) error {
				ctx := cmd.Context()

				if seed {
					if _, err := svc.Seed(ctx); err != nil {
						return err
					}
				}
				if err := setFamousFor(cmd, svc, id, famousFor); err != nil {
					return err
				}
				if _, err := svc.NormalizeGenders(ctx); err != nil {
					return err
				}
				if _, err := svc.DeleteByName(ctx); err != nil {
					return err
				}
				if purge {
					if _, err := svc.Purge(ctx); err != nil {
						return err
					}
				}
				return listProgrammers(cmd, svc)
			})
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "insert the sample programmers first")
	cmd.Flags().BoolVar(&purge, "purge", false, "delete every programmer before listing")
	cmd.Flags().IntVar(&id, "id", 7, "programmer whose famous_for is updated")
	cmd.Flags().StringVar(&famousFor, "famous-for", "World President", "new famous_for value")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the sample programmers",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProgrammers(cmd, open, func(svc *service.ProgrammerService) error {
					created, err := svc.Seed(cmd.Context())
					if err != nil {
						return err
					}
					return printer.Print(cmd.OutOrStdout(), created)
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List every programmer",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProgrammers(cmd, open, func(svc *service.ProgrammerService) error {
					return listProgrammers(cmd, svc)
				})
			},
		},
		newUpdateCmd(open),
		&cobra.Command{
			Use:   "normalize-gender",
			Short: `Rewrite gender "F"/"M" to "Female"/"Male"`,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProgrammers(cmd, open, func(svc *service.ProgrammerService) error {
					_, err := svc.NormalizeGenders(cmd.Context())
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "delete",
			Short: "Delete a programmer chosen by first and last name",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProgrammers(cmd, open, func(svc *service.ProgrammerService) error {
					_, err := svc.DeleteByName(cmd.Context())
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "purge",
			Short: "Delete every programmer",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProgrammers(cmd, open, func(svc *service.ProgrammerService) error {
					_, err := svc.Purge(cmd.Context())
					return err
				})
			},
		},
	)

	return cmd
}

func newUpdateCmd(open sessionOpener) *cobra.Command {
	var (
		id        int
		famousFor string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change what a programmer is famous for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProgrammers(cmd, open, func(svc *service.ProgrammerService) error {
				return setFamousFor(cmd, svc, id, famousFor)
			})
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "programmer id")
	cmd.Flags().StringVar(&famousFor, "famous-for", "", "new famous_for value")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("famous-for")
	return cmd
}
