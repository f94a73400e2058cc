package main

import (
	"context"
	"fmt"

	"github.com/deppfellow/chinook/internal/errs"
	"github.com/deppfellow/chinook/internal/model"
	"github.com/deppfellow/chinook/internal/printer"
	"github.com/deppfellow/chinook/internal/repository"
	"github.com/deppfellow/chinook/internal/schema"
	"github.com/deppfellow/chinook/internal/service"
	"github.com/spf13/cobra"
)

// catalogOpener opens one session and returns the catalog reading through it.
type catalogOpener func(ctx context.Context) (repository.Catalog, closer, error)

// withCatalog opens a catalog, runs fn and closes the session on every path.
func withCatalog(cmd *cobra.Command, open catalogOpener, fn func(repository.Catalog) error) (err error) {
	catalog, closeFn, err := open(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(catalog)
}

func newCatalogCmd(use, short string, open catalogOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "artists",
			Short: "List every artist",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withCatalog(cmd, open, func(c repository.Catalog) error {
					artists, err := c.Artists(cmd.Context())
					if err != nil {
						return err
					}
					return printer.Print(cmd.OutOrStdout(), artists)
				})
			},
		},
		&cobra.Command{
			Use:   "artist-names",
			Short: "List only the artist names",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withCatalog(cmd, open, func(c repository.Catalog) error {
					names, err := c.ArtistNames(cmd.Context())
					if err != nil {
						return err
					}
					return printer.Print(cmd.OutOrStdout(), names)
				})
			},
		},
		newArtistCmd(open),
		newAlbumsCmd(open),
		newTracksCmd(open),
	)

	return cmd
}

func newArtistCmd(open catalogOpener) *cobra.Command {
	var (
		name string
		id   int
	)

	cmd := &cobra.Command{
		Use:   "artist",
		Short: "Show the first artist matching --name or --id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			byID := cmd.Flags().Changed("id")
			return withCatalog(cmd, open, func(c repository.Catalog) error {
				var (
					artist model.Artist
					err    error
				)
				if byID {
					artist, err = c.ArtistByID(cmd.Context(), id)
				} else {
					artist, err = c.ArtistByName(cmd.Context(), name)
				}
				if errs.IsNotFound(err) {
					fmt.Fprintln(cmd.OutOrStdout(), service.MsgNoRecords)
					return nil
				}
				if err != nil {
					return err
				}
				return printer.PrintOne(cmd.OutOrStdout(), artist)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "Queen", "artist name to look up")
	cmd.Flags().IntVar(&id, "id", 51, "artist id to look up (takes precedence over --name)")
	return cmd
}

func newAlbumsCmd(open catalogOpener) *cobra.Command {
	var artistID int

	cmd := &cobra.Command{
		Use:   "albums",
		Short: "List the albums of an artist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withCatalog(cmd, open, func(c repository.Catalog) error {
				albums, err := c.AlbumsByArtist(cmd.Context(), artistID)
				if err != nil {
					return err
				}
				return printer.Print(cmd.OutOrStdout(), albums)
			})
		},
	}

	cmd.Flags().IntVar(&artistID, "artist-id", 51, "artist id the albums belong to")
	return cmd
}

func newTracksCmd(open catalogOpener) *cobra.Command {
	var (
		composer string
		albumID  int
	)

	cmd := &cobra.Command{
		Use:   "tracks",
		Short: "List the tracks of a composer, optionally on one album",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withCatalog(cmd, open, func(c repository.Catalog) error {
				var (
					tracks []model.Track
					err    error
				)
				if cmd.Flags().Changed("album-id") {
					tracks, err = c.Tracks(cmd.Context(), schema.Filter{"Composer": composer, "AlbumId": albumID})
				} else {
					tracks, err = c.TracksByComposer(cmd.Context(), composer)
				}
				if err != nil {
					return err
				}
				return printer.Print(cmd.OutOrStdout(), tracks)
			})
		},
	}

	cmd.Flags().StringVar(&composer, "composer", "Queen", "composer to filter on")
	cmd.Flags().IntVar(&albumID, "album-id", 0, "only tracks of this album")
	return cmd
}
