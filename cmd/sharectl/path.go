package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"readshelf-share/internal/note"
)

func newPathCmd(a *app) *cobra.Command {
	var input note.SharePathInput

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the share path of a note",
		Long:  `Build the public share path /{category}/{slug}-{suffix} from a note's category, title and id.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.SharePath(input)
			if err != nil {
				switch {
				case errors.Is(err, note.ErrInvalidCategory):
					return fmt.Errorf("unknown category %q", input.Category)
				case errors.Is(err, note.ErrNotFound):
					return errors.New("note id is required")
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Category, "category", "", "Note category (book, video, article, course, general)")
	cmd.Flags().StringVar(&input.Title, "title", "", "Note title")
	cmd.Flags().StringVar(&input.ID, "id", "", "Note id")
	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("id")
	return cmd
}
