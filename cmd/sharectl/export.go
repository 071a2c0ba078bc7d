package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"readshelf-share/internal/export"
	"readshelf-share/internal/note"
	"readshelf-share/internal/viewer"
)

var errExportBlocked = errors.New("the browser could not be opened, try --out instead")

func newExportCmd(a *app) *cobra.Command {
	var (
		outFile string
		open    bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "export [share-path]",
		Short: "Export a shared note as a printable document",
		Long: `Render the printable HTML document of a shared note.
Writes to stdout by default, to a file with --out, or opens it in the
system browser with --open (the print dialog starts when the page loads).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if open && outFile != "" {
				return errors.New("--open and --out are mutually exclusive")
			}
			route, ok := viewer.ParseRoute(args[0])
			if !ok {
				return fmt.Errorf("%q is not a share path", args[0])
			}

			var presenter export.Presenter
			switch {
			case open:
				presenter = export.ServeOncePresenter{
					Timeout: timeout,
					Logger:  a.logger,
				}
			case outFile != "":
				f, err := os.Create(outFile)
				if err != nil {
					return fmt.Errorf("create %s: %w", outFile, err)
				}
				defer f.Close()
				presenter = export.WritePresenter{W: f}
			default:
				presenter = export.WritePresenter{W: cmd.OutOrStdout()}
			}

			out, err := a.uc.Export(cmd.Context(), note.ExportInput{
				Category:  route.Category,
				Slug:      route.Slug,
				Presenter: presenter,
			})
			if err != nil {
				if outFile != "" {
					os.Remove(outFile)
				}
				return resolveError(route, err)
			}
			return reportExport(cmd.ErrOrStderr(), out, outFile, open)
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "Write the document to this file")
	cmd.Flags().BoolVar(&open, "open", false, "Open the document in the system browser")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "How long --open waits for the browser to load the document")
	return cmd
}

func reportExport(w io.Writer, out note.ExportOutput, outFile string, open bool) error {
	switch out.Outcome {
	case export.OutcomeBlocked:
		return errExportBlocked
	case export.OutcomeCancelled:
		return errors.New("export cancelled")
	}
	switch {
	case open:
		fmt.Fprintf(w, "Opened %q in the browser\n", out.Note.Title)
	case outFile != "":
		fmt.Fprintf(w, "Wrote %q to %s\n", out.Note.Title, outFile)
	}
	return nil
}
