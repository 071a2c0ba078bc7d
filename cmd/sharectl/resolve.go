package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"readshelf-share/internal/note"
	"readshelf-share/internal/viewer"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// resolvedNote is the printable summary of a resolved share path.
type resolvedNote struct {
	ID        string `json:"id" yaml:"id"`
	Category  string `json:"category" yaml:"category"`
	Title     string `json:"title" yaml:"title"`
	Author    string `json:"author,omitempty" yaml:"author,omitempty"`
	Owner     string `json:"owner,omitempty" yaml:"owner,omitempty"`
	Status    string `json:"status,omitempty" yaml:"status,omitempty"`
	CreatedAt string `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	SharePath string `json:"sharePath" yaml:"sharePath"`
}

func newResolvedNote(out note.ResolveOutput) resolvedNote {
	n := out.Note
	r := resolvedNote{
		ID:        n.ID,
		Category:  string(n.Category),
		Title:     n.Title,
		Author:    n.Author,
		Status:    n.Status.Label(),
		CreatedAt: n.CreatedAt,
		SharePath: out.SharePath,
	}
	if u, ok := n.User.Profile(); ok && u.Username != "" {
		r.Owner = "@" + u.Username
	}
	return r
}

func newResolveCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "resolve [share-path]",
		Short: "Resolve a share path to its public note",
		Long: `Resolve a share path such as /book/atomic-habits-b8c9d0 (or a full share URL)
against the public listing. Prints a summary, or the note as JSON or YAML with --output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			route, ok := viewer.ParseRoute(args[0])
			if !ok {
				return fmt.Errorf("%q is not a share path", args[0])
			}

			out, err := a.uc.Resolve(cmd.Context(), note.ResolveInput{Category: route.Category, Slug: route.Slug})
			if err != nil {
				return resolveError(route, err)
			}
			return writeResolved(cmd.OutOrStdout(), output, newResolvedNote(out))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")
	return cmd
}

func checkOutput(output string) error {
	switch output {
	case outputText, outputJSON, outputYAML:
		return nil
	}
	return fmt.Errorf("unsupported output format %q", output)
}

func resolveError(route viewer.Route, err error) error {
	switch {
	case errors.Is(err, note.ErrAmbiguous):
		return fmt.Errorf("%s: share path matches more than one note", route)
	case errors.Is(err, note.ErrNotFound):
		return fmt.Errorf("%s: note not found", route)
	}
	return err
}

func writeResolved(w io.Writer, output string, r resolvedNote) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "%s\n", r.Title)
	if r.Author != "" {
		fmt.Fprintf(w, "  by %s\n", r.Author)
	}
	if r.Owner != "" {
		fmt.Fprintf(w, "  owner: %s\n", r.Owner)
	}
	fmt.Fprintf(w, "  id: %s\n", r.ID)
	fmt.Fprintf(w, "  path: %s\n", r.SharePath)
	return nil
}
