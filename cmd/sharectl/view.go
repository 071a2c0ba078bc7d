package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"readshelf-share/internal/viewer"
)

func newViewCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Follow share paths read from stdin",
		Long: `Read share paths from stdin, one per line, and navigate to each in turn.
A navigation supersedes the one before it: only the result of the latest
path is printed, earlier resolutions still in flight are discarded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			a.withListingCache()
			return runView(cmd, a, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")
	return cmd
}

func runView(cmd *cobra.Command, a *app, output string) error {
	w := cmd.OutOrStdout()
	ew := cmd.ErrOrStderr()

	v := viewer.New(a.uc, func(r viewer.Result) {
		printResult(w, ew, output, r)
	})
	defer v.Close()

	var last <-chan bool
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		route, ok := viewer.ParseRoute(line)
		if !ok {
			fmt.Fprintf(ew, "%q is not a share path\n", line)
			continue
		}
		last = v.Navigate(cmd.Context(), route)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	if last != nil {
		<-last
	}
	return nil
}

func printResult(w, ew io.Writer, output string, r viewer.Result) {
	if r.Err != nil {
		fmt.Fprintln(ew, resolveError(r.Route, r.Err))
		return
	}
	if err := writeResolved(w, output, newResolvedNote(r.Output)); err != nil {
		fmt.Fprintf(ew, "%s: %v\n", r.Route, err)
	}
}
