package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"chemvista/internal/nav"
)

// errPage is returned when a page renders with an error status
var errPage = errors.New("page error")

func newSearchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search compounds and elements and print the results page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPage(cmd, opts, func(*runtime) (string, error) {
				return nav.SearchPath(args[0]), nil
			})
		},
	}
}

func newElementCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "element [number|symbol|name]",
		Short: "Print the page of one element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPage(cmd, opts, func(rt *runtime) (string, error) {
				e, err := rt.catalogs.Current().Lookup(args[0])
				if err != nil {
					return "", err
				}
				return nav.ElementPath(e.AtomicNumber), nil
			})
		},
	}
}

func newCompoundCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compound [id|formula]",
		Short: "Print the page of one compound",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPage(cmd, opts, func(*runtime) (string, error) {
				return nav.CompoundPath(args[0]), nil
			})
		},
	}
}

// printPage renders the page at the path chosen by target and writes it
// to the command output
func printPage(cmd *cobra.Command, opts *options, target func(*runtime) (string, error)) error {
	rt, err := setup(opts)
	if err != nil {
		return err
	}
	defer rt.close()

	path, err := target(rt)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	page := rt.pages.Render(ctx, path)
	if err := writePage(cmd.OutOrStdout(), page); err != nil {
		return err
	}
	if page.Status >= http.StatusBadRequest {
		return fmt.Errorf("%w: %d %s", errPage, page.Status, path)
	}
	return nil
}

func writePage(w io.Writer, page nav.Page) error {
	_, err := io.WriteString(w, page.String())
	return err
}
