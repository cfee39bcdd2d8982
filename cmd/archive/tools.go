package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-humble/knowledge-archive/internal/app"
	"github.com/you-humble/knowledge-archive/internal/model"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print every page path the catalog can serve",
		Args:  cobra.NoArgs,
		RunE: withTools(func(ctx context.Context, cmd *cobra.Command, t toolbox, _ []string) error {
			for _, route := range t.StaticRoutes(ctx) {
				fmt.Fprintln(cmd.OutOrStdout(), route)
			}
			return nil
		}),
	}
}

func newCrumbsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crumbs <path>",
		Short: "Print the breadcrumb trail of a URL path",
		Example: `  archive crumbs /parts/mech-hd-001
  archive crumbs /falcon/electrical,autonomous`,
		Args: cobra.ExactArgs(1),
		RunE: withTools(func(ctx context.Context, cmd *cobra.Command, t toolbox, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatBreadcrumb(t.Breadcrumb(ctx, args[0])))
			return nil
		}),
	}
}

func newSearchCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search parts by name, category or type",
		Args:  cobra.ExactArgs(1),
		RunE: withTools(func(ctx context.Context, cmd *cobra.Command, t toolbox, args []string) error {
			items, err := t.Search(ctx, path, args[0])
			if err != nil {
				return err
			}
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", item.Href, item.Name, item.Category)
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&path, "path", "", "current page path; a car segment scopes the search")

	return cmd
}

type toolbox interface {
	StaticRoutes(ctx context.Context) []string
	Breadcrumb(ctx context.Context, path string) model.Breadcrumb
	Search(ctx context.Context, path, term string) ([]model.SearchItem, error)
	Close(ctx context.Context) error
}

type toolFunc func(ctx context.Context, cmd *cobra.Command, t toolbox, args []string) error

func withTools(fn toolFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		t, err := app.NewTools(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = t.Close(context.WithoutCancel(ctx)) }()

		return fn(ctx, cmd, t, args)
	}
}

// formatBreadcrumb renders "Home / Mechanical / Radiator X1000", with " | "
// between grouped items.
func formatBreadcrumb(b model.Breadcrumb) string {
	var sb strings.Builder
	for i, c := range b.Crumbs {
		if i > 0 {
			if c.Separator == model.SeparatorPipe {
				sb.WriteString(" | ")
			} else {
				sb.WriteString(" / ")
			}
		}
		sb.WriteString(c.Label)
	}
	return sb.String()
}
