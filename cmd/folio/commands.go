package main

import (
	"fmt"

	"github.com/tinytelemetry/folio/internal/content"
	"github.com/tinytelemetry/folio/internal/tui"

	"github.com/spf13/cobra"
)

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the sections reachable from the command palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFromFlags(cmd)
			if err != nil {
				return err
			}
			p, err := content.Load(cmd.Context(), cfg.Content)
			if err != nil {
				return err
			}
			sections, err := tui.DefaultSections(p, "")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range tui.PaletteEntries(sections) {
				fmt.Fprintf(out, "%-10s #%s\n", e.Label, e.Target)
			}
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the portfolio content and report problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFromFlags(cmd)
			if err != nil {
				return err
			}
			p, err := content.Load(cmd.Context(), cfg.Content)
			if err != nil {
				return err
			}
			source := cfg.Content
			if source == "" {
				source = "built-in portfolio"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d projects in %d categories, %d testimonials, %d posts)\n",
				source, len(p.Projects), len(p.ProjectCategories), len(p.Testimonials), len(p.Posts))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "folio - terminal portfolio\n")
			fmt.Fprintf(out, "  Version:    %s\n", version)
			fmt.Fprintf(out, "  Commit:     %s\n", commit)
			fmt.Fprintf(out, "  Built:      %s\n", buildTime)
			fmt.Fprintf(out, "  Go version: %s\n", goVersion)
		},
	}
}
