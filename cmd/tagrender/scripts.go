package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swdunlop/tagkit-go/asset"
)

func scriptsCmd() *cobra.Command {
	var (
		attrsJSON string
		root      string
		ext       string
	)

	cmd := &cobra.Command{
		Use:   "scripts SOURCE...",
		Short: "Render script tags for JavaScript sources",
		Long: `Render one script tag per source, separated by newlines.

Sources that start with a scheme like https:// or with cid: are used as is,
other sources are resolved under --root with --ext appended.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := parseAttrs(attrsJSON)
			if err != nil {
				return err
			}
			composer := asset.New(asset.Root(root), asset.Extension(ext))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), composer.JavascriptIncludeTag(args, attrs))
			return err
		},
	}

	cmd.Flags().StringVar(&attrsJSON, "attrs", "", "Extra attributes as a JSON object")
	cmd.Flags().StringVar(&root, "root", "/javascripts", "Path for local sources")
	cmd.Flags().StringVar(&ext, "ext", ".js", "Extension for local sources")
	return cmd
}
