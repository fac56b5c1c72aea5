package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/swdunlop/tagkit-go"
)

func tagCmd() *cobra.Command {
	var (
		attrsJSON string
		void      bool
		html4     bool
		raw       bool
	)

	cmd := &cobra.Command{
		Use:   "tag NAME [CONTENT]",
		Short: "Render a single tag",
		Long: `Render a single tag with optional content and attributes.

Content and attribute values are escaped unless --raw is given.  Void tags
have no content and close with " />" unless --html4 is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := parseAttrs(attrsJSON)
			if err != nil {
				return err
			}
			name := args[0]
			var out html.HTML
			if void {
				if len(args) > 1 {
					return fmt.Errorf(`void tag %q cannot have content`, name)
				}
				out = html.VoidTag(name, attrs, styleOf(html4), !raw)
			} else {
				var content html.Element
				if len(args) > 1 {
					content = html.Text(args[1])
				}
				out = html.BlockTag(name, content, attrs, !raw)
			}
			log.Debug().Str(`name`, name).Int(`attrs`, len(attrs)).Msg(`rendered tag`)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&attrsJSON, "attrs", "", "Attributes as a JSON object")
	cmd.Flags().BoolVar(&void, "void", false, "Render a void tag without content")
	cmd.Flags().BoolVar(&html4, "html4", false, "Leave void tags open, like <br>")
	cmd.Flags().BoolVar(&raw, "raw", false, "Do not escape content or attribute values")
	return cmd
}

// parseAttrs parses a JSON object of attributes; an empty string means no attributes.
func parseAttrs(js string) (html.Attrs, error) {
	if js == `` {
		return nil, nil
	}
	attrs, err := html.AttrsFromJSON([]byte(js))
	if err != nil {
		return nil, fmt.Errorf(`--attrs: %w`, err)
	}
	return attrs, nil
}

func styleOf(html4 bool) html.Style {
	if html4 {
		return html.HTML4
	}
	return html.XHTML
}
