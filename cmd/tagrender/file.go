package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/swdunlop/tagkit-go/tag"
)

func fileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "file PATH",
		Short: "Render tags described by a YAML document",
		Long: `Render each tag in a YAML (or JSON) document on its own line.  Use - to read stdin.

The document is a list of tags:

  - name: p
    content: Hello world!
  - name: input
    void: true
    html4: true
    attrs: {type: checkbox, checked: true}
  - name: ul
    children:
      - {name: li, content: one}
      - {name: li, content: two}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, spec := range doc {
				element, err := spec.element()
				if err != nil {
					return fmt.Errorf(`%v: tag %v: %w`, args[0], i, err)
				}
				if _, err := fmt.Fprintln(out, element.HTML()); err != nil {
					return err
				}
			}
			log.Debug().Str(`path`, args[0]).Int(`tags`, len(doc)).Msg(`rendered document`)
			return nil
		},
	}
}

// tagSpec describes a tag in a YAML document.
type tagSpec struct {
	Name     string         `yaml:"name"`
	Content  string         `yaml:"content,omitempty"`
	Attrs    map[string]any `yaml:"attrs,omitempty"`
	Void     bool           `yaml:"void,omitempty"`
	HTML4    bool           `yaml:"html4,omitempty"`
	Raw      bool           `yaml:"raw,omitempty"`
	Children []tagSpec      `yaml:"children,omitempty"`
}

func (spec *tagSpec) element() (tag.Tag, error) {
	if spec.Name == `` {
		return tag.Tag{}, fmt.Errorf(`missing name`)
	}
	options := []tag.Option{tag.Attrs(spec.Attrs)}
	if spec.Void {
		if spec.Content != `` || len(spec.Children) > 0 {
			return tag.Tag{}, fmt.Errorf(`void tag %q cannot have content`, spec.Name)
		}
		options = append(options, tag.Void(styleOf(spec.HTML4)))
	}
	if spec.Raw {
		options = append(options, tag.Raw())
	}
	if spec.Content != `` {
		options = append(options, tag.Text(spec.Content))
	}
	for i := range spec.Children {
		child, err := spec.Children[i].element()
		if err != nil {
			return tag.Tag{}, fmt.Errorf(`%v child %v: %w`, spec.Name, i, err)
		}
		options = append(options, tag.Content(child.HTML()))
	}
	return tag.New(spec.Name, options...), nil
}

func readDocument(stdin io.Reader, path string) ([]tagSpec, error) {
	var (
		data []byte
		err  error
	)
	if path == `-` {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf(`could not read %v: %w`, path, err)
	}
	var doc []tagSpec
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf(`could not parse %v: %w`, path, err)
	}
	return doc, nil
}
