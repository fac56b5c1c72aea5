package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errs bytes.Buffer
	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	err := cmd.Execute()
	return out.String(), err
}

func TestTagCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{`Paragraph`, []string{`tag`, `p`, `Hello world!`}, "<p>Hello world!</p>\n"},
		{`Escaped`, []string{`tag`, `p`, `a & b`}, "<p>a &amp; b</p>\n"},
		{`Raw`, []string{`tag`, `p`, `<b>x</b>`, `--raw`}, "<p><b>x</b></p>\n"},
		{`Empty`, []string{`tag`, `div`}, "<div></div>\n"},
		{`Void`, []string{`tag`, `br`, `--void`}, "<br />\n"},
		{`VoidHTML4`, []string{`tag`, `br`, `--void`, `--html4`}, "<br>\n"},
		{
			`Attrs`,
			[]string{`tag`, `input`, `--void`, `--attrs`, `{"type":"text","disabled":true,"readonly":false}`},
			"<input disabled=\"disabled\" type=\"text\" />\n",
		},
		{
			`Select`,
			[]string{`tag`, `select`, `--attrs`, `{"multiple":true,"class":["a","b"]}`},
			"<select class=\"a b\" multiple=\"multiple\"></select>\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, ``, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTagCmdErrors(t *testing.T) {
	for _, args := range [][]string{
		{`tag`},
		{`tag`, `br`, `x`, `--void`},
		{`tag`, `p`, `--attrs`, `[1]`},
		{`tag`, `p`, `--attrs`, `{`},
	} {
		if _, err := run(t, ``, args...); err == nil {
			t.Errorf(`expected error for %q`, args)
		}
	}
}

func TestScriptsCmd(t *testing.T) {
	got, err := run(t, ``, `scripts`, `app`, `https://example.com/x.js`, `--root`, `/js`, `--attrs`, `{"defer":true}`)
	if err != nil {
		t.Fatal(err)
	}
	expected := `<script defer="defer" src="/js/app.js" type="text/javascript"></script>` + "\n" +
		`<script defer="defer" src="https://example.com/x.js" type="text/javascript"></script>` + "\n"
	if got != expected {
		t.Errorf("got %q, want %q", got, expected)
	}
}

const sampleDocument = `
- name: p
  content: Hello & welcome
- name: input
  void: true
  html4: true
  attrs: {type: checkbox, checked: true, disabled: false}
- name: ul
  attrs:
    class: [menu, top]
  children:
    - {name: li, content: one}
    - {name: li, content: <two>, raw: true}
`

func TestFileCmd(t *testing.T) {
	expected := "<p>Hello &amp; welcome</p>\n" +
		"<input checked=\"checked\" type=\"checkbox\">\n" +
		"<ul class=\"menu top\"><li>one</li><li><two></li></ul>\n"

	got, err := run(t, sampleDocument, `file`, `-`)
	if err != nil {
		t.Fatal(err)
	}
	if got != expected {
		t.Errorf("stdin: got %q, want %q", got, expected)
	}

	path := filepath.Join(t.TempDir(), `page.yaml`)
	if err := os.WriteFile(path, []byte(sampleDocument), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = run(t, ``, `file`, path)
	if err != nil {
		t.Fatal(err)
	}
	if got != expected {
		t.Errorf("file: got %q, want %q", got, expected)
	}
}

func TestFileCmdErrors(t *testing.T) {
	for name, doc := range map[string]string{
		`NoName`:      `[{content: x}]`,
		`VoidContent`: `[{name: br, void: true, content: x}]`,
		`NestedName`:  `[{name: ul, children: [{content: x}]}]`,
		`NotAList`:    `name: p`,
	} {
		if _, err := run(t, doc, `file`, `-`); err == nil {
			t.Errorf(`%v: expected error`, name)
		}
	}
	if _, err := run(t, ``, `file`, filepath.Join(t.TempDir(), `missing.yaml`)); err == nil {
		t.Error(`expected error for missing file`)
	}
}
