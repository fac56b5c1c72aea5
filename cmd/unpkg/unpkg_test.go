package main

import (
	"testing"

	"github.com/tidwall/gjson"
)

const sampleMeta = `{
	"package": "alpinejs",
	"version": "3.12.0",
	"files": [
		{"path": "/package.json", "type": "application/json", "integrity": "sha384-a"},
		{"path": "/dist", "type": "directory", "files": [
			{"path": "/dist/cdn.min.js", "type": "application/javascript; charset=utf-8", "integrity": "sha384-b"},
			{"path": "/dist/style.css", "type": "text/css", "integrity": "sha384-c"}
		]}
	]
}`

func TestFindFile(t *testing.T) {
	meta, ok := findFile(gjson.Parse(sampleMeta), `/dist/cdn.min.js`)
	if !ok {
		t.Fatal(`file not found`)
	}
	if meta.Integrity != `sha384-b` || meta.Type != `application/javascript; charset=utf-8` {
		t.Errorf(`found %+v`, meta)
	}
	if _, ok := findFile(gjson.Parse(sampleMeta), `/missing.js`); ok {
		t.Error(`found a missing file`)
	}
}

func TestDependencyTag(t *testing.T) {
	meta, _ := findFile(gjson.Parse(sampleMeta), `/dist/cdn.min.js`)

	opt.Defer = true
	defer func() { opt.Defer = false }()
	got, err := dependencyTag(`https://unpkg.com/alpinejs@3.12.0/dist/cdn.min.js`, meta)
	if err != nil {
		t.Fatal(err)
	}
	expect := `<script crossorigin="anonymous" defer="defer" integrity="sha384-b" referrerpolicy="no-referrer" ` +
		`src="https://unpkg.com/alpinejs@3.12.0/dist/cdn.min.js"></script>`
	if string(got) != expect {
		t.Errorf("script\n got: %s\nwant: %s", got, expect)
	}

	meta, _ = findFile(gjson.Parse(sampleMeta), `/dist/style.css`)
	got, err = dependencyTag(`https://unpkg.com/alpinejs@3.12.0/dist/style.css`, meta)
	if err != nil {
		t.Fatal(err)
	}
	expect = `<link crossorigin="anonymous" href="https://unpkg.com/alpinejs@3.12.0/dist/style.css" ` +
		`integrity="sha384-c" referrerpolicy="no-referrer" rel="stylesheet">`
	if string(got) != expect {
		t.Errorf("stylesheet\n got: %s\nwant: %s", got, expect)
	}
}

func TestDependencyTagRejectsUnknownTypes(t *testing.T) {
	if _, err := dependencyTag(`x`, fileMeta{Type: `image/png`}); err == nil {
		t.Error(`expected error for image/png`)
	}
	if _, err := dependencyTag(`x`, fileMeta{}); err == nil {
		t.Error(`expected error for missing type`)
	}
}
