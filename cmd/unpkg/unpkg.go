package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/swdunlop/tagkit-go"
	"github.com/swdunlop/tagkit-go/asset"
	"github.com/swdunlop/tagkit-go/tag"
)

var opt struct {
	Defer bool
	Async bool
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	flag.Usage = usage
	flag.BoolVar(&opt.Defer, `defer`, false, `use defer attribute for <script> tags`)
	flag.BoolVar(&opt.Async, `async`, false, `use async attribute for <script> tags`)
	flag.Parse()

	failed := false
	for _, path := range flag.Args() {
		dep, err := resolve(path)
		if err != nil {
			log.Error().Err(err).Str(`path`, path).Msg(`could not resolve`)
			failed = true
			continue
		}
		fmt.Println(dep)
	}
	if failed {
		os.Exit(1)
	}
}

func usage() {
	os.Stderr.WriteString(`USAGE: unpkg [-defer] [-async] <path>...
FLAGS:
  -defer  Use defer attribute for <script> tags
  -async  Use async attribute for <script> tags

This utility queries unpkg.com for dependencies and follows redirects to the full URL then outputs a script or link tag
with SRI information and disabled referrer policy.

  unpkg alpinejs
  unpkg alpinejs@latest
  unpkg alpinejs@3.12.0
  unpkg alpinejs/dist/cdn.min.js
  unpkg alpinejs@latest/dist/cdn.min.js
`)
}

func resolve(path string) (html.HTML, error) {
	corrected, err := resolveUnpkgPath(path)
	if err != nil {
		return ``, err
	}
	if path != corrected {
		log.Debug().Str(`path`, path).Str(`corrected`, corrected).Msg(`redirected`)
		path = corrected
	}
	meta, err := fetchUnpkgMeta(path)
	if err != nil {
		return ``, err
	}
	return dependencyTag(`https://unpkg.com/`+path, meta)
}

// dependencyTag renders a script or stylesheet tag for the resource described by meta.
func dependencyTag(url string, meta fileMeta) (html.HTML, error) {
	sri := html.Attrs{
		`integrity`:      meta.Integrity,
		`crossorigin`:    `anonymous`,
		`referrerpolicy`: `no-referrer`,
	}
	contentType := strings.SplitN(meta.Type, `;`, 2)[0]
	switch contentType {
	case `text/javascript`, `application/javascript`:
		sri[`type`] = nil
		sri[`defer`] = opt.Defer
		sri[`async`] = opt.Async
		return asset.JavascriptSrcTag(url, sri), nil
	case `text/css`:
		return tag.New(`link`, tag.Void(html.HTML4), tag.Attr(`rel`, `stylesheet`), tag.Attr(`href`, url), tag.Attrs(sri)).HTML(), nil
	case ``:
		return ``, fmt.Errorf(`no content type; Unpkg has changed its schema again?`)
	default:
		return ``, fmt.Errorf(`unknown content type %q`, contentType)
	}
}

// resolveUnpkgPath lets unpkg redirect us to the full path, which includes the package, path and version.
func resolveUnpkgPath(path string) (string, error) {
	rsp, err := http.Get(`https://unpkg.com/` + path)
	if err != nil {
		return path, fmt.Errorf(`could not resolve %q: %w`, path, err)
	}
	defer rsp.Body.Close()
	defer io.Copy(io.Discard, rsp.Body)
	return strings.TrimPrefix(rsp.Request.URL.Path, `/`), nil
}

func fetchUnpkgMeta(path string) (fileMeta, error) {
	m := rxResource.FindStringSubmatch(path)
	if m == nil {
		return fileMeta{}, fmt.Errorf(`could not parse %q into package, file and version`, path)
	}
	pkg, filePath := m[1], m[3]

	url := `https://unpkg.com/` + pkg + `?meta`
	js, err := getJSON(url)
	if err != nil {
		return fileMeta{}, err
	}
	meta, ok := findFile(gjson.ParseBytes(js), filePath)
	if !ok {
		return fileMeta{}, fmt.Errorf(`could not find path %q in %v`, filePath, url)
	}
	return meta, nil
}

var rxResource = regexp.MustCompile(`^(@?[^@/]+)(@[^/@]+)?(/.*)$`)

type fileMeta struct {
	Path      string
	Type      string
	Integrity string
}

// findFile searches unpkg metadata for a file, descending into directory listings.
func findFile(meta gjson.Result, filePath string) (fileMeta, bool) {
	var found fileMeta
	var ok bool
	meta.Get(`files`).ForEach(func(_, file gjson.Result) bool {
		if file.Get(`path`).String() == filePath {
			found = fileMeta{
				Path:      filePath,
				Type:      file.Get(`type`).String(),
				Integrity: file.Get(`integrity`).String(),
			}
			ok = true
		} else if file.Get(`files`).Exists() {
			found, ok = findFile(file, filePath)
		}
		return !ok
	})
	return found, ok
}

func getJSON(url string) ([]byte, error) {
	rsp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rsp.Body.Close() }()
	if rsp.StatusCode != 200 {
		return nil, fmt.Errorf(`%v while fetching %v`, rsp.Status, url)
	}
	js, err := io.ReadAll(rsp.Body)
	if err != nil {
		return nil, fmt.Errorf(`could not read %v: %w`, url, err)
	}
	if !gjson.ValidBytes(js) {
		return nil, fmt.Errorf(`invalid JSON from %v`, url)
	}
	return js, nil
}
