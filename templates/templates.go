package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path"
	"regexp"
	"strings"
	"sync"

	"github.com/tdewolff/minify"
	"golang.org/x/sync/singleflight"

	"github.com/ethpandaops/getgas/utils"
)

// Files holds the page templates. A page is parsed from a list of files, the layout first.
//
//go:embed *
var Files embed.FS

var (
	templateCache sync.Map
	templateLoads singleflight.Group

	minifier       = newMinifier()
	minifyNewlines = regexp.MustCompile(`([ \t]+)?[\r\n]+`)
	minifySpaces   = regexp.MustCompile(`([ \t])[ \t]+`)
)

// GetTemplate returns the template set parsed from the given files. Sets are parsed once and
// cached, in debug mode they are read from the templates directory on every call.
func GetTemplate(files ...string) *template.Template {
	if utils.Config.Frontend.Debug {
		return template.Must(parseTemplateSet(os.DirFS("templates"), files))
	}

	key := strings.Join(files, "-")
	if cached, ok := templateCache.Load(key); ok {
		return cached.(*template.Template)
	}

	// concurrent first requests of a page share one parse
	loaded, err, _ := templateLoads.Do(key, func() (interface{}, error) {
		tmpl, err := parseTemplateSet(Files, files)
		if err != nil {
			return nil, err
		}
		templateCache.Store(key, tmpl)
		return tmpl, nil
	})
	if err != nil {
		panic(err)
	}
	return loaded.(*template.Template)
}

func parseTemplateSet(fsys fs.FS, files []string) (*template.Template, error) {
	set := template.New(strings.Join(files, "-")).Funcs(utils.GetTemplateFuncs())
	for _, file := range files {
		content, err := readTemplateFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("error reading template %v: %w", file, err)
		}
		if _, err := set.New(path.Base(file)).Parse(content); err != nil {
			return nil, fmt.Errorf("error parsing template %v: %w", file, err)
		}
	}
	return set, nil
}

func readTemplateFile(fsys fs.FS, file string) (string, error) {
	content, err := fs.ReadFile(fsys, file)
	if err != nil {
		return "", err
	}
	if utils.Config.Frontend.Minify {
		content, err = minifier.Bytes("text/html", content)
		if err != nil {
			return "", err
		}
	}
	return string(content), nil
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/html", minifyTemplate)
	return m
}

// minifyTemplate joins lines and collapses blanks. Template actions pass through untouched, a
// full html minifier would break them.
func minifyTemplate(_ *minify.M, w io.Writer, r io.Reader, _ map[string]string) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	content = minifyNewlines.ReplaceAll(content, nil)
	content = minifySpaces.ReplaceAll(content, []byte(" "))
	_, err = w.Write(content)
	return err
}

// GetTemplateNames lists all embedded template files.
func GetTemplateNames() []string {
	names := []string{}
	err := fs.WalkDir(Files, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && strings.HasSuffix(name, ".html") {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil
	}
	return names
}
