package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"

	"xdao.co/hashes/algorithm"
	"xdao.co/hashes/digest"
)

const bytesPerRow = 8

type entry struct {
	Identifier string
	TypeName   string
	Hex        string
	Multicodec uint64
	Rows       []string
}

type family struct {
	Family     string
	Enabled    string
	Disabled   string
	Vector     string
	Algorithms []entry
}

// file is one generated output, already gofmt'ed.
type file struct {
	Name string
	Body []byte
}

var templates = template.Must(template.New("hashgen").Funcs(sprig.TxtFuncMap()).Parse(`{{ define "family" }}` + familyTemplate + `{{ end }}` +
	`{{ define "disabled" }}` + disabledTemplate + `{{ end }}` +
	`{{ define "test" }}` + testTemplate + `{{ end }}` +
	`{{ define "commands" }}` + commandsTemplate + `{{ end }}`))

// buildFamilies computes the example digests of every compiled-in algorithm
// and groups them by family. Every known family must be compiled in, otherwise
// its enabled unit could not be generated.
func buildFamilies(ds []algorithm.Descriptor, known []string) ([]family, error) {
	byFamily := map[string][]entry{}
	seenID := map[string]string{}
	seenType := map[string]string{}
	for _, d := range ds {
		if prev, ok := seenID[d.Identifier]; ok {
			return nil, fmt.Errorf("duplicate identifier %q (%s and %s)", d.Identifier, prev, d.TypeName)
		}
		seenID[d.Identifier] = d.TypeName
		if prev, ok := seenType[d.TypeName]; ok {
			return nil, fmt.Errorf("duplicate type name %s (%s and %s)", d.TypeName, prev, d.Identifier)
		}
		seenType[d.TypeName] = d.Identifier

		sum := digest.SumWith(d.New(), []byte(digest.TestVector))
		if len(sum) != d.Size {
			return nil, fmt.Errorf("%s: digest is %d bytes, descriptor says %d", d.Identifier, len(sum), d.Size)
		}
		byFamily[d.Family] = append(byFamily[d.Family], entry{
			Identifier: d.Identifier,
			TypeName:   d.TypeName,
			Hex:        digest.FormatHex(sum),
			Multicodec: d.Multicodec,
			Rows:       byteRows(sum),
		})
	}

	out := make([]family, 0, len(known))
	for _, name := range known {
		es, ok := byFamily[name]
		if !ok {
			return nil, fmt.Errorf("family %q is not compiled into hashgen; run it with every family enabled", name)
		}
		delete(byFamily, name)
		sort.Slice(es, func(i, j int) bool { return es[i].Identifier < es[j].Identifier })
		enabled := algorithm.BuildConstraint(name)
		out = append(out, family{
			Family:     name,
			Enabled:    enabled,
			Disabled:   negate(enabled),
			Vector:     digest.TestVector,
			Algorithms: es,
		})
	}
	if len(byFamily) > 0 {
		extra := make([]string, 0, len(byFamily))
		for name := range byFamily {
			extra = append(extra, name)
		}
		sort.Strings(extra)
		return nil, fmt.Errorf("families %v are missing from algorithm.AllFamilies", extra)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Family < out[j].Family })
	return out, nil
}

func negate(constraint string) string {
	if strings.HasPrefix(constraint, "!") {
		return constraint[1:]
	}
	return "!" + constraint
}

func byteRows(b []byte) []string {
	var rows []string
	for len(b) > 0 {
		n := bytesPerRow
		if n > len(b) {
			n = len(b)
		}
		parts := make([]string, n)
		for i, c := range b[:n] {
			parts[i] = fmt.Sprintf("0x%02x,", c)
		}
		rows = append(rows, strings.Join(parts, " "))
		b = b[n:]
	}
	return rows
}

// render produces every generated file. The output depends only on the
// algorithm set, so repeated runs are byte-identical.
func render(fams []family) ([]file, error) {
	var files []file
	names := make([]string, 0, len(fams))
	for _, f := range fams {
		names = append(names, f.Family)
		for _, unit := range []struct{ tmpl, name string }{
			{"family", "zz_generated_" + f.Family + ".go"},
			{"disabled", "zz_generated_" + f.Family + "_disabled.go"},
			{"test", "zz_generated_" + f.Family + "_test.go"},
		} {
			b, err := execute(unit.tmpl, f)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", unit.name, err)
			}
			files = append(files, file{Name: unit.name, Body: b})
		}
	}
	b, err := execute("commands", struct{ Families []string }{names})
	if err != nil {
		return nil, fmt.Errorf("zz_generated_commands.go: %w", err)
	}
	files = append(files, file{Name: "zz_generated_commands.go", Body: b})
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

func execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt: %w\n%s", err, buf.Bytes())
	}
	return out, nil
}

// write syncs dir with files: changed files are rewritten and generated files
// that are no longer produced are removed. In check mode nothing is written
// and the names of out-of-date files are returned.
func write(dir string, files []file, check bool) ([]string, error) {
	var stale []string
	want := map[string]bool{}
	for _, f := range files {
		want[f.Name] = true
		path := filepath.Join(dir, f.Name)
		cur, err := os.ReadFile(path)
		if err == nil && bytes.Equal(cur, f.Body) {
			continue
		}
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		stale = append(stale, f.Name)
		if check {
			continue
		}
		if err := os.WriteFile(path, f.Body, 0o644); err != nil {
			return nil, err
		}
	}

	existing, err := filepath.Glob(filepath.Join(dir, "zz_generated_*.go"))
	if err != nil {
		return nil, err
	}
	for _, path := range existing {
		name := filepath.Base(path)
		if want[name] {
			continue
		}
		stale = append(stale, name)
		if check {
			continue
		}
		if err := os.Remove(path); err != nil {
			return nil, err
		}
	}
	sort.Strings(stale)
	return stale, nil
}
