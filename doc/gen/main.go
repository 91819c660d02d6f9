// Command gen writes doc/scancodes.md, the reference table of every scancode
// with its default description and the keys it produces without a layout
// query.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/go-theft-auto/window"
)

// row is one scancode of the table.
type row struct {
	Name        string
	Description string
	Fixed       string // key on every layout, empty if the layout decides
	US          string // key on a US layout
	Layout      bool   // description comes from the layout
}

var page = template.Must(template.New("scancodes").Parse(`# Scancodes

Generated by ` + "`go run ./doc/gen/`" + `. Do not edit.

A scancode names a physical key position. **Fixed** is the key the position
produces on every layout; where it is empty the layout decides, and **US**
shows what a US layout puts there. Descriptions marked *layout* are replaced
by the layout's own label when a backend can query it.

| Scancode | Description | Fixed | US |
|----------|-------------|-------|----|
{{- range .}}
| {{.Name}} | {{.Description}}{{if .Layout}} *layout*{{end}} | {{.Fixed}} | {{.US}} |
{{- end}}
`))

func main() {
	out := flag.String("o", filepath.Join("doc", "scancodes.md"), "output file")
	flag.Parse()

	if err := run(*out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out string) error {
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := page.Execute(w, rows()); err != nil {
		return fmt.Errorf("render %s: %w", out, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Printf("wrote %s (%d scancodes)\n", out, window.ScancodeCount)
	return nil
}

func rows() []row {
	rows := make([]row, 0, window.ScancodeCount)
	for s := window.Scancode(0); s < window.ScancodeCount; s++ {
		r := row{
			Name:        s.String(),
			Description: window.DefaultDescription(s),
			Layout:      !window.SkipLayoutDescription(s),
		}
		if k := window.FixedKey(s); k != window.KeyUnknown {
			r.Fixed = k.String()
		}
		if k := window.USKey(s); k != window.KeyUnknown {
			r.US = k.String()
		}
		rows = append(rows, r)
	}
	return rows
}
