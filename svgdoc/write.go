package svgdoc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;",
		"\n", "&#xA;", "\r", "&#xD;", "\t", "&#x9;")
)

// WriteTo serializes the element and its descendants, preceded by
// an XML declaration.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: bufio.NewWriter(w)}
	cw.WriteString(header)
	e.write(cw)
	if cw.err != nil {
		return cw.n, cw.err
	}
	err := cw.w.Flush()
	return cw.n, err
}

func (e *Element) write(w *countWriter) {
	name := qualified(e.Name)
	w.WriteString("<" + name)
	for _, a := range e.Attrs {
		w.WriteString(" " + qualified(a.Name) + `="`)
		attrEscaper.WriteString(w, a.Value)
		w.WriteString(`"`)
	}
	if len(e.Children) == 0 {
		w.WriteString("/>")
		return
	}
	w.WriteString(">")
	for _, child := range e.Children {
		switch child := child.(type) {
		case *Element:
			child.write(w)
		case CharData:
			textEscaper.WriteString(w, string(child))
		case Comment:
			w.WriteString("<!--" + string(child) + "-->")
		case ProcInst:
			if child.Inst == "" {
				w.WriteString("<?" + child.Target + "?>")
			} else {
				w.WriteString("<?" + child.Target + " " + child.Inst + "?>")
			}
		}
	}
	w.WriteString("</" + name + ">")
}

// WriteFile serializes the document to `file`, creating
// the parent directories if needed. An existing file is truncated.
func WriteFile(root *Element, file string) error {
	if err := os.MkdirAll(filepath.Dir(file), os.ModePerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", file, err)
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if _, err = root.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", file, err)
	}
	return f.Close()
}

// countWriter keeps the first error, so that
// write calls may be chained without checks.
type countWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (cw *countWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
	return n, err
}

func (cw *countWriter) WriteString(s string) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.WriteString(s)
	cw.n += int64(n)
	cw.err = err
	return n, err
}
