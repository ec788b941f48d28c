// Provides a minimal attributed tree for SVG (or any XML) documents,
// which can be loaded from disk, modified in place and written back.
// Contrary to svgraster, no SVG semantic is applied : names keep the
// prefix they were written with, and unknown elements are preserved.
package svgdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

var (
	// ErrNoElement is returned for a stream without any element.
	ErrNoElement = errors.New("svgdoc: no element found")
	// ErrMultipleRoots is returned when elements follow the closed root.
	ErrMultipleRoots = errors.New("svgdoc: more than one root element")
)

// Node is one of *Element, CharData, Comment or ProcInst
type Node interface {
	isNode()
}

// CharData is the (unescaped) text content of an element.
type CharData string

// Comment is the content of a <!-- --> block.
type Comment string

// ProcInst is a processing instruction found inside the root element.
type ProcInst struct {
	Target string
	Inst   string
}

// Element is a node of the document tree.
// Name.Space holds the raw prefix (such as "xlink"), not a namespace URL.
type Element struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []Node
}

func (*Element) isNode() {}
func (CharData) isNode() {}
func (Comment) isNode()  {}
func (ProcInst) isNode() {}

// Attr returns the value of the unprefixed attribute `name`.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr overwrites the unprefixed attribute `name`, keeping its position,
// or appends it if missing.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.Attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

// Elements returns the child elements, skipping text and comments.
func (e *Element) Elements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// SetFill sets the presentation fill of the document root.
// The color is written as given.
func SetFill(root *Element, color string) {
	root.SetAttr("fill", color)
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// Read parses the document from the given stream and returns its root.
// Content outside the root element (declaration, doctype, comments) is dropped.
func Read(stream io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	var (
		root  *Element
		stack []*Element
	)
	for {
		t, err := decoder.RawToken()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch tok := t.(type) {
		case xml.StartElement:
			el := &Element{Name: tok.Name, Attrs: append([]xml.Attr(nil), tok.Attr...)}
			if len(stack) == 0 {
				if root != nil {
					return nil, ErrMultipleRoots
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("svgdoc: unexpected end element </%s>", qualified(tok.Name))
			}
			top := stack[len(stack)-1]
			if top.Name != tok.Name {
				return nil, fmt.Errorf("svgdoc: element <%s> closed by </%s>", qualified(top.Name), qualified(tok.Name))
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(tok)) != "" {
					return nil, errors.New("svgdoc: text outside of the root element")
				}
				continue
			}
			top := stack[len(stack)-1]
			top.Children = append(top.Children, CharData(tok))
		case xml.Comment:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.Children = append(top.Children, Comment(tok))
			}
		case xml.ProcInst:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.Children = append(top.Children, ProcInst{Target: tok.Target, Inst: string(tok.Inst)})
			}
		}
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("svgdoc: element <%s> is not closed", qualified(stack[len(stack)-1].Name))
	}
	if root == nil {
		return nil, ErrNoElement
	}
	return root, nil
}

// ReadFile reads the document stored in the named file.
func ReadFile(file string) (*Element, error) {
	fin, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	root, err := Read(fin)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}
	return root, nil
}
