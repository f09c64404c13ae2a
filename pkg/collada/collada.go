// Package collada exposes a parsed COLLADA (.dae) document as a generic
// element tree.
//
// COLLADA repeats child elements freely: a library may hold one geometry or
// fifty, a joint may have no children, one, or many. Every accessor in this
// package therefore returns children as a slice, so callers never branch on
// cardinality.
package collada

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/pierrec/lz4/v4"

	"github.com/Faultbox/daexport/pkg/encoding"
)

// Document errors.
var (
	ErrInputNotFound  = errors.New("input file not found")
	ErrNotCollada     = errors.New("not a COLLADA document")
	ErrMalformedArray = errors.New("malformed numeric array")
)

// RootTag is the tag of a COLLADA document's root element.
const RootTag = "COLLADA"

// CompressedSuffix marks inputs stored as an lz4 frame.
const CompressedSuffix = ".lz4"

// Document is a parsed COLLADA document.
type Document struct {
	root *Node
}

// Open reads and parses the COLLADA file at path. Files ending in ".lz4"
// are decompressed while reading.
func Open(path string) (*Document, error) {
	if err := CheckInput(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(strings.ToLower(path), CompressedSuffix) {
		r = lz4.NewReader(file)
	}

	doc, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// CheckInput reports ErrInputNotFound unless path names a regular file.
func CheckInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInputNotFound, path)
	}
	return nil
}

// Parse parses a COLLADA document from r.
func Parse(r io.Reader) (*Document, error) {
	tree := etree.NewDocument()
	tree.ReadSettings.CharsetReader = encoding.CharsetReader
	if _, err := tree.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("reading xml: %w", err)
	}

	root := tree.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: empty document", ErrNotCollada)
	}
	if root.Tag != RootTag {
		return nil, fmt.Errorf("%w: root element is <%s>", ErrNotCollada, root.Tag)
	}
	return &Document{root: &Node{el: root}}, nil
}

// ParseString parses a COLLADA document held in memory.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Root returns the <COLLADA> element.
func (d *Document) Root() *Node {
	if d == nil {
		return nil
	}
	return d.root
}

// Library returns the items of a top-level library, e.g.
// Library("library_geometries", "geometry"). A missing library yields nil.
func (d *Document) Library(library, item string) []*Node {
	return d.Root().Path(library, item)
}

// HasLibrary reports whether the document carries the named library element.
func (d *Document) HasLibrary(library string) bool {
	return d.Root().Child(library) != nil
}
