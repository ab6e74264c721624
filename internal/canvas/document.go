// Package canvas reads JSON Canvas documents and provides the pannable
// viewport the terminal host renders them through.
package canvas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	// Extension is the file extension of canvas documents.
	Extension = ".canvas"

	maxDocumentSize = 10 * 1024 * 1024 // 10MB limit to prevent memory exhaustion
)

// ErrNotCanvas is returned when a path does not name a canvas document.
var ErrNotCanvas = errors.New("not a canvas document")

// NodeType is the kind of a canvas node.
type NodeType string

const (
	NodeText  NodeType = "text"
	NodeFile  NodeType = "file"
	NodeLink  NodeType = "link"
	NodeGroup NodeType = "group"
)

// Node is a positioned card on the canvas, in canvas units.
type Node struct {
	ID     string   `json:"id"`
	Type   NodeType `json:"type"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	Color  string   `json:"color,omitempty"`
	Text   string   `json:"text,omitempty"`
	File   string   `json:"file,omitempty"`
	URL    string   `json:"url,omitempty"`
	Label  string   `json:"label,omitempty"`
}

// Title is the single line shown for the node.
func (n Node) Title() string {
	switch n.Type {
	case NodeFile:
		return filepath.Base(n.File)
	case NodeLink:
		return n.URL
	case NodeGroup:
		return n.Label
	default:
		line, _, _ := strings.Cut(strings.TrimSpace(n.Text), "\n")
		return line
	}
}

// Edge connects two nodes.
type Edge struct {
	ID       string `json:"id"`
	FromNode string `json:"fromNode"`
	ToNode   string `json:"toNode"`
	Label    string `json:"label,omitempty"`
}

// Document is a parsed canvas file.
type Document struct {
	Path  string `json:"-"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Load reads and parses the canvas document at path.
func Load(path string) (*Document, error) {
	if !strings.EqualFold(filepath.Ext(path), Extension) {
		return nil, fmt.Errorf("%w: %s", ErrNotCanvas, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxDocumentSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxDocumentSize {
		return nil, fmt.Errorf("canvas file too large: %s (max %d bytes)", path, maxDocumentSize)
	}
	return Parse(path, data)
}

// Parse decodes canvas JSON. An empty file is an empty canvas.
func Parse(path string, data []byte) (*Document, error) {
	doc := &Document{Path: path}
	if len(strings.TrimSpace(string(data))) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parsing canvas %s: %w", path, err)
	}
	return doc, nil
}

// Node returns the node with id.
func (d *Document) Node(id string) (Node, bool) {
	for _, n := range d.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
