package layout

import (
	"errors"
	"fmt"
)

// ErrUnknownNode is returned for node kinds the renderer does not draw
var ErrUnknownNode = errors.New("unknown layout node")

// Walk calls fn for n and every node below it, depth first
func Walk(n Node, fn func(Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	switch n := n.(type) {
	case *View:
		for _, c := range n.Children {
			if err := Walk(c, fn); err != nil {
				return err
			}
		}
	case *Table:
		for _, c := range n.Header.Cells {
			if err := walkCell(c, fn); err != nil {
				return err
			}
		}
		for _, r := range n.Rows {
			for _, c := range r.Cells {
				if err := walkCell(c, fn); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func walkCell(c TableCell, fn func(Node) error) error {
	for _, n := range c.Children {
		if err := Walk(n, fn); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that every node in doc is one the renderer knows how to draw
func Validate(doc *Document) error {
	if doc == nil {
		return errors.New("nil document")
	}
	for _, n := range doc.Children {
		if err := Walk(n, checkNode); err != nil {
			return err
		}
	}
	return nil
}

func checkNode(n Node) error {
	switch n := n.(type) {
	case nil:
		return fmt.Errorf("%w: nil node", ErrUnknownNode)
	case *View, *Text, *Link, *Image, *PageBreak:
		return nil
	case *Table:
		cols := len(n.Columns)
		if len(n.Header.Cells) > 0 && len(n.Header.Cells) != cols {
			return fmt.Errorf("table header has %d cells for %d columns", len(n.Header.Cells), cols)
		}
		for i, r := range n.Rows {
			if len(r.Cells) != cols {
				return fmt.Errorf("table row %d has %d cells for %d columns", i, len(r.Cells), cols)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q (%T)", ErrUnknownNode, n.Kind(), n)
	}
}
