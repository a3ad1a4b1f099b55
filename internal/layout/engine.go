package layout

import (
	"errors"
	"fmt"
)

// Engine measures nodes into boxes
type Engine struct {
	measurer Measurer
}

// NewEngine creates a layout engine that measures with m
func NewEngine(m Measurer) *Engine {
	return &Engine{measurer: m}
}

// Layout measures n at the given outer width
func (e *Engine) Layout(n Node, width float64) (Box, error) {
	if e.measurer == nil {
		return nil, errors.New("layout engine has no measurer")
	}
	switch n := n.(type) {
	case *View:
		b := &BlockBox{Node: n, Style: n.Style, Direction: n.Direction, Width: width}
		var err error
		if n.Direction == Row {
			err = e.layoutRow(b, n)
		} else {
			err = e.layoutColumn(b, n.Children, n.Gap)
		}
		if err != nil {
			return nil, err
		}
		return b, nil
	case *Text:
		return e.layoutText(n, n.Content, width), nil
	case *Link:
		return e.layoutText(n, n.Content, width), nil
	case *Image:
		return e.layoutImage(n, width), nil
	case *Table:
		return e.layoutTable(n, width)
	case *PageBreak:
		return &BreakBox{Node: n}, nil
	case nil:
		return nil, fmt.Errorf("%w: nil node", ErrUnknownNode)
	default:
		return nil, fmt.Errorf("%w: %q (%T)", ErrUnknownNode, n.Kind(), n)
	}
}
