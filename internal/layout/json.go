package layout

import (
	"encoding/json"
	"fmt"
)

func marshalKind(kind Kind, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	head, err := json.Marshal(kind)
	if err != nil {
		return nil, err
	}
	if string(body) == "{}" {
		return []byte(`{"kind":` + string(head) + `}`), nil
	}
	out := make([]byte, 0, len(body)+len(head)+9)
	out = append(out, `{"kind":`...)
	out = append(out, head...)
	out = append(out, ',')
	return append(out, body[1:]...), nil
}

func (v *View) MarshalJSON() ([]byte, error) {
	type plain View
	return marshalKind(KindView, (*plain)(v))
}

func (t *Text) MarshalJSON() ([]byte, error) {
	type plain Text
	return marshalKind(KindText, (*plain)(t))
}

func (l *Link) MarshalJSON() ([]byte, error) {
	type plain Link
	return marshalKind(KindLink, (*plain)(l))
}

func (i *Image) MarshalJSON() ([]byte, error) {
	type plain Image
	return marshalKind(KindImage, (*plain)(i))
}

func (t *Table) MarshalJSON() ([]byte, error) {
	type plain Table
	return marshalKind(KindTable, (*plain)(t))
}

func (p *PageBreak) MarshalJSON() ([]byte, error) {
	return marshalKind(KindPageBreak, struct{}{})
}

// UnmarshalNode decodes one node using its "kind" field
func UnmarshalNode(b []byte) (Node, error) {
	var head struct {
		Kind Kind `json:"kind"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return nil, fmt.Errorf("failed to read node kind: %w", err)
	}

	var n Node
	switch head.Kind {
	case KindView:
		n = &View{}
	case KindText:
		n = &Text{}
	case KindLink:
		n = &Link{}
	case KindImage:
		n = &Image{}
	case KindTable:
		n = &Table{}
	case KindPageBreak:
		return &PageBreak{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, head.Kind)
	}
	if err := json.Unmarshal(b, n); err != nil {
		return nil, fmt.Errorf("failed to decode %s node: %w", head.Kind, err)
	}
	return n, nil
}

func (ns *Nodes) UnmarshalJSON(b []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil {
		return err
	}
	out := make(Nodes, 0, len(raws))
	for _, raw := range raws {
		n, err := UnmarshalNode(raw)
		if err != nil {
			return err
		}
		out = append(out, n)
	}
	*ns = out
	return nil
}
