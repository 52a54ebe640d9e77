package ast

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Dump is a plain mirror of a syntax tree meant for serialization.
type Dump struct {
	Type     string    `json:"type" msgpack:"type"`
	Span     [2]uint32 `json:"span" msgpack:"span"`
	Text     string    `json:"text,omitempty" msgpack:"text,omitempty"`
	Value    *int64    `json:"value,omitempty" msgpack:"value,omitempty"`
	Children []*Dump   `json:"children,omitempty" msgpack:"children,omitempty"`
}

// NewDump converts a tree into its serializable mirror. Text holds the
// symbol name of leaves, the defined name of a define and the callee of a
// call.
func NewDump(e Expr) *Dump {
	if e == nil {
		return nil
	}

	span := e.Span()
	d := &Dump{
		Type: e.Type().String(),
		Span: [2]uint32{span.Start, span.End},
	}

	switch n := e.(type) {
	case *Number:
		v := n.Value
		d.Value = &v
		d.Text = n.Token.Text()
	case *Symbol:
		d.Text = n.Name
	case *Define:
		d.Text = n.Name.Text()
	case *Call:
		d.Text = n.Callee.Text()
	}

	for _, child := range Children(e) {
		d.Children = append(d.Children, NewDump(child))
	}
	return d
}

// EncodeJSON writes the trees to w as a JSON array.
func EncodeJSON(w io.Writer, exprs ...Expr) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dumps(exprs))
}

// EncodeMsgpack writes the trees to w as a msgpack array.
func EncodeMsgpack(w io.Writer, exprs ...Expr) error {
	return msgpack.NewEncoder(w).Encode(dumps(exprs))
}

// DecodeMsgpack reads back what EncodeMsgpack wrote.
func DecodeMsgpack(r io.Reader) ([]*Dump, error) {
	var out []*Dump
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func dumps(exprs []Expr) []*Dump {
	out := make([]*Dump, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, NewDump(e))
	}
	return out
}
