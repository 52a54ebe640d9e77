package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(e Expr) {
	_ = Fprint(os.Stdout, e)
}

// Fprint writes a human-readable representation of a node to w, one node
// per line, children indented under their parent.
func Fprint(w io.Writer, e Expr) error {
	return printLevel(w, e, 0)
}

func printLevel(w io.Writer, e Expr, level int) error {
	indent := strings.Repeat("    ", level)
	if e == nil {
		_, err := fmt.Fprintf(w, "%s:nil\n", indent)
		return err
	}

	var err error
	switch n := e.(type) {
	case *Number:
		_, err = fmt.Fprintf(w, "%s(%s): %d %v\n", indent, n.Type(), n.Value, n.Token)
	case *Symbol:
		_, err = fmt.Fprintf(w, "%s(%s): %q %v\n", indent, n.Type(), n.Name, n.Token)
	case *If:
		_, err = fmt.Fprintf(w, "%s(%s): [%v]\n", indent, n.Type(), n.Span())
	case *Define:
		_, err = fmt.Fprintf(w, "%s(%s): [%v] name=%v\n", indent, n.Type(), n.Span(), n.Name)
	case *Call:
		_, err = fmt.Fprintf(w, "%s(%s): [%v] callee=%v\n", indent, n.Type(), n.Span(), n.Callee)
	default:
		panic("unknown node type")
	}
	if err != nil {
		return err
	}

	for _, child := range Children(e) {
		if err := printLevel(w, child, level+1); err != nil {
			return err
		}
	}
	return nil
}

// Encode transforms a node into its canonical text representation
func Encode(e Expr) []byte {
	return []byte(encodeNode(e))
}

func encodeNode(e Expr) string {
	if e == nil {
		return ":nil"
	}
	switch n := e.(type) {
	case *Number:
		return fmt.Sprintf("%d", n.Value)

	case *Symbol:
		return n.Name

	case *If:
		return fmt.Sprintf("(%s %s %s %s)", n.Keyword.Text(), encodeNode(n.Cond), encodeNode(n.Then), encodeNode(n.Else))

	case *Define:
		return fmt.Sprintf("(%s %s %s)", n.Keyword.Text(), n.Name.Text(), encodeNode(n.Value))

	case *Call:
		nodes := []string{n.Callee.Text()}
		for i := range n.Args {
			nodes = append(nodes, encodeNode(n.Args[i]))
		}
		return fmt.Sprintf("(%s)", strings.Join(nodes, " "))
	}

	panic("unknown node type")
}
