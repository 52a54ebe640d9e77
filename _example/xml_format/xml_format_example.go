package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/spanlisp/ast"
	"github.com/xiam/spanlisp/parser"
)

func printTree(node ast.Expr) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node ast.Expr, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.Type().IsForm() {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		for _, child := range ast.Children(node) {
			printIndentedTree(child, indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%s</%s>\n", indent, node.Type(), ast.Encode(node), node.Type())
}

func main() {
	input := `(define answer (if (= a b) (f 1 2 3) 42))`

	root, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(root)
}
