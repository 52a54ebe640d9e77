package main

import (
	"log"

	"github.com/xiam/spanlisp/ast"
	"github.com/xiam/spanlisp/parser"
)

func main() {
	input := `(define answer (if (= a b) (f 1 2 3) 42))`

	root, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(root)
}
