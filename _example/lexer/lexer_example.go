package main

import (
	"fmt"
	"log"

	"github.com/xiam/spanlisp/lexer"
)

func main() {
	input := `
		(define fib ; naive
			(if (< n 2)
				n
				(+ (fib (- n 1)) (fib (- n 2)))))
	`

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		span := tok.Span()
		fmt.Printf("token[%d] (kind: %v, start: %d, end: %d)\n\t-> %q\n\n", i, tok.Kind(), span.Start, span.End, tok.Text())
	}
}
