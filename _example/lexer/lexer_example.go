package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/xiam/edn/lexer"
)

func main() {
	input := `
		{:a [89 :A :B]
		 :b "Hello world!"}
	`

	src := lexer.NewSource(strings.NewReader(input))
	for {
		r, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal("src.Next:", err)
		}
		if lexer.IsWhitespace(r) {
			continue
		}

		fmt.Printf("%v\t%q\tmacro: %v\n", src.Pos(), r, lexer.IsMacro(r))
	}
}
