package main

import (
	"log"
	"os"

	"github.com/xiam/edn/ast"
	"github.com/xiam/edn/parser"
)

func main() {
	input := `{:name "reader" :tags #{:a :b} :sizes [14 (15 16)] :sep \,}`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(os.Stdout, root)
}
