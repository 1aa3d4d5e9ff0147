package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/edn/ast"
	"github.com/xiam/edn/parser"
)

func printTree(v ast.Value) {
	printIndentedTree(v, 0)
}

func printIndentedTree(v ast.Value, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	switch v.Type() {
	case ast.TypeMap:
		fmt.Printf("%s<%s>\n", indent, v.Type())
		for _, e := range v.Entries() {
			fmt.Printf("%s  <entry>\n", indent)
			printIndentedTree(e.Key, indentationLevel+2)
			printIndentedTree(e.Value, indentationLevel+2)
			fmt.Printf("%s  </entry>\n", indent)
		}
		fmt.Printf("%s</%s>\n", indent, v.Type())
		return
	case ast.TypeList, ast.TypeVector, ast.TypeSet:
		fmt.Printf("%s<%s>\n", indent, v.Type())
		items := v.Items()
		for i := range items {
			printIndentedTree(items[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, v.Type())
		return
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, v.Type(), v, v.Type())
}

func main() {
	input := `(:fn_a {:b [89 :A :B [67 3]]} #{66 3 53 "Hello world!" \x})`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(root)
}
