package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable, indented dump of v to w
func Print(w io.Writer, v Value) {
	printLevel(w, v, 0)
}

func printLevel(w io.Writer, v Value, level int) {
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s)", indent, v.Type())

	switch v.Type() {

	case TypeList, TypeVector, TypeSet:
		items := v.Items()
		fmt.Fprintf(w, "[%d]\n", len(items))
		for i := range items {
			printLevel(w, items[i], level+1)
		}

	case TypeMap:
		entries := v.Entries()
		fmt.Fprintf(w, "[%d]\n", len(entries))
		for _, e := range entries {
			printLevel(w, e.Key, level+1)
			printLevel(w, e.Value, level+2)
		}

	default:
		fmt.Fprintf(w, ": %v\n", v)
	}
}
