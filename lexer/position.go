package lexer

import (
	"fmt"
)

// Position represents the line and column of a character within the input
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
