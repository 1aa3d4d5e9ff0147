package lexer

// RuneClass represents a set of characters the reader treats alike
type RuneClass uint8

// List of rune classes
const (
	ClassInvalid    RuneClass = iota
	ClassWhitespace           // Space, tab, newline, vertical tab, form feed, carriage return
	ClassDigit                // Decimal digits: 0-9
	ClassWord                 // Letters ([a-zA-Z]), digits and underscore
	ClassMacro                // Characters that start a dedicated reader: " \ [ ( { #
	ClassTerminator           // Characters that end a bare token: " \ ( ) [ ] { }
)

var classValues = map[RuneClass][]rune{
	ClassWhitespace: []rune(" \t\n\v\f\r"),
	ClassDigit:      []rune("0123456789"),
	ClassWord:       []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"),
	ClassMacro:      []rune{'"', '\\', '[', '(', '{', '#'},
	ClassTerminator: []rune{'"', '\\', '(', ')', '[', ']', '{', '}'},
}

var classNames = map[RuneClass]string{
	ClassInvalid:    "invalid",
	ClassWhitespace: "whitespace",
	ClassDigit:      "digit",
	ClassWord:       "word",
	ClassMacro:      "macro",
	ClassTerminator: "terminator",
}

func (rc RuneClass) String() string {
	if v, ok := classNames[rc]; ok {
		return v
	}
	return classNames[ClassInvalid]
}

// Contains returns true if r belongs to the class
func (rc RuneClass) Contains(r rune) bool {
	for _, v := range classValues[rc] {
		if v == r {
			return true
		}
	}
	return false
}

func isClass(rc RuneClass) func(r rune) bool {
	return rc.Contains
}

var (
	// IsWhitespace reports whether r separates values
	IsWhitespace = isClass(ClassWhitespace)

	// IsDigit reports whether r is a decimal digit
	IsDigit = isClass(ClassDigit)

	// IsWord reports whether r may appear in a keyword name
	IsWord = isClass(ClassWord)

	// IsMacro reports whether r starts a dedicated reader
	IsMacro = isClass(ClassMacro)

	// IsTerminator reports whether r ends a bare token
	IsTerminator = isClass(ClassTerminator)
)
