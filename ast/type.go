package ast

// Type represents the type of a value
type Type uint16

// Value types
const (
	typeScalar     Type = 128
	typeCollection Type = 256
	typeSequential Type = 512

	TypeNil     = typeScalar | 1
	TypeBool    = typeScalar | 2
	TypeInt     = typeScalar | 4
	TypeChar    = typeScalar | 8
	TypeString  = typeScalar | 16
	TypeKeyword = typeScalar | 32

	TypeList   = typeCollection | typeSequential | 1
	TypeVector = typeCollection | typeSequential | 2
	TypeMap    = typeCollection | 4
	TypeSet    = typeCollection | 8
)

func (t Type) String() string {
	s, ok := typeName[t]
	if ok {
		return s
	}
	return ""
}

var typeName = map[Type]string{
	TypeNil:     "nil",
	TypeBool:    "bool",
	TypeInt:     "int",
	TypeChar:    "char",
	TypeString:  "string",
	TypeKeyword: "keyword",
	TypeList:    "list",
	TypeVector:  "vector",
	TypeMap:     "map",
	TypeSet:     "set",
}
