package data

// Types names the kind of value an evaluator returned.
type Types string

const (
	BOOL     Types = "bool"
	ERROR    Types = "error"
	FUNCTION Types = "function"
	INT      Types = "int"
	FLOAT    Types = "float"
	MAP      Types = "map"
	STRING   Types = "string"
	NONE     Types = "none"
	LIST     Types = "list"
	TUPLE    Types = "tuple"
	SET      Types = "set"
)
