package calc

// Operation is the closed set of arithmetic operations understood by Evaluate.
type Operation string

const (
	Inc  Operation = "inc"
	Dec  Operation = "dec"
	Add  Operation = "add"
	Sub  Operation = "sub"
	Mult Operation = "mult"
	Div  Operation = "div"
)

// Operations lists every recognized operation, unary ones first.
var Operations = []Operation{Inc, Dec, Add, Sub, Mult, Div}

// ParseOperation closes an operation tag received as text. Unknown tags return
// an *InvalidOperationError.
func ParseOperation(tag string) (Operation, error) {
	switch op := Operation(tag); op {
	case Inc, Dec, Add, Sub, Mult, Div:
		return op, nil
	default:
		return "", &InvalidOperationError{Operation: tag}
	}
}

// IsBinary reports whether the operation reads arg2.
func (o Operation) IsBinary() bool {
	switch o {
	case Add, Sub, Mult, Div:
		return true
	default:
		return false
	}
}

// Apply computes the operation. arg2 is ignored for inc and dec. Division
// follows IEEE-754, so dividing by zero yields ±Inf or NaN.
func (o Operation) Apply(arg1, arg2 float64) float64 {
	switch o {
	case Inc:
		return arg1 + 1
	case Dec:
		return arg1 - 1
	case Add:
		return arg1 + arg2
	case Sub:
		return arg1 - arg2
	case Mult:
		return arg1 * arg2
	case Div:
		return arg1 / arg2
	}
	panic("calc: Apply called on unparsed operation " + string(o))
}

func (o Operation) String() string {
	return string(o)
}
