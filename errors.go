package calcscript

import "errors"

var (
	ErrEvaluatorNil      = errors.New("evaluator is nil")
	ErrNilResponse       = errors.New("evaluator returned no response")
	ErrNonNumericResult  = errors.New("result is not numeric")
	ErrUnsupportedEngine = errors.New("unsupported engine type")
)
