package evaluator

import "errors"

var ErrProviderNil = errors.New("data provider is nil")
