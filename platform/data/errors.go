package data

import "errors"

var (
	ErrContextKeyEmpty                = errors.New("context key is empty")
	ErrNoProvider                     = errors.New("no data provider available")
	ErrStaticProviderNoRuntimeUpdates = errors.New("static provider does not support adding data at runtime")
)
