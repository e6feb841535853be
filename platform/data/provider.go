package data

import (
	"context"
)

// Getter retrieves evaluation data from a context.
type Getter interface {
	GetData(ctx context.Context) (map[string]any, error)
}

// Setter prepares data for evaluation by enriching a context. Keeping this
// separate from evaluation lets a caller bind the invocation context in one
// place and evaluate it in another.
type Setter interface {
	// AddDataToContext stores the given maps in the returned context. Later
	// maps override earlier ones for duplicate keys.
	//
	// Example:
	//  enrichedCtx, err := evaluator.AddDataToContext(ctx, map[string]any{
	//      "arg1": 3, "arg2": 4, "operation": "add",
	//  })
	//  if err != nil {
	//      return err
	//  }
	//  result, err := evaluator.Eval(enrichedCtx)
	AddDataToContext(ctx context.Context, data ...map[string]any) (context.Context, error)
}

// Provider reads and writes evaluation data.
type Provider interface {
	Getter
	Setter
}
