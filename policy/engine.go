// Package policy evaluates mutation policy for card collections.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.collection_policy.decision"),
		rego.Module("collection_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate checks whether a collection mutation is allowed.
// Input is a map with keys: action (delete, updateOrder, updateName) and
// collection (id, demo, owner_user_id).
// Returns: decision (allow, deny), error.
func (e *Engine) Evaluate(ctx context.Context, input interface{}) (string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		// The policy defines a default; an empty result means no rule fired.
		return "allow", nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}

	return "allow", nil
}

// DefaultPolicy protects seeded demo collections from every mutation.
const DefaultPolicy = `
package collection_policy

default decision = "allow"

decision = "deny" {
	input.collection.demo == true
	mutations := {"delete", "updateOrder", "updateName"}
	mutations[input.action]
}
`
