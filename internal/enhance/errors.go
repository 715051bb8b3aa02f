package enhance

import "fmt"

// APICallError wraps a failed LLM call.
type APICallError struct {
	Operation string
	Err       error
}

func (e *APICallError) Error() string {
	return fmt.Sprintf("enhancement %s call failed: %v", e.Operation, e.Err)
}

func (e *APICallError) Unwrap() error {
	return e.Err
}

// ParseError indicates the LLM returned a response that could not be parsed
// or failed schema validation. The deterministic score is unaffected by this
// error; callers simply skip the enhancement.
type ParseError struct {
	Operation string
	Detail    string
	Err       error
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("failed to parse %s response: %s", e.Operation, e.Detail)
	}
	return fmt.Sprintf("failed to parse %s response: %v", e.Operation, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
