package service

import (
	"errors"
	"fmt"
)

// API scopes accepted by the remote service, passed through unmodified.
const (
	ScopePersonal  = "GIGACHAT_API_PERS"
	ScopeCorporate = "GIGACHAT_API_CORP"
	ScopeB2B       = "GIGACHAT_API_B2B"
)

var (
	ErrUnknownModel = errors.New("unknown model")
	ErrUnknownScope = errors.New("unknown API scope")
	ErrExtraction   = errors.New("failed to extract text from document")
)

// modelsByLabel maps the human-facing selector labels to API model ids. The
// map is exhaustive over the labels offered by the form.
var modelsByLabel = map[string]string{
	"GigaChat-Lite": "GigaChat",
	"GigaChat-Pro":  "GigaChat-Pro",
	"GigaChat-Max":  "GigaChat-Max",
}

var scopes = map[string]struct{}{
	ScopePersonal:  {},
	ScopeCorporate: {},
	ScopeB2B:       {},
}

// ResolveModel returns the API model id for a selector label.
func ResolveModel(label string) (string, error) {
	id, ok := modelsByLabel[label]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownModel, label)
	}
	return id, nil
}

func ValidateScope(scope string) error {
	if _, ok := scopes[scope]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScope, scope)
	}
	return nil
}
