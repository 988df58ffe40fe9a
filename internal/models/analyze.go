package models

import "errors"

// ErrMissingInput is returned when the form is submitted without a document
// or without a credential.
var ErrMissingInput = errors.New("a document and an API key are required for analysis")

// AnalyzeRequest carries one submitted form: the uploaded document bytes plus
// the prompt template and API parameters chosen by the user.
type AnalyzeRequest struct {
	FileName string
	Data     []byte
	Prompt   string
	APIKey   string
	Model    string
	Scope    string
}

func (r *AnalyzeRequest) Validate() error {
	if len(r.Data) == 0 || r.APIKey == "" {
		return ErrMissingInput
	}
	return nil
}

type AnalyzeResponse struct {
	Result string `json:"result"`
}

type StreamChunk struct {
	Delta string `json:"delta,omitempty"`
	Done  bool   `json:"done,omitempty"`
	Err   error  `json:"-"`
}
