package console

import (
	"fmt"
	"io"

	"bookmenu/internal/config"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Renderer writes the result block of one operation.
type Renderer interface {
	Matches(w io.Writer, header string, items []fmt.Stringer) error
	Deleted(w io.Writer, message string) error
	NotFound(w io.Writer, message string) error
}

func NewRenderer(o config.Output) Renderer {
	if o == config.OutputJSON {
		return jsonRenderer{}
	}
	return textRenderer{}
}

type textRenderer struct{}

func (textRenderer) Matches(w io.Writer, header string, items []fmt.Stringer) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, it := range items {
		if _, err := fmt.Fprintln(w, it); err != nil {
			return err
		}
	}
	return nil
}

func (textRenderer) Deleted(w io.Writer, message string) error {
	_, err := fmt.Fprintln(w, message)
	return err
}

func (textRenderer) NotFound(w io.Writer, message string) error {
	_, err := fmt.Fprintln(w, message)
	return err
}

type jsonRenderer struct{}

type jsonResult struct {
	Found   bool          `json:"found"`
	Deleted bool          `json:"deleted,omitempty"`
	Message string        `json:"message,omitempty"`
	Matches []interface{} `json:"matches,omitempty"`
}

func (jsonRenderer) write(w io.Writer, r jsonResult) error {
	return json.NewEncoder(w).Encode(r)
}

func (j jsonRenderer) Matches(w io.Writer, _ string, items []fmt.Stringer) error {
	matches := make([]interface{}, len(items))
	for i, it := range items {
		matches[i] = it
	}
	return j.write(w, jsonResult{Found: true, Matches: matches})
}

func (j jsonRenderer) Deleted(w io.Writer, message string) error {
	return j.write(w, jsonResult{Found: true, Deleted: true, Message: message})
}

func (j jsonRenderer) NotFound(w io.Writer, message string) error {
	return j.write(w, jsonResult{Found: false, Message: message})
}
