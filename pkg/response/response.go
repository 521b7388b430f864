package response

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	Total int `json:"total"`
}

const (
	FormatJSON = "json"
	FormatText = "text"
)

// Writer renders Response envelopes as JSON or as human-readable text.
type Writer struct {
	out    io.Writer
	format string
}

func NewWriter(out io.Writer, format string) (*Writer, error) {
	switch format {
	case FormatJSON, FormatText:
	default:
		return nil, fmt.Errorf("unknown output format %q: want %s or %s", format, FormatJSON, FormatText)
	}
	return &Writer{out: out, format: format}, nil
}

func (w *Writer) Write(resp Response) error {
	if w.format == FormatJSON {
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	return w.writeText(resp)
}

func (w *Writer) Success(message string, data interface{}) error {
	return w.Write(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func (w *Writer) SuccessWithMeta(message string, data interface{}, meta *Meta) error {
	return w.Write(Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func (w *Writer) Error(message string, err interface{}) error {
	return w.Write(Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}

func (w *Writer) ValidationError(errors interface{}) error {
	return w.Error("Validation failed", errors)
}

func (w *Writer) NotFound(message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return w.Error(message, nil)
}

// writeText prints the message on one line followed by the payload as YAML,
// keyed by the same names the JSON output uses.
func (w *Writer) writeText(resp Response) error {
	status := "OK"
	if !resp.Success {
		status = "ERROR"
	}
	if _, err := fmt.Fprintf(w.out, "%s: %s\n", status, resp.Message); err != nil {
		return err
	}

	payload := resp.Data
	if !resp.Success {
		payload = resp.Error
	}
	if payload == nil {
		return nil
	}

	generic, err := toGeneric(payload)
	if err != nil {
		return err
	}
	body, err := yaml.Marshal(generic)
	if err != nil {
		return fmt.Errorf("render text output: %w", err)
	}
	if _, err := w.out.Write(body); err != nil {
		return err
	}
	if resp.Meta != nil {
		_, err = fmt.Fprintf(w.out, "total: %d\n", resp.Meta.Total)
	}
	return err
}

func toGeneric(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("render text output: %w", err)
	}
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("render text output: %w", err)
	}
	return generic, nil
}
