package response

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

type row struct {
	ID   string `json:"id_paciente"`
	Name string `json:"nombre"`
}

func TestWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatJSON)
	if err != nil {
		t.Fatal(err)
	}

	if err := w.SuccessWithMeta("Patients retrieved", []row{{ID: "PAC001", Name: "Ana"}}, &Meta{Total: 1}); err != nil {
		t.Fatalf("SuccessWithMeta: %v", err)
	}

	var got struct {
		Success bool  `json:"success"`
		Data    []row `json:"data"`
		Meta    Meta  `json:"meta"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if !got.Success || len(got.Data) != 1 || got.Data[0].ID != "PAC001" || got.Meta.Total != 1 {
		t.Errorf("decoded = %+v", got)
	}
}

func TestWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, FormatText)

	if err := w.ValidationError(map[string]string{"telefono": "telefono is required"}); err != nil {
		t.Fatalf("ValidationError: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "ERROR: Validation failed\n") {
		t.Errorf("unexpected header:\n%s", out)
	}
	if !strings.Contains(out, "telefono: telefono is required") {
		t.Errorf("missing field message:\n%s", out)
	}
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	if _, err := NewWriter(&bytes.Buffer{}, "xml"); err == nil {
		t.Error("NewWriter accepted xml")
	}
}
