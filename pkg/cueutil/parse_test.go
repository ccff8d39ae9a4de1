// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Item: {
	name:   string
	count?: int
}
`

type testItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestParseAndDecodeString(t *testing.T) {
	t.Parallel()

	t.Run("valid data decodes", func(t *testing.T) {
		t.Parallel()

		result, err := ParseAndDecodeString[testItem](testSchema, []byte(`name: "build", count: 2`), "#Item")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Value.Name != "build" || result.Value.Count != 2 {
			t.Errorf("decoded %+v", *result.Value)
		}
	})

	t.Run("closed schema rejects unknown field", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecodeString[testItem](testSchema, []byte(`name: "build", bogus: 1`), "#Item", WithFilename("item.cue"))
		if err == nil {
			t.Fatal("expected error for unknown field")
		}
		if !strings.Contains(err.Error(), "item.cue") {
			t.Errorf("error should name the file, got: %v", err)
		}
	})

	t.Run("oversized input is rejected before compiling", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecodeString[testItem](testSchema, []byte(`name: "build"`), "#Item", WithMaxFileSize(4))
		if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
			t.Fatalf("expected size error, got %v", err)
		}
	})

	t.Run("missing definition is an internal error", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecodeString[testItem](testSchema, []byte(`name: "build"`), "#Missing")
		if err == nil || !strings.Contains(err.Error(), "#Missing") {
			t.Fatalf("expected missing definition error, got %v", err)
		}
	})
}
