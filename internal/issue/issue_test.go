// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

// Tests in this file swap the package-level render function and must not run
// in parallel.

func TestGet(t *testing.T) {
	tests := []struct {
		id       Id
		wantNil  bool
		contains string
	}{
		{ConfigLoadFailedId, false, "Failed to load configuration"},
		{InvalidLogLevelId, false, "Invalid log level"},
		{CommandNotFoundId, false, "Command not found"},
		{NoCommandsFoundId, false, "No commands found"},
		{MetadataParseErrorId, false, "Failed to parse command metadata"},
		{SearchPathUnreadableId, false, "Search path not readable"},
		{PermissionDeniedId, false, "Permission denied"},
		{Id(9999), true, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			issue := Get(tt.id)

			if tt.wantNil {
				if issue != nil {
					t.Errorf("Get(%d) should return nil", tt.id)
				}
				return
			}

			if issue == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}
			if issue.Id() != tt.id {
				t.Errorf("Id() = %d, want %d", issue.Id(), tt.id)
			}
			if !strings.Contains(string(issue.MarkdownMsg()), tt.contains) {
				t.Errorf("Get(%d).MarkdownMsg() should contain %q", tt.id, tt.contains)
			}
		})
	}
}

func TestValuesOrderedById(t *testing.T) {
	values := Values()
	if len(values) != len(issues) {
		t.Fatalf("Values() returned %d issues, want %d", len(values), len(issues))
	}
	for i, issue := range values {
		if issue.Id() != Id(i+1) {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, issue.Id(), i+1)
		}
	}
}

func TestIssue_LinksAreCloned(t *testing.T) {
	issue := &Issue{
		id:       Id(9999),
		mdMsg:    "# Test",
		docLinks: []HttpLink{"https://docs.example.com"},
		extLinks: []HttpLink{"https://external.example.com"},
	}

	links := issue.DocLinks()
	links[0] = "modified"
	if issue.DocLinks()[0] != "https://docs.example.com" {
		t.Error("DocLinks() should return a clone")
	}
	ext := issue.ExtLinks()
	ext[0] = "modified"
	if issue.ExtLinks()[0] != "https://external.example.com" {
		t.Error("ExtLinks() should return a clone")
	}
}

func TestIssue_Render(t *testing.T) {
	originalRender := render
	defer func() { render = originalRender }()

	var gotStyle string
	render = func(in, stylePath string) (string, error) {
		gotStyle = stylePath
		return in, nil
	}

	withLinks := &Issue{
		id:       Id(9999),
		mdMsg:    "# Test Issue",
		docLinks: []HttpLink{"https://docs.example.com"},
	}
	rendered, err := withLinks.Render(StyleNoTTY)
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(rendered, "See also") || !strings.Contains(rendered, "https://docs.example.com") {
		t.Errorf("Render() with links = %q", rendered)
	}
	if gotStyle != StyleNoTTY {
		t.Errorf("style = %q, want %q", gotStyle, StyleNoTTY)
	}

	for _, issue := range Values() {
		rendered, err := issue.Render(StyleDark)
		if err != nil || rendered == "" {
			t.Errorf("issue %d: Render() = %q, %v", issue.Id(), rendered, err)
		}
		if strings.Contains(rendered, "See also") {
			t.Errorf("issue %d has no links but rendered a See also section", issue.Id())
		}
	}
}

func TestIssue_RenderWithGlamour(t *testing.T) {
	rendered, err := Get(CommandNotFoundId).Render(StyleNoTTY)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(rendered, "Command not found") {
		t.Errorf("glamour output missing heading:\n%s", rendered)
	}
}
