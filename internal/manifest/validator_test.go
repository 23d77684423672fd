package manifest

import (
	"slices"
	"strings"
	"testing"
)

func TestValidateFile(t *testing.T) {
	tests := []struct {
		file        string
		wantOK      bool
		wantKeyword string
		wantPointer string
	}{
		{file: "valid.json", wantOK: true},
		{file: "wrong-shape.json", wantKeyword: "type"},
		{file: "bad-field-type.json", wantKeyword: "type", wantPointer: "/plugins/obsidian@obsidian-skills/0/version"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			report, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile: %v", err)
			}
			if report.OK() != tt.wantOK {
				t.Fatalf("OK() = %v, want %v (problems: %v)", report.OK(), tt.wantOK, report.Problems)
			}
			if tt.wantOK {
				return
			}
			found := slices.ContainsFunc(report.Problems, func(p Problem) bool {
				return p.Keyword == tt.wantKeyword && (tt.wantPointer == "" || p.Pointer == tt.wantPointer)
			})
			if !found {
				t.Errorf("no %s problem at %q in %v", tt.wantKeyword, tt.wantPointer, report.Problems)
			}
		})
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	if _, err := Validate([]byte("{")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	if _, err := ValidateFile(testPath("nonexistent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDecode(t *testing.T) {
	doc, report, err := Decode([]byte(`{"plugins": {"docx@acme": [{"version": "1.0.0"}]}}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !report.OK() {
		t.Fatalf("problems: %v", report.Problems)
	}
	if got := doc.Plugins["docx@acme"][0].Version; got != "1.0.0" {
		t.Errorf("version = %q, want 1.0.0", got)
	}

	doc, report, err = Decode([]byte(`{"plugins": []}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc != nil || report.OK() {
		t.Errorf("Decode of wrong shape = %v, %v; want nil document and problems", doc, report.Problems)
	}
}

func TestProblemString(t *testing.T) {
	p := Problem{Pointer: "/plugins", Message: "got array, want object"}
	if got := p.String(); !strings.HasPrefix(got, "/plugins: ") {
		t.Errorf("String() = %q", got)
	}
	if got := (Problem{Message: "bad"}).String(); got != "bad" {
		t.Errorf("String() = %q, want bad", got)
	}
}
