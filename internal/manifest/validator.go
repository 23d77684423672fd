package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const schemaURL = "installed_plugins.schema.json"

//go:embed schema/installed_plugins.schema.json
var schemaBytes []byte

var (
	loadSchema = sync.OnceValues(compileSchema)
	printer    = message.NewPrinter(language.English)
)

// Report is the outcome of checking a manifest against its schema.
type Report struct {
	Problems []Problem
}

// OK reports whether the manifest matched the schema.
func (r *Report) OK() bool { return len(r.Problems) == 0 }

// Problem is one schema violation.
type Problem struct {
	Pointer string // JSON pointer into the manifest, e.g. "/plugins/docx@acme/0/version"
	Keyword string // failing schema keyword, e.g. "type"
	Message string
}

func (p Problem) String() string {
	if p.Pointer == "" {
		return p.Message
	}
	return p.Pointer + ": " + p.Message
}

func compileSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("decoding embedded schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("registering schema: %w", err)
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return s, nil
}

// Validate checks manifest bytes against the embedded schema. The error is
// for malformed JSON; schema violations are listed in the Report.
func Validate(data []byte) (*Report, error) {
	schema, err := loadSchema()
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing manifest JSON: %w", err)
	}

	var verr *jsonschema.ValidationError
	switch err := schema.Validate(inst); {
	case err == nil:
		return &Report{}, nil
	case errors.As(err, &verr):
		return &Report{Problems: problems(verr)}, nil
	default:
		return nil, fmt.Errorf("validating manifest: %w", err)
	}
}

// ValidateFile reads path and validates it.
func ValidateFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return Validate(data)
}

// Decode validates data and, when it matches the schema, decodes it.
// A schema mismatch returns the report with a nil Document.
func Decode(data []byte) (*Document, *Report, error) {
	report, err := Validate(data)
	if err != nil || !report.OK() {
		return nil, report, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, report, fmt.Errorf("decoding manifest: %w", err)
	}
	return &doc, report, nil
}

// problems flattens the leaves of a validation error tree, skipping
// wrapper keywords, and orders them by pointer.
func problems(root *jsonschema.ValidationError) []Problem {
	seen := make(map[Problem]bool)
	var out []Problem

	stack := []*jsonschema.ValidationError{root}
	for len(stack) > 0 {
		ve := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(ve.Causes) > 0 {
			stack = append(stack, ve.Causes...)
			continue
		}
		if ve.ErrorKind == nil {
			continue
		}

		kw := ve.ErrorKind.KeywordPath()
		if len(kw) == 0 {
			continue
		}
		p := Problem{Keyword: kw[len(kw)-1], Message: ve.ErrorKind.LocalizedString(printer)}
		if p.Keyword == "$ref" || p.Keyword == "allOf" {
			continue
		}
		if len(ve.InstanceLocation) > 0 {
			p.Pointer = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	if len(out) == 0 {
		return []Problem{{Message: root.Error()}}
	}
	slices.SortStableFunc(out, func(a, b Problem) int { return strings.Compare(a.Pointer, b.Pointer) })
	return out
}
