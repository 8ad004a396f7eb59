package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/manifest.schema.json
var manifestSchemaBytes []byte

//go:embed schema/descriptor.schema.json
var descriptorSchemaBytes []byte

const (
	manifestSchemaURL   = "manifest.schema.json"
	descriptorSchemaURL = "descriptor.schema.json"
)

var (
	manifestSchema   *jsonschema.Schema
	descriptorSchema *jsonschema.Schema
	compileOnce      sync.Once
	compileErr       error
	printer          = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/modules/0/name")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// compileSchemas compiles both embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		for url, raw := range map[string][]byte{
			manifestSchemaURL:   manifestSchemaBytes,
			descriptorSchemaURL: descriptorSchemaBytes,
		} {
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
			if err != nil {
				compileErr = fmt.Errorf("unmarshaling schema %s: %w", url, err)
				return
			}
			if err := c.AddResource(url, doc); err != nil {
				compileErr = fmt.Errorf("adding schema resource %s: %w", url, err)
				return
			}
		}

		if manifestSchema, compileErr = c.Compile(manifestSchemaURL); compileErr != nil {
			compileErr = fmt.Errorf("compiling manifest schema: %w", compileErr)
			return
		}
		if descriptorSchema, compileErr = c.Compile(descriptorSchemaURL); compileErr != nil {
			compileErr = fmt.Errorf("compiling descriptor schema: %w", compileErr)
		}
	})
	return compileErr
}

// Validate validates raw manifest JSON against the manifest schema.
// The error return is for malformed JSON or schema compilation failures.
// Validation issues are returned in the ValidationResult.
func Validate(data []byte) (*ValidationResult, error) {
	if err := compileSchemas(); err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}
	return validateWith(manifestSchema, data)
}

// ValidateDescriptor validates raw package.json bytes against the descriptor schema.
func ValidateDescriptor(data []byte) (*ValidationResult, error) {
	if err := compileSchemas(); err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}
	return validateWith(descriptorSchema, data)
}

func validateWith(schema *jsonschema.Schema, data []byte) (*ValidationResult, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ValidationResult{
		Valid:  false,
		Issues: extractIssues(validationErr),
	}, nil
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{
			Message: ve.Error(),
		}}
	}
	return deduplicateIssues(issues)
}

// collectValidationIssues recursively walks the error tree to find leaf errors.
func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectValidationIssues(cause, issues)
		}
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	keyword := ""
	msg := ""
	if ve.ErrorKind != nil {
		if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
			keyword = kwPath[len(kwPath)-1]
		}
		msg = ve.ErrorKind.LocalizedString(printer)
	}

	if keyword == "allOf" || keyword == "$ref" || keyword == "" {
		return
	}

	*issues = append(*issues, ValidationIssue{
		Path:    path,
		Message: msg,
		Keyword: keyword,
	})
}

// deduplicateIssues removes duplicate issues (same path + keyword + message).
func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
