package config

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/vogue/pkg/errors"
	"github.com/ajxudir/vogue/pkg/filtering"
	"github.com/ajxudir/vogue/pkg/verbose"
)

// schemaFields lists the valid keys of each document type, keyed by the Go
// type name that appears in yaml.v3 strict-decoding errors.
var schemaFields = map[string]string{
	"document":            "defaultRules, packageRules",
	"rulesDocument":       "major, minor, patch, micro",
	"ruleDocument":        "maxDiff, requireLatest",
	"packageRuleDocument": "package, rules, suppressUntil, note",
}

// commonTypos maps frequent misspellings to the correct key per document type.
var commonTypos = map[string]map[string]string{
	"document": {
		"defaultRule":   "defaultRules",
		"default_rules": "defaultRules",
		"packageRule":   "packageRules",
		"package_rules": "packageRules",
		"rules":         "defaultRules",
	},
	"rulesDocument": {
		"majors":  "major",
		"minors":  "minor",
		"patches": "patch",
	},
	"ruleDocument": {
		"max_diff":       "maxDiff",
		"maxdiff":        "maxDiff",
		"max-diff":       "maxDiff",
		"require_latest": "requireLatest",
		"requirelatest":  "requireLatest",
		"require-latest": "requireLatest",
	},
	"packageRuleDocument": {
		"pattern":        "package",
		"name":           "package",
		"suppress_until": "suppressUntil",
		"suppressuntil":  "suppressUntil",
		"suppress-until": "suppressUntil",
		"rule":           "rules",
		"notes":          "note",
	},
}

var lineNumberPattern = regexp.MustCompile(`line (\d+):`)

// ValidateConfigFile validates a YAML policy document for syntax errors,
// unknown keys and invalid values.
//
// Decoding uses KnownFields(true) so misspelled keys are reported instead of
// silently ignored. After a successful decode the resulting policy is checked
// with Validate.
//
// Parameters:
//   - data: YAML policy document
//
// Returns:
//   - *errors.ValidationResult: Errors and warnings found, never nil
func ValidateConfigFile(data []byte) *errors.ValidationResult {
	result := errors.NewValidationResult()

	verbose.Printf("Config validation: strict YAML decode")

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc document
	if err := decoder.Decode(&doc); err != nil && err != io.EOF {
		verbose.Printf("Config validation FAILED: %v", err)
		result.AddError(decodeError(err))
		return result
	}

	for i, p := range doc.PackageRules {
		if p.ProjectIssue != "" {
			result.AddWarning(fmt.Sprintf("packageRules[%d].projectIssue is deprecated, use note", i))
		}
	}

	cfg := doc.toConfiguration()
	structural := cfg.Validate()
	result.Errors = append(result.Errors, structural.Errors...)
	result.Warnings = append(result.Warnings, structural.Warnings...)

	if result.HasErrors() {
		verbose.Printf("Config validation FAILED: %d errors", len(result.Errors))
	} else {
		verbose.Printf("Config validation PASSED")
	}
	return result
}

// Validate checks a loaded policy for values the engine cannot use.
//
// It reports package patterns that are empty or fail to compile, maxDiff
// values below NoLimit and suppressUntil values that do not parse. Duplicate
// patterns only produce a warning since merging keeps the first one effective.
//
// Returns:
//   - *errors.ValidationResult: Errors and warnings found, never nil
func (c *Configuration) Validate() *errors.ValidationResult {
	result := errors.NewValidationResult()
	if c == nil {
		return result
	}

	validateRules("defaultRules", c.DefaultRules, result)

	seen := make(map[string]int, len(c.PackageRules))
	for i, p := range c.PackageRules {
		prefix := fmt.Sprintf("packageRules[%d]", i)

		switch {
		case p.Package == "":
			result.AddError(&errors.ValidationError{
				Field:    prefix + ".package",
				Message:  "package pattern is required",
				Expected: "regular expression matched against <group>:<name>",
			})
		default:
			if _, err := filtering.NewRegexMatcher(p.Package); err != nil {
				result.AddError(&errors.ValidationError{
					Field:    prefix + ".package",
					Message:  fmt.Sprintf("invalid regular expression %q: %v", p.Package, err),
					Expected: "regular expression matched against <group>:<name>",
					Hint:     "escape literal dots and brackets, e.g. com\\.acme:.*",
				})
			} else if err := filtering.ValidateRegexSafety(p.Package); err != nil {
				result.AddWarning(fmt.Sprintf("%s.package: %v", prefix, err))
			}
			if first, dup := seen[p.Package]; dup {
				result.AddWarning(fmt.Sprintf("%s.package %q duplicates packageRules[%d]; only the first is used", prefix, p.Package, first))
			} else {
				seen[p.Package] = i
			}
		}

		validateRules(prefix+".rules", p.Rules, result)

		if p.HasSuppression() {
			if _, err := p.SuppressUntilDate(); err != nil {
				result.AddError(&errors.ValidationError{
					Field:    prefix + ".suppressUntil",
					Message:  fmt.Sprintf("unparsable date %q", p.SuppressUntil),
					Expected: "yyyy-MM-dd or yyyy/MM/dd",
				})
			}
		}
	}
	return result
}

// validateRules checks each tier's maxDiff. Field paths use document keys,
// so the third component is reported as "patch" and the fourth as "micro".
func validateRules(prefix string, rules *Rules, result *errors.ValidationResult) {
	if rules == nil {
		return
	}
	for _, entry := range []struct {
		key  string
		rule *Rule
	}{
		{"major", rules.Major},
		{"minor", rules.Minor},
		{"patch", rules.Micro},
		{"micro", rules.Patch},
	} {
		if entry.rule != nil && entry.rule.MaxDiff < NoLimit {
			result.AddError(&errors.ValidationError{
				Field:    fmt.Sprintf("%s.%s.maxDiff", prefix, entry.key),
				Message:  fmt.Sprintf("must not be below %d, got %d", NoLimit, entry.rule.MaxDiff),
				Expected: "-1 (no limit) or a non-negative integer",
			})
		}
	}
}

// decodeError turns a yaml.v3 decode failure into a ValidationError with
// the valid keys and a typo suggestion where possible.
func decodeError(err error) *errors.ValidationError {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "field") && strings.Contains(msg, "not found"):
		field, typeName := extractFieldAndType(msg)
		verr := &errors.ValidationError{Message: fmt.Sprintf("unknown field '%s'", field)}
		if line := extractLineNumber(msg); line > 0 {
			verr.Message = fmt.Sprintf("unknown field '%s' (line %d)", field, line)
		}
		if fields, ok := schemaFields[typeName]; ok {
			verr.Expected = "one of: " + fields
		}
		if suggestion := suggestSimilarField(field, typeName); suggestion != "" {
			verr.Message += fmt.Sprintf(" (did you mean '%s'?)", suggestion)
		}
		return verr
	case strings.Contains(msg, "cannot unmarshal"):
		return &errors.ValidationError{Message: msg, Expected: extractExpectedType(msg)}
	case strings.Contains(msg, "yaml:"):
		return &errors.ValidationError{Message: fmt.Sprintf("YAML syntax error: %s", msg)}
	default:
		return &errors.ValidationError{Message: msg}
	}
}

// extractFieldAndType pulls the field and type name out of a strict-decode
// error such as "line 3: field maxdiff not found in type config.ruleDocument".
func extractFieldAndType(errMsg string) (field, typeName string) {
	if parts := strings.SplitN(errMsg, "field ", 2); len(parts) == 2 {
		field = parts[1]
		if idx := strings.Index(field, " "); idx > 0 {
			field = field[:idx]
		}
	}
	if idx := strings.Index(errMsg, "in type config."); idx >= 0 {
		typeName = errMsg[idx+len("in type config."):]
		if end := strings.IndexAny(typeName, " \n"); end > 0 {
			typeName = typeName[:end]
		}
	}
	return field, typeName
}

func extractLineNumber(errMsg string) int {
	matches := lineNumberPattern.FindStringSubmatch(errMsg)
	if len(matches) < 2 {
		return 0
	}
	var line int
	_, _ = fmt.Sscanf(matches[1], "%d", &line)
	return line
}

// extractExpectedType returns Y from "cannot unmarshal X into Y".
func extractExpectedType(errMsg string) string {
	idx := strings.Index(errMsg, "into ")
	if idx < 0 {
		return ""
	}
	typePart := errMsg[idx+len("into "):]
	if end := strings.IndexAny(typePart, " \n"); end > 0 {
		return typePart[:end]
	}
	return typePart
}

// suggestSimilarField returns the intended key for a likely typo, or "".
func suggestSimilarField(field, typeName string) string {
	if typos, ok := commonTypos[typeName]; ok {
		if suggestion, found := typos[field]; found {
			return suggestion
		}
	}
	if fields, ok := schemaFields[typeName]; ok {
		for _, candidate := range strings.Split(fields, ", ") {
			if strings.EqualFold(candidate, field) {
				return candidate
			}
		}
	}
	return ""
}
