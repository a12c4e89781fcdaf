package jslint

import (
	"fmt"
	"strings"

	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
)

// Severity represents the severity level of a linting issue.
type Severity int

const (
	// SeverityError indicates a critical issue that should block builds.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue that should be addressed.
	SeverityWarning
	// SeverityInfo indicates a suggestion or style improvement.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// SourceLocation represents a position in the source file.
type SourceLocation = ast.SourceLocation

// Issue represents a single linting issue.
type Issue struct {
	// Rule is the identifier of the rule that found this issue.
	Rule string `json:"rule"`
	// Severity indicates the importance level of the issue.
	Severity Severity `json:"severity"`
	// MessageID is the stable identifier of the message kind, e.g. "constantAssertion".
	MessageID string `json:"messageId,omitempty"`
	// Message is the rendered, human-readable description of the issue.
	Message string `json:"message"`
	// Location specifies where in the source file the issue occurs.
	Location *SourceLocation `json:"location,omitempty"`
	// Data holds the interpolation values used to render Message.
	Data map[string]interface{} `json:"data,omitempty"`
}

// String returns a formatted string representation of the issue.
func (i Issue) String() string {
	if i.Location != nil {
		return fmt.Sprintf("%s:%d:%d [%s] %s",
			i.Location.File,
			i.Location.StartLine,
			i.Location.StartColumn,
			i.Rule,
			i.Message)
	}
	return fmt.Sprintf("[%s] %s", i.Rule, i.Message)
}

// IsValid checks if the issue has all required fields.
func (i Issue) IsValid() bool {
	return i.Rule != "" && i.Message != ""
}

// NewIssue creates a new Issue with the given parameters.
func NewIssue(rule string, severity Severity, message string, location *SourceLocation) Issue {
	return Issue{
		Rule:     rule,
		Severity: severity,
		Message:  message,
		Location: location,
		Data:     make(map[string]interface{}),
	}
}

// IssueAt creates an issue of the given message kind on node. The message
// template is rendered with data.
func IssueAt(rule string, severity Severity, node ast.Node, messageID, template string, data map[string]interface{}) Issue {
	var loc *SourceLocation
	if node != nil {
		l := *node.Location()
		loc = &l
	}
	issue := NewIssue(rule, severity, Render(template, data), loc)
	issue.MessageID = messageID
	for k, v := range data {
		issue.Data[k] = v
	}
	return issue
}

// WithMessageID sets the message kind of an issue and returns the modified issue.
func (i Issue) WithMessageID(id string) Issue {
	i.MessageID = id
	return i
}

// WithData adds interpolation data to an issue and returns the modified issue.
func (i Issue) WithData(key string, value interface{}) Issue {
	data := make(map[string]interface{}, len(i.Data)+1)
	for k, v := range i.Data {
		data[k] = v
	}
	data[key] = value
	i.Data = data
	return i
}

// Render replaces every {{key}} placeholder in template with the matching
// value from data. Unknown placeholders are left as they are.
func Render(template string, data map[string]interface{}) string {
	if len(data) == 0 || !strings.Contains(template, "{{") {
		return template
	}
	var b strings.Builder
	rest := template
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.Index(rest[start:], "}}")
		if end < 0 {
			b.WriteString(rest)
			break
		}
		end += start
		key := strings.TrimSpace(rest[start+2 : end])
		b.WriteString(rest[:start])
		if v, ok := data[key]; ok {
			fmt.Fprint(&b, v)
		} else {
			b.WriteString(rest[start : end+2])
		}
		rest = rest[end+2:]
	}
	return b.String()
}
