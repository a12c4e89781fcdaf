package jslint

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/input-output-hk/catalyst-forge-libs/jslint/errors"
)

// Format represents the output format for reporting issues.
type Format int

const (
	// FormatText outputs issues in a human-readable text format.
	FormatText Format = iota
	// FormatJSON outputs issues in JSON format.
	FormatJSON
	// FormatSARIF outputs issues in SARIF (Static Analysis Results Interchange Format).
	FormatSARIF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatSARIF:
		return "sarif"
	default:
		return "unknown"
	}
}

// Reporter handles formatting and outputting linting issues.
type Reporter struct {
	writer  io.Writer
	format  Format
	version string
	rules   map[string]Rule
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithToolVersion overrides the tool version written to SARIF output.
// The version must be a valid semantic version.
func WithToolVersion(version string) ReporterOption {
	return func(r *Reporter) {
		r.version = version
	}
}

// WithRules registers rules so SARIF output can carry their descriptions.
func WithRules(rules ...Rule) ReporterOption {
	return func(r *Reporter) {
		for _, rule := range rules {
			r.rules[rule.Name()] = rule
		}
	}
}

// NewReporter creates a new Reporter with the specified output writer and format.
func NewReporter(writer io.Writer, format Format, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		writer:  writer,
		format:  format,
		version: Version,
		rules:   make(map[string]Rule),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report writes the issues to the output writer in the specified format.
// Issues are ordered by file, position and rule before reporting.
func (r *Reporter) Report(issues []Issue) error {
	if len(issues) == 0 {
		return nil
	}

	sorted := slices.Clone(issues)
	slices.SortStableFunc(sorted, compareIssues)

	switch r.format {
	case FormatText:
		return r.reportText(sorted)
	case FormatJSON:
		return r.reportJSON(sorted)
	case FormatSARIF:
		return r.reportSARIF(sorted)
	default:
		return errors.Newf(errors.CodeUnsupported, "unsupported format: %s", r.format)
	}
}

// fileReport holds the issues of one file. Issues without a location are
// grouped under an empty path.
type fileReport struct {
	Path         string       `json:"path"`
	ErrorCount   int          `json:"errorCount"`
	WarningCount int          `json:"warningCount"`
	Issues       []issueEntry `json:"issues"`
}

// issueEntry is the per-issue JSON shape: positions are flattened and the
// severity is spelled out.
type issueEntry struct {
	Rule      string                 `json:"rule"`
	Severity  string                 `json:"severity"`
	MessageID string                 `json:"messageId,omitempty"`
	Message   string                 `json:"message"`
	Line      int                    `json:"line,omitempty"`
	Column    int                    `json:"column,omitempty"`
	EndLine   int                    `json:"endLine,omitempty"`
	EndColumn int                    `json:"endColumn,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// groupByFile splits sorted issues into consecutive per-file reports.
func groupByFile(issues []Issue) []fileReport {
	var files []fileReport
	for _, issue := range issues {
		path := ""
		if issue.Location != nil {
			path = issue.Location.File
		}
		if len(files) == 0 || files[len(files)-1].Path != path {
			files = append(files, fileReport{Path: path})
		}
		fr := &files[len(files)-1]
		switch issue.Severity {
		case SeverityError:
			fr.ErrorCount++
		case SeverityWarning:
			fr.WarningCount++
		}

		entry := issueEntry{
			Rule:      issue.Rule,
			Severity:  issue.Severity.String(),
			MessageID: issue.MessageID,
			Message:   issue.Message,
			Data:      issue.Data,
		}
		if loc := issue.Location; loc != nil {
			entry.Line, entry.Column = loc.StartLine, loc.StartColumn+1
			entry.EndLine, entry.EndColumn = loc.EndLine, loc.EndColumn+1
		}
		fr.Issues = append(fr.Issues, entry)
	}
	return files
}

// reportText writes one block per file: the path, then one line per issue
// with its 1-based position, severity, message and rule. A summary line
// closes the report.
func (r *Reporter) reportText(issues []Issue) error {
	var b strings.Builder
	errorCount, warningCount := 0, 0
	for _, file := range groupByFile(issues) {
		if file.Path != "" {
			fmt.Fprintln(&b, file.Path)
		}
		for _, e := range file.Issues {
			rule := e.Rule
			if e.MessageID != "" {
				rule += "/" + e.MessageID
			}
			pos := "-"
			if e.Line > 0 {
				pos = fmt.Sprintf("%d:%d", e.Line, e.Column)
			}
			fmt.Fprintf(&b, "  %s  %s  %s  %s\n", pos, e.Severity, e.Message, rule)
		}
		fmt.Fprintln(&b)
		errorCount += file.ErrorCount
		warningCount += file.WarningCount
	}
	fmt.Fprintf(&b, "%s (%s, %s)\n",
		plural(len(issues), "problem"), plural(errorCount, "error"), plural(warningCount, "warning"))

	if _, err := io.WriteString(r.writer, b.String()); err != nil {
		return fmt.Errorf("failed to write text output: %w", err)
	}
	return nil
}

// plural renders a count with its noun, as in "1 error" or "2 errors".
func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// reportJSON writes the per-file reports together with the totals.
func (r *Reporter) reportJSON(issues []Issue) error {
	files := groupByFile(issues)
	output := struct {
		ErrorCount   int          `json:"errorCount"`
		WarningCount int          `json:"warningCount"`
		Files        []fileReport `json:"files"`
	}{
		Files: files,
	}
	for _, f := range files {
		output.ErrorCount += f.ErrorCount
		output.WarningCount += f.WarningCount
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

// reportSARIF outputs issues in SARIF (Static Analysis Results Interchange Format).
func (r *Reporter) reportSARIF(issues []Issue) error {
	version, err := semver.NewVersion(r.version)
	if err != nil {
		return errors.WrapWithContext(err, errors.CodeInvalidConfig, "invalid tool version",
			map[string]interface{}{"version": r.version})
	}

	// Rules appear once, sorted by name; registered rules contribute their
	// description, others the first message reported under them.
	help := make(map[string]string)
	var ruleNames []string
	for _, issue := range issues {
		if _, ok := help[issue.Rule]; ok {
			continue
		}
		ruleNames = append(ruleNames, issue.Rule)
		help[issue.Rule] = issue.Message
		if rule, ok := r.rules[issue.Rule]; ok {
			help[issue.Rule] = rule.Description()
		}
	}
	slices.Sort(ruleNames)

	rules := make([]map[string]interface{}, 0, len(ruleNames))
	for _, name := range ruleNames {
		rules = append(rules, map[string]interface{}{
			"id":   name,
			"name": name,
			"help": map[string]interface{}{"text": help[name]},
		})
	}

	// Create SARIF results
	results := make([]map[string]interface{}, 0, len(issues))
	for _, issue := range issues {
		result := map[string]interface{}{
			"ruleId":  issue.Rule,
			"level":   sarifLevel(issue.Severity),
			"message": map[string]interface{}{"text": issue.Message},
		}
		if issue.Location != nil {
			result["locations"] = []map[string]interface{}{sarifLocation(issue.Location)}
		}
		if len(issue.Data) > 0 || issue.MessageID != "" {
			props := map[string]interface{}{}
			if issue.MessageID != "" {
				props["messageId"] = issue.MessageID
			}
			for k, v := range issue.Data {
				props[k] = v
			}
			result["properties"] = props
		}
		results = append(results, result)
	}

	// Create SARIF output
	sarif := map[string]interface{}{
		"version": "2.1.0",
		"$schema": "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		"runs": []map[string]interface{}{
			{
				"tool": map[string]interface{}{
					"driver": map[string]interface{}{
						"name":            "jslint",
						"version":         version.Original(),
						"semanticVersion": version.String(),
						"informationUri":  "https://github.com/input-output-hk/catalyst-forge-libs",
						"rules":           rules,
					},
				},
				"results": results,
			},
		},
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(sarif); err != nil {
		return fmt.Errorf("failed to encode SARIF output: %w", err)
	}
	return nil
}

// sarifLevel maps a severity onto a SARIF result level.
func sarifLevel(s Severity) string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}

// sarifLocation converts a 0-based column location into a SARIF physical
// location with 1-based columns.
func sarifLocation(loc *SourceLocation) map[string]interface{} {
	return map[string]interface{}{
		"physicalLocation": map[string]interface{}{
			"artifactLocation": map[string]interface{}{
				"uri": filepath.ToSlash(strings.TrimPrefix(loc.File, "/")),
			},
			"region": map[string]interface{}{
				"startLine":   loc.StartLine,
				"startColumn": loc.StartColumn + 1,
				"endLine":     loc.EndLine,
				"endColumn":   loc.EndColumn + 1,
			},
		},
	}
}

// compareIssues orders issues without a location first, then by file,
// start position and rule.
func compareIssues(a, b Issue) int {
	if (a.Location == nil) != (b.Location == nil) {
		if a.Location == nil {
			return -1
		}
		return 1
	}
	if a.Location != nil {
		if c := cmp.Compare(a.Location.File, b.Location.File); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Location.StartLine, b.Location.StartLine); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Location.StartColumn, b.Location.StartColumn); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Rule, b.Rule)
}
