package structure

import (
	"errors"
	"time"

	"pathscope/internal/mapping"
	"pathscope/internal/match"
	"pathscope/internal/payload"
	"pathscope/internal/suggest"
)

var (
	ErrSourcePathRequired = errors.New("source path is required")
	ErrInvalidDirection   = errors.New("invalid direction")
)

// Validation outcomes reported in ValidateResult.Reason.
const (
	ReasonNoExample      = "no_example"
	ReasonRequestMapping = "request_mapping"
	ReasonPathNotFound   = "path_not_found"
)

// Example is a captured response payload.
type Example struct {
	// Key identifies this capture for caching, e.g. endpoint id plus
	// capture time. Empty disables caching.
	Key string
	// Payload is the decoded response; nil means nothing was captured.
	Payload any
	// CapturedAt is reported back by Analyze when set.
	CapturedAt time.Time
}

func (e Example) present() bool {
	return e.Payload != nil
}

// PathInfo describes one extracted path.
type PathInfo struct {
	Path    string            `json:"path"`
	Type    payload.ValueType `json:"type"`
	IsArray bool              `json:"isArray"`
	Sample  any               `json:"sample"`
}

// AnalyzeResult lists the paths of an example.
type AnalyzeResult struct {
	HasExample   bool       `json:"hasExample"`
	Message      string     `json:"message,omitempty"`
	LastTestedAt *time.Time `json:"lastTestedAt,omitempty"`
	TotalPaths   int        `json:"totalPaths"`
	Paths        []PathInfo `json:"paths"`
	Structure    any        `json:"structure,omitempty"`
	// Truncated is set when extraction stopped at a configured ceiling.
	Truncated bool `json:"truncated,omitempty"`
}

// ValidateRequest asks whether a source path exists in an example.
type ValidateRequest struct {
	SourcePath string            `json:"sourcePath"`
	Direction  mapping.Direction `json:"direction,omitempty"`
}

// ValidateResult is the outcome of ValidatePath.
type ValidateResult struct {
	Valid   bool   `json:"valid"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`

	// Set when the path matched.
	Type        payload.ValueType `json:"type,omitempty"`
	Sample      any               `json:"sample"`
	MatchedPath string            `json:"matchedPath,omitempty"`
	Strategy    match.Strategy    `json:"strategy,omitempty"`

	Suggestions []string `json:"suggestions"`

	// Set when the path was not found.
	Closest        []string `json:"closest,omitempty"`
	Hint           string   `json:"hint,omitempty"`
	AvailablePaths []string `json:"availablePaths,omitempty"`
}

// SuggestRequest asks for a target path for a source path.
type SuggestRequest struct {
	SourcePath string `json:"sourcePath"`
}

// SuggestResult is a proposed target path and how it was found.
type SuggestResult struct {
	Suggestion            string         `json:"suggestion"`
	Reason                suggest.Reason `json:"reason"`
	Message               string         `json:"message,omitempty"`
	MatchedPath           string         `json:"matchedPath,omitempty"`
	HasArrayInSource      bool           `json:"hasArrayInSource"`
	ExistingArrayMappings bool           `json:"existingArrayMappings"`
	Pattern               string         `json:"pattern,omitempty"`
}
