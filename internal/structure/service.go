package structure

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"pathscope/internal/analyze"
	"pathscope/internal/config"
	"pathscope/internal/diagnostic"
	"pathscope/internal/fieldpath"
	"pathscope/internal/mapping"
	"pathscope/internal/match"
	"pathscope/internal/payload"
	"pathscope/internal/suggest"
)

const (
	msgNoExampleAnalyze = "no example response available; run a test request first"
	msgNoExample        = "no example response available"
	msgRequestMapping   = "request mappings are not validated against the example response"
	msgExistingMapping  = "a mapping for this path already exists"
	msgHeuristic        = "suggested from the source path structure"
	notFoundHint        = "use [*] instead of [0] and check the namespace prefixes (e.g. ns1:getCidadeResponse)"
)

// Service runs the path engine over captured examples. It is safe for
// concurrent use.
type Service struct {
	cfg       *config.Config
	logger    *zap.Logger
	extractor *analyze.Extractor
	resolver  *analyze.Resolver
	matcher   *match.Matcher
	suggester *suggest.Suggester
	// cache holds path inventories by Example.Key; nil when disabled.
	cache *lru.Cache[string, *fieldpath.Set]
}

// NewService creates a Service. A nil cfg selects config.Default() and a
// nil logger discards output.
func NewService(cfg *config.Config, logger *zap.Logger) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	sampler, err := payload.SamplerByName(cfg.Extract.Sampling)
	if err != nil {
		return nil, fmt.Errorf("failed to configure extraction: %w", err)
	}

	opts := analyze.Options{
		Sampler:  sampler,
		MaxDepth: cfg.Extract.MaxDepth,
		MaxPaths: cfg.Extract.MaxPaths,
	}
	matcher := match.NewMatcher(match.Options{})

	s := &Service{
		cfg:       cfg,
		logger:    logger,
		extractor: analyze.NewExtractor(opts),
		resolver:  analyze.NewResolver(opts),
		matcher:   matcher,
		suggester: suggest.NewSuggester(suggest.Options{
			StripPrefixes: cfg.Suggest.StripPrefixes,
			Matcher:       matcher,
		}),
	}

	if cfg.Cache.Size > 0 {
		s.cache, err = lru.New[string, *fieldpath.Set](cfg.Cache.Size)
		if err != nil {
			return nil, fmt.Errorf("failed to create path cache: %w", err)
		}
	}

	return s, nil
}

// paths returns the path inventory of ex, from the cache when possible.
// The returned set must not be modified.
func (s *Service) paths(ex Example) *fieldpath.Set {
	if !ex.present() {
		return fieldpath.NewSet()
	}

	if s.cache != nil && ex.Key != "" {
		if set, ok := s.cache.Get(ex.Key); ok {
			s.logger.Debug("path inventory cache hit", zap.String("key", ex.Key))
			return set
		}
	}

	set := s.extractor.Extract(ex.Payload)

	if set.Truncated() {
		s.logger.Warn("path extraction truncated",
			zap.String("key", ex.Key),
			zap.Int("paths", set.Len()),
			zap.Int("maxDepth", s.cfg.Extract.MaxDepth),
			zap.Int("maxPaths", s.cfg.Extract.MaxPaths))
	}

	if s.cache != nil && ex.Key != "" {
		s.cache.Add(ex.Key, set)
	}

	return set
}

// Analyze lists every path of the example with its type and sample value,
// sorted by path.
func (s *Service) Analyze(ex Example) AnalyzeResult {
	if !ex.present() {
		return AnalyzeResult{
			HasExample: false,
			Message:    msgNoExampleAnalyze,
			Paths:      []PathInfo{},
		}
	}

	set := s.paths(ex)
	sorted := set.Sorted()

	infos := make([]PathInfo, 0, len(sorted))
	for _, p := range sorted {
		t, sample := s.resolver.Describe(ex.Payload, p)
		infos = append(infos, PathInfo{
			Path:    p,
			Type:    t,
			IsArray: fieldpath.Parse(p).HasArray(),
			Sample:  sample,
		})
	}

	res := AnalyzeResult{
		HasExample: true,
		TotalPaths: len(infos),
		Paths:      infos,
		Structure:  ex.Payload,
		Truncated:  set.Truncated(),
	}

	if !ex.CapturedAt.IsZero() {
		at := ex.CapturedAt
		res.LastTestedAt = &at
	}

	return res
}

// normalizeDirection parses d, defaulting to the response direction.
func normalizeDirection(d mapping.Direction) (mapping.Direction, error) {
	if strings.TrimSpace(string(d)) == "" {
		return mapping.DirectionResponse, nil
	}

	parsed, err := mapping.ParseDirection(string(d))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, d)
	}

	return parsed, nil
}

// ValidatePath checks whether req.SourcePath addresses something in the
// example. Not finding the path is a regular result; errors are returned
// for invalid input only.
func (s *Service) ValidatePath(ex Example, req ValidateRequest) (ValidateResult, error) {
	source := strings.TrimSpace(req.SourcePath)
	if source == "" {
		return ValidateResult{}, ErrSourcePathRequired
	}

	direction, err := normalizeDirection(req.Direction)
	if err != nil {
		return ValidateResult{}, err
	}

	if !ex.present() {
		return ValidateResult{
			Reason:      ReasonNoExample,
			Message:     msgNoExample,
			Suggestions: []string{},
		}, nil
	}

	if direction == mapping.DirectionRequest {
		return ValidateResult{
			Valid:       true,
			Reason:      ReasonRequestMapping,
			Message:     msgRequestMapping,
			Suggestions: []string{},
		}, nil
	}

	known := s.paths(ex)

	if m, ok := s.matcher.FindMatch(source, known); ok {
		s.logger.Debug("source path matched",
			zap.String("source", source),
			zap.String("matched", m.Path),
			zap.String("strategy", string(m.Strategy)))

		t, sample := s.resolver.Describe(ex.Payload, m.Path)

		return ValidateResult{
			Valid:       true,
			Type:        t,
			Sample:      sample,
			MatchedPath: m.Path,
			Strategy:    m.Strategy,
			Suggestions: []string{},
		}, nil
	}

	res := ValidateResult{
		Reason:         ReasonPathNotFound,
		Message:        fmt.Sprintf("path %q was not found in the example response", source),
		Suggestions:    s.matcher.SuggestSimilar(source, known, s.cfg.Match.SuggestionLimit),
		Hint:           notFoundHint,
		AvailablePaths: head(known, s.cfg.Match.AvailableLimit),
	}

	if len(res.Suggestions) == 0 {
		res.Closest = match.RankClosest(source, known, s.cfg.Match.ClosestLimit, match.DefaultMinClosestScore)
	}

	s.logger.Debug("source path not found",
		zap.String("source", source),
		zap.Int("suggestions", len(res.Suggestions)),
		zap.Int("closest", len(res.Closest)))

	return res, nil
}

// head returns the first n paths of set, or all of them when n <= 0.
func head(set *fieldpath.Set, n int) []string {
	if n <= 0 {
		return set.Paths()
	}

	return set.Head(n)
}

// SuggestTarget proposes a target path for req.SourcePath. Only response
// mappings of prior are taken into account.
func (s *Service) SuggestTarget(ex Example, req SuggestRequest, prior []mapping.FieldMapping) (SuggestResult, error) {
	source := strings.TrimSpace(req.SourcePath)
	if source == "" {
		return SuggestResult{}, ErrSourcePathRequired
	}

	history := mapping.ByDirection(prior, mapping.DirectionResponse)
	sug := s.suggester.Suggest(source, s.paths(ex), history)

	if sug.Reason == suggest.ReasonExistingMapping {
		return SuggestResult{
			Suggestion:  sug.Path,
			Reason:      sug.Reason,
			Message:     msgExistingMapping,
			MatchedPath: sug.MatchedPath,
		}, nil
	}

	return SuggestResult{
		Suggestion:            sug.Path,
		Reason:                sug.Reason,
		Message:               msgHeuristic,
		HasArrayInSource:      sug.HasArrayInSource,
		ExistingArrayMappings: sug.ExistingArrayMappings,
		Pattern:               sug.Pattern,
	}, nil
}

// CheckMappings validates a mapping file and checks every response source
// path against the example.
func (s *Service) CheckMappings(ex Example, mf *mapping.MappingFile) *diagnostic.Diagnostics {
	res := mapping.Validate(mf)
	if mf == nil {
		return res
	}

	if !ex.present() {
		res.AddWarning(ReasonNoExample, msgNoExample+"; source paths were not checked", "")
		return res
	}

	known := s.paths(ex)

	for _, m := range mf.Mappings {
		if strings.TrimSpace(m.SourcePath) == "" || !m.Direction.IsValid() {
			continue
		}

		if m.Direction == mapping.DirectionRequest {
			res.AddInfo("request_mapping_unchecked", msgRequestMapping, m.SourcePath)
			continue
		}

		found, ok := s.matcher.FindMatch(m.SourcePath, known)
		if !ok {
			res.AddError(ReasonPathNotFound,
				fmt.Sprintf("source path for target %q was not found in the example response", m.TargetPath),
				m.SourcePath,
				s.matcher.SuggestSimilar(m.SourcePath, known, s.cfg.Match.SuggestionLimit)...)

			continue
		}

		if found.Strategy != match.StrategyExact {
			res.AddInfo("matched_with_fallback",
				fmt.Sprintf("matched %s (%s)", found.Path, found.Strategy),
				m.SourcePath)
		}
	}

	s.logger.Debug("mappings checked",
		zap.Int("mappings", len(mf.Mappings)),
		zap.Int("errors", len(res.Errors)),
		zap.Int("warnings", len(res.Warnings)))

	return res
}
