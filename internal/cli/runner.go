package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"pathscope/internal/diagnostic"
	"pathscope/internal/mapping"
	"pathscope/internal/payload"
	"pathscope/internal/structure"
)

// ErrCheckFailed is returned by the check command when a mapping has errors.
var ErrCheckFailed = errors.New("mapping check failed")

// Engine is the part of structure.Service the commands use.
type Engine interface {
	Analyze(ex structure.Example) structure.AnalyzeResult
	ValidatePath(ex structure.Example, req structure.ValidateRequest) (structure.ValidateResult, error)
	SuggestTarget(ex structure.Example, req structure.SuggestRequest, prior []mapping.FieldMapping) (structure.SuggestResult, error)
	CheckMappings(ex structure.Example, mf *mapping.MappingFile) *diagnostic.Diagnostics
}

// Runner executes one subcommand and writes its result as JSON.
type Runner interface {
	Run(opts *Options) error
}

type runnerImpl struct {
	engine Engine
	out    io.Writer
	logger *zap.Logger
}

// NewRunner creates a default runner implementation.
func NewRunner(engine Engine, out io.Writer, logger *zap.Logger) Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &runnerImpl{engine: engine, out: out, logger: logger}
}

// Run executes the command named by opts.
func (r *runnerImpl) Run(opts *Options) error {
	ex, err := r.loadExample(opts)
	if err != nil {
		return err
	}

	mf, err := r.loadMappings(opts)
	if err != nil {
		return err
	}

	r.logger.Debug("running command",
		zap.String("command", opts.Command),
		zap.Bool("hasExample", ex.Payload != nil),
		zap.Int("mappings", len(mf.Mappings)))

	switch opts.Command {
	case CommandAnalyze:
		return r.write(r.engine.Analyze(ex))

	case CommandValidate:
		res, err := r.engine.ValidatePath(ex, structure.ValidateRequest{
			SourcePath: opts.SourcePath,
			Direction:  opts.Direction,
		})
		if err != nil {
			return fmt.Errorf("validate: %w", err)
		}

		return r.write(res)

	case CommandSuggest:
		res, err := r.engine.SuggestTarget(ex, structure.SuggestRequest{SourcePath: opts.SourcePath}, mf.Mappings)
		if err != nil {
			return fmt.Errorf("suggest: %w", err)
		}

		return r.write(res)

	case CommandCheck:
		diags := r.engine.CheckMappings(ex, mf)
		if err := r.write(diags); err != nil {
			return err
		}

		if diags.HasErrors() {
			return fmt.Errorf("%w: %d error(s)", ErrCheckFailed, len(diags.Errors))
		}

		return nil

	default:
		return fmt.Errorf("unknown command %q: %w", opts.Command, ErrUsage)
	}
}

func (r *runnerImpl) loadExample(opts *Options) (structure.Example, error) {
	if opts.ExamplePath == "" {
		return structure.Example{}, nil
	}

	v, err := payload.LoadFile(opts.ExamplePath)
	if err != nil {
		return structure.Example{}, fmt.Errorf("load example: %w", err)
	}

	return structure.Example{Key: opts.ExampleKey(), Payload: v}, nil
}

func (r *runnerImpl) loadMappings(opts *Options) (*mapping.MappingFile, error) {
	if opts.MappingsPath == "" {
		return &mapping.MappingFile{}, nil
	}

	mf, err := mapping.LoadFile(opts.MappingsPath)
	if err != nil {
		return nil, fmt.Errorf("load mappings: %w", err)
	}

	return mf, nil
}

func (r *runnerImpl) write(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return nil
}
