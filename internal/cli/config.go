package cli

import "pathscope/internal/mapping"

// Subcommands accepted by ParseArgs.
const (
	CommandAnalyze  = "analyze"
	CommandValidate = "validate"
	CommandSuggest  = "suggest"
	CommandCheck    = "check"
)

// Commands lists the subcommands in usage order.
var Commands = []string{CommandAnalyze, CommandValidate, CommandSuggest, CommandCheck}

// Options stores CLI options for a single run.
type Options struct {
	Command      string
	ExamplePath  string
	MappingsPath string
	SourcePath   string
	Direction    mapping.Direction
	ConfigPath   string
	EnvFiles     []string
	LogLevel     string
	ShowVersion  bool
}

// ExampleKey identifies the example file for the path inventory cache.
func (o *Options) ExampleKey() string {
	return o.ExamplePath
}
