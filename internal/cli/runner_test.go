package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"pathscope/internal/structure"
)

const exampleJSON = `{
  "data": {
    "response": {
      "items": [
        {"name": "Curitiba", "uf": "PR", "population": 1963726}
      ]
    }
  }
}`

const mappingsYAML = `
mappings:
  - direction: response
    source: data.response.items[0].name
    target: city.name
  - direction: response
    source: data.response.items[*].mayor
    target: city.mayor
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func newRunner(t *testing.T) (Runner, *bytes.Buffer) {
	t.Helper()

	svc, err := structure.NewService(nil, zaptest.NewLogger(t))
	require.NoError(t, err)

	var out bytes.Buffer

	return NewRunner(svc, &out, zaptest.NewLogger(t)), &out
}

func TestRunAnalyze(t *testing.T) {
	r, out := newRunner(t)

	err := r.Run(&Options{Command: CommandAnalyze, ExamplePath: writeFile(t, "resp.json", exampleJSON)})
	require.NoError(t, err)

	var res struct {
		HasExample bool `json:"hasExample"`
		TotalPaths int  `json:"totalPaths"`
		Paths      []struct {
			Path   string `json:"path"`
			Type   string `json:"type"`
			Sample any    `json:"sample"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))

	assert.True(t, res.HasExample)
	assert.Equal(t, 7, res.TotalPaths)
	assert.Equal(t, "data", res.Paths[0].Path)
	assert.Equal(t, "object", res.Paths[0].Type)
	assert.Equal(t, "[Object]", res.Paths[0].Sample)
}

func TestRunValidate(t *testing.T) {
	r, out := newRunner(t)

	err := r.Run(&Options{
		Command:     CommandValidate,
		ExamplePath: writeFile(t, "resp.json", exampleJSON),
		SourcePath:  "data.response.items[3].uf",
	})
	require.NoError(t, err)

	var res structure.ValidateResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))

	assert.True(t, res.Valid)
	assert.Equal(t, "data.response.items[*].uf", res.MatchedPath)
	assert.Equal(t, "PR", res.Sample)
}

func TestRunSuggest(t *testing.T) {
	r, out := newRunner(t)

	err := r.Run(&Options{
		Command:      CommandSuggest,
		ExamplePath:  writeFile(t, "resp.json", exampleJSON),
		MappingsPath: writeFile(t, "map.yaml", mappingsYAML),
		SourcePath:   "data.response.items[*].name",
	})
	require.NoError(t, err)

	var res structure.SuggestResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))

	assert.Equal(t, "city.name", res.Suggestion)
	assert.EqualValues(t, "existing_mapping", res.Reason)
}

func TestRunCheck(t *testing.T) {
	r, out := newRunner(t)

	err := r.Run(&Options{
		Command:      CommandCheck,
		ExamplePath:  writeFile(t, "resp.json", exampleJSON),
		MappingsPath: writeFile(t, "map.yaml", mappingsYAML),
	})
	require.ErrorIs(t, err, ErrCheckFailed)

	assert.Contains(t, out.String(), `"code": "path_not_found"`)
	assert.Contains(t, out.String(), `"path": "data.response.items[*].mayor"`)
}

func TestRunLoadErrors(t *testing.T) {
	r, _ := newRunner(t)

	err := r.Run(&Options{Command: CommandAnalyze, ExamplePath: filepath.Join(t.TempDir(), "missing.json")})
	assert.ErrorContains(t, err, "load example")

	err = r.Run(&Options{Command: CommandCheck, MappingsPath: writeFile(t, "bad.yaml", "mappings: [\n")})
	assert.ErrorContains(t, err, "load mappings")

	err = r.Run(&Options{Command: "gen"})
	assert.ErrorIs(t, err, ErrUsage)
}
