package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathscope/internal/fieldpath"
)

func TestFindMatch_FallbackOrder(t *testing.T) {
	known := fieldpath.NewSet("SOAP-ENV:Body[*].getCidadeResponse.cidade")
	m := NewMatcher(Options{})

	got, ok := m.FindMatch("ns1:getCidadeResponse.cidade", known)
	require.True(t, ok)
	assert.Equal(t, "SOAP-ENV:Body[*].getCidadeResponse.cidade", got.Path)
	assert.Equal(t, StrategyBodyPrefixed, got.Strategy)
	assert.Equal(t, "SOAP-ENV:Body[*].ns1:getCidadeResponse.cidade", got.Candidate)

	got, ok = m.FindMatch("getCidadeResponse.cidade", known)
	require.True(t, ok)
	assert.Equal(t, "SOAP-ENV:Body[*].getCidadeResponse.cidade", got.Path)
	assert.Equal(t, StrategyBodyPrefixed, got.Strategy)

	_, ok = m.FindMatch("unrelated.path", known)
	assert.False(t, ok)
}

func TestFindMatch_Strategies(t *testing.T) {
	known := fieldpath.NewSet(
		"SOAP-ENV:Body",
		"SOAP-ENV:Body[*]",
		"SOAP-ENV:Body[*].ns1:getCidadeResponse",
		"SOAP-ENV:Body[*].ns1:getCidadeResponse[*].cidade",
		"data.items[*].name",
	)

	tests := []struct {
		name      string
		candidate string
		path      string
		strategy  Strategy
	}{
		{"exact", "data.items[*].name", "data.items[*].name", StrategyExact},
		{"index variance", "data.items[3].name", "data.items[*].name", StrategyExact},
		{"namespace variance", "SOAP-ENV:Body[0].getCidadeResponse[0].cidade", "SOAP-ENV:Body[*].ns1:getCidadeResponse[*].cidade", StrategyExact},
		{"envelope", "soapenv:Envelope.SOAP-ENV:Body[*].ns1:getCidadeResponse", "SOAP-ENV:Body[*].ns1:getCidadeResponse", StrategyEnvelopeStripped},
		{"body", "getCidadeResponse[0].cidade", "SOAP-ENV:Body[*].ns1:getCidadeResponse[*].cidade", StrategyBodyPrefixed},
	}

	m := NewMatcher(Options{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.FindMatch(tt.candidate, known)
			require.True(t, ok)
			assert.Equal(t, tt.path, got.Path)
			assert.Equal(t, tt.strategy, got.Strategy)
		})
	}
}

func TestFindMatch_BodyMarkerSkipsFallback(t *testing.T) {
	known := fieldpath.NewSet("SOAP-ENV:Body[*].Body.x")
	m := NewMatcher(Options{})

	_, ok := m.FindMatch("Body.x", known)
	assert.False(t, ok, "paths starting with Body are not re-prefixed")
}

func TestFindMatch_CustomBody(t *testing.T) {
	known := fieldpath.NewSet("soap:Body[*].resp.value")
	m := NewMatcher(Options{BodyElement: "soap:Body", BodyMarkers: []string{"soap:Body"}})

	got, ok := m.FindMatch("resp.value", known)
	require.True(t, ok)
	assert.Equal(t, "soap:Body[*].resp.value", got.Path)
}

func TestFindMatch_NoThrow(t *testing.T) {
	m := NewMatcher(Options{})

	for _, known := range []*fieldpath.Set{nil, fieldpath.NewSet(), fieldpath.NewSet("a")} {
		for _, c := range []string{"", "[", "]", "a[", "..", "x:Envelope."} {
			assert.NotPanics(t, func() { m.FindMatch(c, known) })
		}
	}

	_, ok := m.FindMatch("a", nil)
	assert.False(t, ok)
}

func TestSuggestSimilar(t *testing.T) {
	known := fieldpath.NewSet(
		"SOAP-ENV:Body[*].ns1:getCidadeResponse",
		"SOAP-ENV:Body[*].ns1:getCidadeResponse[*].Cidade",
		"SOAP-ENV:Body[*].ns1:getCidadeResponse[*].uf",
		"other",
	)
	m := NewMatcher(Options{})

	got := m.SuggestSimilar("NS2:GETCIDADERESPONSE[*].cidade", known, 5)
	assert.Equal(t, []string{"SOAP-ENV:Body[*].ns1:getCidadeResponse[*].Cidade"}, got)

	got = m.SuggestSimilar("SOAP-ENV:Body[*].ns1:getCidadeResponse[*].uf.extra", known, 5)
	assert.Equal(t, []string{
		"SOAP-ENV:Body[*].ns1:getCidadeResponse",
		"SOAP-ENV:Body[*].ns1:getCidadeResponse[*].uf",
	}, got, "known paths contained in the candidate are suggested too")

	got = m.SuggestSimilar("getCidadeResponse", known, 2)
	assert.Len(t, got, 2)

	got = m.SuggestSimilar("getCidadeResponse", known, 0)
	assert.Len(t, got, 3)

	got = m.SuggestSimilar("nothing-like-it", known, 5)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Empty(t, m.SuggestSimilar("x", nil, 5))
}

func TestStripEnvelope(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"soapenv:Envelope.soapenv:Body", "soapenv:Body", true},
		{":Envelope.x", "x", true},
		{"Envelope.x", "Envelope.x", false},
		{"soapenv:Envelope[*].x", "soapenv:Envelope[*].x", false},
		{"soapenv:Envelope", "soapenv:Envelope", false},
		{"a.soapenv:Envelope.x", "a.soapenv:Envelope.x", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := StripEnvelope(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStripBody(t *testing.T) {
	got, ok := StripBody("SOAP-ENV:Body[*].resp", DefaultBodyMarkers)
	assert.True(t, ok)
	assert.Equal(t, "resp", got)

	got, ok = StripBody("Body[*].resp", DefaultBodyMarkers)
	assert.True(t, ok)
	assert.Equal(t, "resp", got)

	got, ok = StripBody("Body.resp", DefaultBodyMarkers)
	assert.False(t, ok)
	assert.Equal(t, "Body.resp", got)

	assert.True(t, HasBodyPrefix("BodyPart.x", DefaultBodyMarkers))
	assert.False(t, HasBodyPrefix("ns:Body.x", DefaultBodyMarkers))
}
