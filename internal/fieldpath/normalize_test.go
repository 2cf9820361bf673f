package fieldpath

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a[0].b", "a[*].b"},
		{"a[12].b[3]", "a[*].b[*]"},
		{"a[*].b", "a[*].b"},
		{"ns1:a[0].ns2:b", "ns1:a[*].ns2:b"},
		{"a[x].b", "a[x].b"},
		{"a[0", "a[0"},
		{"a..b[1]", "a..b[*]"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"a[0].b", "a[*]", "x[1][2][3]", "[5]", "a[b", "a]]b[[0]]", "ns:a[007].c", "",
	}

	for _, p := range inputs {
		once := Normalize(p)
		assert.Equal(t, once, Normalize(once), "normalize(%q)", p)
	}
}

func TestNormalizeIndexInvariance(t *testing.T) {
	template := "root.items[%d].children[%d].name"

	want := Normalize(fmt.Sprintf(template, 0, 0))
	for i := range 5 {
		for j := range 5 {
			assert.Equal(t, want, Normalize(fmt.Sprintf(template, i, j*11)))
		}
	}
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected bool
	}{
		{"identical", "a.b", "a.b", true},
		{"index variance", "a[0].b", "a[*].b", true},
		{"namespace on one side", "ns1:Foo.bar", "Foo.bar", true},
		{"different namespaces", "ns1:Foo.bar", "ns2:Foo.bar", true},
		{"different leaf", "ns1:Foo.bar", "Foo.baz", false},
		{"array markers ignored", "a[*].b", "a.b", true},
		{"length mismatch", "a.b", "a.b.c", false},
		{"bare star ignored", "a.*.b", "a.b", true},
		{"body prefix", "SOAP-ENV:Body[*].ns1:resp.cidade", "SOAP-ENV:Body[*].resp.cidade", true},
		{"empty", "", "", true},
		{"empty vs key", "", "a", false},
		{"malformed", "a[b", "a.b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Equivalent(tt.a, tt.b))
			assert.Equal(t, tt.expected, Equivalent(tt.b, tt.a), "equivalence is symmetric")
		})
	}
}

func TestStripNamespaces(t *testing.T) {
	assert.Equal(t, "Envelope.Body[*].getCidadeResponse.cidade",
		StripNamespaces("SOAP-ENV:Envelope.SOAP-ENV:Body[*].ns1:getCidadeResponse.cidade"))
	assert.Equal(t, "a[0].b", StripNamespaces("a[0].b"))
	assert.Equal(t, "a[b", StripNamespaces("a[x:b"))
	assert.Empty(t, StripNamespaces(""))
	assert.False(t, strings.Contains(StripNamespaces("x:y:z"), ":"))
}

func TestStripWildcards(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"a[*].b[*]", "a.b"},
		{"a[0].b", "a[0].b"},
		{"a[].b", "a[].b"},
		{"a[foo].b", "a[foo].b"},
		{"a..b", "a..b"},
		{"a[", "a["},
		{"a[*", "a[*"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripWildcards(tt.in))
		})
	}
}
