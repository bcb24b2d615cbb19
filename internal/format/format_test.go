package format

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name        string   `json:"name"`
	UniqueCount int      `json:"uniqueCount"`
	Items       []string `json:"items"`
	Ratio       float64  `json:"ratio"`
	Empty       []string `json:"empty"`
	Missing     *string  `json:"missing"`
	Done        bool     `json:"done"`
}

func TestParse(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Format{
		"":         JSON,
		"json":     JSON,
		" EDN ":    EDN,
		"text":     Text,
		"md":       Markdown,
		"markdown": Markdown,
		"template": Template,
	} {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := Parse("yaml")
	var ufe UnknownFormatError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, "yaml", ufe.Name)
	assert.Contains(t, err.Error(), "json|edn|text|markdown|template")
}

func TestWrite_JSONEnvelope(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample{Name: "a & b", UniqueCount: 2, Items: []string{"x"}}, JSON, false))
	assert.Equal(t,
		`{"data":{"name":"a & b","uniqueCount":2,"items":["x"],"ratio":0,"empty":null,"missing":null,"done":false}}`+"\n",
		buf.String())
}

func TestWrite_RejectsRenderedFormats(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.Error(t, Write(&buf, sample{}, Text, false))
	assert.False(t, Text.Structured())
	assert.True(t, EDN.Structured())
}

func TestWriteEDN_Compact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := sample{Name: "two sum", UniqueCount: 3, Items: []string{"a", "b"}, Ratio: 0.5, Empty: []string{}, Done: true}
	require.NoError(t, WriteEDN(&buf, v, false))
	assert.Equal(t,
		`{:done true :empty [] :items ["a" "b"] :missing nil :name "two sum" :ratio 0.5 :unique-count 3}`+"\n",
		buf.String())
}

func TestWriteEDN_Pretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, map[string]any{"items": []string{"a"}}, EDN, true))
	assert.Equal(t, "{\n  :data {\n    :items [\n      \"a\"\n    ]\n  }\n}\n", buf.String())
}
