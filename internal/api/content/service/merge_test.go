package contentService

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mergeDoc struct {
	Name   string            `json:"name"`
	Tags   []string          `json:"tags"`
	Labels map[string]string `json:"labels"`
	Nested struct {
		A int `json:"a"`
		B int `json:"b"`
	} `json:"nested"`
}

func TestMergePatch(t *testing.T) {
	current := mergeDoc{Name: "base", Tags: []string{"x", "y"}, Labels: map[string]string{"es": "hola", "en": "hello"}}
	current.Nested.A = 1
	current.Nested.B = 2

	var out mergeDoc
	err := mergePatch(current, []byte(`{"tags":["z"],"labels":{"en":"hi"},"nested":{"b":5}}`), &out)
	require.NoError(t, err)

	assert.Equal(t, "base", out.Name)
	assert.Equal(t, []string{"z"}, out.Tags)
	assert.Equal(t, map[string]string{"es": "hola", "en": "hi"}, out.Labels)
	assert.Equal(t, 1, out.Nested.A)
	assert.Equal(t, 5, out.Nested.B)
}

func TestMergePatchNullReplaces(t *testing.T) {
	current := mergeDoc{Name: "base", Labels: map[string]string{"es": "hola"}}

	var out mergeDoc
	require.NoError(t, mergePatch(current, []byte(`{"labels":null}`), &out))

	assert.Nil(t, out.Labels)
	assert.Equal(t, "base", out.Name)
}

func TestMergePatchEmptyObjectKeepsCurrent(t *testing.T) {
	current := mergeDoc{Name: "base", Tags: []string{"x"}}

	var out mergeDoc
	require.NoError(t, mergePatch(current, []byte(`{}`), &out))

	assert.Equal(t, current.Name, out.Name)
	assert.Equal(t, current.Tags, out.Tags)
}

func TestMergePatchRejectsNonObject(t *testing.T) {
	var out mergeDoc
	assert.Error(t, mergePatch(mergeDoc{}, []byte(`[1]`), &out))
}
