package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `json:"name" yaml:"name"`
	Owner *string `json:"owner" yaml:"owner"`
}

type sampleList []sample

func (s sampleList) Headers() []string { return []string{"name", "owner"} }

func (s sampleList) Rows() [][]string {
	rows := make([][]string, 0, len(s))
	for _, v := range s {
		owner := "-"
		if v.Owner != nil {
			owner = *v.Owner
		}
		rows = append(rows, []string{v.Name, owner})
	}
	return rows
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"json", "yaml", "table", "detail"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}

	_, err := ParseFormat("xml")
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, JSON, sampleList{{Name: "a"}}))
	assert.JSONEq(t, `[{"name":"a","owner":null}]`, buf.String())
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, YAML, sampleList{{Name: "a"}}))
	assert.Equal(t, "- name: a\n  owner: null\n", buf.String())
}

func TestWrite_Table(t *testing.T) {
	owner := "ops"
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Table, sampleList{{Name: "first"}, {Name: "second", Owner: &owner}}))

	got := buf.String()
	for _, want := range []string{"name", "owner", "first", "second", "ops", "-"} {
		assert.Contains(t, got, want)
	}
	assert.Less(t, strings.Index(got, "first"), strings.Index(got, "second"))
}

func TestWrite_Detail(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Detail, sampleList{{Name: "first"}, {Name: "second"}}))

	got := buf.String()
	assert.Contains(t, got, "── first")
	assert.Contains(t, got, "── second")
	assert.Contains(t, got, "owner")
	assert.Contains(t, got, "\n\n")
}

func TestWrite_TableUnsupported(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Table, map[string]string{"a": "b"})
	assert.ErrorContains(t, err, "table output is not supported")
}

func TestDetailBuilder(t *testing.T) {
	db := NewDetailBuilder(8, LabelStyle, SectionStyle)
	db.Section("Info")
	db.Row("Name", "test")
	db.Blank()
	db.Section("Details")
	db.Row("Status", "active")

	got := db.String()
	assert.Contains(t, got, "── Info")
	assert.Contains(t, got, "───")
	assert.Contains(t, got, "test")
	assert.Contains(t, got, "Details")
	assert.Contains(t, got, "active")
}
