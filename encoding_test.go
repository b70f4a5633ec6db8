package fixedmap_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/comalice/fixedmap"
	"github.com/comalice/fixedmap/testutil"
)

func TestMapJSONRoundTrip(t *testing.T) {
	m := fixedmap.New[testutil.Part, int]()
	m.Insert(testutil.PartB, 10)
	m.Insert(testutil.PartD, 20)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":1,"value":10},{"key":3,"value":20}]`, string(data))

	back := fixedmap.New[testutil.Part, int]()
	require.NoError(t, json.Unmarshal(data, back))
	assert.True(t, fixedmap.Equal(m, back))
}

func TestMapYAMLRoundTrip(t *testing.T) {
	m := fixedmap.New[testutil.Word, int]()
	m.Insert("foo", 1)
	m.Insert("bar", 2)

	data, err := yaml.Marshal(m)
	require.NoError(t, err)

	back := fixedmap.New[testutil.Word, int]()
	require.NoError(t, yaml.Unmarshal(data, back))
	assert.True(t, fixedmap.Equal(m, back), "occupancy must survive the round trip")
}

func TestUnmarshalReplacesContents(t *testing.T) {
	m := fixedmap.New[testutil.Part, int]()
	m.Insert(testutil.PartA, 1)

	require.NoError(t, json.Unmarshal([]byte(`[{"key":2,"value":30}]`), m))
	assert.Equal(t, 1, m.Len())
	assert.False(t, m.Contains(testutil.PartA))
	v, ok := m.Get(testutil.PartC)
	require.True(t, ok)
	assert.Equal(t, 30, v)
}

func TestUnmarshalUninitialized(t *testing.T) {
	var m fixedmap.Map[testutil.Part, int]
	err := json.Unmarshal([]byte(`[]`), &m)
	require.Error(t, err)
	assert.ErrorIs(t, err, fixedmap.ErrUninitialized)

	var s fixedmap.Set[testutil.Part]
	err = json.Unmarshal([]byte(`[]`), &s)
	require.Error(t, err)
	assert.ErrorIs(t, err, fixedmap.ErrUninitialized)
}

func TestSetJSONRoundTrip(t *testing.T) {
	s := fixedmap.NewSet[testutil.Part]()
	s.Insert(testutil.PartC)
	s.Insert(testutil.PartA)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[0,2]`, string(data))

	back := fixedmap.NewSet[testutil.Part]()
	require.NoError(t, json.Unmarshal(data, back))
	assert.True(t, fixedmap.SetEqual(s, back))
}

func TestSetYAMLRoundTrip(t *testing.T) {
	s := fixedmap.NewSet[testutil.Word]()
	s.Insert("alpha")
	s.Insert("beta")

	data, err := yaml.Marshal(s)
	require.NoError(t, err)

	back := fixedmap.NewSet[testutil.Word]()
	require.NoError(t, yaml.Unmarshal(data, back))
	assert.True(t, fixedmap.SetEqual(s, back))
}

func TestSaveLoadFileJSON(t *testing.T) {
	m := fixedmap.New[testutil.Signal, int]()
	m.Insert(testutil.Up(testutil.PartA), 1)
	m.Insert(testutil.Stop(), 2)

	path := filepath.Join(t.TempDir(), "signals.json")
	require.NoError(t, fixedmap.SaveFile(path, m))

	back := fixedmap.New[testutil.Signal, int]()
	require.NoError(t, fixedmap.LoadFile(path, back))
	assert.True(t, fixedmap.Equal(m, back))
}

func TestSaveLoadFileYAML(t *testing.T) {
	m := fixedmap.New[testutil.Part, string]()
	m.Insert(testutil.PartB, "b")

	path := filepath.Join(t.TempDir(), "parts.yaml")
	require.NoError(t, fixedmap.SaveFile(path, m))

	back := fixedmap.New[testutil.Part, string]()
	require.NoError(t, fixedmap.LoadFile(path, back))
	assert.True(t, fixedmap.Equal(m, back))
}

func TestLoadFileMissing(t *testing.T) {
	back := fixedmap.New[testutil.Part, int]()
	err := fixedmap.LoadFile(filepath.Join(t.TempDir(), "absent.json"), back)
	require.Error(t, err)
}
