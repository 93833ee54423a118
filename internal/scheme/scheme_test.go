package scheme

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	k := Keys()
	assert.Len(t, k, 21)
	assert.Equal(t, "black", k[0])
	assert.Equal(t, "urgentBorder", k[20])

	k[0] = "mutated"
	assert.Equal(t, "black", Keys()[0], "Keys must return a copy")
}

func TestDefaultIsValid(t *testing.T) {
	d := Default()
	require.NoError(t, d.Validate())
	for k, v := range d.Map() {
		assert.Regexp(t, `^#[0-9a-f]{6}$`, v, "slot %s", k)
	}
}

func TestGetSet(t *testing.T) {
	var s Scheme
	require.NoError(t, s.Set("brightMagenta", "#FF00AA"))
	got, err := s.Get("brightMagenta")
	require.NoError(t, err)
	assert.Equal(t, "#ff00aa", got)

	assert.ErrorIs(t, s.Set("purple", "#000000"), ErrUnknownSlot)
	assert.ErrorIs(t, s.Set("red", "#zzzzzz"), ErrInvalidColor)
	_, err = s.Get("purple")
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Scheme)
		wantErr error
	}{
		{name: "default", mutate: func(*Scheme) {}},
		{name: "empty slot", mutate: func(s *Scheme) { s.Foreground = "" }, wantErr: ErrMissingSlot},
		{name: "bad hex", mutate: func(s *Scheme) { s.UrgentBorder = "#12" }, wantErr: ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse(t *testing.T) {
	data, err := Encode(Default(), FormatJSON)
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), parsed)
}

func TestParseIgnoresExtraKeysAndNormalizes(t *testing.T) {
	raw := Default().Map()
	asAny := map[string]interface{}{}
	for k, v := range raw {
		asAny[k] = v
	}
	asAny["red"] = "FF0000"
	asAny["applications"] = map[string]bool{"vim": true, "foot": false}

	data, err := json.Marshal(asAny)
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", parsed.Red)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "missing slot", input: `{"black": "#000000"}`, wantErr: ErrMissingSlot},
		{name: "null document", input: `null`, wantErr: ErrMissingSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Parse([]byte("{invalid json"))
	assert.Error(t, err)

	m := map[string]interface{}{}
	for k, v := range Default().Map() {
		m[k] = v
	}
	m["cyan"] = 42
	data, _ := json.Marshal(m)
	_, err = Parse(data)
	assert.ErrorIs(t, err, ErrMissingSlot)
}

func TestEncodeJSONKeyOrder(t *testing.T) {
	data, err := Encode(Default(), FormatJSON)
	require.NoError(t, err)

	text := string(data)
	last := -1
	for _, k := range Keys() {
		idx := strings.Index(text, `"`+k+`"`)
		require.GreaterOrEqual(t, idx, 0, "key %s missing", k)
		assert.Greater(t, idx, last, "key %s out of order", k)
		last = idx
	}
	assert.True(t, strings.HasSuffix(text, "}\n"))
}

func TestEncodeNormalizes(t *testing.T) {
	s := Default()
	s.Red = "#FF0080"
	s.Blue = "not a color"

	data, err := Encode(s, FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"red": "#ff0080"`)
	assert.Contains(t, string(data), `"blue": "not a color"`)
}

func TestYAMLRoundTrip(t *testing.T) {
	data, err := Encode(Default(), FormatYAML)
	require.NoError(t, err)

	parsed, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), parsed)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatJSON},
		{input: "JSON", want: FormatJSON},
		{input: "yaml", want: FormatYAML},
		{input: "yml", want: FormatYAML},
		{input: "toml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPresets(t *testing.T) {
	all, err := Presets()
	require.NoError(t, err)
	require.NotEmpty(t, all)

	seen := map[string]bool{}
	for _, p := range all {
		assert.NotEmpty(t, p.Name)
		assert.False(t, seen[p.Name], "duplicate preset %s", p.Name)
		seen[p.Name] = true
		assert.NoError(t, p.Scheme.Validate(), "preset %s", p.Name)
	}

	assert.Equal(t, Default(), all[0].Scheme)
}

func TestFindPreset(t *testing.T) {
	p, err := FindPreset("gruvbox-dark")
	require.NoError(t, err)
	assert.Equal(t, "Gruvbox Dark", p.Name)

	p, err = FindPreset("  DRACULA ")
	require.NoError(t, err)
	assert.Equal(t, "#282a36", p.Scheme.Background)

	_, err = FindPreset("monokai")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestLoadPresetsRejectsBrokenEntries(t *testing.T) {
	_, err := loadPresets([]byte("- name: Broken\n  scheme:\n    black: \"#000000\"\n"))
	assert.ErrorIs(t, err, ErrMissingSlot)
}

func TestStore(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := Default()
	s.Red = "#aa0000"

	require.NoError(t, Save(fs, "/schemes/mine.json", s, FormatJSON))
	loaded, err := Load(fs, "/schemes/mine.json")
	require.NoError(t, err)
	assert.Equal(t, s, loaded)

	require.NoError(t, Save(fs, "/schemes/mine.yaml", s, FormatForPath("/schemes/mine.yaml")))
	loaded, err = Load(fs, "/schemes/mine.yaml")
	require.NoError(t, err)
	assert.Equal(t, s, loaded)

	_, err = Load(fs, "/schemes/missing.json")
	assert.Error(t, err)
}
