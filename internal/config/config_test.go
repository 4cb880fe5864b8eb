package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "train.txt", cfg.Train)
	assert.Equal(t, "test.txt", cfg.Test)
	assert.Equal(t, "tree.dot", cfg.DOT)
	assert.False(t, cfg.PrintTree)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    *Config
	}{
		{
			name:    "yaml",
			file:    "id3.yaml",
			content: "train: data/a.txt\ntest: data/b.txt\nprint_tree: true\n",
			want:    &Config{Train: "data/a.txt", Test: "data/b.txt", DOT: "tree.dot", PrintTree: true},
		},
		{
			name:    "yml clears dot",
			file:    "id3.yml",
			content: "dot: \"\"\n",
			want:    &Config{Train: "train.txt", Test: "test.txt", DOT: ""},
		},
		{
			name:    "toml",
			file:    "id3.toml",
			content: "train = \"x.txt\"\ndot = \"out/x.dot\"\nprint_tree = true\n",
			want:    &Config{Train: "x.txt", Test: "test.txt", DOT: "out/x.dot", PrintTree: true},
		},
		{
			name:    "upper-case extension",
			file:    "ID3.TOML",
			content: "test = \"t.txt\"\n",
			want:    &Config{Train: "train.txt", Test: "t.txt", DOT: "tree.dot"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Load(writeFile(t, tc.file, tc.content))
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Load mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"bad yaml", "c.yaml", "train: [unclosed\n", "config: parse"},
		{"bad toml", "c.toml", "train = \n", "config: parse"},
		{"unknown extension", "c.json", "{}", `unsupported file extension ".json"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tc.file, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{Train: "a", Test: "b"}, false},
		{"no dot is fine", Config{Train: "a", Test: "b", DOT: ""}, false},
		{"missing train", Config{Test: "b"}, true},
		{"missing test", Config{Train: "a"}, true},
		{"same file", Config{Train: "a", Test: "a"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
