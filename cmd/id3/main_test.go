package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	weatherTrain = "../../id3/testdata/weather_train.txt"
	weatherTest  = "../../id3/testdata/weather_test.txt"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// results returns the Result column of the classification table.
func results(out string) []string {
	var got []string
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "|") {
			continue
		}
		cells := strings.Split(strings.Trim(line, "|"), "|")
		if len(cells) != 3 {
			continue
		}
		first := strings.TrimSpace(cells[0])
		if first == "" || first[0] < '0' || first[0] > '9' {
			continue
		}
		got = append(got, strings.TrimSpace(cells[2]))
	}
	return got
}

func TestBuiltin(t *testing.T) {
	out, err := execute(t, "builtin", "--dot", "")
	require.NoError(t, err)

	assert.Contains(t, out, "Test Data Classification:")
	assert.Equal(t, []string{"Yes", "Yes", "Yes", "Yes", "No", "No"}, results(out))
	assert.NotContains(t, out, "Decision Tree:")
	assert.NotContains(t, out, "written to")
}

func TestBuiltin_PrintTreeAndDOT(t *testing.T) {
	dot := filepath.Join(t.TempDir(), "weather.dot")
	out, err := execute(t, "builtin", "--print-tree", "--dot", dot)
	require.NoError(t, err)

	assert.Contains(t, out, "Decision Tree:\nWeather\n")
	assert.Contains(t, out, "= 1: Humidity")
	assert.Contains(t, out, "Decision tree written to "+dot)

	data, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.Contains(t, string(data), "digraph DecisionTree {")
}

func TestBuiltin_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	dot := filepath.Join(dir, "from-config.dot")
	cfgPath := filepath.Join(dir, "id3.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("print_tree: true\ndot: "+dot+"\n"), 0o644))

	out, err := execute(t, "--config", cfgPath, "builtin")
	require.NoError(t, err)
	assert.Contains(t, out, "Decision Tree:")
	assert.FileExists(t, dot)

	// Flags win over the file.
	require.NoError(t, os.Remove(dot))
	out, err = execute(t, "--config", cfgPath, "builtin", "--print-tree=false", "--dot", "")
	require.NoError(t, err)
	assert.NotContains(t, out, "Decision Tree:")
	assert.NoFileExists(t, dot)
}

func TestFiles(t *testing.T) {
	dot := filepath.Join(t.TempDir(), "tree.dot")
	out, err := execute(t, "files", "--train", weatherTrain, "--test", weatherTest, "--dot", dot, "-p")
	require.NoError(t, err)

	assert.Contains(t, out, "Decision Tree:\nFeature 0\n")
	assert.Equal(t, []string{"Yes", "Yes", "Yes", "Yes", "No", "No"}, results(out))
	assert.FileExists(t, dot)
}

func TestFiles_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}
	train := write("train.txt", "1 1 2\n2 2 1\n")
	wide := write("wide.txt", "1 1 1\n")
	empty := write("empty.txt", "\n")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing train", []string{"files", "--train", filepath.Join(dir, "nope.txt"), "--test", train}, "no such file"},
		{"feature mismatch", []string{"files", "--train", train, "--test", wide, "--dot", ""}, "features"},
		{"empty training set", []string{"files", "--train", empty, "--test", train, "--dot", ""}, "no samples"},
		{"same file", []string{"files", "--train", train, "--test", train}, "same file"},
		{"unexpected argument", []string{"files", "extra"}, "unknown command"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
