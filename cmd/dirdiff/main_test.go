package main

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const usage = "\ndirdiff v0.1\n\nUsage:\n\tdirdiff <dir1> <dir2>\n\n" +
	"Find difference of two directories recursively based on file size and modification time.\n\n"

func execute(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := runCLI("dirdiff", args, &stdout, &stderr, false)
	return code, stdout.String(), stderr.String()
}

func writeFile(req *require.Assertions, path string, size int, modTime int64) {
	req.NoError(os.MkdirAll(filepath.Dir(path), 0o755))
	req.NoError(os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0o644))
	ts := time.Unix(modTime, 0)
	req.NoError(os.Chtimes(path, ts, ts))
}

func sortedLines(s string) []string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	sort.Strings(lines)
	return lines
}

func TestUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no args", args: nil},
		{name: "one arg", args: []string{"dir1"}},
		{name: "three args", args: []string{"dir1", "dir2", "dir3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requires := require.New(t)

			code, stdout, stderr := execute(tt.args...)

			requires.Equal(1, code)
			requires.Empty(stdout)
			requires.Equal(usage, stderr)
		})
	}
}

func TestValidationErrors(t *testing.T) {
	testChdir(t, t.TempDir())
	requires := require.New(t)
	requires.NoError(os.Mkdir("dir1", 0o755))
	requires.NoError(os.Mkdir("dir2", 0o755))
	writeFile(requires, "file.txt", 1, 100)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "same directory", args: []string{"dir1", "dir1/"}, want: "Same directories\n"},
		{name: "same directory via parent", args: []string{"dir1", "dir2/../dir1"}, want: "Same directories\n"},
		{name: "not a directory", args: []string{"dir1", "file.txt"}, want: "Not a directory: file.txt\n"},
		{name: "missing", args: []string{"nope", "dir2"}, want: "nope: no such file or directory\n"},
		{name: "unknown flag", args: []string{"--nope", "dir1", "dir2"}, want: "unknown flag: --nope\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requires := require.New(t)

			code, stdout, stderr := execute(tt.args...)

			requires.Equal(1, code)
			requires.Empty(stdout)
			requires.Equal(tt.want, stderr)
		})
	}
}

func TestReport(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(req *require.Assertions)
		args    []string
		want    []string
	}{
		{
			name: "identical trees",
			prepare: func(req *require.Assertions) {
				writeFile(req, "dir1/a/f", 10, 100)
				writeFile(req, "dir2/a/f", 10, 100)
			},
			want: nil,
		},
		{
			name: "size differs",
			prepare: func(req *require.Assertions) {
				writeFile(req, "dir1/a/f", 10, 100)
				writeFile(req, "dir2/a/f", 20, 100)
			},
			want: []string{"DIFFERS: dir1/a/f"},
		},
		{
			name: "missing in second",
			prepare: func(req *require.Assertions) {
				writeFile(req, "dir1/x.txt", 1, 100)
			},
			want: []string{"MISSING: dir2/x.txt"},
		},
		{
			name: "missing in first",
			prepare: func(req *require.Assertions) {
				writeFile(req, "dir2/y.txt", 1, 100)
			},
			want: []string{"MISSING: dir1/y.txt"},
		},
		{
			name: "trailing separators are stripped",
			prepare: func(req *require.Assertions) {
				writeFile(req, "dir1/x.txt", 1, 100)
				writeFile(req, "dir1/m.txt", 1, 100)
				writeFile(req, "dir2/m.txt", 1, 200)
			},
			args: []string{"dir1//", "dir2/"},
			want: []string{"DIFFERS: dir1/m.txt", "MISSING: dir2/x.txt"},
		},
		{
			name: "paths keep the argument shape",
			prepare: func(req *require.Assertions) {
				writeFile(req, "dir1/x.txt", 1, 100)
			},
			args: []string{"./dir1", "dir1/../dir2"},
			want: []string{"MISSING: dir1/../dir2/x.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requires := require.New(t)
			testChdir(t, t.TempDir())
			requires.NoError(os.Mkdir("dir1", 0o755))
			requires.NoError(os.Mkdir("dir2", 0o755))
			tt.prepare(requires)
			args := tt.args
			if args == nil {
				args = []string{"dir1", "dir2"}
			}

			code, stdout, stderr := execute(args...)

			requires.Equal(0, code, stderr)
			requires.Empty(stderr)
			requires.Equal(tt.want, sortedLines(stdout))
		})
	}
}

func TestFatalTraversalError(t *testing.T) {
	requires := require.New(t)
	testChdir(t, t.TempDir())
	writeFile(requires, "dir1/entry/child", 1, 100)
	writeFile(requires, "dir2/entry", 1, 100)

	code, stdout, stderr := execute("dir1", "dir2")

	requires.Equal(1, code)
	requires.Empty(stdout)
	requires.Equal("dir2/entry/child: not a directory\n", stderr)
}

func TestColorAlways(t *testing.T) {
	requires := require.New(t)
	testChdir(t, t.TempDir())
	requires.NoError(os.Mkdir("dir2", 0o755))
	writeFile(requires, "dir1/x.txt", 1, 100)

	code, stdout, _ := execute("--color=always", "dir1", "dir2")

	requires.Equal(0, code)
	requires.Equal("\x1b[31mMISSING\x1b[0m: dir2/x.txt\n", stdout)
}

func TestLogFile(t *testing.T) {
	requires := require.New(t)
	testChdir(t, t.TempDir())
	requires.NoError(os.Mkdir("dir1", 0o755))
	requires.NoError(os.Mkdir("dir2", 0o755))
	writeFile(requires, "dir1/f", 1, 100)
	writeFile(requires, "dir2/f", 2, 100)

	code, stdout, stderr := execute("--loglvl=info", "--logfile=run.log", "dir1", "dir2")

	requires.Equal(0, code)
	requires.Empty(stderr)
	requires.Equal("DIFFERS: dir1/f\n", stdout)
	data, err := os.ReadFile("run.log")
	requires.NoError(err)
	requires.Contains(string(data), `"msg":"comparison started"`)
	requires.Contains(string(data), `"msg":"comparison finished"`)
	requires.Contains(string(data), `"differs":1`)
}

func TestVersionFlag(t *testing.T) {
	requires := require.New(t)

	code, stdout, stderr := execute("--version")

	requires.Equal(0, code)
	requires.Empty(stderr)
	requires.Contains(stdout, "v0.1")
}
