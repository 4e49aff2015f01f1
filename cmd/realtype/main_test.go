package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	yamlFile := filepath.Join(dir, "values.yaml")
	if err := os.WriteFile(yamlFile, []byte("- 1\n- .nan\n- .inf\n- -.inf\n- [a]\n- {k: v}\n- null\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		desc  string
		args  []string
		stdin string
		want  string
		err   bool
	}{
		{
			desc: "Success: classify literals",
			args: []string{"classify", `true, 123, [], {}`, "undefined", `NaN, new String("x")`},
			want: "boolean\nnumber\narray\nobject\nundefined\nNaN\nstring\n",
		},
		{
			desc: "Success: shallow literals",
			args: []string{"shallow", `[], new String("x"), "x", null`},
			want: "object\nobject\nstring\nobject\n",
		},
		{
			desc: "Success: same",
			args: []string{"same", "11, 12, 13"},
			want: "true\n",
		},
		{
			desc: "Success: same with no values",
			args: []string{"same"},
			want: "false\n",
		},
		{
			desc: "Success: unique",
			args: []string{"unique", `true, 123, "123", false`},
			want: "false\n",
		},
		{
			desc: "Success: count",
			args: []string{"count", "[], 1, true, false, true, 2"},
			want: "array\t1\nboolean\t3\nnumber\t2\n",
		},
		{
			desc: "Success: json",
			args: []string{"classify", "--format", "json", `[1, "a", null, {"k": [true]}]`},
			want: "number\nstring\nnull\nobject\n",
		},
		{
			desc: "Success: json scalar document",
			args: []string{"classify", "-f", "json", `"a"`},
			want: "string\n",
		},
		{
			desc: "Success: yaml file",
			args: []string{"classify", "--format", "yaml", "--file", yamlFile},
			want: "number\nNaN\nInfinity\nnumber\narray\nobject\nnull\n",
		},
		{
			desc:  "Success: stdin",
			args:  []string{"count", "--format", "json", "--file", "-"},
			stdin: `[true, null, false]`,
			want:  "boolean\t2\nnull\t1\n",
		},
		{
			desc: "Error: bad literal",
			args: []string{"classify", "1 2"},
			err:  true,
		},
		{
			desc: "Error: bad json",
			args: []string{"classify", "--format", "json", "[1,"},
			err:  true,
		},
		{
			desc: "Error: unknown format",
			args: []string{"classify", "--format", "xml", "1"},
			err:  true,
		},
		{
			desc: "Error: file and args",
			args: []string{"classify", "--file", yamlFile, "1"},
			err:  true,
		},
		{
			desc: "Error: missing file",
			args: []string{"classify", "--file", filepath.Join(dir, "nope")},
			err:  true,
		},
	}

	for _, test := range tests {
		got, err := execute(t, test.stdin, test.args...)
		switch {
		case err == nil && test.err:
			t.Errorf("TestCommands(%s): got err == nil, want err != nil", test.desc)
			continue
		case err != nil && !test.err:
			t.Errorf("TestCommands(%s): got err == %s, want err == nil", test.desc, err)
			continue
		case err != nil:
			continue
		}

		if diff := pretty.Compare(test.want, got); diff != "" {
			t.Errorf("TestCommands(%s): -want/+got:\n%s", test.desc, diff)
		}
	}
}
