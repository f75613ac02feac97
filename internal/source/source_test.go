package source

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeListFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "videos.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFromFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "plain list",
			content: "intro-video\nlecture-02\n",
			want:    []string{"intro-video", "lecture-02"},
		},
		{
			name:    "comments and blanks skipped",
			content: "# training videos\n\nintro-video\n\n# second part\nlecture-02\n",
			want:    []string{"intro-video", "lecture-02"},
		},
		{
			name:    "whitespace trimmed",
			content: "  intro-video  \n\tlecture-02\t\n",
			want:    []string{"intro-video", "lecture-02"},
		},
		{
			name:    "only comments and blanks",
			content: "# nothing here\n\n#  \n",
			want:    nil,
		},
		{
			name:    "duplicates kept",
			content: "intro-video\nintro-video\n",
			want:    []string{"intro-video", "intro-video"},
		},
		{
			name:    "no trailing newline",
			content: "intro-video",
			want:    []string{"intro-video"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromFile(writeListFile(t, tt.content))
			if err != nil {
				t.Fatalf("FromFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FromFile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "nonexistent.txt")); err == nil {
		t.Error("FromFile() should return error for missing file")
	}
}

func TestFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"plain args", []string{"a", "b"}, []string{"a", "b"}},
		{"empties dropped", []string{"a", "", "  ", "b"}, []string{"a", "b"}},
		{"trimmed", []string{" a ", "b\t"}, []string{"a", "b"}},
		{"no args", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromArgs(tt.args); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FromArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}
