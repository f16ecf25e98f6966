package adapter

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "a.png"), "png")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "b.mat"), "mat")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if containsPath(visited, filepath.Join(nestedDir, "b.mat")) {
			t.Fatalf("Walk() unexpectedly visited nested file when recursive is false")
		}

		if !containsPath(visited, filepath.Join(root, "a.png")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "b.mat")
		writeTestFile(t, child, "mat")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file when recursive")
		}
	})
}

func TestLocalSourceFSAdapter_ReadFileAndFileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "Scene.unity")
	writeTestFile(t, path, "%YAML 1.1\n")

	got, err := adapter.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != "%YAML 1.1\n" {
		t.Fatalf("ReadFile() = %q", string(got))
	}

	info, err := adapter.FileInfo(m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	if !adapter.Exists(m.Path(path)) {
		t.Fatalf("Exists() = false for an existing file")
	}

	if adapter.Exists(m.Path(filepath.Join(root, "missing"))) {
		t.Fatalf("Exists() = true for a missing file")
	}
}

func TestLocalSourceFSAdapter_ReadDirIsSorted(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.txt"), "b")
	writeTestFile(t, filepath.Join(root, "a.txt"), "a")
	mustMkdir(t, filepath.Join(root, "c"))

	entries, err := adapter.ReadDir(m.Path(root))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}

	want := []string{"a.txt", "b.txt", "c"}
	if len(names) != len(want) {
		t.Fatalf("ReadDir() = %v, want %v", names, want)
	}

	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ReadDir() = %v, want %v", names, want)
		}
	}
}

func TestLocalSourceFSAdapter_IsEmptyDirAndIsProjectDir(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()

	empty, err := adapter.IsEmptyDir(m.Path(root))
	if err != nil || !empty {
		t.Fatalf("IsEmptyDir() = %v, %v; want true, nil", empty, err)
	}

	if adapter.IsProjectDir(m.Path(root)) {
		t.Fatalf("IsProjectDir() = true for an empty dir")
	}

	mustMkdir(t, filepath.Join(root, "Assets"))
	mustMkdir(t, filepath.Join(root, "ProjectSettings"))

	empty, err = adapter.IsEmptyDir(m.Path(root))
	if err != nil || empty {
		t.Fatalf("IsEmptyDir() = %v, %v; want false, nil", empty, err)
	}

	if !adapter.IsProjectDir(m.Path(root)) {
		t.Fatalf("IsProjectDir() = false for a project layout")
	}
}

func TestLocalSourceFSAdapter_Glob(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	mustMkdirAll(t, filepath.Join(root, "Assets", "Textures", "UI"))
	writeTestFile(t, filepath.Join(root, "Assets", "Shared.cginc"), "")
	writeTestFile(t, filepath.Join(root, "Assets", "Textures", "a.png"), "")
	writeTestFile(t, filepath.Join(root, "Assets", "Textures", "UI", "b.png"), "")
	writeTestFile(t, filepath.Join(root, "Assets", "Textures", "UI", "b.png.meta"), "")
	mustMkdirAll(t, filepath.Join(root, "Assets", "Art [old]"))
	writeTestFile(t, filepath.Join(root, "Assets", "Art [old]", "c.png"), "")

	tests := []struct {
		name    string
		pattern string
		want    []m.Path
	}{
		{
			name:    "top level only",
			pattern: "Assets/*.cginc",
			want:    []m.Path{"Assets/Shared.cginc"},
		},
		{
			name:    "recursive",
			pattern: "Assets/Textures/**/*.png",
			want:    []m.Path{"Assets/Textures/UI/b.png", "Assets/Textures/a.png"},
		},
		{
			name:    "exact file",
			pattern: "Assets/Textures/a.png",
			want:    []m.Path{"Assets/Textures/a.png"},
		},
		{
			name:    "directories are not returned",
			pattern: "Assets/*",
			want:    []m.Path{"Assets/Shared.cginc"},
		},
		{
			name:    "no match",
			pattern: "Missing/**/*.png",
			want:    []m.Path{},
		},
		{
			name:    "escaped brackets are literal",
			pattern: `Assets/Art \[old\]/**`,
			want:    []m.Path{"Assets/Art [old]/c.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := adapter.Glob(m.Path(root), tt.pattern)
			if err != nil {
				t.Fatalf("Glob() error = %v", err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("Glob() = %v, want %v", got, tt.want)
			}

			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("Glob() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestLocalSourceFSAdapter_CopyFileClearsReadOnly(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits differ on windows")
	}

	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	src := filepath.Join(root, "src.asset")
	dst := filepath.Join(root, "dst.asset")
	writeTestFile(t, src, "payload")

	if err := os.Chmod(src, 0o444); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	if err := adapter.CopyFile(m.Path(src), m.Path(dst)); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat copy: %v", err)
	}

	if info.Mode().Perm()&0o200 == 0 {
		t.Fatalf("CopyFile() left copy read-only: %v", info.Mode())
	}

	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "payload" {
		t.Fatalf("copy content = %q, %v", data, err)
	}
}

func TestLocalSourceFSAdapter_RemoveAllReadOnlyTree(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits differ on windows")
	}

	adapter := NewLocalSourceFSAdapter()

	tmp, err := adapter.CreateTempDir("reprowiz-test-*")
	if err != nil {
		t.Fatalf("CreateTempDir() error = %v", err)
	}

	nested := filepath.Join(string(tmp), "Assets")
	mustMkdir(t, nested)
	file := filepath.Join(nested, "locked.png")
	writeTestFile(t, file, "x")

	if err := os.Chmod(file, 0o444); err != nil {
		t.Fatalf("chmod file: %v", err)
	}

	if err := os.Chmod(nested, 0o555); err != nil {
		t.Fatalf("chmod dir: %v", err)
	}

	if err := adapter.RemoveAll(tmp); err != nil {
		t.Fatalf("RemoveAll() error = %v", err)
	}

	if _, err := os.Stat(string(tmp)); !os.IsNotExist(err) {
		t.Fatalf("RemoveAll() did not remove directory, stat err=%v", err)
	}
}

func TestLocalSourceFSAdapter_WriteFileAtomicAndRemove(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "out", "ProjectStats.json")

	if err := adapter.WriteFileAtomic(m.Path(path), []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil || string(data) != "{}" {
		t.Fatalf("atomic write content = %q, %v", data, err)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("WriteFileAtomic() left temp files behind: %d entries", len(entries))
	}

	if err := adapter.Remove(m.Path(path)); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if err := adapter.Remove(m.Path(path)); err != nil {
		t.Fatalf("Remove() of a missing file error = %v", err)
	}
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	joined := adapter.JoinPath("/tmp", "project", "Assets")
	if string(joined) != filepath.Join("/tmp", "project", "Assets") {
		t.Fatalf("JoinPath() = %s", joined)
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func mustMkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
