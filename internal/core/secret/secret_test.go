package secret

import (
	"os"
	"path/filepath"
	"testing"
)

func writeKeyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}
	return path
}

func TestLoad_FirstLineOnly(t *testing.T) {
	path := writeKeyFile(t, "super-secret\nsecond line ignored\n")
	k, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if string(k.Key()) != "super-secret" {
		t.Fatalf("unexpected key: %q", k.Key())
	}
}

func TestLoad_TrimsWhitespace(t *testing.T) {
	path := writeKeyFile(t, "  padded-key \n")
	k, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if string(k.Key()) != "padded-key" {
		t.Fatalf("unexpected key: %q", k.Key())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeKeyFile(t, "\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty key file")
	}
}

func TestReload_SwapsKey(t *testing.T) {
	path := writeKeyFile(t, "old-key\n")
	k, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if err := os.WriteFile(path, []byte("new-key\n"), 0o600); err != nil {
		t.Fatalf("rewrite key file: %v", err)
	}
	if err := k.Reload(); err != nil {
		t.Fatalf("Reload error: %v", err)
	}
	if string(k.Key()) != "new-key" {
		t.Fatalf("expected new-key after reload, got %q", k.Key())
	}
}

func TestReload_KeepsOldKeyOnFailure(t *testing.T) {
	path := writeKeyFile(t, "stable-key\n")
	k, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove key file: %v", err)
	}
	if err := k.Reload(); err == nil {
		t.Fatal("expected reload error after file removal")
	}
	if string(k.Key()) != "stable-key" {
		t.Fatalf("old key lost on failed reload: %q", k.Key())
	}
}
