package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupLogDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	SetDir(tmp)
	t.Cleanup(func() { Close(); SetDir("") })
	return tmp
}

func readDiag(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestResolveDirFlag(t *testing.T) {
	got, err := ResolveDir("/tmp/mylog")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/mylog" {
		t.Errorf("got %q, want /tmp/mylog", got)
	}
}

func TestResolveDirFlagRelative(t *testing.T) {
	got, err := ResolveDir("logs")
	if err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(wd, "logs"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveDirEnv(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/derbyicon-env-log")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/derbyicon-env-log" {
		t.Errorf("got %q, want /tmp/derbyicon-env-log", got)
	}
}

func TestResolveDirFlagBeatsEnv(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/from-env")
	got, err := ResolveDir("/tmp/from-flag")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/from-flag" {
		t.Errorf("got %q, want /tmp/from-flag", got)
	}
}

func TestResolveDirDefault(t *testing.T) {
	t.Setenv(EnvPath, "")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, appName) {
		t.Errorf("default dir %q does not mention %s", got, appName)
	}
}

func TestInitCreatesFile(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(tmp, FileName)); err != nil {
		t.Errorf("%s not created: %v", FileName, err)
	}
}

func TestInitCreatesNestedDir(t *testing.T) {
	tmp := t.TempDir()
	nested := filepath.Join(tmp, "a", "b")
	SetDir(nested)
	t.Cleanup(func() { Close(); SetDir("") })

	if err := Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(nested, FileName)); err != nil {
		t.Errorf("log file not created in nested dir: %v", err)
	}
}

func TestEncodedEvent(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}
	Encoded(Metrics{Width: 512, Height: 512, RawSizeKB: 1024.5, CompressedSizeKB: 20, CompressionPct: 98, EncodeTimeMs: 12})
	Written("app_icon.png", 20480)
	Close()

	out := readDiag(t, tmp)
	for _, want := range []string{"encode", "width=512", "compression_pct=98", "write", "path=app_icon.png", "bytes=20480", "pid="} {
		if !strings.Contains(out, want) {
			t.Errorf("diagnostics log missing %q, got: %q", want, out)
		}
	}
}

func TestInfoAndWarnf(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}
	Info("preview_terminal: app_icon.png")
	Warnf("preview skipped for %s", "app_icon.png")
	Close()

	out := readDiag(t, tmp)
	for _, want := range []string{"INF preview_terminal: app_icon.png", "WRN preview skipped for app_icon.png"} {
		if !strings.Contains(out, want) {
			t.Errorf("diagnostics log missing %q, got: %q", want, out)
		}
	}
}

func TestHelpersNoopBeforeInit(t *testing.T) {
	tmp := setupLogDir(t)

	Info("dropped")
	Warnf("dropped %d", 1)
	Encoded(Metrics{})
	RunStart("dev", "generate")

	if _, err := os.Stat(filepath.Join(tmp, FileName)); !os.IsNotExist(err) {
		t.Errorf("expected no log file before Init, stat err = %v", err)
	}
}

func TestCloseIdempotent(t *testing.T) {
	setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}
	Close()
	Close() // should not panic
}
