package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("pt-BR") {
		t.Fatalf("expected locale pt-BR")
	}
	if got, ok := bundle.Message("en-US", "users.heading"); !ok || got != "Users" {
		t.Fatalf("users.heading = %q, %v", got, ok)
	}
}

func TestEmbeddedLocalesTranslateEveryBaseKey(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for _, locale := range bundle.Locales() {
		if missing := bundle.MissingKeys(locale); len(missing) > 0 {
			t.Fatalf("locale %s missing keys: %v", locale, missing)
		}
	}
}

func TestDefaultRegistersPrinterMessages(t *testing.T) {
	Default()

	tests := []struct {
		tag  language.Tag
		want string
	}{
		{tag: language.English, want: "Page 2 of 5"},
		{tag: language.MustParse("en-US"), want: "Page 2 of 5"},
		{tag: language.MustParse("pt-BR"), want: "Página 2 de 5"},
	}
	for _, tc := range tests {
		got := message.NewPrinter(tc.tag).Sprintf("users.pagination.summary", 2, 5)
		if got != tc.want {
			t.Fatalf("%s summary = %q, want %q", tc.tag, got, tc.want)
		}
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if got, ok := bundle.Message("fr-FR", "users.heading"); !ok || got != "Users" {
		t.Fatalf("fallback = %q, %v", got, ok)
	}
	if _, ok := bundle.Message("en-US", "nope"); ok {
		t.Fatal("expected missing key")
	}
	if _, ok := bundle.Message("en-US", " "); ok {
		t.Fatal("expected blank key to miss")
	}
}

func TestLoadFromFSRejectsCoreKeyOutsideCoreNamespace(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/dashboard.yaml"), `locale: "en-US"
namespace: "dashboard"
messages:
  "core.bad": "nope"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "core.good": "ok"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/dashboard.yaml"), `locale: "en-US"
namespace: "dashboard"
messages:
  "a.key": "b"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/pt-BR/core.yaml"), `locale: "pt-BR"
namespace: "core"
messages:
  "core.good": "ok"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestLoadFromFSRejectsMismatchedLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "pt-BR"
namespace: "core"
messages:
  "core.good": "ok"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestParseCatalogFile(t *testing.T) {
	parsed, err := parseCatalogFile([]byte(`# comment
locale: "en-US"
namespace: "core"
messages:
  "a.quote": "say \"hi\""
  "a.colon": "x: y"
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Messages["a.quote"] != `say "hi"` {
		t.Fatalf("a.quote = %q", parsed.Messages["a.quote"])
	}
	if parsed.Messages["a.colon"] != "x: y" {
		t.Fatalf("a.colon = %q", parsed.Messages["a.colon"])
	}

	bad := []string{
		`locale: "en-US"`,
		"locale: \"en-US\"\nnamespace: \"core\"\nmessages:\n  unquoted: \"x\"\n",
		"locale: \"en-US\"\nnamespace: \"core\"\nmessages:\n  \"k\" \"v\"\n",
		"locale: \"en-US\"\nnamespace: \"core\"\n\"k\": \"v\"\n",
		"locale: \"en-US\"\nnamespace: \"core\"\nmessages:\n  \"k\": \"v\"\n  \"k\": \"w\"\n",
	}
	for _, input := range bad {
		if _, err := parseCatalogFile([]byte(input)); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
