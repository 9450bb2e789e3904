package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	i18ncatalog "github.com/louisbranch/yatzy/internal/platform/i18n/catalog"
)

func testBundle(t *testing.T) *i18ncatalog.Bundle {
	t.Helper()
	fsys := fstest.MapFS{
		"locales/en-US/yatzy.yaml": {Data: []byte("locale: \"en-US\"\nnamespace: \"yatzy\"\nmessages:\n  \"a\": \"A\"\n  \"b\": \"B\"\n  \"c\": \"C\"\n  \"d\": \"D\"\n")},
		"locales/sv-SE/yatzy.yaml": {Data: []byte("locale: \"sv-SE\"\nnamespace: \"yatzy\"\nmessages:\n  \"a\": \"Ä\"\n  \"b\": \"B\"\n  \"x\": \"X\"\n")},
	}
	bundle, err := i18ncatalog.LoadFromFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return bundle
}

func TestBuildReport(t *testing.T) {
	rep := buildReport(testBundle(t), "en-US")
	if len(rep.Locales) != 1 {
		t.Fatalf("expected one translated locale, got %d", len(rep.Locales))
	}
	sv := rep.Locales[0]
	if sv.Locale != "sv-SE" || sv.Translated != 2 || sv.Missing != 2 || sv.Extra != 1 {
		t.Fatalf("unexpected status %+v", sv)
	}
	if sv.Completion != 50 {
		t.Fatalf("completion = %v, want 50", sv.Completion)
	}
	if strings.Join(sv.MissingKeys, ",") != "c,d" || strings.Join(sv.ExtraKeys, ",") != "x" {
		t.Fatalf("missing %v extra %v", sv.MissingKeys, sv.ExtraKeys)
	}
	if len(sv.Namespaces) != 1 || sv.Namespaces[0].Missing != 2 {
		t.Fatalf("namespaces = %+v", sv.Namespaces)
	}
	if !rep.incomplete() {
		t.Fatal("expected incomplete report")
	}
}

func TestEmbeddedReportCoversErrors(t *testing.T) {
	bundle, err := i18ncatalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	rep := buildReport(bundle, i18ncatalog.BaseLocale)
	for _, locale := range rep.Locales {
		for _, ns := range locale.Namespaces {
			if ns.Namespace == "errors" && ns.Missing != 0 {
				t.Fatalf("%s errors namespace missing %d keys", locale.Locale, ns.Missing)
			}
		}
	}
}

func TestRenderTable(t *testing.T) {
	out, err := renderTable(buildReport(testBundle(t), "en-US"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"sv-SE", "yatzy", "2/4", "50.0%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "i18n.json")
	if err := writeJSON(path, buildReport(testBundle(t), "en-US")); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var rep report
	if err := json.Unmarshal(data, &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rep.BaseLocale != "en-US" || len(rep.Locales) != 1 {
		t.Fatalf("unexpected report %+v", rep)
	}
}

func TestPercent(t *testing.T) {
	if got := percent(1, 3); got != 33.3 {
		t.Fatalf("percent(1,3) = %v", got)
	}
	if got := percent(0, 0); got != 100 {
		t.Fatalf("percent(0,0) = %v", got)
	}
}
