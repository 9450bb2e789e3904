package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pterm/pterm"

	i18ncatalog "github.com/louisbranch/yatzy/internal/platform/i18n/catalog"
)

type report struct {
	BaseLocale string         `json:"base_locale"`
	Locales    []localeStatus `json:"locales"`
}

type localeStatus struct {
	Locale      string            `json:"locale"`
	BaseKeys    int               `json:"base_keys"`
	Translated  int               `json:"translated"`
	Missing     int               `json:"missing"`
	Extra       int               `json:"extra"`
	Completion  float64           `json:"completion"`
	Namespaces  []namespaceStatus `json:"namespaces"`
	MissingKeys []string          `json:"missing_keys"`
	ExtraKeys   []string          `json:"extra_keys"`
}

type namespaceStatus struct {
	Namespace  string  `json:"namespace"`
	BaseKeys   int     `json:"base_keys"`
	Translated int     `json:"translated"`
	Missing    int     `json:"missing"`
	Completion float64 `json:"completion"`
}

func (r report) incomplete() bool {
	for _, locale := range r.Locales {
		if locale.Missing > 0 {
			return true
		}
	}
	return false
}

func buildReport(bundle *i18ncatalog.Bundle, baseLocale string) report {
	baseMessages := bundle.LocaleMessages(baseLocale)

	statuses := make([]localeStatus, 0)
	for _, locale := range bundle.Locales() {
		if locale == baseLocale {
			continue
		}
		localeMessages := bundle.LocaleMessages(locale)
		missing := diffKeys(baseMessages, localeMessages)
		extra := diffKeys(localeMessages, baseMessages)
		translated := len(baseMessages) - len(missing)

		namespaces := make([]namespaceStatus, 0)
		for _, namespace := range bundle.Namespaces(baseLocale) {
			baseNS := bundle.NamespaceMessages(baseLocale, namespace)
			nsMissing := diffKeys(baseNS, bundle.NamespaceMessages(locale, namespace))
			nsTranslated := len(baseNS) - len(nsMissing)
			namespaces = append(namespaces, namespaceStatus{
				Namespace:  namespace,
				BaseKeys:   len(baseNS),
				Translated: nsTranslated,
				Missing:    len(nsMissing),
				Completion: percent(nsTranslated, len(baseNS)),
			})
		}

		statuses = append(statuses, localeStatus{
			Locale:      locale,
			BaseKeys:    len(baseMessages),
			Translated:  translated,
			Missing:     len(missing),
			Extra:       len(extra),
			Completion:  percent(translated, len(baseMessages)),
			Namespaces:  namespaces,
			MissingKeys: missing,
			ExtraKeys:   extra,
		})
	}
	return report{BaseLocale: baseLocale, Locales: statuses}
}

func renderTable(rep report) (string, error) {
	data := pterm.TableData{{"Locale", "Namespace", "Translated", "Missing", "Completion"}}
	for _, locale := range rep.Locales {
		for _, ns := range locale.Namespaces {
			data = append(data, []string{
				locale.Locale,
				ns.Namespace,
				strconv.Itoa(ns.Translated) + "/" + strconv.Itoa(ns.BaseKeys),
				strconv.Itoa(ns.Missing),
				fmt.Sprintf("%.1f%%", ns.Completion),
			})
		}
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func writeJSON(path string, rep report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// diffKeys returns the keys of a that b lacks, sorted.
func diffKeys(a, b map[string]string) []string {
	out := make([]string, 0)
	for key := range a {
		if _, ok := b[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func percent(numerator int, denominator int) float64 {
	if denominator <= 0 {
		return 100
	}
	value := float64(numerator) * 100 / float64(denominator)
	return math.Round(value*10) / 10
}
