// Command i18nstatus reports how complete each locale catalog is against the
// base locale.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/louisbranch/yatzy/internal/platform/config"
	i18ncatalog "github.com/louisbranch/yatzy/internal/platform/i18n/catalog"
)

func main() {
	var baseLocale string
	var jsonOut string
	var strict bool

	flag.StringVar(&baseLocale, "base-locale", i18ncatalog.BaseLocale, "base locale used as translation source of truth")
	flag.StringVar(&jsonOut, "json-out", "", "optional json report path")
	flag.BoolVar(&strict, "strict", false, "exit non-zero when a locale is missing keys")
	flag.Parse()

	bundle, err := i18ncatalog.LoadEmbedded()
	if err != nil {
		config.Exitf("load i18n catalogs: %v", err)
	}
	if !bundle.HasLocale(baseLocale) {
		config.Exitf("base locale %q is missing from catalogs", baseLocale)
	}

	rep := buildReport(bundle, baseLocale)
	table, err := renderTable(rep)
	if err != nil {
		config.Exitf("render report: %v", err)
	}
	fmt.Println(table)
	for _, locale := range rep.Locales {
		if len(locale.MissingKeys) > 0 {
			pterm.Warning.Printfln("%s falls back to %s for: %v", locale.Locale, rep.BaseLocale, locale.MissingKeys)
		}
	}

	if jsonOut != "" {
		if err := writeJSON(jsonOut, rep); err != nil {
			config.Exitf("write json report: %v", err)
		}
		pterm.Success.Printfln("wrote %s", jsonOut)
	}
	if strict && rep.incomplete() {
		os.Exit(1)
	}
}
