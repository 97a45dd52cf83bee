// Package verifier checks that localization catalogs stay in sync with a closed
// set of message keys.
//
// A KeyType enumerates the message keys an application uses. For a given
// locale, Verifier loads the matching catalog and reports every inconsistency
// as a Finding: keys declared but missing from the catalog, catalog entries no
// key declares, and structural problems (no catalog name declared, catalog not
// found, empty catalog, empty key set). An empty result means the catalog is
// complete.
//
// # Declaring key types
//
// Key types are plain Go values. The simplest form is a Descriptor:
//
//	type Msg string
//
//	const (
//		Greeting Msg = "GREETING"
//		Farewell Msg = "FAREWELL"
//	)
//
//	var Messages = &verifier.Descriptor{
//		Name:    "app.Messages",
//		Catalog: "messages",
//		Locales: []string{"en", "fr_CA"},
//		Keys:    verifier.KeysOf(Greeting, Farewell),
//	}
//
//	func init() { verifier.MustRegister(Messages) }
//
// Any type implementing KeyType works; the catalog name and locales are read
// through the optional CatalogNamer and LocaleNamer interfaces by default.
//
// # Verification
//
//	v := verifier.New(Messages, catalog.NewDirLoader("./locales"))
//	findings, err := v.VerifyAllLocales(ctx)
//	if err != nil {
//		// the key type declares no locales, or one does not parse
//	}
//	for _, f := range findings {
//		fmt.Println(f)
//	}
//
// Verification runs in two phases. Structural checks come first and, when any
// of them fails, the per-key comparison is skipped: a missing catalog yields a
// single catalog_not_found finding instead of one finding per key.
//
// # Error Handling
//
// Findings are data, never errors. Errors are reserved for misconfiguration:
// ErrKeyTypeNotFound when NewFromName cannot resolve a name, ErrNoLocales when
// VerifyAllLocales has nothing to verify.
//
// Verifier values are immutable and safe for concurrent use as long as the
// configured Loader is.
package verifier
