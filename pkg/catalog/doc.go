// Package catalog loads localization resource catalogs: flat key→text mappings,
// one per (catalog name, locale) pair.
//
// A Catalog is immutable once built. Keys returns a fresh set on every call so a
// consumer may delete from it freely without affecting other readers, which is
// what the verifier relies on when it consumes matched keys.
//
// # Loaders
//
// Storage concerns sit behind the Loader interface. A Loader returns ErrNotFound
// when no catalog exists for the requested name and locale; a catalog that exists
// but has no entries is returned as an empty *Catalog. The two states are kept
// apart: a loader never reports both for one request.
//
// Ready-made loaders:
//
//   - MapLoader: in-memory catalogs, handy in tests.
//   - FSLoader: any fs.FS (os.DirFS, embed.FS). Files are named
//     "<name>_<locale>.<ext>", e.g. "messages_fr_CA.yaml".
//   - CachedLoader: LRU cache in front of another loader.
//   - RedisLoader: one hash per catalog, key "<prefix>:<name>:<locale>".
//   - PostgresLoader: l10n_catalogs / l10n_catalog_entries tables.
//   - MongoLoader: one document per catalog.
//   - S3Loader: catalog files stored as objects in a bucket.
//
// # Parsers
//
// File based loaders delegate decoding to a Parser. YAML, JSON and Java style
// .properties are supported. Nested maps are flattened using dots, so
//
//	user:
//	  greeting: Hello
//
// yields the key "user.greeting".
//
// # Locales
//
// Locales are golang.org/x/text/language tags. ParseLocale accepts both "fr_CA"
// and "fr-CA" spellings.
//
// # Usage
//
//	loader := catalog.NewDirLoader("./locales")
//	cat, err := loader.Load(ctx, "messages", catalog.MustParseLocale("fr_CA"))
//	if errors.Is(err, catalog.ErrNotFound) {
//		// no messages_fr_CA.* file
//	}
package catalog
