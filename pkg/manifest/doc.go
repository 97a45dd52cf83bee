// Package manifest describes key types in YAML so catalogs can be verified
// without writing Go types, for example from CI.
//
//	key_types:
//	  - name: app.Greetings
//	    catalog: messages
//	    locales: [en, fr_CA]
//	    keys: [GREETING, FAREWELL]
//
// An entry may omit catalog or keys; verification then reports the missing
// declaration as a finding. Entry names must be unique across all loaded files
// and every locale must be a valid locale identifier.
//
// Files are read with LoadFile or collected with Glob, which accepts
// doublestar patterns such as "i18n/**/*.l10n.yaml". Register adds every entry
// to a verifier.Registry as a verifier.Descriptor.
package manifest
