// Package langdata holds the static reference tables the tag engine
// consults: default scripts, alias replacements, macrolanguage
// preferences, likely subtags and the language-matching rules.
//
// The tables are a snapshot derived from the IANA language subtag
// registry and the Unicode CLDR supplemental data. They are read-only
// for the lifetime of the process; nothing in this module writes to
// them.
package langdata
