// Package config loads named field presets.
//
// A preset file is TOML or YAML, picked by extension. Built-in presets
// are merged first, then the file (TOML files may pull in others with
// "@include"), then FIELDMASK_ environment variables:
//
//	[fields.date]
//	kind = "mask"
//	mask = "##/##/####"
//	accept = "digits"
//
//	[fields.amount]
//	kind = "numeric"
//	decimalDigits = 2
//	locale = "de-DE"
//
// Each Field builds its transformer and a ready-to-use field.Session.
package config
