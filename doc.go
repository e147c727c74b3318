// Package ongkit bundles the pieces used by the ONG site: the validation
// engine, the fragment template registry, the declared forms and the static
// site builder. Kit wires them with shared logging and locale settings.
package ongkit
