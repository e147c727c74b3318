// Package site builds the static landing page: project and about cards are
// rendered through the fragment registry and stitched into a pongo2 layout.
package site
