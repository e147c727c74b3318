// Package forms declares the site's forms in YAML and turns raw submissions
// into validation input. It plays the presentation-layer role around the
// validation engine: values are sanitised, masked and grouped before the
// engine sees them, and the verdict is handed back untouched.
package forms
