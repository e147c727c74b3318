// Package validation checks form field values the way the site's forms expect
// them: required-ness first, then the type rule of the field (email, tel) and
// finally the custom rule registered under the field name (cpf, cep,
// dataNascimento, telefone, nomeCompleto).
//
// Failures are reported as Result values, never as errors. An empty optional
// field always passes, even when a type or custom rule would reject the empty
// string, and an empty required field always fails with the "required"
// message before any other rule runs.
//
// Engines hold no per-call state and are safe for concurrent use. The
// package-level ValidateField and ValidateForm helpers use a default engine
// reading the wall clock.
package validation
