// Package template implements the small mustache-like syntax used by the site
// fragments: scalar markers ({{path}}) and list blocks
// ({{#each path}}...{{this}}...{{/each}}).
//
// Blocks are located first so that {{this}} and the block delimiters never
// reach the scalar pass. The scalar pass replaces every marker in the
// template text whose dotted path resolves against the data, and leaves
// unresolved markers verbatim so mismatches between a template and its data
// stay visible. List elements are spliced in afterwards and are never read as
// markers themselves. Blocks whose path does not
// resolve to a list expand to nothing. Nested #each blocks are not supported:
// an opening tag is closed by the first {{/each}} that follows it.
//
// Lookup failures never surface as errors. Render on an unknown template name
// returns an empty string and reports the miss through the registry logger.
package template
