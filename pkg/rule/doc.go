// Package rule implements the rule-code taxonomy and the select/ignore
// resolution used to decide whether a diagnostic code is enabled.
//
// Rule codes are hierarchical strings: a short alphabetic family prefix
// followed by digits of increasing specificity (e.g. "PL", "PLR", "PLR0912").
// A token in a select or ignore list may name a single code or an entire
// family; containment is literal prefix matching, so "PL" covers every
// pylint-family code while "PLR0912" covers exactly one.
package rule
