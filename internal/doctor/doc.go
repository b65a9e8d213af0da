// Package doctor diagnoses a smartcd installation: configuration, collation
// locale, the post-cd list command and the shell wrapper.
package doctor
