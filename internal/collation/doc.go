// Package collation provides locale-aware string ordering for candidate
// directory names. The locale is an explicit value chosen at startup and
// passed to New; nothing here touches process-wide locale state.
package collation
