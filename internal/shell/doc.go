// Package shell generates the cd wrapper functions (bash, zsh, fish) that
// call smartcd resolve and evaluate its output with the builtin cd.
package shell
