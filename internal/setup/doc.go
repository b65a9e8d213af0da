// Package setup installs the cd wrapper into the user's shell rc file.
package setup
