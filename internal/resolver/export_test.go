package resolver

// SplitPath exposes splitPath to the external test package.
var SplitPath = splitPath
