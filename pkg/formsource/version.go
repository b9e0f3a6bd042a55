// Package formsource holds module-level metadata.
package formsource

// Version is the formsource release version.
const Version = "0.2.0"
