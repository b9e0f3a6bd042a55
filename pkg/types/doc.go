// Package types defines the task, step, question, and result entity types,
// the DataSource interface, the async action configuration value, and
// standard errors for the formsource survey data layer.
package types
