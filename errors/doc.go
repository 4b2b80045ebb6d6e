// Package errors provides the structured error type shared by the inspector
// tree packages. Every failure the framework itself raises is an *AppError
// carrying a machine-readable code, so callers can branch on the code
// instead of matching message text.
package errors
