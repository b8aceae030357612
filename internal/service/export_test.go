package service

// Exposes unexported functions to the external service_test package.
var (
	ExtractBody   = extractBody
	ResolveTarget = resolveTarget
)
