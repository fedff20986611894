package main

const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing API key, invalid config)
	ExitDataError   = 3 // Data error (missing file, empty document, bad index)
	ExitModelError  = 4 // Embedding backend unavailable or model not found
)
