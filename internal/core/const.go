package core

const (
	ManifestFilename = "manifest.yaml"
	TmpFolder        = "tmp"
	ResultExtension  = ".txt"

	// MaxRequestSize bounds HTTP request bodies; texts are held in memory.
	MaxRequestSize = 64 * 1024 * 1024
)
