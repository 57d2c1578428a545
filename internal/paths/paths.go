package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// Dir returns ~/.panseq, or $PANSEQ_HOME when set.
func Dir() string {
	if d := os.Getenv("PANSEQ_HOME"); d != "" {
		return d
	}
	return filepath.Join(home(), ".panseq")
}

// FormFile returns ~/.panseq/form.yaml.
func FormFile() string {
	return filepath.Join(Dir(), "form.yaml")
}

// DebugLog returns ~/.panseq/debug.log.
func DebugLog() string {
	return filepath.Join(Dir(), "debug.log")
}
