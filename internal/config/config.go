// Package config resolves where quizzes are read from and results are
// written to.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment variables overriding the default locations.
const (
	EnvQuestions = "QUIZZER_QUESTIONS"
	EnvResults   = "QUIZZER_RESULTS"
)

// Default directory names, relative to the working directory.
const (
	DefaultQuestionsDir = "questions"
	DefaultResultsDir   = "results"
)

// Config holds the catalog and output locations for one invocation.
type Config struct {
	CatalogPath string
	OutputPath  string
}

// Resolve returns the configuration using, per location, the flag value
// (highest priority), then the environment variable, then the default
// directory under the working directory.
func Resolve(questionsFlag, resultsFlag string) (Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("resolve working dir: %w", err)
	}

	return Config{
		CatalogPath: pick(questionsFlag, os.Getenv(EnvQuestions), filepath.Join(wd, DefaultQuestionsDir)),
		OutputPath:  pick(resultsFlag, os.Getenv(EnvResults), filepath.Join(wd, DefaultResultsDir)),
	}, nil
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
