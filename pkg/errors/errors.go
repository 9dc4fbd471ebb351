package errors

import (
	"fmt"
	"sort"
	"strings"
)

type MissingEnvErr struct {
	EnvMap map[string]string
}

func (e MissingEnvErr) Error() string {
	// Get keys of missing environment variables
	missingKeys := make([]string, 0, len(e.EnvMap))
	for key, val := range e.EnvMap {
		if val == "" {
			missingKeys = append(missingKeys, key)
		}
	}
	sort.Strings(missingKeys)

	if len(missingKeys) > 0 {
		allKeys := strings.Join(missingKeys, ", ")
		return fmt.Sprintf("insufficient env variables: [%s]", allKeys)
	}
	return "insufficient env variables"
}

type InvalidEnvErr struct {
	Key string
	Err error
}

func (e InvalidEnvErr) Error() string {
	return fmt.Sprintf("invalid env variable [%s]: %v", e.Key, e.Err)
}

func (e InvalidEnvErr) Unwrap() error {
	return e.Err
}
