package test

import (
	"os"
	"testing"
)

// EnvVars holds environment variables required by an integration test.
type EnvVars struct {
	t    *testing.T
	vars map[string]string
}

// NewEnvVars skips t unless every key is set in the environment.
func NewEnvVars(t *testing.T, keys ...string) EnvVars {
	t.Helper()
	e := EnvVars{
		t:    t,
		vars: make(map[string]string, len(keys)),
	}

	for _, key := range keys {
		value, ok := os.LookupEnv(key)
		if !ok || value == "" {
			t.Skipf("%s is not set", key)
		}
		e.vars[key] = value
	}

	return e
}

// Get returns a variable declared in NewEnvVars and fails the test for any other key.
func (e EnvVars) Get(key string) string {
	v, ok := e.vars[key]
	if !ok {
		e.t.Fatalf("env var %s was not declared", key)
	}
	return v
}
