package testutil

import "testing"

// Given, When and Then nest the end-to-end scenarios in cmd/server as named
// subtests, so a failing run reads as the garden workflow that broke, e.g.
// "Given_a_catalogued_species/When_indexing_without_a_token/Then_...".
// Each returns false when its step failed, letting a scenario skip the steps
// that depend on it.
func Given(t *testing.T, desc string, fn func(t *testing.T)) bool {
	t.Helper()
	return step(t, "Given", desc, fn)
}

func When(t *testing.T, desc string, fn func(t *testing.T)) bool {
	t.Helper()
	return step(t, "When", desc, fn)
}

func Then(t *testing.T, desc string, fn func(t *testing.T)) bool {
	t.Helper()
	return step(t, "Then", desc, fn)
}

func step(t *testing.T, keyword, desc string, fn func(t *testing.T)) bool {
	t.Helper()
	return t.Run(keyword+" "+desc, fn)
}
