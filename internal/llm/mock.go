// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import "context"

// mockResponse is the fixed, parseable JSON returned by the mock provider.
// It fills a subset of the summary fields so downstream normalization and
// evaluation have something to chew on without any network access.
const mockResponse = `{"paragraphs":["Mock paragraph 1","Mock paragraph 2","Mock paragraph 3"],` +
	`"whats_new":["Mock new 1","Mock new 2"],` +
	`"open_problems":["Mock open 1"],` +
	`"top5_papers":[{"title":"Mock","url":"http://example.com"}]}`

// Mock is a deterministic offline provider used for tests and for runs
// without credentials. Chat always succeeds with the same JSON payload.
type Mock struct{}

// Name returns the provider identifier.
func (m *Mock) Name() string { return "mock" }

// Chat returns the fixed mock payload.
func (m *Mock) Chat(_ context.Context, _ []Message) (string, error) {
	return mockResponse, nil
}
