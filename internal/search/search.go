// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries academic APIs and normalizes their responses into
// uniform paper records. Source failures never abort retrieval: a failing
// backend yields a synthetic placeholder record instead of an error.
package search

import (
	"context"

	"github.com/pdiddy/research-summarizer/pkg/types"
)

// Source searches a single academic API. Each backend implements this
// interface per the Strategy pattern; the retriever composes them by tag.
type Source interface {
	Name() string
	Search(ctx context.Context, query string, maxResults int) []types.PaperRecord
}
