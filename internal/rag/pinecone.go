package rag

import (
	"context"
	"fmt"

	"github.com/nekomeowww/go-pinecone"
)

// Metadata keys every vector must carry. The index is populated by an
// external loader; this package only queries it.
const (
	MetadataContent = "content"
	MetadataSource  = "source"
)

// PineconeConfig identifies an index.
type PineconeConfig struct {
	APIKey      string
	Environment string
	Project     string
	Index       string
	Namespace   string
}

// Pinecone searches a Pinecone index.
type Pinecone struct {
	index     *pinecone.IndexClient
	namespace string
}

// NewPinecone creates an index client. No request is made until Search or
// Validate is called.
func NewPinecone(cfg PineconeConfig) (*Pinecone, error) {
	index, err := pinecone.NewIndexClient(
		pinecone.WithIndexName(cfg.Index),
		pinecone.WithAPIKey(cfg.APIKey),
		pinecone.WithEnvironment(cfg.Environment),
		pinecone.WithProjectName(cfg.Project),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create pinecone client: %w", err)
	}
	return &Pinecone{index: index, namespace: cfg.Namespace}, nil
}

// Search returns the topK closest passages. Matches without content
// metadata are skipped.
func (p *Pinecone) Search(ctx context.Context, vector []float32, topK int64) ([]Passage, error) {
	resp, err := p.index.Query(ctx, pinecone.QueryParams{
		IncludeMetadata: true,
		Vector:          vector,
		TopK:            topK,
		Namespace:       p.namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query index: %w", err)
	}

	passages := make([]Passage, 0, len(resp.Matches))
	for _, match := range resp.Matches {
		content, ok := match.Vector.Metadata[MetadataContent].(string)
		if !ok || content == "" {
			continue
		}
		source, _ := match.Vector.Metadata[MetadataSource].(string)
		passages = append(passages, Passage{Source: source, Content: content})
	}
	return passages, nil
}

// Validate checks the credentials by describing the index.
func (p *Pinecone) Validate(ctx context.Context) error {
	if _, err := p.index.DescribeIndexStats(ctx, pinecone.DescribeIndexStatsParams{}); err != nil {
		return fmt.Errorf("invalid Pinecone credentials: %w", err)
	}
	return nil
}
