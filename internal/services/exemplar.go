package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// ExemplarStore keeps chunks of previously seen job postings. The top hits
// for the current job embedding are appended to the suggestions prompt as
// reference context. The store is optional: retrieval failures degrade to
// no context and never fail the suggestions step.
type ExemplarStore interface {
	InitCollection() error
	IngestChunk(ctx context.Context, exemplarID, title, text string, embedding []float32) error
	SearchSimilar(ctx context.Context, queryEmbedding []float32, limit int) ([]Exemplar, error)
	DeleteExemplar(ctx context.Context, exemplarID string) error
}

type Exemplar struct {
	ID    string
	Title string
	Text  string
	Score float32
}

type exemplarStore struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewExemplarStore(urlStr, apiKey, collectionName string) (ExemplarStore, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port, not the REST one
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &exemplarStore{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 dimensionality
	}, nil
}

// InitCollection implements ExemplarStore.
func (s *exemplarStore) InitCollection() error {
	ctx := context.Background()

	exists, err := s.client.CollectionExists(ctx, s.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		return nil
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     s.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", s.collectionName)
	return nil
}

// IngestChunk implements ExemplarStore.
func (s *exemplarStore) IngestChunk(ctx context.Context, exemplarID, title, text string, embedding []float32) error {
	pointID := uuid.New()

	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(pointID.ID())),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"exemplar_id": exemplarID,
			"title":       title,
			"text":        text,
		}),
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert exemplar chunk: %w", err)
	}

	return nil
}

// SearchSimilar implements ExemplarStore.
func (s *exemplarStore) SearchSimilar(ctx context.Context, queryEmbedding []float32, limit int) ([]Exemplar, error) {
	searchResult, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search exemplars: %w", err)
	}

	var results []Exemplar
	for _, point := range searchResult {
		payload := point.Payload

		result := Exemplar{Score: point.Score}

		if id, ok := payload["exemplar_id"]; ok {
			if val, ok := id.GetKind().(*qdrant.Value_StringValue); ok {
				result.ID = val.StringValue
			}
		}

		if title, ok := payload["title"]; ok {
			if val, ok := title.GetKind().(*qdrant.Value_StringValue); ok {
				result.Title = val.StringValue
			}
		}

		if text, ok := payload["text"]; ok {
			if val, ok := text.GetKind().(*qdrant.Value_StringValue); ok {
				result.Text = val.StringValue
			}
		}

		results = append(results, result)
	}

	return results, nil
}

// DeleteExemplar implements ExemplarStore.
func (s *exemplarStore) DeleteExemplar(ctx context.Context, exemplarID string) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("exemplar_id", exemplarID),
		},
	}

	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: s.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})

	if err != nil {
		return fmt.Errorf("failed to delete exemplar: %w", err)
	}

	return nil
}

// FormatExemplarContext flattens search hits into a prompt section.
func FormatExemplarContext(results []Exemplar) string {
	if len(results) == 0 {
		return ""
	}

	var parts []string
	for i, result := range results {
		parts = append(parts, fmt.Sprintf("--- Posting %d: %s (Score: %.2f) ---\n%s",
			i+1, result.Title, result.Score, strings.TrimSpace(result.Text)))
	}

	return strings.Join(parts, "\n\n")
}
