package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"log"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"
)

// ProfileVectorService stores resume-derived profile embeddings so that
// profile analysis can pull similar peers as prompt context. All lookups are
// best effort; callers degrade to an empty context on failure.
type ProfileVectorService interface {
	InitCollection() error
	UpsertProfile(ctx context.Context, studentID, registrationNumber, summary string, embedding []float32) error
	SearchSimilar(ctx context.Context, queryEmbedding []float32, excludeStudentID string, limit int) ([]ProfileMatch, error)
}

type ProfileMatch struct {
	StudentID          string
	RegistrationNumber string
	Score              float32
	Summary            string
}

type profileVectorService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewProfileVectorService(urlStr, apiKey, collectionName string) (ProfileVectorService, error) {
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

	return &profileVectorService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements ProfileVectorService.
func (q *profileVectorService) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created\n", q.collectionName)
	return nil
}

// UpsertProfile implements ProfileVectorService. The point ID is derived
// from the student ID so re-analyzing a resume replaces the old embedding.
func (q *profileVectorService) UpsertProfile(ctx context.Context, studentID, registrationNumber, summary string, embedding []float32) error {
	h := fnv.New64a()
	h.Write([]byte(studentID))

	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(h.Sum64()),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"student_id":          studentID,
			"registration_number": registrationNumber,
			"summary":             summary,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert profile point: %w", err)
	}
	return nil
}

// SearchSimilar implements ProfileVectorService.
func (q *profileVectorService) SearchSimilar(ctx context.Context, queryEmbedding []float32, excludeStudentID string, limit int) ([]ProfileMatch, error) {
	var filter *qdrant.Filter
	if excludeStudentID != "" {
		filter = &qdrant.Filter{
			MustNot: []*qdrant.Condition{
				qdrant.NewMatch("student_id", excludeStudentID),
			},
		}
	}

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}

	var matches []ProfileMatch
	for _, point := range points {
		match := ProfileMatch{Score: point.Score}
		payload := point.Payload

		if v, ok := payload["student_id"]; ok {
			if s, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
				match.StudentID = s.StringValue
			}
		}
		if v, ok := payload["registration_number"]; ok {
			if s, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
				match.RegistrationNumber = s.StringValue
			}
		}
		if v, ok := payload["summary"]; ok {
			if s, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
				match.Summary = s.StringValue
			}
		}

		matches = append(matches, match)
	}

	return matches, nil
}
