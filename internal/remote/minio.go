package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/aivanenka/studyplanner/internal/document"
)

// MinIOStore keeps each document as one JSON object named
// "<collection>/<key>.json" in a bucket on any S3-compatible endpoint.
type MinIOStore struct {
	client *minio.Client
	bucket string
}

// MinIOConfig holds the connection settings for the remote bucket.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func NewMinIOStore(cfg MinIOConfig) (*MinIOStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &MinIOStore{client: client, bucket: cfg.Bucket}, nil
}

func objectName(collection, key string) string {
	return collection + "/" + key + ".json"
}

func keyFromObjectName(collection, name string) (string, bool) {
	rest, ok := strings.CutPrefix(name, collection+"/")
	if !ok {
		return "", false
	}
	key, ok := strings.CutSuffix(rest, ".json")
	if !ok || key == "" || strings.Contains(key, "/") {
		return "", false
	}
	return key, true
}

func (s *MinIOStore) Get(ctx context.Context, collection, key string) (document.Document, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName(collection, key), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var doc document.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document %s/%s: %w", collection, key, err)
	}
	return doc, nil
}

func (s *MinIOStore) GetAll(ctx context.Context, collection string) (map[string]document.Document, error) {
	result := make(map[string]document.Document)

	opts := minio.ListObjectsOptions{Prefix: collection + "/", Recursive: false}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list collection %s: %w", collection, obj.Err)
		}
		key, ok := keyFromObjectName(collection, obj.Key)
		if !ok {
			continue
		}
		doc, err := s.Get(ctx, collection, key)
		if err != nil {
			return nil, err
		}
		result[key] = doc
	}
	return result, nil
}

func (s *MinIOStore) Set(ctx context.Context, collection, key string, doc document.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	_, err = s.client.PutObject(ctx, s.bucket, objectName(collection, key),
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to put document %s/%s: %w", collection, key, err)
	}
	return nil
}
