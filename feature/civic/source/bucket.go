package source

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"civic-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// Bucket reads record files from object storage under an optional prefix.
type Bucket struct {
	Client storage.Client
	Name   string
	Prefix string
}

// Check verifies that the bucket is reachable.
func (b Bucket) Check(ctx context.Context) error {
	ok, err := b.Client.BucketExists(ctx, b.Name)
	if err != nil {
		return fmt.Errorf("failed to access bucket %s: %w", b.Name, err)
	}
	if !ok {
		return fmt.Errorf("bucket %s does not exist", b.Name)
	}
	return nil
}

// List implements Store. Only objects directly under dir are returned.
func (b Bucket) List(ctx context.Context, dir string) ([]string, error) {
	prefix := b.key(dir) + "/"

	var names []string
	for obj := range b.Client.ListObjects(ctx, b.Name, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		rest := strings.TrimPrefix(obj.Key, prefix)
		if rest == "" || strings.Contains(rest, "/") || !strings.HasSuffix(rest, Extension) {
			continue
		}
		names = append(names, dir+"/"+rest)
	}
	return names, nil
}

// Read implements Store.
func (b Bucket) Read(ctx context.Context, name string) ([]byte, error) {
	obj, err := b.Client.GetObject(ctx, b.Name, b.key(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	return io.ReadAll(obj)
}

func (b Bucket) key(name string) string {
	if b.Prefix == "" {
		return name
	}
	return path.Join(b.Prefix, name)
}
