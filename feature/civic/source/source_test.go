package source

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"civic-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDirSource(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "nc/people/b.yml", "id: ocd-person/b\nname: B\n")
	writeFile(t, root, "nc/people/a.yml", "id: ocd-person/a\nname: A\n")
	writeFile(t, root, "nc/people/notes.txt", "ignored")
	writeFile(t, root, "nc/retired/c.yml", "id: ocd-person/c\nname: C\n")
	writeFile(t, root, "nc/organizations/finance.yml",
		"id: ocd-organization/f\nname: Finance\njurisdiction: j\nclassification: committee\nparent: lower\n")

	src := New(Dir{Root: root})

	people, err := src.People(context.Background(), "nc")
	require.NoError(t, err)
	require.Len(t, people, 3)
	assert.Equal(t, "nc/people/a.yml", people[0].Name)
	assert.Equal(t, "ocd-person/a", people[0].Record.ID)
	assert.Equal(t, "nc/people/b.yml", people[1].Name)
	assert.Equal(t, "nc/retired/c.yml", people[2].Name)

	orgs, err := src.Organizations(context.Background(), "nc")
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, "Finance", orgs[0].Record.Name)

	// an unknown jurisdiction directory is simply empty
	people, err = src.People(context.Background(), "zz")
	require.NoError(t, err)
	assert.Empty(t, people)
}

func TestDirSource_InvalidRecord(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "nc/people/bad.yml", "name: No Id\n")

	_, err := New(Dir{Root: root}).People(context.Background(), "nc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nc/people/bad.yml: invalid record")
}

func objects(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func TestBucketSource(t *testing.T) {
	client := new(mocks.Client)
	ctx := context.Background()

	client.On("ListObjects", ctx, "civic", minio.ListObjectsOptions{Prefix: "data/nc/people/"}).
		Return(objects("data/nc/people/a.yml", "data/nc/people/sub/", "data/nc/people/readme.md"))
	client.On("ListObjects", ctx, "civic", minio.ListObjectsOptions{Prefix: "data/nc/retired/"}).
		Return(objects())
	client.On("GetObject", ctx, "civic", "data/nc/people/a.yml", minio.GetObjectOptions{}).
		Return(io.NopCloser(strings.NewReader("id: ocd-person/a\nname: A\n")), nil)

	src := New(Bucket{Client: client, Name: "civic", Prefix: "data"})
	people, err := src.People(ctx, "nc")
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "nc/people/a.yml", people[0].Name)
	assert.Equal(t, "A", people[0].Record.Name)

	client.AssertExpectations(t)
}

func TestBucketSource_ListError(t *testing.T) {
	client := new(mocks.Client)
	ctx := context.Background()

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: errors.New("access denied")}
	close(ch)
	client.On("ListObjects", ctx, "civic", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	_, err := New(Bucket{Client: client, Name: "civic"}).Organizations(ctx, "nc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestBucketCheck(t *testing.T) {
	ctx := context.Background()

	client := new(mocks.Client)
	client.On("BucketExists", ctx, "civic").Return(true, nil).Once()
	client.On("BucketExists", ctx, "civic").Return(false, nil).Once()
	client.On("BucketExists", ctx, "civic").Return(false, errors.New("timeout")).Once()

	b := Bucket{Client: client, Name: "civic"}
	assert.NoError(t, b.Check(ctx))
	assert.EqualError(t, b.Check(ctx), "bucket civic does not exist")
	assert.ErrorContains(t, b.Check(ctx), "failed to access bucket civic: timeout")
}
