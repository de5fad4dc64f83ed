package gcs

import (
	"context"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/C-S-I-FIIT/egis/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

// Client archives raw scanner exports into a Cloud Storage bucket
type Client struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ interfaces.ObjectStorage = (*Client)(nil)

func New(ctx context.Context, bucket, prefix string, options ...option.ClientOption) (*Client, error) {
	if bucket == "" {
		return nil, goerr.New("bucket name is required")
	}

	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", bucket))
	}

	return &Client{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}, nil
}

func (x *Client) objectName(key string) string {
	if x.prefix == "" {
		return key
	}
	return path.Join(x.prefix, key)
}

// Put writes data to the object. An existing object is overwritten.
func (x *Client) Put(ctx context.Context, key, contentType string, data []byte) error {
	name := x.objectName(key)

	w := x.client.Bucket(x.bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write object", goerr.V("bucket", x.bucket), goerr.V("object", name))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to close object writer", goerr.V("bucket", x.bucket), goerr.V("object", name))
	}

	return nil
}

func (x *Client) Close() error {
	return x.client.Close()
}
