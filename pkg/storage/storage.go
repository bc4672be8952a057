// Package storage provides blob storage for user attachments with an Azure
// Blob Storage implementation and a disabled fallback for deployments without
// a storage account.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"

	"github.com/rizzorrisk/rizz/pkg/lifecycle"
)

// Blob is a downloaded blob stream with its HTTP metadata.
// The caller must close Body.
type Blob struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
}

// System manages blob storage operations and lifecycle coordination.
type System interface {
	// Enabled reports whether uploads are accepted.
	Enabled() bool
	// Key joins parts beneath the configured key prefix.
	Key(parts ...string) string
	// Start registers a startup hook that initializes the storage container.
	Start(lc *lifecycle.Coordinator) error
	// Upload streams data to a blob at the given key with the specified content type.
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) error
	// Download returns the blob at the given key. Returns ErrNotFound if it does not exist.
	Download(ctx context.Context, key string) (*Blob, error)
}

// New creates a storage system from the given configuration. When no
// connection string is configured it returns a disabled system whose
// operations fail with ErrDisabled.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	logger = logger.With("system", "storage")

	if !cfg.Enabled() {
		return &disabled{prefix: cfg.KeyPrefix, logger: logger}, nil
	}

	client, err := azblob.NewClientFromConnectionString(cfg.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &azure{
		client:    client,
		container: cfg.ContainerName,
		prefix:    cfg.KeyPrefix,
		logger:    logger,
	}, nil
}

type azure struct {
	client    *azblob.Client
	container string
	prefix    string
	logger    *slog.Logger
}

func (a *azure) Enabled() bool { return true }

func (a *azure) Key(parts ...string) string {
	return joinKey(a.prefix, parts)
}

func (a *azure) Start(lc *lifecycle.Coordinator) error {
	a.logger.Info("starting storage system")

	lc.OnStartup("storage", func(ctx context.Context) error {
		_, err := a.client.CreateContainer(ctx, a.container, nil)
		if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
			a.logger.Error("storage container initialization failed", "error", err)
			return fmt.Errorf("create container %s: %w", a.container, err)
		}

		a.logger.Info("storage container ready", "container", a.container)
		return nil
	})

	return nil
}

func (a *azure) Upload(ctx context.Context, key string, reader io.Reader, contentType string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	opts := &azblob.UploadStreamOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType: &contentType,
		},
	}

	if _, err := a.client.UploadStream(ctx, a.container, key, reader, opts); err != nil {
		return fmt.Errorf("upload blob %s: %w", key, err)
	}

	return nil
}

func (a *azure) Download(ctx context.Context, key string) (*Blob, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	resp, err := a.client.DownloadStream(ctx, a.container, key, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("download blob %s: %w", key, err)
	}

	result := &Blob{Body: resp.Body}
	if resp.ContentType != nil {
		result.ContentType = *resp.ContentType
	}
	if resp.ContentLength != nil {
		result.ContentLength = *resp.ContentLength
	}

	return result, nil
}

type disabled struct {
	prefix string
	logger *slog.Logger
}

func (d *disabled) Enabled() bool { return false }

func (d *disabled) Key(parts ...string) string {
	return joinKey(d.prefix, parts)
}

func (d *disabled) Start(*lifecycle.Coordinator) error {
	d.logger.Warn("no storage connection string configured, attachments will not be stored")
	return nil
}

func (d *disabled) Upload(context.Context, string, io.Reader, string) error {
	return ErrDisabled
}

func (d *disabled) Download(context.Context, string) (*Blob, error) {
	return nil, ErrDisabled
}

func joinKey(prefix string, parts []string) string {
	return path.Join(append([]string{prefix}, parts...)...)
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if strings.Contains(key, "..") {
		return ErrInvalidKey
	}
	return nil
}
