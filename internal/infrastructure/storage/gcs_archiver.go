// Package storage archiva los PDFs generados en Google Cloud Storage.
package storage

import (
	"context"
	"fmt"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/paktech/tender-docs/internal/domain/entity"
	"github.com/paktech/tender-docs/pkg/config"
)

const pdfContentType = "application/pdf"

// GCSArchiver sube cada PDF a <bucket>/<kind>/<uuid>_<filename>.
type GCSArchiver struct {
	client *gcs.Client
	bucket string
	newID  func() string
}

// NewGCSArchiver crea el cliente: con GCS_CREDENTIALS_JSON si está definido,
// si no con las Application Default Credentials. Verifica que el bucket exista.
func NewGCSArchiver(ctx context.Context, cfg config.GCSConfig) (*GCSArchiver, error) {
	var opts []option.ClientOption
	if strings.TrimSpace(cfg.CredentialsJSON) != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs client: %w", err)
	}
	if _, err := client.Bucket(cfg.Bucket).Attrs(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("gcs bucket %q no accesible: %w", cfg.Bucket, err)
	}
	return &GCSArchiver{client: client, bucket: cfg.Bucket, newID: uuid.NewString}, nil
}

// Archive sube content y devuelve la URI gs:// del objeto.
func (a *GCSArchiver) Archive(ctx context.Context, kind entity.DocumentKind, filename string, content []byte) (string, error) {
	name := objectName(kind, a.newID(), filename)
	w := a.client.Bucket(a.bucket).Object(name).NewWriter(ctx)
	w.ContentType = pdfContentType
	w.ContentDisposition = fmt.Sprintf("attachment; filename=%q", filename)
	w.Metadata = map[string]string{"kind": string(kind)}

	if _, err := w.Write(content); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs close %s: %w", name, err)
	}
	return "gs://" + a.bucket + "/" + name, nil
}

// Close cierra el cliente.
func (a *GCSArchiver) Close() error {
	return a.client.Close()
}

// objectName <kind>/<id>_<filename>; el id evita pisar versiones anteriores del mismo documento.
func objectName(kind entity.DocumentKind, id, filename string) string {
	return string(kind) + "/" + id + "_" + filename
}
