package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"omnio_back_end/internal/database"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// ImageBucket retourne le bucket des images du catalogue
func ImageBucket() string {
	if b := os.Getenv("MINIO_BUCKET"); b != "" {
		return b
	}
	return "omnio-images"
}

// InvoiceBucket retourne le bucket privé des factures archivées
func InvoiceBucket() string {
	if b := os.Getenv("MINIO_INVOICE_BUCKET"); b != "" {
		return b
	}
	return "omnio-invoices"
}

// UploadFile envoie un fichier dans MinIO et retourne son URL publique.
// Le nom d'objet est préfixé d'un UUID pour éviter les collisions.
func UploadFile(bucket string, file *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	objectName := uuid.NewString() + filepath.Ext(file.Filename)

	_, err = database.MinIO.PutObject(context.Background(), bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("http://%s/%s/%s", os.Getenv("MINIO_ENDPOINT"), bucket, objectName), nil
}

// ArchiveInvoice dépose la facture PDF d'une commande dans le bucket privé
// et retourne une URL signée valable sept jours pour son téléchargement
func ArchiveInvoice(ctx context.Context, orderNumber string, pdf []byte) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	bucket := InvoiceBucket()
	objectName := fmt.Sprintf("facture_%s.pdf", orderNumber)

	_, err := database.MinIO.PutObject(ctx, bucket, objectName, bytes.NewReader(pdf), int64(len(pdf)),
		minio.PutObjectOptions{ContentType: "application/pdf"})
	if err != nil {
		return "", err
	}

	return GenerateSignedURL(ctx, bucket, objectName, 7*24*time.Hour)
}

// GenerateSignedURL génère une URL signée à durée limitée pour un objet,
// à partir de son URL publique ou de son chemin relatif
func GenerateSignedURL(ctx context.Context, bucket, objectPath string, duration time.Duration) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	prefix := fmt.Sprintf("http://%s/%s/", os.Getenv("MINIO_ENDPOINT"), bucket)
	key := strings.TrimPrefix(objectPath, prefix)

	presigned, err := database.MinIO.PresignedGetObject(ctx, bucket, key, duration, make(url.Values))
	if err != nil {
		return "", err
	}
	return presigned.String(), nil
}
