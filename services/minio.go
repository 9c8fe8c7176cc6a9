package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	appcontext "github.com/alphabatem/common/context"
	"github.com/google/uuid"
	"github.com/lac-hong-legacy/folio_api/dto"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

// MediaService stores portfolio assets (project images, slides, logos, the
// CV pdf) in MinIO and hands back public URLs for the content records.
type MediaService struct {
	appcontext.DefaultService
	client     *minio.Client
	bucketName string
	endpoint   string
	accessKey  string
	secretKey  string
	useSSL     bool
	publicBase string
}

const MEDIA_SVC = "media_svc"

// Upload folders per asset kind.
const (
	FolderProjects = "projects"
	FolderSlides   = "slides"
	FolderLogos    = "logos"
	FolderCv       = "cv"
)

var allowedContentTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Configure(ctx *appcontext.Context) error {
	svc.endpoint = os.Getenv("MINIO_ENDPOINT")
	if svc.endpoint == "" {
		svc.endpoint = "localhost:9000"
	}

	svc.accessKey = os.Getenv("MINIO_ACCESS_KEY")
	if svc.accessKey == "" {
		svc.accessKey = "admin"
	}

	svc.secretKey = os.Getenv("MINIO_SECRET_KEY")
	if svc.secretKey == "" {
		svc.secretKey = "password123"
	}

	svc.useSSL = os.Getenv("MINIO_USE_SSL") == "true"

	svc.bucketName = os.Getenv("MINIO_BUCKET_NAME")
	if svc.bucketName == "" {
		svc.bucketName = "folio-media"
	}

	// Public URL prefix for uploaded objects, e.g. a CDN in front of the
	// bucket.
	svc.publicBase = os.Getenv("MEDIA_PUBLIC_BASE")
	if svc.publicBase == "" {
		scheme := "http"
		if svc.useSSL {
			scheme = "https"
		}
		svc.publicBase = fmt.Sprintf("%s://%s/%s", scheme, svc.endpoint, svc.bucketName)
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *MediaService) Start() error {
	client, err := minio.New(svc.endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(svc.accessKey, svc.secretKey, ""),
		Secure: svc.useSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create MinIO client: %v", err)
	}

	svc.client = client

	if err := svc.ensureBucket(); err != nil {
		return fmt.Errorf("failed to ensure bucket exists: %v", err)
	}

	log.Printf("Media service started successfully with endpoint: %s", svc.endpoint)
	return nil
}

func (svc *MediaService) ensureBucket() error {
	ctx := context.Background()

	exists, err := svc.client.BucketExists(ctx, svc.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %v", err)
	}

	if !exists {
		err = svc.client.MakeBucket(ctx, svc.bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %v", err)
		}
		log.Printf("Created MinIO bucket: %s", svc.bucketName)
	}

	return nil
}

// UploadAsset streams one multipart upload into the bucket under the given
// folder and returns the public descriptor.
func (svc *MediaService) UploadAsset(folder string, fileHeader *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedContentTypes[contentType] {
		return nil, fmt.Errorf("unsupported content type: %s", contentType)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %v", err)
	}
	defer file.Close()

	id, _ := uuid.NewV7()
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	objectName := fmt.Sprintf("%s/%s%s", folder, id.String(), ext)

	info, err := svc.uploadFile(objectName, file, fileHeader.Size, contentType)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"object": objectName,
		"size":   info.Size,
	}).Info("Media asset uploaded")

	return &dto.MediaUploadResponse{
		URL:      fmt.Sprintf("%s/%s", svc.publicBase, objectName),
		FileName: filepath.Base(objectName),
		FileType: contentType,
		FileSize: info.Size,
	}, nil
}

func (svc *MediaService) uploadFile(objectName string, reader io.Reader, objectSize int64, contentType string) (*minio.UploadInfo, error) {
	ctx := context.Background()

	uploadInfo, err := svc.client.PutObject(ctx, svc.bucketName, objectName, reader, objectSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file to MinIO: %v", err)
	}

	return &uploadInfo, nil
}

func (svc *MediaService) DeleteAsset(objectName string) error {
	ctx := context.Background()

	err := svc.client.RemoveObject(ctx, svc.bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file from MinIO: %v", err)
	}

	return nil
}

func (svc *MediaService) ListAssets(prefix string) ([]minio.ObjectInfo, error) {
	ctx := context.Background()

	var objects []minio.ObjectInfo
	objectCh := svc.client.ListObjects(ctx, svc.bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %v", object.Err)
		}
		objects = append(objects, object)
	}

	return objects, nil
}

func (svc *MediaService) GetBucketName() string {
	return svc.bucketName
}
