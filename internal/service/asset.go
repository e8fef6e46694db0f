package service

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/casalista/backend/internal/app/appconfig"
	"github.com/casalista/backend/internal/constant"
	"github.com/casalista/backend/internal/pkg/apperr"
)

// AssetUpload is a binary payload with its declared metadata, as received
// from a multipart form.
type AssetUpload struct {
	Payload     io.Reader
	Size        int64
	ContentType string
	Filename    string
}

type Asset struct {
	Config *appconfig.Config
}

func NewAsset(conf *appconfig.Config) *Asset {
	return &Asset{
		Config: conf,
	}
}

// Save validates and persists an uploaded image, returning its public
// relative reference. Validation happens strictly before any filesystem
// side effect: a rejected payload leaves no file behind.
func (s *Asset) Save(ctx context.Context, upload *AssetUpload) (string, error) {
	if upload == nil || upload.Payload == nil || upload.Size == 0 {
		return "", apperr.ErrEmptyUpload
	}
	if upload.Size > constant.UploadMaxSize {
		return "", apperr.ErrPayloadTooLarge
	}
	if !lo.Contains(constant.UploadAllowedTypes, upload.ContentType) {
		return "", apperr.ErrUnsupportedMediaType
	}

	if err := os.MkdirAll(s.Config.UploadDir, os.ModePerm); err != nil {
		log.Error().Err(err).Str("dir", s.Config.UploadDir).Msg("failed to create upload directory")
		return "", apperr.ErrPersistenceFailed
	}

	name := strings.ToLower(ulid.Make().String()) + extensionOf(upload.Filename)
	dest := filepath.Join(s.Config.UploadDir, name)

	f, err := os.Create(dest)
	if err != nil {
		log.Error().Err(err).Str("path", dest).Msg("failed to create asset file")
		return "", apperr.ErrPersistenceFailed
	}
	defer f.Close()

	if _, err := io.Copy(f, upload.Payload); err != nil {
		log.Error().Err(err).Str("path", dest).Msg("failed to write asset payload")
		return "", apperr.ErrPersistenceFailed
	}

	return constant.UploadPublicPrefix + "/" + name, nil
}

// SaveMultipart persists a multipart file part through Save.
func (s *Asset) SaveMultipart(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		log.Error().Err(err).Str("filename", fh.Filename).Msg("failed to open uploaded file part")
		return "", apperr.ErrPersistenceFailed
	}
	defer f.Close()

	return s.Save(ctx, &AssetUpload{
		Payload:     f,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Filename:    fh.Filename,
	})
}

// ResolveImage applies the image-file-vs-URL decision an entity submission
// carries: a non-empty file part wins and goes through Save; otherwise a
// trimmed external URL is used as-is; blank means no image.
func (s *Asset) ResolveImage(ctx context.Context, file *multipart.FileHeader, imageURL string) (null.String, error) {
	if file != nil && file.Size > 0 {
		ref, err := s.SaveMultipart(ctx, file)
		if err != nil {
			return null.String{}, err
		}
		return null.StringFrom(ref), nil
	}

	imageURL = strings.TrimSpace(imageURL)
	return null.NewString(imageURL, imageURL != ""), nil
}

// extensionOf derives the stored extension from the original filename,
// falling back to ".jpg" for anything unrecognized. The payload is not
// sniffed; the declared content type is the contract.
func extensionOf(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if lo.Contains(constant.UploadKnownExtensions, ext) {
		return ext
	}
	return ".jpg"
}
