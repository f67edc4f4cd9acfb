// internals/helpers/oss/oss_client.go
package oss

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"videoku_backend/internals/configs"
)

var (
	ErrNotConfigured = errors.New("OSS belum dikonfigurasi (endpoint/bucket/key kosong)")
	ErrBadExtension  = errors.New("ekstensi file tidak diizinkan")
	ErrFileTooLarge  = errors.New("ukuran file melebihi batas upload")
	ErrNotAnImage    = errors.New("file bukan gambar yang valid")
)

const maxThumbWidth = 1280

func newBucket() (*alioss.Bucket, error) {
	if configs.AliyunOSSEndpoint == "" || configs.AliyunOSSBucket == "" ||
		configs.AliyunAccessKeyID == "" || configs.AliyunAccessKeySecret == "" {
		return nil, ErrNotConfigured
	}
	client, err := alioss.New(configs.AliyunOSSEndpoint, configs.AliyunAccessKeyID, configs.AliyunAccessKeySecret)
	if err != nil {
		return nil, err
	}
	return client.Bucket(configs.AliyunOSSBucket)
}

func extAllowed(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	for _, allowed := range configs.AllowedImageExts {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

// UploadThumbnail memvalidasi file gambar dari form, mengkonversi ke WebP
// (di-resize kalau terlalu lebar), lalu mengunggahnya ke OSS. File ditulis ke
// storage dulu sebelum row DB yang mereferensikannya di-commit.
func UploadThumbnail(fh *multipart.FileHeader) (string, error) {
	if !extAllowed(fh.Filename) {
		return "", ErrBadExtension
	}
	if fh.Size > int64(configs.MaxUploadSizeMB)*1024*1024 {
		return "", ErrFileTooLarge
	}

	bucket, err := newBucket()
	if err != nil {
		return "", err
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", ErrNotAnImage
	}

	// resize proporsional kalau lebih lebar dari batas
	if b := img.Bounds(); b.Dx() > maxThumbWidth {
		h := b.Dy() * maxThumbWidth / b.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, maxThumbWidth, h))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return "", err
	}

	key := fmt.Sprintf("thumbnails/%s/%s.webp", time.Now().Format("2006/01"), uuid.NewString())
	if err := bucket.PutObject(key, bytes.NewReader(buf.Bytes()),
		alioss.ContentType("image/webp")); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.%s/%s", configs.AliyunOSSBucket, configs.AliyunOSSEndpoint, key), nil
}
