package services

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentuanthien2384/unishare-be-main/config"

	"github.com/disintegration/imaging"
)

func isFileExtensionAllowed(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	for _, allowed := range config.AppConfig.Storage.AllowedExtensions {
		if ext == strings.TrimPrefix(strings.ToLower(allowed), ".") {
			return true
		}
	}
	return false
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	replacer := strings.NewReplacer(" ", "_", "#", "_", "%", "_", "&", "_", "?", "_")
	return replacer.Replace(name)
}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".bmp": true, ".webp": true,
}

func IsImageFile(filename string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(filename))]
}

// GenerateThumbnail renders a bounded-fit JPEG preview of an image file.
func GenerateThumbnail(srcPath, dstPath string) error {
	src, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return err
	}

	thumb := imaging.Fit(src, config.AppConfig.Storage.ThumbnailWidth, config.AppConfig.Storage.ThumbnailHeight, imaging.Lanczos)

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return err
	}
	return imaging.Save(thumb, dstPath, imaging.JPEGQuality(85))
}

func GetImageDimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
