package services

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentuanthien2384/unishare-be-main/config"
)

func TestIsFileExtensionAllowed(t *testing.T) {
	config.AppConfig = testConfig()

	cases := []struct {
		filename string
		want     bool
	}{
		{"notes.pdf", true},
		{"NOTES.PDF", true},
		{"report.docx", true},
		{"photo.png", true},
		{"script.sh", false},
		{"malware.exe", false},
		{"noextension", false},
	}
	for _, tc := range cases {
		if got := isFileExtensionAllowed(tc.filename); got != tc.want {
			t.Errorf("isFileExtensionAllowed(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	if got := sanitizeFilename("../../etc/passwd"); got != "passwd" {
		t.Fatalf("path segments must be stripped, got %q", got)
	}
	if got := sanitizeFilename("my notes #1.pdf"); got != "my_notes__1.pdf" {
		t.Fatalf("unexpected sanitized name %q", got)
	}
}

func TestIsImageFile(t *testing.T) {
	if !IsImageFile("photo.JPG") {
		t.Fatalf("jpg must be an image")
	}
	if IsImageFile("notes.pdf") {
		t.Fatalf("pdf is not an image")
	}
}

func TestGenerateThumbnailAndReadDimensions(t *testing.T) {
	config.AppConfig = testConfig()
	config.AppConfig.Storage.ThumbnailWidth = 64
	config.AppConfig.Storage.ThumbnailHeight = 64

	baseDir := t.TempDir()
	srcPath := filepath.Join(baseDir, "src.jpg")
	dstPath := filepath.Join(baseDir, "thumbs", "dst.jpg")

	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			src.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	srcFile, err := os.Create(srcPath)
	if err != nil {
		t.Fatalf("failed to create src image: %v", err)
	}
	if err := jpeg.Encode(srcFile, src, &jpeg.Options{Quality: 95}); err != nil {
		_ = srcFile.Close()
		t.Fatalf("failed to write src image: %v", err)
	}
	if err := srcFile.Close(); err != nil {
		t.Fatalf("failed to close src image: %v", err)
	}

	if err := GenerateThumbnail(srcPath, dstPath); err != nil {
		t.Fatalf("GenerateThumbnail failed: %v", err)
	}

	width, height, err := GetImageDimensions(dstPath)
	if err != nil {
		t.Fatalf("GetImageDimensions failed: %v", err)
	}
	if width <= 0 || height <= 0 {
		t.Fatalf("expected positive dimensions, got %dx%d", width, height)
	}
	if width > 64 || height > 64 {
		t.Fatalf("thumbnail should be bounded by 64x64, got %dx%d", width, height)
	}
}
