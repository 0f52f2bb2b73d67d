package helper

import (
	"bytes"
	"encoding/base64"
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

var dataURIPrefix = regexp.MustCompile(`^data:image/[a-zA-Z+]+;base64,`)

// SaveBase64Image decodes an embedded base64 image, re-encodes it to webp
// and writes it under uploads/<folder>/. Returns the stored path; the caller
// persists the path on the row, never the raw data.
func SaveBase64Image(base64String, folder, fileName string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(dataURIPrefix.ReplaceAllString(base64String, ""))
	if err != nil {
		return "", fmt.Errorf("saving image: decode base64: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("saving image: decode image: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return "", fmt.Errorf("saving image: encode webp: %w", err)
	}

	path := filepath.Join("uploads", folder, uniqueFilename(fileName))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("saving image: create folder: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("saving image: write file: %w", err)
	}

	return path, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func uniqueFilename(original string) string {
	safe := unsafeFilenameChars.ReplaceAllString(original, "_")
	safe = strings.TrimSuffix(safe, filepath.Ext(safe))
	if safe == "" {
		safe = "image"
	}
	return fmt.Sprintf("%s-%s-%s.webp", time.Now().Format("20060102"), uuid.New().String(), safe)
}
