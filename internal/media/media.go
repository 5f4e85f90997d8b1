// Package media handles photo and voice note intake for the wizard: it
// validates file types and copies sources into the app's data directory so
// drafts never point at files the user may move or delete.
package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/rs/xid"

	"github.com/janhvi-crypto/CraftConnect/internal/logger"
)

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var audioExts = map[string]bool{
	".mp3": true,
	".m4a": true,
	".ogg": true,
	".wav": true,
}

// Intake copies media files into a data directory.
type Intake struct {
	dir string // destination, e.g. <data_dir>/media
}

// NewIntake returns an Intake that stores files under dir, creating it if
// needed.
func NewIntake(dir string) (*Intake, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media dir: %w", err)
	}
	return &Intake{dir: dir}, nil
}

// IsImage reports whether the path has a supported photo extension.
func IsImage(path string) bool {
	return imageExts[strings.ToLower(filepath.Ext(path))]
}

// IsAudio reports whether the path has a supported voice note extension.
func IsAudio(path string) bool {
	return audioExts[strings.ToLower(filepath.Ext(path))]
}

// AddImage validates and imports a photo, returning the stored path.
func (in *Intake) AddImage(src string) (string, error) {
	if !IsImage(src) {
		return "", fmt.Errorf("unsupported image type: %s", filepath.Ext(src))
	}
	return in.importFile(src)
}

// AddVoiceNote validates and imports a voice recording, returning the
// stored path.
func (in *Intake) AddVoiceNote(src string) (string, error) {
	if !IsAudio(src) {
		return "", fmt.Errorf("unsupported audio type: %s", filepath.Ext(src))
	}
	return in.importFile(src)
}

// Remove deletes a previously imported file. Files outside the intake
// directory are left alone.
func (in *Intake) Remove(path string) error {
	rel, err := filepath.Rel(in.dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		logger.Warn("Refusing to remove file outside media dir: %s", path)
		return nil
	}
	return os.Remove(path)
}

// importFile copies src into the intake directory under a collision-free
// name derived from the original: <slug>-<xid><ext>.
func (in *Intake) importFile(src string) (string, error) {
	f, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(src))
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	name := slug.Make(base)
	if name == "" {
		name = "media"
	}
	dest := filepath.Join(in.dir, fmt.Sprintf("%s-%s%s", name, xid.New().String(), ext))

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, f); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("failed to copy %s: %w", src, err)
	}

	logger.Debug("Imported media file: %s -> %s", src, dest)
	return dest, nil
}
