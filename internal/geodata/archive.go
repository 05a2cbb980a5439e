package geodata

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/rs/zerolog/log"
)

// EnsureExtracted unzips archive into dir unless dir/want already exists.
// Entries resolving outside dir are rejected.
func EnsureExtracted(archive, dir, want string) error {
	target := filepath.Join(dir, want)
	if _, err := os.Stat(target); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("geodata: failed to stat %s: %w", target, err)
	}

	r, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("geodata: failed to open archive %s: %w", archive, err)
	}
	defer r.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("geodata: failed to create %s: %w", dir, err)
	}

	for _, f := range r.File {
		if err := extractFile(f, dir); err != nil {
			return err
		}
	}

	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("geodata: archive %s does not contain %s", archive, want)
	}

	log.Info().Str("archive", archive).Str("dir", dir).Int("entries", len(r.File)).Msg("extracted data archive")
	return nil
}

func extractFile(f *zip.File, dir string) error {
	root := filepath.Clean(dir)
	path := filepath.Join(root, f.Name)
	if path != root && !strings.HasPrefix(path, root+string(os.PathSeparator)) {
		return fmt.Errorf("geodata: illegal path in archive: %s", f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(path, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("geodata: failed to create %s: %w", filepath.Dir(path), err)
	}

	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("geodata: failed to open %s in archive: %w", f.Name, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("geodata: failed to create %s: %w", path, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("geodata: failed to extract %s: %w", f.Name, err)
	}
	return dst.Close()
}
