package deploy

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
)

// strippedEntries are build and version-control artifacts removed from the
// workspace copy of the site template.
var strippedEntries = map[string]bool{
	".git":         true,
	".next":        true,
	".vercel":      true,
	"node_modules": true,
	"out":          true,
}

// createWorkspace copies the site template into a uniquely named directory
// under scratchDir. The name embeds the slug and a timestamp so concurrent
// deploys for the same business never collide. The template is read-only
// here — copied, never mutated.
func createWorkspace(templateDir, scratchDir, slug string) (string, error) {
	if _, err := os.Stat(templateDir); err != nil {
		return "", eris.Wrapf(err, "deploy: site template %s", templateDir)
	}
	if err := os.MkdirAll(scratchDir, 0o755); err != nil {
		return "", eris.Wrap(err, "deploy: create scratch dir")
	}

	ws := filepath.Join(scratchDir, fmt.Sprintf("%s-%d", slug, time.Now().UnixNano()))
	if err := copyTree(templateDir, ws); err != nil {
		os.RemoveAll(ws)
		return "", eris.Wrap(err, "deploy: copy template")
	}
	return ws, nil
}

// removeWorkspace deletes a workspace directory tree.
func removeWorkspace(ws string) error {
	if ws == "" {
		return nil
	}
	return os.RemoveAll(ws)
}

// copyTree recursively copies src to dst, skipping stripped entries.
func copyTree(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}

	for _, e := range entries {
		if strippedEntries[e.Name()] {
			continue
		}
		srcPath := filepath.Join(src, e.Name())
		dstPath := filepath.Join(dst, e.Name())

		if e.IsDir() {
			if err := copyTree(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if !e.Type().IsRegular() {
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
