package cgf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/HOKORISAMA/Triangle-Engine-Tools/config"
	"github.com/HOKORISAMA/Triangle-Engine-Tools/target"
	"github.com/HOKORISAMA/Triangle-Engine-Tools/telemetry"
)

// now is a function pointer that returns time.Now to the caller.
var now = time.Now

const (
	// outputHeaderLen is the number of zero bytes prepended to every
	// extracted payload.
	outputHeaderLen = 4

	// blankedPrefixLen is the number of leading payload bytes replaced with
	// zero bytes. The downstream consumer of the extracted assets expects
	// the original container header to be stripped this way.
	blankedPrefixLen = 3

	// defaultDirMode is the mode for created destination directories.
	defaultDirMode = fs.FileMode(0755)

	// defaultFileMode is the mode for extracted files.
	defaultFileMode = fs.FileMode(0644)
)

// Extract reads the byte range of e from the archive and writes the
// transformed payload to dst/name through t. The destination directory is
// created first if the config asks for it. The transform is applied
// unconditionally regardless of entry kind or flags. Each call opens its own
// handle on the archive; nothing is shared with Open or other extractions.
func (a *Archive) Extract(ctx context.Context, e Entry, dst string, name string, t target.Target, c *config.Config) error {

	// prepare telemetry data collection and emit
	td := &telemetry.Data{ArchiveEntries: int64(len(a.Entries))}
	defer c.TelemetryHook()(ctx, td)
	defer captureExtractionDuration(td, now())

	if err := ctx.Err(); err != nil {
		return handleError(c, td, "extraction canceled", err)
	}

	// check if dst needs to be created
	if c.CreateDestination() {
		if err := t.CreateDir(dst, defaultDirMode); err != nil {
			return handleError(c, td, "cannot create destination", err)
		}
	}

	// check if dst exist
	if _, err := t.Lstat(dst); err != nil {
		return handleError(c, td, "destination does not exist", err)
	}

	content, err := a.readEntry(e)
	if err != nil {
		return handleError(c, td, "cannot read entry", err)
	}

	dstFile := filepath.Join(dst, name)
	n, err := t.CreateFile(dstFile, transformPayload(content), defaultFileMode, c.Overwrite())
	if err != nil {
		return handleError(c, td, "cannot create file", err)
	}

	td.ExtractedEntries++
	td.ExtractionSize += n
	c.Logger().Info("extracted entry", "name", e.Name, "output", dstFile, "bytes", n)
	return nil
}

// readEntry reads the payload byte range of e with an own handle on the
// archive file, released before return.
func (a *Archive) readEntry(e Entry) ([]byte, error) {
	if e.Size < 0 {
		return nil, fmt.Errorf("negative entry size %d", e.Size)
	}
	f, err := os.Open(a.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content := make([]byte, e.Size)
	if _, err := io.ReadFull(io.NewSectionReader(f, e.Offset, e.Size), content); err != nil {
		return nil, fmt.Errorf("cannot read %d bytes at offset %d: %w", e.Size, e.Offset, err)
	}
	return content, nil
}

// transformPayload returns a reader over the extracted form of content: a
// 4-byte zero header followed by content with its first 3 bytes blanked.
// Content shorter than the blanked prefix degrades to the zero bytes alone.
func transformPayload(content []byte) io.Reader {
	out := make([]byte, outputHeaderLen+blankedPrefixLen, outputHeaderLen+max(blankedPrefixLen, len(content)))
	if len(content) > blankedPrefixLen {
		out = append(out, content[blankedPrefixLen:]...)
	}
	return bytes.NewReader(out)
}

// captureExtractionDuration captures the duration of the extraction
func captureExtractionDuration(td *telemetry.Data, start time.Time) {
	stop := now()
	td.ExtractionDuration = stop.Sub(start)
}

// handleError increases the error counter, sets the latest error and
// decides if extraction should continue.
func handleError(c *config.Config, td *telemetry.Data, msg string, err error) error {

	// increase error counter and set error
	td.ExtractionErrors++
	td.LastExtractionError = fmt.Errorf("%s: %w", msg, err)

	// do not end on error
	if c.ContinueOnError() {
		c.Logger().Error(msg, "error", err)
		return nil
	}

	// end extraction on error
	return td.LastExtractionError
}
