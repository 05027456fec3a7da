// Package converter sequences one script-to-document conversion: wrap,
// compress, protect, archive, write. Each conversion is a single
// synchronous call with no state carried between invocations; any failure
// aborts before the output file is touched.
package converter

import (
	"fmt"
	"hash/crc32"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/calclabs/tnspack/internal/config"
	"github.com/calclabs/tnspack/internal/document"
	"github.com/calclabs/tnspack/internal/tns"
)

// Archive entry names. The calculator expects exactly these, in this
// order, before any companion files.
const (
	documentEntryName = "Document.xml"
	problemEntryName  = "Problem1.xml"
)

// Converter packages one input script into a .tns document.
type Converter struct {
	cfg     *config.Config
	version tns.Version
	logger  *slog.Logger
}

// New validates the configuration and returns a ready Converter.
func New(cfg *config.Config) (*Converter, error) {
	version, err := parseVersion(cfg.DocVersion)
	if err != nil {
		return nil, err
	}

	return &Converter{
		cfg:     cfg,
		version: version,
		logger:  slog.With("input", cfg.InputFile),
	}, nil
}

func parseVersion(tag string) (tns.Version, error) {
	switch tag {
	case "", "0500":
		return tns.VersionDefault, nil
	case "0700":
		return tns.VersionBitmap, nil
	default:
		return tns.Version{}, fmt.Errorf("unsupported document version tag: %q", tag)
	}
}

// Convert reads the input file and dispatches on its extension:
// .lua and .py are converted as scripts, anything else as a plain text
// note.
func (c *Converter) Convert() error {
	content, err := os.ReadFile(c.cfg.InputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(c.cfg.InputFile)) {
	case ".lua":
		return c.ConvertLua(string(content))
	case ".py":
		return c.ConvertPython(string(content), filepath.Base(c.cfg.InputFile))
	default:
		return c.ConvertText(string(content))
	}
}

// ConvertLua packages a Lua script: the fixed Document.xml plus a
// protected Problem1.xml embedding the script.
func (c *Converter) ConvertLua(script string) error {
	c.logger.Debug("wrapping lua script", "script_bytes", len(script))

	problem, err := c.protectedPayload(document.WrapLua(script))
	if err != nil {
		return err
	}

	entries := []tns.Entry{
		tns.NewProtectedEntry(documentEntryName, document.DefaultDocument),
		tns.NewProtectedEntry(problemEntryName, problem),
	}

	return c.writeArchive(entries)
}

// ConvertPython packages a Python script. The problem wrapper references
// the companion file by name; the script itself travels as a third,
// plainly deflated entry whose checksum and size describe the original
// bytes.
func (c *Converter) ConvertPython(script, filename string) error {
	c.logger.Debug("wrapping python script", "filename", filename, "script_bytes", len(script))

	wrapped, err := document.WrapPython(filename)
	if err != nil {
		return err
	}

	problem, err := c.protectedPayload(wrapped)
	if err != nil {
		return err
	}

	compressed, err := tns.Deflate([]byte(script))
	if err != nil {
		return err
	}

	entries := []tns.Entry{
		tns.NewProtectedEntry(documentEntryName, document.DefaultDocument),
		tns.NewProtectedEntry(problemEntryName, problem),
		tns.NewDeflatedEntry(filename, compressed, uint32(len(script)), crc32.ChecksumIEEE([]byte(script))),
	}

	return c.writeArchive(entries)
}

// ConvertText renders a plain text note as a Lua viewer script and
// packages it through the Lua path. Math notation is substituted during
// rendering.
func (c *Converter) ConvertText(text string) error {
	return c.ConvertLua(document.TextToLuaScript(text))
}

// protectedPayload runs a wrapped buffer through the protection pipeline:
// raw deflate, zero-pad to the cipher block size, keystream protection in
// place, then the fixed encrypted prologue in front. Padding guarantees
// the block length Protect requires.
func (c *Converter) protectedPayload(wrapped []byte) ([]byte, error) {
	compressed, err := tns.Deflate(wrapped)
	if err != nil {
		return nil, err
	}

	padded := tns.Pad(compressed)
	if err := tns.Protect(padded); err != nil {
		return nil, err
	}

	payload := make([]byte, 0, len(document.EncryptedPrologue)+len(padded))
	payload = append(payload, document.EncryptedPrologue...)
	payload = append(payload, padded...)
	return payload, nil
}

// writeArchive serializes the entries and flushes the archive image in a
// single write. Dry runs stop after serialization.
func (c *Converter) writeArchive(entries []tns.Entry) error {
	image, err := tns.BuildArchive(entries, c.version)
	if err != nil {
		return err
	}

	c.logger.Info("archive assembled",
		"entries", len(entries),
		"bytes", len(image),
		"version", string(c.version[:]),
	)

	if c.cfg.DryRun {
		c.logger.Info("dry run, skipping write", "output", c.cfg.OutputFile)
		return nil
	}

	if err := os.WriteFile(c.cfg.OutputFile, image, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
