// Package extract orchestrates one extraction batch: pick a profile, write
// its raw payload, fetch every category of the fixed plan and drop a report
// next to the files.
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/stoewer/go-strcase"

	"github.com/sahaj33-op/sbextract/internals/cmdlog"
	"github.com/sahaj33-op/sbextract/internals/hypixel"
	"github.com/sahaj33-op/sbextract/internals/mojang"
)

// RawProfileFile holds the verbatim profile payload. It is the
// authoritative, complete record; every plan entry is an auxiliary
// convenience extract.
const RawProfileFile = "profile_raw.json"

// Extractor downloads every category of the extraction plan into a fresh
// output directory. Failures of single categories are logged and skipped,
// the batch never aborts because of one endpoint.
type Extractor struct {
	Client *hypixel.Client
	Log    *cmdlog.Logger
	// BaseDir is where output directories get created, defaults to the
	// working directory
	BaseDir string
}

// Result summarizes one extraction run. It is written once and never
// mutated afterwards.
type Result struct {
	OutputDir string
	// Files lists the written filenames in write order
	Files     []string
	Succeeded int
	Attempted int
}

// Run executes the whole plan sequentially. Only directory creation and the
// raw payload write can fail the run.
func (e *Extractor) Run(ctx context.Context, identity *mojang.Identity, profile hypixel.Profile, displayName string) (*Result, error) {
	dir, err := e.createOutputDir(displayName, profile.Name)
	if err != nil {
		return nil, errors.Wrap(err, "could not create output directory")
	}
	e.logger().Success("Created output directory: " + dir)

	result := &Result{OutputDir: dir}

	if err := writeJSON(filepath.Join(dir, RawProfileFile), profile.Raw); err != nil {
		return nil, errors.Wrap(err, "could not write the raw profile payload")
	}
	result.Files = append(result.Files, RawProfileFile)

	plan := Plan()
	result.Attempted = len(plan)

	expand := strings.NewReplacer("{uuid}", identity.ID, "{profile}", profile.ID)

	task := e.logger().NewTask(len(plan))
	for _, entry := range plan {
		task.Step(entry.Emoji, entry.Description)

		body, err := e.Client.FetchRaw(ctx, expand.Replace(entry.Path))
		if err != nil {
			e.logger().Warn(fmt.Sprintf("Skipping %s: %s", entry.Description, err))
			continue
		}
		if err := writeJSON(filepath.Join(dir, entry.File), body); err != nil {
			e.logger().Warn(fmt.Sprintf("Skipping %s: %s", entry.Description, err))
			continue
		}

		result.Files = append(result.Files, entry.File)
		result.Succeeded++
	}

	return result, nil
}

// createOutputDir derives the directory name from player, profile and a
// second resolution timestamp. Two runs for the same player and profile
// within the same second share the directory.
func (e *Extractor) createOutputDir(displayName, profileName string) (string, error) {
	stamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("%s_%s_%s", displayName, strcase.SnakeCase(profileName), stamp)

	dir := filepath.Join(e.BaseDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// writeJSON pretty-prints raw exactly as received. json.Indent only adds
// whitespace, key order and values stay untouched.
func writeJSON(path string, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func (e *Extractor) logger() *cmdlog.Logger {
	if e.Log != nil {
		return e.Log
	}
	return cmdlog.New()
}
