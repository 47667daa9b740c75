// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires the pipeline stages together: validate and
// transcribe the PDF, render the Markdown into Notion blocks, create the
// page, and record the outcome in the ledger.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/notesmith/internal/backup"
	"github.com/pdiddy/notesmith/internal/ledger"
	"github.com/pdiddy/notesmith/internal/markdown"
	"github.com/pdiddy/notesmith/internal/notion"
	"github.com/pdiddy/notesmith/internal/transcribe"
	"github.com/pdiddy/notesmith/pkg/types"
)

// PageCreator is the slice of the Notion client the pipeline needs.
type PageCreator interface {
	CreatePage(ctx context.Context, databaseID, title string, children []notion.Block) (notion.Page, error)
}

// transcribePDF is a var so tests can substitute a canned transcription.
var transcribePDF = transcribe.TranscribePDF

// Pipeline runs the PDF-to-Notion flow end to end.
type Pipeline struct {
	Backend transcribe.Backend
	Notion  PageCreator
	Store   *ledger.Store
	Config  types.Config
	Log     *logrus.Logger
}

// Result describes the outcome of one Push call.
type Result struct {
	Note    types.Note
	Blocks  int
	Skipped bool

	// BackupPath is set when page creation failed and the transcription
	// was written to a local backup file.
	BackupPath string
}

// Push transcribes the PDF at pdfPath and creates a Notion page from it.
// A PDF whose digest was already pushed is skipped unless force is set.
// When page creation fails the transcription is saved to the backup
// directory before the error is returned, and the failure is recorded in
// the ledger.
func (p *Pipeline) Push(ctx context.Context, pdfPath, title string, force bool) (Result, error) {
	if title == "" {
		title = noteID(pdfPath)
	}

	sha, err := ledger.HashFile(pdfPath)
	if err != nil {
		return Result{}, err
	}

	if !force {
		if prev, found, err := p.Store.Lookup(sha); err != nil {
			return Result{}, err
		} else if found && prev.Status == types.StatusPushed {
			p.Log.Infof("%s already pushed (%s), skipping; use --force to push again", pdfPath, prev.PageURL)
			return Result{Note: prev, Skipped: true}, nil
		}
	}

	md, err := transcribePDF(ctx, p.Backend, pdfPath, p.Config.Transcription, p.Log)
	if err != nil {
		return Result{}, err
	}
	p.Log.Infof("transcription complete (%d chars)", len(md))

	note := types.Note{
		ID:      noteID(pdfPath),
		PDFPath: pdfPath,
		SHA256:  sha,
		Title:   title,
		Status:  types.StatusTranscribed,
	}
	if err := p.Store.Record(note); err != nil {
		return Result{}, fmt.Errorf("recording note: %w", err)
	}

	renderer := notion.NewRenderer(p.Config.Notion.BlockLimit)
	blocks := renderer.Render(markdown.Tokenize(md))
	p.Log.Infof("rendered %d Notion blocks", len(blocks))

	page, err := p.Notion.CreatePage(ctx, p.Config.Notion.DatabaseID, title, blocks)
	if err != nil {
		note.Status = types.StatusFailed
		result := Result{Note: note, Blocks: len(blocks)}

		if path, saveErr := backup.Save(p.Config.Pipeline.BackupDir, title, pdfPath, md); saveErr != nil {
			p.Log.WithError(saveErr).Error("could not write local backup")
		} else {
			result.BackupPath = path
			p.Log.Warnf("page creation failed, transcription saved to %s", path)
		}

		if recErr := p.Store.Record(note); recErr != nil {
			p.Log.WithError(recErr).Error("could not record failure in ledger")
		}
		return result, fmt.Errorf("pushing %s: %w", pdfPath, err)
	}

	note.Status = types.StatusPushed
	note.PageURL = page.URL
	if err := p.Store.Record(note); err != nil {
		return Result{}, fmt.Errorf("recording note: %w", err)
	}

	p.Log.Infof("page created: %s", page.URL)
	return Result{Note: note, Blocks: len(blocks)}, nil
}

// noteID derives the note slug from the PDF filename.
func noteID(pdfPath string) string {
	base := filepath.Base(pdfPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
