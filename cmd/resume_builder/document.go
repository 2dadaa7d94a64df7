package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/sirupsen/logrus"
)

// openStore opens the configured backend and wraps it in a document store
func openStore(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*store.Store, error) {
	backend, err := storage.Open(ctx, cfg.StorageOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.StorageBackend, err)
	}
	return store.New(backend, store.Options{
		Key:    cfg.StorageKey,
		Delay:  cfg.AutosaveDelay(),
		Logger: logger,
	}), nil
}

// readDocumentFile loads a document JSON file, rejecting one with the wrong shape
func readDocumentFile(path string) (types.ResumeData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to read document file: %w", err)
	}
	if err := schemas.ValidateDocument(string(content)); err != nil {
		return types.ResumeData{}, fmt.Errorf("document %s is malformed: %w", path, err)
	}
	var doc types.ResumeData
	if err := json.Unmarshal(content, &doc); err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to unmarshal document JSON: %w", err)
	}
	return editor.Sanitize(doc), nil
}

// loadDocument reads path when given, otherwise the document persisted in the configured storage
func loadDocument(ctx context.Context, cfg *config.Config, logger *logrus.Logger, path string) (types.ResumeData, error) {
	if path != "" {
		return readDocumentFile(path)
	}

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return types.ResumeData{}, err
	}
	defer st.Close(ctx)

	switch result := st.Load(ctx); result {
	case store.Restored:
		return st.Snapshot(), nil
	case store.NothingSaved:
		return types.ResumeData{}, fmt.Errorf("no saved resume in %s storage; pass --in to use a document file", cfg.StorageBackend)
	default:
		return types.ResumeData{}, fmt.Errorf("saved resume in %s storage could not be read", cfg.StorageBackend)
	}
}
