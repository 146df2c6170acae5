package usecase

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"textclean/internal/adapter/fs"
	"textclean/internal/domain"
)

// ProgressFunc is called after each file of a batch.
type ProgressFunc func(processed, total int, currentFile string)

// BatchUseCase cleans every matching file under a directory.
type BatchUseCase struct {
	cleaner *CleanUseCase
	walker  *fs.Walker
	logger  zerolog.Logger
}

// NewBatchUseCase creates a new batch use case.
func NewBatchUseCase(cleaner *CleanUseCase, walker *fs.Walker, logger zerolog.Logger) *BatchUseCase {
	return &BatchUseCase{
		cleaner: cleaner,
		walker:  walker,
		logger:  logger,
	}
}

// Run cleans each file under inputDir into the same relative path under
// outputDir. A failing file is recorded and the run moves on; failures are
// never retried.
func (u *BatchUseCase) Run(ctx context.Context, inputDir, outputDir string, limit int, progress ProgressFunc) (*domain.BatchResult, error) {
	if err := ValidateLimit(limit); err != nil {
		return nil, err
	}

	files, err := u.walker.Walk(inputDir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, domain.NewError(domain.InputNotFound, inputDir, err)
		}
		return nil, domain.NewError(domain.ReadFailure, inputDir, err)
	}

	// Resource failures would fail every file the same way.
	if err := u.cleaner.EnsureReady(ctx); err != nil {
		return nil, err
	}

	result := &domain.BatchResult{}
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		outPath := filepath.Join(outputDir, filepath.FromSlash(file.RelPath))
		if err := u.processFile(ctx, file, outPath, limit, result); err != nil {
			result.FilesFailed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", file.RelPath, err))
			u.logger.Warn().Err(err).Str("file", file.RelPath).Msg("file skipped")
		} else {
			result.FilesProcessed++
		}

		if progress != nil {
			progress(i+1, len(files), file.RelPath)
		}
	}

	return result, nil
}

func (u *BatchUseCase) processFile(ctx context.Context, file fs.FileInfo, outPath string, limit int, result *domain.BatchResult) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return domain.NewError(domain.WriteFailure, outPath, err)
	}

	res, err := u.cleaner.Process(ctx, file.Path, outPath, limit)
	if err != nil {
		return err
	}
	result.Words += res.Stats.Words
	return nil
}
