package verification

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"data-verifier/core/reconcile"
	"data-verifier/core/storage"
	"data-verifier/core/tabular"
	"data-verifier/feature/history"
	"data-verifier/feature/settings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const (
	// UploadPrefix is the object storage prefix for uploaded extracts,
	// kept for audit alongside the generated reports.
	UploadPrefix = "uploads/"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Service runs the full comparison workflow.
type Service struct {
	client   storage.Client
	bucket   string
	history  *history.Repository
	mappings settings.Source
	logger   *zap.Logger

	// previewLimit caps the result rows returned inline in the compare
	// response; the full result set lives in the exported workbook.
	previewLimit int
}

// NewService creates a verification service.
func NewService(client storage.Client, bucket string, historyRepo *history.Repository, mappings settings.Source, previewLimit int, logger *zap.Logger) *Service {
	return &Service{
		client:       client,
		bucket:       bucket,
		history:      historyRepo,
		mappings:     mappings,
		logger:       logger,
		previewLimit: previewLimit,
	}
}

// CompareInput carries the two uploaded extracts for one run.
type CompareInput struct {
	SourceName string
	Source     io.Reader
	TargetName string
	Target     io.Reader

	// IncludeDuplicates overrides the profile's duplicate policy when
	// non-nil.
	IncludeDuplicates *bool
}

// CompareOutput is the inline response for one completed run.
type CompareOutput struct {
	Summary reconcile.Summary `json:"summary"`

	// Preview holds at most the configured number of result rows,
	// preferring rows that need attention over clean matches.
	Preview []reconcile.RowResult `json:"preview"`

	// ResultObject names the exported workbook for later download.
	ResultObject string `json:"result_object"`

	HistoryID uint `json:"history_id"`
}

// Compare parses both extracts, reconciles them with the active mapping
// profile, exports the highlighted workbook, and records the run.
func (s *Service) Compare(ctx context.Context, in CompareInput) (*CompareOutput, error) {
	sourceRaw, err := io.ReadAll(in.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to read source upload: %w", err)
	}
	targetRaw, err := io.ReadAll(in.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to read target upload: %w", err)
	}

	source, err := tabular.ReadFile(in.SourceName, bytes.NewReader(sourceRaw))
	if err != nil {
		return nil, fmt.Errorf("source file %q: %w", in.SourceName, err)
	}
	target, err := tabular.ReadFile(in.TargetName, bytes.NewReader(targetRaw))
	if err != nil {
		return nil, fmt.Errorf("target file %q: %w", in.TargetName, err)
	}

	profile, err := s.mappings.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load mapping profile: %w", err)
	}
	mapping, err := profile.Mapping()
	if err != nil {
		return nil, err
	}

	include := profile.IncludeDuplicates
	if in.IncludeDuplicates != nil {
		include = *in.IncludeDuplicates
	}

	report, err := reconcile.Run(ctx, source, target, mapping, reconcile.Options{IncludeDuplicates: include})
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	// Keep the original uploads for audit. A failed copy is logged but
	// does not fail the run.
	s.storeUpload(ctx, runID, in.SourceName, sourceRaw)
	s.storeUpload(ctx, runID, in.TargetName, targetRaw)

	workbook, err := BuildReportWorkbook(source, target, mapping, report)
	if err != nil {
		return nil, err
	}
	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize result workbook: %w", err)
	}

	resultName := fmt.Sprintf("Result_%s_%s.xlsx", time.Now().Format("20060102_150405"), runID[:8])
	_, err = s.client.PutObject(ctx, s.bucket, history.ResultPrefix+resultName,
		bytes.NewReader(buf.Bytes()), int64(buf.Len()),
		minio.PutObjectOptions{ContentType: xlsxContentType})
	if err != nil {
		return nil, fmt.Errorf("failed to store result workbook: %w", err)
	}

	entry := history.NewEntry(in.SourceName, in.TargetName, resultName, report.Summary)
	if err := s.history.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}

	return &CompareOutput{
		Summary:      report.Summary,
		Preview:      previewResults(report.Results, s.previewLimit),
		ResultObject: resultName,
		HistoryID:    entry.ID,
	}, nil
}

func (s *Service) storeUpload(ctx context.Context, runID, filename string, raw []byte) {
	objectName := UploadPrefix + runID + "_" + sanitizeFilename(filename)
	_, err := s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(raw), int64(len(raw)), minio.PutObjectOptions{})
	if err != nil {
		s.logger.Warn("failed to archive upload",
			zap.String("object", objectName), zap.Error(err))
	}
}

// sanitizeFilename reduces an uploaded filename to its base name so path
// segments from the client can never escape the upload prefix.
func sanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == string(filepath.Separator) {
		return "upload"
	}
	return base
}

// Download opens the named result workbook from object storage.
func (s *Service) Download(ctx context.Context, filename string) (io.ReadCloser, error) {
	if filename == "" || strings.ContainsAny(filename, "/\\") || filename == ".." {
		return nil, fmt.Errorf("invalid result filename %q", filename)
	}
	reader, err := s.client.GetObject(ctx, s.bucket, history.ResultPrefix+filename, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open result %q: %w", filename, err)
	}
	return reader, nil
}

// previewResults selects up to limit rows for the inline response. Rows
// needing attention come first; only an all-match run previews matches.
func previewResults(results []reconcile.RowResult, limit int) []reconcile.RowResult {
	if limit <= 0 || len(results) == 0 {
		return nil
	}

	preview := make([]reconcile.RowResult, 0, limit)
	for _, r := range results {
		if r.Status == reconcile.StatusMatch {
			continue
		}
		preview = append(preview, r)
		if len(preview) == limit {
			return preview
		}
	}
	if len(preview) > 0 {
		return preview
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return append(preview, results...)
}
