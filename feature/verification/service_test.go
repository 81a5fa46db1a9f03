package verification_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"data-verifier/core/database"
	"data-verifier/core/reconcile"
	"data-verifier/core/storage/mocks"
	"data-verifier/feature/history"
	"data-verifier/feature/settings"
	"data-verifier/feature/verification"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// staticProfiles serves a fixed mapping profile.
type staticProfiles struct {
	profile *settings.MappingProfile
	err     error
}

func (s staticProfiles) Active(ctx context.Context) (*settings.MappingProfile, error) {
	return s.profile, s.err
}

func testProfile(t *testing.T, cols []string) *settings.MappingProfile {
	t.Helper()
	profile := &settings.MappingProfile{
		Name:              settings.DefaultProfileName,
		KeyColumns:        1,
		IncludeDuplicates: true,
	}
	require.NoError(t, profile.SetColumns(cols, cols))
	return profile
}

func newTestService(t *testing.T, profile *settings.MappingProfile) (*verification.Service, *history.Repository, *mocks.Client) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&history.Entry{}))

	repo := history.NewRepository(db)
	client := new(mocks.Client)
	service := verification.NewService(client, "verification", repo, staticProfiles{profile: profile}, 10, zap.NewNop())
	return service, repo, client
}

func hasPrefix(prefix string) any {
	return mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, prefix)
	})
}

func TestServiceCompare(t *testing.T) {
	service, repo, client := newTestService(t, testProfile(t, []string{"ID", "Name"}))

	client.On("PutObject", mock.Anything, "verification", hasPrefix(verification.UploadPrefix),
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Twice()
	client.On("PutObject", mock.Anything, "verification", hasPrefix(history.ResultPrefix),
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Once()

	out, err := service.Compare(context.Background(), verification.CompareInput{
		SourceName: "source.csv",
		Source:     strings.NewReader("ID,Name\n1,Widget\n2,Gadget\n3,Gizmo\n"),
		TargetName: "target.csv",
		Target:     strings.NewReader("ID,Name\n1,Widget\n2,Gidget\n"),
	})
	require.NoError(t, err)
	client.AssertExpectations(t)

	assert.Equal(t, reconcile.Summary{
		TotalKeysCompared:    3,
		Matches:              1,
		Mismatches:           1,
		MissingInTarget:      1,
		SourceRowsConsidered: 3,
		TargetRowsConsidered: 2,
	}, out.Summary)

	// The preview skips the clean match.
	require.Len(t, out.Preview, 2)
	assert.Equal(t, reconcile.StatusMismatch, out.Preview[0].Status)
	assert.Equal(t, reconcile.StatusMissingInTarget, out.Preview[1].Status)

	assert.True(t, strings.HasPrefix(out.ResultObject, "Result_"))
	assert.True(t, strings.HasSuffix(out.ResultObject, ".xlsx"))
	require.NotZero(t, out.HistoryID)

	entry, err := repo.Get(context.Background(), out.HistoryID)
	require.NoError(t, err)
	assert.Equal(t, "source.csv", entry.SourceFilename)
	assert.Equal(t, out.ResultObject, entry.ResultObject)
	assert.Equal(t, 1, entry.Mismatched)
}

func TestServiceCompareAllMatchPreview(t *testing.T) {
	service, _, client := newTestService(t, testProfile(t, []string{"ID"}))
	client.On("PutObject", mock.Anything, "verification", mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	out, err := service.Compare(context.Background(), verification.CompareInput{
		SourceName: "source.csv",
		Source:     strings.NewReader("ID\n1\n2\n"),
		TargetName: "target.csv",
		Target:     strings.NewReader("ID\n1\n2\n"),
	})
	require.NoError(t, err)

	require.Len(t, out.Preview, 2)
	for _, r := range out.Preview {
		assert.Equal(t, reconcile.StatusMatch, r.Status)
	}
}

func TestServiceCompareDuplicateOverride(t *testing.T) {
	service, _, client := newTestService(t, testProfile(t, []string{"ID"}))
	client.On("PutObject", mock.Anything, "verification", mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	exclude := false
	out, err := service.Compare(context.Background(), verification.CompareInput{
		SourceName: "source.csv",
		Source:     strings.NewReader("ID\n1\n1\n"),
		TargetName: "target.csv",
		Target:     strings.NewReader("ID\n1\n"),
		// The profile includes duplicates; the request drops them.
		IncludeDuplicates: &exclude,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Summary.TotalKeysCompared)
	assert.Equal(t, 1, out.Summary.SourceRowsConsidered)
}

func TestServiceCompareArchiveFailureIsNonFatal(t *testing.T) {
	service, _, client := newTestService(t, testProfile(t, []string{"ID"}))

	client.On("PutObject", mock.Anything, "verification", hasPrefix(verification.UploadPrefix),
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("storage down")).Twice()
	client.On("PutObject", mock.Anything, "verification", hasPrefix(history.ResultPrefix),
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Once()

	_, err := service.Compare(context.Background(), verification.CompareInput{
		SourceName: "source.csv",
		Source:     strings.NewReader("ID\n1\n"),
		TargetName: "target.csv",
		Target:     strings.NewReader("ID\n1\n"),
	})
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestServiceCompareUnsupportedFile(t *testing.T) {
	service, _, _ := newTestService(t, testProfile(t, []string{"ID"}))

	_, err := service.Compare(context.Background(), verification.CompareInput{
		SourceName: "source.pdf",
		Source:     strings.NewReader("not tabular"),
		TargetName: "target.csv",
		Target:     strings.NewReader("ID\n1\n"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source.pdf")
}

func TestServiceCompareMappingMismatch(t *testing.T) {
	service, _, _ := newTestService(t, testProfile(t, []string{"ID", "Price"}))

	_, err := service.Compare(context.Background(), verification.CompareInput{
		SourceName: "source.csv",
		Source:     strings.NewReader("ID,Name\n1,Widget\n"),
		TargetName: "target.csv",
		Target:     strings.NewReader("ID,Name\n1,Widget\n"),
	})
	var cfgErr *reconcile.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"Price"}, cfgErr.MissingSourceColumns)
}

func TestServiceDownload(t *testing.T) {
	service, _, client := newTestService(t, testProfile(t, []string{"ID"}))

	client.On("GetObject", mock.Anything, "verification", "results/Result_abc.xlsx", mock.Anything).
		Return(io.NopCloser(strings.NewReader("workbook bytes")), nil)

	reader, err := service.Download(context.Background(), "Result_abc.xlsx")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "workbook bytes", string(data))
	client.AssertExpectations(t)
}

func TestServiceDownloadRejectsPathSegments(t *testing.T) {
	service, _, client := newTestService(t, testProfile(t, []string{"ID"}))

	for _, name := range []string{"", "..", "nested/Result.xlsx", `nested\Result.xlsx`} {
		_, err := service.Download(context.Background(), name)
		assert.Error(t, err, "filename %q", name)
	}
	client.AssertNotCalled(t, "GetObject")
}
