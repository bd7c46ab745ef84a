package service

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/bowl-pool/internal/models"
	"github.com/yourusername/bowl-pool/internal/repository"
)

type fakeSource struct {
	bowls      []models.Bowl
	factors    []models.TeamFactor
	picks      []models.Pick
	bowlsErr   error
	factorsErr error
	picksErr   error
}

func (s *fakeSource) FetchBowls(ctx context.Context) ([]models.Bowl, error) {
	return s.bowls, s.bowlsErr
}

func (s *fakeSource) FetchTeamFactors(ctx context.Context) ([]models.TeamFactor, error) {
	return s.factors, s.factorsErr
}

func (s *fakeSource) FetchPicks(ctx context.Context) ([]models.Pick, error) {
	return s.picks, s.picksErr
}

func (s *fakeSource) Name() string { return "fake" }

type fakeBowlRepo struct {
	stored     []models.Bowl
	replaceErr error
	calls      int
}

func (r *fakeBowlRepo) ReplaceAll(ctx context.Context, bowls []models.Bowl) error {
	r.calls++
	if r.replaceErr != nil {
		return r.replaceErr
	}
	r.stored = bowls
	return nil
}

func (r *fakeBowlRepo) GetAll(ctx context.Context) ([]models.Bowl, error) {
	return r.stored, nil
}

func (r *fakeBowlRepo) GetByName(ctx context.Context, name string) (*models.Bowl, error) {
	for i := range r.stored {
		if r.stored[i].Name == name {
			return &r.stored[i], nil
		}
	}
	return nil, models.ErrNotFound
}

type fakeFactorRepo struct {
	stored []models.TeamFactor
	calls  int
}

func (r *fakeFactorRepo) ReplaceAll(ctx context.Context, factors []models.TeamFactor) error {
	r.calls++
	r.stored = factors
	return nil
}

func (r *fakeFactorRepo) GetAll(ctx context.Context) ([]models.TeamFactor, error) {
	return r.stored, nil
}

type fakePickRepo struct {
	stored     []models.Pick
	replaceErr error
	calls      int
}

func (r *fakePickRepo) ReplaceAll(ctx context.Context, picks []models.Pick) error {
	r.calls++
	if r.replaceErr != nil {
		return r.replaceErr
	}
	r.stored = picks
	return nil
}

func (r *fakePickRepo) GetAll(ctx context.Context) ([]models.Pick, error) {
	return r.stored, nil
}

func (r *fakePickRepo) GetByBettor(ctx context.Context, bettor string) ([]models.Pick, error) {
	var picks []models.Pick
	for _, pick := range r.stored {
		if pick.Bettor == bettor {
			picks = append(picks, pick)
		}
	}
	return picks, nil
}

func newFakeRepos() (*repository.Repositories, *fakeBowlRepo, *fakeFactorRepo, *fakePickRepo) {
	bowls := &fakeBowlRepo{}
	factors := &fakeFactorRepo{}
	picks := &fakePickRepo{}
	return &repository.Repositories{Bowl: bowls, TeamFactor: factors, Pick: picks}, bowls, factors, picks
}

func newTestIngestion(t *testing.T, source *fakeSource, repos *repository.Repositories) *IngestionService {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	svc, err := NewIngestionService(source, repos, nil, logger)
	require.NoError(t, err)
	return svc
}

// fullSlate builds the bowl list the fullSheet picks reference.
func fullSlate() []models.Bowl {
	picks := fullSheet("Xavier")
	bowls := make([]models.Bowl, 0, len(picks))
	for i, pick := range picks {
		bowls = append(bowls, models.Bowl{
			Name:  pick.Bowl,
			TeamA: pick.Team,
			TeamB: pick.Team + " Rival",
			Row:   i + 2,
		})
	}
	return bowls
}

func TestIngestionSyncStoresAllRecords(t *testing.T) {
	source := &fakeSource{
		bowls:   fullSlate(),
		factors: []models.TeamFactor{{Team: "Rose Home", Row: 2}},
		picks:   fullSheet("Xavier"),
	}
	repos, bowlRepo, factorRepo, pickRepo := newFakeRepos()

	result, err := newTestIngestion(t, source, repos).Sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, result.Bowls)
	assert.Equal(t, 1, result.TeamFactors)
	assert.Equal(t, 10, result.Picks)
	assert.Zero(t, result.Warnings)
	assert.Zero(t, result.Errors)
	assert.Len(t, bowlRepo.stored, 10)
	assert.Len(t, factorRepo.stored, 1)
	assert.Len(t, pickRepo.stored, 10)
}

func TestIngestionSyncFetchErrorAbortsBeforeWrites(t *testing.T) {
	source := &fakeSource{picksErr: fmt.Errorf("sheet unreachable")}
	repos, bowlRepo, factorRepo, pickRepo := newFakeRepos()

	result, err := newTestIngestion(t, source, repos).Sync(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch picks")
	assert.Equal(t, 1, result.Errors)
	assert.Zero(t, bowlRepo.calls)
	assert.Zero(t, factorRepo.calls)
	assert.Zero(t, pickRepo.calls)
}

func TestIngestionSyncMalformedBowlsAbortBeforeWrites(t *testing.T) {
	source := &fakeSource{
		bowls: []models.Bowl{{Name: "Rose Bowl", TeamA: "Ducks", TeamB: "Ducks", Row: 2}},
	}
	repos, bowlRepo, _, _ := newFakeRepos()

	result, err := newTestIngestion(t, source, repos).Sync(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bowl records failed validation")
	assert.Equal(t, 1, result.Errors)
	assert.Zero(t, bowlRepo.calls)
}

func TestIngestionSyncStoresPicksDespiteWarnings(t *testing.T) {
	picks := fullSheet("Xavier")
	picks[4].Points = 3
	source := &fakeSource{
		bowls: []models.Bowl{{Name: "Rose Bowl", TeamA: "Ducks", TeamB: "Buckeyes", Row: 2}},
		picks: picks,
	}
	repos, _, _, pickRepo := newFakeRepos()

	result, err := newTestIngestion(t, source, repos).Sync(context.Background())

	require.NoError(t, err)
	assert.Positive(t, result.Warnings)
	assert.Len(t, pickRepo.stored, 10)
}

func TestIngestionSyncStoreErrorReported(t *testing.T) {
	source := &fakeSource{
		bowls: []models.Bowl{{Name: "Rose Bowl", TeamA: "Ducks", TeamB: "Buckeyes", Row: 2}},
	}
	repos, _, _, pickRepo := newFakeRepos()
	pickRepo.replaceErr = fmt.Errorf("connection reset")

	result, err := newTestIngestion(t, source, repos).Sync(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store picks")
	assert.Equal(t, 1, result.Errors)
}

func TestNewIngestionServiceRequiresDependencies(t *testing.T) {
	repos, _, _, _ := newFakeRepos()

	_, err := NewIngestionService(nil, repos, nil, nil)
	assert.Error(t, err)

	_, err = NewIngestionService(&fakeSource{}, nil, nil, nil)
	assert.Error(t, err)
}
