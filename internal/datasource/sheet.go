package datasource

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/bowl-pool/internal/models"
)

// SheetSource reads pool records from published-worksheet CSV exports over
// HTTP. Each worksheet (bowls, factors, picks) is a separate export URL.
type SheetSource struct {
	client     *RateLimitedHTTPClient
	bowlsURL   string
	factorsURL string
	picksURL   string
	token      string
	logger     *logrus.Logger
}

// NewSheetSource creates a record source backed by published CSV exports.
// The factor URL may be empty; the token is optional and sent as a bearer
// credential when present.
func NewSheetSource(client *RateLimitedHTTPClient, bowlsURL, factorsURL, picksURL, token string, logger *logrus.Logger) (*SheetSource, error) {
	if client == nil {
		return nil, fmt.Errorf("HTTP client is required")
	}
	if bowlsURL == "" {
		return nil, fmt.Errorf("bowls URL is required")
	}
	if picksURL == "" {
		return nil, fmt.Errorf("picks URL is required")
	}
	if logger == nil {
		logger = logrus.New()
	}

	return &SheetSource{
		client:     client,
		bowlsURL:   bowlsURL,
		factorsURL: factorsURL,
		picksURL:   picksURL,
		token:      token,
		logger:     logger,
	}, nil
}

// Name returns the name of the record source
func (s *SheetSource) Name() string {
	return "sheet"
}

// FetchBowls retrieves and parses the bowl worksheet
func (s *SheetSource) FetchBowls(ctx context.Context) ([]models.Bowl, error) {
	records, err := s.fetchCSV(ctx, s.bowlsURL)
	if err != nil {
		return nil, err
	}
	return parseBowls(records, s.Name())
}

// FetchTeamFactors retrieves and parses the factor worksheet. No factor
// worksheet configured means default factors throughout.
func (s *SheetSource) FetchTeamFactors(ctx context.Context) ([]models.TeamFactor, error) {
	if s.factorsURL == "" {
		return nil, nil
	}
	records, err := s.fetchCSV(ctx, s.factorsURL)
	if err != nil {
		return nil, err
	}
	return parseTeamFactors(records, s.Name())
}

// FetchPicks retrieves and parses the pick worksheet
func (s *SheetSource) FetchPicks(ctx context.Context) ([]models.Pick, error) {
	records, err := s.fetchCSV(ctx, s.picksURL)
	if err != nil {
		return nil, err
	}
	return parsePicks(records, s.Name())
}

func (s *SheetSource) fetchCSV(ctx context.Context, url string) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return nil, NewSourceError(s.Name(), ErrCodeNetworkError, "worksheet fetch failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, NewSourceError(s.Name(), ErrCodeNotFound,
			fmt.Sprintf("worksheet %s does not exist", url), models.ErrSourceMissing)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, NewSourceError(s.Name(), ErrCodeServerError,
			fmt.Sprintf("worksheet fetch returned status %d", resp.StatusCode), nil)
	}

	records, err := readRecords(resp.Body)
	if err != nil {
		return nil, NewSourceError(s.Name(), ErrCodeMalformedRecord, "failed to parse worksheet CSV", err)
	}

	s.logger.WithFields(logrus.Fields{
		"url":  url,
		"rows": len(records),
	}).Debug("Fetched worksheet")
	return records, nil
}
