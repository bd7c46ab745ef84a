package datasource

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/bowl-pool/internal/models"
)

// FileSource reads pool records from local CSV files
type FileSource struct {
	bowlsPath   string
	factorsPath string
	picksPath   string
	logger      *logrus.Logger
}

// NewFileSource creates a record source backed by local CSV files. The
// factor path may be empty, in which case every team gets default factors.
func NewFileSource(bowlsPath, factorsPath, picksPath string, logger *logrus.Logger) (*FileSource, error) {
	if bowlsPath == "" {
		return nil, fmt.Errorf("bowls path is required")
	}
	if picksPath == "" {
		return nil, fmt.Errorf("picks path is required")
	}
	if logger == nil {
		logger = logrus.New()
	}

	return &FileSource{
		bowlsPath:   bowlsPath,
		factorsPath: factorsPath,
		picksPath:   picksPath,
		logger:      logger,
	}, nil
}

// Name returns the name of the record source
func (s *FileSource) Name() string {
	return "csv"
}

// FetchBowls reads the bowl file
func (s *FileSource) FetchBowls(ctx context.Context) ([]models.Bowl, error) {
	records, err := s.readFile(ctx, s.bowlsPath)
	if err != nil {
		return nil, err
	}

	bowls, err := parseBowls(records, s.Name())
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"path":  s.bowlsPath,
		"bowls": len(bowls),
	}).Debug("Loaded bowl records")
	return bowls, nil
}

// FetchTeamFactors reads the factor file. A missing factor path is not an
// error; the engine defaults every factor to one.
func (s *FileSource) FetchTeamFactors(ctx context.Context) ([]models.TeamFactor, error) {
	if s.factorsPath == "" {
		return nil, nil
	}

	records, err := s.readFile(ctx, s.factorsPath)
	if err != nil {
		return nil, err
	}

	factors, err := parseTeamFactors(records, s.Name())
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"path":    s.factorsPath,
		"factors": len(factors),
	}).Debug("Loaded team factor records")
	return factors, nil
}

// FetchPicks reads the pick file
func (s *FileSource) FetchPicks(ctx context.Context) ([]models.Pick, error) {
	records, err := s.readFile(ctx, s.picksPath)
	if err != nil {
		return nil, err
	}

	picks, err := parsePicks(records, s.Name())
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"path":  s.picksPath,
		"picks": len(picks),
	}).Debug("Loaded pick records")
	return picks, nil
}

func (s *FileSource) readFile(ctx context.Context, path string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewSourceError(s.Name(), ErrCodeNotFound,
				fmt.Sprintf("record file %s does not exist", path), models.ErrSourceMissing)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := readRecords(f)
	if err != nil {
		return nil, NewSourceError(s.Name(), ErrCodeMalformedRecord,
			fmt.Sprintf("failed to parse %s", path), err)
	}
	return records, nil
}
