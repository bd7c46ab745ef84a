// Package service provides the ingestion workflow and pick validation that
// sit between record sources and the scenario engine.
package service

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/bowl-pool/internal/models"
	"github.com/yourusername/bowl-pool/internal/pool"
)

// Expected pick sheet shape: ten picks per bettor, each wagering a
// distinct point value from one through ten.
const (
	expectedPicksPerBettor = 10
	minPoints              = 1
	maxPoints              = 10
)

// PickValidator checks pick sheets against the pool's wagering rules.
// Violations are reported as data quality warnings, never as errors, so a
// sloppy sheet still enumerates.
type PickValidator struct {
	logger *logrus.Logger
}

// NewPickValidator creates a new pick validator
func NewPickValidator(logger *logrus.Logger) *PickValidator {
	if logger == nil {
		logger = logrus.New()
	}
	return &PickValidator{logger: logger}
}

// ValidatePicks checks every bettor's sheet. The registry is optional; when
// present, picks are also checked against the known bowls and their
// contestants.
func (v *PickValidator) ValidatePicks(picks []models.Pick, registry *pool.Registry) []models.DataQualityWarning {
	var warnings []models.DataQualityWarning
	warn := func(w models.DataQualityWarning) {
		warnings = append(warnings, w)
		v.logger.WithFields(logrus.Fields{
			"bettor": w.Bettor,
			"bowl":   w.Bowl,
			"row":    w.Row,
		}).Warn(w.Reason)
	}

	type sheet struct {
		count     int
		pointsUse map[int]int
		bowlUse   map[string]int
	}
	sheets := make(map[string]*sheet)
	var order []string

	for _, pick := range picks {
		s, ok := sheets[pick.Bettor]
		if !ok {
			s = &sheet{pointsUse: make(map[int]int), bowlUse: make(map[string]int)}
			sheets[pick.Bettor] = s
			order = append(order, pick.Bettor)
		}
		s.count++

		s.pointsUse[pick.Points]++
		if s.pointsUse[pick.Points] == 2 {
			warn(models.DataQualityWarning{
				Bettor: pick.Bettor,
				Bowl:   pick.Bowl,
				Row:    pick.Row,
				Reason: fmt.Sprintf("point value %d wagered more than once", pick.Points),
			})
		}

		s.bowlUse[pick.Bowl]++
		if s.bowlUse[pick.Bowl] == 2 {
			warn(models.DataQualityWarning{
				Bettor: pick.Bettor,
				Bowl:   pick.Bowl,
				Row:    pick.Row,
				Reason: "bowl picked more than once",
			})
		}

		if pick.Points < minPoints || pick.Points > maxPoints {
			warn(models.DataQualityWarning{
				Bettor: pick.Bettor,
				Bowl:   pick.Bowl,
				Row:    pick.Row,
				Reason: fmt.Sprintf("points %d outside expected range %d-%d", pick.Points, minPoints, maxPoints),
			})
		}

		if registry != nil {
			bowl, known := registry.Bowl(pick.Bowl)
			if !known {
				warn(models.DataQualityWarning{
					Bettor: pick.Bettor,
					Bowl:   pick.Bowl,
					Row:    pick.Row,
					Reason: "pick references unknown bowl",
				})
			} else if !bowl.HasContestant(pick.Team) {
				warn(models.DataQualityWarning{
					Bettor: pick.Bettor,
					Bowl:   pick.Bowl,
					Row:    pick.Row,
					Reason: fmt.Sprintf("picked team %q is not a contestant", pick.Team),
				})
			}
		}
	}

	for _, bettor := range order {
		s := sheets[bettor]
		if s.count != expectedPicksPerBettor {
			warn(models.DataQualityWarning{
				Bettor: bettor,
				Reason: fmt.Sprintf("expected %d picks, found %d", expectedPicksPerBettor, s.count),
			})
		}
	}

	return warnings
}
