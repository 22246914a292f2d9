package services

import (
	"context"
	"fmt"

	"github.com/irgordon/zentra/api/internal/core/domain"
)

// statusElementIDs are the elements owned by the health poller and shared by every page view.
var statusElementIDs = []string{domain.ElemRiskStatus, domain.ElemStressStatus}

// LandingPage is everything the landing template needs for one response.
type LandingPage struct {
	Language  domain.Language
	Languages []domain.Language
	Elements  map[string]domain.ElementView
	Score     *domain.ScoreResult
}

// LandingService assembles a fresh page document per request from the shared
// status board, the dictionary and the score simulator.
type LandingService struct {
	dict      domain.Dictionary
	board     *domain.Document
	simulator *ScoreSimulator
}

// NewLandingService fails fast when the board lacks a status element.
func NewLandingService(dict domain.Dictionary, board *domain.Document, simulator *ScoreSimulator) (*LandingService, error) {
	if _, err := board.LookupAll(statusElementIDs...); err != nil {
		return nil, fmt.Errorf("status board: %w", err)
	}
	return &LandingService{dict: dict, board: board, simulator: simulator}, nil
}

// Render builds the page in lang. When runScore is set the score button
// handler runs once and its output is included.
func (s *LandingService) Render(ctx context.Context, lang domain.Language, runScore bool) (*LandingPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := domain.NewLandingDocument()

	for _, id := range statusElementIDs {
		src, err := s.board.Lookup(id)
		if err != nil {
			return nil, err
		}
		dst, err := doc.Lookup(id)
		if err != nil {
			return nil, err
		}
		dst.CopyFrom(src)
	}

	switcher, err := NewLanguageSwitcher(s.dict, doc)
	if err != nil {
		return nil, err
	}
	if err := switcher.Apply(lang); err != nil {
		return nil, err
	}

	page := &LandingPage{
		Language:  switcher.Current(),
		Languages: s.dict.Languages(),
	}

	if runScore {
		output, err := doc.Lookup(domain.ElemScoreOutput)
		if err != nil {
			return nil, err
		}
		result, err := s.simulator.Run(output)
		if err != nil {
			return nil, err
		}
		page.Score = &result
	}

	page.Elements = doc.View()
	return page, nil
}
