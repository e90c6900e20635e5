package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
)

// ErrNoAnalysis is returned when no analysis has been generated yet
var ErrNoAnalysis = errors.New("no analysis available yet")

// AnalysisService reads and triggers the backend training analysis
type AnalysisService struct {
	api AnalysisAPI
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(backend AnalysisAPI) *AnalysisService {
	return &AnalysisService{api: backend}
}

// Latest returns the latest analysis as indented JSON
func (s *AnalysisService) Latest(ctx context.Context) (string, error) {
	doc, err := s.api.Analysis(ctx)
	if err != nil {
		return "", err
	}
	if len(doc) == 0 {
		return "", ErrNoAnalysis
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return string(doc), nil
	}
	return buf.String(), nil
}

// Generate asks the backend for a new analysis and returns its message
func (s *AnalysisService) Generate(ctx context.Context) (string, error) {
	return s.api.GenerateAnalysis(ctx)
}
