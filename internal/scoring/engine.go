// Package scoring implements the resume evaluation engine: independent
// parameter scorers, mode-dependent category aggregation, severity
// classification, and the heuristic ATS pass-probability estimate.
package scoring

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Engine runs scoring passes over immutable inputs. It holds only the
// shared read-only config and a logger; every pass builds a fresh result
// graph, so one Engine serves concurrent requests.
type Engine struct {
	cfg *config.ScoringConfig
	log *zap.Logger
}

// NewEngine builds an engine and resolves every parameter referenced by the
// config's mode profiles. An unknown parameter ID is a configuration error
// and fails here, never during a scoring pass.
func NewEngine(cfg *config.ScoringConfig, logger *zap.Logger) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("scoring config is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	for modeName, profile := range cfg.Modes {
		for _, cat := range profile.Categories {
			for _, pw := range cat.Parameters {
				if _, err := lookupParameter(pw.ID); err != nil {
					return nil, fmt.Errorf("mode %q: %w", modeName, err)
				}
			}
		}
	}
	return &Engine{cfg: cfg, log: logger}, nil
}

// Request is one scoring request. Keywords may be nil when no job
// description was supplied.
type Request struct {
	Resume   *types.ResumeData
	Level    types.Level
	Mode     types.Mode
	Keywords *types.JobKeywords
}

// Score executes one full scoring pass: mode resolution, parallel parameter
// scoring, category aggregation, issue classification, strength derivation,
// and (in ats_simulation) the auto-reject gate and pass-probability
// estimate. The pass is deterministic: identical inputs yield identical
// results.
func (e *Engine) Score(ctx context.Context, req Request) (*types.ScoreResult, error) {
	if req.Resume == nil {
		return nil, fmt.Errorf("resume data is nil")
	}

	mode, degradeNote := resolveMode(req.Mode, req.Keywords)
	profile, ok := e.cfg.Mode(string(mode))
	if !ok {
		return nil, fmt.Errorf("no profile configured for mode %q", mode)
	}

	active := flattenParameters(profile)
	results := make([]types.ParameterResult, len(active))

	g, gCtx := errgroup.WithContext(ctx)
	for i, pw := range active {
		param, err := lookupParameter(pw.ID)
		if err != nil {
			return nil, err
		}
		in := Input{
			Resume:   req.Resume,
			Level:    req.Level,
			Keywords: req.Keywords,
			MaxScore: pw.MaxScore,
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = param.Score(in, e.cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]types.ParameterResult, len(results))
	for _, res := range results {
		byID[res.ID] = res
	}

	breakdown, overall := aggregate(profile, byID)
	issues := classifyIssues(results)
	if degradeNote != nil {
		issues.Info = append(issues.Info, *degradeNote)
	}

	result := &types.ScoreResult{
		OverallScore: overall,
		Mode:         mode,
		Breakdown:    breakdown,
		Issues:       issues,
		Strengths:    deriveStrengths(profile, breakdown, e.cfg),
	}

	if mode == types.ModeATSSimulation {
		kd := BuildKeywordDetails(req.Resume, req.Keywords)
		result.KeywordDetails = kd
		if kd != nil {
			result.AutoReject = len(req.Keywords.Required) > 0 &&
				kd.RequiredMatchPercent < e.cfg.KeywordFloorPercent
			result.PassProbability = estimatePassProbability(overall, kd, breakdown, e.cfg)
		}
	}

	e.log.Debug("scoring pass complete",
		zap.String("mode", string(mode)),
		zap.Float64("overall", overall),
		zap.Bool("auto_reject", result.AutoReject),
		zap.Int("issues", issues.Total()),
	)
	return result, nil
}

// flattenParameters lists a profile's parameters in category-then-parameter
// declaration order.
func flattenParameters(profile config.ModeProfile) []config.ParameterWeight {
	var params []config.ParameterWeight
	for _, cat := range profile.Categories {
		params = append(params, cat.Parameters...)
	}
	return params
}
