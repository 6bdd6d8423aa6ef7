package analyze

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/doeshing/urlguard/internal/domain"
	"github.com/doeshing/urlguard/internal/ports"
)

// Service feeds candidate strings to the classifier.
type Service struct {
	Classifier ports.Classifier
	Logger     ports.Logger
	// Workers bounds concurrent classification in AnalyzeBatch.
	Workers int
}

// Analyze classifies a single input.
func (s *Service) Analyze(ctx context.Context, input string) (domain.Verdict, error) {
	if err := s.ready(); err != nil {
		return domain.Verdict{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Verdict{}, err
	}
	verdict := s.Classifier.Classify(input)
	s.Logger.Debug("classified", map[string]interface{}{
		"tier":     string(verdict.RiskTier),
		"findings": len(verdict.Findings),
	})
	return verdict, nil
}

// AnalyzeBatch classifies inputs concurrently. Verdicts keep input order.
func (s *Service) AnalyzeBatch(ctx context.Context, inputs []string) ([]domain.Verdict, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	verdicts := make([]domain.Verdict, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			verdicts[i] = s.Classifier.Classify(input)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := Summarize(verdicts)
	s.Logger.Info("batch classified", map[string]interface{}{
		"total":  summary.Total,
		"high":   summary.ByTier[domain.RiskHigh],
		"medium": summary.ByTier[domain.RiskMedium],
	})
	return verdicts, nil
}

func (s *Service) ready() error {
	if s == nil || s.Classifier == nil || s.Logger == nil {
		return errors.New("analyze.Service dependencies not satisfied")
	}
	return nil
}

func (s *Service) workers() int {
	if s.Workers <= 0 {
		return domain.DefaultBatchWorkers
	}
	return s.Workers
}

// ReadInputs returns one candidate per line, skipping blank lines.
// Lines are not length limited.
func ReadInputs(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	var inputs []string
	for {
		line, err := reader.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			inputs = append(inputs, trimmed)
		}
		if errors.Is(err, io.EOF) {
			return inputs, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Summarize counts verdicts per tier.
func Summarize(verdicts []domain.Verdict) domain.BatchSummary {
	summary := domain.BatchSummary{
		Total:  len(verdicts),
		ByTier: map[domain.RiskTier]int{},
	}
	for _, v := range verdicts {
		summary.ByTier[v.RiskTier]++
	}
	return summary
}

// Highest returns the most severe tier among verdicts.
func Highest(verdicts []domain.Verdict) domain.RiskTier {
	highest := domain.RiskUnknown
	for _, v := range verdicts {
		if v.RiskTier.AtLeast(highest) {
			highest = v.RiskTier
		}
	}
	return highest
}

// DemoInputs are ready-made URLs covering each tier.
var DemoInputs = []string{
	"https://www.example.com",
	"javascript:alert(document.cookie)",
	"tel:*#06#",
	"data:text/html;base64,PHNjcmlwdD5hbGVydCgxKTwvc2NyaXB0Pg==",
	"http://bit.ly/3xYz",
	"http://downloads.example.net/setup.exe",
	"itms-services://?action=download-manifest&url=https://example.net/app.plist",
	"poweroff://now",
}
