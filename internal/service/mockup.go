package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/placement"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/supplier"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/pkg/utils"

	"golang.org/x/sync/errgroup"
)

const validVariantSample = 5

type MockupSupplier interface {
	GetProduct(ctx context.Context, productID int64) (entities.Product, error)
	GetMockupTemplates(ctx context.Context, productID int64) ([]entities.MockupTemplate, error)
	CreateMockupTask(ctx context.Context, req entities.MockupJobRequest) (string, error)
	GetMockupTask(ctx context.Context, jobKey string) (entities.MockupJob, error)
}

type ImageProber interface {
	Probe(ctx context.Context, url string) (entities.Dimensions, error)
}

type MockupConfig struct {
	PollAttempts  int
	PollInterval  time.Duration
	MaxVariants   int
	DesignsFolder string
}

// PollConfig overrides the service's polling schedule for one call; zero fields keep the defaults.
type PollConfig struct {
	Attempts int
	Interval time.Duration
}

type mockupService struct {
	logger   *slog.Logger
	supplier MockupSupplier
	prober   ImageProber
	uploader Uploader
	cfg      MockupConfig
}

func NewMockupService(logger *slog.Logger, supplier MockupSupplier, prober ImageProber, uploader Uploader, cfg MockupConfig) *mockupService {
	if cfg.PollAttempts <= 0 {
		cfg.PollAttempts = 30
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.MaxVariants <= 0 {
		cfg.MaxVariants = 3
	}
	if cfg.DesignsFolder == "" {
		cfg.DesignsFolder = "designs"
	}
	return &mockupService{
		logger:   logger.With(slog.String("service", "mockup")),
		supplier: supplier,
		prober:   prober,
		uploader: uploader,
		cfg:      cfg,
	}
}

// SubmitMockupJob validates the request, makes every file reachable by the supplier,
// derives missing positions and starts a mockup task. It returns the task's job key.
func (s *mockupService) SubmitMockupJob(ctx context.Context, req entities.MockupJobRequest) (string, error) {
	if req.ProductID <= 0 {
		return "", fmt.Errorf("%w: product id must be positive", entities.ErrInvalidVariant)
	}
	if len(req.VariantIDs) == 0 {
		return "", fmt.Errorf("%w: at least one variant id is required", entities.ErrInvalidVariant)
	}
	if len(req.Files) == 0 {
		return "", fmt.Errorf("%w: at least one file is required", entities.ErrInvalidDesignFile)
	}

	if err := s.validateVariants(ctx, req.ProductID, req.VariantIDs); err != nil {
		return "", err
	}

	files, err := s.prepareFiles(ctx, req.ProductID, req.Files)
	if err != nil {
		return "", err
	}
	req.Files = files

	jobKey, err := s.supplier.CreateMockupTask(ctx, req)
	if err != nil {
		mockupJobs.WithLabelValues("failed").Inc()
		return "", submissionError(err)
	}

	mockupJobs.WithLabelValues("submitted").Inc()
	s.logger.Info("mockup job submitted",
		slog.String("job_key", jobKey),
		slog.Int64("product_id", req.ProductID),
		slog.Int("variants", len(req.VariantIDs)),
	)
	return jobKey, nil
}

// validateVariants rejects ids outside the product's variant set. A catalog
// lookup failure is not fatal: the supplier validates again on submission.
func (s *mockupService) validateVariants(ctx context.Context, productID int64, ids []int64) error {
	product, err := s.supplier.GetProduct(ctx, productID)
	if err != nil {
		s.logger.Warn("failed to load product for variant validation",
			slog.Int64("product_id", productID), slog.Any("error", err))
		return nil
	}

	valid := make(map[int64]struct{}, len(product.Variants))
	for _, v := range product.Variants {
		valid[v.ID] = struct{}{}
	}

	var invalid []int64
	for _, id := range ids {
		if _, ok := valid[id]; !ok {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) == 0 {
		return nil
	}

	all := product.VariantIDs()
	return &entities.InvalidVariantError{
		ProductID:   productID,
		Invalid:     invalid,
		ValidSample: all[:min(validVariantSample, len(all))],
		TotalValid:  len(all),
	}
}

func (s *mockupService) prepareFiles(ctx context.Context, productID int64, files []entities.MockupFile) ([]entities.MockupFile, error) {
	prepared := make([]entities.MockupFile, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			imageURL, err := publishDesign(gctx, s.uploader, s.cfg.DesignsFolder, f.ImageURL)
			if err != nil {
				return err
			}
			f.ImageURL = imageURL

			if f.Position == nil {
				pos := s.derivePosition(gctx, productID, f.Placement, imageURL)
				f.Position = &pos
			}
			prepared[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return prepared, nil
}

// derivePosition never fails: any probe or template problem yields the default rectangle.
func (s *mockupService) derivePosition(ctx context.Context, productID int64, name, imageURL string) entities.Placement {
	res, err := s.CalculateImagePosition(ctx, productID, name, imageURL)
	if err != nil {
		s.logger.Warn("failed to derive position, using default",
			slog.Int64("product_id", productID),
			slog.String("placement", name),
			slog.Any("error", err),
		)
		return placement.Default()
	}
	return res.Position
}

func submissionError(err error) error {
	subErr := &entities.MockupSubmissionError{Err: err}
	var apiErr *supplier.APIError
	if errors.As(err, &apiErr) {
		subErr.StatusCode = apiErr.StatusCode
		subErr.Detail = apiErr.Message
	}
	return subErr
}

// AwaitMockupCompletion polls the job until it completes, fails, or the attempt budget runs out.
func (s *mockupService) AwaitMockupCompletion(ctx context.Context, jobKey string, poll PollConfig) ([]string, error) {
	if poll.Attempts <= 0 {
		poll.Attempts = s.cfg.PollAttempts
	}
	if poll.Interval <= 0 {
		poll.Interval = s.cfg.PollInterval
	}

	for attempt := 1; attempt <= poll.Attempts; attempt++ {
		job, err := s.supplier.GetMockupTask(ctx, jobKey)
		if err != nil {
			// transport problems count as still pending
			s.logger.Warn("failed to get mockup status",
				slog.String("job_key", jobKey), slog.Int("attempt", attempt), slog.Any("error", err))
		} else {
			switch job.Status {
			case entities.MockupStatusCompleted:
				mockupPolls.WithLabelValues("completed").Inc()
				mockupPollAttempts.Observe(float64(attempt))
				return job.URLs(), nil
			case entities.MockupStatusFailed:
				mockupPolls.WithLabelValues("failed").Inc()
				mockupPollAttempts.Observe(float64(attempt))
				return nil, &entities.MockupGenerationFailedError{JobKey: jobKey, Reason: job.Error}
			}
		}

		if attempt == poll.Attempts {
			break
		}
		if err := utils.Sleep(ctx, poll.Interval); err != nil {
			return nil, err
		}
	}

	mockupPolls.WithLabelValues("timeout").Inc()
	s.logger.Warn("mockup job still pending", slog.String("job_key", jobKey), slog.Int("attempts", poll.Attempts))
	return nil, &entities.MockupTimeoutError{JobKey: jobKey, Attempts: poll.Attempts}
}

func (s *mockupService) GetMockupStatus(ctx context.Context, jobKey string) (entities.MockupJob, error) {
	job, err := s.supplier.GetMockupTask(ctx, jobKey)
	if err != nil {
		return entities.MockupJob{}, fmt.Errorf("failed to get mockup status: %w", err)
	}
	return job, nil
}

// GenerateMockup runs the whole pipeline for one image: variant selection, position,
// submission and polling. On timeout the returned error carries the job key.
func (s *mockupService) GenerateMockup(ctx context.Context, in entities.GenerateMockupInput) (entities.MockupResult, error) {
	variantIDs := in.VariantIDs
	if len(variantIDs) == 0 {
		ids, err := s.pickVariants(ctx, in.ProductID, in.MaxVariants)
		if err != nil {
			return entities.MockupResult{}, err
		}
		variantIDs = ids
	}

	name := in.Placement
	if name == "" {
		name = placementFront
	}

	jobKey, err := s.SubmitMockupJob(ctx, entities.MockupJobRequest{
		ProductID:  in.ProductID,
		VariantIDs: variantIDs,
		Files:      []entities.MockupFile{{Placement: name, ImageURL: in.ImageURL}},
	})
	if err != nil {
		return entities.MockupResult{}, err
	}

	urls, err := s.AwaitMockupCompletion(ctx, jobKey, PollConfig{})
	if err != nil {
		return entities.MockupResult{JobKey: jobKey, VariantIDs: variantIDs}, err
	}
	return entities.MockupResult{JobKey: jobKey, VariantIDs: variantIDs, MockupURLs: urls}, nil
}

func (s *mockupService) pickVariants(ctx context.Context, productID int64, limit int) ([]int64, error) {
	if limit <= 0 {
		limit = s.cfg.MaxVariants
	}

	product, err := s.supplier.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	ids := make([]int64, 0, limit)
	for _, v := range product.Variants {
		if !v.InStock {
			continue
		}
		ids = append(ids, v.ID)
		if len(ids) == limit {
			break
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: product %d", entities.ErrNoVariantsAvailable, productID)
	}
	return ids, nil
}
