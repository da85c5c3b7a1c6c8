package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dreampix/dreampix-backend/internal/models"
	"github.com/dreampix/dreampix-backend/internal/repository"
)

// ErrNoCredits is returned when generation is attempted on an empty
// balance.
var ErrNoCredits = errors.New("no credit balance")

// Generator produces a PNG for a text prompt.
type Generator interface {
	TextToImage(ctx context.Context, prompt string) ([]byte, error)
}

// ImageStore keeps a copy of generated images and serves them by URL.
type ImageStore interface {
	Upload(ctx context.Context, key string, data []byte) error
	PublicURL(key string) string
}

// ImageService generates images and debits one credit per generation.
// The debit goes through the same atomic balance update the purchase
// flow uses, so a settlement landing mid-generation never loses either
// side's write.
type ImageService struct {
	userRepo  *repository.UserRepository
	generator Generator
	store     ImageStore // optional
	logger    *zap.Logger
}

func NewImageService(userRepo *repository.UserRepository, generator Generator, store ImageStore, logger *zap.Logger) *ImageService {
	return &ImageService{
		userRepo:  userRepo,
		generator: generator,
		store:     store,
		logger:    logger,
	}
}

func (s *ImageService) Generate(ctx context.Context, userID uint, prompt string) (*models.GenerateImageResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissingDetails
		}
		return nil, err
	}

	if user.CreditBalance <= 0 {
		return nil, ErrNoCredits
	}

	imageData, err := s.generator.TextToImage(ctx, prompt)
	if err != nil {
		return nil, err
	}

	updated, err := s.userRepo.AddCredits(userID, -1)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientCredits) {
			// Balance was drained between the check and the debit.
			return nil, ErrNoCredits
		}
		return nil, err
	}

	response := &models.GenerateImageResponse{
		ResultImage:   "data:image/png;base64," + base64.StdEncoding.EncodeToString(imageData),
		CreditBalance: updated.CreditBalance,
	}

	if s.store != nil {
		key := fmt.Sprintf("generations/%d/%s.png", userID, uuid.NewString())
		if err := s.store.Upload(ctx, key, imageData); err != nil {
			// The client still gets the inline image; only the hosted
			// copy is lost.
			s.logger.Warn("generated image upload failed",
				zap.Uint("user_id", userID),
				zap.String("key", key),
				zap.Error(err),
			)
		} else {
			response.ImageURL = s.store.PublicURL(key)
		}
	}

	return response, nil
}
