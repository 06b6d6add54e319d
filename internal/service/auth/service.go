package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dentradar/dentradar-api/internal/config"
	"github.com/dentradar/dentradar-api/internal/model"
	"github.com/dentradar/dentradar-api/internal/service/profile"
	"github.com/dentradar/dentradar-api/internal/validation"
	"github.com/dentradar/dentradar-api/pkg/auth"
	apperrors "github.com/dentradar/dentradar-api/pkg/errors"
)

const bcryptCost = 10

type Service struct {
	profiles *profile.Service
	store    OTPStore
	jwtSvc   auth.JWTService
	cfg      config.AuthConfig
	logger   zerolog.Logger
}

func NewService(profiles *profile.Service, store OTPStore, jwtSvc auth.JWTService, cfg config.AuthConfig, logger zerolog.Logger) *Service {
	return &Service{
		profiles: profiles,
		store:    store,
		jwtSvc:   jwtSvc,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *Service) generateCode() (string, error) {
	var b strings.Builder
	for i := 0; i < s.cfg.OTPLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate code: %w", err)
		}
		b.WriteString(n.String())
	}
	return b.String(), nil
}

// RequestOTP generates a one-time code for the phone number and stores its
// bcrypt hash with a TTL. Delivery is handled by the SMS gateway downstream of
// the auth.otp_requested log line; the code itself is never logged.
func (s *Service) RequestOTP(ctx context.Context, phoneRaw string) error {
	phone := strings.TrimSpace(phoneRaw)
	if !validation.ValidPhone(phone) {
		return apperrors.NewBadRequest("invalid phone number", nil)
	}

	code, err := s.generateCode()
	if err != nil {
		return apperrors.NewInternal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcryptCost)
	if err != nil {
		return apperrors.NewInternal(err)
	}

	if err := s.store.Save(ctx, phone, string(hash), s.cfg.OTPTTL); err != nil {
		return apperrors.NewInternal(err)
	}

	s.logger.Info().Str("phone", validation.MaskPhone(phone)).Msg("auth.otp_requested")
	return nil
}

// VerifyOTP checks the submitted code, consumes it, lazily creates the
// caller's profile and issues an access token.
func (s *Service) VerifyOTP(ctx context.Context, phoneRaw, code string) (*model.TokenResponse, error) {
	phone := strings.TrimSpace(phoneRaw)

	hash, err := s.store.Get(ctx, phone)
	if err != nil {
		return nil, apperrors.Unauthorized(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)); err != nil {
		return nil, apperrors.Unauthorized(fmt.Errorf("invalid code"))
	}

	if err := s.store.Delete(ctx, phone); err != nil {
		s.logger.Warn().Err(err).Msg("failed to consume otp")
	}

	prof, err := s.profiles.EnsureForPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtSvc.GenerateAccessToken(prof)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		Profile:     prof,
	}, nil
}
