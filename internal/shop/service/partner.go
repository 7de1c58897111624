package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/loomandfold/loom/internal/shop/domain"
	"github.com/loomandfold/loom/internal/shop/mailer"
	"github.com/loomandfold/loom/internal/shop/store"
	"github.com/loomandfold/loom/pkg/cryptox"
	"github.com/loomandfold/loom/pkg/idx"
	"github.com/loomandfold/loom/pkg/slogx"
)

var (
	ErrInvalidRegistration = errors.New("invalid registration request")
	ErrEmailTaken          = errors.New("email already registered")
)

// PartnerService handles vendor onboarding. The verification code itself
// lives in the caller's cookie and is checked at the transport layer;
// this service owns everything behind that check.
type PartnerService struct {
	Store  store.Store
	Mailer mailer.Mailer
}

// StartRegistration emails a freshly issued verification code to the
// prospective partner. It deliberately does not reveal whether the email
// is already registered; that surfaces at completion.
func (s *PartnerService) StartRegistration(ctx context.Context, email, code string) error {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidRegistration
	}

	if err := s.Mailer.SendVerificationCode(ctx, email, code); err != nil {
		log.Error("failed to send verification code", slog.Any("error", err))
		return err
	}

	log.Info("partner registration started", slog.String("email", email))
	return nil
}

// CompleteRegistration creates the vendor account and its pending shop
// atomically. Called only after the verification code has been confirmed.
func (s *PartnerService) CompleteRegistration(
	ctx context.Context,
	email, name, password, shopName string,
) (domain.User, domain.Shop, error) {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	shopName = strings.TrimSpace(shopName)

	if email == "" || !strings.Contains(email, "@") || name == "" || password == "" || shopName == "" {
		log.Warn("partner registration missing required fields")
		return domain.User{}, domain.Shop{}, ErrInvalidRegistration
	}

	// Check email availability before hashing; the unique index still
	// backstops a race.
	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		log.Warn("partner registration attempted with taken email", slog.String("email", email))
		return domain.User{}, domain.Shop{}, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check email availability", slog.Any("error", err))
		return domain.User{}, domain.Shop{}, err
	}

	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, domain.Shop{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		DisplayName:  name,
		PasswordHash: passwordHash,
		Role:         domain.RoleVendor,
	}
	shop := domain.Shop{
		ID:          idx.New().String(),
		OwnerUserID: user.ID,
		Name:        shopName,
		Status:      domain.ShopPending,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		return tx.Shops().CreateShop(ctx, shop)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, domain.Shop{}, ErrEmailTaken
		}
		log.Error("failed to create vendor account",
			slog.String("email", email),
			slog.Any("error", err),
		)
		return domain.User{}, domain.Shop{}, err
	}

	log.Info("partner registered",
		slog.String("user_id", user.ID),
		slog.String("shop_id", shop.ID),
		slog.String("shop_name", shop.Name),
	)

	return user, shop, nil
}
