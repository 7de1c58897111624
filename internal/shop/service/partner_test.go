package service

import (
	"context"
	"testing"

	"github.com/loomandfold/loom/internal/shop/domain"
	"github.com/loomandfold/loom/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

// captureMailer records the last code handed to it instead of sending mail.
type captureMailer struct {
	to   string
	code string
}

func (m *captureMailer) SendVerificationCode(_ context.Context, to, code string) error {
	m.to = to
	m.code = code
	return nil
}

func TestStartRegistration(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	mail := &captureMailer{}

	svc := &PartnerService{Store: s, Mailer: mail}

	t.Run("emails the code to the address", func(t *testing.T) {
		require.NoError(t, svc.StartRegistration(ctx, "owner@atelier.example", "123456"))
		require.Equal(t, "owner@atelier.example", mail.to)
		require.Equal(t, "123456", mail.code)
	})

	t.Run("rejects a malformed address", func(t *testing.T) {
		require.ErrorIs(t, svc.StartRegistration(ctx, "not-an-email", "123456"), ErrInvalidRegistration)
		require.ErrorIs(t, svc.StartRegistration(ctx, "  ", "123456"), ErrInvalidRegistration)
	})
}

func TestCompleteRegistration(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	svc := &PartnerService{Store: s, Mailer: &captureMailer{}}

	t.Run("creates a vendor and a pending shop atomically", func(t *testing.T) {
		user, shop, err := svc.CompleteRegistration(ctx, "owner@atelier.example", "Atelier Owner", "hunter2-but-longer", "Atelier")
		require.NoError(t, err)

		require.Equal(t, domain.RoleVendor, user.Role)
		require.Equal(t, user.ID, shop.OwnerUserID)
		require.Equal(t, domain.ShopPending, shop.Status)

		stored, err := s.Users().GetUserByEmail(ctx, "owner@atelier.example")
		require.NoError(t, err)
		require.NoError(t, cryptox.VerifyPassword("hunter2-but-longer", stored.PasswordHash))

		storedShop, err := s.Shops().GetShopByOwner(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, shop.ID, storedShop.ID)
	})

	t.Run("duplicate email is refused", func(t *testing.T) {
		_, _, err := svc.CompleteRegistration(ctx, "owner@atelier.example", "Copycat", "password123", "Copy Shop")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("missing fields are refused", func(t *testing.T) {
		_, _, err := svc.CompleteRegistration(ctx, "second@atelier.example", "", "password123", "Shop")
		require.ErrorIs(t, err, ErrInvalidRegistration)

		_, _, err = svc.CompleteRegistration(ctx, "second@atelier.example", "Name", "", "Shop")
		require.ErrorIs(t, err, ErrInvalidRegistration)

		_, _, err = svc.CompleteRegistration(ctx, "second@atelier.example", "Name", "password123", " ")
		require.ErrorIs(t, err, ErrInvalidRegistration)
	})
}
