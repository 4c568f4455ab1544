package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/crypto"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "Wx3kP9mN2qR5tY8uA1bC4dE7fG0hJ6iK"

func newTestCipher(t *testing.T) *crypto.SecretCipher {
	t.Helper()
	key := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	cipher, err := crypto.NewSecretCipher(key)
	if err != nil {
		t.Fatalf("NewSecretCipher: %v", err)
	}
	return cipher
}

func seedSite(t *testing.T, db *gorm.DB, cipher *crypto.SecretCipher, active bool) *domain.Site {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testSecret), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	enc, err := cipher.Encrypt(testSecret)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	site := &domain.Site{
		ID:         uuid.NewString(),
		Name:       "Store One",
		BaseURL:    "https://store-one.example",
		APIKey:     "k" + uuid.NewString()[:31],
		SecretHash: string(hash),
		SecretEnc:  enc,
		IsActive:   active,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := repository.NewDefaultSiteRepository(db).CreateSite(context.Background(), site); err != nil {
		t.Fatalf("CreateSite: %v", err)
	}
	return site
}

func newAuthUsecase(t *testing.T, db *gorm.DB, cipher *crypto.SecretCipher) *DefaultWebhookAuthUsecase {
	t.Helper()
	return NewDefaultWebhookAuthUsecase(
		repository.NewDefaultSiteRepository(db),
		repository.NewDefaultNonceRepository(db),
		cipher,
		testLogger(),
	)
}

func signedInput(site *domain.Site, nonce, wcOrderID, totalRaw string, ts time.Time) AuthInput {
	timestamp := strconv.FormatInt(ts.Unix(), 10)
	base := fmt.Sprintf("%s|%s|%s|%s|%s", site.APIKey, timestamp, nonce, wcOrderID, totalRaw)
	return AuthInput{
		APIKey:    site.APIKey,
		Nonce:     nonce,
		Timestamp: timestamp,
		Signature: crypto.ComputeSignature(base, testSecret),
		WcOrderID: wcOrderID,
		TotalRaw:  totalRaw,
	}
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	cipher := newTestCipher(t)
	site := seedSite(t, db, cipher, true)
	uc := newAuthUsecase(t, db, cipher)
	ctx := context.Background()

	t.Run("valid request passes", func(t *testing.T) {
		got, err := uc.Authenticate(ctx, signedInput(site, "nonce-ok", "1042", "99.99", time.Now()))
		if err != nil {
			t.Fatalf("Authenticate: %v", err)
		}
		if got.ID != site.ID {
			t.Errorf("site id = %s, want %s", got.ID, site.ID)
		}
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		_, err := uc.Authenticate(ctx, AuthInput{APIKey: site.APIKey})
		if err != domain.ErrMissingAuthParams {
			t.Errorf("err = %v, want ErrMissingAuthParams", err)
		}
	})

	t.Run("zero timestamp treated as missing", func(t *testing.T) {
		input := signedInput(site, "nonce-zero-ts", "1042", "99.99", time.Now())
		input.Timestamp = "0"
		_, err := uc.Authenticate(ctx, input)
		if err != domain.ErrMissingAuthParams {
			t.Errorf("err = %v, want ErrMissingAuthParams", err)
		}
	})

	t.Run("unknown api key rejected", func(t *testing.T) {
		input := signedInput(site, "nonce-key", "1042", "99.99", time.Now())
		input.APIKey = "nosuchkey"
		_, err := uc.Authenticate(ctx, input)
		if err != domain.ErrInvalidCredentials {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("replayed nonce rejected", func(t *testing.T) {
		input := signedInput(site, "nonce-replay", "1042", "99.99", time.Now())
		if _, err := uc.Authenticate(ctx, input); err != nil {
			t.Fatalf("first request: %v", err)
		}
		_, err := uc.Authenticate(ctx, input)
		if err != domain.ErrNonceReplayed {
			t.Errorf("err = %v, want ErrNonceReplayed", err)
		}
	})

	t.Run("wrong signature rejected and nonce still consumed", func(t *testing.T) {
		input := signedInput(site, "nonce-badsig", "1042", "99.99", time.Now())
		input.Signature = "AAAA" + input.Signature[4:]
		if _, err := uc.Authenticate(ctx, input); err != domain.ErrInvalidSignature {
			t.Fatalf("err = %v, want ErrInvalidSignature", err)
		}
		// retry with the correct signature: the burnt nonce must block it
		retry := signedInput(site, "nonce-badsig", "1042", "99.99", time.Now())
		if _, err := uc.Authenticate(ctx, retry); err != domain.ErrNonceReplayed {
			t.Errorf("retry err = %v, want ErrNonceReplayed", err)
		}
	})

	t.Run("signature over different total rejected", func(t *testing.T) {
		input := signedInput(site, "nonce-total", "1042", "99.99", time.Now())
		input.TotalRaw = "199.99"
		if _, err := uc.Authenticate(ctx, input); err != domain.ErrInvalidSignature {
			t.Errorf("err = %v, want ErrInvalidSignature", err)
		}
	})
}

func TestAuthenticateTimestampWindow(t *testing.T) {
	db := newTestDB(t)
	cipher := newTestCipher(t)
	site := seedSite(t, db, cipher, true)
	uc := newAuthUsecase(t, db, cipher)

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	uc.Now = func() time.Time { return now }
	ctx := context.Background()

	cases := []struct {
		name   string
		offset time.Duration
		wantOK bool
	}{
		{"just inside the window, old", -(10*time.Minute - time.Second), true},
		{"just inside the window, ahead", 10*time.Minute - time.Second, true},
		{"just outside the window, old", -(10*time.Minute + time.Second), false},
		{"just outside the window, ahead", 10*time.Minute + time.Second, false},
	}
	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nonce := fmt.Sprintf("nonce-window-%d", i)
			_, err := uc.Authenticate(ctx, signedInput(site, nonce, "1042", "99.99", now.Add(tc.offset)))
			if tc.wantOK && err != nil {
				t.Errorf("err = %v, want nil", err)
			}
			if !tc.wantOK && err != domain.ErrStaleTimestamp {
				t.Errorf("err = %v, want ErrStaleTimestamp", err)
			}
		})
	}

	t.Run("non-numeric timestamp rejected", func(t *testing.T) {
		input := signedInput(site, "nonce-ts", "1042", "99.99", now)
		input.Timestamp = "yesterday"
		if _, err := uc.Authenticate(ctx, input); err != domain.ErrStaleTimestamp {
			t.Errorf("err = %v, want ErrStaleTimestamp", err)
		}
	})
}

func TestAuthenticateInactiveSite(t *testing.T) {
	db := newTestDB(t)
	cipher := newTestCipher(t)
	site := seedSite(t, db, cipher, false)
	uc := newAuthUsecase(t, db, cipher)

	_, err := uc.Authenticate(context.Background(), signedInput(site, "nonce-inactive", "1042", "99.99", time.Now()))
	if err != domain.ErrInvalidCredentials {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateConcurrentReplay(t *testing.T) {
	db := newTestDB(t)
	cipher := newTestCipher(t)
	site := seedSite(t, db, cipher, true)
	uc := newAuthUsecase(t, db, cipher)

	input := signedInput(site, "nonce-race", "1042", "99.99", time.Now())

	const workers = 8
	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Authenticate(context.Background(), input)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	passed := 0
	for err := range results {
		if err == nil {
			passed++
		} else if err != domain.ErrNonceReplayed {
			t.Errorf("unexpected err: %v", err)
		}
	}
	if passed != 1 {
		t.Errorf("%d concurrent requests passed, want exactly 1", passed)
	}
}

func TestPurgeExpiredNonces(t *testing.T) {
	db := newTestDB(t)
	cipher := newTestCipher(t)
	site := seedSite(t, db, cipher, true)
	uc := newAuthUsecase(t, db, cipher)
	ctx := context.Background()

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	nonceRepo := repository.NewDefaultNonceRepository(db)
	for i, expiry := range []time.Time{now.Add(-time.Minute), now.Add(time.Minute)} {
		err := nonceRepo.InsertNonce(ctx, &domain.RequestNonce{
			ID:        uuid.NewString(),
			SiteID:    site.ID,
			Nonce:     fmt.Sprintf("nonce-purge-%d", i),
			IssuedAt:  expiry.Add(-nonceTTL),
			ExpiresAt: expiry,
		})
		if err != nil {
			t.Fatalf("InsertNonce: %v", err)
		}
	}

	uc.Now = func() time.Time { return now }
	removed, err := uc.PurgeExpiredNonces(ctx)
	if err != nil {
		t.Fatalf("PurgeExpiredNonces: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	// the live nonce must still block replays
	err = nonceRepo.InsertNonce(ctx, &domain.RequestNonce{
		ID:        uuid.NewString(),
		SiteID:    site.ID,
		Nonce:     "nonce-purge-1",
		IssuedAt:  now,
		ExpiresAt: now.Add(nonceTTL),
	})
	if err != domain.ErrNonceReplayed {
		t.Errorf("err = %v, want ErrNonceReplayed", err)
	}
}
