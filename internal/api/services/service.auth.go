package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/enzel-org/BestellDesk/internal/api/dto"
	"github.com/enzel-org/BestellDesk/internal/common"
	"github.com/enzel-org/BestellDesk/internal/logger"
	"github.com/enzel-org/BestellDesk/internal/models"
)

// Session is the authenticated admin session state. A request is either
// anonymous (no valid session token) or carries one of these.
type Session struct {
	Benutzername string
	Seit         time.Time // when the session was established
}

// AuthService checks admin credentials and issues signed session tokens with
// an explicit expiry.
type AuthService struct {
	admins MongoService[models.AdminBenutzer]
	secret []byte
	ttl    time.Duration
}

// NewAuthService wires the auth service to the admin account store.
func NewAuthService(admins MongoService[models.AdminBenutzer], secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		admins: admins,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// SessionTTL returns the configured session lifetime, used when setting the
// cookie expiry.
func (s *AuthService) SessionTTL() time.Duration {
	return s.ttl
}

// EnsureDefaultAdmin seeds the admin account from config when the collection
// is empty, so a fresh installation can log in.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, benutzername, passwort string) error {
	count, err := s.admins.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passwort), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := s.admins.InsertOne(ctx, models.AdminBenutzer{
		Benutzername: benutzername,
		PasswortHash: string(hash),
		Aktiv:        true,
	}); err != nil {
		return err
	}

	logger.GetAppLogger().WithField("benutzername", benutzername).Info("Standard-Admin angelegt")
	return nil
}

// Login verifies the credentials against the admin collection and returns a
// signed session token. Any failure yields the same generic credentials
// error; the caller learns nothing about which part was wrong.
func (s *AuthService) Login(ctx context.Context, input *dto.LoginInput) (string, error) {
	admin, err := s.admins.FindOne(ctx, bson.M{"benutzername": input.Benutzername, "aktiv": true}, nil)
	if err != nil {
		if isNotFound(err) {
			return "", common.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswortHash), []byte(input.Passwort)); err != nil {
		return "", common.ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   admin.Benutzername,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
	}

	logger.GetAuditLogger().WithField("benutzername", admin.Benutzername).Info("Admin angemeldet")
	return token, nil
}

// VerifySession validates a session token and returns the session state.
func (s *AuthService) VerifySession(token string) (*Session, error) {
	if token == "" {
		return nil, common.ErrSessionMissing
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrSessionInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrSessionExpired
		}
		return nil, common.ErrSessionInvalid
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return nil, common.ErrSessionInvalid
	}

	session := &Session{Benutzername: claims.Subject}
	if claims.IssuedAt != nil {
		session.Seit = claims.IssuedAt.Time
	}
	return session, nil
}
