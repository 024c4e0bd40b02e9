package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/config"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db"
)

type (
	Auth struct {
		users  *db.UserRepository
		secret []byte
		ttl    time.Duration
		cost   int
		// Compared against on unknown emails so both login failures cost a hash.
		dummyHash []byte
		logger    *zap.SugaredLogger
		now       func() time.Time
	}

	Claims struct {
		jwt.RegisteredClaims
	}

	RegisterInput struct {
		Email     string
		Password  string
		Name      string
		Firstname string
	}

	// Session is what a successful login hands to the transport layer.
	Session struct {
		Token     string
		ExpiresAt time.Time
	}
)

func NewAuth(users *db.UserRepository, cfg *config.Config, l *zap.SugaredLogger) *Auth {
	if cfg.GeneratedJWTSecret {
		l.Warn("JWT_SECRET is not set, using a random secret: sessions will not survive a restart")
	}
	// The cost is range checked by config, so this cannot fail.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("souviens-dummy-password"), cfg.BcryptCost)
	return &Auth{
		users:     users,
		secret:    []byte(cfg.JWTSecret),
		ttl:       cfg.JWTTTL,
		cost:      cfg.BcryptCost,
		dummyHash: dummy,
		logger:    l,
		now:       time.Now,
	}
}

func (s *Auth) Register(ctx context.Context, in RegisterInput) (*db.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, errors.Wrap(err, "check email")
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := s.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Save(ctx, db.NewUser(in.Email, hash, in.Name, in.Firstname))
	if err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	return user, nil
}

func (s *Auth) Login(ctx context.Context, email, pass string) (*Session, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(pass))
		s.logger.Debugw("login with unknown email", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := s.bcryptCheck(user.Password, pass); err != nil {
		s.logger.Debugw("login with wrong password", "user", user.ID)
		return nil, ErrInvalidCredentials
	}

	return s.issue(user.ID)
}

// ParseToken verifies the signature and expiry. Every failure is ErrUnauthorized.
func (s *Auth) ParseToken(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

func (s *Auth) CurrentUser(ctx context.Context, token string) (*db.User, error) {
	claims, err := s.ParseToken(token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	if user == nil {
		return nil, ErrUnauthorized
	}
	return user, nil
}

func (s *Auth) HashPassword(pass string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pass), s.cost)
	if err != nil {
		return "", errors.Wrap(err, "generate password hash")
	}
	return string(hash), nil
}

func (s *Auth) issue(userID string) (*Session, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign token")
	}
	return &Session{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *Auth) bcryptCheck(hash, pass string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass))
}
