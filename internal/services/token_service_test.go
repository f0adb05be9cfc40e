package services

import (
	"testing"
	"time"

	"sales-analytics/internal/config"
	"sales-analytics/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	service TokenServiceInterface
	config  config.JWTConfig
}

func (s *TokenServiceTestSuite) SetupTest() {
	s.config = config.JWTConfig{
		Secret:        "test-secret",
		Issuer:        "test-issuer",
		TokenDuration: time.Hour,
	}
	s.service = NewTokenService(&s.config)
}

func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) TestGenerateAndValidate() {
	token, expiresAt, err := s.service.GenerateToken("ingest-job")
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.WithinDuration(time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := s.service.ValidateToken(token)
	s.Require().NoError(err)
	s.Equal("ingest-job", claims.Subject)
	s.Equal("test-issuer", claims.Issuer)
	s.Equal(models.ScopeSalesWrite, claims.Scope)
	s.NotEmpty(claims.ID)
}

func (s *TokenServiceTestSuite) TestGenerateToken_EmptySubject() {
	_, _, err := s.service.GenerateToken("")
	s.ErrorIs(err, ErrEmptySubject)
}

func (s *TokenServiceTestSuite) TestValidateToken_Empty() {
	_, err := s.service.ValidateToken("")
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *TokenServiceTestSuite) TestValidateToken_Expired() {
	expired := NewTokenService(&config.JWTConfig{
		Secret:        s.config.Secret,
		Issuer:        s.config.Issuer,
		TokenDuration: -time.Minute,
	})
	token, _, err := expired.GenerateToken("ingest-job")
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceTestSuite) TestValidateToken_WrongSecret() {
	other := NewTokenService(&config.JWTConfig{Secret: "other", Issuer: s.config.Issuer, TokenDuration: time.Hour})
	token, _, err := other.GenerateToken("ingest-job")
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateToken_WrongIssuer() {
	other := NewTokenService(&config.JWTConfig{Secret: s.config.Secret, Issuer: "someone-else", TokenDuration: time.Hour})
	token, _, err := other.GenerateToken("ingest-job")
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)
	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *TokenServiceTestSuite) TestValidateToken_MissingScope() {
	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   "reader",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Secret))
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)
	s.ErrorIs(err, ErrMissingScope)
}

func (s *TokenServiceTestSuite) TestValidateToken_RejectsNoneAlgorithm() {
	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: s.config.Issuer},
		Scope:            models.ScopeSalesWrite,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	testCases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase bearer", "bearer abc", "abc", false},
		{"empty", "", "", true},
		{"basic auth", "Basic dXNlcjpwYXNz", "", true},
		{"bearer without token", "Bearer   ", "", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			token, err := s.service.ExtractTokenFromHeader(tc.header)
			if tc.wantErr {
				s.ErrorIs(err, ErrInvalidAuthHeader)
				return
			}
			s.NoError(err)
			s.Equal(tc.want, token)
		})
	}
}
