// Package session emite e valida o contexto de sessão que carrega o KOL selecionado.
//
// A seleção vive apenas no token assinado da sessão: não há estado no servidor
// e cada visão recebe a domain.Session explicitamente.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/pkg/utils"
)

// DefaultTTL é a duração padrão de uma sessão
const DefaultTTL = 12 * time.Hour

// Claims são os dados assinados no token da sessão
type Claims struct {
	SessionID   string `json:"sid"`
	SelectedKol string `json:"selected_kol,omitempty"`
	jwt.RegisteredClaims
}

type Manager interface {
	// Issue cria uma sessão nova, sem KOL selecionado
	Issue() (domain.Session, string, error)
	// Parse valida o token e devolve a sessão
	Parse(token string) (domain.Session, error)
	// Renew reassina a sessão com uma nova validade
	Renew(session domain.Session) (domain.Session, string, error)
	// WithSelection troca o KOL selecionado e reassina a sessão
	WithSelection(session domain.Session, selectedKol string) (domain.Session, string, error)
}

type Service struct {
	secret []byte
	ttl    time.Duration
	clock  func() time.Time
}

func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  time.Now,
	}
}

func (s *Service) Issue() (domain.Session, string, error) {
	id, err := utils.GenerateSessionID()
	if err != nil {
		return domain.Session{}, "", fmt.Errorf("erro ao gerar id da sessão: %w", err)
	}

	session, token, err := s.sign(domain.Session{ID: id})
	if err != nil {
		return domain.Session{}, "", err
	}

	logrus.WithField("session_id", id).Debug("session: issued")
	return session, token, nil
}

func (s *Service) Parse(tokenString string) (domain.Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Session{}, ErrExpiredSession
		}
		return domain.Session{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	if !token.Valid || claims.SessionID == "" {
		return domain.Session{}, ErrInvalidSession
	}

	session := domain.Session{
		ID:          claims.SessionID,
		SelectedKol: claims.SelectedKol,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	return session, nil
}

func (s *Service) Renew(session domain.Session) (domain.Session, string, error) {
	return s.sign(session)
}

func (s *Service) WithSelection(session domain.Session, selectedKol string) (domain.Session, string, error) {
	if selectedKol == domain.SelectionAll {
		selectedKol = ""
	}
	session.SelectedKol = selectedKol

	logrus.WithFields(logrus.Fields{
		"session_id": session.ID,
		"selection":  session.Selection(),
	}).Debug("session: selection changed")

	return s.sign(session)
}

func (s *Service) sign(session domain.Session) (domain.Session, string, error) {
	now := s.clock().Truncate(time.Second)
	session.IssuedAt = now
	session.ExpiresAt = now.Add(s.ttl)

	claims := Claims{
		SessionID:   session.ID,
		SelectedKol: session.SelectedKol,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return domain.Session{}, "", fmt.Errorf("erro ao assinar sessão: %w", err)
	}

	return session, signed, nil
}
