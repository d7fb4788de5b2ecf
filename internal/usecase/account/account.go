package account

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/nearbiz/internal/audit"
	"github.com/BruksfildServices01/nearbiz/internal/auth"
	"github.com/BruksfildServices01/nearbiz/internal/domain/appointment"
	"github.com/BruksfildServices01/nearbiz/internal/httperr"
	"github.com/BruksfildServices01/nearbiz/internal/infra/repository"
	"github.com/BruksfildServices01/nearbiz/internal/models"
	"github.com/BruksfildServices01/nearbiz/internal/validators"
)

const RoleClient = "client"

var (
	ErrNameRequired       = httperr.ErrBusiness("name_required")
	ErrInvalidEmail       = httperr.ErrBusiness("invalid_email")
	ErrInvalidEmailDomain = httperr.ErrBusiness("invalid_email_domain")
	ErrWeakPassword       = httperr.ErrBusiness("weak_password")
	ErrInvalidCredentials = httperr.ErrBusiness("invalid_credentials")
	ErrClientNotLinked    = httperr.ErrBusiness("client_not_linked")
)

// ======================================================
// PORTS
// ======================================================

type Users interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	SetUpstreamClientID(ctx context.Context, userID uint, clientID int64) error
}

type Clients interface {
	FindClientByEmail(ctx context.Context, email string) (*appointment.Client, error)
}

// Mirror copies new accounts to the upstream backend.
type Mirror interface {
	RegisterAppUser(ctx context.Context, name, email, passwordHash string) error
}

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	users   Users
	clients Clients
	mirror  Mirror
	tokens  *auth.Issuer
	audit   *audit.Dispatcher
	log     *zap.Logger

	checkDomain func(email string) bool
}

type Option func(*Service)

// WithMirror enables copying registrations upstream.
func WithMirror(m Mirror) Option {
	return func(s *Service) { s.mirror = m }
}

// WithDomainCheck replaces the DNS lookup of the email domain.
func WithDomainCheck(check func(email string) bool) Option {
	return func(s *Service) { s.checkDomain = check }
}

func NewService(
	users Users,
	clients Clients,
	tokens *auth.Issuer,
	dispatcher *audit.Dispatcher,
	log *zap.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		users:       users,
		clients:     clients,
		tokens:      tokens,
		audit:       dispatcher,
		log:         log,
		checkDomain: validators.IsEmailDomainValid,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// Session is a user with a freshly issued token.
type Session struct {
	User  *models.User
	Token string
}

// ======================================================
// REGISTER
// ======================================================

func (s *Service) Register(ctx context.Context, in RegisterInput) (*Session, error) {

	// --------------------------------------------------
	// 1️⃣ Validation
	// --------------------------------------------------
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" {
		return nil, ErrNameRequired
	}
	if !validators.IsEmailFormatValid(email) {
		return nil, ErrInvalidEmail
	}
	if !validators.IsPasswordValid(in.Password) {
		return nil, ErrWeakPassword
	}
	if !s.checkDomain(email) {
		return nil, ErrInvalidEmailDomain
	}

	// --------------------------------------------------
	// 2️⃣ Local account
	// --------------------------------------------------
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        strings.TrimSpace(in.Phone),
		Role:         RoleClient,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Upstream mirror + client link (best effort)
	// --------------------------------------------------
	if s.mirror != nil {
		if err := s.mirror.RegisterAppUser(ctx, name, email, user.PasswordHash); err != nil {
			s.log.Warn("upstream registration failed", zap.String("email", email), zap.Error(err))
		}
	}
	if _, err := s.ClientIDFor(ctx, user); err != nil && !errors.Is(err, ErrClientNotLinked) {
		s.log.Warn("client link failed", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	// --------------------------------------------------
	// 4️⃣ Audit
	// --------------------------------------------------
	s.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   audit.ActionUserRegistered,
		Entity:   "user",
		EntityID: strconv.FormatUint(uint64(user.ID), 10),
	})

	return s.session(user)
}

// ======================================================
// LOGIN / ME
// ======================================================

func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.session(user)
}

func (s *Service) Me(ctx context.Context, userID uint) (*models.User, error) {
	return s.users.FindByID(ctx, userID)
}

// ClientIDFor returns the upstream client id of user, linking it by email
// the first time.
func (s *Service) ClientIDFor(ctx context.Context, user *models.User) (int64, error) {
	if user.UpstreamClientID != nil {
		return *user.UpstreamClientID, nil
	}

	client, err := s.clients.FindClientByEmail(ctx, user.Email)
	if err != nil {
		return 0, err
	}
	if client == nil {
		return 0, ErrClientNotLinked
	}

	if err := s.users.SetUpstreamClientID(ctx, user.ID, client.ID); err != nil {
		return 0, err
	}
	user.UpstreamClientID = &client.ID
	return client.ID, nil
}

func (s *Service) session(user *models.User) (*Session, error) {
	token, err := s.tokens.Issue(auth.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Token: token}, nil
}
