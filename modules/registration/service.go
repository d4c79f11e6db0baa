package registration

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/appcadastro/registro/pkg/form"
	"github.com/appcadastro/registro/pkg/logger"
	"github.com/appcadastro/registro/pkg/sanitizer"
	"github.com/appcadastro/registro/pkg/storage"
	"github.com/appcadastro/registro/pkg/validator"
)

// Notice keys returned to the client, resolved through the message catalog.
const (
	NoticeRegistered        = "registration_success"
	NoticeAlreadyRegistered = "already_registered"
	NoticeInvalidForm       = "invalid_form"
	NoticePersistFailed     = "persist_failed"
	NoticeTooManyAttempts   = "too_many_attempts"
)

const DefaultLoginPath = "/login"

// Outcome describes a registration attempt. Form is always set; User,
// Redirect and Notice are set on success.
type Outcome struct {
	Form     *form.Container
	User     *User
	Redirect string
	Notice   string
}

// Service validates registration submissions and persists new users.
type Service struct {
	store      *storage.Store
	form       *form.Group
	logger     *slog.Logger
	now        func() time.Time
	bcryptCost int
	loginPath  string
}

type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithBcryptCost sets the password hashing cost. Values outside bcrypt's
// accepted range fall back to bcrypt.DefaultCost.
func WithBcryptCost(cost int) ServiceOption {
	return func(s *Service) {
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			cost = bcrypt.DefaultCost
		}
		s.bcryptCost = cost
	}
}

// WithLoginPath sets where clients go after a successful registration.
func WithLoginPath(path string) ServiceOption {
	return func(s *Service) {
		if path != "" {
			s.loginPath = path
		}
	}
}

func NewService(store *storage.Store, opts ...ServiceOption) *Service {
	s := &Service{
		store:      store,
		form:       Form(),
		logger:     logger.Discard(),
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
		loginPath:  DefaultLoginPath,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("registration"))
	return s
}

// Fields returns the form field names in declaration order.
func (s *Service) Fields() []string {
	return s.form.Fields()
}

// Validate runs one validation pass over values without side effects.
func (s *Service) Validate(values map[string]string) *form.Container {
	return s.form.Bind(values)
}

// Register validates values and stores a new user keyed by CPF.
//
// It returns ErrInvalidForm when any field carries a marker, ErrAlreadyRegistered
// when a record exists for the CPF and ErrPersistFailed when storage fails.
// The returned Outcome is never nil.
func (s *Service) Register(ctx context.Context, values map[string]string) (*Outcome, error) {
	c := s.form.Bind(values)
	out := &Outcome{Form: c}
	if !c.Valid() {
		s.logger.DebugContext(ctx, "Registration form invalid", logger.Fields(slices.Sorted(maps.Keys(c.AllErrors()))))
		return out, ErrInvalidForm
	}

	user, err := s.newUser(c)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			c.AddError(FieldPassword, validator.KindMaxLength)
			return out, errors.Join(ErrInvalidForm, err)
		}
		s.logger.ErrorContext(ctx, "Failed to build user record", logger.Error(err))
		return out, errors.Join(ErrPersistFailed, err)
	}

	created, err := s.store.Create(ctx, userKey(user.CPF), user)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to store registration", logger.CPF(user.CPF), logger.Error(err))
		return out, errors.Join(ErrPersistFailed, err)
	}
	if !created {
		s.logger.InfoContext(ctx, "CPF already registered", logger.CPF(user.CPF))
		return out, ErrAlreadyRegistered
	}

	s.logger.InfoContext(ctx, "User registered",
		logger.UserID(user.ID),
		logger.CPF(user.CPF),
		logger.Email(user.Email),
	)

	out.User = user
	out.Redirect = s.loginPath
	out.Notice = NoticeRegistered
	return out, nil
}

// Lookup loads the record stored for cpf, accepting any formatting.
func (s *Service) Lookup(ctx context.Context, cpf string) (*User, error) {
	if !validator.IsCPF(cpf) {
		return nil, ErrInvalidCPF
	}

	var user User
	found, err := s.store.Load(ctx, userKey(cpf), &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *Service) newUser(c *form.Container) (*User, error) {
	birthDate, err := validator.ParseDate(c.Value(FieldBirthDate), birthDateLayouts...)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(c.Value(FieldPassword)), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	return &User{
		ID:           id,
		Name:         cleanName(c.Value(FieldName)),
		CPF:          sanitizer.Digits(c.Value(FieldCPF)),
		BirthDate:    birthDate,
		Gender:       cleanField(c.Value(FieldGender)),
		Phone:        sanitizer.NormalizePhone(c.Value(FieldPhone)),
		Email:        sanitizer.NormalizeEmail(c.Value(FieldEmail)),
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}, nil
}
