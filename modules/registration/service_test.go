package registration_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/appcadastro/registro/modules/registration"
	"github.com/appcadastro/registro/pkg/storage"
	"github.com/appcadastro/registro/pkg/validator"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func validValues() map[string]string {
	return map[string]string{
		registration.FieldName:            "  Ana   Souza ",
		registration.FieldCPF:             "529.982.247-25",
		registration.FieldBirthDate:       "1990-05-17",
		registration.FieldGender:          "feminino",
		registration.FieldPhone:           "(11) 98765-4321",
		registration.FieldEmail:           "Ana.Souza@Example.com",
		registration.FieldPassword:        "abc123",
		registration.FieldPasswordConfirm: "abc123",
	}
}

func with(values map[string]string, field, value string) map[string]string {
	values[field] = value
	return values
}

func newService(t *testing.T, kv storage.KeyValue) *registration.Service {
	t.Helper()
	return registration.NewService(storage.New(kv),
		registration.WithBcryptCost(bcrypt.MinCost),
		registration.WithClock(func() time.Time { return fixedNow }),
	)
}

// flakyKV fails the operations whose error is set and delegates the rest.
// Embedding the interface hides SetIfAbsent, so the store takes its
// read-then-write path.
type flakyKV struct {
	storage.KeyValue
	getErr error
	setErr error
}

func (f *flakyKV) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.KeyValue.Get(ctx, key)
}

func (f *flakyKV) Set(ctx context.Context, key string, val []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.KeyValue.Set(ctx, key, val)
}

// plainKV exposes only the KeyValue methods of a MemoryStore.
type plainKV struct {
	storage.KeyValue
}

func TestServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the user and points to login", func(t *testing.T) {
		kv := storage.NewMemoryStore()
		svc := newService(t, kv)

		out, err := svc.Register(ctx, validValues())
		require.NoError(t, err)
		require.NotNil(t, out.User)

		assert.Equal(t, registration.DefaultLoginPath, out.Redirect)
		assert.Equal(t, registration.NoticeRegistered, out.Notice)
		assert.True(t, out.Form.Valid())

		user := out.User
		assert.Equal(t, "Ana Souza", user.Name)
		assert.Equal(t, "52998224725", user.CPF)
		assert.Equal(t, "11987654321", user.Phone)
		assert.Equal(t, "ana.souza@example.com", user.Email)
		assert.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), user.BirthDate)
		assert.Equal(t, fixedNow, user.CreatedAt)
		assert.NotEqual(t, "abc123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("abc123")))

		raw, err := kv.Get(ctx, "usuarios/52998224725")
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "abc123")

		stored, err := svc.Lookup(ctx, "52998224725")
		require.NoError(t, err)
		assert.Equal(t, user.ID, stored.ID)
		assert.Equal(t, user.PasswordHash, stored.PasswordHash)
	})

	t.Run("optional phone may be empty", func(t *testing.T) {
		svc := newService(t, storage.NewMemoryStore())
		out, err := svc.Register(ctx, with(validValues(), registration.FieldPhone, ""))
		require.NoError(t, err)
		assert.Empty(t, out.User.Phone)
	})

	t.Run("password mismatch", func(t *testing.T) {
		kv := storage.NewMemoryStore()
		svc := newService(t, kv)

		out, err := svc.Register(ctx, with(validValues(), registration.FieldPasswordConfirm, "xyz999"))
		require.ErrorIs(t, err, registration.ErrInvalidForm)
		assert.Nil(t, out.User)
		assert.Equal(t, map[string]validator.Result{
			registration.FieldPasswordConfirm: {validator.KindMismatch: true},
		}, out.Form.AllErrors())
		assert.Equal(t, 0, kv.Len())
	})

	t.Run("empty submission", func(t *testing.T) {
		svc := newService(t, storage.NewMemoryStore())

		out, err := svc.Register(ctx, nil)
		require.ErrorIs(t, err, registration.ErrInvalidForm)

		errs := out.Form.AllErrors()
		for _, field := range []string{
			registration.FieldName,
			registration.FieldCPF,
			registration.FieldBirthDate,
			registration.FieldGender,
			registration.FieldEmail,
			registration.FieldPassword,
			registration.FieldPasswordConfirm,
		} {
			assert.Equal(t, validator.Invalid(validator.KindRequired), errs[field], field)
		}
		assert.NotContains(t, errs, registration.FieldPhone)
	})

	t.Run("field markers", func(t *testing.T) {
		svc := newService(t, storage.NewMemoryStore())
		values := validValues()
		values[registration.FieldName] = "Al"
		values[registration.FieldCPF] = "529.982.247-26"
		values[registration.FieldBirthDate] = "17/05/1990"
		values[registration.FieldPhone] = "1234"
		values[registration.FieldEmail] = "ana@"

		out, err := svc.Register(ctx, values)
		require.ErrorIs(t, err, registration.ErrInvalidForm)
		assert.Equal(t, map[string]validator.Result{
			registration.FieldName:      {validator.KindMinLength: true},
			registration.FieldCPF:       {validator.KindInvalid: true},
			registration.FieldBirthDate: {validator.KindInvalid: true},
			registration.FieldPhone:     {validator.KindMinLength: true},
			registration.FieldEmail:     {validator.KindEmail: true},
		}, out.Form.AllErrors())
	})

	t.Run("password longer than bcrypt accepts", func(t *testing.T) {
		svc := newService(t, storage.NewMemoryStore())
		long := strings.Repeat("a", 73)
		values := validValues()
		values[registration.FieldPassword] = long
		values[registration.FieldPasswordConfirm] = long

		out, err := svc.Register(ctx, values)
		require.ErrorIs(t, err, registration.ErrInvalidForm)
		assert.True(t, out.Form.Errors(registration.FieldPassword).Has(validator.KindMaxLength))
	})

	t.Run("duplicate cpf in other formatting", func(t *testing.T) {
		svc := newService(t, storage.NewMemoryStore())
		_, err := svc.Register(ctx, validValues())
		require.NoError(t, err)

		out, err := svc.Register(ctx, with(validValues(), registration.FieldCPF, "52998224725"))
		require.ErrorIs(t, err, registration.ErrAlreadyRegistered)
		assert.Nil(t, out.User)
	})

	t.Run("write failure", func(t *testing.T) {
		svc := newService(t, &flakyKV{KeyValue: storage.NewMemoryStore(), setErr: errors.New("disk full")})
		out, err := svc.Register(ctx, validValues())
		require.ErrorIs(t, err, registration.ErrPersistFailed)
		assert.Nil(t, out.User)
		assert.Empty(t, out.Redirect)
	})

	t.Run("read failure", func(t *testing.T) {
		svc := newService(t, &flakyKV{KeyValue: storage.NewMemoryStore(), getErr: errors.New("timeout")})
		_, err := svc.Register(ctx, validValues())
		require.ErrorIs(t, err, registration.ErrPersistFailed)
	})

	t.Run("custom login path", func(t *testing.T) {
		svc := registration.NewService(storage.New(storage.NewMemoryStore()),
			registration.WithBcryptCost(bcrypt.MinCost),
			registration.WithLoginPath("/entrar"),
		)
		out, err := svc.Register(ctx, validValues())
		require.NoError(t, err)
		assert.Equal(t, "/entrar", out.Redirect)
	})
}

func TestServiceRegisterConcurrent(t *testing.T) {
	ctx := context.Background()

	backends := map[string]func() storage.KeyValue{
		"atomic backend":          func() storage.KeyValue { return storage.NewMemoryStore() },
		"read then write backend": func() storage.KeyValue { return plainKV{storage.NewMemoryStore()} },
	}

	for name, newKV := range backends {
		t.Run(name, func(t *testing.T) {
			kv := newKV()
			store := storage.New(kv)
			// two services sharing one backend stand in for two instances
			services := []*registration.Service{
				registration.NewService(store, registration.WithBcryptCost(bcrypt.MinCost)),
				registration.NewService(store, registration.WithBcryptCost(bcrypt.MinCost)),
			}

			const attempts = 8
			var (
				wg        sync.WaitGroup
				created   atomic.Int32
				duplicate atomic.Int32
			)
			for i := range attempts {
				wg.Add(1)
				go func(svc *registration.Service) {
					defer wg.Done()
					_, err := svc.Register(ctx, validValues())
					switch {
					case err == nil:
						created.Add(1)
					case errors.Is(err, registration.ErrAlreadyRegistered):
						duplicate.Add(1)
					default:
						t.Errorf("unexpected error: %v", err)
					}
				}(services[i%len(services)])
			}
			wg.Wait()

			assert.Equal(t, int32(1), created.Load())
			assert.Equal(t, int32(attempts-1), duplicate.Load())
		})
	}
}

func TestServiceValidate(t *testing.T) {
	svc := newService(t, storage.NewMemoryStore())

	t.Run("matching passwords", func(t *testing.T) {
		c := svc.Validate(validValues())
		assert.True(t, c.Valid())
		assert.Empty(t, c.Errors(registration.FieldPasswordConfirm))
	})

	t.Run("short confirmation keeps minlength when equal", func(t *testing.T) {
		values := validValues()
		values[registration.FieldPassword] = "abc"
		values[registration.FieldPasswordConfirm] = "abc"

		c := svc.Validate(values)
		assert.Equal(t, validator.Invalid(validator.KindMinLength), c.Errors(registration.FieldPasswordConfirm))
	})

	t.Run("mismatch and minlength together", func(t *testing.T) {
		values := validValues()
		values[registration.FieldPasswordConfirm] = "xyz"

		c := svc.Validate(values)
		assert.Equal(t, validator.Result{
			validator.KindMinLength: true,
			validator.KindMismatch:  true,
		}, c.Errors(registration.FieldPasswordConfirm))
		assert.Empty(t, c.Errors(registration.FieldPassword))
	})

	t.Run("cpf too long", func(t *testing.T) {
		c := svc.Validate(with(validValues(), registration.FieldCPF, "529.982.247-25000"))
		assert.Equal(t, validator.Result{
			validator.KindMaxLength: true,
			validator.KindInvalid:   true,
		}, c.Errors(registration.FieldCPF))
	})

	assert.Equal(t, []string{
		"nome", "cpf", "data_de_nascimento", "genero", "celular", "email", "senha", "confirmaSenha",
	}, svc.Fields())
}

func TestServiceLookup(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, storage.NewMemoryStore())

	_, err := svc.Lookup(ctx, "123")
	assert.ErrorIs(t, err, registration.ErrInvalidCPF)

	_, err = svc.Lookup(ctx, "390.533.447-05")
	assert.ErrorIs(t, err, registration.ErrNotFound)
}
