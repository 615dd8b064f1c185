package account_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/mock/gomock"

	"accounts/internal/account"
	"accounts/pkg/domain"
	"accounts/pkg/serrors"
	"accounts/pkg/storage"
	mockstorage "accounts/pkg/storage/mock"
)

func newTestAccounts(t *testing.T) (*mockstorage.MockStorage, account.Accounts) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	a := account.New(st, account.Options{NotifierMaxAttempts: 3})

	return st, a
}

func validAccount() domain.Account {
	return domain.Account{
		Username:  "jdoe",
		Password:  "secret",
		FirstName: "John",
		LastName:  "Doe",
	}
}

func codeOf(t *testing.T, err error) domain.Code {
	t.Helper()

	var se *serrors.Error
	if !errors.As(err, &se) {
		t.Fatalf("expected semantic error, got %v", err)
	}

	return se.Code()
}

func TestAccounts_Register(t *testing.T) {
	st, a := newTestAccounts(t)
	in := validAccount()
	id := domain.AccountID(uuid.New())

	st.EXPECT().AccountByUsername(gomock.Any(), in.Username).Return(nil, nil)
	st.EXPECT().StoreAccount(gomock.Any(), in).DoAndReturn(
		func(_ context.Context, acc domain.Account) (*domain.Account, error) {
			stored := acc.WithID(id)

			return &stored, nil
		},
	)
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res, err := a.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil || res.ID != id {
		t.Fatalf("expected stored account with ID, got %+v", res)
	}
	if res.Username != in.Username {
		t.Fatalf("expected username %q, got %q", in.Username, res.Username)
	}
}

func TestAccounts_Register_ValidationStopsBeforeStorage(t *testing.T) {
	st, a := newTestAccounts(t)
	in := validAccount()
	in.Username = "   "

	// validation failures must short-circuit before any storage access
	st.EXPECT().AccountByUsername(gomock.Any(), gomock.Any()).Times(0)
	st.EXPECT().StoreAccount(gomock.Any(), gomock.Any()).Times(0)

	_, err := a.Register(context.Background(), in)
	if !errors.Is(err, serrors.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if code := codeOf(t, err); code != domain.CodeRegisterUsernameRequired {
		t.Fatalf("expected %s, got %s", domain.CodeRegisterUsernameRequired, code)
	}
}

func TestAccounts_Register_UsernameTaken(t *testing.T) {
	st, a := newTestAccounts(t)
	in := validAccount()
	existing := validAccount().WithID(domain.AccountID(uuid.New()))

	st.EXPECT().AccountByUsername(gomock.Any(), in.Username).Return(&existing, nil)
	st.EXPECT().StoreAccount(gomock.Any(), gomock.Any()).Times(0)

	_, err := a.Register(context.Background(), in)
	if !errors.Is(err, serrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if code := codeOf(t, err); code != domain.CodeRegisterUsernameExists {
		t.Fatalf("expected %s, got %s", domain.CodeRegisterUsernameExists, code)
	}
}

func TestAccounts_Register_UniqueViolationRace(t *testing.T) {
	st, a := newTestAccounts(t)
	in := validAccount()

	// the username check passes but a concurrent insert wins the race,
	// the unique index violation must still surface as a conflict
	st.EXPECT().AccountByUsername(gomock.Any(), in.Username).Return(nil, nil)
	st.EXPECT().StoreAccount(gomock.Any(), in).
		Return(nil, storage.ErrUniqueViolation)

	_, err := a.Register(context.Background(), in)
	if !errors.Is(err, serrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if code := codeOf(t, err); code != domain.CodeRegisterUsernameExists {
		t.Fatalf("expected %s, got %s", domain.CodeRegisterUsernameExists, code)
	}
}

func TestAccounts_Register_RepositoryErrors(t *testing.T) {
	st, a := newTestAccounts(t)
	in := validAccount()

	st.EXPECT().AccountByUsername(gomock.Any(), in.Username).Return(nil, errors.New("boom"))
	_, err := a.Register(context.Background(), in)
	if !errors.Is(err, serrors.ErrRepository) {
		t.Fatalf("expected ErrRepository from username check, got %v", err)
	}

	st.EXPECT().AccountByUsername(gomock.Any(), in.Username).Return(nil, nil)
	st.EXPECT().StoreAccount(gomock.Any(), in).Return(nil, errors.New("boom"))
	_, err = a.Register(context.Background(), in)
	if !errors.Is(err, serrors.ErrRepository) {
		t.Fatalf("expected ErrRepository from store, got %v", err)
	}
}

func TestAccounts_ByID(t *testing.T) {
	st, a := newTestAccounts(t)
	id := domain.AccountID(uuid.New())
	stored := validAccount().WithID(id)

	// found
	st.EXPECT().AccountByID(gomock.Any(), id).Return(&stored, nil)
	res, err := a.ByID(context.Background(), id)
	if err != nil || res == nil || res.ID != id {
		t.Fatalf("unexpected: res=%+v err=%v", res, err)
	}

	// not found
	st.EXPECT().AccountByID(gomock.Any(), id).Return(nil, nil)
	_, err = a.ByID(context.Background(), id)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if code := codeOf(t, err); code != domain.CodeAccountNotFound {
		t.Fatalf("expected %s, got %s", domain.CodeAccountNotFound, code)
	}

	// storage error
	st.EXPECT().AccountByID(gomock.Any(), id).Return(nil, errors.New("boom"))
	_, err = a.ByID(context.Background(), id)
	if !errors.Is(err, serrors.ErrRepository) {
		t.Fatalf("expected ErrRepository, got %v", err)
	}
}

func TestAccounts_All(t *testing.T) {
	st, a := newTestAccounts(t)

	stored := []domain.Account{
		validAccount().WithID(domain.AccountID(uuid.New())),
		validAccount().WithID(domain.AccountID(uuid.New())),
	}

	st.EXPECT().Accounts(gomock.Any()).Return(stored, nil)
	res, err := a.All(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(res))
	}

	// empty store yields an empty result, not an error
	st.EXPECT().Accounts(gomock.Any()).Return([]domain.Account{}, nil)
	res, err = a.All(context.Background())
	if err != nil || len(res) != 0 {
		t.Fatalf("unexpected: res=%+v err=%v", res, err)
	}

	st.EXPECT().Accounts(gomock.Any()).Return(nil, errors.New("boom"))
	if _, err := a.All(context.Background()); !errors.Is(err, serrors.ErrRepository) {
		t.Fatalf("expected ErrRepository, got %v", err)
	}
}

func TestAccounts_Update(t *testing.T) {
	st, a := newTestAccounts(t)
	id := domain.AccountID(uuid.New())
	current := validAccount().WithID(id)
	in := validAccount()
	in.FirstName = "Johnny"

	st.EXPECT().AccountByID(gomock.Any(), id).Return(&current, nil)
	st.EXPECT().AccountByUsernameExcluding(gomock.Any(), in.Username, id).Return(nil, nil)
	st.EXPECT().UpdateAccount(gomock.Any(), id, in).DoAndReturn(
		func(_ context.Context, id domain.AccountID, acc domain.Account) (*domain.Account, error) {
			updated := acc.WithID(id)

			return &updated, nil
		},
	)

	res, err := a.Update(context.Background(), id, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil || res.FirstName != "Johnny" {
		t.Fatalf("expected updated account, got %+v", res)
	}
}

func TestAccounts_Update_ValidationStopsBeforeStorage(t *testing.T) {
	st, a := newTestAccounts(t)
	id := domain.AccountID(uuid.New())
	in := validAccount()
	in.Password = ""

	st.EXPECT().AccountByID(gomock.Any(), gomock.Any()).Times(0)

	_, err := a.Update(context.Background(), id, in)
	if !errors.Is(err, serrors.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if code := codeOf(t, err); code != domain.CodeUpdatePasswordRequired {
		t.Fatalf("expected %s, got %s", domain.CodeUpdatePasswordRequired, code)
	}
}

func TestAccounts_Update_NotFound(t *testing.T) {
	st, a := newTestAccounts(t)
	id := domain.AccountID(uuid.New())
	in := validAccount()

	// existence is checked before the username conflict lookup
	st.EXPECT().AccountByID(gomock.Any(), id).Return(nil, nil)
	st.EXPECT().AccountByUsernameExcluding(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := a.Update(context.Background(), id, in)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if code := codeOf(t, err); code != domain.CodeAccountNotFound {
		t.Fatalf("expected %s, got %s", domain.CodeAccountNotFound, code)
	}
}

func TestAccounts_Update_UsernameHeldByOther(t *testing.T) {
	st, a := newTestAccounts(t)
	id := domain.AccountID(uuid.New())
	current := validAccount().WithID(id)
	in := validAccount()
	in.Username = "taken"
	other := validAccount().WithID(domain.AccountID(uuid.New()))

	st.EXPECT().AccountByID(gomock.Any(), id).Return(&current, nil)
	st.EXPECT().AccountByUsernameExcluding(gomock.Any(), "taken", id).Return(&other, nil)
	st.EXPECT().UpdateAccount(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := a.Update(context.Background(), id, in)
	if !errors.Is(err, serrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if code := codeOf(t, err); code != domain.CodeUpdateUsernameExists {
		t.Fatalf("expected %s, got %s", domain.CodeUpdateUsernameExists, code)
	}
}

func TestAccounts_Update_KeepingOwnUsername(t *testing.T) {
	st, a := newTestAccounts(t)
	id := domain.AccountID(uuid.New())
	current := validAccount().WithID(id)
	in := validAccount() // same username as current

	// the excluding lookup returns nil because the only holder is the
	// account being updated
	st.EXPECT().AccountByID(gomock.Any(), id).Return(&current, nil)
	st.EXPECT().AccountByUsernameExcluding(gomock.Any(), in.Username, id).Return(nil, nil)
	st.EXPECT().UpdateAccount(gomock.Any(), id, in).DoAndReturn(
		func(_ context.Context, id domain.AccountID, acc domain.Account) (*domain.Account, error) {
			updated := acc.WithID(id)

			return &updated, nil
		},
	)

	if _, err := a.Update(context.Background(), id, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAccounts_Update_UniqueViolationRace(t *testing.T) {
	st, a := newTestAccounts(t)
	id := domain.AccountID(uuid.New())
	current := validAccount().WithID(id)
	in := validAccount()

	st.EXPECT().AccountByID(gomock.Any(), id).Return(&current, nil)
	st.EXPECT().AccountByUsernameExcluding(gomock.Any(), in.Username, id).Return(nil, nil)
	st.EXPECT().UpdateAccount(gomock.Any(), id, in).
		Return(nil, storage.ErrUniqueViolation)

	_, err := a.Update(context.Background(), id, in)
	if !errors.Is(err, serrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if code := codeOf(t, err); code != domain.CodeUpdateUsernameExists {
		t.Fatalf("expected %s, got %s", domain.CodeUpdateUsernameExists, code)
	}
}

func TestAccounts_Update_DeletedConcurrently(t *testing.T) {
	st, a := newTestAccounts(t)
	id := domain.AccountID(uuid.New())
	current := validAccount().WithID(id)
	in := validAccount()

	st.EXPECT().AccountByID(gomock.Any(), id).Return(&current, nil)
	st.EXPECT().AccountByUsernameExcluding(gomock.Any(), in.Username, id).Return(nil, nil)
	st.EXPECT().UpdateAccount(gomock.Any(), id, in).Return(nil, nil)

	_, err := a.Update(context.Background(), id, in)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAccounts_Delete(t *testing.T) {
	st, a := newTestAccounts(t)
	id := domain.AccountID(uuid.New())
	current := validAccount().WithID(id)

	st.EXPECT().AccountByID(gomock.Any(), id).Return(&current, nil)
	st.EXPECT().DeleteAccount(gomock.Any(), id).Return(nil)
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			jobArgs, ok := args.(account.DeleteNotificationArgs)
			if !ok {
				t.Fatalf("expected DeleteNotificationArgs, got %T", args)
			}
			if jobArgs.AccountID != id.String() || jobArgs.Username != current.Username {
				t.Fatalf("unexpected job args: %+v", jobArgs)
			}

			return true, nil
		},
	)

	if err := a.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAccounts_Delete_NotFound(t *testing.T) {
	st, a := newTestAccounts(t)
	id := domain.AccountID(uuid.New())

	st.EXPECT().AccountByID(gomock.Any(), id).Return(nil, nil)
	st.EXPECT().DeleteAccount(gomock.Any(), gomock.Any()).Times(0)
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := a.Delete(context.Background(), id)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAccounts_Delete_EnqueueFailureDoesNotFailDelete(t *testing.T) {
	st, a := newTestAccounts(t)
	id := domain.AccountID(uuid.New())
	current := validAccount().WithID(id)

	st.EXPECT().AccountByID(gomock.Any(), id).Return(&current, nil)
	st.EXPECT().DeleteAccount(gomock.Any(), id).Return(nil)
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("queue down"))

	// the account is gone, the failed notification must not surface
	if err := a.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAccounts_Delete_RepositoryError(t *testing.T) {
	st, a := newTestAccounts(t)
	id := domain.AccountID(uuid.New())
	current := validAccount().WithID(id)

	st.EXPECT().AccountByID(gomock.Any(), id).Return(&current, nil)
	st.EXPECT().DeleteAccount(gomock.Any(), id).Return(errors.New("boom"))
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	if err := a.Delete(context.Background(), id); !errors.Is(err, serrors.ErrRepository) {
		t.Fatalf("expected ErrRepository, got %v", err)
	}
}
