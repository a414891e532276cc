package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"staywise/cache"
	"staywise/models"
	"staywise/nav"
	"staywise/store"
)

type fakeStore struct {
	signInFn  func(ctx context.Context, email, password string) (*models.AuthData, error)
	getSessFn func(ctx context.Context) (*models.StoreSession, error)
	getUserFn func(ctx context.Context) (*models.User, error)
	signOutFn func(ctx context.Context) error
	signUpFn  func(ctx context.Context, email, password string, metadata models.UserMetadata) (*models.User, error)
	updateFn  func(ctx context.Context, req models.UserUpdateRequest) (*models.User, error)
}

func (f *fakeStore) SignInWithPassword(ctx context.Context, email, password string) (*models.AuthData, error) {
	if f.signInFn != nil {
		return f.signInFn(ctx, email, password)
	}
	return nil, store.ErrInvalidCredentials
}

func (f *fakeStore) GetSession(ctx context.Context) (*models.StoreSession, error) {
	if f.getSessFn != nil {
		return f.getSessFn(ctx)
	}
	return nil, nil
}

func (f *fakeStore) GetUser(ctx context.Context) (*models.User, error) {
	if f.getUserFn != nil {
		return f.getUserFn(ctx)
	}
	return nil, store.ErrNoSession
}

func (f *fakeStore) SignOut(ctx context.Context) error {
	if f.signOutFn != nil {
		return f.signOutFn(ctx)
	}
	return nil
}

func (f *fakeStore) SignUp(ctx context.Context, email, password string, metadata models.UserMetadata) (*models.User, error) {
	if f.signUpFn != nil {
		return f.signUpFn(ctx, email, password, metadata)
	}
	return nil, nil
}

func (f *fakeStore) UpdateCurrentUser(ctx context.Context, req models.UserUpdateRequest) (*models.User, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, req)
	}
	return nil, store.ErrNoSession
}

func (f *fakeStore) GetBooking(context.Context, int64) (*models.Booking, error) {
	return nil, store.ErrNoSession
}

func (f *fakeStore) UpdateBooking(context.Context, int64, models.BookingUpdate) (*models.Booking, error) {
	return nil, store.ErrNoSession
}

func (f *fakeStore) BookingsAfterDate(context.Context, time.Time) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeStore) StaysAfterDate(context.Context, time.Time) ([]models.Booking, error) {
	return nil, nil
}

type fakeNotifier struct {
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *fakeNotifier) Error(message string)   { n.errors = append(n.errors, message) }

func newManager(st store.Client) (*DefaultSessionManager, *fakeNotifier, *nav.Recorder, *cache.MemoryQueryCache) {
	notifier := &fakeNotifier{}
	recorder := &nav.Recorder{}
	qc := cache.NewMemoryQueryCache()
	return NewDefaultSessionManager(st, qc, notifier, recorder), notifier, recorder, qc
}

func TestManagerStartsLoading(t *testing.T) {
	m, _, _, _ := newManager(&fakeStore{})
	snapshot := m.Snapshot()
	if !snapshot.IsLoading {
		t.Fatal("new manager should be in the loading state")
	}
	if snapshot.IsAuthenticated {
		t.Fatal("new manager should not be authenticated")
	}
}

func TestLoginFailure(t *testing.T) {
	st := &fakeStore{
		signInFn: func(ctx context.Context, email, password string) (*models.AuthData, error) {
			return nil, store.ErrInvalidCredentials
		},
	}
	m, notifier, recorder, _ := newManager(st)

	settled := 0
	_, err := m.Login(context.Background(), "a@x.com", "wrong", func() { settled++ })
	if err == nil {
		t.Fatal("expected login error")
	}
	if settled != 1 {
		t.Errorf("settle callback ran %d times, want 1", settled)
	}
	if snapshot := m.Snapshot(); snapshot.IsAuthenticated || snapshot.IsLoading {
		t.Errorf("session after failed login = %+v, want unauthenticated and settled", snapshot)
	}
	if len(notifier.errors) != 1 {
		t.Fatalf("got %d error notifications, want exactly 1", len(notifier.errors))
	}
	if notifier.errors[0] != msgLoginFailed {
		t.Errorf("error notification = %q, want %q", notifier.errors[0], msgLoginFailed)
	}
	if len(notifier.successes) != 0 {
		t.Errorf("unexpected success notifications: %v", notifier.successes)
	}
	if move := recorder.TakeLast(); move != nil {
		t.Errorf("unexpected navigation to %q after failed login", move.Path)
	}
}

func TestLoginSuccess(t *testing.T) {
	user := &models.User{ID: "u1", Email: "a@x.com", FullName: "Ana"}
	st := &fakeStore{
		signInFn: func(ctx context.Context, email, password string) (*models.AuthData, error) {
			return &models.AuthData{User: user, Session: &models.StoreSession{UserID: user.ID}}, nil
		},
	}
	m, notifier, recorder, qc := newManager(st)

	settled := 0
	got, err := m.Login(context.Background(), "a@x.com", "right", func() { settled++ })
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("login returned user %q, want %q", got.ID, user.ID)
	}
	if settled != 1 {
		t.Errorf("settle callback ran %d times, want 1", settled)
	}

	snapshot := m.Snapshot()
	if !snapshot.IsAuthenticated || snapshot.IsLoading || snapshot.User == nil {
		t.Fatalf("session after login = %+v, want authenticated", snapshot)
	}
	if len(notifier.successes) != 1 {
		t.Fatalf("got %d success notifications, want exactly 1", len(notifier.successes))
	}

	move := recorder.TakeLast()
	if move == nil {
		t.Fatal("expected navigation after login")
	}
	if move.Path != nav.PathDashboard || !move.Replace {
		t.Errorf("navigation = %+v, want %s with history replaced", move, nav.PathDashboard)
	}

	// The just-authenticated user is known fresh and cached directly.
	var cached models.User
	err = qc.GetOrFetch(context.Background(), cache.KeyUser, &cached, func(context.Context) (interface{}, error) {
		t.Fatal("user entry should be fresh, not refetched")
		return nil, nil
	})
	if err != nil {
		t.Fatalf("reading cached user: %v", err)
	}
	if cached.ID != user.ID {
		t.Errorf("cached user = %q, want %q", cached.ID, user.ID)
	}
}

func TestSignupSuccess(t *testing.T) {
	st := &fakeStore{
		signUpFn: func(ctx context.Context, email, password string, metadata models.UserMetadata) (*models.User, error) {
			return &models.User{ID: "u2", Email: email, FullName: metadata.FullName}, nil
		},
	}
	m, notifier, _, _ := newManager(st)

	user, err := m.Signup(context.Background(), "new@x.com", "pw", "New Staffer")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if user.FullName != "New Staffer" {
		t.Errorf("signup user full name = %q", user.FullName)
	}
	if len(notifier.successes) != 1 || notifier.successes[0] != msgSignupOK {
		t.Errorf("success notifications = %v, want the verification prompt", notifier.successes)
	}
}

func TestSignupFailureSurfacesStoreReason(t *testing.T) {
	st := &fakeStore{
		signUpFn: func(ctx context.Context, email, password string, metadata models.UserMetadata) (*models.User, error) {
			return nil, store.NewRejection("signUp", "a user with this email already exists", nil)
		},
	}
	m, notifier, _, _ := newManager(st)

	if _, err := m.Signup(context.Background(), "dup@x.com", "pw", "Dup"); err == nil {
		t.Fatal("expected signup error")
	}
	if len(notifier.errors) != 1 || notifier.errors[0] != "a user with this email already exists" {
		t.Errorf("error notifications = %v, want the store-provided reason", notifier.errors)
	}
}

func TestSignupFailureGenericFallback(t *testing.T) {
	st := &fakeStore{
		signUpFn: func(ctx context.Context, email, password string, metadata models.UserMetadata) (*models.User, error) {
			return nil, errors.New("connection reset")
		},
	}
	m, notifier, _, _ := newManager(st)

	if _, err := m.Signup(context.Background(), "new@x.com", "pw", "New"); err == nil {
		t.Fatal("expected signup error")
	}
	if len(notifier.errors) != 1 || notifier.errors[0] != msgSignupFailed {
		t.Errorf("error notifications = %v, want %q", notifier.errors, msgSignupFailed)
	}
}

func TestLogout(t *testing.T) {
	user := &models.User{ID: "u1"}
	st := &fakeStore{
		signInFn: func(ctx context.Context, email, password string) (*models.AuthData, error) {
			return &models.AuthData{User: user, Session: &models.StoreSession{UserID: user.ID}}, nil
		},
	}
	m, _, recorder, _ := newManager(st)

	if _, err := m.Login(context.Background(), "a@x.com", "right", nil); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	recorder.TakeLast()

	if err := m.Logout(context.Background()); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if snapshot := m.Snapshot(); snapshot.IsAuthenticated || snapshot.User != nil {
		t.Errorf("session after logout = %+v, want unauthenticated", snapshot)
	}
	move := recorder.TakeLast()
	if move == nil || move.Path != nav.PathLogin {
		t.Errorf("navigation after logout = %+v, want %s", move, nav.PathLogin)
	}
}

func TestLogoutFailureKeepsSession(t *testing.T) {
	user := &models.User{ID: "u1"}
	st := &fakeStore{
		signInFn: func(ctx context.Context, email, password string) (*models.AuthData, error) {
			return &models.AuthData{User: user, Session: &models.StoreSession{UserID: user.ID}}, nil
		},
		signOutFn: func(ctx context.Context) error {
			return store.NewRejection("signOut", "failed to invalidate session", nil)
		},
	}
	m, notifier, _, _ := newManager(st)

	if _, err := m.Login(context.Background(), "a@x.com", "right", nil); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if err := m.Logout(context.Background()); err == nil {
		t.Fatal("expected logout error")
	}
	if snapshot := m.Snapshot(); !snapshot.IsAuthenticated {
		t.Error("failed logout must not drop the session locally")
	}
	if len(notifier.errors) != 1 {
		t.Errorf("got %d error notifications, want 1", len(notifier.errors))
	}
}

func TestCurrentSessionResolvesUser(t *testing.T) {
	user := &models.User{ID: "u1", Email: "a@x.com"}
	st := &fakeStore{
		getSessFn: func(ctx context.Context) (*models.StoreSession, error) {
			return &models.StoreSession{UserID: user.ID}, nil
		},
		getUserFn: func(ctx context.Context) (*models.User, error) {
			return user, nil
		},
	}
	m, _, _, _ := newManager(st)

	session := m.CurrentSession(context.Background())
	if !session.IsAuthenticated || session.IsLoading {
		t.Fatalf("resolved session = %+v, want authenticated and settled", session)
	}
	if session.User == nil || session.User.ID != user.ID {
		t.Errorf("resolved user = %+v, want %q", session.User, user.ID)
	}
}

func TestCurrentSessionNoSession(t *testing.T) {
	m, notifier, _, _ := newManager(&fakeStore{})

	session := m.CurrentSession(context.Background())
	if session.IsAuthenticated || session.IsLoading || session.User != nil {
		t.Fatalf("resolved session = %+v, want settled unauthenticated", session)
	}
	// An absent session is a silent redirect, never an error toast.
	if len(notifier.errors) != 0 {
		t.Errorf("unexpected error notifications: %v", notifier.errors)
	}
}

func TestCurrentSessionFailureIsSilent(t *testing.T) {
	st := &fakeStore{
		getSessFn: func(ctx context.Context) (*models.StoreSession, error) {
			return nil, errors.New("store unreachable")
		},
	}
	m, notifier, _, _ := newManager(st)

	session := m.CurrentSession(context.Background())
	if session.IsAuthenticated || session.IsLoading {
		t.Fatalf("resolved session = %+v, want settled unauthenticated", session)
	}
	if len(notifier.errors) != 0 {
		t.Errorf("unexpected error notifications: %v", notifier.errors)
	}
}

func TestUpdateCurrentUser(t *testing.T) {
	updated := &models.User{ID: "u1", FullName: "Renamed"}
	st := &fakeStore{
		updateFn: func(ctx context.Context, req models.UserUpdateRequest) (*models.User, error) {
			return updated, nil
		},
	}
	m, notifier, _, qc := newManager(st)

	user, err := m.UpdateCurrentUser(context.Background(), models.UserUpdateRequest{FullName: "Renamed"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if user.FullName != "Renamed" {
		t.Errorf("updated full name = %q", user.FullName)
	}
	if len(notifier.successes) != 1 {
		t.Errorf("got %d success notifications, want 1", len(notifier.successes))
	}

	var cached models.User
	err = qc.GetOrFetch(context.Background(), cache.KeyUser, &cached, func(context.Context) (interface{}, error) {
		t.Fatal("user entry should be fresh after update")
		return nil, nil
	})
	if err != nil {
		t.Fatalf("reading cached user: %v", err)
	}
	if cached.FullName != "Renamed" {
		t.Errorf("cached full name = %q", cached.FullName)
	}
}
