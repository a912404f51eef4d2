package auth

import (
	"testing"

	"petlify_server/internal/dao/mysql"
	"petlify_server/internal/dto/request"
	"petlify_server/internal/model"
	"petlify_server/pkg/errorx"
	"petlify_server/pkg/util/jwt"

	"golang.org/x/crypto/bcrypt"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

type fakeUserRepo struct {
	users map[string]model.UserInfo // keyed by uuid
}

func (f *fakeUserRepo) Create(user *model.UserInfo) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return errorx.New(errorx.CodeConflict, "duplicate email")
		}
	}
	f.users[user.Uuid] = *user
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*model.UserInfo, error) {
	for _, u := range f.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, errorx.New(errorx.CodeNotFound, "user not found")
}

func (f *fakeUserRepo) FindByUuid(uuid string) (*model.UserInfo, error) {
	u, ok := f.users[uuid]
	if !ok {
		return nil, errorx.New(errorx.CodeNotFound, "user not found")
	}
	return &u, nil
}

func (f *fakeUserRepo) FindByUuids(uuids []string) ([]model.UserInfo, error) {
	var out []model.UserInfo
	for _, id := range uuids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func newTestAuthService() (*authService, *fakeUserRepo) {
	jwt.Init("auth-test-secret", 60, 168)
	repo := &fakeUserRepo{users: map[string]model.UserInfo{}}
	return NewAuthService(&mysql.Repositories{User: repo}), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, repo := newTestAuthService()

	rsp, err := svc.Register(request.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rsp.AccessToken == "" || rsp.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
	if rsp.User.Email != "alice@example.com" || rsp.User.IsAdmin {
		t.Errorf("user summary = %+v", rsp.User)
	}

	// The stored password is hashed, never the plaintext.
	stored := repo.users[rsp.User.UserId]
	if stored.Password == "hunter22" || stored.Password == "" {
		t.Error("password stored in plaintext or empty")
	}

	login, err := svc.Login(request.LoginRequest{Email: "alice@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.User.UserId != rsp.User.UserId {
		t.Errorf("login user = %q, want %q", login.User.UserId, rsp.User.UserId)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	req := request.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(req)
	if errorx.GetCode(err) != errorx.CodeUserExist {
		t.Errorf("err = %v, want user-exist", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService()
	if _, err := svc.Register(request.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "hunter22",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Wrong password and unknown email report the same error.
	_, wrongPw := svc.Login(request.LoginRequest{Email: "alice@example.com", Password: "nope"})
	_, unknown := svc.Login(request.LoginRequest{Email: "ghost@example.com", Password: "hunter22"})

	if errorx.GetCode(wrongPw) != errorx.CodeInvalidPassword {
		t.Errorf("wrong password err = %v", wrongPw)
	}
	if errorx.GetCode(unknown) != errorx.CodeInvalidPassword {
		t.Errorf("unknown email err = %v", unknown)
	}
	if wrongPw.Error() != unknown.Error() {
		t.Errorf("credential errors differ: %q vs %q", wrongPw, unknown)
	}
}

func TestAdminFlagInToken(t *testing.T) {
	svc, repo := newTestAuthService()
	repo.users["Uadmin"] = model.UserInfo{
		Uuid:     "Uadmin",
		Name:     "Root",
		Email:    "root@example.com",
		Password: mustHash(t, "rootpass"),
		IsAdmin:  1,
	}

	rsp, err := svc.Login(request.LoginRequest{Email: "root@example.com", Password: "rootpass"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !rsp.User.IsAdmin {
		t.Error("summary IsAdmin = false, want true")
	}

	claims, err := jwt.ParseToken(rsp.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if !claims.IsAdmin {
		t.Error("token IsAdmin = false, want true")
	}
}
