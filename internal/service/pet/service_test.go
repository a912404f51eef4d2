package pet

import (
	"context"
	"testing"
	"time"

	"petlify_server/internal/dao/mysql"
	"petlify_server/internal/dto/request"
	"petlify_server/internal/model"
	"petlify_server/pkg/errorx"
)

// fakeCache is an in-memory CacheService without TTL expiry.
type fakeCache struct {
	entries map[string]string
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	return f.entries[key], nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeCache) DeleteByPattern(ctx context.Context, pattern string) error {
	return nil
}

// fakePetRepo counts store reads so the cache-aside path is observable.
type fakePetRepo struct {
	pets      map[string]model.Pet
	created   []model.Pet
	findCalls int
	gotFilter mysql.PetListFilter
}

func (f *fakePetRepo) Create(pet *model.Pet) error {
	f.created = append(f.created, *pet)
	f.pets[pet.Uuid] = *pet
	return nil
}

func (f *fakePetRepo) FindByUuid(uuid string) (*model.Pet, error) {
	f.findCalls++
	pet, ok := f.pets[uuid]
	if !ok {
		return nil, errorx.New(errorx.CodeNotFound, "pet not found")
	}
	return &pet, nil
}

func (f *fakePetRepo) FindByUuids(uuids []string) ([]model.Pet, error) {
	var out []model.Pet
	for _, id := range uuids {
		if pet, ok := f.pets[id]; ok {
			out = append(out, pet)
		}
	}
	return out, nil
}

func (f *fakePetRepo) List(filter mysql.PetListFilter, page, pageSize int) ([]model.Pet, int64, error) {
	f.gotFilter = filter
	var out []model.Pet
	for _, pet := range f.pets {
		if filter.Status == "" || pet.Status == filter.Status {
			out = append(out, pet)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakePetRepo) Featured(limit int) ([]model.Pet, error) {
	var out []model.Pet
	for _, pet := range f.pets {
		if pet.Status == model.PetStatusApproved && len(out) < limit {
			out = append(out, pet)
		}
	}
	return out, nil
}

func (f *fakePetRepo) UpdateStatus(uuid, status string) (*model.Pet, error) {
	pet, ok := f.pets[uuid]
	if !ok {
		return nil, errorx.New(errorx.CodeNotFound, "pet not found")
	}
	pet.Status = status
	f.pets[uuid] = pet
	return &pet, nil
}

type fakeUserRepo struct {
	users map[string]model.UserInfo
}

func (f *fakeUserRepo) Create(user *model.UserInfo) error { return nil }

func (f *fakeUserRepo) FindByEmail(email string) (*model.UserInfo, error) {
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

func newTestPetService() (*petService, *fakePetRepo, *fakeCache) {
	petRepo := &fakePetRepo{pets: map[string]model.Pet{}}
	userRepo := &fakeUserRepo{users: map[string]model.UserInfo{
		"Uowner": {Uuid: "Uowner", Name: "Olive Owner", Email: "olive@example.com"},
	}}
	cache := newFakeCache()
	repos := &mysql.Repositories{User: userRepo, Pet: petRepo}
	return NewPetService(repos, cache), petRepo, cache
}

func TestSubmitPetStartsPending(t *testing.T) {
	svc, repo, _ := newTestPetService()

	rsp, err := svc.SubmitPet(model.Principal{UserID: "Uowner"}, request.SubmitPetRequest{
		Name:        "Rex",
		Species:     "dog",
		Breed:       "mix",
		Age:         3,
		Description: "good boy",
	}, []string{"http://localhost/static/uploads/rex.jpg"})
	if err != nil {
		t.Fatalf("SubmitPet: %v", err)
	}
	if rsp.Status != model.PetStatusPending {
		t.Errorf("status = %q, want pending", rsp.Status)
	}
	if len(rsp.Images) != 1 || rsp.Images[0] != "http://localhost/static/uploads/rex.jpg" {
		t.Errorf("images = %v", rsp.Images)
	}
	if len(repo.created) != 1 || repo.created[0].SubmittedBy != "Uowner" {
		t.Errorf("created = %+v", repo.created)
	}
}

func TestSubmitPetRequiresAuth(t *testing.T) {
	svc, _, _ := newTestPetService()
	_, err := svc.SubmitPet(model.Principal{}, request.SubmitPetRequest{}, nil)
	if errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Errorf("err = %v, want unauthorized", err)
	}
}

func TestListPetsDefaultsToApproved(t *testing.T) {
	svc, repo, _ := newTestPetService()
	repo.pets["Papproved"] = model.Pet{Uuid: "Papproved", Status: model.PetStatusApproved}
	repo.pets["Ppending"] = model.Pet{Uuid: "Ppending", Status: model.PetStatusPending}

	rsp, err := svc.ListPets(request.ListPetsRequest{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("ListPets: %v", err)
	}
	if repo.gotFilter.Status != model.PetStatusApproved {
		t.Errorf("filter status = %q, want approved", repo.gotFilter.Status)
	}
	if len(rsp.Pets) != 1 || rsp.Pets[0].PetId != "Papproved" {
		t.Errorf("pets = %+v", rsp.Pets)
	}
}

func TestGetPetByIDCacheAside(t *testing.T) {
	svc, repo, cache := newTestPetService()
	repo.pets["P1"] = model.Pet{Uuid: "P1", Name: "Rex", Status: model.PetStatusApproved}

	first, err := svc.GetPetByID("P1")
	if err != nil {
		t.Fatalf("GetPetByID: %v", err)
	}
	if repo.findCalls != 1 {
		t.Fatalf("store reads = %d, want 1", repo.findCalls)
	}
	if _, ok := cache.entries["pet:detail:P1"]; !ok {
		t.Fatal("detail entry not cached")
	}

	second, err := svc.GetPetByID("P1")
	if err != nil {
		t.Fatalf("second GetPetByID: %v", err)
	}
	if repo.findCalls != 1 {
		t.Errorf("store reads = %d after cache hit, want 1", repo.findCalls)
	}
	if second.PetId != first.PetId || second.Name != first.Name {
		t.Errorf("cached response differs: %+v vs %+v", second, first)
	}
}

func TestGetPetByIDNotFound(t *testing.T) {
	svc, _, _ := newTestPetService()
	_, err := svc.GetPetByID("ghost")
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestPendingSubmissionsAdminOnly(t *testing.T) {
	svc, repo, _ := newTestPetService()
	repo.pets["Ppending"] = model.Pet{Uuid: "Ppending", Status: model.PetStatusPending, SubmittedBy: "Uowner"}

	if _, err := svc.PendingSubmissions(model.Principal{UserID: "Uowner"}, 1, 20); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("non-admin err = %v, want forbidden", err)
	}

	rsp, err := svc.PendingSubmissions(model.Principal{UserID: "Uadmin", IsAdmin: true}, 1, 20)
	if err != nil {
		t.Fatalf("PendingSubmissions: %v", err)
	}
	if len(rsp.Pets) != 1 {
		t.Fatalf("pets = %+v", rsp.Pets)
	}
	if rsp.Pets[0].SubmittedBy == nil || rsp.Pets[0].SubmittedBy.Name != "Olive Owner" {
		t.Errorf("submitter = %+v, want Olive Owner", rsp.Pets[0].SubmittedBy)
	}
}

func TestUpdatePetStatusInvalidatesCache(t *testing.T) {
	svc, repo, cache := newTestPetService()
	repo.pets["P1"] = model.Pet{Uuid: "P1", Status: model.PetStatusPending}
	admin := model.Principal{UserID: "Uadmin", IsAdmin: true}

	if _, err := svc.UpdatePetStatus(model.Principal{UserID: "Uowner"}, request.UpdatePetStatusRequest{
		PetId: "P1", Status: model.PetStatusApproved,
	}); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("non-admin err = %v, want forbidden", err)
	}

	if _, err := svc.UpdatePetStatus(admin, request.UpdatePetStatusRequest{
		PetId: "P1", Status: "archived",
	}); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Errorf("invalid status err = %v, want invalid-param", err)
	}

	rsp, err := svc.UpdatePetStatus(admin, request.UpdatePetStatusRequest{
		PetId: "P1", Status: model.PetStatusApproved,
	})
	if err != nil {
		t.Fatalf("UpdatePetStatus: %v", err)
	}
	if rsp.Status != model.PetStatusApproved {
		t.Errorf("status = %q, want approved", rsp.Status)
	}

	wantDeleted := map[string]bool{"pet:detail:P1": false, "pet:featured": false}
	for _, key := range cache.deleted {
		if _, ok := wantDeleted[key]; ok {
			wantDeleted[key] = true
		}
	}
	for key, seen := range wantDeleted {
		if !seen {
			t.Errorf("cache key %q not invalidated", key)
		}
	}
}
