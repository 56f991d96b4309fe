package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/storage"
	"github.com/portfolio/backend/internal/validation"
)

func strPtr(s string) *string { return &s }

func validProject() model.ProjectInput {
	return model.ProjectInput{
		Title:        "Portfolio",
		Description:  "Personal site",
		Technologies: []string{"Go"},
	}
}

func newProjectService() (*mockProjectRepository, *memStorage, ProjectService) {
	repo := newMockProjectRepository()
	store := newMemStorage()
	return repo, store, NewProjectService(repo, validation.New(), store)
}

func TestProjectService_Create_Validation(t *testing.T) {
	_, _, svc := newProjectService()

	in := validProject()
	in.Technologies = nil
	_, err := svc.Create(context.Background(), in)
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %v", err)
	}
	if verr.Message != validation.MsgProjectRequired {
		t.Errorf("expected %q, got %q", validation.MsgProjectRequired, verr.Message)
	}
}

func TestProjectService_Create_PlainImageURLKept(t *testing.T) {
	_, store, svc := newProjectService()

	in := validProject()
	in.ImageURL = strPtr("https://cdn.example.com/shot.png")
	p, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ImageURL == nil || *p.ImageURL != "https://cdn.example.com/shot.png" {
		t.Errorf("expected image url kept, got %v", p.ImageURL)
	}
	if len(store.objects) != 0 {
		t.Errorf("expected nothing stored, got %d objects", len(store.objects))
	}
}

func TestProjectService_Create_DataURLStored(t *testing.T) {
	_, store, svc := newProjectService()

	in := validProject()
	in.ImageURL = strPtr(storage.EncodeDataURL("image/png", []byte("png-bytes")))
	p, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ImageURL == nil {
		t.Fatal("expected image url")
	}
	key, ok := store.KeyFromURL(*p.ImageURL)
	if !ok {
		t.Fatalf("expected stored url, got %q", *p.ImageURL)
	}
	if !bytes.Equal(store.objects[key], []byte("png-bytes")) {
		t.Errorf("unexpected stored bytes %q", store.objects[key])
	}
}

func TestProjectService_Create_RejectsNonImageDataURL(t *testing.T) {
	_, _, svc := newProjectService()

	in := validProject()
	in.ImageURL = strPtr("data:image/tiff;base64,AAAA")
	_, err := svc.Create(context.Background(), in)
	var ierr *ImageError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *ImageError, got %v", err)
	}
	if !errors.Is(err, storage.ErrUnsupportedImage) {
		t.Errorf("expected ErrUnsupportedImage, got %v", err)
	}
}

func TestProjectService_Create_StoreFailureRemovesImage(t *testing.T) {
	repo, store, svc := newProjectService()
	repo.createErr = &repository.StoreError{Op: "create project", Err: errors.New("boom")}

	in := validProject()
	in.ImageURL = strPtr(storage.EncodeDataURL("image/png", []byte("x")))
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatal("expected error")
	}
	if len(store.objects) != 0 {
		t.Errorf("expected orphaned image removed, got %d objects", len(store.objects))
	}
}

func TestProjectService_CreateWithUpload(t *testing.T) {
	_, store, svc := newProjectService()

	p, err := svc.CreateWithUpload(context.Background(), validProject(), &ImageUpload{
		Data:        bytes.NewReader([]byte("jpeg")),
		Size:        4,
		ContentType: "image/jpeg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ImageURL == nil {
		t.Fatal("expected image url")
	}
	if len(store.objects) != 1 {
		t.Errorf("expected 1 stored object, got %d", len(store.objects))
	}
}

func TestProjectService_CreateWithUpload_TooLarge(t *testing.T) {
	_, _, svc := newProjectService()

	_, err := svc.CreateWithUpload(context.Background(), validProject(), &ImageUpload{
		Data:        bytes.NewReader(make([]byte, storage.MaxImageSize+1)),
		Size:        0, // client lied about the size
		ContentType: "image/png",
	})
	if !errors.Is(err, storage.ErrImageTooLarge) {
		t.Errorf("expected ErrImageTooLarge, got %v", err)
	}
}

func TestProjectService_Update_ReplacesImage(t *testing.T) {
	repo, store, svc := newProjectService()
	ctx := context.Background()

	in := validProject()
	in.ImageURL = strPtr(storage.EncodeDataURL("image/png", []byte("old")))
	p, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	oldKey, _ := store.KeyFromURL(*p.ImageURL)

	updated, err := svc.Update(ctx, p.ID, model.ProjectPatch{
		ImageURL: strPtr(storage.EncodeDataURL("image/webp", []byte("new"))),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, ok := store.objects[oldKey]; ok {
		t.Error("expected old image removed")
	}
	newKey, _ := store.KeyFromURL(*updated.ImageURL)
	if string(store.objects[newKey]) != "new" {
		t.Errorf("expected new image stored, got %q", store.objects[newKey])
	}
	if repo.projects[p.ID].Title != "Portfolio" {
		t.Errorf("expected title unchanged, got %q", repo.projects[p.ID].Title)
	}
}

func TestProjectService_Update_ClearsImage(t *testing.T) {
	_, store, svc := newProjectService()
	ctx := context.Background()

	in := validProject()
	in.ImageURL = strPtr(storage.EncodeDataURL("image/png", []byte("old")))
	p, _ := svc.Create(ctx, in)

	updated, err := svc.Update(ctx, p.ID, model.ProjectPatch{ImageURL: strPtr("")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ImageURL != nil {
		t.Errorf("expected image cleared, got %q", *updated.ImageURL)
	}
	if len(store.objects) != 0 {
		t.Errorf("expected stored image removed, got %d objects", len(store.objects))
	}
}

func TestProjectService_Update_NotFound(t *testing.T) {
	_, _, svc := newProjectService()
	_, err := svc.Update(context.Background(), 99, model.ProjectPatch{Title: strPtr("x")})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectService_Update_RejectsBlankTitle(t *testing.T) {
	_, _, svc := newProjectService()
	_, err := svc.Update(context.Background(), 1, model.ProjectPatch{Title: strPtr(" ")})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Errorf("expected *validation.Error, got %v", err)
	}
}

func TestProjectService_Delete_RemovesImageAndIsIdempotent(t *testing.T) {
	repo, store, svc := newProjectService()
	ctx := context.Background()

	in := validProject()
	in.ImageURL = strPtr(storage.EncodeDataURL("image/png", []byte("img")))
	p, _ := svc.Create(ctx, in)

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := repo.projects[p.ID]; ok {
		t.Error("expected project removed")
	}
	if len(store.objects) != 0 {
		t.Errorf("expected image removed, got %d objects", len(store.objects))
	}
	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Errorf("expected repeat delete to succeed, got %v", err)
	}
}
