package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"formhub/internal/dto"
	"formhub/internal/service"
)

// stubFormService returns canned documents keyed by page slug; everything
// else is unimplemented because these tests only exercise the fetch paths.
type stubFormService struct {
	docs map[string]*dto.FormDocument
}

func (s *stubFormService) Create(req dto.FormCreateRequest) (uint, error) { return 1, nil }

func (s *stubFormService) GetByPageID(pageID string) (*dto.FormDocument, error) {
	doc, ok := s.docs[pageID]
	if !ok {
		return nil, service.ErrNotFound
	}
	return doc, nil
}

func (s *stubFormService) GetByCreator(creatorID uuid.UUID) ([]dto.FormResponse, error) {
	return nil, service.ErrNotFound
}
func (s *stubFormService) Latest() ([]dto.FormSummary, error)        { return []dto.FormSummary{}, nil }
func (s *stubFormService) Popular() ([]dto.PopularFormSummary, error) {
	return []dto.PopularFormSummary{}, nil
}
func (s *stubFormService) Search(term string) ([]dto.FormSearchResult, error) {
	return nil, service.ErrNotFound
}
func (s *stubFormService) Delete(formID uint) error { return nil }

type stubEditorService struct{}

func (s *stubEditorService) Reconcile(formID uint, req dto.FormEditRequest) (uint, error) {
	return formID, nil
}

func newFormRouter(forms service.FormService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewFormController(forms, &stubEditorService{})
	r.GET("/forms/slug/:page_id", ctrl.GetByPageID)
	r.GET("/forms/search", ctrl.Search)
	return r
}

func TestGetByPageIDReturnsDocument(t *testing.T) {
	router := newFormRouter(&stubFormService{docs: map[string]*dto.FormDocument{
		"customer-survey": {FormID: 7, PageID: "customer-survey", Title: "Customer Survey"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/forms/slug/customer-survey", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var doc dto.FormDocument
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if doc.FormID != 7 || doc.PageID != "customer-survey" {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestGetByPageIDUnknownSlugIs404(t *testing.T) {
	router := newFormRouter(&stubFormService{docs: map[string]*dto.FormDocument{}})

	req := httptest.NewRequest(http.MethodGet, "/forms/slug/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	router := newFormRouter(&stubFormService{})

	req := httptest.NewRequest(http.MethodGet, "/forms/search", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
