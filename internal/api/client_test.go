package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelnest/internal/domain"
)

// fakeAPI emulates the server side of the surface for client tests. It only
// understands the paths the shared operation table produces.
func fakeAPI(t *testing.T) (*httptest.Server, *string) {
	t.Helper()
	var lastCategory string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/packages", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			lastCategory = r.URL.Query().Get("category")
			_ = json.NewEncoder(w).Encode([]domain.Package{
				{ID: 1, Title: "Goa Beach Vibes", Category: domain.CategoryDomestic, Price: 18000, Image: "i", Description: "d", Location: "Goa, India"},
				{ID: 2, Title: "Thailand Getaway", Category: domain.CategoryInternational, Price: 45000, Image: "i", Description: "d", Location: "Thailand"},
			})
		case http.MethodPost:
			var in domain.PackageInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(domain.Package{
				ID: 9, Title: in.Title, Description: in.Description, Price: in.Price,
				Image: in.Image, Category: in.Category, Location: in.Location, Featured: in.Featured,
			})
		}
	})
	mux.HandleFunc("/api/packages/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		id := strings.TrimPrefix(r.URL.Path, "/api/packages/")
		if id != "7" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Package not found"})
			return
		}
		_ = json.NewEncoder(w).Encode(domain.Package{ID: 7, Title: "Dubai Luxury", Category: domain.CategoryInternational, Price: 60000, Image: "i", Description: "d", Location: "Dubai, UAE"})
	})
	mux.HandleFunc("/api/inquiries", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		var in domain.InquiryInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if len(in.Phone) < 10 {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"message": "phone must contain at least 10 digits",
				"field":   "phone",
			})
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Inquiry{
			ID: 3, PackageID: in.PackageID, Name: in.Name, Email: in.Email, Phone: in.Phone,
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &lastCategory
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient("  ")
	require.Error(t, err)
}

func TestListPackages(t *testing.T) {
	srv, lastCategory := fakeAPI(t)
	cl, err := NewClient(srv.URL)
	require.NoError(t, err)

	pkgs, err := cl.ListPackages(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, pkgs, 2)
	assert.Empty(t, *lastCategory)

	_, err = cl.ListPackages(context.Background(), domain.CategoryInternational)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryInternational, *lastCategory)
}

func TestGetPackage(t *testing.T) {
	srv, _ := fakeAPI(t)
	cl, err := NewClient(srv.URL)
	require.NoError(t, err)

	p, err := cl.GetPackage(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 7, p.ID)
	assert.Equal(t, "Dubai Luxury", p.Title)
}

func TestGetPackageNotFoundIsEmptyResult(t *testing.T) {
	srv, _ := fakeAPI(t)
	cl, err := NewClient(srv.URL)
	require.NoError(t, err)

	p, err := cl.GetPackage(context.Background(), 999999)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestCreatePackage(t *testing.T) {
	srv, _ := fakeAPI(t)
	cl, err := NewClient(srv.URL)
	require.NoError(t, err)

	created, err := cl.CreatePackage(context.Background(), domain.PackageInput{
		Title: "Goa Beach Vibes", Description: "d", Price: 18000,
		Image: "i", Category: domain.CategoryDomestic, Location: "Goa, India", Featured: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 9, created.ID)
	assert.Equal(t, "Goa Beach Vibes", created.Title)
	assert.True(t, created.Featured)
}

func TestCreateInquiry(t *testing.T) {
	srv, _ := fakeAPI(t)
	cl, err := NewClient(srv.URL)
	require.NoError(t, err)

	inq, err := cl.CreateInquiry(context.Background(), domain.InquiryInput{
		PackageID: 7, Name: "Asha Verma", Email: "asha@example.test", Phone: "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, inq.ID)
	assert.Equal(t, 7, inq.PackageID)
}

func TestCreateInquiryValidationError(t *testing.T) {
	srv, _ := fakeAPI(t)
	cl, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = cl.CreateInquiry(context.Background(), domain.InquiryInput{
		PackageID: 7, Name: "Asha Verma", Email: "asha@example.test", Phone: "123",
	})
	require.Error(t, err)
	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "phone", apiErr.Field)
	assert.Contains(t, apiErr.Error(), "phone")
}
