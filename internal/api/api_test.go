package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPath(t *testing.T) {
	got := BuildPath(Packages.Get.Path, map[string]string{"id": "42"})
	assert.Equal(t, "/api/packages/42", got)
}

func TestBuildPathNoParams(t *testing.T) {
	assert.Equal(t, "/api/packages", BuildPath(Packages.List.Path, nil))
}

func TestBuildPathIgnoresUnknownParams(t *testing.T) {
	got := BuildPath(Packages.Get.Path, map[string]string{"id": "7", "slug": "goa"})
	assert.Equal(t, "/api/packages/7", got)
}

func TestBuildPathLeavesUnmatchedPlaceholders(t *testing.T) {
	got := BuildPath("/api/packages/:id/photos/:photo", map[string]string{"id": "7"})
	assert.Equal(t, "/api/packages/7/photos/:photo", got)
}

func TestSurfaceShape(t *testing.T) {
	assert.Equal(t, http.MethodGet, Packages.List.Method)
	assert.Equal(t, http.MethodPost, Packages.Create.Method)
	// list and create share one path, split by method
	assert.Equal(t, Packages.List.Path, Packages.Create.Path)
	assert.Equal(t, http.MethodPost, Inquiries.Create.Method)
	assert.Equal(t, "/api/inquiries", Inquiries.Create.Path)
}
