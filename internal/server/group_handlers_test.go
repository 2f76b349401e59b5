package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlisaFetisova-1/hw05-final/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupHandlers(t *testing.T) {
	t.Parallel()

	s, app, db := newTestServer(t)
	_, userToken := createUser(t, s, db, "regular", false)
	_, adminToken := createUser(t, s, db, "admin", true)

	t.Run("create requires admin", func(t *testing.T) {
		resp := postJSONAuth(t, app, "/api/admin/groups", userToken, map[string]string{
			"title": "Cats", "slug": "cats",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("bad slug rejected", func(t *testing.T) {
		resp := postJSONAuth(t, app, "/api/admin/groups", adminToken, map[string]string{
			"title": "Cats", "slug": "Cats & Dogs",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	var created models.Group
	t.Run("admin creates", func(t *testing.T) {
		resp := postJSONAuth(t, app, "/api/admin/groups", adminToken, map[string]string{
			"title": "Cats", "slug": "cats", "description": "cat pictures",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		assert.Equal(t, "cats", created.Slug)
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		resp := postJSONAuth(t, app, "/api/admin/groups", adminToken, map[string]string{
			"title": "More cats", "slug": "cats",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("public read by slug", func(t *testing.T) {
		var group models.Group
		status := getJSON(t, app, "/api/groups/cats", "", &group)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Cats", group.Title)
	})

	t.Run("public list", func(t *testing.T) {
		var body struct {
			Groups []models.Group `json:"groups"`
		}
		status := getJSON(t, app, "/api/groups", "", &body)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body.Groups, 1)
	})

	t.Run("admin updates title, slug stays", func(t *testing.T) {
		raw, err := json.Marshal(map[string]string{"title": "Cat corner"})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/admin/groups/%d", created.ID), bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var updated models.Group
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
		assert.Equal(t, "Cat corner", updated.Title)
		assert.Equal(t, "cats", updated.Slug)
	})

	t.Run("delete keeps posts without a group", func(t *testing.T) {
		author, _ := createUser(t, s, db, "author", false)
		post := &models.Post{Text: "in the group", AuthorID: author.ID, GroupID: &created.ID}
		require.NoError(t, db.Create(post).Error)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/admin/groups/%d", created.ID), nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		var kept models.Post
		require.NoError(t, db.First(&kept, post.ID).Error)
		assert.Nil(t, kept.GroupID)
	})
}
