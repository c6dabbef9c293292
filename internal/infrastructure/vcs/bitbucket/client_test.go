package bitbucket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bitbucketRef() models.ParsedReference {
	return models.ParsedReference{
		Provider: models.ProviderBitbucket,
		Owner:    "my-workspace",
		Repo:     "my-repo",
		PRNumber: "7",
	}
}

func TestBitbucketClient_FetchDetails(t *testing.T) {
	t.Run("should map fields including the nested description", func(t *testing.T) {
		var gotPath string
		var gotUser, gotPass string
		var gotAuth bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotUser, gotPass, gotAuth = r.BasicAuth()
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{
				"title": "Refactor billing",
				"description": {"raw": "Splits the invoice builder"},
				"author": {"display_name": "Jane Dev"},
				"state": "OPEN",
				"created_on": "2024-06-10T12:00:00+00:00",
				"updated_on": "2024-06-11T13:00:00+00:00",
				"destination": {"branch": {"name": "develop"}},
				"source": {"branch": {"name": "billing-refactor"}}
			}`))
		}))
		defer server.Close()

		client := NewBitbucketClientWithBaseURL(httpclient.NewDefaultHTTPClient(), "jane", "app-pass", server.URL)

		details, err := client.FetchDetails(context.Background(), bitbucketRef())

		require.NoError(t, err)
		assert.Equal(t, "/2.0/repositories/my-workspace/my-repo/pullrequests/7", gotPath)
		require.True(t, gotAuth)
		assert.Equal(t, "jane", gotUser)
		assert.Equal(t, "app-pass", gotPass)
		assert.Equal(t, "Refactor billing", details.Title)
		assert.Equal(t, "Splits the invoice builder", details.Description)
		assert.Equal(t, "Jane Dev", details.Author)
		assert.Equal(t, "OPEN", details.State)
		assert.Equal(t, "develop", details.BaseBranch)
		assert.Equal(t, "billing-refactor", details.HeadBranch)
		assert.Equal(t, models.ProviderBitbucket, details.Provider)
	})

	t.Run("should skip basic auth when credentials are partial", func(t *testing.T) {
		var gotAuth bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _, gotAuth = r.BasicAuth()
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"title": "x"}`))
		}))
		defer server.Close()

		client := NewBitbucketClientWithBaseURL(httpclient.NewDefaultHTTPClient(), "jane", "", server.URL)

		_, err := client.FetchDetails(context.Background(), bitbucketRef())

		require.NoError(t, err)
		assert.False(t, gotAuth)
	})

	t.Run("should return api error on non 200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := NewBitbucketClientWithBaseURL(httpclient.NewDefaultHTTPClient(), "", "", server.URL)

		_, err := client.FetchDetails(context.Background(), bitbucketRef())

		require.Error(t, err)
		assert.Equal(t, "Failed to fetch PR details: 401", err.Error())
	})

	t.Run("should reject incomplete reference", func(t *testing.T) {
		client := NewBitbucketClientWithBaseURL(httpclient.NewDefaultHTTPClient(), "", "", "http://unused")

		_, err := client.FetchDetails(context.Background(), models.ParsedReference{Provider: models.ProviderBitbucket})

		require.Error(t, err)
		assert.Equal(t, "Invalid Bitbucket PR URL format", err.Error())
	})
}

func TestBitbucketClient_FetchDiff(t *testing.T) {
	t.Run("should return the raw diff body", func(t *testing.T) {
		var gotPath string
		diff := "diff --git a/invoice.go b/invoice.go\n+total := sum(items)\n"
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(diff))
		}))
		defer server.Close()

		client := NewBitbucketClientWithBaseURL(httpclient.NewDefaultHTTPClient(), "", "", server.URL)

		got, err := client.FetchDiff(context.Background(), bitbucketRef())

		require.NoError(t, err)
		assert.Equal(t, "/2.0/repositories/my-workspace/my-repo/pullrequests/7/diff", gotPath)
		assert.Equal(t, diff, got)
	})

	t.Run("should return error string naming the status on non 200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewBitbucketClientWithBaseURL(httpclient.NewDefaultHTTPClient(), "", "", server.URL)

		_, err := client.FetchDiff(context.Background(), bitbucketRef())

		require.Error(t, err)
		assert.Equal(t, "Error: Failed to fetch diff - 404", err.Error())
	})

	t.Run("should reject incomplete reference", func(t *testing.T) {
		client := NewBitbucketClientWithBaseURL(httpclient.NewDefaultHTTPClient(), "", "", "http://unused")

		_, err := client.FetchDiff(context.Background(), models.ParsedReference{Provider: models.ProviderBitbucket})

		require.Error(t, err)
		assert.Equal(t, "Error: Invalid Bitbucket PR URL format", err.Error())
	})
}
