package imagegen

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTextToImageSendsPromptAndKey(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.FormValue("prompt"); got != "a red balloon" {
			t.Errorf("unexpected prompt %q", got)
		}
		w.Write([]byte("png-bytes"))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.baseURL = server.URL

	data, err := client.TextToImage(context.Background(), "a red balloon")
	if err != nil {
		t.Fatalf("text to image: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("unexpected response body %q", data)
	}
}

func TestTextToImageNon200(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":"out of api credits"}`))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.baseURL = server.URL

	if _, err := client.TextToImage(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}
