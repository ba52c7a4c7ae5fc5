package upload

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUploadPresignAndPush(t *testing.T) {
	var gotKeyHeader string
	var pushed []byte
	var pushedFields map[string]string

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/v6/uploadFiles", func(w http.ResponseWriter, r *http.Request) {
		gotKeyHeader = r.Header.Get("x-uploadthing-api-key")
		var req presignReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode presign req: %v", err)
		}
		if len(req.Files) != 1 || req.Files[0].Name != "calm.mp3" || req.Files[0].Type != "audio/mpeg" {
			t.Errorf("presign files = %+v", req.Files)
		}
		_ = json.NewEncoder(w).Encode(presignResp{Data: []presigned{{
			URL:     srv.URL + "/push",
			Fields:  map[string]string{"policy": "p1", "signature": "s1"},
			Key:     "key1",
			FileURL: "https://utfs.io/f/key1",
		}}})
	})
	mux.HandleFunc("/push", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		pushedFields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			if len(v) > 0 {
				pushedFields[k] = v[0]
			}
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			return
		}
		defer f.Close()
		if hdr.Filename != "calm.mp3" || hdr.Header.Get("Content-Type") != "audio/mpeg" {
			t.Errorf("file part = %q %q", hdr.Filename, hdr.Header.Get("Content-Type"))
		}
		pushed, _ = io.ReadAll(f)
		w.WriteHeader(http.StatusNoContent)
	})

	c := NewClient("sk_test_123", "app1")
	c.BaseURL = srv.URL

	res, err := c.Upload(context.Background(), "calm.mp3", "audio/mpeg", []byte("mp3bytes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if gotKeyHeader != "sk_test_123" {
		t.Fatalf("api key header = %q", gotKeyHeader)
	}
	if pushedFields["policy"] != "p1" || pushedFields["signature"] != "s1" {
		t.Fatalf("presign fields not forwarded: %v", pushedFields)
	}
	if string(pushed) != "mp3bytes" {
		t.Fatalf("pushed %q", pushed)
	}
	if res.URL != "https://utfs.io/f/key1" || res.Key != "key1" || res.Size != 8 {
		t.Fatalf("result = %+v", res)
	}
}

func TestUploadPresignRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("bad", "app1")
	c.BaseURL = srv.URL

	if _, err := c.Upload(context.Background(), "a.png", "image/png", []byte("x")); err == nil {
		t.Fatal("expected error on rejected presign")
	}
}
