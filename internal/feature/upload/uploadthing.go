package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"
)

const defaultBaseURL = "https://api.uploadthing.com"

// Client UploadThing 托管文件服务的最小客户端：
// 先向 /v6/uploadFiles 要预签名表单，再把文件 multipart 推到给的地址，
// 拿回可公开访问的 URL。服务端不解析、不转码文件内容。
type Client struct {
	APIKey  string
	AppID   string
	BaseURL string
	HTTP    *http.Client
}

func NewClient(apiKey, appID string) *Client {
	return &Client{
		APIKey:  apiKey,
		AppID:   appID,
		BaseURL: defaultBaseURL,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Result 存库的就是 URL 原样
type Result struct {
	URL  string `json:"url"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

type presignReq struct {
	Files              []presignFile `json:"files"`
	ContentDisposition string        `json:"contentDisposition"`
}

type presignFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

type presigned struct {
	URL     string            `json:"url"`
	Fields  map[string]string `json:"fields"`
	Key     string            `json:"key"`
	FileURL string            `json:"fileUrl"`
}

type presignResp struct {
	Data []presigned `json:"data"`
}

func (c *Client) Upload(ctx context.Context, name, contentType string, data []byte) (*Result, error) {
	ps, err := c.presign(ctx, name, contentType, int64(len(data)))
	if err != nil {
		return nil, err
	}
	if err := c.push(ctx, ps.URL, ps.Fields, name, contentType, data); err != nil {
		return nil, err
	}
	return &Result{URL: ps.FileURL, Key: ps.Key, Name: name, Size: int64(len(data))}, nil
}

func (c *Client) presign(ctx context.Context, name, contentType string, size int64) (*presigned, error) {
	body, err := json.Marshal(presignReq{
		Files:              []presignFile{{Name: name, Size: size, Type: contentType}},
		ContentDisposition: "inline",
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v6/uploadFiles", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-uploadthing-api-key", c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("uploadthing presign: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("uploadthing presign: status %d: %s", resp.StatusCode, b)
	}
	var pr presignResp
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("uploadthing presign: %w", err)
	}
	if len(pr.Data) == 0 {
		return nil, fmt.Errorf("uploadthing presign: empty response")
	}
	return &pr.Data[0], nil
}

func (c *Client) push(ctx context.Context, url string, fields map[string]string, name, contentType string, data []byte) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return err
		}
	}
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	hdr.Set("Content-Type", contentType)
	fw, err := mw.CreatePart(hdr)
	if err != nil {
		return err
	}
	if _, err := fw.Write(data); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("uploadthing push: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("uploadthing push: status %d: %s", resp.StatusCode, b)
	}
	return nil
}
