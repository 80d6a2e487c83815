package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// HTTPClient drives a gin router in-process.
type HTTPClient struct {
	router *gin.Engine
	token  string
}

func NewHTTPClient(router *gin.Engine, token string) *HTTPClient {
	return &HTTPClient{
		router: router,
		token:  token,
	}
}

type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

func (r *Response) DecodeJSON(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// Error returns the "error" field of a JSON error body.
func (r *Response) Error() string {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(r.Body, &body)
	return body.Error
}

func (c *HTTPClient) do(method, path, contentType string, body io.Reader) (*Response, error) {
	httpReq, err := http.NewRequest(method, path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, httpReq)

	bodyBytes, err := io.ReadAll(w.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %v", err)
	}
	return &Response{
		StatusCode: w.Code,
		Body:       bodyBytes,
		Headers:    w.Header(),
	}, nil
}

func (c *HTTPClient) doJSON(method, path string, body interface{}) (*Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	return c.do(method, path, "application/json", reader)
}

func (c *HTTPClient) GET(path string) (*Response, error) {
	return c.do(http.MethodGet, path, "", nil)
}

func (c *HTTPClient) POST(path string, body interface{}) (*Response, error) {
	return c.doJSON(http.MethodPost, path, body)
}

func (c *HTTPClient) PUT(path string, body interface{}) (*Response, error) {
	return c.doJSON(http.MethodPut, path, body)
}

func (c *HTTPClient) DELETE(path string) (*Response, error) {
	return c.do(http.MethodDelete, path, "", nil)
}

// POSTFile uploads content as a multipart file under field.
func (c *HTTPClient) POSTFile(path, field, filename string, content []byte) (*Response, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %v", err)
	}
	return c.do(http.MethodPost, path, writer.FormDataContentType(), body)
}
