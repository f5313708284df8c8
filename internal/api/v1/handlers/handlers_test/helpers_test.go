package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/jardin-inteligente-client/internal/api/v1/handlers"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
}

// send runs req through app and decodes the JSON body into a map (nil for empty bodies).
func send(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}
	var body map[string]interface{}
	if raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp.StatusCode, body
}

// sendList is send for endpoints that answer with a JSON array.
func sendList(t *testing.T, app *fiber.App, req *http.Request) (int, []map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body []map[string]interface{}
	if resp.StatusCode < http.StatusBadRequest {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	}
	return resp.StatusCode, body
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()
	var body io.Reader = http.NoBody
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, target, body)
	require.NoError(t, err)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

// multipartRequest builds a multipart POST. A nil image leaves the file part out.
func multipartRequest(t *testing.T, target string, fields map[string]string, image []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if image != nil {
		part, err := w.CreateFormFile("image", "photo.png")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, target, &buf)
	require.NoError(t, err)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}
