package dashscope

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const ossScheme = "oss://"

// UploadFile puts a local file into the temporary storage DashScope offers to
// the given model and returns an oss:// reference usable in a request.
func (c *Client) UploadFile(ctx context.Context, model, filePath string) (string, error) {
	policy, err := c.getPolicy(ctx, model)
	if err != nil {
		return "", errors.Wrap(err, "get upload policy error")
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", errors.Wrap(err, "open file error")
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", errors.Wrap(err, "stat file error")
	}

	if limit := policy.Data.MaxFileSizeMB; limit > 0 && info.Size() > limit*1024*1024 {
		return "", errors.Errorf("file is %d bytes, upload limit is %d MB", info.Size(), limit)
	}

	key := path.Join(policy.Data.UploadDir, uuid.NewString()+"_"+filepath.Base(filePath))

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	fields := [][2]string{
		{"OSSAccessKeyId", policy.Data.OSSAccessKeyID},
		{"Signature", policy.Data.Signature},
		{"policy", policy.Data.Policy},
		{"x-oss-object-acl", policy.Data.XOSSObjectACL},
		{"x-oss-forbid-overwrite", policy.Data.XOSSForbidOverwrite},
		{"key", key},
		{"success_action_status", "200"},
	}
	for _, f := range fields {
		if err := form.WriteField(f[0], f[1]); err != nil {
			return "", errors.Wrap(err, "write form field error")
		}
	}

	// the file part has to be the last one
	part, err := form.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return "", errors.Wrap(err, "create form file error")
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", errors.Wrap(err, "copy file error")
	}
	if err := form.Close(); err != nil {
		return "", errors.Wrap(err, "close form error")
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, policy.Data.UploadHost, body)
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", form.FormDataContentType())

	if _, err := c.request(request); err != nil {
		return "", errors.Wrap(err, "upload request error")
	}

	return ossScheme + key, nil
}

func (c *Client) getPolicy(ctx context.Context, model string) (*uploadPolicy, error) {
	query := url.Values{
		"action": {"getPolicy"},
		"model":  {model},
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+uploadsPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Accept", "application/json")
	c.authorize(request)

	data, err := c.request(request)
	if err != nil {
		return nil, err
	}

	var policy uploadPolicy
	if err := json.Unmarshal(data, &policy); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal response")
	}

	if policy.Data.UploadHost == "" {
		return nil, errors.New("upload policy has no upload host")
	}

	return &policy, nil
}

func isRemote(uri string) bool {
	for _, prefix := range []string{ossScheme, "http://", "https://"} {
		if strings.HasPrefix(uri, prefix) {
			return true
		}
	}

	return false
}
