package dashscope

import (
	"encoding/json"
	"strings"
)

type Content struct {
	Text  string `json:"text,omitempty"`
	Audio string `json:"audio,omitempty"`
}

type Message struct {
	Role    string    `json:"role"`
	Content []Content `json:"content"`
}

type MultiModalRequest struct {
	Model string `json:"model"`
	Input struct {
		Messages []Message `json:"messages"`
	} `json:"input"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

type MultiModalResponse struct {
	RequestID string `json:"request_id"`
	Output    struct {
		Choices []Choice `json:"choices"`
	} `json:"output"`
	Usage Usage `json:"usage"`
}

type Choice struct {
	FinishReason string       `json:"finish_reason"`
	Message      ReplyMessage `json:"message"`
}

type ReplyMessage struct {
	Role    string       `json:"role"`
	Content ReplyContent `json:"content"`
}

// ReplyContent is either a plain string or a list of content parts on the wire.
type ReplyContent []Content

func (rc *ReplyContent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*rc = ReplyContent{{Text: s}}
		return nil
	}

	var parts []Content
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}

	*rc = parts
	return nil
}

// Text joins all text parts.
func (rc ReplyContent) Text() string {
	b := strings.Builder{}
	for _, c := range rc {
		b.WriteString(c.Text)
	}

	return b.String()
}

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	AudioTokens  int `json:"audio_tokens"`
}

type uploadPolicy struct {
	RequestID string `json:"request_id"`
	Data      struct {
		Policy              string `json:"policy"`
		Signature           string `json:"signature"`
		UploadDir           string `json:"upload_dir"`
		UploadHost          string `json:"upload_host"`
		ExpireInSeconds     int    `json:"expire_in_seconds"`
		MaxFileSizeMB       int64  `json:"max_file_size_mb"`
		CapacityLimitMB     int64  `json:"capacity_limit_mb"`
		OSSAccessKeyID      string `json:"oss_access_key_id"`
		XOSSObjectACL       string `json:"x_oss_object_acl"`
		XOSSForbidOverwrite string `json:"x_oss_forbid_overwrite"`
	} `json:"data"`
}
