// Package tmt wraps the Tencent Cloud Machine Translation SDK behind the
// two calls txcv needs: single-shot text translation and language detection.
// Request signing and transport are handled entirely by the SDK.
package tmt

import (
	"context"
	"errors"
	"fmt"

	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	sdkerrors "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/errors"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	sdk "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/tmt/v20180321"
	"golang.org/x/time/rate"

	"github.com/txcv/cli/internal/auth"
)

// DefaultEndpoint is the TMT API host.
const DefaultEndpoint = "tmt.tencentcloudapi.com"

// requestsPerSecond matches the TMT service quota of 5 requests per second.
const requestsPerSecond = 5

// errLanguageRecognition is the TMT error code returned when the service
// cannot identify the language of the input text.
const errLanguageRecognition = "FailedOperation.LanguageRecognitionErr"

// api is the slice of the SDK client txcv calls, extracted so tests can
// substitute a fake.
type api interface {
	TextTranslateWithContext(ctx context.Context, req *sdk.TextTranslateRequest) (*sdk.TextTranslateResponse, error)
	LanguageDetectWithContext(ctx context.Context, req *sdk.LanguageDetectRequest) (*sdk.LanguageDetectResponse, error)
}

// Client is a rate-limited TMT API client.
type Client struct {
	api     api
	limiter *rate.Limiter
}

// NewClient builds a Client from the stored credential triple.
func NewClient(creds auth.Credentials) (*Client, error) {
	credential := common.NewCredential(creds.SecretID, creds.SecretKey)
	cpf := profile.NewClientProfile()
	cpf.HttpProfile.Endpoint = DefaultEndpoint

	sdkClient, err := sdk.NewClient(credential, creds.Region, cpf)
	if err != nil {
		return nil, fmt.Errorf("failed to create TMT client: %w", err)
	}

	return &Client{
		api:     sdkClient,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}, nil
}

// Translate translates text from source to target, both given as TMT
// language codes.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req := sdk.NewTextTranslateRequest()
	req.SourceText = common.StringPtr(text)
	req.Source = common.StringPtr(source)
	req.Target = common.StringPtr(target)
	req.ProjectId = common.Int64Ptr(0)

	resp, err := c.api.TextTranslateWithContext(ctx, req)
	if err != nil {
		return "", wrapErr("translate", err)
	}
	if resp.Response == nil || resp.Response.TargetText == nil {
		return "", fmt.Errorf("translate: empty response from TMT")
	}
	return *resp.Response.TargetText, nil
}

// Detect identifies the language of text and returns its TMT code. Input the
// service cannot recognise is assumed to be Chinese.
func (c *Client) Detect(ctx context.Context, text string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req := sdk.NewLanguageDetectRequest()
	req.Text = common.StringPtr(text)
	req.ProjectId = common.Int64Ptr(0)

	resp, err := c.api.LanguageDetectWithContext(ctx, req)
	if err != nil {
		var sdkErr *sdkerrors.TencentCloudSDKError
		if errors.As(err, &sdkErr) && sdkErr.Code == errLanguageRecognition {
			return "zh", nil
		}
		return "", wrapErr("detect language", err)
	}
	if resp.Response == nil || resp.Response.Lang == nil {
		return "", fmt.Errorf("detect language: empty response from TMT")
	}
	return *resp.Response.Lang, nil
}

// wrapErr keeps the TMT error code visible for API rejections and tags
// transport failures with the operation that hit them.
func wrapErr(op string, err error) error {
	var sdkErr *sdkerrors.TencentCloudSDKError
	if errors.As(err, &sdkErr) {
		return fmt.Errorf("%s: TMT API error %s: %s", op, sdkErr.Code, sdkErr.Message)
	}
	return fmt.Errorf("%s: %w", op, err)
}
