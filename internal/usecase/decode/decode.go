// Package decode extracts the remark label from proxy links.
//
// Supported schemes: vmess, vless, trojan, ss and ssr. Decode never panics and
// never returns a plain error: every failure is a *domain.LinkError.
package decode

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/nodesort/internal/domain"
)

const (
	schemeVmess  = "vmess"
	schemeVless  = "vless"
	schemeTrojan = "trojan"
	schemeSS     = "ss"
	schemeSSR    = "ssr"
)

// vmess remark lookup order: ps first, then remark.
var vmessRemarkPaths = []string{"$.ps", "$.remark"}

type Decoder struct {
	ssDefaultRemark string
}

type Option func(*Decoder)

// WithSSDefaultRemark sets the remark assigned to ss:// links without a fragment.
func WithSSDefaultRemark(remark string) Option {
	return func(d *Decoder) {
		if strings.TrimSpace(remark) != "" {
			d.ssDefaultRemark = remark
		}
	}
}

func New(opts ...Option) *Decoder {
	d := &Decoder{ssDefaultRemark: domain.DefaultSSRemark}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode returns the remark carried by link.
func (d *Decoder) Decode(link string) (remark string, err error) {
	defer func() {
		if r := recover(); r != nil {
			remark = ""
			err = linkErr(domain.LinkDecodeFailed, fmt.Errorf("panic: %v", r))
		}
	}()

	scheme, rest, ok := strings.Cut(link, "://")
	if !ok {
		return "", linkErr(domain.LinkUnsupportedProtocol, nil)
	}

	switch scheme {
	case schemeVmess:
		remark, err = decodeVmess(rest)
	case schemeVless, schemeTrojan:
		remark, err = decodeFragment(rest, "")
	case schemeSS:
		remark, err = decodeFragment(rest, d.ssDefaultRemark)
	case schemeSSR:
		remark, err = decodeSSR(rest)
	default:
		return "", linkErr(domain.LinkUnsupportedProtocol, nil)
	}
	if err != nil {
		return "", err
	}

	if remark == "" {
		return "", linkErr(domain.LinkRemarkMissing, nil)
	}
	return remark, nil
}

// decodeVmess handles vmess://BASE64(JSON).
func decodeVmess(payload string) (string, error) {
	raw, err := decodeBase64(payload)
	if err != nil {
		return "", linkErr(domain.LinkDecodeFailed, err)
	}
	if !utf8.Valid(raw) {
		return "", linkErr(domain.LinkDecodeFailed, errors.New("payload is not valid UTF-8"))
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", linkErr(domain.LinkDecodeFailed, err)
	}
	if _, ok := doc.(map[string]any); !ok {
		return "", linkErr(domain.LinkDecodeFailed, errors.New("payload is not a JSON object"))
	}

	found := false
	for _, path := range vmessRemarkPaths {
		val, err := jsonpath.Get(path, doc)
		if err != nil {
			// unknown key
			continue
		}
		found = true
		if s := toRemark(val); s != "" {
			return s, nil
		}
	}
	if !found {
		return "", linkErr(domain.LinkDecodeFailed, errors.New("vmess config has neither ps nor remark"))
	}
	return "", nil
}

// decodeFragment handles vless/trojan/ss links whose remark is the URL fragment.
// When ssDefault is set, a fragment-less payload that decodes as base64 gets that remark.
func decodeFragment(rest, ssDefault string) (string, error) {
	if _, frag, ok := strings.Cut(rest, "#"); ok {
		return unescapeComponent(frag)
	}

	if ssDefault != "" && strings.TrimSpace(rest) != "" {
		if _, err := decodeBase64(rest); err == nil {
			return ssDefault, nil
		}
	}
	return "", linkErr(domain.LinkRemarkMissing, nil)
}

// decodeSSR handles ssr://BASE64(host:port:...:/?remarks=BASE64&...).
func decodeSSR(payload string) (string, error) {
	raw, err := decodeBase64(payload)
	if err != nil {
		return "", linkErr(domain.LinkDecodeFailed, err)
	}

	_, query, _ := strings.Cut(string(raw), "/?")
	params, err := url.ParseQuery(query)
	if err != nil {
		return "", linkErr(domain.LinkDecodeFailed, err)
	}
	if !params.Has("remarks") {
		return "", linkErr(domain.LinkRemarkMissing, nil)
	}

	remark, err := decodeBase64(params.Get("remarks"))
	if err != nil {
		return "", linkErr(domain.LinkDecodeFailed, err)
	}
	if !utf8.Valid(remark) {
		return "", linkErr(domain.LinkDecodeFailed, errors.New("remarks is not valid UTF-8"))
	}
	return string(remark), nil
}

// unescapeComponent percent-decodes a URI component. '+' stays literal.
func unescapeComponent(s string) (string, error) {
	out, err := url.PathUnescape(s)
	if err != nil {
		return "", linkErr(domain.LinkDecodeFailed, err)
	}
	if !utf8.ValidString(out) {
		return "", linkErr(domain.LinkDecodeFailed, errors.New("fragment is not valid UTF-8"))
	}
	return out, nil
}

// decodeBase64 accepts standard and URL-safe alphabets, with or without padding.
func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}

	var firstErr error
	for _, enc := range encodings {
		b, err := enc.DecodeString(s)
		if err == nil {
			return b, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

func toRemark(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64, bool:
		return fmt.Sprint(t)
	default:
		return ""
	}
}

func linkErr(kind domain.LinkErrorKind, err error) *domain.LinkError {
	return &domain.LinkError{Kind: kind, Err: err}
}
