package alertmail

import (
	"bytes"
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"
)

// htmlBody digs the text/html part out of a raw RFC822 message. Job-alert
// mails are always multipart with an HTML alternative; plain text parts are
// useless for card parsing, so only HTML is returned.
func htmlBody(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return ""
	}
	body, _ := io.ReadAll(io.LimitReader(msg.Body, 6<<20))
	return findHTMLPart(msg.Header.Get("Content-Type"), msg.Header.Get("Content-Transfer-Encoding"), body)
}

func findHTMLPart(contentType, cte string, body []byte) string {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	mediaType = strings.ToLower(mediaType)

	if strings.HasPrefix(mediaType, "multipart/") {
		boundary := params["boundary"]
		if boundary == "" {
			return ""
		}
		mr := multipart.NewReader(bytes.NewReader(body), boundary)
		var best string
		for {
			p, err := mr.NextPart()
			if err != nil {
				break
			}
			b, _ := io.ReadAll(io.LimitReader(p, 6<<20))
			h := findHTMLPart(p.Header.Get("Content-Type"), p.Header.Get("Content-Transfer-Encoding"), b)
			if len(h) > len(best) {
				best = h
			}
		}
		return best
	}

	if !strings.HasPrefix(mediaType, "text/html") {
		return ""
	}
	return string(decodeTransferEncoding(body, strings.ToLower(strings.TrimSpace(cte))))
}

func decodeTransferEncoding(b []byte, cte string) []byte {
	switch cte {
	case "base64":
		dec := base64.NewDecoder(base64.StdEncoding, bytes.NewReader(b))
		out, _ := io.ReadAll(io.LimitReader(dec, 6<<20))
		return out
	case "quoted-printable":
		dec := quotedprintable.NewReader(bytes.NewReader(b))
		out, _ := io.ReadAll(io.LimitReader(dec, 6<<20))
		return out
	default:
		return b
	}
}

func decodeRFC2047(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	dec := new(mime.WordDecoder)
	out, err := dec.DecodeHeader(s)
	if err != nil {
		return s
	}
	return out
}
