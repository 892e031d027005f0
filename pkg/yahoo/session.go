package yahoo

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// session is the cookie and crumb pair which the quote endpoint expects.
// A new session is obtained for each call and never shared.
type session struct {
	cookie string
	crumb  string
}

// crumb captures the plain text body of the getcrumb endpoint
type crumb string

// Ensure crumb implements client.Unmarshaler
var _ client.Unmarshaler = (*crumb)(nil)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// session performs the cookie and crumb handshake. Failures are not
// reported: the returned session is then empty or has no crumb.
func (c *Client) session(ctx context.Context) session {
	var s session

	// Obtain the cookie
	if cookie, err := c.cookie(ctx); err != nil || cookie == "" {
		return s
	} else {
		s.cookie = cookie
	}

	// Exchange the cookie for a crumb
	var response crumb
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("v1", "test", "getcrumb"), client.OptReqHeader("Cookie", s.cookie)); err == nil {
		s.crumb = string(response)
	}

	// Return the session
	return s
}

// cookie requests the cookie endpoint and returns the cookies it sets, in
// Cookie header form. The endpoint answers with an error status, so the
// request bypasses the response handling of the client and the status is
// ignored. The timeout, tracing and user agent of the client still apply.
func (c *Client) cookie(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cookieEndpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.Client.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	cookies := make([]string, 0, len(resp.Cookies()))
	for _, cookie := range resp.Cookies() {
		cookies = append(cookies, cookie.Name+"="+cookie.Value)
	}
	return strings.Join(cookies, "; "), nil
}

// opts appends the session cookie to request options
func (s session) opts(opts ...client.RequestOpt) []client.RequestOpt {
	if s.cookie != "" {
		opts = append(opts, client.OptReqHeader("Cookie", s.cookie))
	}
	return opts
}

///////////////////////////////////////////////////////////////////////////////
// UNMARSHALER

func (c *crumb) Unmarshal(header http.Header, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	// A crumb is a short token, anything else is an error page
	value := strings.TrimSpace(string(data))
	if value == "" || strings.ContainsAny(value, "<{ ") {
		return errors.New("invalid crumb")
	}

	*c = crumb(value)
	return nil
}
