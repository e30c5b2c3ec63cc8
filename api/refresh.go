package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

var (
	NoRefreshTokenErr = errors.New("no refresh token")
	RefreshFailedErr  = errors.New("refresh failed")
)

// LogoutNotifyTimeout bounds the best-effort logout notification inside
// Teardown, so a slow backend cannot delay the caller seeing the
// session-expired failure. Overridable in tests.
var LogoutNotifyTimeout = 3 * time.Second

// refreshResponse is the expected shape of a successful refresh call. The
// backend may return more fields; only access matters here.
type refreshResponse struct {
	Access string `json:"access"`
}

func (c *Client) refreshAccessToken(ctx context.Context) error {
	if c.refreshGroup == nil {
		return c.runRefresh(ctx)
	}
	_, err, shared := c.refreshGroup.Do("refresh", func() (any, error) {
		return nil, c.runRefresh(ctx)
	})
	if shared {
		c.logger.Debug().Msg("refresh shared with a concurrent caller")
	}
	return err
}

// runRefresh performs one refresh cycle: exchange the stored refresh token
// for a new access token and mirror it into every session backing.
func (c *Client) runRefresh(ctx context.Context) error {
	refresh := c.store.Refresh()
	if refresh == "" {
		return NoRefreshTokenErr
	}

	payload, err := json.Marshal(map[string]string{"refresh": refresh})
	if err != nil {
		return errors.Wrap(err, "[Client.runRefresh] marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.refreshPath, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "[Client.runRefresh] build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "[Client.runRefresh] execute")
	}
	defer resp.Body.Close()

	var rr refreshResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&rr)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || decodeErr != nil || rr.Access == "" {
		return RefreshFailedErr
	}

	if err := c.store.SetAccess(rr.Access); err != nil {
		return errors.Wrap(err, "[Client.runRefresh] persist access token")
	}
	return nil
}

// Teardown ends the local session. A best-effort logout notification is
// sent with the refresh token before clearing; its failure is logged and
// otherwise ignored, and it runs under its own deadline detached from the
// caller's context. Safe to call on an already cleared session.
func (c *Client) Teardown(ctx context.Context) error {
	if refresh := c.store.Refresh(); refresh != "" {
		nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), LogoutNotifyTimeout)
		c.notifyLogout(nctx, refresh)
		cancel()
	}
	if err := c.store.Clear(); err != nil {
		return errors.Wrap(err, "[Client.Teardown] clear session")
	}
	return nil
}

func (c *Client) notifyLogout(ctx context.Context, refresh string) {
	payload, err := json.Marshal(map[string]string{"refresh": refresh})
	if err != nil {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.logoutPath, bytes.NewReader(payload))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("logout notification failed")
		return
	}
	resp.Body.Close()
}
