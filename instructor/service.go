package instructor

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/black301/quiz-system-client/api"
)

// Service exposes the instructor-facing endpoints as typed calls. Every call
// goes through the authenticated API client, so token refresh and session
// teardown stay transparent. API failures are returned unwrapped: their
// message text is the contract the calling UI displays.
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) (*Service, error) {
	if client == nil {
		return nil, errors.New("[instructor.NewService] client is required")
	}
	return &Service{client: client}, nil
}

func (s *Service) get(ctx context.Context, endpoint string, out any) error {
	return s.client.RequestInto(ctx, endpoint, nil, out)
}

func (s *Service) send(ctx context.Context, method, endpoint string, payload, out any) error {
	opts := &api.RequestOptions{Method: method}
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrapf(err, "[Service.send] marshal %s %s", method, endpoint)
		}
		opts.Body = body
	}
	return s.client.RequestInto(ctx, endpoint, opts, out)
}

func (s *Service) delete(ctx context.Context, endpoint string) error {
	return s.client.RequestInto(ctx, endpoint, &api.RequestOptions{Method: http.MethodDelete}, nil)
}
