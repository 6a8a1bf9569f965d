package bot

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

const requestTimeout = 10 * time.Second

type Client struct {
	nc      *nats.Conn
	subject string
}

func NewClient(nc *nats.Conn, subject string) *Client {
	return &Client{nc: nc, subject: subject}
}

// Solve sends req to a bot and waits for its answer. A response that
// carries an error is returned along with that error.
func (c *Client) Solve(ctx context.Context, req *Request) (*Response, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, requestTimeout)
		defer cancel()
	}
	msg, err := c.nc.RequestWithContext(ctx, c.subject, data)
	if err != nil {
		log.Err(err).Str("subject", c.subject).Msg("request-failed")
		return nil, err
	}
	resp := &Response{}
	if err := json.Unmarshal(msg.Data, resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return resp, errors.New(resp.Error)
	}
	return resp, nil
}
