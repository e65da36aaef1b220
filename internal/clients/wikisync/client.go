// Package wikisync discovers the companion plugin's local websocket and
// reads the player's current loadout from it.
package wikisync

//go:generate mockgen -destination=mock/mock_client.go -package=wikisyncmock github.com/osrsdps/dps-console/internal/clients/wikisync Client

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/osrsdps/dps-console/internal/errors"
	"github.com/osrsdps/dps-console/internal/logger"
	"github.com/osrsdps/dps-console/internal/pkg/jsonnum"
)

// MessageGetPlayer is the request and reply type for the loadout exchange
const MessageGetPlayer = "GetPlayer"

// Client reads the player loadout from the companion plugin
type Client interface {
	// FetchPlayer scans the configured ports and returns the first loadout.
	// Returns errors.Unavailable when no port answers.
	FetchPlayer(ctx context.Context) (*Player, error)
}

// Player is the part of the companion reply the console uses
type Player struct {
	Port int
	// Equipment maps slot name to item id
	Equipment map[string]string
}

// Config configures the discovery scan
type Config struct {
	Host      string
	FirstPort int
	PortCount int
	// Ports overrides FirstPort/PortCount when set
	Ports          []int
	AttemptTimeout time.Duration
	Origin         string
	Logger         *zap.SugaredLogger
}

// Validate validates the Config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Host", c.Host, vb)
	if len(c.Ports) == 0 {
		errors.ValidateRange("FirstPort", c.FirstPort, 1, 65535, vb)
		errors.ValidatePositive("PortCount", c.PortCount, vb)
	}
	errors.ValidatePositive("AttemptTimeout", int64(c.AttemptTimeout), vb)
	return vb.Build()
}

type client struct {
	host           string
	ports          []int
	attemptTimeout time.Duration
	origin         string
	dialer         *websocket.Dialer
	log            *zap.SugaredLogger
}

// New creates a websocket backed Client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ports := cfg.Ports
	if len(ports) == 0 {
		ports = make([]int, cfg.PortCount)
		for i := range ports {
			ports[i] = cfg.FirstPort + i
		}
	}

	return &client{
		host:           cfg.Host,
		ports:          ports,
		attemptTimeout: cfg.AttemptTimeout,
		origin:         cfg.Origin,
		dialer: &websocket.Dialer{
			HandshakeTimeout: cfg.AttemptTimeout,
		},
		log: logger.OrNop(cfg.Logger),
	}, nil
}

type envelope struct {
	Type    string          `json:"_wsType"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type playerPayload struct {
	Loadouts []struct {
		Equipment map[string]*struct {
			ID jsonnum.Int `json:"id"`
		} `json:"equipment"`
	} `json:"loadouts"`
}

func (c *client) FetchPlayer(ctx context.Context) (*Player, error) {
	for _, port := range c.ports {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "companion scan stopped")
		}

		player, err := c.tryPort(ctx, port)
		if err != nil {
			c.log.Debugw("companion port unavailable", "port", port, "error", err)
			continue
		}
		c.log.Infow("companion connected", "port", port, "slots", len(player.Equipment))
		return player, nil
	}

	return nil, errors.Unavailablef("no companion app answered on %s ports %v", c.host, c.ports)
}

func (c *client) tryPort(ctx context.Context, port int) (*Player, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.attemptTimeout)
	defer cancel()

	addr := "ws://" + net.JoinHostPort(c.host, strconv.Itoa(port))
	header := http.Header{}
	if c.origin != "" {
		header.Set("Origin", c.origin)
	}

	conn, resp, err := c.dialer.DialContext(attemptCtx, addr, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "dial failed")
	}
	defer func() {
		_ = conn.Close()
	}()

	deadline, _ := attemptCtx.Deadline()
	_ = conn.SetWriteDeadline(deadline)
	_ = conn.SetReadDeadline(deadline)

	if err := conn.WriteJSON(envelope{Type: MessageGetPlayer}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "request failed")
	}

	for {
		var msg envelope
		if err := conn.ReadJSON(&msg); err != nil {
			if _, ok := err.(*json.SyntaxError); ok {
				continue
			}
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "no loadout received")
		}
		if msg.Type != MessageGetPlayer || len(msg.Payload) == 0 || string(msg.Payload) == "null" {
			continue
		}

		equipment, err := decodeEquipment(msg.Payload)
		if err != nil {
			return nil, err
		}
		return &Player{Port: port, Equipment: equipment}, nil
	}
}

// decodeEquipment reads payload.loadouts[0].equipment. Slots without an
// item id are skipped.
func decodeEquipment(payload json.RawMessage) (map[string]string, error) {
	var p playerPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed player payload")
	}

	equipment := make(map[string]string)
	if len(p.Loadouts) == 0 {
		return equipment, nil
	}
	for slot, item := range p.Loadouts[0].Equipment {
		if item == nil || item.ID <= 0 {
			continue
		}
		equipment[slot] = fmt.Sprint(int(item.ID))
	}
	return equipment, nil
}
