// Package publish optionally announces build-completed and
// health-report-ready events to a NATS subject, for out-of-scope
// interactive front-ends. Publishing is fire-and-forget: a publish
// failure is logged and swallowed, never surfaced to the build caller.
// Grounded on the teacher's internal/linkverify NATS client for
// connection/reconnect handling.
package publish

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/inful/skillgraph/internal/graph"
	"github.com/inful/skillgraph/internal/health"
	"github.com/inful/skillgraph/internal/logfields"
)

// Event is the JSON shape published after a build and/or health run.
type Event struct {
	BuildID       string    `json:"build_id"`
	Timestamp     time.Time `json:"timestamp"`
	NodeCount     int       `json:"node_count,omitempty"`
	EdgeCount     int       `json:"edge_count,omitempty"`
	CycleCount    int       `json:"cycle_count,omitempty"`
	HealthOverall string    `json:"health_overall,omitempty"`
}

// Publisher publishes Events to a NATS subject. A nil *Publisher is valid:
// PublishBuild, PublishHealth and Close are then no-ops, so callers can hold
// an unset Publisher when publishing is not configured.
type Publisher struct {
	subject string
	mu      sync.RWMutex
	conn    *nats.Conn
}

// New connects to url and returns a Publisher bound to subject. If the
// initial connection fails, New returns the error and no Publisher. Once
// connected, a dropped connection is retried without limit via the
// reconnect options, matching the teacher's NATSClient.
func New(url, subject string) (*Publisher, error) {
	p := &Publisher{subject: subject}

	conn, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				slog.Warn("nats disconnected", logfields.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			slog.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, err
	}
	p.conn = conn
	return p, nil
}

// PublishBuild announces a completed BuildGraph run.
func (p *Publisher) PublishBuild(buildID string, g graph.Graph) {
	p.publish(Event{
		BuildID:    buildID,
		Timestamp:  time.Now().UTC(),
		NodeCount:  g.Meta.NodeCount,
		EdgeCount:  g.Meta.EdgeCount,
		CycleCount: g.Meta.CycleCount,
	})
}

// PublishHealth announces a completed RunHealthChecks run.
func (p *Publisher) PublishHealth(buildID string, report health.Report) {
	p.publish(Event{
		BuildID:       buildID,
		Timestamp:     time.Now().UTC(),
		HealthOverall: string(report.Overall),
	})
}

func (p *Publisher) publish(evt Event) {
	if p == nil || p.conn == nil {
		return
	}
	data, err := json.Marshal(evt)
	if err != nil {
		slog.Warn("failed to marshal publish event", logfields.Error(err))
		return
	}

	p.mu.RLock()
	conn := p.conn
	p.mu.RUnlock()

	if err := conn.Publish(p.subject, data); err != nil {
		slog.Warn("failed to publish event", "subject", p.subject, logfields.Error(err))
	}
}

// Close releases the NATS connection. Safe to call on a nil Publisher.
func (p *Publisher) Close() {
	if p == nil || p.conn == nil {
		return
	}
	p.conn.Close()
}
