package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/fighter"
)

//go:generate mockgen -destination=mock/mock_client.go -package=botmock github.com/automoto/kiclash/bot DecisionClient

// DecisionClient asks an external service for the next action.
type DecisionClient interface {
	Decide(ctx context.Context, snap Snapshot) (Decision, error)
}

// Snapshot is the state sent with every decision request. Values are
// rounded to one decimal.
type Snapshot struct {
	MyHealth          float64 `json:"my_health"`
	MyHealthMax       float64 `json:"my_health_max"`
	MyHealthPct       float64 `json:"my_health_pct"`
	MyStamina         float64 `json:"my_stamina"`
	MyStaminaMax      float64 `json:"my_stamina_max"`
	MyStaminaPct      float64 `json:"my_stamina_pct"`
	MyX               float64 `json:"my_x"`
	MyY               float64 `json:"my_y"`
	OpponentHealth    float64 `json:"opponent_health"`
	OpponentHealthMax float64 `json:"opponent_health_max"`
	OpponentHealthPct float64 `json:"opponent_health_pct"`
	OpponentStamina   float64 `json:"opponent_stamina"`
	OpponentX         float64 `json:"opponent_x"`
	OpponentY         float64 `json:"opponent_y"`
	DistanceX         float64 `json:"distance_x"`
	DistanceY         float64 `json:"distance_y"`
	OpponentAttacking bool    `json:"opponent_attacking"`
	OpponentBlocking  bool    `json:"opponent_blocking"`
	FacingRight       bool    `json:"facing_right"`

	Difficulty config.Difficulty `json:"difficulty"`
}

// NewSnapshot captures both fighters from self's point of view.
func NewSnapshot(self, opp *fighter.Fighter, difficulty config.Difficulty) Snapshot {
	sx, sy := self.Position()
	ox, oy := opp.Position()
	dx, dy, _ := gaps(self, opp)
	return Snapshot{
		MyHealth:          round1(self.Health()),
		MyHealthMax:       round1(self.HealthMax()),
		MyHealthPct:       round1(100 * self.Health() / self.HealthMax()),
		MyStamina:         round1(self.Stamina()),
		MyStaminaMax:      round1(self.StaminaMax()),
		MyStaminaPct:      round1(100 * self.Stamina() / self.StaminaMax()),
		MyX:               round1(sx),
		MyY:               round1(sy),
		OpponentHealth:    round1(opp.Health()),
		OpponentHealthMax: round1(opp.HealthMax()),
		OpponentHealthPct: round1(100 * opp.Health() / opp.HealthMax()),
		OpponentStamina:   round1(opp.Stamina()),
		OpponentX:         round1(ox),
		OpponentY:         round1(oy),
		DistanceX:         round1(dx),
		DistanceY:         round1(dy),
		OpponentAttacking: opp.Striking(),
		OpponentBlocking:  opp.Blocking(),
		FacingRight:       self.FacingRight(),
		Difficulty:        difficulty,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Decision is a validated answer from the decision service.
type Decision struct {
	Action Action
	Reason string
}

type decisionResponse struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}

// HTTPClient posts snapshots as JSON with a bearer credential.
type HTTPClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewHTTPClient(endpoint, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

// Decide posts one snapshot. Non-2xx statuses wrap ErrDecisionStatus and
// unrecognised tokens wrap ErrUnknownAction.
func (c *HTTPClient) Decide(ctx context.Context, snap Snapshot) (Decision, error) {
	body, err := json.Marshal(snap)
	if err != nil {
		return Decision{}, fmt.Errorf("marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Decision{}, fmt.Errorf("request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return Decision{}, fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Decision{}, fmt.Errorf("%w: %d", ErrDecisionStatus, resp.StatusCode)
	}

	var out decisionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Decision{}, fmt.Errorf("decode: %w", err)
	}
	action, ok := ParseAction(out.Action)
	if !ok {
		return Decision{}, fmt.Errorf("%w: %q", ErrUnknownAction, out.Action)
	}
	return Decision{Action: action, Reason: out.Reason}, nil
}
