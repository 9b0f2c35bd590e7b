package bot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/fighter"
)

func TestNewSnapshot(t *testing.T) {
	_, self, opp := newPair(t, 100, 333.33)
	self.ReceiveDamage(12.345)
	require.NoError(t, opp.Block())

	snap := NewSnapshot(self, opp, config.DifficultyHard)
	assert.Equal(t, 87.7, snap.MyHealth)
	assert.Equal(t, 87.7, snap.MyHealthPct)
	assert.Equal(t, 100.0, snap.MyStaminaMax)
	assert.Equal(t, 233.3, snap.DistanceX)
	assert.Zero(t, snap.DistanceY)
	assert.True(t, snap.OpponentBlocking)
	assert.False(t, snap.OpponentAttacking)
	assert.True(t, snap.FacingRight)

	b, err := json.Marshal(snap)
	require.NoError(t, err)
	var wire map[string]any
	require.NoError(t, json.Unmarshal(b, &wire))
	assert.Equal(t, "hard", wire["difficulty"])
	assert.Contains(t, wire, "opponent_attacking")
	assert.Contains(t, wire, "distance_x")

	t.Run("attacking opponent", func(t *testing.T) {
		_, self, opp := newPair(t, 100, 200)
		require.NoError(t, opp.Strike(fighter.StrikeHeavy))
		assert.True(t, NewSnapshot(self, opp, config.DifficultyEasy).OpponentAttacking)
	})
}

func decisionServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var snap Snapshot
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&snap))

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPClient_Decide(t *testing.T) {
	_, self, opp := newPair(t, 100, 600)
	snap := NewSnapshot(self, opp, config.DifficultyNormal)

	tests := []struct {
		name    string
		status  int
		body    string
		want    Decision
		wantErr error
	}{
		{
			name:   "valid token",
			status: http.StatusOK,
			body:   `{"action":"beam","reason":"long range"}`,
			want:   Decision{Action: ActionBeam, Reason: "long range"},
		},
		{
			name:   "token case and spacing",
			status: http.StatusOK,
			body:   `{"action":" Retreat "}`,
			want:   Decision{Action: ActionRetreat},
		},
		{
			name:    "unknown token",
			status:  http.StatusOK,
			body:    `{"action":"kamehameha"}`,
			wantErr: ErrUnknownAction,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `{"error":"down"}`,
			wantErr: ErrDecisionStatus,
		},
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			wantErr: ErrDecisionStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := decisionServer(t, tt.status, tt.body)
			c := NewHTTPClient(srv.URL, "secret", time.Second)

			got, err := c.Decide(context.Background(), snap)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		srv := decisionServer(t, http.StatusOK, `{"action":`)
		c := NewHTTPClient(srv.URL, "secret", time.Second)
		_, err := c.Decide(context.Background(), snap)
		assert.Error(t, err)
	})

	t.Run("deadline", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		c := NewHTTPClient(srv.URL, "secret", time.Second)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := c.Decide(ctx, snap)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
