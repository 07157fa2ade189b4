package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

// MockRoundTripper implements http.RoundTripper for intercepting Discord calls
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext bundles a fake API backend and a Discord session whose HTTP
// traffic is captured instead of sent
type TestContext struct {
	Server    *httptest.Server
	Mux       *http.ServeMux
	APIClient *APIClient
	Session   *discordgo.Session

	mu        sync.Mutex
	Edits     []discordgo.WebhookEdit
	Callbacks []discordgo.InteractionResponse
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewAPIClient(server.URL, "test-api-key")
	client.retryDelay = time.Millisecond

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	ctx := &TestContext{Server: server, Mux: mux, APIClient: client, Session: session}
	session.Client = &http.Client{Transport: &MockRoundTripper{RoundTripFunc: ctx.capture}}
	return ctx
}

// capture records interaction callbacks and response edits
func (c *TestContext) capture(req *http.Request) (*http.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch req.Method {
	case http.MethodPost:
		var body discordgo.InteractionResponse
		if err := json.NewDecoder(req.Body).Decode(&body); err == nil {
			c.Callbacks = append(c.Callbacks, body)
		}
	case http.MethodPatch:
		var body discordgo.WebhookEdit
		if err := json.NewDecoder(req.Body).Decode(&body); err == nil {
			c.Edits = append(c.Edits, body)
		}
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString("{}")),
		Header:     make(http.Header),
	}, nil
}

// LastEmbed returns the first embed of the last response edit, or nil
func (c *TestContext) LastEmbed() *discordgo.MessageEmbed {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.Edits) == 0 {
		return nil
	}
	last := c.Edits[len(c.Edits)-1]
	if last.Embeds == nil || len(*last.Embeds) == 0 {
		return nil
	}
	return (*last.Embeds)[0]
}

// LastContent returns the text of the last response edit
func (c *TestContext) LastContent() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.Edits) == 0 || c.Edits[len(c.Edits)-1].Content == nil {
		return ""
	}
	return *c.Edits[len(c.Edits)-1].Content
}

// WriteJSON writes data as a JSON 200 response
func WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// commandInteraction builds a slash command interaction sent by userID
func commandInteraction(name, userID string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-1",
			Token: "token-1",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: userID, Username: "Tester"},
			},
		},
	}
}

func intOption(name string, v int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(v),
	}
}

func stringOption(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: v,
	}
}
