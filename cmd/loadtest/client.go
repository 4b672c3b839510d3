package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/osse101/shooter-mock-api/internal/domain"
	"github.com/osse101/shooter-mock-api/internal/random"
)

// client issues API calls and records every outcome in the report
type client struct {
	baseURL string
	http    *http.Client
	report  *Report
}

func newClient(baseURL string, timeout time.Duration, report *Report) *client {
	return &client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		report:  report,
	}
}

// call sends body (nil for none) and decodes a JSON response into out when out is non-nil.
// Transport failures are recorded and returned; HTTP statuses are only recorded.
func (c *client) call(ctx context.Context, endpoint, method, path string, body, out interface{}) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal %s body: %w", endpoint, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s request: %w", endpoint, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.report.Record(endpoint, statusTransportError, time.Since(start))
		return 0, fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < http.StatusInternalServerError {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.report.Record(endpoint, resp.StatusCode, time.Since(start))
			return resp.StatusCode, fmt.Errorf("failed to decode %s response: %w", endpoint, err)
		}
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}

	c.report.Record(endpoint, resp.StatusCode, time.Since(start))
	return resp.StatusCode, nil
}

type createPlayerResponse struct {
	Player domain.Player `json:"player"`
}

// scenario plays one virtual player through the API
type scenario struct {
	client   *client
	rnd      random.Source
	shots    int
	itemUses int
}

var weaponChoices = []string{"", domain.WeaponPistol, domain.WeaponRifle, domain.WeaponShotgun, domain.WeaponSniper}

var itemChoices = []string{domain.ItemMedicalKit, domain.ItemGrenade, domain.ItemAmmoBox}

func (s *scenario) Process(ctx context.Context) error {
	var created createPlayerResponse
	if _, err := s.client.call(ctx, epCreatePlayer, http.MethodPost, "/api/players", map[string]string{}, &created); err != nil {
		return err
	}
	id := created.Player.ID
	if id == "" {
		return fmt.Errorf("%s: response carried no player id", epCreatePlayer)
	}
	base := "/api/players/" + id

	if _, err := s.client.call(ctx, epGetPlayer, http.MethodGet, base, nil, nil); err != nil {
		return err
	}

	if _, err := s.client.call(ctx, epSpawn, http.MethodPost, "/api/enemies/spawn", nil, nil); err != nil {
		return err
	}

	for i := 0; i < s.shots; i++ {
		body := map[string]string{"weaponId": random.Pick(s.rnd, weaponChoices)}
		if _, err := s.client.call(ctx, epShoot, http.MethodPost, base+"/shoot", body, nil); err != nil {
			return err
		}
	}

	// Enough uses to run some items dry; the 400s that follow are routine
	for i := 0; i < s.itemUses; i++ {
		body := map[string]string{"itemType": random.Pick(s.rnd, itemChoices)}
		if _, err := s.client.call(ctx, epUseItem, http.MethodPost, base+"/use-item", body, nil); err != nil {
			return err
		}
	}

	if _, err := s.client.call(ctx, epInventory, http.MethodGet, base+"/inventory", nil, nil); err != nil {
		return err
	}
	if _, err := s.client.call(ctx, epLevelUp, http.MethodPost, base+"/level-up", nil, nil); err != nil {
		return err
	}
	if _, err := s.client.call(ctx, epStats, http.MethodGet, "/api/stats", nil, nil); err != nil {
		return err
	}
	_, err := s.client.call(ctx, epWeapons, http.MethodGet, "/api/weapons", nil, nil)
	return err
}
