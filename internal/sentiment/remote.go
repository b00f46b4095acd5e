package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
)

var (
	errUnparsable = errors.New("unparsable model response")
	errBadStatus  = errors.New("unexpected status")
	errWarmingUp  = errors.New("model is loading")
)

// hintedBackOff waits the server's estimate after a 503 and falls back to
// exponential backoff for transport errors.
type hintedBackOff struct {
	next backoff.BackOff
	hint time.Duration
}

func (b *hintedBackOff) NextBackOff() time.Duration {
	if b.hint > 0 {
		d := b.hint
		b.hint = 0
		return d
	}
	return b.next.NextBackOff()
}

func (b *hintedBackOff) Reset() {
	b.hint = 0
	b.next.Reset()
}

func (c *Classifier) newBackOff(ctx context.Context) (*hintedBackOff, backoff.BackOff) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.backoffInitial
	exp.Multiplier = 2
	exp.RandomizationFactor = 0
	exp.MaxElapsedTime = 0
	exp.Reset()

	hinted := &hintedBackOff{next: exp}
	return hinted, backoff.WithContext(backoff.WithMaxRetries(hinted, c.maxAttempts-1), ctx)
}

// tryModel runs up to maxAttempts requests against one model.
func (c *Classifier) tryModel(ctx context.Context, m Model, text string) (float64, error) {
	hinted, b := c.newBackOff(ctx)
	attempt := 0

	var score float64
	op := func() error {
		attempt++
		s, wait, err := c.post(ctx, m, text)
		switch {
		case err == nil:
			score = s
			return nil
		case errors.Is(err, errWarmingUp):
			hinted.hint = wait
			logger.Log.Warnw("sentiment model loading", "model", m.ID, "attempt", attempt, "wait", wait.String())
			return err
		case errors.Is(err, errBadStatus), errors.Is(err, errUnparsable):
			return backoff.Permanent(err)
		default:
			logger.Log.Errorw("sentiment request failed", "model", m.ID, "attempt", attempt, "error", err)
			return err
		}
	}

	if err := backoff.Retry(op, b); err != nil {
		return 0, err
	}
	return score, nil
}

// post performs a single inference request. For a loading model it returns
// errWarmingUp and how long to wait.
func (c *Classifier) post(ctx context.Context, m Model, text string) (float64, time.Duration, error) {
	body, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return 0, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+m.ID, bytes.NewReader(body))
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, 0, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusServiceUnavailable:
		return 0, c.warmupWait(raw), errWarmingUp
	default:
		return 0, 0, fmt.Errorf("%w %d: %s", errBadStatus, resp.StatusCode, truncate(raw, 200))
	}

	score, ok := parseResponse(m.Kind, raw)
	if !ok {
		return 0, 0, errUnparsable
	}
	return score, 0, nil
}

func (c *Classifier) warmupWait(raw []byte) time.Duration {
	var body struct {
		EstimatedTime *float64 `json:"estimated_time"`
	}
	wait := c.defaultWarmupWait
	if err := json.Unmarshal(raw, &body); err == nil && body.EstimatedTime != nil && *body.EstimatedTime > 0 {
		wait = time.Duration(*body.EstimatedTime * float64(time.Second))
	}
	if c.maxWarmupWait > 0 && wait > c.maxWarmupWait {
		wait = c.maxWarmupWait
	}
	return wait
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// parseResponse accepts both [[{label,score}...]] and [{label,score}...].
func parseResponse(kind Kind, raw []byte) (float64, bool) {
	var items []labelScore

	var nested [][]labelScore
	if err := json.Unmarshal(raw, &nested); err == nil && len(nested) > 0 {
		items = nested[0]
	} else {
		var flat []labelScore
		if err := json.Unmarshal(raw, &flat); err != nil {
			return 0, false
		}
		items = flat
	}
	if len(items) == 0 {
		return 0, false
	}

	switch kind {
	case KindBinary:
		return binaryScore(items)
	case KindStars:
		return starScore(items)
	}
	return 0, false
}

func binaryScore(items []labelScore) (float64, bool) {
	var pos, neg float64
	var seen bool
	for _, it := range items {
		switch strings.ToUpper(it.Label) {
		case "POSITIVE", "LABEL_1":
			pos, seen = it.Score, true
		case "NEGATIVE", "LABEL_0":
			neg, seen = it.Score, true
		}
	}
	if !seen || pos+neg <= 0 {
		return 0, false
	}
	return clamp(pos / (pos + neg)), true
}

func starScore(items []labelScore) (float64, bool) {
	var weighted, total float64
	for _, it := range items {
		label := strings.TrimSpace(strings.ToLower(it.Label))
		if !strings.Contains(label, "star") {
			continue
		}
		k, err := strconv.Atoi(strings.Fields(label)[0])
		if err != nil || k < 1 || k > 5 {
			continue
		}
		weighted += float64(k) * it.Score
		total += it.Score
	}
	if total <= 0 {
		return 0, false
	}
	return clamp(weighted / (5 * total)), true
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n])
	}
	return string(b)
}
