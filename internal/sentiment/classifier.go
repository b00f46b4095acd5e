// Package sentiment scores free text in [0, 1] using hosted inference models,
// falling back to a keyword heuristic when no model can answer.
package sentiment

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sbilibin2017/gw-mood-journal/internal/common"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"golang.org/x/oauth2"
)

// Kind tells how a model's labels are turned into a score.
type Kind int

const (
	// KindBinary models answer POSITIVE/NEGATIVE probabilities.
	KindBinary Kind = iota
	// KindStars models answer "1 star" .. "5 stars" probabilities.
	KindStars
)

// Model is a remote inference model and the shape of its answer.
type Model struct {
	ID   string
	Kind Kind
}

// DefaultModels are tried in order until one answers.
var DefaultModels = []Model{
	{ID: "siebert/sentiment-roberta-large-english", Kind: KindBinary},
	{ID: "distilbert-base-uncased-finetuned-sst-2-english", Kind: KindBinary},
	{ID: "nlptown/bert-base-multilingual-uncased-sentiment", Kind: KindStars},
}

const (
	DefaultBaseURL = "https://api-inference.huggingface.co/models"

	// MinTextLength is the shortest trimmed input, in runes, worth classifying.
	MinTextLength = 10

	NeutralScore = 0.5

	SourceKeyword = "keyword"
	SourceDefault = "default"
)

// Result is the outcome of a classification. Source is the model id, or
// SourceKeyword / SourceDefault when no model was used.
type Result struct {
	Score  float64 `json:"score"`
	Label  string  `json:"label"`
	Source string  `json:"source"`
}

// Classifier scores text. It is safe for concurrent use.
type Classifier struct {
	apiKey            string
	baseURL           string
	models            []Model
	client            *http.Client
	maxAttempts       uint64
	backoffInitial    time.Duration
	maxWarmupWait     time.Duration
	defaultWarmupWait time.Duration
	memoSize          int
	memo              *lru.Cache[string, float64]
}

// Option configures a Classifier.
type Option func(*Classifier)

func WithModels(models ...Model) Option {
	return func(c *Classifier) {
		c.models = append([]Model(nil), models...)
	}
}

// WithBaseURL overrides DefaultBaseURL. An empty url is ignored.
func WithBaseURL(url string) Option {
	return func(c *Classifier) {
		if url = strings.TrimRight(strings.TrimSpace(url), "/"); url != "" {
			c.baseURL = url
		}
	}
}

// WithHTTPClient sets the client whose transport and timeout are used for every
// attempt. The bearer token is layered on top of its transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Classifier) {
		c.client = client
	}
}

func WithMaxAttempts(n uint64) Option {
	return func(c *Classifier) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

func WithBackoffInitial(d time.Duration) Option {
	return func(c *Classifier) {
		c.backoffInitial = d
	}
}

// WithMaxWarmupWait caps the wait hinted by a loading model.
func WithMaxWarmupWait(d time.Duration) Option {
	return func(c *Classifier) {
		c.maxWarmupWait = d
	}
}

// WithDefaultWarmupWait is used when a loading model gives no estimate.
func WithDefaultWarmupWait(d time.Duration) Option {
	return func(c *Classifier) {
		c.defaultWarmupWait = d
	}
}

func WithMemoSize(n int) Option {
	return func(c *Classifier) {
		if n > 0 {
			c.memoSize = n
		}
	}
}

// NewClassifier builds a Classifier for the given inference API key.
// An empty key or a "your_actual..." placeholder disables remote calls.
func NewClassifier(apiKey string, opts ...Option) *Classifier {
	c := &Classifier{
		apiKey:            strings.TrimSpace(apiKey),
		baseURL:           DefaultBaseURL,
		models:            DefaultModels,
		client:            &http.Client{Timeout: 30 * time.Second},
		maxAttempts:       3,
		backoffInitial:    time.Second,
		maxWarmupWait:     30 * time.Second,
		defaultWarmupWait: 10 * time.Second,
		memoSize:          1024,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.client.Timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.apiKey, TokenType: "Bearer"}),
			Base:   c.client.Transport,
		},
	}

	memo, err := lru.New[string, float64](c.memoSize)
	if err != nil {
		logger.Log.Errorw("failed to create keyword memo", "error", err)
	}
	c.memo = memo
	return c
}

// Configured reports whether remote models will be consulted.
func (c *Classifier) Configured() bool {
	return !common.IsPlaceholder(c.apiKey) && len(c.models) > 0
}

// Classify scores text. It never fails: short input is neutral and any remote
// failure, including ctx expiry, degrades to the keyword heuristic.
func (c *Classifier) Classify(ctx context.Context, text string) Result {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < MinTextLength {
		logger.Log.Warnw("text too short for sentiment analysis", "length", utf8.RuneCountInString(trimmed))
		return newResult(NeutralScore, SourceDefault)
	}

	if !c.Configured() {
		logger.Log.Warnw("inference api key not configured, using keyword analysis")
		return newResult(c.keywordScore(trimmed), SourceKeyword)
	}

	for _, m := range c.models {
		if ctx.Err() != nil {
			break
		}
		score, err := c.tryModel(ctx, m, trimmed)
		if err != nil {
			logger.Log.Warnw("sentiment model failed", "model", m.ID, "error", err)
			continue
		}
		logger.Log.Infow("sentiment analyzed", "model", m.ID, "score", score)
		return newResult(score, m.ID)
	}

	logger.Log.Warnw("all sentiment models failed, using keyword analysis", "ctx_error", ctx.Err())
	return newResult(c.keywordScore(trimmed), SourceKeyword)
}

func (c *Classifier) keywordScore(text string) float64 {
	if c.memo == nil {
		return KeywordScore(text)
	}
	if s, ok := c.memo.Get(text); ok {
		return s
	}
	s := KeywordScore(text)
	c.memo.Add(text, s)
	return s
}

func newResult(score float64, source string) Result {
	return Result{Score: score, Label: Label(score), Source: source}
}
