// Package gemini implements quotemill.Scorer using the Google Gemini API
// with a JSON response schema.
package gemini

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hboone/quotemill"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// maxCandidatesPerChunk caps classifier output per chunk to bound
// downstream volume.
const maxCandidatesPerChunk = 3

const systemInstruction = `You are a sharp, exacting editor. Your job is to extract
hard-hitting excerpts from text - lines that could stand alone on a quote
card or in a short social post.

STYLE GUIDELINES:
1. Bold and concrete: favor claims, consequences, and insight over fluff.
2. No filler: avoid generic motivational language or vague phrasing.
3. Faithful: an excerpt must preserve the meaning of the source text.
4. Punchy: if a line is 90% there, lightly edit it to 100% impact
   (fix grammar, remove hedging, remove passive voice).

For each excerpt report whether it is worth keeping (worthy), a strength
score from 1-10, a category (short_form, card, or long_form), a tone
(informational, persuasive, cautionary, hopeful, exhortative, or another
single word that fits better), the polished canonical text, and three
alternate renderings: a short variant under 240 characters, a card variant
of 1-2 lines, and a caption variant of 2-4 lines.

Extract up to 3 of the best excerpts from each text passage. If nothing is
worth extracting, return an empty excerpts array.`

// Ensure Scorer implements quotemill.Scorer at compile time.
var _ quotemill.Scorer = (*Scorer)(nil)

// Scorer implements quotemill.Scorer using Google Gemini.
type Scorer struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithModel overrides the model used for scoring calls.
func WithModel(model string) Option {
	return func(s *Scorer) {
		s.model = model
	}
}

// WithLogger sets the logger for diagnostic warnings (malformed
// classifier responses). Defaults to the slog default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scorer) {
		s.logger = logger
	}
}

// NewScorer creates a new Scorer.
func NewScorer(client *genai.Client, opts ...Option) *Scorer {
	s := &Scorer{
		client: client,
		model:  DefaultModel,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score submits the chunk text to the classifier and parses the response
// into candidate excerpts. A transport failure or an unparseable payload
// returns an EUNAVAILABLE error so the caller can skip the chunk; a
// parseable response without a usable excerpts array is logged and
// treated as zero candidates.
func (s *Scorer) Score(ctx context.Context, chunk quotemill.Chunk) ([]quotemill.Candidate, error) {
	if chunk.Text == "" {
		return nil, quotemill.Errorf(quotemill.EINVALID, "chunk text required")
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(chunk.Text)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, quotemill.Errorf(quotemill.EUNAVAILABLE, "classifier call failed: %v", err)
	}
	if result == nil {
		return nil, quotemill.Errorf(quotemill.EINTERNAL, "classifier returned nil result")
	}

	candidates, malformed, err := ParseCandidates([]byte(result.Text()))
	if err != nil {
		return nil, err
	}
	if malformed {
		s.logger.Warn("malformed classifier response, treating as zero candidates",
			"article", chunk.ArticleURL, "chunk", chunk.Position)
		return []quotemill.Candidate{}, nil
	}

	return candidates, nil
}

// BuildConfig returns the GenerateContentConfig for scoring calls. The
// response schema constrains the classifier to the excerpt wire format.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
	}
}

// BuildUserPrompt builds the user prompt carrying the chunk text.
func BuildUserPrompt(text string) string {
	return "Analyze this text and extract up to 3 of the best excerpts:\n\n" + text
}

func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"excerpts": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"is_worthy":       {Type: genai.TypeBoolean},
						"score":           {Type: genai.TypeInteger},
						"category":        {Type: genai.TypeString},
						"tone":            {Type: genai.TypeString},
						"canonical_text":  {Type: genai.TypeString},
						"short_variant":   {Type: genai.TypeString},
						"card_variant":    {Type: genai.TypeString},
						"caption_variant": {Type: genai.TypeString},
					},
					Required: []string{"is_worthy", "score", "canonical_text"},
				},
			},
		},
		Required: []string{"excerpts"},
	}
}

// wireCandidate is the classifier's JSON shape for one excerpt.
type wireCandidate struct {
	Worthy         bool   `json:"is_worthy"`
	Score          int    `json:"score"`
	Category       string `json:"category"`
	Tone           string `json:"tone"`
	CanonicalText  string `json:"canonical_text"`
	ShortVariant   string `json:"short_variant"`
	CardVariant    string `json:"card_variant"`
	CaptionVariant string `json:"caption_variant"`
}

// ParseCandidates parses a classifier response payload. Three outcomes
// are distinguished: a valid payload yields candidates (capped at three);
// a payload that is valid JSON but whose excerpts field is missing or not
// an array of excerpt objects reports malformed=true with no error; a
// payload that is not valid JSON returns an EUNAVAILABLE error.
func ParseCandidates(data []byte) (candidates []quotemill.Candidate, malformed bool, err error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, false, quotemill.Errorf(quotemill.EUNAVAILABLE, "invalid classifier payload: %v", err)
	}

	raw, ok := envelope["excerpts"]
	if !ok {
		return nil, true, nil
	}

	var wire []wireCandidate
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, true, nil
	}

	if len(wire) > maxCandidatesPerChunk {
		wire = wire[:maxCandidatesPerChunk]
	}

	candidates = make([]quotemill.Candidate, 0, len(wire))
	for _, w := range wire {
		candidates = append(candidates, quotemill.Candidate{
			Worthy:         w.Worthy,
			Score:          w.Score,
			Category:       w.Category,
			Tone:           w.Tone,
			CanonicalText:  w.CanonicalText,
			ShortVariant:   w.ShortVariant,
			CardVariant:    w.CardVariant,
			CaptionVariant: w.CaptionVariant,
		})
	}

	return candidates, false, nil
}
