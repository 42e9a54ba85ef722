package quotemill

import "strings"

// Default chunking bounds. Paragraphs shorter than DefaultMinParagraphLen
// are treated as boilerplate; chunks are packed up to DefaultMaxChunkLen.
const (
	DefaultMinParagraphLen = 50
	DefaultMaxChunkLen     = 1000
)

// paragraphSep joins paragraphs within a chunk and delimits paragraphs
// in the segmented input.
const paragraphSep = "\n\n"

// Chunk is a bounded unit of cleaned prose derived from one article.
// A chunk contains one or more whole paragraphs and never spans content
// from two articles.
type Chunk struct {
	// ArticleURL identifies the originating article.
	ArticleURL string `json:"articleUrl"`

	// Position is the zero-based chunk index within the article.
	Position int `json:"position"`

	// Text is the chunk's prose. Never empty.
	Text string `json:"text"`
}

// SplitParagraphs segments text into trimmed, non-empty paragraphs that
// meet the minimum length. Splits on blank lines.
func SplitParagraphs(text string, minParagraphLen int) []string {
	var paragraphs []string
	for _, p := range strings.Split(text, paragraphSep) {
		p = strings.TrimSpace(p)
		if len(p) >= minParagraphLen {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// SplitChunks segments text into chunks of whole paragraphs. Consecutive
// paragraphs are packed greedily: a new chunk starts whenever appending
// the next paragraph (plus separator) would exceed maxChunkLen. A single
// paragraph longer than maxChunkLen becomes its own oversized chunk
// rather than being truncated.
//
// Empty input, or input with no paragraph of at least minParagraphLen,
// yields nil.
func SplitChunks(text string, minParagraphLen, maxChunkLen int) []string {
	paragraphs := SplitParagraphs(text, minParagraphLen)
	if len(paragraphs) == 0 {
		return nil
	}

	var chunks []string
	var current strings.Builder

	for _, p := range paragraphs {
		if current.Len() > 0 && current.Len()+len(paragraphSep)+len(p) > maxChunkLen {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(paragraphSep)
		}
		current.WriteString(p)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

// ChunkArticle builds chunks from an article's segmented text, tagging
// each with the article URL and its position.
func ChunkArticle(article *Article, text string, minParagraphLen, maxChunkLen int) []Chunk {
	texts := SplitChunks(text, minParagraphLen, maxChunkLen)
	chunks := make([]Chunk, 0, len(texts))
	for i, t := range texts {
		chunks = append(chunks, Chunk{
			ArticleURL: article.URL,
			Position:   i,
			Text:       t,
		})
	}
	return chunks
}
