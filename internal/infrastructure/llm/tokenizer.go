package llm

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// tokenCounter wraps a process-wide tiktoken encoder. The encoding is fixed
// (cl100k_base) so that token counts are comparable across providers; the
// encoder is initialized once and only read afterwards.
type tokenCounter struct {
	enc  *tiktoken.Tiktoken
	once sync.Once
	err  error
}

var defaultCounter = &tokenCounter{}

// CountTokens returns the number of tokens in text. Deterministic and
// side-effect free; falls back to a rough 4-chars-per-token estimate when the
// BPE tables cannot be loaded.
func CountTokens(text string) int {
	return defaultCounter.count(text)
}

func (c *tokenCounter) count(text string) int {
	c.init()
	if c.err != nil || c.enc == nil {
		return len(text) / 4
	}
	return len(c.enc.Encode(text, nil, nil))
}

func (c *tokenCounter) init() {
	c.once.Do(func() {
		c.enc, c.err = tiktoken.GetEncoding("cl100k_base")
	})
}
