package input

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-clicker/internal/core"
)

// KeySource delivers raw key presses.
type KeySource interface {
	// Poll waits up to timeout for the next key. It returns ok=false with a
	// nil error on timeout and io.EOF once the input is closed for good.
	Poll(timeout time.Duration) (key string, ok bool, err error)
}

// Token is the meaning of one key press.
type Token struct {
	Action core.Action // ActionNone for keys without a direct action
	Held   bool        // true for the key that holds the click button down
}

// KeyMapper resolves key names to tokens.
type KeyMapper interface {
	MapKey(key string) Token
}

// Sink receives actions in the order they are produced.
type Sink interface {
	Push(a core.Action) error
}

// Reader polls a KeySource and pushes the resulting actions into a Sink.
type Reader struct {
	src      KeySource
	mapper   KeyMapper
	logger   *log.Logger
	timeout  time.Duration
	debounce Debouncer
}

// NewReader creates a reader polling every core.PollTimeout.
func NewReader(src KeySource, mapper KeyMapper, logger *log.Logger) *Reader {
	return &Reader{
		src:     src,
		mapper:  mapper,
		logger:  logger,
		timeout: core.PollTimeout,
	}
}

// Run polls until the input reaches EOF, the sink closes or ctx is done.
// On EOF it pushes ActionExit before returning. Other read errors are
// logged and polling continues.
func (r *Reader) Run(ctx context.Context, sink Sink) {
	for ctx.Err() == nil {
		key, ok, err := r.src.Poll(r.timeout)
		if errors.Is(err, io.EOF) {
			r.logger.Debug("input closed, requesting exit")
			//nolint:errcheck // Nothing left to tell if the consumer is gone too
			sink.Push(core.ActionExit)
			return
		}
		if err != nil {
			r.logger.Warn("input read failed", "error", err)
			continue
		}
		if !ok {
			continue
		}

		if err := r.handleKey(key, sink); err != nil {
			return
		}
	}
}

// handleKey feeds one key through the debouncer and the key map.
// A completed click is pushed before the key's own action, since the release
// it stands for happened first.
func (r *Reader) handleKey(key string, sink Sink) error {
	tok := r.mapper.MapKey(key)

	if r.debounce.Observe(tok.Held) {
		if err := sink.Push(core.ActionClick); err != nil {
			return err
		}
	}
	if tok.Action != core.ActionNone {
		if err := sink.Push(tok.Action); err != nil {
			return err
		}
	}
	return nil
}
