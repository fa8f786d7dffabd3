package capture

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/cvforge/go-cvexport/export"
)

// Engine owns a shared headless Chromium instance and hands out one tab per
// acquisition. The allocator is initialized lazily on first use.
type Engine struct {
	BrowserPath string
	Headless    bool
	Timeout     time.Duration
	Args        []string

	initOnce      sync.Once
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

// Acquire opens a fresh tab as a scratch page.
func (e *Engine) Acquire(ctx context.Context) (Scratch, error) {
	if e == nil {
		return nil, export.NewError(export.KindInternal, "capture engine is nil", nil)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.ensureBrowser(); err != nil {
		return nil, export.NewError(export.KindInternal, "capture engine init failed", err)
	}

	tabCtx, cancel := chromedp.NewContext(e.browserCtx)
	return &chromiumScratch{tabCtx: tabCtx, cancel: cancel, timeout: e.Timeout}, nil
}

// Close releases Chromium resources if they have been initialized.
func (e *Engine) Close() error {
	if e == nil {
		return nil
	}
	if e.browserCancel != nil {
		e.browserCancel()
	}
	if e.allocCancel != nil {
		e.allocCancel()
	}
	return nil
}

func (e *Engine) ensureBrowser() error {
	e.initOnce.Do(func() {
		options := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
		if e.BrowserPath != "" {
			options = append(options, chromedp.ExecPath(e.BrowserPath))
		}
		options = append(options, chromedp.Flag("headless", e.Headless))
		options = append(options, allocatorOptionsFromArgs(e.Args)...)

		e.allocCtx, e.allocCancel = chromedp.NewExecAllocator(context.Background(), options...)
		e.browserCtx, e.browserCancel = chromedp.NewContext(e.allocCtx)
	})
	if e.allocCtx == nil || e.browserCtx == nil {
		return errors.New("chromium allocator unavailable")
	}
	return nil
}

// chromiumScratch is one tab. Release closes it; every method binds the
// caller's context to the tab lifetime.
type chromiumScratch struct {
	tabCtx  context.Context
	cancel  context.CancelFunc
	timeout time.Duration
}

func (s *chromiumScratch) Navigate(ctx context.Context, url, waitSelector string) error {
	execCtx, done := s.exec(ctx)
	defer done()

	actions := []chromedp.Action{chromedp.Navigate(url)}
	if waitSelector != "" {
		actions = append(actions, chromedp.WaitVisible(waitSelector, chromedp.ByQuery))
	}
	if err := chromedp.Run(execCtx, actions...); err != nil {
		return export.NewError(export.KindCapture, "preview navigation failed", err)
	}
	return nil
}

func (s *chromiumScratch) SetContent(ctx context.Context, html string) error {
	execCtx, done := s.exec(ctx)
	defer done()

	err := chromedp.Run(execCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
	if err != nil {
		return export.NewError(export.KindCapture, "scratch content load failed", err)
	}
	return nil
}

func (s *chromiumScratch) PrintPDF(ctx context.Context, opts PrintOptions) ([]byte, error) {
	params, err := buildPrintParams(opts)
	if err != nil {
		return nil, err
	}

	execCtx, done := s.exec(ctx)
	defer done()

	var pdf []byte
	err = chromedp.Run(execCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		pdf, _, err = params.Do(ctx)
		return err
	}))
	if err != nil {
		return nil, export.NewError(export.KindCapture, "pdf print failed", err)
	}
	return pdf, nil
}

func (s *chromiumScratch) Release() {
	if s.cancel != nil {
		s.cancel()
	}
}

// exec derives a run context bound to both the tab and the caller's context,
// applying the engine timeout when set.
func (s *chromiumScratch) exec(ctx context.Context) (context.Context, context.CancelFunc) {
	execCtx, cancelReq := context.WithCancel(s.tabCtx)
	go func() {
		select {
		case <-ctx.Done():
			cancelReq()
		case <-execCtx.Done():
		}
	}()

	if s.timeout > 0 {
		execCtx, timeoutCancel := context.WithTimeout(execCtx, s.timeout)
		return execCtx, func() {
			timeoutCancel()
			cancelReq()
		}
	}
	return execCtx, cancelReq
}

func allocatorOptionsFromArgs(args []string) []chromedp.ExecAllocatorOption {
	options := make([]chromedp.ExecAllocatorOption, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		arg = strings.TrimPrefix(arg, "--")
		if arg == "" {
			continue
		}
		if name, value, ok := strings.Cut(arg, "="); ok {
			options = append(options, chromedp.Flag(name, value))
			continue
		}
		options = append(options, chromedp.Flag(arg, true))
	}
	return options
}
