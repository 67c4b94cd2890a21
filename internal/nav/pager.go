package nav

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/noborus/ov/oviewer"
	"go.uber.org/zap"
)

// Terminal is the part of *tea.Program the pager needs to hand the screen
// over and take it back
type Terminal interface {
	ReleaseTerminal() error
	RestoreTerminal() error
}

// PagerFunc displays content full screen until the user quits
type PagerFunc func(content string) error

// PagerNavigator renders pages in-terminal and shows them in ov
type PagerNavigator struct {
	pages  *Pages
	pager  PagerFunc
	logger *zap.Logger

	mu   sync.Mutex
	term Terminal
}

// NewPagerNavigator creates a navigator. A nil pager uses ov.
func NewPagerNavigator(pages *Pages, pager PagerFunc, logger *zap.Logger) *PagerNavigator {
	if pager == nil {
		pager = RunPager
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PagerNavigator{pages: pages, pager: pager, logger: logger}
}

// SetTerminal attaches the running program. Until it is set the pager runs
// without releasing the screen.
func (n *PagerNavigator) SetTerminal(t Terminal) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.term = t
}

// Navigate renders path and pages it
func (n *PagerNavigator) Navigate(path string) error {
	page := n.pages.Render(context.Background(), path)
	n.logger.Info("showing page", zap.String("path", path), zap.Int("status", page.Status))

	n.mu.Lock()
	term := n.term
	n.mu.Unlock()

	if err := Show(term, n.pager, page.String()); err != nil {
		return fmt.Errorf("pager failed for %s: %w", path, err)
	}
	return nil
}

// Show hands the screen to pager for content. A nil term runs the pager
// without releasing anything.
func Show(term Terminal, pager PagerFunc, content string) error {
	if pager == nil {
		pager = RunPager
	}
	if term != nil {
		if err := term.ReleaseTerminal(); err != nil {
			return fmt.Errorf("failed to release terminal: %w", err)
		}
		defer func() {
			// ov needs a moment to leave the alternate screen
			time.Sleep(100 * time.Millisecond)
			_ = term.RestoreTerminal()
		}()
	}
	return pager(content)
}

// RunPager shows content in ov without writing it back to the terminal on exit
func RunPager(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
