package nav

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// Opener launches a URL
type Opener func(url string) error

// BrowserNavigator opens pages on the live site in the system browser
type BrowserNavigator struct {
	baseURL string
	open    Opener
	logger  *zap.Logger
}

// NewBrowserNavigator creates a navigator for baseURL. A nil opener uses
// the platform's URL handler.
func NewBrowserNavigator(baseURL string, open Opener, logger *zap.Logger) *BrowserNavigator {
	if open == nil {
		open = OpenURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BrowserNavigator{
		baseURL: strings.TrimRight(baseURL, "/"),
		open:    open,
		logger:  logger,
	}
}

// Navigate opens <baseURL><path>
func (b *BrowserNavigator) Navigate(path string) error {
	target := b.baseURL + path
	b.logger.Info("opening browser", zap.String("url", target))
	if err := b.open(target); err != nil {
		return fmt.Errorf("failed to open %s: %w", target, err)
	}
	return nil
}

// OpenURL starts the platform URL handler without waiting for it
func OpenURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
