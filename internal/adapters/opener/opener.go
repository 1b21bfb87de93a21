package opener

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/rs/zerolog"
)

// LogOpener records the URL instead of opening it; the API returns the URL to the browser.
type LogOpener struct{}

func (LogOpener) Open(ctx context.Context, link string) error {
	if _, err := url.ParseRequestURI(link); err != nil {
		return fmt.Errorf("open url: %w", err)
	}
	zerolog.Ctx(ctx).Info().Str("url", link).Msg("external map link ready")
	return nil
}

// CommandOpener opens the URL with the operating system's default handler.
type CommandOpener struct {
	// GOOS override for tests; empty means runtime.GOOS.
	GOOS string
	run  func(ctx context.Context, name string, args ...string) error
}

func NewCommandOpener() *CommandOpener {
	return &CommandOpener{run: runCommand}
}

func (o *CommandOpener) Open(ctx context.Context, link string) error {
	if _, err := url.ParseRequestURI(link); err != nil {
		return fmt.Errorf("open url: %w", err)
	}

	name, args := o.command(link)
	if err := o.run(ctx, name, args...); err != nil {
		return fmt.Errorf("open url with %s: %w", name, err)
	}
	zerolog.Ctx(ctx).Info().Str("url", link).Str("cmd", name).Msg("external map opened")
	return nil
}

func (o *CommandOpener) command(link string) (string, []string) {
	goos := o.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	switch goos {
	case "darwin":
		return "open", []string{link}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", link}
	default:
		return "xdg-open", []string{link}
	}
}

// runCommand starts the handler detached from ctx: the browser must outlive the request.
func runCommand(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
