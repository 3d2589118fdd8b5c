package shell_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.trai.ch/equip/internal/adapters/shell"
	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/core/ports"
	"go.trai.ch/equip/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestRunner_Run_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger := mocks.NewMockLogger(ctrl)

	r := shell.NewRunner(logger)

	var out strings.Builder
	err := r.Run(context.Background(), ports.Command{
		Args:   []string{"sh", "-c", "echo hello"},
		Dir:    t.TempDir(),
		Stdout: &out,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "hello" {
		t.Errorf("expected hello, got %q", got)
	}
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger := mocks.NewMockLogger(ctrl)

	r := shell.NewRunner(logger)

	var out strings.Builder
	err := r.Run(context.Background(), ports.Command{
		Args:   []string{"sh", "-c", "echo oops >&2; exit 3"},
		Dir:    t.TempDir(),
		Stdout: &out,
	})
	if !errors.Is(err, domain.ErrCommandFailed) {
		t.Fatalf("expected ErrCommandFailed, got %v", err)
	}

	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		t.Fatalf("expected *zerr.Error in chain, got %T", err)
	}
	meta := zErr.Metadata()
	if code, ok := meta["exit_code"].(int); !ok || code != 3 {
		t.Errorf("expected exit_code 3, got %v", meta["exit_code"])
	}
	if stderr, ok := meta["stderr"].(string); !ok || !strings.Contains(stderr, "oops") {
		t.Errorf("expected stderr tail, got %v", meta["stderr"])
	}
}

func TestRunner_Output(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger := mocks.NewMockLogger(ctrl)

	r := shell.NewRunner(logger)

	out, err := r.Output(context.Background(), ports.Command{
		Args: []string{"sh", "-c", "printf '{\"ok\":true}'"},
		Dir:  t.TempDir(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `{"ok":true}` {
		t.Errorf("unexpected output: %s", out)
	}

	_, err = r.Output(context.Background(), ports.Command{
		Args: []string{"sh", "-c", "echo bad >&2; exit 1"},
		Dir:  t.TempDir(),
	})
	if !errors.Is(err, domain.ErrCommandFailed) {
		t.Fatalf("expected ErrCommandFailed, got %v", err)
	}
}

func TestRunner_Run_LaunchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger := mocks.NewMockLogger(ctrl)

	r := shell.NewRunner(logger)

	err := r.Run(context.Background(), ports.Command{
		Args: []string{"definitely-not-a-real-binary-xyz"},
		Dir:  t.TempDir(),
	})
	if !errors.Is(err, domain.ErrCommandFailed) {
		t.Fatalf("expected ErrCommandFailed, got %v", err)
	}
}
