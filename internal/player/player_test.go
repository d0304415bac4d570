package player

import (
	"errors"
	"os/exec"
	"reflect"
	"strings"
	"testing"

	"radiohop/internal/failure"
)

func stubControl(run runner) *Control {
	c := NewControl("fakeplayer", []string{"current-title"}, []string{"play", "--no-focus"})
	c.run = run
	return c
}

func TestCurrentTitle(t *testing.T) {
	var gotArgs []string
	c := stubControl(func(name string, args ...string) (string, string, error) {
		gotArgs = append([]string{name}, args...)
		return "  Jazz FM\n", "", nil
	})

	title, ok, err := c.CurrentTitle()
	if err != nil {
		t.Fatalf("CurrentTitle failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a playing title")
	}
	if title != "Jazz FM" {
		t.Errorf("expected trimmed title 'Jazz FM', got %q", title)
	}
	if want := []string{"fakeplayer", "current-title"}; !reflect.DeepEqual(gotArgs, want) {
		t.Errorf("expected invocation %v, got %v", want, gotArgs)
	}
}

func TestCurrentTitleNothingPlaying(t *testing.T) {
	c := stubControl(func(name string, args ...string) (string, string, error) {
		return "\n", "", nil
	})

	_, ok, err := c.CurrentTitle()
	if err != nil {
		t.Fatalf("CurrentTitle failed: %v", err)
	}
	if ok {
		t.Error("blank output should mean nothing playing")
	}
}

func TestCurrentTitleNonZeroExit(t *testing.T) {
	// A real exit error, produced by actually running a command.
	c := NewControl("sh", []string{"-c", "exit 3"}, nil)

	_, ok, err := c.CurrentTitle()
	if err != nil {
		t.Fatalf("non-zero player exit should mean nothing playing, got %v", err)
	}
	if ok {
		t.Error("non-zero player exit should mean nothing playing")
	}
}

func TestCurrentTitleUnreachable(t *testing.T) {
	c := stubControl(func(name string, args ...string) (string, string, error) {
		return "", "", errors.New("fork/exec: no such file or directory")
	})

	_, _, err := c.CurrentTitle()
	if failure.KindOf(err) != failure.PlayerUnavailable {
		t.Fatalf("expected PlayerUnavailable, got %v", err)
	}
}

func TestPlay(t *testing.T) {
	var gotArgs []string
	c := stubControl(func(name string, args ...string) (string, string, error) {
		gotArgs = append([]string{name}, args...)
		return "", "", nil
	})

	if err := c.Play("http://streams.example/jazz"); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	want := []string{"fakeplayer", "play", "--no-focus", "http://streams.example/jazz"}
	if !reflect.DeepEqual(gotArgs, want) {
		t.Errorf("expected invocation %v, got %v", want, gotArgs)
	}
}

func TestPlayRejected(t *testing.T) {
	c := stubControl(func(name string, args ...string) (string, string, error) {
		return "", "cannot resolve stream\n", errors.New("exit status 1")
	})

	err := c.Play("http://streams.example/gone")
	if failure.KindOf(err) != failure.PlaybackFailed {
		t.Fatalf("expected PlaybackFailed, got %v", err)
	}
	var fe *failure.Error
	if errors.As(err, &fe) && !strings.Contains(fe.Detail, "cannot resolve stream") {
		t.Errorf("expected the player's stderr in the detail, got %q", fe.Detail)
	}
}

func TestAvailable(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no sh on this system")
	}

	c := NewControl("sh", nil, nil)
	if err := c.Available(); err != nil {
		t.Errorf("expected sh to be available, got %v", err)
	}

	c = NewControl("radiohop-no-such-player", nil, nil)
	err := c.Available()
	if failure.KindOf(err) != failure.PlayerUnavailable {
		t.Fatalf("expected PlayerUnavailable, got %v", err)
	}
}

func TestRunCommandCapturesOutput(t *testing.T) {
	stdout, stderr, err := runCommand("sh", "-c", "echo out; echo err >&2")
	if err != nil {
		t.Fatalf("runCommand failed: %v", err)
	}
	if stdout != "out\n" {
		t.Errorf("expected stdout 'out', got %q", stdout)
	}
	if stderr != "err\n" {
		t.Errorf("expected stderr 'err', got %q", stderr)
	}
}
