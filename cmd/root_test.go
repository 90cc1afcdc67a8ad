package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/marcus/wingsfly/internal/mockdata"
	"github.com/marcus/wingsfly/internal/output"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestFirstNonFlagArg(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "skips leading flags",
			args: []string{"--flag", "unknown-cmd"},
			want: "unknown-cmd",
		},
		{
			name: "all flags",
			args: []string{"-h", "--help"},
			want: "",
		},
		{
			name: "finds command after help",
			args: []string{"--help", "list"},
			want: "list",
		},
		{
			name: "no args",
			args: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstNonFlagArg(tt.args); got != tt.want {
				t.Errorf("firstNonFlagArg(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer

	newLogger(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug record written without --debug: %s", buf.String())
	}

	newLogger(&buf, true).Debug("shown", "k", 1)
	if !strings.Contains(buf.String(), `"msg":"shown"`) {
		t.Errorf("expected JSON debug record, got %s", buf.String())
	}
}

func TestFindDate(t *testing.T) {
	dates := mockdata.Dates()

	d, err := findDate(dates, 20)
	if err != nil || d.Label != "Fri" {
		t.Errorf("findDate(20) = %+v, %v", d, err)
	}
	if _, err := findDate(dates, 25); err == nil || !strings.Contains(err.Error(), "15-21") {
		t.Errorf("findDate(25) err = %v", err)
	}
	if _, err := findDate(nil, 1); err == nil {
		t.Error("empty week should fail")
	}
	if got := defaultDay(); got != 18 {
		t.Errorf("defaultDay() = %d, want 18", got)
	}
}

func TestPrintDay(t *testing.T) {
	var buf bytes.Buffer
	old := output.Stdout
	output.Stdout = &buf
	t.Cleanup(func() { output.Stdout = old })

	if err := printDay(18, dayOptions{Status: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Wed 18\n") {
		t.Errorf("missing day header:\n%s", out)
	}
	first := mockdata.Tasks()[0]
	if !strings.Contains(out, first.Title) || !strings.Contains(out, "["+string(first.Status)+"]") {
		t.Errorf("missing task line:\n%s", out)
	}

	buf.Reset()
	if err := printDay(19, dayOptions{JSON: true}); err != nil {
		t.Fatal(err)
	}
	var got dayJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got.Day != 19 || got.Label != "Thu" || len(got.Tasks) != len(mockdata.Tasks()) {
		t.Errorf("got %+v", got)
	}

	if err := printDay(30, dayOptions{}); err == nil {
		t.Error("day outside the week should fail")
	}
}

func TestPrintOptions(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })

	var buf bytes.Buffer
	printOptions(&buf, mockdata.DrawerOptions(), false)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1+len(mockdata.DrawerOptions()) {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "Option") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[4], "Goal of the Day") {
		t.Errorf("last row = %q", lines[4])
	}
}

// runCLI executes args the way Execute does and returns what reached
// stdout, stderr and cobra's own writers
func runCLI(t *testing.T, args ...string) (stdout, stderr, cobraOut string) {
	t.Helper()
	var out, errOut, cb bytes.Buffer
	oldOut, oldErr := output.Stdout, output.Stderr
	output.Stdout, output.Stderr = &out, &errOut
	t.Cleanup(func() { output.Stdout, output.Stderr = oldOut, oldErr })

	resetFlags(rootCmd)
	rootCmd.SetOut(&cb)
	rootCmd.SetErr(&cb)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		reportError(err, args)
	}
	return out.String(), errOut.String(), cb.String()
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// isolateHome points the home directory at an empty temp dir
func isolateHome(t *testing.T) string {
	t.Helper()
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestErrorsReportedOnce(t *testing.T) {
	isolateHome(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "command error",
			args: []string{"tasks", "--date", "99"},
			want: "ERROR: day 99 is not in this week (15-21)",
		},
		{
			name: "unknown command",
			args: []string{"bogus"},
			want: `ERROR: unknown command "bogus", see 'wingsfly --help'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, cobraOut := runCLI(t, tt.args...)
			if cobraOut != "" {
				t.Errorf("cobra printed %q, want nothing", cobraOut)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want empty", stdout)
			}
			lines := strings.Split(strings.TrimRight(stderr, "\n"), "\n")
			if len(lines) != 1 || lines[0] != tt.want {
				t.Errorf("stderr = %q, want the single line %q", stderr, tt.want)
			}
		})
	}
}

func TestConfigCommand(t *testing.T) {
	isolateHome(t)

	t.Run("prints file keys", func(t *testing.T) {
		stdout, stderr, _ := runCLI(t, "config")
		if stderr != "" {
			t.Fatalf("stderr = %q", stderr)
		}
		var got map[string]map[string]any
		if err := json.Unmarshal([]byte(stdout), &got); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, stdout)
		}
		if got["drawer"]["height_fraction"] != 0.6 {
			t.Errorf("drawer.height_fraction = %v, want 0.6", got["drawer"]["height_fraction"])
		}
		if got["screen"]["row_height"] != 16.0 {
			t.Errorf("screen.row_height = %v, want 16", got["screen"]["row_height"])
		}
	})

	t.Run("check without a file", func(t *testing.T) {
		stdout, stderr, _ := runCLI(t, "config", "--check")
		if stdout != "" || stderr != "WARNING: no config file found, using defaults\n" {
			t.Errorf("stdout %q stderr %q", stdout, stderr)
		}
	})

	t.Run("check an explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wingsfly.yaml")
		if err := os.WriteFile(path, []byte("screen:\n  fps: 30\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		stdout, stderr, _ := runCLI(t, "config", "--config", path, "--check")
		if stderr != "" || stdout != path+" is valid\n" {
			t.Errorf("stdout %q stderr %q", stdout, stderr)
		}
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wingsfly.yaml")
		if err := os.WriteFile(path, []byte("screen:\n  fps: 0\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, stderr, _ := runCLI(t, "config", "--config", path)
		if !strings.HasPrefix(stderr, "ERROR: invalid config screen.fps") {
			t.Errorf("stderr = %q", stderr)
		}
	})
}
