package repl

import (
	"bytes"
	"errors"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/patrikn/lust"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscripts(t *testing.T) {
	fns, err := filepath.Glob("testdata/*.lust")
	if err != nil {
		t.Fatal(err)
	}

	for _, fn := range fns {
		t.Log(fn)
		f, err := os.Open(fn)
		if err != nil {
			t.Fatal(err)
		}
		env := lust.NewEnv()
		if err := lust.LoadLib(env); err != nil {
			t.Fatal(err)
		}
		var out, errout bytes.Buffer
		logger := log.New(&errout, "lust: ", 0)
		err = Run(env, NewDecoder(f), &out, logger, Options{})
		f.Close()
		if err != nil {
			t.Error(err)
			continue
		}

		base := fn[:len(fn)-len(".lust")]
		b, err := ioutil.ReadFile(base + ".out")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(string(b), out.String()); diff != "" {
			t.Errorf("%s: stdout mismatch (-want +got):\n%s", fn, diff)
		}

		b, err = ioutil.ReadFile(base + ".err")
		if err != nil && !os.IsNotExist(err) {
			t.Fatal(err)
		}
		if diff := cmp.Diff(string(b), errout.String()); diff != "" {
			t.Errorf("%s: stderr mismatch (-want +got):\n%s", fn, diff)
		}
	}
}

func runString(t *testing.T, input string, opts Options) (string, string, error) {
	t.Helper()
	var out, errout bytes.Buffer
	logger := log.New(&errout, "", 0)
	err := Run(lust.NewEnv(), strings.NewReader(input), &out, logger, opts)
	return out.String(), errout.String(), err
}

func TestRunQuiet(t *testing.T) {
	out, errout, err := runString(t, "(+ 1 2)\n(+ x)\n", Options{Quiet: true})
	require.NoError(t, err)
	assert.Equal(t, "", out)
	assert.Equal(t, "undefined name: x\n", errout)
}

func TestRunTrace(t *testing.T) {
	out, errout, err := runString(t, "(+ 1\n  (if 0 1 2))\n", Options{Trace: true})
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
	assert.Equal(t, "eval (+ 1 (if 0 1 2))\n", errout)
}

func TestRunEnvPersists(t *testing.T) {
	env := lust.NewEnv()
	var out bytes.Buffer
	logger := log.New(ioutil.Discard, "", 0)
	require.NoError(t, Run(env, strings.NewReader("(set! a 40)\n"), &out, logger, Options{}))
	require.NoError(t, Run(env, strings.NewReader("(+ a 2)\n"), &out, logger, Options{}))
	assert.Equal(t, "40\n42\n", out.String())
}

type brokenReader struct {
	r   *strings.Reader
	err error
}

func (b *brokenReader) ReadRune() (rune, int, error) {
	if b.r.Len() == 0 {
		return 0, 0, b.err
	}
	return b.r.ReadRune()
}

func TestRunStreamFailure(t *testing.T) {
	boom := errors.New("boom")
	var out bytes.Buffer
	logger := log.New(ioutil.Discard, "", 0)
	err := Run(lust.NewEnv(), &brokenReader{r: strings.NewReader("(+ 1 2)\n(+ 3"), err: boom}, &out, logger, Options{})
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, "3\n", out.String())
}

func TestRunDecodeError(t *testing.T) {
	var out, errout bytes.Buffer
	logger := log.New(&errout, "", 0)
	input := "(+ 1 2)\n\xff(+ 3 4)\n"
	err := Run(lust.NewEnv(), NewDecoder(strings.NewReader(input)), &out, logger, Options{})
	require.NoError(t, err)
	assert.Equal(t, "3\n7\n", out.String())
	assert.Equal(t, "read error: invalid UTF-8 byte 0xff at offset 8\n", errout.String())
}
