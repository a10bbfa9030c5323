// SPDX-License-Identifier: EPL-2.0

package audcompose

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audcompose/composer"
	"github.com/ik5/audcompose/signal"
)

var ErrNoOutput = errors.New("no output path")

// Encoder writes a finished composition to path.
type Encoder interface {
	Encode(path string, sig *signal.Signal) error
}

// Render feeds every whitespace separated token of r to c and returns the
// finalized composition.
func Render(r io.Reader, c *composer.Composer) (*signal.Signal, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n := 0
	for sc.Scan() {
		n++
		if err := c.Process(sc.Text()); err != nil {
			return nil, fmt.Errorf("token %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading score: %w", err)
	}

	return c.Finalize(), nil
}

// RenderFile renders r and hands the result to enc. Nothing is encoded when
// rendering fails.
func RenderFile(r io.Reader, c *composer.Composer, enc Encoder, path string) error {
	if path == "" {
		return ErrNoOutput
	}

	sig, err := Render(r, c)
	if err != nil {
		return err
	}

	return enc.Encode(path, sig)
}
