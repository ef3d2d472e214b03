package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/scytale/internal/ciphers"
	kerrors "github.com/PolarWolf314/scytale/internal/errors"
	logger "github.com/PolarWolf314/scytale/internal/logging"
)

// Operation selects the direction a cipher runs in.
type Operation string

const (
	Encrypt Operation = "encrypt"
	Decrypt Operation = "decrypt"
)

func (o Operation) apply(c ciphers.Cipher, text string) (string, error) {
	switch o {
	case Encrypt:
		return ciphers.Encrypt(c, text)
	case Decrypt:
		return ciphers.Decrypt(c, text)
	}
	return "", fmt.Errorf("%w: unknown operation %q", kerrors.ErrUnsupportedOperation, string(o))
}

// TransformOptions configures the transform workflow.
type TransformOptions struct {
	// Cipher is the registered cipher name, matched case-insensitively.
	Cipher string

	Operation Operation
	Settings  ciphers.Settings

	// Text is the input to encrypt or decrypt.
	Text string

	Logger logger.Logger
}

// TransformResult contains the outcome of a transform.
type TransformResult struct {
	// Cipher is the canonical name of the cipher that ran.
	Cipher    string
	Operation Operation
	Output    string
	Traits    ciphers.Traits
}

// Transform builds the named cipher from opts.Settings and runs it over
// opts.Text in the requested direction.
//
// Returns ErrUnknownCipher if the cipher is not registered.
// Returns ErrInvalidKey if the settings do not form a valid key.
func Transform(ctx context.Context, opts TransformOptions) (*TransformResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := ciphers.New(opts.Cipher, opts.Settings)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debugf("Running %s %s over %d bytes", c.Name(), opts.Operation, len(opts.Text))

	out, err := opts.Operation.apply(c, opts.Text)
	if err != nil {
		return nil, err
	}

	return &TransformResult{
		Cipher:    c.Name(),
		Operation: opts.Operation,
		Output:    out,
		Traits:    c.Traits(),
	}, nil
}
