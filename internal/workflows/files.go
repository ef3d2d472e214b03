package workflows

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/PolarWolf314/scytale/internal/audit"
	"github.com/PolarWolf314/scytale/internal/ciphers"
	kerrors "github.com/PolarWolf314/scytale/internal/errors"
	logger "github.com/PolarWolf314/scytale/internal/logging"
	"github.com/PolarWolf314/scytale/internal/utils"
)

// EncryptedExt is appended to files written by an encrypting batch and
// stripped again when they are decrypted.
const EncryptedExt = ".scy"

// FilesOptions configures the batch file workflow.
type FilesOptions struct {
	Cipher    string
	Operation Operation
	Settings  ciphers.Settings

	// Patterns are paths or doublestar globs, relative to BaseDir.
	// Encrypting skips files that already end in EncryptedExt; decrypting
	// only considers those files.
	Patterns []string
	BaseDir  string

	// DryRun previews which files would be written without touching disk.
	DryRun bool

	Logger logger.Logger
}

// FileResult pairs an input file with the file written for it.
type FileResult struct {
	Source string
	Target string
}

// FilesResult contains the outcome of a batch run.
type FilesResult struct {
	Cipher string
	Files  []FileResult

	// DryRun indicates whether this was a dry-run (no files written).
	DryRun bool
}

// SourceFiles lists the inputs of the batch.
func (r *FilesResult) SourceFiles() []string {
	out := make([]string, len(r.Files))
	for i, f := range r.Files {
		out[i] = f.Source
	}
	return out
}

// TargetFiles lists the outputs of the batch.
func (r *FilesResult) TargetFiles() []string {
	out := make([]string, len(r.Files))
	for i, f := range r.Files {
		out[i] = f.Target
	}
	return out
}

// TransformFiles runs the named cipher over each file matched by
// opts.Patterns. Encrypting writes <file>.scy next to the source; decrypting
// writes the source name back without the extension. Existing targets are
// overwritten. A successful run that writes files is recorded in the
// history log.
//
// Returns ErrUnknownCipher or ErrInvalidKey before any file is read.
// Returns ErrFileNotFound if a literal path does not exist.
// Returns ErrNoFilesFound if nothing matches the patterns.
func TransformFiles(ctx context.Context, opts FilesOptions) (*FilesResult, error) {
	c, err := ciphers.New(opts.Cipher, opts.Settings)
	if err != nil {
		return nil, err
	}

	var filter utils.FileFilter
	switch opts.Operation {
	case Encrypt:
		filter = utils.WithoutSuffix(EncryptedExt)
	case Decrypt:
		filter = utils.WithSuffix(EncryptedExt)
	default:
		return nil, fmt.Errorf("%w: unknown operation %q", kerrors.ErrUnsupportedOperation, string(opts.Operation))
	}

	files, err := utils.ResolveFiles(opts.Patterns, opts.BaseDir, filter)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, kerrors.ErrNoFilesFound
	}
	opts.Logger.Debugf("Resolved %d files for %s", len(files), opts.Operation)

	result := &FilesResult{
		Cipher: c.Name(),
		Files:  make([]FileResult, len(files)),
		DryRun: opts.DryRun,
	}
	for i, f := range files {
		result.Files[i] = FileResult{Source: f, Target: targetPath(f, opts.Operation)}
	}

	if opts.DryRun {
		return result, nil
	}

	for _, f := range result.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := transformFile(c, opts.Operation, f); err != nil {
			return nil, err
		}
		opts.Logger.Infof("Wrote %s", f.Target)
	}

	audit.Log(audit.Entry{
		Operation: string(opts.Operation),
		Cipher:    result.Cipher,
		Files:     result.TargetFiles(),
	})

	return result, nil
}

func targetPath(source string, op Operation) string {
	if op == Decrypt {
		return strings.TrimSuffix(source, EncryptedExt)
	}
	return source + EncryptedExt
}

func transformFile(c ciphers.Cipher, op Operation, f FileResult) error {
	data, err := os.ReadFile(f.Source)
	if err != nil {
		return fmt.Errorf("reading %s: %w", f.Source, err)
	}

	out, err := op.apply(c, string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", f.Source, err)
	}

	info, err := os.Stat(f.Source)
	if err != nil {
		return fmt.Errorf("reading %s: %w", f.Source, err)
	}
	if err := os.WriteFile(f.Target, []byte(out), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", f.Target, err)
	}
	return nil
}
