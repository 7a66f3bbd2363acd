/*
Package contracts provides access to compiled custody contract artifacts.

Artifacts are produced by neo-go compiler and consist of NEF file and JSON
manifest stored side by side in the same directory:

	<dir>/contract.nef
	<dir>/manifest.json
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	goio "io"
	"io/fs"
	"os"
	"path"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

const (
	// CustodyDir is a default directory of custody contract artifacts
	// relative to the repository root.
	CustodyDir = "contracts/custody"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

// Contract groups information about Neo contract.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")
)

// ReadDir reads contract artifacts from the directory of the local file
// system.
func ReadDir(dir string) (Contract, error) {
	return Read(os.DirFS(dir), ".")
}

// ReadFiles reads contract from explicitly specified NEF and manifest files.
func ReadFiles(nefPath, manifestPath string) (Contract, error) {
	var c Contract

	fNEF, err := os.Open(nefPath)
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := os.Open(manifestPath)
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	return decode(fNEF, fManifest)
}

// Read reads contract artifacts from the dir of the given file system.
func Read(fsys fs.FS, dir string) (Contract, error) {
	var c Contract

	// fs.FS paths are always slash-separated, so filepath.Join() is not
	// applicable.
	fNEF, err := fsys.Open(path.Join(dir, nefName))
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := fsys.Open(path.Join(dir, manifestName))
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	return decode(fNEF, fManifest)
}

func decode(fNEF, fManifest goio.Reader) (Contract, error) {
	var c Contract

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, bReader.Err)
	}

	err := json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	return c, nil
}
