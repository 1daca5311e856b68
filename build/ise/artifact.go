package ise

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/highwayhash"
	"github.com/viant/afs/file"
)

var fingerprintKey = []byte("ISE0backend0script0fingerprint00")

// Artifact is a script written to the work root.
type Artifact struct {
	Path string
	// Hash is the highwayhash fingerprint of the script contents.
	Hash uint64
}

// String renders the artifact as "<path> <hash>", the hash in hex.
func (a *Artifact) String() string {
	return fmt.Sprintf("%v %016x", a.Path, a.Hash)
}

// Fingerprint returns the 64-bit highwayhash of data.
func Fingerprint(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// write overwrites location with data. Errors from the file system are
// returned as is.
func (b *Backend) write(ctx context.Context, location string, data []byte) (*Artifact, error) {
	if err := b.fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	hash, err := Fingerprint(data)
	if err != nil {
		return nil, err
	}
	b.logger.Info("Wrote script.", "path", location, "hash", hash)
	return &Artifact{Path: location, Hash: hash}, nil
}
