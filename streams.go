package compresspickle

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// defaultMember names the archive member when no filename exists to
// derive one from (bytes and stream targets).
const defaultMember = "data"

// writeTarget is the resolved destination of a save call: the stream
// the codec encodes into, plus whatever wrapping handles must be
// closed afterwards. Wrappers (filter, archive) are always closed so
// they flush; the underlying file only when this call opened it.
type writeTarget struct {
	stream  io.WriteCloser
	archive *zip.Writer
	file    io.Closer
	member  string
}

// Close releases the target. Order matters: the filter has to flush
// into the archive or file before those are finalized.
func (t *writeTarget) Close() error {
	err := t.stream.Close()
	if t.archive != nil {
		if cerr := t.archive.Close(); err == nil {
			err = cerr
		}
	}
	if t.file != nil {
		if cerr := t.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// openWriteTarget opens the destination for a save call. With a nil
// w the path is opened on the filesystem and owned by the target;
// a caller-supplied w is wrapped but never closed.
func openWriteTarget(path string, w io.Writer, d *descriptor, cfg *config) (*writeTarget, error) {
	var file *os.File
	if w == nil {
		f, err := os.OpenFile(path, cfg.openFlag(d.writeFlag), 0o666)
		if err != nil {
			return nil, err
		}
		file = f
		w = f
	}

	if d.archive {
		member := cfg.member
		if member == "" {
			if file != nil {
				member = archiveMemberName(path)
			} else {
				member = defaultMember
			}
		}
		zw := zip.NewWriter(w)
		mw, err := zw.Create(member)
		if err != nil {
			zw.Close()
			closeIfOwned(file)
			return nil, err
		}
		return &writeTarget{
			stream:  nopWriteCloser{mw},
			archive: zw,
			file:    ownedCloser(file),
			member:  member,
		}, nil
	}

	wc, err := createCompressor(d.name, w, cfg.level)
	if err != nil {
		closeIfOwned(file)
		return nil, err
	}
	return &writeTarget{stream: wc, file: ownedCloser(file)}, nil
}

// readTarget mirrors writeTarget for load calls.
type readTarget struct {
	stream io.ReadCloser
	file   io.Closer
}

func (t *readTarget) Close() error {
	err := t.stream.Close()
	if t.file != nil {
		if cerr := t.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// openReadTarget opens the source for a load call. With a nil r the
// path is opened on the filesystem and owned by the target.
func openReadTarget(path string, r io.Reader, d *descriptor, cfg *config) (*readTarget, error) {
	if d.archive {
		return openArchiveReadTarget(path, r, cfg)
	}

	var file *os.File
	if r == nil {
		f, err := os.OpenFile(path, cfg.openFlag(d.readFlag), 0)
		if err != nil {
			return nil, err
		}
		file = f
		r = f
	}
	rc, err := createDecompressor(d.name, r)
	if err != nil {
		closeIfOwned(file)
		return nil, err
	}
	return &readTarget{stream: rc, file: ownedCloser(file)}, nil
}

// sizedReaderAt is the shape archive/zip needs; bytes.Reader and
// io.SectionReader satisfy it without copying.
type sizedReaderAt interface {
	io.ReaderAt
	Size() int64
}

func openArchiveReadTarget(path string, r io.Reader, cfg *config) (*readTarget, error) {
	var (
		ra      io.ReaderAt
		size    int64
		file    *os.File
		derived string
	)
	switch {
	case r == nil:
		f, err := os.OpenFile(path, cfg.openFlag(defaultReadFlag), 0)
		if err != nil {
			return nil, err
		}
		fi, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, err
		}
		file = f
		ra = f
		size = fi.Size()
		derived = archiveMemberName(path)
	default:
		if sra, ok := r.(sizedReaderAt); ok {
			ra = sra
			size = sra.Size()
			break
		}
		// archive/zip needs random access; a plain stream is
		// buffered in full first.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		br := bytes.NewReader(data)
		ra = br
		size = br.Size()
	}

	zr, err := zip.NewReader(ra, size)
	if err != nil {
		closeIfOwned(file)
		return nil, err
	}
	zf, err := pickArchiveMember(zr, cfg.member, derived)
	if err != nil {
		closeIfOwned(file)
		return nil, err
	}
	rc, err := zf.Open()
	if err != nil {
		closeIfOwned(file)
		return nil, err
	}
	return &readTarget{stream: rc, file: ownedCloser(file)}, nil
}

// pickArchiveMember selects the member to read: the explicitly named
// one, else the name derived from the filename, else the first entry.
func pickArchiveMember(zr *zip.Reader, want, derived string) (*zip.File, error) {
	if len(zr.File) == 0 {
		return nil, ErrNoArchiveMember
	}
	if want != "" {
		for _, f := range zr.File {
			if f.Name == want {
				return f, nil
			}
		}
		return nil, fmt.Errorf("%w: %q", ErrNoArchiveMember, want)
	}
	if derived != "" {
		for _, f := range zr.File {
			if f.Name == derived {
				return f, nil
			}
		}
	}
	return zr.File[0], nil
}

// archiveMemberName derives the default member name from the archive
// path: the base filename with the compression extension stripped.
func archiveMemberName(path string) string {
	base := filepath.Base(path)
	if stripped, _, ok := StripExtension(base); ok && stripped != "" {
		return stripped
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return defaultMember
	}
	return base
}

func ownedCloser(f *os.File) io.Closer {
	if f == nil {
		return nil
	}
	return f
}

func closeIfOwned(f *os.File) {
	if f != nil {
		f.Close()
	}
}
