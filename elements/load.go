/*
 * load.go, part of goZeff.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package elements

import (
	"bufio"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

//compression returns 'z' for gzip, 's' for zstd and 'p' for plain
//files, deduced from the file extension.
func compression(fname string) byte {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".gz":
		return 'z'
	case ".zst", ".zstd":
		return 's'
	case ".yaml", ".yml":
		return 'p'
	default:
		log.Printf("Extension of %s not recognized. It will be assumed to be a plain YAML file", fname)
		return 'p'
	}
}

//zstd.Decoder's Close doesn't return an error.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// DecodeDataset reads a YAML dataset from r.
func DecodeDataset(r io.Reader) (*Dataset, error) {
	ds := new(Dataset)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(ds); err != nil && err != io.EOF {
		return nil, newError("can't decode dataset", "", err)
	}
	return ds, nil
}

// EncodeDataset writes ds as YAML to w.
func EncodeDataset(w io.Writer, ds *Dataset) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ds); err != nil {
		return newError("can't encode dataset", "", err)
	}
	if err := enc.Close(); err != nil {
		return newError("can't encode dataset", "", err)
	}
	return nil
}

// ReadDataset reads a dataset file. Files ending in .gz are read as gzip
// and files ending in .zst as zstd compressed YAML.
func ReadDataset(fname string) (*Dataset, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, newError("can't open", fname, err)
	}
	defer f.Close()
	var r io.ReadCloser
	buf := bufio.NewReader(f)
	switch compression(fname) {
	case 'z':
		r, err = gzip.NewReader(buf)
	case 's':
		var d *zstd.Decoder
		d, err = zstd.NewReader(buf)
		if err == nil {
			r = zstdCloser{d}
		}
	default:
		r = io.NopCloser(buf)
	}
	if err != nil {
		return nil, newError("can't decompress", fname, err)
	}
	defer r.Close()
	ds, err := DecodeDataset(r)
	if err != nil {
		setFileName(err, fname)
		return nil, errDecorate(err, "ReadDataset")
	}
	return ds, nil
}

// WriteDataset writes ds to fname, compressing it according to the file
// extension, as in ReadDataset.
func WriteDataset(fname string, ds *Dataset) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return newError("can't create", fname, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = newError("can't close", fname, cerr)
		}
	}()
	var w io.WriteCloser
	switch compression(fname) {
	case 'z':
		w = gzip.NewWriter(f)
	case 's':
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return newError("can't compress", fname, err)
		}
	default:
		w = nopWriteCloser{f}
	}
	if err = EncodeDataset(w, ds); err != nil {
		w.Close()
		setFileName(err, fname)
		return errDecorate(err, "WriteDataset")
	}
	if err = w.Close(); err != nil {
		return newError("can't flush", fname, err)
	}
	return nil
}

//setFileName records fname in err, if err is an *Error without a file.
func setFileName(err error, fname string) {
	var e *Error
	if errors.As(err, &e) && e.filename == "" {
		e.filename = fname
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Load reads the dataset in fname and merges it over the bundled table.
func Load(fname string) (*Table, error) {
	ds, err := ReadDataset(fname)
	if err != nil {
		return nil, errDecorate(err, "Load")
	}
	T, err := Default().Merge(ds)
	if err != nil {
		setFileName(err, fname)
		return nil, errDecorate(err, "Load")
	}
	return T, nil
}

// Write writes the table to w as a YAML dataset that Load and NewTable can read back.
func (T *Table) Write(w io.Writer) error {
	return errDecorate(EncodeDataset(w, T.Dataset()), "Table.Write")
}
