// Package capture stores polled samples in CBOR capture files. Files are
// replaced atomically so a reader never sees a partially written capture.
package capture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/renameio/v2"

	"github.com/axondata/go-medaq"
)

// FormatVersion is the current capture file format version
const FormatVersion = 1

// FileMode is the mode capture files are created with
const FileMode = 0o644

// ErrVersion indicates a capture file written by an unknown format version
var ErrVersion = errors.New("capture: unsupported format version")

// Record is one capture: the samples of a measurement and where they came
// from
type Record struct {
	// Version is the format version; Encode fills it in
	Version int `cbor:"1,keyasint"`
	// SessionID is the ID of the session that polled the samples
	SessionID string `cbor:"2,keyasint"`
	// Sensor is the sensor model name
	Sensor string `cbor:"3,keyasint"`
	// Profile is the name of the profile used, if any
	Profile string `cbor:"4,keyasint,omitempty"`
	// Captured is when the samples were polled
	Captured time.Time `cbor:"5,keyasint"`
	// Samples in acquisition order, earliest first
	Samples []medaq.Sample `cbor:"6,keyasint"`
}

// NewRecord builds a record for samples polled by s now
func NewRecord(s *medaq.Session, samples []medaq.Sample) Record {
	return Record{
		Version:   FormatVersion,
		SessionID: s.ID().String(),
		Sensor:    s.Kind().String(),
		Captured:  time.Now().UTC(),
		Samples:   samples,
	}
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsEmpty,
		Time:          cbor.TimeRFC3339Nano,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create capture CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthAllowed,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create capture CBOR decoder mode: %v", err))
	}
}

// Encode serializes a record
func Encode(r Record) ([]byte, error) {
	if r.Version == 0 {
		r.Version = FormatVersion
	}
	return encMode.Marshal(r)
}

// Decode parses a record and checks its format version
func Decode(data []byte) (Record, error) {
	var r Record
	if err := decMode.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("capture: decoding: %w", err)
	}
	if r.Version != FormatVersion {
		return Record{}, fmt.Errorf("%w: %d", ErrVersion, r.Version)
	}
	return r, nil
}

// WriteFile atomically replaces path with the encoded record
func WriteFile(path string, r Record) error {
	data, err := Encode(r)
	if err != nil {
		return fmt.Errorf("capture: encoding: %w", err)
	}
	if err := renameio.WriteFile(path, data, FileMode); err != nil {
		return fmt.Errorf("capture: writing %s: %w", path, err)
	}
	return nil
}

// ReadFile reads the record stored at path
func ReadFile(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("capture: reading %s: %w", path, err)
	}
	return Decode(data)
}

// Writer streams records to w one after another, e.g. while a medaq.Stream
// is running
type Writer struct {
	enc *cbor.Encoder
}

// NewWriter returns a Writer that encodes records to w
func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: encMode.NewEncoder(w)}
}

// Write encodes one record
func (w *Writer) Write(r Record) error {
	if r.Version == 0 {
		r.Version = FormatVersion
	}
	return w.enc.Encode(r)
}

// Reader reads records written by a Writer
type Reader struct {
	dec *cbor.Decoder
}

// NewReader returns a Reader that decodes records from r
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: decMode.NewDecoder(r)}
}

// Read decodes the next record. It returns io.EOF after the last one.
func (r *Reader) Read() (Record, error) {
	var rec Record
	if err := r.dec.Decode(&rec); err != nil {
		return Record{}, err
	}
	if rec.Version != FormatVersion {
		return Record{}, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	return rec, nil
}
